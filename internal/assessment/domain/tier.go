package domain

// Tier is the qualitative band derived from a survey score.
type Tier struct {
	Name    string
	Color   string
	Message string
}

var (
	tierPositive = Tier{
		Name:    "positive",
		Color:   "#22c55e",
		Message: "Great job! You don't currently need our services.",
	}
	tierModerate = Tier{
		Name:    "moderate",
		Color:   "#f59e0b",
		Message: "You may benefit from our professional services.",
	}
	tierUrgent = Tier{
		Name:    "urgent",
		Color:   "#ef4444",
		Message: "You need our company services urgently!",
	}
)

// TierForScore maps a score to its band: >=75 positive, >=50 moderate,
// otherwise urgent.
func TierForScore(score int) Tier {
	switch {
	case score >= 75:
		return tierPositive
	case score >= 50:
		return tierModerate
	default:
		return tierUrgent
	}
}

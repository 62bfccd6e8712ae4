package domain

// QuestionCount is the fixed length of every question set.
const QuestionCount = 10

// YesNoCount is how many leading questions are yes/no prompts. The scoring
// engine relies on this split by position, not by question content.
const YesNoCount = 5

// AgreementOptions are the selectable answers for questions 6-10,
// highest-scoring first.
var AgreementOptions = []string{"Strongly Agree", "Agree", "Intermediate", "Disagree", "Strongly Disagree"}

// Catalog maps a category key to its ordered question set. Read-only after
// construction; indices 1-5 are yes/no, 6-10 are agreement-scale.
type Catalog struct {
	sets map[Category][]string
}

// NewCatalog builds the fixed question catalog for all four categories.
func NewCatalog() *Catalog {
	return &Catalog{sets: map[Category][]string{
		CategoryStartup: {
			"Do you have a clear business model?",
			"Do you have a team with diverse skills?",
			"Do you track your monthly burn rate?",
			"Do you use digital marketing?",
			"Do you have investor support?",
			"I am confident about scaling soon.",
			"Our market strategy is strong.",
			"We are growing faster than competitors.",
			"We have good cash flow.",
			"We are ready for long-term growth.",
		},
		CategoryLoss: {
			"Do you currently operate at a loss?",
			"Do you analyze your expenses monthly?",
			"Do you have debt obligations?",
			"Do you track profit/loss ratios?",
			"Do you face customer churn?",
			"We have clear recovery strategies.",
			"We control unnecessary costs.",
			"We maintain employee morale.",
			"We have strong management support.",
			"We plan for the next fiscal year carefully.",
		},
		CategoryLow: {
			"Is your profit margin below 10%?",
			"Do you track small improvements monthly?",
			"Do you rely on one major client?",
			"Do you face high operational costs?",
			"Do you plan to diversify revenue?",
			"We focus on long-term stability.",
			"Our cost structure is under control.",
			"We seek continuous improvement.",
			"We are adapting to market changes.",
			"We have a good customer base.",
		},
		CategoryProfit: {
			"Are your profit margins above 10%?",
			"Do you reinvest profits into growth?",
			"Do you have steady cash flow?",
			"Do you expand your customer base?",
			"Do you innovate regularly?",
			"We have sustainable operations.",
			"We maintain competitive advantage.",
			"We have high employee satisfaction.",
			"We plan to expand globally.",
			"We have great investor confidence.",
		},
	}}
}

// Questions returns the ordered question set for a category.
func (c *Catalog) Questions(category Category) ([]string, error) {
	questions, ok := c.sets[category]
	if !ok {
		return nil, ErrUnknownCategory
	}
	out := make([]string, len(questions))
	copy(out, questions)
	return out, nil
}

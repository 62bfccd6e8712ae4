package domain

import (
	"errors"
	"math"
	"strings"
)

// ErrIncompleteAnswers is returned when any of the 10 question indices is
// missing or blank. An incomplete submission must be rejected, never scored
// as zero.
var ErrIncompleteAnswers = errors.New("all questions must be answered")

// maxRawScore is the highest achievable raw total: 10 questions, 10 points each.
const maxRawScore = 100

// Score translates a complete answer set into an integer in [0,100].
//
// Questions 1-5 are yes/no: a case-insensitive "yes" earns 10 points, anything
// else earns nothing. Questions 6-10 are agreement-scale with a graded point
// value per option; "Strongly Disagree" (or any unrecognised value) earns
// nothing. The final normalisation against maxRawScore is algebraically a
// no-op today but keeps the contract explicit: the result is always a
// round-half-up integer clamped to [0,100].
func Score(answers map[int]string) (int, error) {
	raw := 0

	for i := 1; i <= YesNoCount; i++ {
		answer, ok := answers[i]
		if !ok || strings.TrimSpace(answer) == "" {
			return 0, ErrIncompleteAnswers
		}
		if strings.EqualFold(answer, "yes") {
			raw += 10
		}
	}

	for i := YesNoCount + 1; i <= QuestionCount; i++ {
		answer, ok := answers[i]
		if !ok || strings.TrimSpace(answer) == "" {
			return 0, ErrIncompleteAnswers
		}
		switch answer {
		case "Strongly Agree":
			raw += 10
		case "Agree":
			raw += 7
		case "Intermediate":
			raw += 5
		case "Disagree":
			raw += 2
		}
	}

	final := int(math.Round(float64(raw) / maxRawScore * 100))
	if final < 0 {
		final = 0
	}
	if final > 100 {
		final = 100
	}
	return final, nil
}

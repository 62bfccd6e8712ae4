package domain

import "time"

// Survey is one completed questionnaire. Created once per submission and
// never mutated or deleted by the application.
type Survey struct {
	ID          int64
	CompanyID   int64
	Answers     map[int]string
	Score       int
	CompletedAt time.Time
}

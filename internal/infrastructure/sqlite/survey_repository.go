package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/amconnect/assessment/api/internal/assessment/domain"
)

// SurveyRepository appends completed questionnaires.
type SurveyRepository struct {
	db *sql.DB
}

// NewSurveyRepository binds the repository to a database handle.
func NewSurveyRepository(db *sql.DB) *SurveyRepository {
	return &SurveyRepository{db: db}
}

// Create inserts a survey with its answers serialized as JSON, keyed the
// same way the form fields are (q1..q10).
func (r *SurveyRepository) Create(ctx context.Context, survey *domain.Survey) error {
	serialized, err := marshalAnswers(survey.Answers)
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	result, err := r.db.ExecContext(ctx,
		`INSERT INTO surveys (company_id, answers, score, completed_at) VALUES (?, ?, ?, ?)`,
		survey.CompanyID, serialized, survey.Score, now,
	)
	if err != nil {
		return err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return err
	}
	survey.ID = id
	survey.CompletedAt = now
	return nil
}

// ListByCompany returns a company's surveys, newest first.
func (r *SurveyRepository) ListByCompany(ctx context.Context, companyID int64) ([]domain.Survey, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, company_id, answers, score, completed_at FROM surveys WHERE company_id = ? ORDER BY completed_at DESC, id DESC`,
		companyID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var surveys []domain.Survey
	for rows.Next() {
		var survey domain.Survey
		var serialized string
		if err := rows.Scan(&survey.ID, &survey.CompanyID, &serialized, &survey.Score, &survey.CompletedAt); err != nil {
			return nil, err
		}
		survey.Answers, err = unmarshalAnswers(serialized)
		if err != nil {
			return nil, err
		}
		surveys = append(surveys, survey)
	}
	return surveys, rows.Err()
}

func marshalAnswers(answers map[int]string) (string, error) {
	keyed := make(map[string]string, len(answers))
	for index, answer := range answers {
		keyed[fmt.Sprintf("q%d", index)] = answer
	}
	raw, err := json.Marshal(keyed)
	if err != nil {
		return "", err
	}
	return string(raw), nil
}

func unmarshalAnswers(serialized string) (map[int]string, error) {
	keyed := map[string]string{}
	if err := json.Unmarshal([]byte(serialized), &keyed); err != nil {
		return nil, err
	}
	answers := make(map[int]string, len(keyed))
	for key, answer := range keyed {
		var index int
		if _, err := fmt.Sscanf(key, "q%d", &index); err != nil {
			return nil, fmt.Errorf("unexpected answer key %q", key)
		}
		answers[index] = answer
	}
	return answers, nil
}

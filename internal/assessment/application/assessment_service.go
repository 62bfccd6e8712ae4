package application

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/amconnect/assessment/api/internal/assessment/domain"
	"github.com/amconnect/assessment/api/internal/session"
)

// NewAssessmentService wires the workflow over its repositories and the
// fixed question catalog.
func NewAssessmentService(companies CompanyRepository, surveys SurveyRepository, catalog *domain.Catalog) AssessmentService {
	return &assessmentService{
		companies: companies,
		surveys:   surveys,
		catalog:   catalog,
	}
}

type assessmentService struct {
	companies CompanyRepository
	surveys   SurveyRepository
	catalog   *domain.Catalog
}

// SelectCategory stores a validated category in the session. A fresh
// selection overwrites any earlier one; last write wins.
func (s *assessmentService) SelectCategory(state session.State, raw string) (session.State, error) {
	category, err := domain.ParseCategory(raw)
	if err != nil {
		return state, err
	}
	state.Category = string(category)
	return state, nil
}

// Register creates a Company for the visitor. A duplicate email never
// creates a second row: the session is pointed at the existing record and
// ErrDuplicateEmail reported so the caller can route into the survey. That
// conflates "already registered" with "same visitor", which has no clean fix
// without identity proof; it is a deliberate policy, not an oversight.
func (s *assessmentService) Register(ctx context.Context, state session.State, input RegisterInput) (session.State, error) {
	name := strings.TrimSpace(input.Name)
	email := strings.TrimSpace(input.Email)
	phone := strings.TrimSpace(input.Phone)
	if name == "" || email == "" || phone == "" {
		return state, ErrMissingFields
	}

	category, err := domain.ParseCategory(state.Category)
	if err != nil {
		return state, ErrCategoryRequired
	}

	existing, err := s.companies.FindByEmail(ctx, email)
	if err != nil && !errors.Is(err, ErrNotFound) {
		return state, err
	}
	if existing != nil {
		state.CompanyID = existing.ID
		return state, ErrDuplicateEmail
	}

	company := &domain.Company{
		Name:     name,
		Email:    email,
		Phone:    phone,
		Category: category,
	}
	if err := s.companies.Create(ctx, company); err != nil {
		return state, err
	}

	state.CompanyID = company.ID
	return state, nil
}

// SkipRegistration creates an anonymous Company so the survey still has an
// owner to satisfy the foreign-key requirement.
func (s *assessmentService) SkipRegistration(ctx context.Context, state session.State) (session.State, error) {
	category, err := domain.ParseCategory(state.Category)
	if err != nil {
		return state, ErrCategoryRequired
	}

	company := &domain.Company{
		Name:     domain.AnonymousName,
		Email:    anonymousEmail(),
		Phone:    domain.AnonymousPhone,
		Category: category,
	}
	if err := s.companies.Create(ctx, company); err != nil {
		return state, err
	}

	state.CompanyID = company.ID
	return state, nil
}

// anonymousEmail synthesizes a unique placeholder address. The timestamp
// keeps it readable, the uuid fragment keeps two same-second visitors apart.
func anonymousEmail() string {
	return fmt.Sprintf("anonymous_%d_%s@amconnect.com", time.Now().Unix(), uuid.NewString()[:8])
}

// SurveyQuestions fetches the question set for the session's category.
func (s *assessmentService) SurveyQuestions(state session.State) (domain.Category, []string, error) {
	category, err := domain.ParseCategory(state.Category)
	if err != nil {
		return "", nil, ErrCategoryRequired
	}
	questions, err := s.catalog.Questions(category)
	if err != nil {
		return "", nil, err
	}
	return category, questions, nil
}

// SubmitSurvey scores a complete answer set, persists the Survey and stores
// the score in the session. An incomplete set is rejected before anything is
// written.
func (s *assessmentService) SubmitSurvey(ctx context.Context, state session.State, answers map[int]string) (session.State, error) {
	if state.Category == "" || state.CompanyID == 0 {
		return state, ErrSessionExpired
	}

	if _, err := s.companies.FindByID(ctx, state.CompanyID); err != nil {
		if errors.Is(err, ErrNotFound) {
			return state, ErrNotFound
		}
		return state, err
	}

	score, err := domain.Score(answers)
	if err != nil {
		return state, err
	}

	survey := &domain.Survey{
		CompanyID: state.CompanyID,
		Answers:   answers,
		Score:     score,
	}
	if err := s.surveys.Create(ctx, survey); err != nil {
		return state, err
	}

	state.Score = &score
	return state, nil
}

// Result derives the tier band for the session's stored score. A nil score
// means no survey was completed this session; a genuine zero still gets a
// result page.
func (s *assessmentService) Result(state session.State) (SurveyResult, error) {
	if state.Score == nil {
		return SurveyResult{}, ErrNoSurveyCompleted
	}
	return SurveyResult{
		Score: *state.Score,
		Tier:  domain.TierForScore(*state.Score),
	}, nil
}

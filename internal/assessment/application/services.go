package application

import (
	"context"
	"errors"

	"github.com/amconnect/assessment/api/internal/assessment/domain"
	"github.com/amconnect/assessment/api/internal/session"
)

// CompanyRepository is the port for participant identities.
type CompanyRepository interface {
	Create(ctx context.Context, company *domain.Company) error
	FindByEmail(ctx context.Context, email string) (*domain.Company, error)
	FindByID(ctx context.Context, id int64) (*domain.Company, error)
}

// SurveyRepository appends completed questionnaires.
type SurveyRepository interface {
	Create(ctx context.Context, survey *domain.Survey) error
	ListByCompany(ctx context.Context, companyID int64) ([]domain.Survey, error)
}

// ContactRepository appends inbound inquiries.
type ContactRepository interface {
	Create(ctx context.Context, contact *domain.Contact) error
}

var (
	// ErrNotFound is returned by repositories when a record does not exist.
	ErrNotFound = errors.New("record not found")
	// ErrDuplicateEmail is returned when the unique email constraint would be violated.
	ErrDuplicateEmail = errors.New("email already registered")

	// ErrCategoryRequired is returned when a workflow step runs before a
	// category was selected.
	ErrCategoryRequired = errors.New("category not selected")
	// ErrMissingFields is returned when registration fields are blank.
	ErrMissingFields = errors.New("all fields are required")
	// ErrSessionExpired is returned when the session lacks the identity a
	// step depends on.
	ErrSessionExpired = errors.New("session expired")
	// ErrNoSurveyCompleted is returned when the result is requested before
	// any survey was submitted in this session.
	ErrNoSurveyCompleted = errors.New("no survey completed")
)

// RegisterInput carries the registration form fields.
type RegisterInput struct {
	Name  string
	Email string
	Phone string
}

// SurveyResult is the scored outcome presented to the visitor.
type SurveyResult struct {
	Score int
	Tier  domain.Tier
}

// AssessmentService drives the linear workflow:
// Start → CategorySelected → Identified → SurveyInProgress → Scored.
// Session state goes in and comes back out of every operation explicitly.
type AssessmentService interface {
	SelectCategory(state session.State, raw string) (session.State, error)
	Register(ctx context.Context, state session.State, input RegisterInput) (session.State, error)
	SkipRegistration(ctx context.Context, state session.State) (session.State, error)
	SurveyQuestions(state session.State) (domain.Category, []string, error)
	SubmitSurvey(ctx context.Context, state session.State, answers map[int]string) (session.State, error)
	Result(state session.State) (SurveyResult, error)
}

// ContactService handles the independent contact-message flow.
type ContactService interface {
	Submit(ctx context.Context, contact domain.Contact) error
}

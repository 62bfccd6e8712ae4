package sqlite

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amconnect/assessment/api/internal/assessment/application"
	"github.com/amconnect/assessment/api/internal/assessment/domain"
)

func testDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	// A pooled in-memory database would open separate empty databases per
	// connection.
	db.SetMaxOpenConns(1)

	require.NoError(t, EnsureSchema(context.Background(), db))
	return db
}

func testCompany(email string) *domain.Company {
	return &domain.Company{
		Name:     "Mehta Foods",
		Email:    email,
		Phone:    "+919876543210",
		Category: domain.CategoryProfit,
	}
}

func TestCompanyRepository_CreateAndFind(t *testing.T) {
	repo := NewCompanyRepository(testDB(t))
	ctx := context.Background()

	company := testCompany("owner@mehtafoods.in")
	require.NoError(t, repo.Create(ctx, company))
	assert.NotZero(t, company.ID)
	assert.False(t, company.CreatedAt.IsZero())

	byEmail, err := repo.FindByEmail(ctx, "owner@mehtafoods.in")
	require.NoError(t, err)
	assert.Equal(t, company.ID, byEmail.ID)
	assert.Equal(t, domain.CategoryProfit, byEmail.Category)

	byID, err := repo.FindByID(ctx, company.ID)
	require.NoError(t, err)
	assert.Equal(t, "Mehta Foods", byID.Name)
}

func TestCompanyRepository_DuplicateEmail(t *testing.T) {
	repo := NewCompanyRepository(testDB(t))
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, testCompany("owner@mehtafoods.in")))

	err := repo.Create(ctx, testCompany("owner@mehtafoods.in"))
	assert.ErrorIs(t, err, application.ErrDuplicateEmail)
}

func TestCompanyRepository_NotFound(t *testing.T) {
	repo := NewCompanyRepository(testDB(t))
	ctx := context.Background()

	_, err := repo.FindByEmail(ctx, "nobody@example.com")
	assert.ErrorIs(t, err, application.ErrNotFound)

	_, err = repo.FindByID(ctx, 42)
	assert.ErrorIs(t, err, application.ErrNotFound)
}

func TestSurveyRepository_CreateAndList(t *testing.T) {
	db := testDB(t)
	companies := NewCompanyRepository(db)
	surveys := NewSurveyRepository(db)
	ctx := context.Background()

	company := testCompany("owner@mehtafoods.in")
	require.NoError(t, companies.Create(ctx, company))

	answers := map[int]string{
		1: "Yes", 2: "Yes", 3: "No", 4: "Yes", 5: "No",
		6: "Strongly Agree", 7: "Agree", 8: "Intermediate", 9: "Disagree", 10: "Strongly Disagree",
	}
	survey := &domain.Survey{CompanyID: company.ID, Answers: answers, Score: 54}
	require.NoError(t, surveys.Create(ctx, survey))
	assert.NotZero(t, survey.ID)

	listed, err := surveys.ListByCompany(ctx, company.ID)
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, 54, listed[0].Score)
	assert.Equal(t, answers, listed[0].Answers)
}

func TestSurveyRepository_ForeignKeyEnforced(t *testing.T) {
	surveys := NewSurveyRepository(testDB(t))

	err := surveys.Create(context.Background(), &domain.Survey{
		CompanyID: 999,
		Answers:   map[int]string{1: "Yes"},
		Score:     10,
	})
	assert.Error(t, err, "a survey without an owning company must be rejected")
}

func TestContactRepository_Create(t *testing.T) {
	repo := NewContactRepository(testDB(t))

	contact := &domain.Contact{
		CompanyName: "Sharma Textiles",
		Name:        "Priya Sharma",
		Email:       "priya@sharmatextiles.in",
		Phone:       "+919876543210",
		Message:     "We would like a consultation.",
	}
	require.NoError(t, repo.Create(context.Background(), contact))
	assert.NotZero(t, contact.ID)
	assert.False(t, contact.SentAt.IsZero())
}

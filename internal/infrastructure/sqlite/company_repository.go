package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/mattn/go-sqlite3"

	"github.com/amconnect/assessment/api/internal/assessment/application"
	"github.com/amconnect/assessment/api/internal/assessment/domain"
)

// CompanyRepository persists participant identities.
type CompanyRepository struct {
	db *sql.DB
}

// NewCompanyRepository binds the repository to a database handle.
func NewCompanyRepository(db *sql.DB) *CompanyRepository {
	return &CompanyRepository{db: db}
}

// Create inserts a company and fills in its generated id and timestamp.
// The unique email constraint surfaces as application.ErrDuplicateEmail.
func (r *CompanyRepository) Create(ctx context.Context, company *domain.Company) error {
	now := time.Now().UTC()
	result, err := r.db.ExecContext(ctx,
		`INSERT INTO companies (name, email, phone, category, created_at) VALUES (?, ?, ?, ?, ?)`,
		company.Name, company.Email, company.Phone, string(company.Category), now,
	)
	if err != nil {
		var sqliteErr sqlite3.Error
		if errors.As(err, &sqliteErr) && sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique {
			return application.ErrDuplicateEmail
		}
		return err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return err
	}
	company.ID = id
	company.CreatedAt = now
	return nil
}

// FindByEmail looks a company up by its unique email.
func (r *CompanyRepository) FindByEmail(ctx context.Context, email string) (*domain.Company, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT id, name, email, phone, category, created_at FROM companies WHERE email = ?`, email)
	return scanCompany(row)
}

// FindByID resolves a session's company reference.
func (r *CompanyRepository) FindByID(ctx context.Context, id int64) (*domain.Company, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT id, name, email, phone, category, created_at FROM companies WHERE id = ?`, id)
	return scanCompany(row)
}

func scanCompany(row *sql.Row) (*domain.Company, error) {
	var company domain.Company
	var category string
	err := row.Scan(&company.ID, &company.Name, &company.Email, &company.Phone, &category, &company.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, application.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	company.Category = domain.Category(category)
	return &company, nil
}

package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/amconnect/assessment/api/internal/assessment/domain"
)

// ContactRepository appends inbound inquiries.
type ContactRepository struct {
	db *sql.DB
}

// NewContactRepository binds the repository to a database handle.
func NewContactRepository(db *sql.DB) *ContactRepository {
	return &ContactRepository{db: db}
}

// Create inserts a contact message and fills in its generated id and timestamp.
func (r *ContactRepository) Create(ctx context.Context, contact *domain.Contact) error {
	now := time.Now().UTC()
	result, err := r.db.ExecContext(ctx,
		`INSERT INTO contacts (company_name, name, email, phone, message, sent_at) VALUES (?, ?, ?, ?, ?, ?)`,
		contact.CompanyName, contact.Name, contact.Email, contact.Phone, contact.Message, now,
	)
	if err != nil {
		return err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return err
	}
	contact.ID = id
	contact.SentAt = now
	return nil
}

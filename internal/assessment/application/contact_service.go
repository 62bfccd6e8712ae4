package application

import (
	"context"

	"github.com/amconnect/assessment/api/internal/assessment/domain"
)

// NewContactService wires the contact-message flow over its repository.
func NewContactService(contacts ContactRepository) ContactService {
	return &contactService{contacts: contacts}
}

type contactService struct {
	contacts ContactRepository
}

// Submit validates the inquiry and appends it. Nothing is persisted on a
// validation failure.
func (s *contactService) Submit(ctx context.Context, contact domain.Contact) error {
	if err := contact.Validate(); err != nil {
		return err
	}
	return s.contacts.Create(ctx, &contact)
}

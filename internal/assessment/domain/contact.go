package domain

import (
	"errors"
	"regexp"
	"strings"
	"time"
)

var (
	// ErrMissingContactFields is returned when any contact form field is blank.
	ErrMissingContactFields = errors.New("all contact fields are required")
	// ErrInvalidPhone is returned when the phone number fails validation.
	ErrInvalidPhone = errors.New("invalid phone number")
)

// Optional leading +, then 10 to 15 digits.
var phonePattern = regexp.MustCompile(`^\+?[0-9]{10,15}$`)

// Contact is an inbound inquiry, independent of Company and Survey.
// CompanyName is free text, not a reference. Write-once.
type Contact struct {
	ID          int64
	CompanyName string
	Name        string
	Email       string
	Phone       string
	Message     string
	SentAt      time.Time
}

// Validate checks required fields and the phone format before persisting.
func (c Contact) Validate() error {
	for _, field := range []string{c.CompanyName, c.Name, c.Email, c.Phone, c.Message} {
		if strings.TrimSpace(field) == "" {
			return ErrMissingContactFields
		}
	}
	if !phonePattern.MatchString(c.Phone) {
		return ErrInvalidPhone
	}
	return nil
}

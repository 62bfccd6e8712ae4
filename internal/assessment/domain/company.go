package domain

import "time"

// AnonymousName is the display name stored for visitors who skip registration.
const AnonymousName = "Anonymous"

// AnonymousPhone is the phone placeholder stored for anonymous companies.
const AnonymousPhone = "N/A"

// Company identifies a survey participant. Rows are immutable once written;
// anonymous visitors get a placeholder identity so surveys always have an owner.
type Company struct {
	ID        int64
	Name      string
	Email     string
	Phone     string
	Category  Category
	CreatedAt time.Time
}

// IsAnonymous reports whether the company was created via the skip-login path.
func (c Company) IsAnonymous() bool {
	return c.Name == AnonymousName
}

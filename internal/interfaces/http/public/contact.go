package public

import (
	"errors"
	"net/http"

	"github.com/amconnect/assessment/api/internal/assessment/domain"
	"github.com/amconnect/assessment/api/internal/session"
)

// contactPageHandler renders the contact form.
func (h *Handler) contactPageHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		state := h.sessions.Read(r)
		h.render(w, state, "contact.html", func(flashes []session.Flash) any {
			return pageData{Title: "Contact Us", Flashes: flashes}
		})
	}
}

// contactSubmitHandler validates and persists an inquiry. Nothing is stored
// when validation fails.
func (h *Handler) contactSubmitHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		state := h.sessions.Read(r)

		if err := r.ParseForm(); err != nil {
			h.flashRedirect(w, r, state, "error", "Please fill in all required fields.", "/contact", http.StatusSeeOther)
			return
		}

		contact := domain.Contact{
			CompanyName: r.PostFormValue("company_name"),
			Name:        r.PostFormValue("name"),
			Email:       r.PostFormValue("email"),
			Phone:       r.PostFormValue("phone"),
			Message:     r.PostFormValue("message"),
		}

		err := h.contacts.Submit(r.Context(), contact)
		switch {
		case errors.Is(err, domain.ErrMissingContactFields):
			h.flashRedirect(w, r, state, "error", "Please fill in all required fields.", "/contact", http.StatusSeeOther)
		case errors.Is(err, domain.ErrInvalidPhone):
			h.flashRedirect(w, r, state, "error", "Please enter a valid phone number with country code.", "/contact", http.StatusSeeOther)
		case err != nil:
			h.logger.Printf("contact submission failed: %v", err)
			h.flashRedirect(w, r, state, "error", "Something went wrong. Please try again.", "/contact", http.StatusSeeOther)
		default:
			h.flashRedirect(w, r, state, "success", "Thank you! Your message has been sent successfully.", "/contact", http.StatusSeeOther)
		}
	}
}

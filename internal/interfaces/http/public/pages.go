package public

import (
	"net/http"

	"github.com/amconnect/assessment/api/internal/session"
)

// aboutHandler renders the static about page.
func (h *Handler) aboutHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		state := h.sessions.Read(r)
		h.render(w, state, "about.html", func(flashes []session.Flash) any {
			return pageData{Title: "About Us", Flashes: flashes}
		})
	}
}

// servicesHandler renders the static services page.
func (h *Handler) servicesHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		state := h.sessions.Read(r)
		h.render(w, state, "services.html", func(flashes []session.Flash) any {
			return pageData{Title: "Our Services", Flashes: flashes}
		})
	}
}

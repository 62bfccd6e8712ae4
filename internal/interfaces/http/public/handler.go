package public

import (
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/amconnect/assessment/api/internal/assessment/application"
	"github.com/amconnect/assessment/api/internal/session"
)

// Handler wires the visitor-facing HTTP endpoints to application services.
type Handler struct {
	logger      *log.Logger
	assessments application.AssessmentService
	contacts    application.ContactService
	sessions    *session.Codec
	templates   *templateSet
}

// Config defines dependencies required by Handler.
type Config struct {
	Logger      *log.Logger
	Assessments application.AssessmentService
	Contacts    application.ContactService
	Sessions    *session.Codec
}

// NewHandler constructs the public HTTP handler set.
func NewHandler(cfg Config) *Handler {
	return &Handler{
		logger:      cfg.Logger,
		assessments: cfg.Assessments,
		contacts:    cfg.Contacts,
		sessions:    cfg.Sessions,
		templates:   newTemplateSet(),
	}
}

// Register mounts all public routes onto the router.
func (h *Handler) Register(r chi.Router) {
	r.Get("/", h.indexHandler())
	r.Get("/select_category/{category}", h.selectCategoryHandler())
	r.Post("/login", h.loginHandler())
	r.Get("/skip_login", h.skipLoginHandler())
	r.Get("/survey", h.surveyHandler())
	r.Post("/submit_survey", h.submitSurveyHandler())
	r.Get("/result", h.resultHandler())
	r.Get("/contact", h.contactPageHandler())
	r.Post("/contact", h.contactSubmitHandler())
	r.Get("/about", h.aboutHandler())
	r.Get("/services", h.servicesHandler())
	r.Handle("/static/*", staticHandler())
}

// flashRedirect stores a one-shot message in the session and redirects.
func (h *Handler) flashRedirect(w http.ResponseWriter, r *http.Request, state session.State, level, message, target string, status int) {
	if err := h.sessions.Write(w, state.WithFlash(level, message)); err != nil {
		h.logger.Printf("session write failed: %v", err)
	}
	http.Redirect(w, r, target, status)
}

// redirect persists the session state and redirects without a flash.
func (h *Handler) redirect(w http.ResponseWriter, r *http.Request, state session.State, target string, status int) {
	if err := h.sessions.Write(w, state); err != nil {
		h.logger.Printf("session write failed: %v", err)
	}
	http.Redirect(w, r, target, status)
}

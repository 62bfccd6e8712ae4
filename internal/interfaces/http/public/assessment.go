package public

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/amconnect/assessment/api/internal/assessment/application"
	"github.com/amconnect/assessment/api/internal/assessment/domain"
	"github.com/amconnect/assessment/api/internal/session"
)

// indexHandler renders the entry page with the category tiles.
func (h *Handler) indexHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		state := h.sessions.Read(r)
		h.render(w, state, "index.html", func(flashes []session.Flash) any {
			return indexData{
				pageData:   pageData{Title: "Business Assessment", Flashes: flashes},
				Categories: categoryOptions(),
			}
		})
	}
}

// selectCategoryHandler stores a valid category in the session and answers
// 204 so the entry page script can advance without a reload. An invalid key
// leaves the state unchanged.
func (h *Handler) selectCategoryHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		state := h.sessions.Read(r)

		updated, err := h.assessments.SelectCategory(state, chi.URLParam(r, "category"))
		if err != nil {
			h.flashRedirect(w, r, state, "error", "Invalid category.", "/", http.StatusFound)
			return
		}

		if err := h.sessions.Write(w, updated); err != nil {
			h.logger.Printf("session write failed: %v", err)
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

// loginHandler registers a company for the selected category. A duplicate
// email routes straight into the survey against the existing record.
func (h *Handler) loginHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		state := h.sessions.Read(r)

		if err := r.ParseForm(); err != nil {
			h.flashRedirect(w, r, state, "error", "All fields are required.", "/", http.StatusSeeOther)
			return
		}

		input := application.RegisterInput{
			Name:  r.PostFormValue("companyName"),
			Email: r.PostFormValue("email"),
			Phone: r.PostFormValue("phone"),
		}

		updated, err := h.assessments.Register(r.Context(), state, input)
		switch {
		case errors.Is(err, application.ErrMissingFields):
			h.flashRedirect(w, r, state, "error", "All fields are required.", "/", http.StatusSeeOther)
		case errors.Is(err, application.ErrCategoryRequired):
			h.flashRedirect(w, r, state, "error", "Please select a category first.", "/", http.StatusSeeOther)
		case errors.Is(err, application.ErrDuplicateEmail):
			h.flashRedirect(w, r, updated, "error", "Email already registered.", "/survey", http.StatusSeeOther)
		case err != nil:
			h.logger.Printf("registration failed: %v", err)
			h.flashRedirect(w, r, state, "error", "Registration failed. Please try again.", "/", http.StatusSeeOther)
		default:
			h.flashRedirect(w, r, updated, "success", "Registration successful!", "/survey", http.StatusSeeOther)
		}
	}
}

// skipLoginHandler creates an anonymous identity and proceeds to the survey.
func (h *Handler) skipLoginHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		state := h.sessions.Read(r)

		updated, err := h.assessments.SkipRegistration(r.Context(), state)
		switch {
		case errors.Is(err, application.ErrCategoryRequired):
			h.flashRedirect(w, r, state, "error", "Please select a category first.", "/", http.StatusFound)
		case err != nil:
			h.logger.Printf("anonymous registration failed: %v", err)
			h.flashRedirect(w, r, state, "error", "Something went wrong. Please try again.", "/", http.StatusFound)
		default:
			h.redirect(w, r, updated, "/survey", http.StatusFound)
		}
	}
}

// surveyHandler renders the 10 questions for the session's category.
func (h *Handler) surveyHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		state := h.sessions.Read(r)

		category, questions, err := h.assessments.SurveyQuestions(state)
		if err != nil {
			h.flashRedirect(w, r, state, "error", "Please select a category.", "/", http.StatusFound)
			return
		}

		h.render(w, state, "survey.html", func(flashes []session.Flash) any {
			return surveyData{
				pageData:         pageData{Title: "Assessment Survey", Flashes: flashes},
				Category:         string(category),
				CategoryLabel:    category.Label(),
				Questions:        surveyQuestions(questions),
				AgreementOptions: domain.AgreementOptions,
			}
		})
	}
}

// submitSurveyHandler scores the submission, persists it and moves the
// session to the result step.
func (h *Handler) submitSurveyHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		state := h.sessions.Read(r)

		if err := r.ParseForm(); err != nil {
			h.flashRedirect(w, r, state, "error", "Please answer all questions.", "/survey", http.StatusSeeOther)
			return
		}

		answers := make(map[int]string, domain.QuestionCount)
		for i := 1; i <= domain.QuestionCount; i++ {
			if answer := strings.TrimSpace(r.PostFormValue("q" + strconv.Itoa(i))); answer != "" {
				answers[i] = answer
			}
		}

		updated, err := h.assessments.SubmitSurvey(r.Context(), state, answers)
		switch {
		case errors.Is(err, application.ErrSessionExpired):
			h.flashRedirect(w, r, state, "error", "Session expired. Please start over.", "/", http.StatusSeeOther)
		case errors.Is(err, application.ErrNotFound):
			h.flashRedirect(w, r, state, "error", "Company not found. Please start over.", "/", http.StatusSeeOther)
		case errors.Is(err, domain.ErrIncompleteAnswers):
			h.flashRedirect(w, r, state, "error", "Please answer all questions.", "/survey", http.StatusSeeOther)
		case err != nil:
			h.logger.Printf("survey submission failed: %v", err)
			h.flashRedirect(w, r, state, "error", "Something went wrong. Please try again.", "/survey", http.StatusSeeOther)
		default:
			h.flashRedirect(w, r, updated, "success", "Survey submitted successfully!", "/result", http.StatusSeeOther)
		}
	}
}

// resultHandler shows the score with its tier color and message.
func (h *Handler) resultHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		state := h.sessions.Read(r)

		result, err := h.assessments.Result(state)
		if err != nil {
			h.flashRedirect(w, r, state, "error", "No survey completed.", "/", http.StatusFound)
			return
		}

		h.render(w, state, "result.html", func(flashes []session.Flash) any {
			return resultData{
				pageData: pageData{Title: "Your Result", Flashes: flashes},
				Score:    result.Score,
				Color:    result.Tier.Color,
				Message:  result.Tier.Message,
			}
		})
	}
}

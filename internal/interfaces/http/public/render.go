package public

import (
	"embed"
	"html/template"
	"io/fs"
	"net/http"

	"github.com/amconnect/assessment/api/internal/assessment/domain"
	"github.com/amconnect/assessment/api/internal/session"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

type templateSet struct {
	pages *template.Template
}

func newTemplateSet() *templateSet {
	return &templateSet{
		pages: template.Must(template.ParseFS(templateFS, "templates/*.html")),
	}
}

// categoryOption is one selectable tile on the entry page.
type categoryOption struct {
	Key   string
	Label string
}

// surveyQuestion is one rendered prompt; YesNo selects the input widget.
type surveyQuestion struct {
	Index int
	Text  string
	YesNo bool
}

type pageData struct {
	Title   string
	Flashes []session.Flash
}

type indexData struct {
	pageData
	Categories []categoryOption
}

type surveyData struct {
	pageData
	Category         string
	CategoryLabel    string
	Questions        []surveyQuestion
	AgreementOptions []string
}

type resultData struct {
	pageData
	Score   int
	Color   string
	Message string
}

func categoryOptions() []categoryOption {
	options := make([]categoryOption, 0, len(domain.Categories()))
	for _, category := range domain.Categories() {
		options = append(options, categoryOption{Key: string(category), Label: category.Label()})
	}
	return options
}

func surveyQuestions(questions []string) []surveyQuestion {
	out := make([]surveyQuestion, 0, len(questions))
	for i, text := range questions {
		out = append(out, surveyQuestion{
			Index: i + 1,
			Text:  text,
			YesNo: i < domain.YesNoCount,
		})
	}
	return out
}

// render pops pending flashes, persists the cleared session and writes the page.
func (h *Handler) render(w http.ResponseWriter, state session.State, page string, build func([]session.Flash) any) {
	flashes, cleared := state.PopFlashes()
	if err := h.sessions.Write(w, cleared); err != nil {
		h.logger.Printf("session write failed: %v", err)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := h.templates.pages.ExecuteTemplate(w, page, build(flashes)); err != nil {
		h.logger.Printf("render %s failed: %v", page, err)
	}
}

func staticHandler() http.Handler {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}
	return http.StripPrefix("/static/", http.FileServer(http.FS(sub)))
}

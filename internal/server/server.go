package server

import (
	"context"
	"database/sql"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/amconnect/assessment/api/internal/assessment/application"
	"github.com/amconnect/assessment/api/internal/assessment/domain"
	"github.com/amconnect/assessment/api/internal/config"
	"github.com/amconnect/assessment/api/internal/infrastructure/sqlite"
	commonhttp "github.com/amconnect/assessment/api/internal/interfaces/http/common"
	publichttp "github.com/amconnect/assessment/api/internal/interfaces/http/public"
	"github.com/amconnect/assessment/api/internal/session"
)

// Server manages the HTTP server lifecycle and injects application services
// into the handlers. It is the composition root: no domain logic lives here.
type Server struct {
	logger      *log.Logger
	db          *sql.DB
	assessments application.AssessmentService
	contacts    application.ContactService
	sessions    *session.Codec
	location    *time.Location
	addr        string
}

// Run bootstraps the schema, assembles routing and middleware and serves
// until interrupted.
func (s *Server) Run() error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	if err := sqlite.EnsureSchema(ctx, s.db); err != nil {
		cancel()
		return err
	}
	cancel()

	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)

	router.Get("/healthz", s.healthHandler())

	publicHandler := publichttp.NewHandler(publichttp.Config{
		Logger:      s.logger,
		Assessments: s.assessments,
		Contacts:    s.contacts,
		Sessions:    s.sessions,
	})
	publicHandler.Register(router)

	httpServer := &http.Server{
		Addr:              s.addr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errChan := make(chan error, 1)
	go func() {
		s.logger.Printf("HTTP server listening: http://%s", s.addr)
		errChan <- httpServer.ListenAndServe()
	}()

	waitForShutdown(httpServer, errChan, s)
	return nil
}

// healthHandler reports database connectivity for monitoring, nothing about
// domain state.
func (s *Server) healthHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()

		if err := s.db.PingContext(ctx); err != nil {
			commonhttp.WriteJSON(s.logger, w, http.StatusServiceUnavailable, map[string]string{
				"status": "degraded",
				"error":  err.Error(),
			})
			return
		}

		commonhttp.WriteJSON(s.logger, w, http.StatusOK, map[string]string{
			"status": "ok",
			"time":   time.Now().In(s.location).Format(time.RFC3339),
		})
	}
}

// shutdown closes the database handle so process exit does not leak the pool.
func (s *Server) shutdown() {
	if err := s.db.Close(); err != nil {
		s.logger.Printf("database close error: %v", err)
	}
}

// waitForShutdown watches ListenAndServe and OS signals to realise a
// graceful stop.
func waitForShutdown(httpServer *http.Server, errChan <-chan error, srv *Server) {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errChan:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			srv.logger.Fatalf("server exited abnormally: %v", err)
		}
	case sig := <-sigChan:
		srv.logger.Printf("received signal %s, shutting down", sig)
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := httpServer.Shutdown(ctx); err != nil {
			srv.logger.Printf("server shutdown error: %v", err)
		}
	}

	srv.shutdown()
}

// New assembles repositories, services and session codec into a Server.
func New(cfg config.Config, db *sql.DB) *Server {
	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		loc = time.FixedZone("IST", int(5.5*60*60))
		cfg.ServerLog.Printf("failed to load timezone %s: %v, using IST", cfg.Timezone, err)
	}

	companyRepo := sqlite.NewCompanyRepository(db)
	surveyRepo := sqlite.NewSurveyRepository(db)
	contactRepo := sqlite.NewContactRepository(db)

	return &Server{
		logger:      cfg.ServerLog,
		db:          db,
		assessments: application.NewAssessmentService(companyRepo, surveyRepo, domain.NewCatalog()),
		contacts:    application.NewContactService(contactRepo),
		sessions:    session.NewCodec(cfg.SessionSecret, cfg.SessionTTL, cfg.SessionSecure),
		location:    loc,
		addr:        cfg.Addr,
	}
}

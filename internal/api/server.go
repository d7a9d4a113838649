package api

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/MikeSquared-Agency/studynotes/internal/extractor"
	"github.com/MikeSquared-Agency/studynotes/internal/metrics"
	"github.com/MikeSquared-Agency/studynotes/internal/processor"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Service is the work behind the HTTP routes; *processor.Processor implements it.
type Service interface {
	Convert(ctx context.Context, videoID, noteType string) (processor.NotesResult, error)
	Analyze(ctx context.Context, videoID, userPrompt string) (processor.AnalysisResult, error)
	Questions(ctx context.Context, notes any, examType string) ([]extractor.QuestionAnswer, error)
}

type Server struct {
	router  *chi.Mux
	port    int
	svc     Service
	logger  *slog.Logger
	httpSrv *http.Server
}

func NewServer(port int, svc Service, logger *slog.Logger) *Server {
	router := chi.NewRouter()
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"*"},
	}))
	router.Use(metrics.Middleware())

	s := &Server{
		router: router,
		port:   port,
		svc:    svc,
		logger: logger,
	}

	router.Get("/", s.root)
	router.Get("/health", s.health)
	router.Handle("/metrics", promhttp.Handler())

	router.Post("/convert-mp3", s.convertMP3)
	router.Post("/content-analysis", s.contentAnalysis)
	router.Post("/generate-questions", s.generateQuestions)

	return s
}

// Start serves until Shutdown is called, which makes it return http.ErrServerClosed.
func (s *Server) Start() error {
	addr := fmt.Sprintf(":%d", s.port)
	s.httpSrv = &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}
	s.logger.Info("API server starting", "addr", addr)
	return s.httpSrv.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpSrv == nil {
		return nil
	}
	return s.httpSrv.Shutdown(ctx)
}

func (s *Server) root(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("hello world"))
}

func (s *Server) health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

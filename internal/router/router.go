package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/saulo-duarte/quizgen-lambda/internal/aiquiz"
	"github.com/saulo-duarte/quizgen-lambda/internal/config"
	"github.com/saulo-duarte/quizgen-lambda/internal/questionbank"
)

// RouterConfig mounts only the handlers that are set, so each binary can
// expose its own surface.
type RouterConfig struct {
	AIQuizHandler       *aiquiz.Handler
	QuestionBankHandler *questionbank.Handler
	StaticDir           string
	CORSOrigins         []string
}

func New(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.CORSOrigins,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-Id"},
		ExposedHeaders: []string{"Content-Length"},
		MaxAge:         300,
	}))

	r.Get("/health", health)

	if cfg.AIQuizHandler != nil {
		aiquiz.Routes(r, cfg.AIQuizHandler)
	}
	if cfg.QuestionBankHandler != nil {
		questionbank.Routes(r, cfg.QuestionBankHandler)
	}

	if cfg.StaticDir != "" {
		r.Get("/*", http.FileServer(http.Dir(cfg.StaticDir)).ServeHTTP)
	}
	return r
}

func health(w http.ResponseWriter, r *http.Request) {
	config.JSON(w, http.StatusOK, map[string]string{"status": "healthy"})
}

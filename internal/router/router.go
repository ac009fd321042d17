package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/triviaforge/trivia-api/internal/category"
	"github.com/triviaforge/trivia-api/internal/config"
	"github.com/triviaforge/trivia-api/internal/middlewares"
	"github.com/triviaforge/trivia-api/internal/question"
	"github.com/triviaforge/trivia-api/internal/quiz"
)

type RouterConfig struct {
	CORS            config.CORS
	CategoryHandler *category.Handler
	QuestionHandler *question.Handler
	QuizHandler     *quiz.Handler
}

func New(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middlewares.RequestLogger)
	r.Use(middlewares.Metrics)
	r.Use(middlewares.Cors(cfg.CORS))

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		config.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	r.Handle("/metrics", promhttp.Handler())

	r.Mount("/categories", category.Routes(cfg.CategoryHandler))
	r.Mount("/questions", question.Routes(cfg.QuestionHandler))
	r.Mount("/quizzes", quiz.Routes(cfg.QuizHandler))

	r.Get("/categories/{categoryID}/questions", cfg.QuestionHandler.ListByCategory)

	return r
}

package handlers

import (
	"SecretInk/internal/config"
	"SecretInk/internal/middleware"
	"SecretInk/internal/service"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	"go.uber.org/zap"
)

type Handler struct {
	Router chi.Router
}

// NewHandler разводящий для хендлеров
func NewHandler(
	boardService *service.BoardService,
	confessionService *service.ConfessionService,
	reactionService *service.ReactionService,
	logger *zap.SugaredLogger,
	config *config.Config,
) *Handler {
	r := chi.NewRouter()

	r.Use(middleware.WithGzip)
	r.Use(middleware.WithLogging)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: splitOrigins(config.AllowedOrigins),
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", fingerprintHeader},
		MaxAge:         300,
	}))

	// Handlers
	boardHandler := NewBoardHandler(boardService, logger)
	confessionHandler := NewConfessionHandler(confessionService, logger)
	reactionHandler := NewReactionHandler(reactionService, logger)

	r.Get("/api/health", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	// Read routes
	r.Get("/api/boards/{slug}", boardHandler.GetBySlug)
	r.Get("/api/boards/{boardID}/confessions", confessionHandler.List)
	r.Get("/api/confessions/{confessionID}/reactions", reactionHandler.Counts)

	// Write routes: троттлинг по IP поверх доменного rate limit
	r.Group(func(r chi.Router) {
		if config.RequestsPerMinute > 0 {
			r.Use(httprate.LimitByIP(config.RequestsPerMinute, time.Minute))
		}
		r.Post("/api/boards", boardHandler.Create)
		r.Post("/api/boards/{boardID}/confessions", confessionHandler.Create)
		r.Post("/api/confessions/{confessionID}/reactions", reactionHandler.Toggle)
	})

	return &Handler{Router: r}
}

func splitOrigins(s string) []string {
	var out []string
	for _, o := range strings.Split(s, ",") {
		if o = strings.TrimSpace(o); o != "" {
			out = append(out, o)
		}
	}
	if len(out) == 0 {
		return []string{"*"}
	}
	return out
}

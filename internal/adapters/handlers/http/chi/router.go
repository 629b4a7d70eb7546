package chi

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	v1 "deep-vault/internal/adapters/handlers/http/chi/v1"
	"deep-vault/internal/adapters/handlers/http/chi/v1/file"
	"deep-vault/internal/adapters/handlers/http/chi/v1/share"
	"deep-vault/internal/adapters/handlers/http/chi/v1/stats"
	"deep-vault/internal/adapters/handlers/http/chi/v1/tag"
	"deep-vault/internal/adapters/handlers/http/chi/v1/trash"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// NewRouter builds http.Handler with chi
func NewRouter(
	logger *slog.Logger,
	fileHandler *file.HandlerV1,
	tagHandler *tag.HandlerV1,
	shareHandler *share.HandlerV1,
	trashHandler *trash.HandlerV1,
	statsHandler *stats.HandlerV1,
	maxRequestBytes int64,
	env string,
) http.Handler {
	r := chi.NewRouter()

	//handle requestID to facilitate debug (X-Request-ID)
	//It fetches from request if exists, or creates it
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(LoggerMiddleware(logger))
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))
	r.Use(middleware.RequestSize(maxRequestBytes))

	if env != "prod" {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins:   []string{"http://localhost:*", "http://127.0.0.1:*"},
			AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID", v1.HeaderPrincipalID},
			ExposedHeaders:   []string{"Link"},
			AllowCredentials: true,
			MaxAge:           300,
		}))
	}

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(v1.PrincipalMiddleware)
		r.Mount("/file", fileHandler.Routes())
		r.Mount("/tag", tagHandler.Routes())
		r.Mount("/share", shareHandler.Routes())
		r.Mount("/trash", trashHandler.Routes())
		r.Mount("/stats", statsHandler.Routes())
	})

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		resp := HealthResponse{
			Status:    "ok",
			Timestamp: time.Now(),
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(resp)
	})

	return r
}

type HealthResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
}

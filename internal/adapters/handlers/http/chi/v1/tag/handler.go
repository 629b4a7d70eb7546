package tag

import (
	"log/slog"
	"net/http"
	"time"

	v1 "deep-vault/internal/adapters/handlers/http/chi/v1"
	"deep-vault/internal/core/domain"
	"deep-vault/internal/core/port"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// HandlerV1 is the handler for v1 tag routes
type HandlerV1 struct {
	tagService port.TagService
	logger     *slog.Logger
}

// NewTagHandlerV1 creates HandlerV1
func NewTagHandlerV1(service port.TagService, logger *slog.Logger) *HandlerV1 {
	return &HandlerV1{
		tagService: service,
		logger:     logger,
	}
}

// Routes exposes routes
func (h *HandlerV1) Routes() chi.Router {
	router := chi.NewRouter()

	router.Post("/", h.CreateTagV1)
	router.Get("/", h.ListTagsV1)
	router.Patch("/{tagID}", h.UpdateTagV1)
	router.Delete("/{tagID}", h.DeleteTagV1)

	return router
}

// V1TagResponse is the wire form of a tag
type V1TagResponse struct {
	TagID      uuid.UUID `json:"tag_id"`
	Name       string    `json:"name"`
	Color      string    `json:"color,omitempty"`
	UsageCount int       `json:"usage_count"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func toTagResponse(tag domain.Tag) V1TagResponse {
	return V1TagResponse{
		TagID:      tag.ID,
		Name:       tag.Name,
		Color:      tag.Color,
		UsageCount: tag.UsageCount,
		CreatedAt:  tag.CreatedAt,
		UpdatedAt:  tag.UpdatedAt,
	}
}

func parseTagID(r *http.Request) (uuid.UUID, error) {
	return uuid.Parse(chi.URLParam(r, "tagID"))
}

func caller(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	principalID, ok := v1.PrincipalFromRequest(r)
	if !ok {
		http.Error(w, "missing principal", http.StatusUnauthorized)
	}
	return principalID, ok
}

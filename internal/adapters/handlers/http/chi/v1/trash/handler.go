package trash

import (
	"log/slog"
	"net/http"

	v1 "deep-vault/internal/adapters/handlers/http/chi/v1"
	"deep-vault/internal/core/domain"
	"deep-vault/internal/core/port"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// HandlerV1 is the handler for v1 recycle bin routes
type HandlerV1 struct {
	recycleBinService port.RecycleBinService
	logger            *slog.Logger
}

// NewTrashHandlerV1 creates HandlerV1
func NewTrashHandlerV1(service port.RecycleBinService, logger *slog.Logger) *HandlerV1 {
	return &HandlerV1{
		recycleBinService: service,
		logger:            logger,
	}
}

// Routes exposes routes
func (h *HandlerV1) Routes() chi.Router {
	router := chi.NewRouter()

	router.Get("/", h.ListTrashV1)
	router.Get("/stats", h.TrashStatsV1)
	router.Post("/", h.TrashFilesV1)
	router.Post("/restore", h.RestoreFilesV1)
	router.Delete("/{fileID}", h.PermanentDeleteV1)
	router.Post("/delete", h.PermanentDeleteBatchV1)
	router.Post("/empty", h.EmptyTrashV1)

	return router
}

// V1BatchResultResponse aggregates per-item outcomes
type V1BatchResultResponse struct {
	Total     int `json:"total"`
	Succeeded int `json:"succeeded"`
	Failed    int `json:"failed"`
}

func toBatchResultResponse(result domain.BatchResult) V1BatchResultResponse {
	return V1BatchResultResponse{
		Total:     result.Total,
		Succeeded: result.Succeeded,
		Failed:    result.Failed,
	}
}

func caller(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	principalID, ok := v1.PrincipalFromRequest(r)
	if !ok {
		http.Error(w, "missing principal", http.StatusUnauthorized)
	}
	return principalID, ok
}

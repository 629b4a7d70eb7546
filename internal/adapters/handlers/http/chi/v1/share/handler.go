package share

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

// HandlerV1 is the handler for v1 share routes
type HandlerV1 struct {
	shareService port.ShareService
	logger       *slog.Logger
}

// NewShareHandlerV1 creates HandlerV1
func NewShareHandlerV1(service port.ShareService, logger *slog.Logger) *HandlerV1 {
	return &HandlerV1{
		shareService: service,
		logger:       logger,
	}
}

// Routes exposes routes
func (h *HandlerV1) Routes() chi.Router {
	router := chi.NewRouter()

	router.Post("/", h.CreateShareV1)
	router.Get("/outgoing", h.ListOutgoingV1)
	router.Get("/incoming", h.ListIncomingV1)
	router.Get("/{shareID}", h.GetShareV1)
	router.Delete("/{shareID}", h.CancelShareV1)

	return router
}

// V1ShareResponse is the wire form of a share grant
type V1ShareResponse struct {
	ShareID         uuid.UUID  `json:"share_id"`
	FileID          uuid.UUID  `json:"file_id"`
	FromOwnerID     uuid.UUID  `json:"from_owner_id"`
	ToPrincipalID   uuid.UUID  `json:"to_principal_id"`
	ShareType       string     `json:"share_type"`
	ExpiresAt       *time.Time `json:"expires_at,omitempty"`
	PermissionLevel string     `json:"permission_level"`
	Message         string     `json:"message,omitempty"`
	ViewCount       int        `json:"view_count"`
	DownloadCount   int        `json:"download_count"`
	CreatedAt       time.Time  `json:"created_at"`
}

func toShareResponse(share domain.FileShare) V1ShareResponse {
	return V1ShareResponse{
		ShareID:         share.ID,
		FileID:          share.FileID,
		FromOwnerID:     share.FromOwnerID,
		ToPrincipalID:   share.ToPrincipalID,
		ShareType:       string(share.ShareType),
		ExpiresAt:       share.ExpiresAt,
		PermissionLevel: string(share.PermissionLevel),
		Message:         share.Message,
		ViewCount:       share.ViewCount,
		DownloadCount:   share.DownloadCount,
		CreatedAt:       share.CreatedAt,
	}
}

func caller(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	principalID, ok := v1.PrincipalFromRequest(r)
	if !ok {
		http.Error(w, "missing principal", http.StatusUnauthorized)
	}
	return principalID, ok
}

package share

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"deep-vault/internal/core/domain"
	"deep-vault/internal/core/port"

	"github.com/google/uuid"
)

// V1CreateShareRequest is the body request to grant a share
type V1CreateShareRequest struct {
	FileID          uuid.UUID  `json:"file_id"`
	ToPrincipalID   uuid.UUID  `json:"to_principal_id"`
	ShareType       string     `json:"share_type"`
	ExpiresAt       *time.Time `json:"expires_at,omitempty"`
	PermissionLevel string     `json:"permission_level,omitempty"`
	Message         string     `json:"message,omitempty"`
}

// CreateShareV1 is the handler for create share
func (h *HandlerV1) CreateShareV1(w http.ResponseWriter, r *http.Request) {

	ownerID, ok := caller(w, r)
	if !ok {
		return
	}

	var req V1CreateShareRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Error("error decoding create share request", "error", err)
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}
	if req.FileID == uuid.Nil || req.ToPrincipalID == uuid.Nil {
		http.Error(w, "file_id and to_principal_id are required", http.StatusBadRequest)
		return
	}

	params := port.CreateShareParams{
		FileID:          req.FileID,
		ToPrincipalID:   req.ToPrincipalID,
		ShareType:       domain.ShareType(req.ShareType),
		ExpiresAt:       req.ExpiresAt,
		PermissionLevel: domain.PermissionLevel(req.PermissionLevel),
		Message:         req.Message,
	}

	share, createErr := h.shareService.Create(r.Context(), ownerID, params)
	switch {
	case errors.Is(createErr, domain.ErrShareExpiryRequired):
		http.Error(w, createErr.Error(), http.StatusBadRequest)
		return
	case errors.Is(createErr, domain.ErrFileNotFound):
		http.Error(w, "file not found", http.StatusNotFound)
		return
	case errors.Is(createErr, domain.ErrPrincipalNotFound):
		http.Error(w, "principal not found", http.StatusNotFound)
		return
	case errors.Is(createErr, domain.ErrPermissionDenied):
		http.Error(w, "permission denied", http.StatusForbidden)
		return
	case errors.Is(createErr, domain.ErrShareAlreadyExists):
		http.Error(w, "share already exists", http.StatusConflict)
		return
	case createErr != nil:
		h.logger.Error("error creating share", "error", createErr)
		http.Error(w, "internal server error", http.StatusServiceUnavailable)
		return
	default:
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		if err := json.NewEncoder(w).Encode(toShareResponse(*share)); err != nil {
			h.logger.Error("error encoding response", "error", err)
		}
		return
	}
}

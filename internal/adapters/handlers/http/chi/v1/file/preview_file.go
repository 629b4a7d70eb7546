package file

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"deep-vault/internal/core/domain"
)

// V1PreviewFileRequest is the body request for a preview link
type V1PreviewFileRequest struct {
	ExpirySeconds int64 `json:"expiry_seconds"`
}

// V1PreviewFileResponse is the response carrying the presigned link
type V1PreviewFileResponse struct {
	URL       string    `json:"url"`
	ExpiresIn int64     `json:"expires_in_seconds"`
	ExpiresAt time.Time `json:"expires_at"`
}

// PreviewFileV1 issues a time-limited presigned link. The requested
// expiry is clamped to the caller's share window when shared access is
// in play; zero means the server default.
func (h *HandlerV1) PreviewFileV1(w http.ResponseWriter, r *http.Request) {

	callerID, ok := caller(w, r)
	if !ok {
		return
	}

	fileID, err := parseFileID(r)
	if err != nil {
		http.Error(w, "invalid file id", http.StatusBadRequest)
		return
	}

	var req V1PreviewFileRequest
	if r.ContentLength > 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid request", http.StatusBadRequest)
			return
		}
	}

	grant, previewErr := h.fileService.PreviewURL(r.Context(), callerID, fileID, time.Duration(req.ExpirySeconds)*time.Second, accessContext(r))
	switch {
	case errors.Is(previewErr, domain.ErrFileNotFound):
		http.Error(w, "file not found", http.StatusNotFound)
		return
	case errors.Is(previewErr, domain.ErrPermissionDenied):
		http.Error(w, "permission denied", http.StatusForbidden)
		return
	case errors.Is(previewErr, domain.ErrShareExpired):
		http.Error(w, "share expired", http.StatusGone)
		return
	case errors.Is(previewErr, domain.ErrFileNotReady):
		http.Error(w, "file not ready", http.StatusConflict)
		return
	case previewErr != nil:
		h.logger.Error("error building preview link", "error", previewErr)
		http.Error(w, "internal server error", http.StatusServiceUnavailable)
		return
	default:
		resp := V1PreviewFileResponse{
			URL:       grant.URL,
			ExpiresIn: int64(grant.ExpiresIn.Seconds()),
			ExpiresAt: grant.ExpiresAt,
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		if err := json.NewEncoder(w).Encode(resp); err != nil {
			h.logger.Error("error encoding response", "error", err)
		}
		return
	}
}

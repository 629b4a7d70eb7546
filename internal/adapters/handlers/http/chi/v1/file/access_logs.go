package file

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"deep-vault/internal/core/domain"

	"github.com/google/uuid"
)

// V1AccessLogEntryResponse is the wire form of one audit row
type V1AccessLogEntryResponse struct {
	ID          uuid.UUID  `json:"id"`
	PrincipalID *uuid.UUID `json:"principal_id,omitempty"`
	AccessType  string     `json:"access_type"`
	ClientIP    string     `json:"client_ip,omitempty"`
	UserAgent   string     `json:"user_agent,omitempty"`
	ShareID     *uuid.UUID `json:"share_id,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}

// ListAccessLogsV1 pages through a file's audit trail, owner only.
func (h *HandlerV1) ListAccessLogsV1(w http.ResponseWriter, r *http.Request) {

	ownerID, ok := caller(w, r)
	if !ok {
		return
	}

	fileID, err := parseFileID(r)
	if err != nil {
		http.Error(w, "invalid file id", http.StatusBadRequest)
		return
	}

	limit := 50
	if raw := r.URL.Query().Get("limit"); raw != "" {
		if limit, err = strconv.Atoi(raw); err != nil || limit <= 0 {
			http.Error(w, "invalid limit", http.StatusBadRequest)
			return
		}
	}
	offset := 0
	if raw := r.URL.Query().Get("offset"); raw != "" {
		if offset, err = strconv.Atoi(raw); err != nil || offset < 0 {
			http.Error(w, "invalid offset", http.StatusBadRequest)
			return
		}
	}

	entries, listErr := h.accessLogService.ListForFile(r.Context(), ownerID, fileID, limit, offset)
	switch {
	case errors.Is(listErr, domain.ErrFileNotFound):
		http.Error(w, "file not found", http.StatusNotFound)
		return
	case errors.Is(listErr, domain.ErrPermissionDenied):
		http.Error(w, "permission denied", http.StatusForbidden)
		return
	case listErr != nil:
		h.logger.Error("error listing access logs", "error", listErr)
		http.Error(w, "internal server error", http.StatusServiceUnavailable)
		return
	default:
		resp := make([]V1AccessLogEntryResponse, 0, len(entries))
		for _, entry := range entries {
			resp = append(resp, V1AccessLogEntryResponse{
				ID:          entry.ID,
				PrincipalID: entry.PrincipalID,
				AccessType:  string(entry.AccessType),
				ClientIP:    entry.ClientIP,
				UserAgent:   entry.UserAgent,
				ShareID:     entry.ShareID,
				CreatedAt:   entry.CreatedAt,
			})
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		if err := json.NewEncoder(w).Encode(resp); err != nil {
			h.logger.Error("error encoding response", "error", err)
		}
		return
	}
}

package file

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"deep-vault/internal/core/domain"

	"github.com/google/uuid"
)

// V1FileShareResponse is the wire form of a share grant
type V1FileShareResponse struct {
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

func toFileShareResponse(share domain.FileShare) V1FileShareResponse {
	return V1FileShareResponse{
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

// V1GetFileResponse is the response to get file detail
type V1GetFileResponse struct {
	V1FileRecordResponse
	Tags           []V1TagResponse       `json:"tags"`
	Shares         []V1FileShareResponse `json:"shares,omitempty"`
	ViewCount      int64                 `json:"view_count"`
	DownloadCount  int64                 `json:"download_count"`
	LastAccessedAt *time.Time            `json:"last_accessed_at,omitempty"`
}

// V1TagResponse is the wire form of a tag
type V1TagResponse struct {
	TagID      uuid.UUID `json:"tag_id"`
	Name       string    `json:"name"`
	Color      string    `json:"color,omitempty"`
	UsageCount int       `json:"usage_count"`
}

func toTagResponse(tag domain.Tag) V1TagResponse {
	return V1TagResponse{
		TagID:      tag.ID,
		Name:       tag.Name,
		Color:      tag.Color,
		UsageCount: tag.UsageCount,
	}
}

// GetFileV1 is the handler for file detail
func (h *HandlerV1) GetFileV1(w http.ResponseWriter, r *http.Request) {

	callerID, ok := caller(w, r)
	if !ok {
		return
	}

	fileID, err := parseFileID(r)
	if err != nil {
		http.Error(w, "invalid file id", http.StatusBadRequest)
		return
	}

	detail, err := h.fileService.Get(r.Context(), callerID, fileID)
	switch {
	case errors.Is(err, domain.ErrFileNotFound):
		http.Error(w, "file not found", http.StatusNotFound)
		return
	case errors.Is(err, domain.ErrPermissionDenied):
		http.Error(w, "permission denied", http.StatusForbidden)
		return
	case errors.Is(err, domain.ErrShareExpired):
		http.Error(w, "share expired", http.StatusGone)
		return
	case err != nil:
		h.logger.Error("error getting file", "error", err)
		http.Error(w, "internal server error", http.StatusServiceUnavailable)
		return
	default:
		resp := V1GetFileResponse{
			V1FileRecordResponse: toFileRecordResponse(detail.FileRecord),
			Tags:                 make([]V1TagResponse, 0, len(detail.Tags)),
			ViewCount:            detail.ViewCount,
			DownloadCount:        detail.DownloadCount,
			LastAccessedAt:       detail.LastAccessedAt,
		}
		for _, tag := range detail.Tags {
			resp.Tags = append(resp.Tags, toTagResponse(tag))
		}
		for _, share := range detail.Shares {
			resp.Shares = append(resp.Shares, toFileShareResponse(share))
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		if err := json.NewEncoder(w).Encode(resp); err != nil {
			h.logger.Error("error encoding response", "error", err)
		}
		return
	}
}

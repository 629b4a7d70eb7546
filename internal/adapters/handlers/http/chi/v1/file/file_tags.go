package file

import (
	"encoding/json"
	"errors"
	"net/http"

	"deep-vault/internal/core/domain"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// V1SetFileTagsRequest is the body request to replace a file's tag set
type V1SetFileTagsRequest struct {
	TagIDs []uuid.UUID `json:"tag_ids"`
}

// V1SetFileTagsResponse echoes the tag set now linked to the file
type V1SetFileTagsResponse struct {
	TagIDs []uuid.UUID `json:"tag_ids"`
}

// SetFileTagsV1 replaces the file's tag set; only the delta between the
// current and desired sets is touched.
func (h *HandlerV1) SetFileTagsV1(w http.ResponseWriter, r *http.Request) {

	ownerID, ok := caller(w, r)
	if !ok {
		return
	}

	fileID, err := parseFileID(r)
	if err != nil {
		http.Error(w, "invalid file id", http.StatusBadRequest)
		return
	}

	var req V1SetFileTagsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}

	tagIDs, setErr := h.tagService.SetFileTags(r.Context(), ownerID, fileID, req.TagIDs)
	switch {
	case errors.Is(setErr, domain.ErrFileNotFound):
		http.Error(w, "file not found", http.StatusNotFound)
		return
	case errors.Is(setErr, domain.ErrTagNotFound):
		http.Error(w, setErr.Error(), http.StatusBadRequest)
		return
	case errors.Is(setErr, domain.ErrPermissionDenied):
		http.Error(w, "permission denied", http.StatusForbidden)
		return
	case setErr != nil:
		h.logger.Error("error setting file tags", "error", setErr)
		http.Error(w, "internal server error", http.StatusServiceUnavailable)
		return
	default:
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		if err := json.NewEncoder(w).Encode(V1SetFileTagsResponse{TagIDs: tagIDs}); err != nil {
			h.logger.Error("error encoding response", "error", err)
		}
		return
	}
}

// GetFileTagsV1 lists the tags linked to a file the caller can see.
func (h *HandlerV1) GetFileTagsV1(w http.ResponseWriter, r *http.Request) {

	callerID, ok := caller(w, r)
	if !ok {
		return
	}

	fileID, err := parseFileID(r)
	if err != nil {
		http.Error(w, "invalid file id", http.StatusBadRequest)
		return
	}

	tags, getErr := h.tagService.GetFileTags(r.Context(), callerID, fileID)
	switch {
	case errors.Is(getErr, domain.ErrFileNotFound):
		http.Error(w, "file not found", http.StatusNotFound)
		return
	case errors.Is(getErr, domain.ErrPermissionDenied):
		http.Error(w, "permission denied", http.StatusForbidden)
		return
	case errors.Is(getErr, domain.ErrShareExpired):
		http.Error(w, "share expired", http.StatusGone)
		return
	case getErr != nil:
		h.logger.Error("error getting file tags", "error", getErr)
		http.Error(w, "internal server error", http.StatusServiceUnavailable)
		return
	default:
		resp := make([]V1TagResponse, 0, len(tags))
		for _, tag := range tags {
			resp = append(resp, toTagResponse(tag))
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		if err := json.NewEncoder(w).Encode(resp); err != nil {
			h.logger.Error("error encoding response", "error", err)
		}
		return
	}
}

// RemoveFileTagV1 detaches one tag from a file.
func (h *HandlerV1) RemoveFileTagV1(w http.ResponseWriter, r *http.Request) {

	ownerID, ok := caller(w, r)
	if !ok {
		return
	}

	fileID, err := parseFileID(r)
	if err != nil {
		http.Error(w, "invalid file id", http.StatusBadRequest)
		return
	}
	tagID, err := uuid.Parse(chi.URLParam(r, "tagID"))
	if err != nil {
		http.Error(w, "invalid tag id", http.StatusBadRequest)
		return
	}

	removeErr := h.tagService.RemoveFileTag(r.Context(), ownerID, fileID, tagID)
	switch {
	case errors.Is(removeErr, domain.ErrFileNotFound):
		http.Error(w, "file not found", http.StatusNotFound)
		return
	case errors.Is(removeErr, domain.ErrTagNotFound):
		http.Error(w, "tag not linked", http.StatusNotFound)
		return
	case errors.Is(removeErr, domain.ErrPermissionDenied):
		http.Error(w, "permission denied", http.StatusForbidden)
		return
	case removeErr != nil:
		h.logger.Error("error removing file tag", "error", removeErr)
		http.Error(w, "internal server error", http.StatusServiceUnavailable)
		return
	default:
		w.WriteHeader(http.StatusNoContent)
		return
	}
}

package tag

import (
	"encoding/json"
	"errors"
	"net/http"

	"deep-vault/internal/core/domain"
)

// V1UpdateTagRequest is the body request for update tag
type V1UpdateTagRequest struct {
	Name  string `json:"name"`
	Color string `json:"color"`
}

// UpdateTagV1 is the handler for update tag
func (h *HandlerV1) UpdateTagV1(w http.ResponseWriter, r *http.Request) {

	ownerID, ok := caller(w, r)
	if !ok {
		return
	}

	tagID, err := parseTagID(r)
	if err != nil {
		http.Error(w, "invalid tag id", http.StatusBadRequest)
		return
	}

	var req V1UpdateTagRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}

	tag, updateErr := h.tagService.Update(r.Context(), ownerID, tagID, req.Name, req.Color)
	switch {
	case errors.Is(updateErr, domain.ErrInvalidTagName):
		http.Error(w, updateErr.Error(), http.StatusBadRequest)
		return
	case errors.Is(updateErr, domain.ErrTagNotFound):
		http.Error(w, "tag not found", http.StatusNotFound)
		return
	case errors.Is(updateErr, domain.ErrTagAlreadyExists):
		http.Error(w, "tag already exists", http.StatusConflict)
		return
	case errors.Is(updateErr, domain.ErrPermissionDenied):
		http.Error(w, "permission denied", http.StatusForbidden)
		return
	case updateErr != nil:
		h.logger.Error("error updating tag", "error", updateErr)
		http.Error(w, "internal server error", http.StatusServiceUnavailable)
		return
	default:
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		if err := json.NewEncoder(w).Encode(toTagResponse(*tag)); err != nil {
			h.logger.Error("error encoding response", "error", err)
		}
		return
	}
}

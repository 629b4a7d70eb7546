package tag

import (
	"encoding/json"
	"errors"
	"net/http"

	"deep-vault/internal/core/domain"
)

// V1CreateTagRequest is the body request for create tag
type V1CreateTagRequest struct {
	Name  string `json:"name"`
	Color string `json:"color"`
}

// CreateTagV1 is the handler for create tag
func (h *HandlerV1) CreateTagV1(w http.ResponseWriter, r *http.Request) {

	ownerID, ok := caller(w, r)
	if !ok {
		return
	}

	var req V1CreateTagRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Error("error decoding create tag request", "error", err)
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}

	tag, createErr := h.tagService.Create(r.Context(), ownerID, req.Name, req.Color)
	switch {
	case errors.Is(createErr, domain.ErrInvalidTagName):
		http.Error(w, createErr.Error(), http.StatusBadRequest)
		return
	case errors.Is(createErr, domain.ErrTagAlreadyExists):
		http.Error(w, "tag already exists", http.StatusConflict)
		return
	case createErr != nil:
		h.logger.Error("error creating tag", "error", createErr)
		http.Error(w, "internal server error", http.StatusServiceUnavailable)
		return
	default:
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		if err := json.NewEncoder(w).Encode(toTagResponse(*tag)); err != nil {
			h.logger.Error("error encoding response", "error", err)
		}
		return
	}
}

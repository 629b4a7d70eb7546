package trash

import (
	"encoding/json"
	"errors"
	"net/http"

	"deep-vault/internal/core/domain"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// PermanentDeleteV1 destroys one trashed record for good.
func (h *HandlerV1) PermanentDeleteV1(w http.ResponseWriter, r *http.Request) {

	ownerID, ok := caller(w, r)
	if !ok {
		return
	}

	fileID, err := uuid.Parse(chi.URLParam(r, "fileID"))
	if err != nil {
		http.Error(w, "invalid file id", http.StatusBadRequest)
		return
	}

	deleteErr := h.recycleBinService.PermanentDelete(r.Context(), ownerID, fileID)
	switch {
	case errors.Is(deleteErr, domain.ErrFileNotFound):
		http.Error(w, "file not found", http.StatusNotFound)
		return
	case errors.Is(deleteErr, domain.ErrPermissionDenied):
		http.Error(w, "permission denied", http.StatusForbidden)
		return
	case errors.Is(deleteErr, domain.ErrFileStillReferenced):
		http.Error(w, "file still referenced", http.StatusPreconditionFailed)
		return
	case deleteErr != nil:
		h.logger.Error("error permanently deleting file", "error", deleteErr)
		http.Error(w, "internal server error", http.StatusServiceUnavailable)
		return
	default:
		w.WriteHeader(http.StatusNoContent)
		return
	}
}

// PermanentDeleteBatchV1 destroys several trashed records, reporting
// per-item outcomes.
func (h *HandlerV1) PermanentDeleteBatchV1(w http.ResponseWriter, r *http.Request) {

	ownerID, ok := caller(w, r)
	if !ok {
		return
	}

	var req V1TrashFilesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}
	if len(req.FileIDs) == 0 {
		http.Error(w, "file_ids required", http.StatusBadRequest)
		return
	}

	result, err := h.recycleBinService.PermanentDeleteBatch(r.Context(), ownerID, req.FileIDs)
	if err != nil {
		h.logger.Error("error permanently deleting files", "error", err)
		http.Error(w, "internal server error", http.StatusServiceUnavailable)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(toBatchResultResponse(result)); err != nil {
		h.logger.Error("error encoding response", "error", err)
	}
}

// EmptyTrashV1 destroys everything in the caller's recycle bin.
func (h *HandlerV1) EmptyTrashV1(w http.ResponseWriter, r *http.Request) {

	ownerID, ok := caller(w, r)
	if !ok {
		return
	}

	result, err := h.recycleBinService.EmptyRecycleBin(r.Context(), ownerID)
	if err != nil {
		h.logger.Error("error emptying trash", "error", err)
		http.Error(w, "internal server error", http.StatusServiceUnavailable)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(toBatchResultResponse(result)); err != nil {
		h.logger.Error("error encoding response", "error", err)
	}
}

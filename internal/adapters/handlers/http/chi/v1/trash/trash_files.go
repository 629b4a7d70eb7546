package trash

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"deep-vault/internal/core/domain"

	"github.com/google/uuid"
)

// V1TrashFilesRequest carries the records to move in or out of trash
type V1TrashFilesRequest struct {
	FileIDs []uuid.UUID `json:"file_ids"`
}

// TrashFilesV1 soft-deletes the given records. A single id surfaces the
// concrete failure; batches report per-item outcomes.
func (h *HandlerV1) TrashFilesV1(w http.ResponseWriter, r *http.Request) {
	h.moveFiles(w, r, h.recycleBinService.Trash, h.recycleBinService.TrashBatch)
}

// RestoreFilesV1 brings trashed records back.
func (h *HandlerV1) RestoreFilesV1(w http.ResponseWriter, r *http.Request) {
	h.moveFiles(w, r, h.recycleBinService.Restore, h.recycleBinService.RestoreBatch)
}

func (h *HandlerV1) moveFiles(
	w http.ResponseWriter,
	r *http.Request,
	single func(ctx context.Context, ownerID, fileID uuid.UUID) error,
	batch func(ctx context.Context, ownerID uuid.UUID, fileIDs []uuid.UUID) (domain.BatchResult, error),
) {
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

	if len(req.FileIDs) == 1 {
		err := single(r.Context(), ownerID, req.FileIDs[0])
		switch {
		case errors.Is(err, domain.ErrFileNotFound):
			http.Error(w, "file not found", http.StatusNotFound)
			return
		case errors.Is(err, domain.ErrPermissionDenied):
			http.Error(w, "permission denied", http.StatusForbidden)
			return
		case err != nil:
			h.logger.Error("error moving file", "error", err)
			http.Error(w, "internal server error", http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusNoContent)
		return
	}

	result, err := batch(r.Context(), ownerID, req.FileIDs)
	if err != nil {
		h.logger.Error("error moving files", "error", err)
		http.Error(w, "internal server error", http.StatusServiceUnavailable)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(toBatchResultResponse(result)); err != nil {
		h.logger.Error("error encoding response", "error", err)
	}
}

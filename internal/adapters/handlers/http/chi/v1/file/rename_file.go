package file

import (
	"encoding/json"
	"errors"
	"net/http"

	"deep-vault/internal/core/domain"
)

// V1RenameFileRequest is the body request to rename a file
type V1RenameFileRequest struct {
	Name string `json:"name"`
}

// RenameFileV1 is the handler for rename file
func (h *HandlerV1) RenameFileV1(w http.ResponseWriter, r *http.Request) {

	ownerID, ok := caller(w, r)
	if !ok {
		return
	}

	fileID, err := parseFileID(r)
	if err != nil {
		http.Error(w, "invalid file id", http.StatusBadRequest)
		return
	}

	var req V1RenameFileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}

	record, renameErr := h.fileService.Rename(r.Context(), ownerID, fileID, req.Name)
	switch {
	case errors.Is(renameErr, domain.ErrInvalidFilename):
		http.Error(w, renameErr.Error(), http.StatusBadRequest)
		return
	case errors.Is(renameErr, domain.ErrFileNotFound):
		http.Error(w, "file not found", http.StatusNotFound)
		return
	case errors.Is(renameErr, domain.ErrPermissionDenied):
		http.Error(w, "permission denied", http.StatusForbidden)
		return
	case renameErr != nil:
		h.logger.Error("error renaming file", "error", renameErr)
		http.Error(w, "internal server error", http.StatusServiceUnavailable)
		return
	default:
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		if err := json.NewEncoder(w).Encode(toFileRecordResponse(*record)); err != nil {
			h.logger.Error("error encoding response", "error", err)
		}
		return
	}
}

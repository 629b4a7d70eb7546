package file

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"

	"deep-vault/internal/core/domain"

	"github.com/google/uuid"
)

// UploadFileV1 accepts a multipart form with the file content under
// "file", a "category" field and an optional comma-separated "tag_ids"
// field. Re-uploading content the owner already has returns the
// existing record with 200 instead of 201.
func (h *HandlerV1) UploadFileV1(w http.ResponseWriter, r *http.Request) {

	ownerID, ok := caller(w, r)
	if !ok {
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadBytes+(1<<20))
	if err := r.ParseMultipartForm(h.maxUploadBytes); err != nil {
		http.Error(w, "invalid multipart form", http.StatusBadRequest)
		return
	}

	part, header, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "file field is required", http.StatusBadRequest)
		return
	}
	defer part.Close()

	content, err := io.ReadAll(part)
	if err != nil {
		h.logger.Error("error reading upload body", "error", err)
		http.Error(w, "could not read file", http.StatusBadRequest)
		return
	}

	category := domain.Category(r.FormValue("category"))

	var tagIDs []uuid.UUID
	if raw := r.FormValue("tag_ids"); raw != "" {
		for _, field := range strings.Split(raw, ",") {
			tagID, parseErr := uuid.Parse(strings.TrimSpace(field))
			if parseErr != nil {
				http.Error(w, "invalid tag id", http.StatusBadRequest)
				return
			}
			tagIDs = append(tagIDs, tagID)
		}
	}

	record, uploadErr := h.fileService.Upload(r.Context(), ownerID, content, header.Filename, category, tagIDs, accessContext(r))
	switch {
	case errors.Is(uploadErr, domain.ErrFileSizeTooBig),
		errors.Is(uploadErr, domain.ErrInvalidFilename),
		errors.Is(uploadErr, domain.ErrInvalidCategory),
		errors.Is(uploadErr, domain.ErrTagNotFound):
		http.Error(w, uploadErr.Error(), http.StatusBadRequest)
		return
	case uploadErr != nil:
		h.logger.Error("error uploading file", "error", uploadErr)
		http.Error(w, "internal server error", http.StatusServiceUnavailable)
		return
	default:
		// A fresh insert has no persisted timestamps yet; a same-owner
		// duplicate comes back as the stored record.
		status := http.StatusCreated
		if !record.CreatedAt.IsZero() {
			status = http.StatusOK
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		if err := json.NewEncoder(w).Encode(toFileRecordResponse(*record)); err != nil {
			h.logger.Error("error encoding response", "error", err)
		}
		return
	}
}

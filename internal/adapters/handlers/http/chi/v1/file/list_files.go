package file

import (
	"encoding/json"
	"net/http"
	"strconv"

	"deep-vault/internal/core/domain"
	"deep-vault/internal/core/port"

	"github.com/google/uuid"
)

// V1ListFilesResponse is the response to list files
type V1ListFilesResponse struct {
	Files []V1FileRecordResponse `json:"files"`
	Total int64                  `json:"total"`
}

// ListFilesV1 lists the caller's active files, filterable by category,
// tag and name substring via query parameters.
func (h *HandlerV1) ListFilesV1(w http.ResponseWriter, r *http.Request) {

	ownerID, ok := caller(w, r)
	if !ok {
		return
	}

	filter := port.FileListFilter{
		NameContains: r.URL.Query().Get("name"),
	}

	if raw := r.URL.Query().Get("category"); raw != "" {
		category := domain.Category(raw)
		if !domain.ValidCategory(category) {
			http.Error(w, "unknown category", http.StatusBadRequest)
			return
		}
		filter.Category = &category
	}

	if raw := r.URL.Query().Get("tag_id"); raw != "" {
		tagID, err := uuid.Parse(raw)
		if err != nil {
			http.Error(w, "invalid tag id", http.StatusBadRequest)
			return
		}
		filter.TagID = &tagID
	}

	if raw := r.URL.Query().Get("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit < 0 {
			http.Error(w, "invalid limit", http.StatusBadRequest)
			return
		}
		filter.Limit = limit
	}
	if raw := r.URL.Query().Get("offset"); raw != "" {
		offset, err := strconv.Atoi(raw)
		if err != nil || offset < 0 {
			http.Error(w, "invalid offset", http.StatusBadRequest)
			return
		}
		filter.Offset = offset
	}

	records, total, err := h.fileService.List(r.Context(), ownerID, filter)
	if err != nil {
		h.logger.Error("error listing files", "error", err)
		http.Error(w, "internal server error", http.StatusServiceUnavailable)
		return
	}

	resp := V1ListFilesResponse{Files: make([]V1FileRecordResponse, 0, len(records)), Total: total}
	for _, record := range records {
		resp.Files = append(resp.Files, toFileRecordResponse(record))
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		h.logger.Error("error encoding response", "error", err)
	}
}

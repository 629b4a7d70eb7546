package trash

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
)

// V1TrashedFileResponse is the wire form of a trashed record
type V1TrashedFileResponse struct {
	FileID    uuid.UUID `json:"file_id"`
	Name      string    `json:"name"`
	SizeBytes int64     `json:"size_bytes"`
	Category  string    `json:"category"`
	TrashedAt time.Time `json:"trashed_at"`
}

// V1ListTrashResponse is the response to list trash
type V1ListTrashResponse struct {
	Files []V1TrashedFileResponse `json:"files"`
}

// ListTrashV1 pages through the caller's recycle bin.
func (h *HandlerV1) ListTrashV1(w http.ResponseWriter, r *http.Request) {

	ownerID, ok := caller(w, r)
	if !ok {
		return
	}

	limit := 20
	offset := 0
	var err error
	if raw := r.URL.Query().Get("limit"); raw != "" {
		if limit, err = strconv.Atoi(raw); err != nil || limit <= 0 {
			http.Error(w, "invalid limit", http.StatusBadRequest)
			return
		}
	}
	if raw := r.URL.Query().Get("offset"); raw != "" {
		if offset, err = strconv.Atoi(raw); err != nil || offset < 0 {
			http.Error(w, "invalid offset", http.StatusBadRequest)
			return
		}
	}

	records, listErr := h.recycleBinService.ListTrash(r.Context(), ownerID, limit, offset)
	if listErr != nil {
		h.logger.Error("error listing trash", "error", listErr)
		http.Error(w, "internal server error", http.StatusServiceUnavailable)
		return
	}

	resp := V1ListTrashResponse{Files: make([]V1TrashedFileResponse, 0, len(records))}
	for _, record := range records {
		resp.Files = append(resp.Files, V1TrashedFileResponse{
			FileID:    record.ID,
			Name:      record.OriginalName,
			SizeBytes: record.SizeBytes,
			Category:  string(record.Category),
			TrashedAt: record.UpdatedAt,
		})
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		h.logger.Error("error encoding response", "error", err)
	}
}

// V1TrashStatsResponse summarizes the recycle bin
type V1TrashStatsResponse struct {
	TotalFiles     int64      `json:"total_files"`
	TotalSizeBytes int64      `json:"total_size_bytes"`
	OldestTrashed  *time.Time `json:"oldest_trashed,omitempty"`
}

// TrashStatsV1 is the handler for trash stats
func (h *HandlerV1) TrashStatsV1(w http.ResponseWriter, r *http.Request) {

	ownerID, ok := caller(w, r)
	if !ok {
		return
	}

	stats, err := h.recycleBinService.Stats(r.Context(), ownerID)
	if err != nil {
		h.logger.Error("error getting trash stats", "error", err)
		http.Error(w, "internal server error", http.StatusServiceUnavailable)
		return
	}

	resp := V1TrashStatsResponse{
		TotalFiles:     stats.TotalFiles,
		TotalSizeBytes: stats.TotalSizeBytes,
		OldestTrashed:  stats.OldestTrashed,
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		h.logger.Error("error encoding response", "error", err)
	}
}

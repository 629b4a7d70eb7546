package stats

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	v1 "deep-vault/internal/adapters/handlers/http/chi/v1"
	"deep-vault/internal/core/port"

	"github.com/go-chi/chi/v5"
)

// HandlerV1 is the handler for the v1 statistics route
type HandlerV1 struct {
	accessLogService port.AccessLogService
	logger           *slog.Logger
}

// NewStatsHandlerV1 creates HandlerV1
func NewStatsHandlerV1(service port.AccessLogService, logger *slog.Logger) *HandlerV1 {
	return &HandlerV1{
		accessLogService: service,
		logger:           logger,
	}
}

// Routes exposes routes
func (h *HandlerV1) Routes() chi.Router {
	router := chi.NewRouter()

	router.Get("/", h.GetStatisticsV1)

	return router
}

// V1StatisticsResponse is the owner dashboard aggregation
type V1StatisticsResponse struct {
	TotalFiles     int64            `json:"total_files"`
	TotalSizeBytes int64            `json:"total_size_bytes"`
	CategoryCounts map[string]int64 `json:"category_counts"`
	ShareOutCount  int64            `json:"share_out_count"`
	ShareInCount   int64            `json:"share_in_count"`
	TotalUploads   int64            `json:"total_uploads"`
	TotalDownloads int64            `json:"total_downloads"`
	TotalPreviews  int64            `json:"total_previews"`
	LastUploadedAt *time.Time       `json:"last_uploaded_at,omitempty"`
}

// GetStatisticsV1 is the handler for owner statistics
func (h *HandlerV1) GetStatisticsV1(w http.ResponseWriter, r *http.Request) {

	ownerID, ok := v1.PrincipalFromRequest(r)
	if !ok {
		http.Error(w, "missing principal", http.StatusUnauthorized)
		return
	}

	statistics, err := h.accessLogService.Statistics(r.Context(), ownerID)
	if err != nil {
		h.logger.Error("error computing statistics", "error", err)
		http.Error(w, "internal server error", http.StatusServiceUnavailable)
		return
	}

	resp := V1StatisticsResponse{
		TotalFiles:     statistics.TotalFiles,
		TotalSizeBytes: statistics.TotalSizeBytes,
		CategoryCounts: make(map[string]int64, len(statistics.CategoryCounts)),
		ShareOutCount:  statistics.ShareOutCount,
		ShareInCount:   statistics.ShareInCount,
		TotalUploads:   statistics.TotalUploads,
		TotalDownloads: statistics.TotalDownloads,
		TotalPreviews:  statistics.TotalPreviews,
		LastUploadedAt: statistics.LastUploadedAt,
	}
	for category, count := range statistics.CategoryCounts {
		resp.CategoryCounts[string(category)] = count
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		h.logger.Error("error encoding response", "error", err)
	}
}

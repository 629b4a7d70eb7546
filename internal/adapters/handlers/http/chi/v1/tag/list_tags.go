package tag

import (
	"encoding/json"
	"net/http"
)

// V1ListTagsResponse is the response to list tags
type V1ListTagsResponse struct {
	Tags []V1TagResponse `json:"tags"`
}

// ListTagsV1 is the handler for list tags
func (h *HandlerV1) ListTagsV1(w http.ResponseWriter, r *http.Request) {

	ownerID, ok := caller(w, r)
	if !ok {
		return
	}

	tags, err := h.tagService.List(r.Context(), ownerID)
	if err != nil {
		h.logger.Error("error listing tags", "error", err)
		http.Error(w, "internal server error", http.StatusServiceUnavailable)
		return
	}

	resp := V1ListTagsResponse{Tags: make([]V1TagResponse, 0, len(tags))}
	for _, tag := range tags {
		resp.Tags = append(resp.Tags, toTagResponse(tag))
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		h.logger.Error("error encoding response", "error", err)
	}
}

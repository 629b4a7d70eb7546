package file

import (
	"encoding/json"
	"errors"
	"net/http"

	"deep-vault/internal/core/domain"
)

// V1CheckExistsRequest is the body request for the dedup pre-check
type V1CheckExistsRequest struct {
	ContentHash string `json:"content_hash"`
}

// V1CheckExistsResponse reports whether the content is already stored.
// Record is only present when the caller owns a copy.
type V1CheckExistsResponse struct {
	Exists bool                  `json:"exists"`
	Record *V1FileRecordResponse `json:"record,omitempty"`
}

// CheckExistsV1 is the handler for the upload dedup pre-check
func (h *HandlerV1) CheckExistsV1(w http.ResponseWriter, r *http.Request) {

	ownerID, ok := caller(w, r)
	if !ok {
		return
	}

	var req V1CheckExistsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}

	exists, record, err := h.fileService.CheckExists(r.Context(), ownerID, req.ContentHash)
	switch {
	case errors.Is(err, domain.ErrInvalidHash):
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	case err != nil:
		h.logger.Error("error checking file existence", "error", err)
		http.Error(w, "internal server error", http.StatusServiceUnavailable)
		return
	default:
		resp := V1CheckExistsResponse{Exists: exists}
		if record != nil {
			recordResp := toFileRecordResponse(*record)
			resp.Record = &recordResp
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		if err := json.NewEncoder(w).Encode(resp); err != nil {
			h.logger.Error("error encoding response", "error", err)
		}
		return
	}
}

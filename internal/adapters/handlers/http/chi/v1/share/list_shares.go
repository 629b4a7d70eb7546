package share

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"deep-vault/internal/core/domain"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// V1ListSharesResponse is the response to list shares
type V1ListSharesResponse struct {
	Shares []V1ShareResponse `json:"shares"`
}

func pageParams(r *http.Request) (int, int, error) {
	limit := 20
	offset := 0
	var err error
	if raw := r.URL.Query().Get("limit"); raw != "" {
		if limit, err = strconv.Atoi(raw); err != nil || limit <= 0 {
			return 0, 0, errors.New("invalid limit")
		}
	}
	if raw := r.URL.Query().Get("offset"); raw != "" {
		if offset, err = strconv.Atoi(raw); err != nil || offset < 0 {
			return 0, 0, errors.New("invalid offset")
		}
	}
	return limit, offset, nil
}

// ListOutgoingV1 lists shares the caller granted, revoked and expired
// included.
func (h *HandlerV1) ListOutgoingV1(w http.ResponseWriter, r *http.Request) {

	ownerID, ok := caller(w, r)
	if !ok {
		return
	}

	limit, offset, err := pageParams(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	shares, listErr := h.shareService.ListOutgoing(r.Context(), ownerID, limit, offset)
	if listErr != nil {
		h.logger.Error("error listing outgoing shares", "error", listErr)
		http.Error(w, "internal server error", http.StatusServiceUnavailable)
		return
	}
	h.writeShares(w, shares)
}

// ListIncomingV1 lists live shares granted to the caller.
func (h *HandlerV1) ListIncomingV1(w http.ResponseWriter, r *http.Request) {

	principalID, ok := caller(w, r)
	if !ok {
		return
	}

	limit, offset, err := pageParams(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	shares, listErr := h.shareService.ListIncoming(r.Context(), principalID, limit, offset)
	if listErr != nil {
		h.logger.Error("error listing incoming shares", "error", listErr)
		http.Error(w, "internal server error", http.StatusServiceUnavailable)
		return
	}
	h.writeShares(w, shares)
}

// GetShareV1 returns one share; only the granting and receiving
// parties may see it.
func (h *HandlerV1) GetShareV1(w http.ResponseWriter, r *http.Request) {

	callerID, ok := caller(w, r)
	if !ok {
		return
	}

	shareID, err := uuid.Parse(chi.URLParam(r, "shareID"))
	if err != nil {
		http.Error(w, "invalid share id", http.StatusBadRequest)
		return
	}

	share, detailErr := h.shareService.Detail(r.Context(), callerID, shareID)
	switch {
	case errors.Is(detailErr, domain.ErrShareNotFound):
		http.Error(w, "share not found", http.StatusNotFound)
		return
	case errors.Is(detailErr, domain.ErrPermissionDenied):
		http.Error(w, "permission denied", http.StatusForbidden)
		return
	case detailErr != nil:
		h.logger.Error("error getting share", "error", detailErr)
		http.Error(w, "internal server error", http.StatusServiceUnavailable)
		return
	default:
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		if err := json.NewEncoder(w).Encode(toShareResponse(*share)); err != nil {
			h.logger.Error("error encoding response", "error", err)
		}
		return
	}
}

func (h *HandlerV1) writeShares(w http.ResponseWriter, shares []domain.FileShare) {
	resp := V1ListSharesResponse{Shares: make([]V1ShareResponse, 0, len(shares))}
	for _, share := range shares {
		resp.Shares = append(resp.Shares, toShareResponse(share))
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		h.logger.Error("error encoding response", "error", err)
	}
}

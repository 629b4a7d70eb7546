package share

import (
	"errors"
	"net/http"

	"deep-vault/internal/core/domain"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// CancelShareV1 revokes a share. The granting owner and the receiving
// principal may both cancel.
func (h *HandlerV1) CancelShareV1(w http.ResponseWriter, r *http.Request) {

	callerID, ok := caller(w, r)
	if !ok {
		return
	}

	shareID, err := uuid.Parse(chi.URLParam(r, "shareID"))
	if err != nil {
		http.Error(w, "invalid share id", http.StatusBadRequest)
		return
	}

	cancelErr := h.shareService.Cancel(r.Context(), callerID, shareID)
	switch {
	case errors.Is(cancelErr, domain.ErrShareNotFound):
		http.Error(w, "share not found", http.StatusNotFound)
		return
	case errors.Is(cancelErr, domain.ErrPermissionDenied):
		http.Error(w, "permission denied", http.StatusForbidden)
		return
	case cancelErr != nil:
		h.logger.Error("error cancelling share", "error", cancelErr)
		http.Error(w, "internal server error", http.StatusServiceUnavailable)
		return
	default:
		w.WriteHeader(http.StatusNoContent)
		return
	}
}

package tag

import (
	"errors"
	"net/http"

	"deep-vault/internal/core/domain"
)

// DeleteTagV1 is the handler for delete tag. All file links are
// detached as part of the delete.
func (h *HandlerV1) DeleteTagV1(w http.ResponseWriter, r *http.Request) {

	ownerID, ok := caller(w, r)
	if !ok {
		return
	}

	tagID, err := parseTagID(r)
	if err != nil {
		http.Error(w, "invalid tag id", http.StatusBadRequest)
		return
	}

	deleteErr := h.tagService.Delete(r.Context(), ownerID, tagID)
	switch {
	case errors.Is(deleteErr, domain.ErrTagNotFound):
		http.Error(w, "tag not found", http.StatusNotFound)
		return
	case errors.Is(deleteErr, domain.ErrPermissionDenied):
		http.Error(w, "permission denied", http.StatusForbidden)
		return
	case deleteErr != nil:
		h.logger.Error("error deleting tag", "error", deleteErr)
		http.Error(w, "internal server error", http.StatusServiceUnavailable)
		return
	default:
		w.WriteHeader(http.StatusNoContent)
		return
	}
}

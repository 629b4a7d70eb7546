package file

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"deep-vault/internal/core/domain"
)

// DownloadFileV1 streams the file bytes to the caller. Access follows
// the owner/public/share arbitration of the core.
func (h *HandlerV1) DownloadFileV1(w http.ResponseWriter, r *http.Request) {

	callerID, ok := caller(w, r)
	if !ok {
		return
	}

	fileID, err := parseFileID(r)
	if err != nil {
		http.Error(w, "invalid file id", http.StatusBadRequest)
		return
	}

	body, record, downloadErr := h.fileService.Download(r.Context(), callerID, fileID, accessContext(r))
	switch {
	case errors.Is(downloadErr, domain.ErrFileNotFound):
		http.Error(w, "file not found", http.StatusNotFound)
		return
	case errors.Is(downloadErr, domain.ErrPermissionDenied):
		http.Error(w, "permission denied", http.StatusForbidden)
		return
	case errors.Is(downloadErr, domain.ErrShareExpired):
		http.Error(w, "share expired", http.StatusGone)
		return
	case errors.Is(downloadErr, domain.ErrFileNotReady):
		http.Error(w, "file not ready", http.StatusConflict)
		return
	case downloadErr != nil:
		h.logger.Error("error downloading file", "error", downloadErr)
		http.Error(w, "internal server error", http.StatusServiceUnavailable)
		return
	}
	defer body.Close()

	w.Header().Set("Content-Type", record.MimeType)
	w.Header().Set("Content-Length", strconv.FormatInt(record.SizeBytes, 10))
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", record.OriginalName))
	w.WriteHeader(http.StatusOK)
	if _, err := io.Copy(w, body); err != nil {
		h.logger.Error("error streaming file", "file_id", fileID, "error", err)
	}
}

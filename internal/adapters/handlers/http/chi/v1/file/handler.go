package file

import (
	"log/slog"
	"net/http"

	v1 "deep-vault/internal/adapters/handlers/http/chi/v1"
	"deep-vault/internal/core/domain"
	"deep-vault/internal/core/port"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// HandlerV1 is the handler for v1 file routes
type HandlerV1 struct {
	fileService      port.FileService
	tagService       port.TagService
	accessLogService port.AccessLogService
	maxUploadBytes   int64
	logger           *slog.Logger
}

// NewFileHandlerV1 creates HandlerV1
func NewFileHandlerV1(fileService port.FileService, tagService port.TagService, accessLogService port.AccessLogService, maxUploadBytes int64, logger *slog.Logger) *HandlerV1 {
	return &HandlerV1{
		fileService:      fileService,
		tagService:       tagService,
		accessLogService: accessLogService,
		maxUploadBytes:   maxUploadBytes,
		logger:           logger,
	}
}

// Routes exposes handler routes
func (h *HandlerV1) Routes() chi.Router {
	router := chi.NewRouter()

	router.Post("/", h.UploadFileV1)
	router.Post("/exists", h.CheckExistsV1)
	router.Get("/", h.ListFilesV1)
	router.Get("/{fileID}", h.GetFileV1)
	router.Patch("/{fileID}/name", h.RenameFileV1)
	router.Get("/{fileID}/download", h.DownloadFileV1)
	router.Post("/{fileID}/preview", h.PreviewFileV1)
	router.Put("/{fileID}/tags", h.SetFileTagsV1)
	router.Get("/{fileID}/tags", h.GetFileTagsV1)
	router.Delete("/{fileID}/tags/{tagID}", h.RemoveFileTagV1)
	router.Get("/{fileID}/logs", h.ListAccessLogsV1)

	return router
}

func parseFileID(r *http.Request) (uuid.UUID, error) {
	return uuid.Parse(chi.URLParam(r, "fileID"))
}

func accessContext(r *http.Request) domain.AccessContext {
	return domain.AccessContext{
		ClientIP:  r.RemoteAddr,
		UserAgent: r.UserAgent(),
	}
}

func caller(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	principalID, ok := v1.PrincipalFromRequest(r)
	if !ok {
		http.Error(w, "missing principal", http.StatusUnauthorized)
	}
	return principalID, ok
}

package file_test

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"mime/multipart"
	httpgo "net/http"
	"net/http/httptest"
	"testing"
	"time"

	"deep-vault/internal/adapters/handlers/http/chi"
	v1 "deep-vault/internal/adapters/handlers/http/chi/v1"
	filehandler "deep-vault/internal/adapters/handlers/http/chi/v1/file"
	sharehandler "deep-vault/internal/adapters/handlers/http/chi/v1/share"
	statshandler "deep-vault/internal/adapters/handlers/http/chi/v1/stats"
	taghandler "deep-vault/internal/adapters/handlers/http/chi/v1/tag"
	trashhandler "deep-vault/internal/adapters/handlers/http/chi/v1/trash"
	"deep-vault/internal/core/domain"
	accesslogservice "deep-vault/internal/core/service/accesslog"
	fileservice "deep-vault/internal/core/service/file"
	recyclebinservice "deep-vault/internal/core/service/recyclebin"
	shareservice "deep-vault/internal/core/service/share"
	tagservice "deep-vault/internal/core/service/tag"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestRouter(mockFileService *fileservice.MockFileService, mockAccessLogService *accesslogservice.MockAccessLogService) httpgo.Handler {
	discardLogger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return chi.NewRouter(
		discardLogger,
		filehandler.NewFileHandlerV1(mockFileService, tagservice.NewMockTagService(), mockAccessLogService, 1<<20, discardLogger),
		taghandler.NewTagHandlerV1(tagservice.NewMockTagService(), discardLogger),
		sharehandler.NewShareHandlerV1(shareservice.NewMockShareService(), discardLogger),
		trashhandler.NewTrashHandlerV1(recyclebinservice.NewMockRecycleBinService(), discardLogger),
		statshandler.NewStatsHandlerV1(accesslogservice.NewMockAccessLogService(), discardLogger),
		5<<20,
		"",
	)
}

func multipartUpload(t *testing.T, fields map[string]string, filename string, content []byte) (*bytes.Buffer, string) {
	t.Helper()
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	part, err := writer.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	for key, value := range fields {
		require.NoError(t, writer.WriteField(key, value))
	}
	require.NoError(t, writer.Close())
	return body, writer.FormDataContentType()
}

func TestUploadFileV1(t *testing.T) {

	ownerID := uuid.New()

	t.Run("nominal", func(t *testing.T) {

		//Arrange
		mockFileService := fileservice.NewMockFileService()
		record := &domain.FileRecord{
			ID:           uuid.New(),
			OwnerID:      ownerID,
			OriginalName: "report.pdf",
			Category:     domain.CategoryDocument,
			Status:       domain.FileStatusCompleted,
		}
		mockFileService.On("Upload", mock.Anything, ownerID, []byte("content"), "report.pdf", domain.CategoryDocument, []uuid.UUID(nil), mock.Anything).Return(record, nil)

		h := newTestRouter(mockFileService, accesslogservice.NewMockAccessLogService())
		w := httptest.NewRecorder()

		body, contentType := multipartUpload(t, map[string]string{"category": "document"}, "report.pdf", []byte("content"))
		req := httptest.NewRequest(httpgo.MethodPost, "/api/v1/file/", body)
		req.Header.Set("Content-Type", contentType)
		req.Header.Set(v1.HeaderPrincipalID, ownerID.String())

		//Act
		h.ServeHTTP(w, req)

		//Assert
		assert.Equal(t, httpgo.StatusCreated, w.Code)
		var resp filehandler.V1FileRecordResponse
		require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
		assert.Equal(t, record.ID, resp.FileID)
		mockFileService.AssertExpectations(t)
	})

	t.Run("duplicate returns 200", func(t *testing.T) {

		//Arrange
		mockFileService := fileservice.NewMockFileService()
		existing := &domain.FileRecord{
			ID:           uuid.New(),
			OwnerID:      ownerID,
			OriginalName: "report.pdf",
			CreatedAt:    time.Now().Add(-time.Hour),
			UpdatedAt:    time.Now().Add(-time.Hour),
		}
		mockFileService.On("Upload", mock.Anything, ownerID, mock.Anything, "report.pdf", domain.CategoryDocument, []uuid.UUID(nil), mock.Anything).Return(existing, nil)

		h := newTestRouter(mockFileService, accesslogservice.NewMockAccessLogService())
		w := httptest.NewRecorder()

		body, contentType := multipartUpload(t, map[string]string{"category": "document"}, "report.pdf", []byte("content"))
		req := httptest.NewRequest(httpgo.MethodPost, "/api/v1/file/", body)
		req.Header.Set("Content-Type", contentType)
		req.Header.Set(v1.HeaderPrincipalID, ownerID.String())

		//Act
		h.ServeHTTP(w, req)

		//Assert
		assert.Equal(t, httpgo.StatusOK, w.Code)
	})

	t.Run("missing file field", func(t *testing.T) {

		//Arrange
		mockFileService := fileservice.NewMockFileService()
		h := newTestRouter(mockFileService, accesslogservice.NewMockAccessLogService())
		w := httptest.NewRecorder()

		body := &bytes.Buffer{}
		writer := multipart.NewWriter(body)
		require.NoError(t, writer.WriteField("category", "document"))
		require.NoError(t, writer.Close())
		req := httptest.NewRequest(httpgo.MethodPost, "/api/v1/file/", body)
		req.Header.Set("Content-Type", writer.FormDataContentType())
		req.Header.Set(v1.HeaderPrincipalID, ownerID.String())

		//Act
		h.ServeHTTP(w, req)

		//Assert
		assert.Equal(t, httpgo.StatusBadRequest, w.Code)
		mockFileService.AssertNotCalled(t, "Upload", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("unknown category", func(t *testing.T) {

		//Arrange
		mockFileService := fileservice.NewMockFileService()
		mockFileService.On("Upload", mock.Anything, ownerID, mock.Anything, "report.pdf", domain.Category("podcast"), []uuid.UUID(nil), mock.Anything).Return((*domain.FileRecord)(nil), domain.ErrInvalidCategory)

		h := newTestRouter(mockFileService, accesslogservice.NewMockAccessLogService())
		w := httptest.NewRecorder()

		body, contentType := multipartUpload(t, map[string]string{"category": "podcast"}, "report.pdf", []byte("content"))
		req := httptest.NewRequest(httpgo.MethodPost, "/api/v1/file/", body)
		req.Header.Set("Content-Type", contentType)
		req.Header.Set(v1.HeaderPrincipalID, ownerID.String())

		//Act
		h.ServeHTTP(w, req)

		//Assert
		assert.Equal(t, httpgo.StatusBadRequest, w.Code)
	})
}

func TestGetFileV1(t *testing.T) {

	callerID := uuid.New()

	t.Run("nominal", func(t *testing.T) {

		//Arrange
		mockFileService := fileservice.NewMockFileService()
		fileID := uuid.New()
		detail := &domain.FileDetail{
			FileRecord: domain.FileRecord{ID: fileID, OwnerID: callerID, OriginalName: "report.pdf"},
			Tags:       []domain.Tag{{ID: uuid.New(), Name: "invoices"}},
			ViewCount:  3,
		}
		mockFileService.On("Get", mock.Anything, callerID, fileID).Return(detail, nil)

		h := newTestRouter(mockFileService, accesslogservice.NewMockAccessLogService())
		w := httptest.NewRecorder()

		req := httptest.NewRequest(httpgo.MethodGet, "/api/v1/file/"+fileID.String(), nil)
		req.Header.Set(v1.HeaderPrincipalID, callerID.String())

		//Act
		h.ServeHTTP(w, req)

		//Assert
		assert.Equal(t, httpgo.StatusOK, w.Code)
		var resp filehandler.V1GetFileResponse
		require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
		assert.Equal(t, fileID, resp.FileID)
		assert.Len(t, resp.Tags, 1)
		assert.Equal(t, int64(3), resp.ViewCount)
	})

	t.Run("forbidden", func(t *testing.T) {

		//Arrange
		mockFileService := fileservice.NewMockFileService()
		fileID := uuid.New()
		mockFileService.On("Get", mock.Anything, callerID, fileID).Return((*domain.FileDetail)(nil), domain.ErrPermissionDenied)

		h := newTestRouter(mockFileService, accesslogservice.NewMockAccessLogService())
		w := httptest.NewRecorder()

		req := httptest.NewRequest(httpgo.MethodGet, "/api/v1/file/"+fileID.String(), nil)
		req.Header.Set(v1.HeaderPrincipalID, callerID.String())

		//Act
		h.ServeHTTP(w, req)

		//Assert
		assert.Equal(t, httpgo.StatusForbidden, w.Code)
	})

	t.Run("expired share", func(t *testing.T) {

		//Arrange
		mockFileService := fileservice.NewMockFileService()
		fileID := uuid.New()
		mockFileService.On("Get", mock.Anything, callerID, fileID).Return((*domain.FileDetail)(nil), domain.ErrShareExpired)

		h := newTestRouter(mockFileService, accesslogservice.NewMockAccessLogService())
		w := httptest.NewRecorder()

		req := httptest.NewRequest(httpgo.MethodGet, "/api/v1/file/"+fileID.String(), nil)
		req.Header.Set(v1.HeaderPrincipalID, callerID.String())

		//Act
		h.ServeHTTP(w, req)

		//Assert
		assert.Equal(t, httpgo.StatusGone, w.Code)
	})
}

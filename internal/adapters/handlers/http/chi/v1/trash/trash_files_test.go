package trash_test

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	httpgo "net/http"
	"net/http/httptest"
	"testing"

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

func newTestRouter(mockRecycleBinService *recyclebinservice.MockRecycleBinService) httpgo.Handler {
	discardLogger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return chi.NewRouter(
		discardLogger,
		filehandler.NewFileHandlerV1(fileservice.NewMockFileService(), tagservice.NewMockTagService(), accesslogservice.NewMockAccessLogService(), 1<<20, discardLogger),
		taghandler.NewTagHandlerV1(tagservice.NewMockTagService(), discardLogger),
		sharehandler.NewShareHandlerV1(shareservice.NewMockShareService(), discardLogger),
		trashhandler.NewTrashHandlerV1(mockRecycleBinService, discardLogger),
		statshandler.NewStatsHandlerV1(accesslogservice.NewMockAccessLogService(), discardLogger),
		5<<20,
		"",
	)
}

func postJSON(t *testing.T, path string, payload any, principalID uuid.UUID) *httpgo.Request {
	t.Helper()
	jsonBody, err := json.Marshal(payload)
	require.NoError(t, err)
	req := httptest.NewRequest(httpgo.MethodPost, path, bytes.NewReader(jsonBody))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(v1.HeaderPrincipalID, principalID.String())
	return req
}

func TestTrashFilesV1(t *testing.T) {

	ownerID := uuid.New()

	t.Run("single file", func(t *testing.T) {

		//Arrange
		mockService := recyclebinservice.NewMockRecycleBinService()
		fileID := uuid.New()
		mockService.On("Trash", mock.Anything, ownerID, fileID).Return(nil)

		h := newTestRouter(mockService)
		w := httptest.NewRecorder()
		req := postJSON(t, "/api/v1/trash/", trashhandler.V1TrashFilesRequest{FileIDs: []uuid.UUID{fileID}}, ownerID)

		//Act
		h.ServeHTTP(w, req)

		//Assert
		assert.Equal(t, httpgo.StatusNoContent, w.Code)
		mockService.AssertExpectations(t)
	})

	t.Run("batch reports outcomes", func(t *testing.T) {

		//Arrange
		mockService := recyclebinservice.NewMockRecycleBinService()
		fileIDs := []uuid.UUID{uuid.New(), uuid.New(), uuid.New()}
		mockService.On("TrashBatch", mock.Anything, ownerID, fileIDs).Return(domain.BatchResult{Total: 3, Succeeded: 2, Failed: 1}, nil)

		h := newTestRouter(mockService)
		w := httptest.NewRecorder()
		req := postJSON(t, "/api/v1/trash/", trashhandler.V1TrashFilesRequest{FileIDs: fileIDs}, ownerID)

		//Act
		h.ServeHTTP(w, req)

		//Assert
		assert.Equal(t, httpgo.StatusOK, w.Code)
		var resp trashhandler.V1BatchResultResponse
		require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
		assert.Equal(t, 3, resp.Total)
		assert.Equal(t, 2, resp.Succeeded)
		assert.Equal(t, 1, resp.Failed)
	})

	t.Run("empty ids", func(t *testing.T) {

		//Arrange
		mockService := recyclebinservice.NewMockRecycleBinService()
		h := newTestRouter(mockService)
		w := httptest.NewRecorder()
		req := postJSON(t, "/api/v1/trash/", trashhandler.V1TrashFilesRequest{}, ownerID)

		//Act
		h.ServeHTTP(w, req)

		//Assert
		assert.Equal(t, httpgo.StatusBadRequest, w.Code)
	})

	t.Run("not owner", func(t *testing.T) {

		//Arrange
		mockService := recyclebinservice.NewMockRecycleBinService()
		fileID := uuid.New()
		mockService.On("Trash", mock.Anything, ownerID, fileID).Return(domain.ErrPermissionDenied)

		h := newTestRouter(mockService)
		w := httptest.NewRecorder()
		req := postJSON(t, "/api/v1/trash/", trashhandler.V1TrashFilesRequest{FileIDs: []uuid.UUID{fileID}}, ownerID)

		//Act
		h.ServeHTTP(w, req)

		//Assert
		assert.Equal(t, httpgo.StatusForbidden, w.Code)
	})
}

func TestPermanentDeleteV1(t *testing.T) {

	ownerID := uuid.New()

	t.Run("still referenced", func(t *testing.T) {

		//Arrange
		mockService := recyclebinservice.NewMockRecycleBinService()
		fileID := uuid.New()
		mockService.On("PermanentDelete", mock.Anything, ownerID, fileID).Return(domain.ErrFileStillReferenced)

		h := newTestRouter(mockService)
		w := httptest.NewRecorder()
		req := httptest.NewRequest(httpgo.MethodDelete, "/api/v1/trash/"+fileID.String(), nil)
		req.Header.Set(v1.HeaderPrincipalID, ownerID.String())

		//Act
		h.ServeHTTP(w, req)

		//Assert
		assert.Equal(t, httpgo.StatusPreconditionFailed, w.Code)
	})

	t.Run("nominal", func(t *testing.T) {

		//Arrange
		mockService := recyclebinservice.NewMockRecycleBinService()
		fileID := uuid.New()
		mockService.On("PermanentDelete", mock.Anything, ownerID, fileID).Return(nil)

		h := newTestRouter(mockService)
		w := httptest.NewRecorder()
		req := httptest.NewRequest(httpgo.MethodDelete, "/api/v1/trash/"+fileID.String(), nil)
		req.Header.Set(v1.HeaderPrincipalID, ownerID.String())

		//Act
		h.ServeHTTP(w, req)

		//Assert
		assert.Equal(t, httpgo.StatusNoContent, w.Code)
		mockService.AssertExpectations(t)
	})
}

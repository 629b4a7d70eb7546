package postgres_test

import (
	"context"
	"testing"

	"deep-vault/internal/adapters/repository/postgres"
	"deep-vault/internal/core/domain"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestSqlAccessLogRepository(t *testing.T) {
	dbConnection, cleanup, truncate := postgres.NewTestDB(t)
	defer cleanup()
	ctx := context.Background()
	repo := postgres.NewSqlAccessLogRepository(dbConnection)
	fileRepo := postgres.NewSqlFileRepository(dbConnection)

	hash := "aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa"

	t.Run("Create And ListByFileID - Success", func(t *testing.T) {
		// Arrange
		truncate()
		fileID := uuid.New()
		principalID := uuid.New()
		entry := domain.AccessLogEntry{
			ID:          uuid.New(),
			FileID:      fileID,
			PrincipalID: &principalID,
			AccessType:  domain.AccessTypeDownload,
			ClientIP:    "10.0.0.1",
			UserAgent:   "curl/8.0",
		}

		// Act
		err := repo.Create(ctx, entry)

		// Assert
		require.NoError(t, err)
		entries, err := repo.ListByFileID(ctx, fileID, 10, 0)
		require.NoError(t, err)
		require.Len(t, entries, 1)
		require.Equal(t, domain.AccessTypeDownload, entries[0].AccessType)
		require.Equal(t, principalID, *entries[0].PrincipalID)
		require.Nil(t, entries[0].ShareID)
	})

	t.Run("CountByTypeForFile - Groups", func(t *testing.T) {
		// Arrange
		truncate()
		fileID := uuid.New()
		for i := 0; i < 3; i++ {
			require.NoError(t, repo.Create(ctx, domain.AccessLogEntry{
				ID: uuid.New(), FileID: fileID, AccessType: domain.AccessTypePreview,
			}))
		}
		require.NoError(t, repo.Create(ctx, domain.AccessLogEntry{
			ID: uuid.New(), FileID: fileID, AccessType: domain.AccessTypeDownload,
		}))

		// Act
		counts, err := repo.CountByTypeForFile(ctx, fileID)

		// Assert
		require.NoError(t, err)
		require.EqualValues(t, 3, counts[domain.AccessTypePreview])
		require.EqualValues(t, 1, counts[domain.AccessTypeDownload])
	})

	t.Run("CountByTypeForOwner - Skips Trashed Files", func(t *testing.T) {
		// Arrange
		truncate()
		ownerID := uuid.New()
		active := newRecord(ownerID, hash, "key-1")
		trashed := newRecord(ownerID, hash, "key-2")
		require.NoError(t, fileRepo.Create(ctx, active))
		require.NoError(t, fileRepo.Create(ctx, trashed))
		require.NoError(t, fileRepo.SetTrashed(ctx, trashed.ID, ownerID, true))

		require.NoError(t, repo.Create(ctx, domain.AccessLogEntry{
			ID: uuid.New(), FileID: active.ID, AccessType: domain.AccessTypeUpload,
		}))
		require.NoError(t, repo.Create(ctx, domain.AccessLogEntry{
			ID: uuid.New(), FileID: trashed.ID, AccessType: domain.AccessTypeUpload,
		}))

		// Act
		counts, err := repo.CountByTypeForOwner(ctx, ownerID)

		// Assert
		require.NoError(t, err)
		require.EqualValues(t, 1, counts[domain.AccessTypeUpload])
	})
}

package postgres_test

import (
	"context"
	"testing"
	"time"

	"deep-vault/internal/adapters/repository/postgres"
	"deep-vault/internal/core/domain"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestSqlShareRepository(t *testing.T) {
	dbConnection, cleanup, truncate := postgres.NewTestDB(t)
	defer cleanup()
	ctx := context.Background()
	repo := postgres.NewSqlShareRepository(dbConnection)
	fileRepo := postgres.NewSqlFileRepository(dbConnection)

	hash := "aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa"

	seedFile := func(t *testing.T, ownerID uuid.UUID) uuid.UUID {
		t.Helper()
		record := newRecord(ownerID, hash, "key-"+uuid.NewString())
		require.NoError(t, fileRepo.Create(ctx, record))
		return record.ID
	}

	newShare := func(fileID, ownerID, toID uuid.UUID) domain.FileShare {
		return domain.FileShare{
			ID:              uuid.New(),
			FileID:          fileID,
			FromOwnerID:     ownerID,
			ToPrincipalID:   toID,
			ShareType:       domain.ShareTypePermanent,
			PermissionLevel: domain.PermissionView,
		}
	}

	t.Run("Create - Duplicate Active Grant", func(t *testing.T) {
		// Arrange
		truncate()
		ownerID, toID := uuid.New(), uuid.New()
		fileID := seedFile(t, ownerID)
		require.NoError(t, repo.Create(ctx, newShare(fileID, ownerID, toID)))

		// Act
		err := repo.Create(ctx, newShare(fileID, ownerID, toID))

		// Assert
		require.ErrorIs(t, err, domain.ErrShareAlreadyExists)
	})

	t.Run("Create - Regrant After Revoke", func(t *testing.T) {
		// Arrange
		truncate()
		ownerID, toID := uuid.New(), uuid.New()
		fileID := seedFile(t, ownerID)
		first := newShare(fileID, ownerID, toID)
		require.NoError(t, repo.Create(ctx, first))
		require.NoError(t, repo.Revoke(ctx, first.ID))

		// Act
		err := repo.Create(ctx, newShare(fileID, ownerID, toID))

		// Assert
		require.NoError(t, err)
	})

	t.Run("Revoke - Twice Reports Not Found", func(t *testing.T) {
		// Arrange
		truncate()
		ownerID := uuid.New()
		fileID := seedFile(t, ownerID)
		share := newShare(fileID, ownerID, uuid.New())
		require.NoError(t, repo.Create(ctx, share))
		require.NoError(t, repo.Revoke(ctx, share.ID))

		// Act
		err := repo.Revoke(ctx, share.ID)

		// Assert
		require.ErrorIs(t, err, domain.ErrShareNotFound)
	})

	t.Run("FindActiveByFileAndPrincipal - Ignores Revoked", func(t *testing.T) {
		// Arrange
		truncate()
		ownerID, toID := uuid.New(), uuid.New()
		fileID := seedFile(t, ownerID)
		share := newShare(fileID, ownerID, toID)
		require.NoError(t, repo.Create(ctx, share))
		require.NoError(t, repo.Revoke(ctx, share.ID))

		// Act
		found, err := repo.FindActiveByFileAndPrincipal(ctx, fileID, toID)

		// Assert
		require.Nil(t, found)
		require.ErrorIs(t, err, domain.ErrShareNotFound)
	})

	t.Run("FindActiveByFileAndPrincipal - Returns Expired Row", func(t *testing.T) {
		// Arrange: expiry is evaluated by the caller, not the query
		truncate()
		ownerID, toID := uuid.New(), uuid.New()
		fileID := seedFile(t, ownerID)
		expired := time.Now().Add(-time.Hour)
		share := newShare(fileID, ownerID, toID)
		share.ShareType = domain.ShareTypeTemporary
		share.ExpiresAt = &expired
		require.NoError(t, repo.Create(ctx, share))

		// Act
		found, err := repo.FindActiveByFileAndPrincipal(ctx, fileID, toID)

		// Assert
		require.NoError(t, err)
		require.True(t, found.Expired(time.Now()))
	})

	t.Run("ListIncoming - Filters Expired", func(t *testing.T) {
		// Arrange
		truncate()
		ownerID, toID := uuid.New(), uuid.New()
		live := newShare(seedFile(t, ownerID), ownerID, toID)
		require.NoError(t, repo.Create(ctx, live))

		expired := time.Now().Add(-time.Minute)
		dead := newShare(seedFile(t, ownerID), ownerID, toID)
		dead.ShareType = domain.ShareTypeTemporary
		dead.ExpiresAt = &expired
		require.NoError(t, repo.Create(ctx, dead))

		// Act
		shares, err := repo.ListIncoming(ctx, toID, time.Now(), 10, 0)

		// Assert
		require.NoError(t, err)
		require.Len(t, shares, 1)
		require.Equal(t, live.ID, shares[0].ID)
	})

	t.Run("CountActiveByFile - Success", func(t *testing.T) {
		// Arrange
		truncate()
		ownerID := uuid.New()
		fileID := seedFile(t, ownerID)
		require.NoError(t, repo.Create(ctx, newShare(fileID, ownerID, uuid.New())))
		require.NoError(t, repo.Create(ctx, newShare(fileID, ownerID, uuid.New())))

		// Act
		count, err := repo.CountActiveByFile(ctx, fileID)

		// Assert
		require.NoError(t, err)
		require.Equal(t, 2, count)
	})

	t.Run("View And Download Counters", func(t *testing.T) {
		// Arrange
		truncate()
		ownerID := uuid.New()
		share := newShare(seedFile(t, ownerID), ownerID, uuid.New())
		require.NoError(t, repo.Create(ctx, share))

		// Act
		require.NoError(t, repo.IncrementViewCount(ctx, share.ID))
		require.NoError(t, repo.IncrementViewCount(ctx, share.ID))
		require.NoError(t, repo.IncrementDownloadCount(ctx, share.ID))

		// Assert
		found, err := repo.FindByID(ctx, share.ID)
		require.NoError(t, err)
		require.Equal(t, 2, found.ViewCount)
		require.Equal(t, 1, found.DownloadCount)
	})
}

package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"deep-vault/internal/core/domain"
	"deep-vault/internal/core/port"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

const fileShareColumns = `id, file_id, from_owner_id, to_principal_id, share_type, expires_at,
       permission_level, revoked, message, view_count, download_count, created_at, updated_at`

type sqlShareRepository struct {
	db SQLQuerier
}

// NewSqlShareRepository creates sqlShareRepository that implements port.ShareRepository
func NewSqlShareRepository(db SQLQuerier) port.ShareRepository {
	return &sqlShareRepository{db: db}
}

// Create inserts a share grant. The partial unique index over active
// rows maps a duplicate grant to domain.ErrShareAlreadyExists.
func (s *sqlShareRepository) Create(ctx context.Context, share domain.FileShare) error {
	query := `INSERT INTO file_shares (id, file_id, from_owner_id, to_principal_id, share_type,
                  expires_at, permission_level, revoked, message)
              VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	_, err := s.db.ExecContext(ctx, query, share.ID, share.FileID, share.FromOwnerID,
		share.ToPrincipalID, share.ShareType, share.ExpiresAt, share.PermissionLevel,
		share.Revoked, share.Message)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23505" {
			return domain.ErrShareAlreadyExists
		}
		return fmt.Errorf("error inserting file share: %w", err)
	}
	return nil
}

// FindByID finds a share by id, revoked rows included
func (s *sqlShareRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.FileShare, error) {
	query := fmt.Sprintf(`SELECT %s FROM file_shares WHERE id = $1`, fileShareColumns)

	return s.scanOne(s.db.QueryRowContext(ctx, query, id))
}

// FindActiveByFileAndPrincipal finds the non-revoked grant of a file to
// a principal. Expiry is not filtered here; the caller evaluates it.
func (s *sqlShareRepository) FindActiveByFileAndPrincipal(ctx context.Context, fileID, principalID uuid.UUID) (*domain.FileShare, error) {
	query := fmt.Sprintf(`SELECT %s FROM file_shares
              WHERE file_id = $1 AND to_principal_id = $2 AND NOT revoked`, fileShareColumns)

	return s.scanOne(s.db.QueryRowContext(ctx, query, fileID, principalID))
}

// Revoke marks the share revoked; revoking twice reports not found
func (s *sqlShareRepository) Revoke(ctx context.Context, id uuid.UUID) error {
	query := `UPDATE file_shares SET revoked = TRUE, updated_at = now()
              WHERE id = $1 AND NOT revoked`

	result, err := s.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("error revoking file share: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("error checking rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return domain.ErrShareNotFound
	}
	return nil
}

// CountActiveByFile counts the file's non-revoked shares
func (s *sqlShareRepository) CountActiveByFile(ctx context.Context, fileID uuid.UUID) (int, error) {
	query := `SELECT COUNT(*) FROM file_shares WHERE file_id = $1 AND NOT revoked`

	var count int
	if err := s.db.QueryRowContext(ctx, query, fileID).Scan(&count); err != nil {
		return 0, fmt.Errorf("error counting file shares: %w", err)
	}
	return count, nil
}

// ListActiveByFile lists the file's non-revoked grants
func (s *sqlShareRepository) ListActiveByFile(ctx context.Context, fileID uuid.UUID) ([]domain.FileShare, error) {
	query := fmt.Sprintf(`SELECT %s FROM file_shares
              WHERE file_id = $1 AND NOT revoked
              ORDER BY created_at DESC`, fileShareColumns)

	rows, err := s.db.QueryContext(ctx, query, fileID)
	if err != nil {
		return nil, fmt.Errorf("error querying shares by file: %w", err)
	}
	defer rows.Close()

	return scanFileShares(rows)
}

// CountActiveFrom counts grants issued by the owner
func (s *sqlShareRepository) CountActiveFrom(ctx context.Context, ownerID uuid.UUID) (int64, error) {
	query := `SELECT COUNT(*) FROM file_shares WHERE from_owner_id = $1 AND NOT revoked`

	var count int64
	if err := s.db.QueryRowContext(ctx, query, ownerID).Scan(&count); err != nil {
		return 0, fmt.Errorf("error counting outgoing shares: %w", err)
	}
	return count, nil
}

// CountActiveTo counts grants held by the principal
func (s *sqlShareRepository) CountActiveTo(ctx context.Context, principalID uuid.UUID) (int64, error) {
	query := `SELECT COUNT(*) FROM file_shares WHERE to_principal_id = $1 AND NOT revoked`

	var count int64
	if err := s.db.QueryRowContext(ctx, query, principalID).Scan(&count); err != nil {
		return 0, fmt.Errorf("error counting incoming shares: %w", err)
	}
	return count, nil
}

// ListOutgoing pages through the owner's grants, revoked included
func (s *sqlShareRepository) ListOutgoing(ctx context.Context, ownerID uuid.UUID, limit, offset int) ([]domain.FileShare, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}

	query := fmt.Sprintf(`SELECT %s FROM file_shares
              WHERE from_owner_id = $1
              ORDER BY created_at DESC
              LIMIT $2 OFFSET $3`, fileShareColumns)

	rows, err := s.db.QueryContext(ctx, query, ownerID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("error querying outgoing shares: %w", err)
	}
	defer rows.Close()

	return scanFileShares(rows)
}

// ListIncoming pages through the grants a principal currently holds,
// filtering out revoked and already-expired rows at now.
func (s *sqlShareRepository) ListIncoming(ctx context.Context, principalID uuid.UUID, now time.Time, limit, offset int) ([]domain.FileShare, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}

	query := fmt.Sprintf(`SELECT %s FROM file_shares
              WHERE to_principal_id = $1 AND NOT revoked
                AND (expires_at IS NULL OR expires_at > $2)
              ORDER BY created_at DESC
              LIMIT $3 OFFSET $4`, fileShareColumns)

	rows, err := s.db.QueryContext(ctx, query, principalID, now, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("error querying incoming shares: %w", err)
	}
	defer rows.Close()

	return scanFileShares(rows)
}

// IncrementViewCount bumps the view counter
func (s *sqlShareRepository) IncrementViewCount(ctx context.Context, id uuid.UUID) error {
	query := `UPDATE file_shares SET view_count = view_count + 1, updated_at = now() WHERE id = $1`

	_, err := s.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("error incrementing view count: %w", err)
	}
	return nil
}

// IncrementDownloadCount bumps the download counter
func (s *sqlShareRepository) IncrementDownloadCount(ctx context.Context, id uuid.UUID) error {
	query := `UPDATE file_shares SET download_count = download_count + 1, updated_at = now() WHERE id = $1`

	_, err := s.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("error incrementing download count: %w", err)
	}
	return nil
}

// DeleteByFileID hard-removes every share row of the file
func (s *sqlShareRepository) DeleteByFileID(ctx context.Context, fileID uuid.UUID) error {
	query := `DELETE FROM file_shares WHERE file_id = $1`

	_, err := s.db.ExecContext(ctx, query, fileID)
	if err != nil {
		return fmt.Errorf("error deleting file shares: %w", err)
	}
	return nil
}

func (s *sqlShareRepository) scanOne(row *sql.Row) (*domain.FileShare, error) {
	var dbShare dbFileShare
	err := row.Scan(
		&dbShare.ID,
		&dbShare.FileID,
		&dbShare.FromOwnerID,
		&dbShare.ToPrincipalID,
		&dbShare.ShareType,
		&dbShare.ExpiresAt,
		&dbShare.PermissionLevel,
		&dbShare.Revoked,
		&dbShare.Message,
		&dbShare.ViewCount,
		&dbShare.DownloadCount,
		&dbShare.CreatedAt,
		&dbShare.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrShareNotFound
		}
		return nil, err
	}
	return dbShare.ToDomain(), nil
}

func scanFileShares(rows *sql.Rows) ([]domain.FileShare, error) {
	var shares []domain.FileShare
	for rows.Next() {
		var dbShare dbFileShare
		err := rows.Scan(
			&dbShare.ID,
			&dbShare.FileID,
			&dbShare.FromOwnerID,
			&dbShare.ToPrincipalID,
			&dbShare.ShareType,
			&dbShare.ExpiresAt,
			&dbShare.PermissionLevel,
			&dbShare.Revoked,
			&dbShare.Message,
			&dbShare.ViewCount,
			&dbShare.DownloadCount,
			&dbShare.CreatedAt,
			&dbShare.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("error scanning file share: %w", err)
		}
		shares = append(shares, *dbShare.ToDomain())
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating file shares: %w", err)
	}
	return shares, nil
}

// dbFileShare represents a file share row in DB
type dbFileShare struct {
	ID              uuid.UUID    `db:"id"`
	FileID          uuid.UUID    `db:"file_id"`
	FromOwnerID     uuid.UUID    `db:"from_owner_id"`
	ToPrincipalID   uuid.UUID    `db:"to_principal_id"`
	ShareType       string       `db:"share_type"`
	ExpiresAt       sql.NullTime `db:"expires_at"`
	PermissionLevel string       `db:"permission_level"`
	Revoked         bool         `db:"revoked"`
	Message         string       `db:"message"`
	ViewCount       int          `db:"view_count"`
	DownloadCount   int          `db:"download_count"`
	CreatedAt       time.Time    `db:"created_at"`
	UpdatedAt       time.Time    `db:"updated_at"`
}

// ToDomain converts to domain.FileShare
func (s *dbFileShare) ToDomain() *domain.FileShare {
	share := &domain.FileShare{
		ID:              s.ID,
		FileID:          s.FileID,
		FromOwnerID:     s.FromOwnerID,
		ToPrincipalID:   s.ToPrincipalID,
		ShareType:       domain.ShareType(s.ShareType),
		PermissionLevel: domain.PermissionLevel(s.PermissionLevel),
		Revoked:         s.Revoked,
		Message:         s.Message,
		ViewCount:       s.ViewCount,
		DownloadCount:   s.DownloadCount,
		CreatedAt:       s.CreatedAt,
		UpdatedAt:       s.UpdatedAt,
	}
	if s.ExpiresAt.Valid {
		expires := s.ExpiresAt.Time
		share.ExpiresAt = &expires
	}
	return share
}

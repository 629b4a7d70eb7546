package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"deep-vault/internal/core/domain"
	"deep-vault/internal/core/port"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

const fileRecordColumns = `id, owner_id, storage_key, content_hash, original_name, size_bytes,
       mime_type, extension, category, status, visibility, delete_flag,
       reference_count, created_at, updated_at`

type sqlFileRepository struct {
	db SQLQuerier
}

// NewSqlFileRepository creates sqlFileRepository that implements port.FileRepository
func NewSqlFileRepository(db SQLQuerier) port.FileRepository {
	return &sqlFileRepository{db: db}
}

// Create inserts a new file record
func (s *sqlFileRepository) Create(ctx context.Context, r domain.FileRecord) error {
	query := `INSERT INTO file_records (id, owner_id, storage_key, content_hash, original_name,
	              size_bytes, mime_type, extension, category, status, visibility,
	              delete_flag, reference_count)
              VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`

	_, err := s.db.ExecContext(ctx, query, r.ID, r.OwnerID, r.StorageKey, r.ContentHash,
		r.OriginalName, r.SizeBytes, r.MimeType, r.Extension, r.Category, r.Status,
		r.Visibility, r.DeleteFlag, r.ReferenceCount)
	if err != nil {
		return fmt.Errorf("error inserting file record: %w", err)
	}
	return nil
}

// FindByID finds a record by id, trashed rows included
func (s *sqlFileRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.FileRecord, error) {
	query := fmt.Sprintf(`SELECT %s FROM file_records WHERE id = $1`, fileRecordColumns)

	return s.scanOne(s.db.QueryRowContext(ctx, query, id))
}

// FindCanonicalByHash finds the oldest non-trashed record with the given
// content hash. The oldest row is the one whose reference count tracks
// cross-owner reuse, so dedup must always resolve against it.
func (s *sqlFileRepository) FindCanonicalByHash(ctx context.Context, contentHash string) (*domain.FileRecord, error) {
	query := fmt.Sprintf(`SELECT %s FROM file_records
              WHERE content_hash = $1 AND NOT delete_flag
              ORDER BY created_at ASC, id ASC
              LIMIT 1`, fileRecordColumns)

	return s.scanOne(s.db.QueryRowContext(ctx, query, contentHash))
}

// FindByOwnerAndHash finds the caller's own non-trashed record with the hash
func (s *sqlFileRepository) FindByOwnerAndHash(ctx context.Context, ownerID uuid.UUID, contentHash string) (*domain.FileRecord, error) {
	query := fmt.Sprintf(`SELECT %s FROM file_records
              WHERE owner_id = $1 AND content_hash = $2 AND NOT delete_flag
              ORDER BY created_at ASC
              LIMIT 1`, fileRecordColumns)

	return s.scanOne(s.db.QueryRowContext(ctx, query, ownerID, contentHash))
}

// List returns a page of the owner's non-trashed records plus the total count
func (s *sqlFileRepository) List(ctx context.Context, ownerID uuid.UUID, filter port.FileListFilter) ([]domain.FileRecord, int64, error) {
	conds := []string{"owner_id = $1", "NOT delete_flag"}
	args := []interface{}{ownerID}

	if filter.Category != nil {
		args = append(args, *filter.Category)
		conds = append(conds, fmt.Sprintf("category = $%d", len(args)))
	}
	if filter.NameContains != "" {
		args = append(args, "%"+filter.NameContains+"%")
		conds = append(conds, fmt.Sprintf("original_name ILIKE $%d", len(args)))
	}
	if filter.TagID != nil {
		args = append(args, *filter.TagID)
		conds = append(conds, fmt.Sprintf("id IN (SELECT file_id FROM file_tags WHERE tag_id = $%d)", len(args)))
	}

	where := strings.Join(conds, " AND ")

	var total int64
	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM file_records WHERE %s", where)
	if err := s.db.QueryRowContext(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("error counting file records: %w", err)
	}

	limit := filter.Limit
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	args = append(args, limit)
	limitClause := fmt.Sprintf("LIMIT $%d", len(args))
	args = append(args, filter.Offset)
	offsetClause := fmt.Sprintf("OFFSET $%d", len(args))

	query := fmt.Sprintf(`SELECT %s FROM file_records WHERE %s
              ORDER BY created_at DESC %s %s`, fileRecordColumns, where, limitClause, offsetClause)

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("error querying file records: %w", err)
	}
	defer rows.Close()

	records, err := scanFileRecords(rows)
	if err != nil {
		return nil, 0, err
	}
	return records, total, nil
}

// UpdateName renames a record
func (s *sqlFileRepository) UpdateName(ctx context.Context, id uuid.UUID, name string) error {
	query := `UPDATE file_records SET original_name = $1, updated_at = now() WHERE id = $2`
	return s.execExpectingRow(ctx, query, name, id)
}

// UpdateStatus updates the lifecycle status
func (s *sqlFileRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.FileStatus) error {
	query := `UPDATE file_records SET status = $1, updated_at = now() WHERE id = $2`
	return s.execExpectingRow(ctx, query, status, id)
}

// UpdateVisibility updates the visibility
func (s *sqlFileRepository) UpdateVisibility(ctx context.Context, id uuid.UUID, visibility domain.Visibility) error {
	query := `UPDATE file_records SET visibility = $1, updated_at = now() WHERE id = $2`
	return s.execExpectingRow(ctx, query, visibility, id)
}

// SetTrashed flips the soft-delete marker and status together. The
// owner and current-flag guards make the operation idempotent-safe:
// trashing an already-trashed row reports not found.
func (s *sqlFileRepository) SetTrashed(ctx context.Context, id, ownerID uuid.UUID, trashed bool) error {
	status := domain.FileStatusDeleted
	if !trashed {
		status = domain.FileStatusCompleted
	}

	query := `UPDATE file_records
              SET delete_flag = $1, status = $2, updated_at = now()
              WHERE id = $3 AND owner_id = $4 AND delete_flag = NOT $1`
	return s.execExpectingRow(ctx, query, trashed, status, id, ownerID)
}

// Delete hard-removes the record row
func (s *sqlFileRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM file_records WHERE id = $1`
	return s.execExpectingRow(ctx, query, id)
}

// IncrementRefCount bumps the reference count atomically
func (s *sqlFileRepository) IncrementRefCount(ctx context.Context, id uuid.UUID) error {
	query := `UPDATE file_records
              SET reference_count = reference_count + 1, updated_at = now()
              WHERE id = $1`
	return s.execExpectingRow(ctx, query, id)
}

// DecrementRefCountByStorageKey releases one reference held against the
// canonical row for a storage key, the oldest non-trashed row with a
// positive count. Scoping to a single row keeps sibling counters from
// drifting when an old canonical was trashed while still referenced.
func (s *sqlFileRepository) DecrementRefCountByStorageKey(ctx context.Context, storageKey string, excludeID uuid.UUID) error {
	query := `UPDATE file_records
              SET reference_count = reference_count - 1, updated_at = now()
              WHERE id = (
                  SELECT id FROM file_records
                  WHERE storage_key = $1 AND id <> $2 AND delete_flag = false AND reference_count > 0
                  ORDER BY created_at ASC
                  LIMIT 1
              )`

	_, err := s.db.ExecContext(ctx, query, storageKey, excludeID)
	if err != nil {
		return fmt.Errorf("error decrementing reference count: %w", err)
	}
	return nil
}

// CountByStorageKey counts other rows that address the same stored object
func (s *sqlFileRepository) CountByStorageKey(ctx context.Context, storageKey string, excludeID uuid.UUID) (int, error) {
	query := `SELECT COUNT(*) FROM file_records WHERE storage_key = $1 AND id <> $2`

	var count int
	if err := s.db.QueryRowContext(ctx, query, storageKey, excludeID).Scan(&count); err != nil {
		return 0, fmt.Errorf("error counting records by storage key: %w", err)
	}
	return count, nil
}

// ExistsByStorageKey reports whether any record references the key
func (s *sqlFileRepository) ExistsByStorageKey(ctx context.Context, storageKey string) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM file_records WHERE storage_key = $1)`

	var exists bool
	if err := s.db.QueryRowContext(ctx, query, storageKey).Scan(&exists); err != nil {
		return false, fmt.Errorf("error checking storage key: %w", err)
	}
	return exists, nil
}

// ListTrashed returns a page of the owner's trashed records
func (s *sqlFileRepository) ListTrashed(ctx context.Context, ownerID uuid.UUID, limit, offset int) ([]domain.FileRecord, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}

	query := fmt.Sprintf(`SELECT %s FROM file_records
              WHERE owner_id = $1 AND delete_flag
              ORDER BY updated_at DESC
              LIMIT $2 OFFSET $3`, fileRecordColumns)

	rows, err := s.db.QueryContext(ctx, query, ownerID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("error querying trashed records: %w", err)
	}
	defer rows.Close()

	return scanFileRecords(rows)
}

// TrashStats aggregates the owner's recycle bin in one query
func (s *sqlFileRepository) TrashStats(ctx context.Context, ownerID uuid.UUID) (*domain.TrashStats, error) {
	query := `SELECT COUNT(*), COALESCE(SUM(size_bytes), 0), MIN(updated_at)
              FROM file_records
              WHERE owner_id = $1 AND delete_flag`

	var stats domain.TrashStats
	var oldest sql.NullTime
	err := s.db.QueryRowContext(ctx, query, ownerID).Scan(&stats.TotalFiles, &stats.TotalSizeBytes, &oldest)
	if err != nil {
		return nil, fmt.Errorf("error querying trash stats: %w", err)
	}
	if oldest.Valid {
		stats.OldestTrashed = &oldest.Time
	}
	return &stats, nil
}

// ListActiveByOwner returns every non-trashed record of the owner
func (s *sqlFileRepository) ListActiveByOwner(ctx context.Context, ownerID uuid.UUID) ([]domain.FileRecord, error) {
	query := fmt.Sprintf(`SELECT %s FROM file_records
              WHERE owner_id = $1 AND NOT delete_flag
              ORDER BY created_at DESC`, fileRecordColumns)

	rows, err := s.db.QueryContext(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("error querying active records: %w", err)
	}
	defer rows.Close()

	return scanFileRecords(rows)
}

// FindStaleUploading finds records stuck in uploading since before cutoff
func (s *sqlFileRepository) FindStaleUploading(ctx context.Context, cutoff time.Time) ([]domain.FileRecord, error) {
	query := fmt.Sprintf(`SELECT %s FROM file_records
              WHERE status = $1 AND updated_at < $2 AND NOT delete_flag`, fileRecordColumns)

	rows, err := s.db.QueryContext(ctx, query, domain.FileStatusUploading, cutoff)
	if err != nil {
		return nil, fmt.Errorf("error querying stale uploads: %w", err)
	}
	defer rows.Close()

	return scanFileRecords(rows)
}

func (s *sqlFileRepository) execExpectingRow(ctx context.Context, query string, args ...interface{}) error {
	result, err := s.db.ExecContext(ctx, query, args...)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23505" {
			return fmt.Errorf("file record conflict: %w", err)
		}
		return fmt.Errorf("error updating file record: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("error checking rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return domain.ErrFileNotFound
	}
	return nil
}

func (s *sqlFileRepository) scanOne(row *sql.Row) (*domain.FileRecord, error) {
	var dbRec dbFileRecord
	err := row.Scan(
		&dbRec.ID,
		&dbRec.OwnerID,
		&dbRec.StorageKey,
		&dbRec.ContentHash,
		&dbRec.OriginalName,
		&dbRec.SizeBytes,
		&dbRec.MimeType,
		&dbRec.Extension,
		&dbRec.Category,
		&dbRec.Status,
		&dbRec.Visibility,
		&dbRec.DeleteFlag,
		&dbRec.ReferenceCount,
		&dbRec.CreatedAt,
		&dbRec.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrFileNotFound
		}
		return nil, err
	}
	return dbRec.ToDomain(), nil
}

func scanFileRecords(rows *sql.Rows) ([]domain.FileRecord, error) {
	var records []domain.FileRecord
	for rows.Next() {
		var dbRec dbFileRecord
		err := rows.Scan(
			&dbRec.ID,
			&dbRec.OwnerID,
			&dbRec.StorageKey,
			&dbRec.ContentHash,
			&dbRec.OriginalName,
			&dbRec.SizeBytes,
			&dbRec.MimeType,
			&dbRec.Extension,
			&dbRec.Category,
			&dbRec.Status,
			&dbRec.Visibility,
			&dbRec.DeleteFlag,
			&dbRec.ReferenceCount,
			&dbRec.CreatedAt,
			&dbRec.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("error scanning file record: %w", err)
		}
		records = append(records, *dbRec.ToDomain())
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating file records: %w", err)
	}
	return records, nil
}

// dbFileRecord represents a file record row in DB
type dbFileRecord struct {
	ID             uuid.UUID `db:"id"`
	OwnerID        uuid.UUID `db:"owner_id"`
	StorageKey     string    `db:"storage_key"`
	ContentHash    string    `db:"content_hash"`
	OriginalName   string    `db:"original_name"`
	SizeBytes      int64     `db:"size_bytes"`
	MimeType       string    `db:"mime_type"`
	Extension      string    `db:"extension"`
	Category       string    `db:"category"`
	Status         string    `db:"status"`
	Visibility     string    `db:"visibility"`
	DeleteFlag     bool      `db:"delete_flag"`
	ReferenceCount int       `db:"reference_count"`
	CreatedAt      time.Time `db:"created_at"`
	UpdatedAt      time.Time `db:"updated_at"`
}

// ToDomain converts to domain.FileRecord
func (r *dbFileRecord) ToDomain() *domain.FileRecord {
	return &domain.FileRecord{
		ID:             r.ID,
		OwnerID:        r.OwnerID,
		StorageKey:     r.StorageKey,
		ContentHash:    r.ContentHash,
		OriginalName:   r.OriginalName,
		SizeBytes:      r.SizeBytes,
		MimeType:       r.MimeType,
		Extension:      r.Extension,
		Category:       domain.Category(r.Category),
		Status:         domain.FileStatus(r.Status),
		Visibility:     domain.Visibility(r.Visibility),
		DeleteFlag:     r.DeleteFlag,
		ReferenceCount: r.ReferenceCount,
		CreatedAt:      r.CreatedAt,
		UpdatedAt:      r.UpdatedAt,
	}
}

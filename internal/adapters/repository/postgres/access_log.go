package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"deep-vault/internal/core/domain"
	"deep-vault/internal/core/port"

	"github.com/google/uuid"
)

type sqlAccessLogRepository struct {
	db SQLQuerier
}

// NewSqlAccessLogRepository creates sqlAccessLogRepository that implements port.AccessLogRepository
func NewSqlAccessLogRepository(db SQLQuerier) port.AccessLogRepository {
	return &sqlAccessLogRepository{db: db}
}

// Create appends one audit row
func (s *sqlAccessLogRepository) Create(ctx context.Context, entry domain.AccessLogEntry) error {
	query := `INSERT INTO file_access_logs (id, file_id, principal_id, access_type, client_ip, user_agent, share_id)
              VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err := s.db.ExecContext(ctx, query, entry.ID, entry.FileID, entry.PrincipalID,
		entry.AccessType, entry.ClientIP, entry.UserAgent, entry.ShareID)
	if err != nil {
		return fmt.Errorf("error inserting access log: %w", err)
	}
	return nil
}

// ListByFileID pages through a file's audit trail, newest first
func (s *sqlAccessLogRepository) ListByFileID(ctx context.Context, fileID uuid.UUID, limit, offset int) ([]domain.AccessLogEntry, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}

	query := `SELECT id, file_id, principal_id, access_type, client_ip, user_agent, share_id, created_at
              FROM file_access_logs
              WHERE file_id = $1
              ORDER BY created_at DESC
              LIMIT $2 OFFSET $3`

	rows, err := s.db.QueryContext(ctx, query, fileID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("error querying access logs: %w", err)
	}
	defer rows.Close()

	var entries []domain.AccessLogEntry
	for rows.Next() {
		var dbEntry dbAccessLogEntry
		err := rows.Scan(&dbEntry.ID, &dbEntry.FileID, &dbEntry.PrincipalID, &dbEntry.AccessType,
			&dbEntry.ClientIP, &dbEntry.UserAgent, &dbEntry.ShareID, &dbEntry.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("error scanning access log: %w", err)
		}
		entries = append(entries, *dbEntry.ToDomain())
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating access logs: %w", err)
	}
	return entries, nil
}

// CountByTypeForFile aggregates the file's accesses per type
func (s *sqlAccessLogRepository) CountByTypeForFile(ctx context.Context, fileID uuid.UUID) (map[domain.AccessType]int64, error) {
	query := `SELECT access_type, COUNT(*) FROM file_access_logs
              WHERE file_id = $1 GROUP BY access_type`

	rows, err := s.db.QueryContext(ctx, query, fileID)
	if err != nil {
		return nil, fmt.Errorf("error counting file accesses: %w", err)
	}
	defer rows.Close()

	return scanAccessCounts(rows)
}

// CountByTypeForOwner aggregates accesses across the owner's current,
// non-trashed files.
func (s *sqlAccessLogRepository) CountByTypeForOwner(ctx context.Context, ownerID uuid.UUID) (map[domain.AccessType]int64, error) {
	query := `SELECT l.access_type, COUNT(*)
              FROM file_access_logs l
              JOIN file_records f ON f.id = l.file_id
              WHERE f.owner_id = $1 AND NOT f.delete_flag
              GROUP BY l.access_type`

	rows, err := s.db.QueryContext(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("error counting owner accesses: %w", err)
	}
	defer rows.Close()

	return scanAccessCounts(rows)
}

func scanAccessCounts(rows *sql.Rows) (map[domain.AccessType]int64, error) {
	counts := make(map[domain.AccessType]int64)
	for rows.Next() {
		var accessType string
		var count int64
		if err := rows.Scan(&accessType, &count); err != nil {
			return nil, fmt.Errorf("error scanning access count: %w", err)
		}
		counts[domain.AccessType(accessType)] = count
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating access counts: %w", err)
	}
	return counts, nil
}

// dbAccessLogEntry represents an access log row in DB
type dbAccessLogEntry struct {
	ID          uuid.UUID      `db:"id"`
	FileID      uuid.UUID      `db:"file_id"`
	PrincipalID uuid.NullUUID  `db:"principal_id"`
	AccessType  string         `db:"access_type"`
	ClientIP    string         `db:"client_ip"`
	UserAgent   string         `db:"user_agent"`
	ShareID     uuid.NullUUID  `db:"share_id"`
	CreatedAt   time.Time      `db:"created_at"`
}

// ToDomain converts to domain.AccessLogEntry
func (e *dbAccessLogEntry) ToDomain() *domain.AccessLogEntry {
	entry := &domain.AccessLogEntry{
		ID:         e.ID,
		FileID:     e.FileID,
		AccessType: domain.AccessType(e.AccessType),
		ClientIP:   e.ClientIP,
		UserAgent:  e.UserAgent,
		CreatedAt:  e.CreatedAt,
	}
	if e.PrincipalID.Valid {
		principalID := e.PrincipalID.UUID
		entry.PrincipalID = &principalID
	}
	if e.ShareID.Valid {
		shareID := e.ShareID.UUID
		entry.ShareID = &shareID
	}
	return entry
}

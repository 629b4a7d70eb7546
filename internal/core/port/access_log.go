package port

import (
	"context"

	"deep-vault/internal/core/domain"

	"github.com/google/uuid"
)

// AccessLogRepository is append-only: no update or delete operations exist.
type AccessLogRepository interface {
	Create(ctx context.Context, entry domain.AccessLogEntry) error
	ListByFileID(ctx context.Context, fileID uuid.UUID, limit, offset int) ([]domain.AccessLogEntry, error)
	CountByTypeForFile(ctx context.Context, fileID uuid.UUID) (map[domain.AccessType]int64, error)
	CountByTypeForOwner(ctx context.Context, ownerID uuid.UUID) (map[domain.AccessType]int64, error)
}

// AccessLogService writes the audit trail and serves read-only aggregations
type AccessLogService interface {
	Record(ctx context.Context, entry domain.AccessLogEntry)
	ListForFile(ctx context.Context, ownerID, fileID uuid.UUID, limit, offset int) ([]domain.AccessLogEntry, error)
	Statistics(ctx context.Context, ownerID uuid.UUID) (*domain.OwnerStatistics, error)
}

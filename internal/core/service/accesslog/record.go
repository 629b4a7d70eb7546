package accesslog

import (
	"context"

	"deep-vault/internal/core/domain"
	"deep-vault/internal/core/port"

	"github.com/google/uuid"
)

// Record appends an audit row. Best effort: a write failure is logged
// and swallowed so the access that triggered it is never failed.
func (a *accessLogService) Record(ctx context.Context, entry domain.AccessLogEntry) {
	if entry.ID == uuid.Nil {
		entry.ID = uuid.New()
	}
	txErr := a.uow.Execute(ctx, func(uow port.UnitOfWork) error {
		return uow.AccessLogRepo().Create(ctx, entry)
	})
	if txErr != nil {
		a.logger.Error("failed to record access", "file_id", entry.FileID, "access_type", entry.AccessType, "error", txErr)
	}
}

package accesslog

import (
	"context"

	"deep-vault/internal/core/domain"
	"deep-vault/internal/core/port"

	"github.com/google/uuid"
)

// ListForFile pages through a file's audit trail, newest first. Only
// the owner may read it; shared access does not extend to the log.
func (a *accessLogService) ListForFile(ctx context.Context, ownerID, fileID uuid.UUID, limit, offset int) ([]domain.AccessLogEntry, error) {
	var entries []domain.AccessLogEntry
	txErr := a.uow.Execute(ctx, func(uow port.UnitOfWork) error {
		record, err := uow.FileRepo().FindByID(ctx, fileID)
		if err != nil {
			return err
		}
		if record.OwnerID != ownerID {
			return domain.ErrPermissionDenied
		}

		entries, err = uow.AccessLogRepo().ListByFileID(ctx, fileID, limit, offset)
		return err
	})
	if txErr != nil {
		return nil, txErr
	}
	return entries, nil
}

package reconcile

import (
	"log/slog"

	"deep-vault/internal/config"
	"deep-vault/internal/core/port"
)

type reconcileService struct {
	uow     port.UnitOfWork
	storage port.ObjectStorage
	cfg     config.ReconcileConfig
	logger  *slog.Logger
}

// NewReconcileService creates a new reconcile service
func NewReconcileService(uow port.UnitOfWork, storage port.ObjectStorage, cfg config.ReconcileConfig, logger *slog.Logger) port.ReconcileService {
	return &reconcileService{uow: uow, storage: storage, cfg: cfg, logger: logger}
}

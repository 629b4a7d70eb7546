package ingest

import (
	"log/slog"

	"deep-vault/internal/config"
	"deep-vault/internal/core/port"
)

type ingestService struct {
	storage   port.ObjectStorage
	uow       port.UnitOfWork
	uploadCfg config.FileUploadConfig
	logger    *slog.Logger
}

// NewIngestService creates a new ingest announcement handler
func NewIngestService(uow port.UnitOfWork, storage port.ObjectStorage, cfg config.FileUploadConfig, logger *slog.Logger) port.MessageService {
	return &ingestService{
		storage:   storage,
		uow:       uow,
		uploadCfg: cfg,
		logger:    logger,
	}
}

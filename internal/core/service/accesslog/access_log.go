package accesslog

import (
	"log/slog"

	"deep-vault/internal/core/port"
)

type accessLogService struct {
	uow    port.UnitOfWork
	logger *slog.Logger
}

// NewAccessLogService creates a new access log service
func NewAccessLogService(uow port.UnitOfWork, logger *slog.Logger) port.AccessLogService {
	return &accessLogService{uow: uow, logger: logger}
}

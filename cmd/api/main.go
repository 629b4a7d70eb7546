package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"deep-vault/internal/adapters/eventbroker/nats"
	"deep-vault/internal/adapters/handlers/http/chi"
	filehandler "deep-vault/internal/adapters/handlers/http/chi/v1/file"
	sharehandler "deep-vault/internal/adapters/handlers/http/chi/v1/share"
	statshandler "deep-vault/internal/adapters/handlers/http/chi/v1/stats"
	taghandler "deep-vault/internal/adapters/handlers/http/chi/v1/tag"
	trashhandler "deep-vault/internal/adapters/handlers/http/chi/v1/trash"
	"deep-vault/internal/adapters/repository/postgres"
	"deep-vault/internal/adapters/storage/minio"
	"deep-vault/internal/config"
	"deep-vault/internal/core/port"
	"deep-vault/internal/core/service/accesslog"
	"deep-vault/internal/core/service/file"
	"deep-vault/internal/core/service/ingest"
	"deep-vault/internal/core/service/reconcile"
	"deep-vault/internal/core/service/recyclebin"
	shareservice "deep-vault/internal/core/service/share"
	tagservice "deep-vault/internal/core/service/tag"
)

func main() {

	ctx, stop := signal.NotifyContext(
		context.Background(),
		os.Interrupt,
		syscall.SIGTERM,
	)
	defer stop()

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	cfg, err := config.Load()
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	db, err := initDB(cfg.Database)
	if err != nil {
		logger.Error("failed to init database", "error", err)
		os.Exit(1)
	}
	defer func(db *sql.DB) {
		err := db.Close()
		if err != nil {
			logger.Error("failed to close database", "error", err)
			os.Exit(1)
		}
	}(db)
	logger.Info("db connection established")

	//storage
	minioAdapter, err := minio.NewAdapter(ctx, cfg.Minio, logger)
	if err != nil {
		logger.Error("failed to init minio", "error", err)
		os.Exit(1)
	}

	unitOfWork := postgres.NewUnitOfWork(db)

	//core services
	accessLogService := accesslog.NewAccessLogService(unitOfWork, logger)
	fileService := file.NewFileService(unitOfWork, minioAdapter, accessLogService, cfg.Upload)
	tagService := tagservice.NewTagService(unitOfWork, cfg.Upload.MaxFileTags)
	shareService := shareservice.NewShareService(unitOfWork)
	recycleBinService := recyclebin.NewRecycleBinService(unitOfWork, minioAdapter, logger)
	reconcileService := reconcile.NewReconcileService(unitOfWork, minioAdapter, cfg.Reconcile, logger)
	ingestService := ingest.NewIngestService(unitOfWork, minioAdapter, cfg.Upload, logger)

	//ingest consumer
	consumer, err := nats.NewNATSConsumer(cfg.NATS, logger)
	if err != nil {
		logger.Error("failed to init nats consumer", "error", err)
		os.Exit(1)
	}
	if err := consumer.Subscribe(ctx, ingestService); err != nil {
		logger.Error("failed to subscribe to ingest announcements", "error", err)
		os.Exit(1)
	}

	//http
	fileHandler := filehandler.NewFileHandlerV1(fileService, tagService, accessLogService, cfg.Upload.MaxFileSize, logger)
	tagHandler := taghandler.NewTagHandlerV1(tagService, logger)
	shareHandler := sharehandler.NewShareHandlerV1(shareService, logger)
	trashHandler := trashhandler.NewTrashHandlerV1(recycleBinService, logger)
	statsHandler := statshandler.NewStatsHandlerV1(accessLogService, logger)

	router := chi.NewRouter(
		logger,
		fileHandler,
		tagHandler,
		shareHandler,
		trashHandler,
		statsHandler,
		cfg.Upload.MaxFileSize+(1<<20),
		cfg.Env.Env,
	)
	server := &http.Server{
		Addr:    fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port),
		Handler: router,
	}

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		logger.Info("starting server", "host", cfg.Server.Host, "port", cfg.Server.Port)
		servErr := server.ListenAndServe()
		if servErr != nil && !errors.Is(servErr, http.ErrServerClosed) {
			logger.Error("failed to start server", "error", servErr)
			stop()
		}
	}()

	// init reconcile task
	wg.Add(1)
	go func() {
		defer wg.Done()
		initReconcileTask(ctx, reconcileService, cfg.Reconcile.Every, logger)
	}()

	//wait for context cancel
	<-ctx.Done()
	logger.Info("gracefully shutting down app")

	if err := consumer.Close(); err != nil {
		logger.Error("failed to close nats consumer", "error", err)
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("failed to shutdown server", "error", err)
	} else {
		logger.Info("server gracefully shutdown complete")
	}

	wg.Wait()
	logger.Info("app shutdown complete")

}

func initDB(cfg config.DatabaseConfig) (*sql.DB, error) {

	dsn := fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		cfg.Host,
		cfg.Port,
		cfg.User,
		cfg.Password,
		cfg.Name,
		cfg.SSLMode,
	)
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	db.SetMaxOpenConns(cfg.MaxOpenCons)
	db.SetMaxIdleConns(cfg.MaxIdleCons)
	db.SetConnMaxLifetime(cfg.ConMaxLifeTime)

	return db, nil
}

func initReconcileTask(ctx context.Context, service port.ReconcileService, every time.Duration, logger *slog.Logger) {
	ticker := time.NewTicker(every)
	defer ticker.Stop()

	logger.Info("reconcile task initialized", "interval", every)

	for {
		select {
		case <-ticker.C:
			logger.Info("reconcile task starting")
			now := time.Now()
			if err := service.SweepStaleUploads(ctx, now); err != nil {
				logger.Error("failed to sweep stale uploads", "error", err)
			}
			if err := service.SweepOrphanObjects(ctx, now); err != nil {
				logger.Error("failed to sweep orphan objects", "error", err)
			}
			logger.Info("reconcile task completed")
		case <-ctx.Done():
			logger.Info("reconcile task stopped")
			return
		}
	}

}

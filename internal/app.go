package internal

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"sync"
	"syscall"
	"time"

	"catalog-service/internal/adapters/easybroker"
	logger_adapter "catalog-service/internal/adapters/logger"
	"catalog-service/internal/adapters/media"
	postgres_adapter "catalog-service/internal/adapters/postgres"
	rabbitmq_adapter "catalog-service/internal/adapters/rabbitmq"
	"catalog-service/internal/adapters/rest"
	"catalog-service/internal/configs"
	"catalog-service/internal/contextkeys"
	"catalog-service/internal/core/port"
	"catalog-service/internal/core/usecase"
	fluentlogger "catalog-service/pkg/fluent_logger"
	"catalog-service/pkg/postgres"

	"github.com/fluent/fluent-logger-golang/fluent"
	"github.com/jackc/pgx/v5/pgxpool"
)

// App wires every adapter and use case together. This is the composition
// root; nothing outside it knows about concrete adapter types.
type App struct {
	config       *configs.AppConfig
	dbPool       *pgxpool.Pool
	fluentClient *fluent.Fluent
	publisher    *rabbitmq_adapter.ReportPublisherAdapter
	logger       port.LoggerPort

	restServer  *rest.Server
	syncCatalog *usecase.SyncCatalogUseCase
}

func NewApp() (*App, error) {
	appConfig, err := configs.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("error loading application configuration: %w", err)
	}

	var activeLoggers []port.LoggerPort

	slogCfg := logger_adapter.SlogConfig{
		Level:    parseLogLevel(appConfig.StdoutLogger.Level),
		IsJSON:   false,
		UseColor: true,
	}
	stdoutLogger := logger_adapter.NewSlogAdapter(slogCfg)
	activeLoggers = append(activeLoggers, stdoutLogger)

	var fluentClient *fluent.Fluent
	if appConfig.FluentBit.Enabled {
		fluentClient, err = fluentlogger.NewClient(fluentlogger.Config{
			Host:      appConfig.FluentBit.Host,
			Port:      appConfig.FluentBit.Port,
			TagPrefix: appConfig.AppName,
		})
		if err != nil {
			stdoutLogger.Error("Failed to create fluentbit client", err, nil)
			return nil, fmt.Errorf("failed to create fluentbit client: %w", err)
		}

		fluentAdapter, err := logger_adapter.NewFluentLoggerAdapter(fluentClient, parseLogLevel(appConfig.FluentBit.Level))
		if err != nil {
			stdoutLogger.Error("Failed to create fluentbit adapter", err, nil)
			fluentClient.Close()
			return nil, err
		}
		activeLoggers = append(activeLoggers, fluentAdapter)
	}

	multiLogger, err := logger_adapter.NewMultiloggerAdapter(activeLoggers...)
	if err != nil {
		return nil, fmt.Errorf("failed to create multi-logger: %w", err)
	}

	baseLogger := multiLogger.WithFields(port.Fields{
		"service_name": appConfig.AppName,
	})

	appLogger := baseLogger.WithFields(port.Fields{"component": "app"})
	appLogger.Info("Logger system initialized", port.Fields{
		"active_loggers": len(activeLoggers), "fluent_enabled": appConfig.FluentBit.Enabled,
	})

	dbPool, err := postgres.NewClient(context.Background(), postgres.Config{DatabaseURL: appConfig.Database.URL})
	if err != nil {
		appLogger.Error("Failed to connect to PostgreSQL", err, nil)
		return nil, fmt.Errorf("failed to connect to PostgreSQL: %w", err)
	}
	appLogger.Info("Successfully connected to PostgreSQL pool!", nil)

	listingRepo, err := postgres_adapter.NewListingRepositoryAdapter(dbPool)
	if err != nil {
		dbPool.Close()
		return nil, fmt.Errorf("failed to create listing repository: %w", err)
	}
	facetRepo, err := postgres_adapter.NewFacetRepositoryAdapter(dbPool)
	if err != nil {
		dbPool.Close()
		return nil, fmt.Errorf("failed to create facet repository: %w", err)
	}

	fetcher, err := easybroker.NewEasyBrokerAdapter(appConfig.CatalogAPI.URL)
	if err != nil {
		appLogger.Error("Failed to create EasyBroker adapter", err, nil)
		dbPool.Close()
		return nil, fmt.Errorf("failed to initialize catalog fetcher: %w", err)
	}
	appLogger.Info("EasyBroker fetcher initialized.", port.Fields{
		"api_url": appConfig.CatalogAPI.URL,
		"scopes":  len(appConfig.CatalogAPI.Scopes),
	})

	var mediaStorage port.MediaStoragePort
	if appConfig.Media.Enabled {
		downloader, err := media.NewDownloaderAdapter(appConfig.Media.Dir)
		if err != nil {
			appLogger.Error("Failed to create media downloader", err, nil)
			dbPool.Close()
			return nil, fmt.Errorf("failed to initialize media downloader: %w", err)
		}
		mediaStorage = downloader
		appLogger.Info("Media downloader initialized.", port.Fields{"dir": appConfig.Media.Dir})
	}

	var publisher *rabbitmq_adapter.ReportPublisherAdapter
	var reportPublisher port.SyncReportPublisherPort
	if appConfig.RabbitMQ.Enabled {
		publisher, err = rabbitmq_adapter.NewReportPublisherAdapter(appConfig.RabbitMQ.URL)
		if err != nil {
			appLogger.Error("Failed to create report publisher", err, nil)
			dbPool.Close()
			return nil, fmt.Errorf("failed to initialize report publisher: %w", err)
		}
		reportPublisher = publisher
		appLogger.Info("RabbitMQ report publisher initialized.", nil)
	}

	getFacetsUC := usecase.NewGetFacetsUseCase(facetRepo)
	findListingsUC := usecase.NewFindListingsUseCase(listingRepo)
	getListingDetailsUC := usecase.NewGetListingDetailsUseCase(listingRepo)
	getMapPinsUC := usecase.NewGetMapPinsUseCase(listingRepo)
	reconcileUC := usecase.NewReconcileListingUseCase(listingRepo, getFacetsUC)
	syncCatalogUC := usecase.NewSyncCatalogUseCase(fetcher, reconcileUC, mediaStorage, reportPublisher, appConfig.CatalogAPI.Scopes)
	appLogger.Info("All use cases initialized.", nil)

	listingHandlers := rest.NewListingHandler(findListingsUC, getListingDetailsUC, getMapPinsUC)
	filterHandlers := rest.NewFilterHandler(getFacetsUC)
	syncHandlers := rest.NewSyncHandler(syncCatalogUC)

	restServer := rest.NewServer(appConfig.Port, listingHandlers, filterHandlers, syncHandlers, appConfig.AllowedOrigins, baseLogger)

	return &App{
		config:       appConfig,
		dbPool:       dbPool,
		fluentClient: fluentClient,
		publisher:    publisher,
		logger:       appLogger,
		restServer:   restServer,
		syncCatalog:  syncCatalogUC,
	}, nil
}

// Run starts the REST server and the periodic sync loop, then blocks until
// a shutdown signal or a fatal server error.
func (a *App) Run() error {
	appCtx, cancelApp := context.WithCancel(context.Background())

	var wg sync.WaitGroup

	defer func() {
		a.logger.Info("Shutdown sequence initiated...", nil)

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := a.restServer.Stop(shutdownCtx); err != nil {
			a.logger.Error("Error stopping REST server", err, nil)
		}

		a.logger.Info("Waiting for background processes to finish...", nil)
		wg.Wait()
		a.logger.Info("All background processes finished.", nil)

		if a.publisher != nil {
			if err := a.publisher.Close(); err != nil {
				a.logger.Error("Error closing report publisher", err, nil)
			}
		}

		if a.dbPool != nil {
			a.dbPool.Close()
			a.logger.Info("PostgreSQL pool closed.", nil)
		}

		a.logger.Info("Application shut down gracefully.", nil)

		if a.fluentClient != nil {
			if err := a.fluentClient.Close(); err != nil {
				log.Printf("App: Error closing fluent client: %v\n", err)
			}
		}
	}()

	a.logger.Info("Application is starting...", nil)

	serverErrors := make(chan error, 1)
	go func() {
		if err := a.restServer.Start(); err != nil {
			serverErrors <- err
		}
	}()

	wg.Add(1)
	go a.runSyncLoop(appCtx, &wg)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	a.logger.Info("Application running. Waiting for signals or server error...", nil)
	select {
	case receivedSignal := <-quit:
		a.logger.Warn("Received signal, shutting down", port.Fields{"signal": receivedSignal.String()})
	case err := <-serverErrors:
		a.logger.Error("REST server failed, shutting down", err, nil)
	case <-appCtx.Done():
		a.logger.Warn("Context was cancelled unexpectedly, shutting down", nil)
	}

	cancelApp()

	return nil
}

// runSyncLoop runs one sync at startup and then one per configured
// interval until the context is cancelled.
func (a *App) runSyncLoop(ctx context.Context, wg *sync.WaitGroup) {
	defer wg.Done()

	loopLogger := a.logger.WithFields(port.Fields{"component": "sync_loop"})

	interval := time.Duration(a.config.SyncIntervalHours) * time.Hour
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	runOnce := func() {
		syncCtx := contextkeys.ContextWithLogger(ctx, loopLogger)
		report, err := a.syncCatalog.Execute(syncCtx)
		if err != nil {
			loopLogger.Error("Scheduled sync failed", err, nil)
			return
		}
		loopLogger.Info("Scheduled sync finished", port.Fields{
			"created": report.Created,
			"updated": report.Updated,
			"failed":  report.Failed,
		})
	}

	runOnce()

	for {
		select {
		case <-ctx.Done():
			loopLogger.Info("Sync loop stopped.", nil)
			return
		case <-ticker.C:
			runOnce()
		}
	}
}

func parseLogLevel(levelStr string) slog.Level {
	switch strings.ToLower(levelStr) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		log.Printf("Warning: Unknown log level '%s'. Defaulting to 'info'.", levelStr)
		return slog.LevelInfo
	}
}

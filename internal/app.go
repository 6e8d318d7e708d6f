package internal

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	catalog_api_client "catalog-service/internal/adapters/catalog_api_client"
	jsonstore_adapter "catalog-service/internal/adapters/jsonstore"
	logger_adapter "catalog-service/internal/adapters/logger"
	postgres_adapter "catalog-service/internal/adapters/postgres"
	"catalog-service/internal/adapters/rest"
	"catalog-service/internal/configs"
	"catalog-service/internal/core/port"
	"catalog-service/internal/core/usecase"
	"catalog-service/pkg/fluentlogger"

	"github.com/fluent/fluent-logger-golang/fluent"
	"github.com/jackc/pgx/v5/pgxpool"
)

type App struct {
	config    *configs.AppConfig
	dbPool    *pgxpool.Pool
	apiServer *rest.Server

	fluentClient *fluent.Fluent
	logger       port.LoggerPort
}

func NewApp() (*App, error) {
	appConfig, err := configs.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("error loading application configuration: %w", err)
	}

	// --- 1. ИНИЦИАЛИЗАЦИЯ ЛОГГЕРОВ ---
	var activeLoggers []port.LoggerPort

	slogCfg := logger_adapter.SlogConfig{
		Level:    parseLogLevel(appConfig.StdoutLogger.Level),
		IsJSON:   false, // текстовый формат
		UseColor: true,
	}
	stdoutLogger := logger_adapter.NewSlogAdapter(slogCfg)
	activeLoggers = append(activeLoggers, stdoutLogger)

	// Добавляем Fluent Bit логгер, если он включен в конфигурации
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

	// Создаем наш композитный логгер
	multiLogger, err := logger_adapter.NewMultiloggerAdapter(activeLoggers...)
	if err != nil {
		return nil, fmt.Errorf("failed to create multi-logger: %w", err)
	}

	// --- 2. СОЗДАЕМ БАЗОВЫЙ ЛОГГЕР ПРИЛОЖЕНИЯ С КОНТЕКСТОМ ---
	baseLogger := multiLogger.WithFields(port.Fields{
		"service_name": appConfig.AppName,
	})

	appLogger := baseLogger.WithFields(port.Fields{"component": "app"})
	appLogger.Info("Logger system initialized", port.Fields{
		"active_loggers": len(activeLoggers), "fluent_enabled": appConfig.FluentBit.Enabled,
	})

	// --- 3. ИСТОЧНИК КАТАЛОГА ---
	catalogClient := catalog_api_client.NewCatalogServiceAPIClient(appConfig.CatalogAPI.BaseURL)
	catalogSource := catalog_api_client.NewCachingCatalogSource(
		catalogClient,
		time.Duration(appConfig.CatalogAPI.CacheTTLSeconds)*time.Second,
	)
	appLogger.Info("Catalog source initialized", port.Fields{
		"base_url":      appConfig.CatalogAPI.BaseURL,
		"cache_ttl_sec": appConfig.CatalogAPI.CacheTTLSeconds,
	})

	// --- 4. ПЕРСИСТЕНТНОСТЬ КЛИЕНТСКОГО СОСТОЯНИЯ ---
	var (
		dbPool        *pgxpool.Pool
		compareRepo   port.CompareRepositoryPort
		viewStateRepo port.ViewStateRepositoryPort
	)
	switch appConfig.Storage.Backend {
	case "postgres":
		dbPool, err = postgres_adapter.NewClient(context.Background(), postgres_adapter.Config{DatabaseURL: appConfig.Storage.DatabaseURL})
		if err != nil {
			appLogger.Error("Failed to connect to PostgreSQL", err, nil)
			return nil, fmt.Errorf("failed to connect to PostgreSQL: %w", err)
		}
		appLogger.Info("Successfully connected to PostgreSQL pool!", nil)

		compareRepo, err = postgres_adapter.NewCompareRepository(dbPool)
		if err != nil {
			dbPool.Close()
			return nil, fmt.Errorf("failed to create postgres compare repository: %w", err)
		}
		viewStateRepo, err = postgres_adapter.NewViewStateRepository(dbPool)
		if err != nil {
			dbPool.Close()
			return nil, fmt.Errorf("failed to create postgres view state repository: %w", err)
		}
	default:
		compareRepo, err = jsonstore_adapter.NewCompareRepository(appConfig.Storage.DataDir)
		if err != nil {
			return nil, fmt.Errorf("failed to create file compare repository: %w", err)
		}
		viewStateRepo, err = jsonstore_adapter.NewViewStateRepository(appConfig.Storage.DataDir)
		if err != nil {
			return nil, fmt.Errorf("failed to create file view state repository: %w", err)
		}
	}
	appLogger.Info("All persistence and service adapters initialized.", port.Fields{"storage_backend": appConfig.Storage.Backend})

	// --- 5. ИНИЦИАЛИЗАЦИЯ USE CASES (ядра бизнес-логики) ---
	searchInventoryUseCase := usecase.NewSearchInventoryUseCase(catalogSource)
	getCarDetailsUseCase := usecase.NewGetCarDetailsUseCase(catalogSource)
	getRecentCarsUseCase := usecase.NewGetRecentCarsUseCase(catalogSource)
	getFilterOptionsUseCase := usecase.NewGetFilterOptionsUseCase(catalogSource)

	addToCompareUseCase := usecase.NewAddToCompareUseCase(catalogSource, compareRepo)
	removeFromCompareUseCase := usecase.NewRemoveFromCompareUseCase(compareRepo)
	getCompareSetUseCase := usecase.NewGetCompareSetUseCase(compareRepo)

	saveViewStateUseCase := usecase.NewSaveViewStateUseCase(viewStateRepo)
	restoreViewStateUseCase := usecase.NewRestoreViewStateUseCase(viewStateRepo)
	completeRestoreUseCase := usecase.NewCompleteRestoreUseCase(viewStateRepo)

	// --- 6. REST API Server ---
	inventoryHandler := rest.NewInventoryHandler(searchInventoryUseCase, getCarDetailsUseCase, getRecentCarsUseCase, getFilterOptionsUseCase)
	compareHandler := rest.NewCompareHandler(addToCompareUseCase, removeFromCompareUseCase, getCompareSetUseCase)
	viewStateHandler := rest.NewViewStateHandler(saveViewStateUseCase, restoreViewStateUseCase, completeRestoreUseCase)
	apiServer := rest.NewServer(appConfig.Rest.PORT, inventoryHandler, compareHandler, viewStateHandler, baseLogger)
	appLogger.Info("REST API server configured.", nil)

	application := &App{
		config:    appConfig,
		dbPool:    dbPool,
		apiServer: apiServer,

		fluentClient: fluentClient,
		logger:       appLogger,
	}

	return application, nil
}

// Run запускает все компоненты приложения и управляет их жизненным циклом.
func (a *App) Run() error {
	// Создаем единый контекст для всего приложения для управления graceful shutdown
	appCtx, cancelApp := context.WithCancel(context.Background())

	defer func() {
		a.logger.Info("Shutdown sequence initiated...", nil)

		if a.apiServer != nil {
			if err := a.apiServer.Stop(context.Background()); err != nil {
				a.logger.Error("Error during API server shutdown", err, nil)
			}
		}

		if a.dbPool != nil {
			a.dbPool.Close()
			a.logger.Info("PostgreSQL pool closed.", nil)
		}

		a.logger.Info("Application shut down gracefully.", nil)

		if a.fluentClient != nil {
			if err := a.fluentClient.Close(); err != nil {
				// Логируем в stdout, так как fluent может быть уже недоступен
				fmt.Printf("ERROR: Error closing fluent client: %v\n", err)
			}
		}
	}()

	a.logger.Info("Application is starting...", nil)

	serverErrors := make(chan error, 1)
	go func() {
		a.logger.Info("Starting HTTP server...", port.Fields{"port": a.config.Rest.PORT})
		if err := a.apiServer.Start(); err != nil && err != http.ErrServerClosed {
			serverErrors <- err
		}
	}()

	// Ожидание сигнала на завершение или ошибки от одного из компонентов
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	a.logger.Info("Application running. Waiting for signals or server error...", nil)
	select {
	case receivedSignal := <-quit:
		a.logger.Warn("Received OS signal, shutting down...", port.Fields{"signal": receivedSignal.String()})
	case <-appCtx.Done():
		a.logger.Warn("Context was cancelled unexpectedly, shutting down...", nil)
	case err := <-serverErrors:
		a.logger.Error("Server failed to start, shutting down", err, nil)
	}

	// Инициируем graceful shutdown, отменяя главный контекст
	cancelApp()

	return nil
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
		// Возвращаем безопасное значение по умолчанию и логируем предупреждение
		log.Printf("Warning: Unknown log level '%s'. Defaulting to 'info'.", levelStr)
		return slog.LevelInfo
	}
}

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"ebaylistingapp/config"
	_ "ebaylistingapp/docs" // Swagger docs
	categoryJSON "ebaylistingapp/internal/category/repository/jsonfile"
	"ebaylistingapp/internal/eventbus"
	"ebaylistingapp/internal/httpserver"
	itemJSON "ebaylistingapp/internal/item/repository/jsonfile"
	itemUC "ebaylistingapp/internal/item/usecase"
	"ebaylistingapp/internal/model"
	settingsJSON "ebaylistingapp/internal/settings/repository/jsonfile"
	"ebaylistingapp/pkg/log"
)

// @title       eBay Listing App API
// @description Listing and category management with JSON file storage.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting eBay Listing App...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)
	logger.Infof(ctx, "Settings file: %s", cfg.Storage.SettingsPath)

	// 3. Settings: resolve where the listing files live.
	settingsRepo := settingsJSON.New(cfg.Storage.SettingsPath, logger)
	if err := settingsRepo.Load(ctx); err != nil {
		logger.Warnf(ctx, "Settings file unreadable, using defaults: %v", err)
	}

	storageDir := cfg.Storage.StoragePathOverride
	if storageDir == "" {
		if sp := settingsRepo.Get(ctx).StoragePath; sp != nil {
			storageDir = *sp
		}
	}
	if storageDir == "" {
		logger.Warn(ctx, "No storage path configured yet; stores stay empty until one is chosen via the settings API")
	} else {
		logger.Infof(ctx, "Storage directory: %s", storageDir)
	}

	// 4. Stores
	categoryRepo := categoryJSON.New(storageDir, logger)
	if err := categoryRepo.Load(ctx); err != nil {
		logger.Warnf(ctx, "Categories unreadable, starting empty: %v", err)
	}

	itemRepo := itemJSON.New(storageDir, logger)
	if err := itemRepo.Load(ctx); err != nil {
		logger.Warnf(ctx, "Items unreadable, starting empty: %v", err)
	}

	// 5. Event bus: re-point both stores when the storage path changes.
	bus := eventbus.New(logger)
	bus.Subscribe(model.TopicStoragePathChanged, func(ctx context.Context, e eventbus.Event) {
		dir, _ := e.Payload.(string)
		if dir == "" {
			return
		}
		if err := categoryRepo.SetPath(ctx, dir); err != nil {
			logger.Warnf(ctx, "Categories unreadable at %s, starting empty: %v", dir, err)
		}
		if err := itemRepo.SetPath(ctx, dir); err != nil {
			logger.Warnf(ctx, "Items unreadable at %s, starting empty: %v", dir, err)
		}
	})
	bus.Subscribe(model.TopicCategoriesChanged, func(ctx context.Context, e eventbus.Event) {
		logger.Debug(ctx, "Categories changed")
	})
	bus.Subscribe(model.TopicItemsChanged, func(ctx context.Context, e eventbus.Event) {
		logger.Debug(ctx, "Items changed")
	})

	// 6. Initial lifecycle pass so loaded items reflect today's date.
	lifecycle := itemUC.New(itemRepo, bus, logger)
	if changed, err := lifecycle.EvaluateLifecycle(ctx, time.Now()); err != nil {
		logger.Warnf(ctx, "Lifecycle pass could not persist: %v", err)
	} else if changed {
		logger.Info(ctx, "Lifecycle pass ended expired items")
	}

	// 7. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:          logger,
		Port:            cfg.HTTPServer.Port,
		Mode:            cfg.HTTPServer.Mode,
		Environment:     cfg.Environment.Name,
		Bus:             bus,
		CategoryRepo:    categoryRepo,
		ItemRepo:        itemRepo,
		SettingsRepo:    settingsRepo,
		RateLimitPerMin: cfg.RateLimit.RequestsPerMin,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 8. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}

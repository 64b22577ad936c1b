package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v3"
	"github.com/joho/godotenv"

	"github.com/Antoinelebgdu87/Windows-XP/winxp-go/internal/config"
	"github.com/Antoinelebgdu87/Windows-XP/winxp-go/internal/handler"
	"github.com/Antoinelebgdu87/Windows-XP/winxp-go/internal/middleware"
	"github.com/Antoinelebgdu87/Windows-XP/winxp-go/internal/router"
	"github.com/Antoinelebgdu87/Windows-XP/winxp-go/internal/service"
	"github.com/Antoinelebgdu87/Windows-XP/winxp-go/internal/session"
	"github.com/Antoinelebgdu87/Windows-XP/winxp-go/internal/storage"
	"github.com/Antoinelebgdu87/Windows-XP/winxp-go/internal/store"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	middleware.InitLogger(cfg.LogLevel, "winxp-desktop")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	backend := newBackend(ctx, cfg)
	defer backend.Close()

	docStore := store.New(backend)
	docStore.Load(ctx)

	worker := store.NewAutosaveWorker(docStore, store.DefaultDebounce)
	go worker.Start(ctx)

	sessions := session.NewManager(session.DefaultTTL)

	handler.InitMetrics(sessions)
	docStore.PersistHook = func(trigger string, err error) {
		handler.Metrics.SavesTotal.WithLabelValues(trigger).Inc()
		if err != nil {
			handler.Metrics.SaveErrors.Inc()
		}
	}

	videoSvc := service.NewVideoService(docStore)
	reviewSvc := service.NewReviewService(docStore)
	recycleSvc := service.NewRecycleService(docStore)

	app := fiber.New(fiber.Config{
		AppName:      "WinXP Desktop API",
		ServerHeader: "WinXP",
	})

	h := &router.Handlers{
		Auth:     handler.NewAuthHandler(cfg.AdminKey, cfg.JWTSecret),
		Document: handler.NewDocumentHandler(docStore, worker),
		Video:    handler.NewVideoHandler(videoSvc),
		Review:   handler.NewReviewHandler(reviewSvc),
		Recycle:  handler.NewRecycleHandler(recycleSvc),
		Settings: handler.NewSettingsHandler(docStore),
		Window:   handler.NewWindowHandler(sessions),
		Stats:    handler.NewStatsHandler(docStore),
		Health:   handler.NewHealthHandler(backend),
	}
	router.Setup(app, h, cfg.JWTSecret, cfg.CORSOrigins)

	// Graceful shutdown: stop the autosave worker (final debounce flush)
	// before closing the listener.
	go func() {
		sig := make(chan os.Signal, 1)
		signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
		<-sig
		log.Println("shutting down")
		cancel()
		_ = app.Shutdown()
	}()

	log.Printf("WinXP desktop backend starting on :%s (env=%s storage=%s)",
		cfg.Port, cfg.Environment, backend.Name())
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatalf("server error: %v", err)
	}
}

// newBackend selects the storage backend from config. Any backend
// failure falls back to memory: persistence errors are never fatal,
// the shell just runs on defaults for the session.
func newBackend(ctx context.Context, cfg *config.Config) storage.Backend {
	switch cfg.StorageBackend {
	case "redis":
		b, err := storage.NewRedisBackend(cfg.RedisURL)
		if err == nil {
			return b
		}
		log.Printf("storage: redis unavailable, falling back to memory: %v", err)
	case "postgres":
		b, err := storage.NewPostgresBackend(ctx, cfg.DatabaseURL)
		if err == nil {
			return b
		}
		log.Printf("storage: postgres unavailable, falling back to memory: %v", err)
	case "memory":
		return storage.NewMemoryBackend()
	default:
		b, err := storage.NewFileBackend(cfg.DataDir)
		if err == nil {
			return b
		}
		log.Printf("storage: data dir unavailable, falling back to memory: %v", err)
	}
	return storage.NewMemoryBackend()
}

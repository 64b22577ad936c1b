package router

import (
	"github.com/gofiber/fiber/v3"
	recoverer "github.com/gofiber/fiber/v3/middleware/recover"

	"github.com/Antoinelebgdu87/Windows-XP/winxp-go/internal/handler"
	"github.com/Antoinelebgdu87/Windows-XP/winxp-go/internal/middleware"
)

// Handlers holds all handler instances needed by the router.
type Handlers struct {
	Auth     *handler.AuthHandler
	Document *handler.DocumentHandler
	Video    *handler.VideoHandler
	Review   *handler.ReviewHandler
	Recycle  *handler.RecycleHandler
	Settings *handler.SettingsHandler
	Window   *handler.WindowHandler
	Stats    *handler.StatsHandler
	Health   *handler.HealthHandler
}

// Setup configures the middleware stack and all API routes on the given
// Fiber app.
func Setup(app *fiber.App, h *Handlers, jwtSecret, corsOrigins string) {
	// Middleware stack (order matters)
	app.Use(recoverer.New())
	app.Use(middleware.NewRequestLogger())
	app.Use(middleware.NewCORS(corsOrigins))
	app.Use(handler.MetricsMiddleware())

	admin := middleware.RequireAdmin(jwtSecret)

	// Health and metrics (no auth)
	app.Get("/health/live", h.Health.Live)
	app.Get("/health/ready", h.Health.Ready)
	app.Get("/metrics", handler.MetricsHandler())

	api := app.Group("/api")

	// Login boundary
	api.Post("/auth/login", h.Auth.Login, middleware.NewLoginRateLimiter().Handler())

	// Document store
	api.Get("/document", h.Document.Get)
	api.Post("/document/save", h.Document.Save, admin)
	api.Post("/document/save-now", h.Document.SaveNow, admin)
	api.Post("/document/autosave/toggle", h.Document.ToggleAutoSave, admin)
	api.Post("/document/reset", h.Document.Reset, admin)
	api.Get("/document/export", h.Document.Export, middleware.NewExportRateLimiter().Handler())
	api.Post("/document/import", h.Document.Import, admin, middleware.NewImportRateLimiter().Handler())

	// Video catalog
	api.Get("/videos", h.Video.List)
	api.Post("/videos", h.Video.Create, admin)
	api.Put("/videos/:id", h.Video.Update, admin)
	api.Delete("/videos/:id", h.Video.Delete, admin)

	// Reviews
	api.Get("/reviews", h.Review.ListApproved)
	api.Get("/reviews/all", h.Review.ListAll, admin)
	api.Post("/reviews", h.Review.Submit, middleware.NewReviewSubmitRateLimiter().Handler())
	api.Post("/reviews/purge", h.Review.Purge, admin)
	api.Post("/reviews/:id/approve", h.Review.Approve, admin)
	api.Post("/reviews/:id/reject", h.Review.Reject, admin)
	api.Delete("/reviews/:id", h.Review.Delete, admin)

	// Recycle bin
	api.Get("/recycle-bin", h.Recycle.List)
	api.Post("/recycle-bin", h.Recycle.Add, admin)
	api.Delete("/recycle-bin", h.Recycle.Clear, admin)
	api.Post("/recycle-bin/:id/restore", h.Recycle.Restore, admin)
	api.Delete("/recycle-bin/:id", h.Recycle.Remove, admin)

	// Settings
	api.Get("/settings", h.Settings.Get)
	api.Put("/settings", h.Settings.Update, admin)

	// Analytics snapshot
	api.Get("/stats", h.Stats.GetStats)

	// Desktop sessions and windows
	windowOps := middleware.NewWindowOpsRateLimiter().Handler()
	api.Post("/sessions", h.Window.CreateSession)
	api.Get("/windows", h.Window.List)
	api.Post("/windows", h.Window.Open, windowOps)
	api.Delete("/windows/:id", h.Window.Close, windowOps)
	api.Post("/windows/:id/focus", h.Window.Focus, windowOps)
	api.Put("/windows/:id/position", h.Window.Move, windowOps)
}

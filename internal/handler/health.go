package handler

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v3"

	"github.com/Antoinelebgdu87/Windows-XP/winxp-go/internal/storage"
)

type HealthHandler struct {
	backend storage.Backend
	startAt time.Time
}

func NewHealthHandler(backend storage.Backend) *HealthHandler {
	return &HealthHandler{
		backend: backend,
		startAt: time.Now(),
	}
}

// Live handles GET /health/live — liveness probe.
func (h *HealthHandler) Live(c fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}

// Ready handles GET /health/ready — readiness probe with a storage
// check. A down backend degrades the status but the service stays up:
// the store keeps operating from memory.
func (h *HealthHandler) Ready(c fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 3*time.Second)
	defer cancel()

	overallStatus := "healthy"
	checks := fiber.Map{
		"storage": checkStorage(ctx, h.backend),
	}
	if sc, ok := checks["storage"].(fiber.Map); ok {
		if sc["status"] != "up" {
			overallStatus = "degraded"
		}
	}

	resp := fiber.Map{
		"status":         overallStatus,
		"checks":         checks,
		"uptime_seconds": int(time.Since(h.startAt).Seconds()),
		"version":        "1.0.0",
	}

	status := fiber.StatusOK
	if overallStatus != "healthy" {
		status = fiber.StatusServiceUnavailable
	}

	return c.Status(status).JSON(resp)
}

func checkStorage(ctx context.Context, backend storage.Backend) fiber.Map {
	start := time.Now()
	err := backend.Ping(ctx)
	latency := time.Since(start).Milliseconds()

	if err != nil {
		return fiber.Map{
			"status":     "down",
			"backend":    backend.Name(),
			"latency_ms": latency,
			"error":      "storage unreachable",
		}
	}
	return fiber.Map{
		"status":     "up",
		"backend":    backend.Name(),
		"latency_ms": latency,
	}
}

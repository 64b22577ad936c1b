package handler

import (
	"github.com/gofiber/fiber/v3"

	"github.com/Antoinelebgdu87/Windows-XP/winxp-go/internal/store"
)

type StatsHandler struct {
	store *store.DocumentStore
}

func NewStatsHandler(st *store.DocumentStore) *StatsHandler {
	return &StatsHandler{store: st}
}

// GetStats handles GET /api/stats — the advisory analytics snapshot.
func (h *StatsHandler) GetStats(c fiber.Ctx) error {
	doc := h.store.Document()
	return c.JSON(fiber.Map{
		"analytics": doc.Analytics,
		"lastSaved": doc.LastSaved,
		"version":   doc.Version,
	})
}

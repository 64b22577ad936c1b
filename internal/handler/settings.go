package handler

import (
	"github.com/gofiber/fiber/v3"

	"github.com/Antoinelebgdu87/Windows-XP/winxp-go/internal/middleware"
	"github.com/Antoinelebgdu87/Windows-XP/winxp-go/internal/model"
	"github.com/Antoinelebgdu87/Windows-XP/winxp-go/internal/store"
)

type SettingsHandler struct {
	store *store.DocumentStore
}

func NewSettingsHandler(st *store.DocumentStore) *SettingsHandler {
	return &SettingsHandler{store: st}
}

// Get handles GET /api/settings
func (h *SettingsHandler) Get(c fiber.Ctx) error {
	return c.JSON(h.store.Document().Settings)
}

// Update handles PUT /api/settings — whole replacement value, like any
// other top-level field.
func (h *SettingsHandler) Update(c fiber.Ctx) error {
	var settings model.Settings
	if err := c.Bind().JSON(&settings); err != nil {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_BODY", "Invalid request body")
	}
	if settings.SyncInterval <= 0 {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_FIELD", "syncInterval must be positive")
	}

	doc := h.store.Save(c.Context(), model.DocumentPatch{Settings: &settings})
	return c.JSON(doc.Settings)
}

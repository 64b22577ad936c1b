package handler

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v3"

	"github.com/Antoinelebgdu87/Windows-XP/winxp-go/internal/middleware"
	"github.com/Antoinelebgdu87/Windows-XP/winxp-go/internal/model"
	"github.com/Antoinelebgdu87/Windows-XP/winxp-go/internal/store"
)

type DocumentHandler struct {
	store  *store.DocumentStore
	worker *store.AutosaveWorker
}

func NewDocumentHandler(st *store.DocumentStore, worker *store.AutosaveWorker) *DocumentHandler {
	return &DocumentHandler{store: st, worker: worker}
}

// Get handles GET /api/document
func (h *DocumentHandler) Get(c fiber.Ctx) error {
	return c.JSON(h.store.Document())
}

type saveRequest struct {
	model.DocumentPatch
	// Debounce coalesces this save with other edits arriving within the
	// quiet period instead of writing immediately.
	Debounce bool `json:"debounce,omitempty"`
}

// Save handles POST /api/document/save — the partial-merge write path.
func (h *DocumentHandler) Save(c fiber.Ctx) error {
	var req saveRequest
	if err := c.Bind().JSON(&req); err != nil {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_BODY", "Invalid request body")
	}

	if req.Debounce {
		h.worker.MarkDirty(req.DocumentPatch)
		return c.Status(fiber.StatusAccepted).JSON(fiber.Map{"scheduled": true})
	}

	doc := h.store.Save(c.Context(), req.DocumentPatch)
	return c.JSON(doc)
}

// SaveNow handles POST /api/document/save-now — flushes any pending
// debounced patch and persists immediately.
func (h *DocumentHandler) SaveNow(c fiber.Ctx) error {
	doc := h.worker.SaveNow(c.Context())
	return c.JSON(fiber.Map{
		"saved":     true,
		"lastSaved": doc.LastSaved,
	})
}

// ToggleAutoSave handles POST /api/document/autosave/toggle
func (h *DocumentHandler) ToggleAutoSave(c fiber.Ctx) error {
	enabled := h.store.ToggleAutoSave(c.Context())
	return c.JSON(fiber.Map{"autoSave": enabled})
}

// Reset handles POST /api/document/reset — factory reset, gated on an
// explicit confirmation.
func (h *DocumentHandler) Reset(c fiber.Ctx) error {
	if !middleware.Confirmed(c) {
		return middleware.ErrorResponse(c, fiber.StatusConflict, "CONFIRM_REQUIRED", "Reset requires confirm=true")
	}
	doc := h.store.Reset(c.Context())
	return c.JSON(doc)
}

// Export handles GET /api/document/export — downloads the full snapshot
// as a dated .json attachment.
func (h *DocumentHandler) Export(c fiber.Ctx) error {
	data, err := h.store.ExportSnapshot()
	if err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "Failed to serialize snapshot")
	}

	filename := fmt.Sprintf("winxp_backup_%s.json", time.Now().UTC().Format("2006-01-02"))
	c.Set("Content-Type", "application/json")
	c.Set("Content-Disposition", "attachment; filename="+filename)
	return c.Send(data)
}

// Import handles POST /api/document/import — validates and applies an
// exported snapshot. Failure leaves the current state untouched.
func (h *DocumentHandler) Import(c fiber.Ctx) error {
	body := c.Body()
	if len(body) == 0 {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_BODY", "Snapshot body is required")
	}

	if err := h.store.ImportSnapshot(c.Context(), body); err != nil {
		Metrics.ImportsTotal.WithLabelValues("rejected").Inc()
		return middleware.ErrorResponse(c, fiber.StatusUnprocessableEntity, "IMPORT_FAILED", err.Error())
	}

	Metrics.ImportsTotal.WithLabelValues("accepted").Inc()
	return c.JSON(fiber.Map{"imported": true})
}

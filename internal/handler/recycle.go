package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"

	"github.com/Antoinelebgdu87/Windows-XP/winxp-go/internal/middleware"
	"github.com/Antoinelebgdu87/Windows-XP/winxp-go/internal/model"
	"github.com/Antoinelebgdu87/Windows-XP/winxp-go/internal/service"
)

type RecycleHandler struct {
	svc *service.RecycleService
}

func NewRecycleHandler(svc *service.RecycleService) *RecycleHandler {
	return &RecycleHandler{svc: svc}
}

// List handles GET /api/recycle-bin
func (h *RecycleHandler) List(c fiber.Ctx) error {
	return c.JSON(h.svc.Items())
}

// Add handles POST /api/recycle-bin — the manual "add to recycle bin"
// simulation.
func (h *RecycleHandler) Add(c fiber.Ctx) error {
	var req model.RecycleItemRequest
	if err := c.Bind().JSON(&req); err != nil {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_BODY", "Invalid request body")
	}

	name, errMsg := middleware.ValidateItemName(req.Name)
	if errMsg != "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_FIELD", errMsg)
	}
	req.Name = name

	itemType, errMsg := middleware.ValidateRecycleType(req.Type)
	if errMsg != "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_FIELD", errMsg)
	}
	req.Type = itemType

	item := h.svc.AddItem(c.Context(), req)
	return c.Status(fiber.StatusCreated).JSON(item)
}

// Remove handles DELETE /api/recycle-bin/:id — delete permanently.
func (h *RecycleHandler) Remove(c fiber.Ctx) error {
	if err := h.svc.RemoveItem(c.Context(), c.Params("id")); err != nil {
		if errors.Is(err, service.ErrRecycleItemNotFound) {
			return middleware.ErrorResponse(c, fiber.StatusNotFound, "NOT_FOUND", "Recycle item not found")
		}
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "Failed to remove item")
	}
	return c.JSON(fiber.Map{"deleted": true})
}

// Restore handles POST /api/recycle-bin/:id/restore. Restoring only
// removes the item from the bin; nothing is re-created elsewhere.
func (h *RecycleHandler) Restore(c fiber.Ctx) error {
	if err := h.svc.RestoreItem(c.Context(), c.Params("id")); err != nil {
		if errors.Is(err, service.ErrRecycleItemNotFound) {
			return middleware.ErrorResponse(c, fiber.StatusNotFound, "NOT_FOUND", "Recycle item not found")
		}
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "Failed to restore item")
	}
	return c.JSON(fiber.Map{"restored": true})
}

// Clear handles DELETE /api/recycle-bin — empty bin, confirmation-gated.
// Clearing an already-empty bin succeeds.
func (h *RecycleHandler) Clear(c fiber.Ctx) error {
	if !middleware.Confirmed(c) {
		return middleware.ErrorResponse(c, fiber.StatusConflict, "CONFIRM_REQUIRED", "Emptying the recycle bin requires confirm=true")
	}
	h.svc.ClearAll(c.Context())
	return c.JSON(fiber.Map{"cleared": true})
}

package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"

	"github.com/Antoinelebgdu87/Windows-XP/winxp-go/internal/middleware"
	"github.com/Antoinelebgdu87/Windows-XP/winxp-go/internal/model"
	"github.com/Antoinelebgdu87/Windows-XP/winxp-go/internal/session"
)

type WindowHandler struct {
	sessions *session.Manager
}

func NewWindowHandler(sessions *session.Manager) *WindowHandler {
	return &WindowHandler{sessions: sessions}
}

// CreateSession handles POST /api/sessions — one desktop session per
// shell tab. The boot/loading screen calls this when its animation
// completes.
func (h *WindowHandler) CreateSession(c fiber.Ctx) error {
	id := h.sessions.Create()
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"sessionId": id})
}

// List handles GET /api/windows
func (h *WindowHandler) List(c fiber.Ctx) error {
	wm, err := h.manager(c)
	if err != nil {
		return err
	}

	windows, focusedID := wm.Windows()
	return c.JSON(model.WindowListResponse{
		Windows:   windows,
		FocusedID: focusedID,
	})
}

// Open handles POST /api/windows
func (h *WindowHandler) Open(c fiber.Ctx) error {
	wm, err := h.manager(c)
	if err != nil {
		return err
	}

	var spec model.WindowSpec
	if err := c.Bind().JSON(&spec); err != nil {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_BODY", "Invalid request body")
	}

	title, errMsg := middleware.ValidateWindowTitle(spec.Title)
	if errMsg != "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_FIELD", errMsg)
	}
	spec.Title = title

	win := wm.Open(spec)
	return c.Status(fiber.StatusCreated).JSON(win)
}

// Close handles DELETE /api/windows/:id
func (h *WindowHandler) Close(c fiber.Ctx) error {
	wm, err := h.manager(c)
	if err != nil {
		return err
	}

	if err := wm.Close(c.Params("id")); err != nil {
		return h.windowError(c, err)
	}
	return c.JSON(fiber.Map{"closed": true})
}

// Focus handles POST /api/windows/:id/focus
func (h *WindowHandler) Focus(c fiber.Ctx) error {
	wm, err := h.manager(c)
	if err != nil {
		return err
	}

	if err := wm.Focus(c.Params("id")); err != nil {
		return h.windowError(c, err)
	}
	return c.JSON(fiber.Map{"focused": true})
}

// Move handles PUT /api/windows/:id/position
func (h *WindowHandler) Move(c fiber.Ctx) error {
	wm, err := h.manager(c)
	if err != nil {
		return err
	}

	var req model.WindowMoveRequest
	if err := c.Bind().JSON(&req); err != nil {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_BODY", "Invalid request body")
	}

	if err := wm.Move(c.Params("id"), req.X, req.Y); err != nil {
		return h.windowError(c, err)
	}
	return c.JSON(fiber.Map{"moved": true})
}

// manager resolves the caller's window manager from the X-Session-ID
// header.
func (h *WindowHandler) manager(c fiber.Ctx) (*session.WindowManager, error) {
	sid := c.Get("X-Session-ID")
	if sid == "" {
		return nil, middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_FIELD", "X-Session-ID header is required")
	}
	wm, ok := h.sessions.Get(sid)
	if !ok {
		return nil, middleware.ErrorResponse(c, fiber.StatusNotFound, "NOT_FOUND", "Unknown or expired session")
	}
	return wm, nil
}

func (h *WindowHandler) windowError(c fiber.Ctx, err error) error {
	if errors.Is(err, session.ErrWindowNotFound) {
		return middleware.ErrorResponse(c, fiber.StatusNotFound, "NOT_FOUND", "Window not found")
	}
	return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "Window operation failed")
}

package handler

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v3"

	"github.com/Antoinelebgdu87/Windows-XP/winxp-go/internal/middleware"
	"github.com/Antoinelebgdu87/Windows-XP/winxp-go/internal/model"
	"github.com/Antoinelebgdu87/Windows-XP/winxp-go/internal/service"
)

type VideoHandler struct {
	svc *service.VideoService
}

func NewVideoHandler(svc *service.VideoService) *VideoHandler {
	return &VideoHandler{svc: svc}
}

// List handles GET /api/videos
func (h *VideoHandler) List(c fiber.Ctx) error {
	return c.JSON(h.svc.List())
}

// Create handles POST /api/videos
func (h *VideoHandler) Create(c fiber.Ctx) error {
	req, err := bindVideoRequest(c)
	if err != nil {
		return err
	}

	video := h.svc.Create(c.Context(), req)
	return c.Status(fiber.StatusCreated).JSON(video)
}

// Update handles PUT /api/videos/:id — full replace of the matching id.
func (h *VideoHandler) Update(c fiber.Ctx) error {
	req, err := bindVideoRequest(c)
	if err != nil {
		return err
	}

	video, err := h.svc.Update(c.Context(), c.Params("id"), req)
	if err != nil {
		if errors.Is(err, service.ErrVideoNotFound) {
			return middleware.ErrorResponse(c, fiber.StatusNotFound, "NOT_FOUND", "Video not found")
		}
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "Failed to update video")
	}
	return c.JSON(video)
}

// Delete handles DELETE /api/videos/:id — confirmation-gated.
func (h *VideoHandler) Delete(c fiber.Ctx) error {
	if !middleware.Confirmed(c) {
		return middleware.ErrorResponse(c, fiber.StatusConflict, "CONFIRM_REQUIRED", "Deleting a video requires confirm=true")
	}

	if err := h.svc.Delete(c.Context(), c.Params("id")); err != nil {
		if errors.Is(err, service.ErrVideoNotFound) {
			return middleware.ErrorResponse(c, fiber.StatusNotFound, "NOT_FOUND", "Video not found")
		}
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "Failed to delete video")
	}
	return c.JSON(fiber.Map{"deleted": true})
}

func bindVideoRequest(c fiber.Ctx) (model.VideoRequest, error) {
	var req model.VideoRequest
	if err := c.Bind().JSON(&req); err != nil {
		return req, middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_BODY", "Invalid request body")
	}
	req.Title = strings.TrimSpace(req.Title)
	if req.Title == "" {
		return req, middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_FIELD", "title is required")
	}
	if req.Views < 0 || req.Likes < 0 {
		return req, middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_FIELD", "views and likes must be non-negative")
	}
	return req, nil
}

package handler

import (
	"context"
	"errors"

	"github.com/gofiber/fiber/v3"

	"github.com/Antoinelebgdu87/Windows-XP/winxp-go/internal/middleware"
	"github.com/Antoinelebgdu87/Windows-XP/winxp-go/internal/model"
	"github.com/Antoinelebgdu87/Windows-XP/winxp-go/internal/service"
)

type ReviewHandler struct {
	svc *service.ReviewService
}

func NewReviewHandler(svc *service.ReviewService) *ReviewHandler {
	return &ReviewHandler{svc: svc}
}

// ListApproved handles GET /api/reviews — the public listing.
func (h *ReviewHandler) ListApproved(c fiber.Ctx) error {
	return c.JSON(h.svc.Approved())
}

// ListAll handles GET /api/reviews/all — the moderation listing.
func (h *ReviewHandler) ListAll(c fiber.Ctx) error {
	return c.JSON(h.svc.All())
}

// Submit handles POST /api/reviews — the public submission path. All
// violated rules come back together; a rejected submission mutates
// nothing.
func (h *ReviewHandler) Submit(c fiber.Ctx) error {
	var req model.ReviewRequest
	if err := c.Bind().JSON(&req); err != nil {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_BODY", "Invalid request body")
	}

	review, violations := h.svc.Submit(c.Context(), req)
	if len(violations) > 0 {
		Metrics.ReviewsSubmitted.WithLabelValues("rejected").Inc()
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"error": fiber.Map{
				"code":       "VALIDATION_FAILED",
				"message":    "Review submission rejected",
				"violations": violations,
			},
		})
	}

	Metrics.ReviewsSubmitted.WithLabelValues("accepted").Inc()
	return c.Status(fiber.StatusCreated).JSON(review)
}

type moderationRequest struct {
	AdminNote string `json:"adminNote,omitempty"`
}

// Approve handles POST /api/reviews/:id/approve
func (h *ReviewHandler) Approve(c fiber.Ctx) error {
	return h.moderate(c, h.svc.Approve)
}

// Reject handles POST /api/reviews/:id/reject
func (h *ReviewHandler) Reject(c fiber.Ctx) error {
	return h.moderate(c, h.svc.Reject)
}

func (h *ReviewHandler) moderate(c fiber.Ctx, action func(ctx context.Context, id, note string) (model.Review, error)) error {
	var req moderationRequest
	if len(c.Body()) > 0 {
		if err := c.Bind().JSON(&req); err != nil {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_BODY", "Invalid request body")
		}
	}

	review, err := action(c.Context(), c.Params("id"), req.AdminNote)
	if err != nil {
		if errors.Is(err, service.ErrReviewNotFound) {
			return middleware.ErrorResponse(c, fiber.StatusNotFound, "NOT_FOUND", "Review not found")
		}
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "Failed to update review")
	}
	return c.JSON(review)
}

// Delete handles DELETE /api/reviews/:id — confirmation-gated, any status.
func (h *ReviewHandler) Delete(c fiber.Ctx) error {
	if !middleware.Confirmed(c) {
		return middleware.ErrorResponse(c, fiber.StatusConflict, "CONFIRM_REQUIRED", "Deleting a review requires confirm=true")
	}

	if err := h.svc.Delete(c.Context(), c.Params("id")); err != nil {
		if errors.Is(err, service.ErrReviewNotFound) {
			return middleware.ErrorResponse(c, fiber.StatusNotFound, "NOT_FOUND", "Review not found")
		}
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "Failed to delete review")
	}
	return c.JSON(fiber.Map{"deleted": true})
}

// Purge handles POST /api/reviews/purge?status=pending|rejected
func (h *ReviewHandler) Purge(c fiber.Ctx) error {
	status := c.Query("status")
	if status != model.ReviewPending && status != model.ReviewRejected {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_FIELD", "status must be pending or rejected")
	}
	if !middleware.Confirmed(c) {
		return middleware.ErrorResponse(c, fiber.StatusConflict, "CONFIRM_REQUIRED", "Purging reviews requires confirm=true")
	}

	removed := h.svc.Purge(c.Context(), status)
	return c.JSON(fiber.Map{"removed": removed})
}

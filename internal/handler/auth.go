package handler

import (
	"crypto/subtle"

	"github.com/gofiber/fiber/v3"

	"github.com/Antoinelebgdu87/Windows-XP/winxp-go/internal/middleware"
)

type AuthHandler struct {
	adminKey  string
	jwtSecret string
}

func NewAuthHandler(adminKey, jwtSecret string) *AuthHandler {
	return &AuthHandler{adminKey: adminKey, jwtSecret: jwtSecret}
}

type loginRequest struct {
	AdminKey string `json:"adminKey"`
}

// Login handles POST /api/auth/login. The credential check is a plain
// key comparison; the host UI only cares about the granted boolean and
// the token that gates the admin surface.
func (h *AuthHandler) Login(c fiber.Ctx) error {
	var req loginRequest
	if err := c.Bind().JSON(&req); err != nil {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_BODY", "Invalid request body")
	}

	if subtle.ConstantTimeCompare([]byte(req.AdminKey), []byte(h.adminKey)) != 1 {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"granted": false})
	}

	token, err := middleware.GenerateAdminToken(h.jwtSecret)
	if err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "Failed to issue token")
	}

	return c.JSON(fiber.Map{
		"granted": true,
		"token":   token,
	})
}

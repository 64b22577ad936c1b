package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v3"
)

// Field length limits for window and recycle-bin payloads.
const (
	MaxWindowTitleLen = 128
	MaxItemNameLen    = 255
)

var validRecycleTypes = map[string]bool{
	"image":  true,
	"text":   true,
	"video":  true,
	"folder": true,
}

// ErrorResponse is a helper that returns a standard API error response.
func ErrorResponse(c fiber.Ctx, status int, code, message string) error {
	return c.Status(status).JSON(fiber.Map{
		"error": fiber.Map{
			"code":    code,
			"message": message,
		},
	})
}

// ValidateWindowTitle checks that a window title is present and within
// limits.
func ValidateWindowTitle(title string) (string, string) {
	title = strings.TrimSpace(title)
	if title == "" {
		return "", "title is required"
	}
	if len(title) > MaxWindowTitleLen {
		return "", "title must be at most 128 characters"
	}
	return title, ""
}

// ValidateRecycleType checks the item type against the fixed set.
func ValidateRecycleType(itemType string) (string, string) {
	itemType = strings.TrimSpace(strings.ToLower(itemType))
	if itemType == "" {
		return "", "type is required"
	}
	if !validRecycleTypes[itemType] {
		return "", "type must be one of: image, text, video, folder"
	}
	return itemType, ""
}

// ValidateItemName checks that a recycle item name is present and within
// limits.
func ValidateItemName(name string) (string, string) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", "name is required"
	}
	if len(name) > MaxItemNameLen {
		return "", "name must be at most 255 characters"
	}
	return name, ""
}

// Confirmed reports whether a destructive request carries the explicit
// confirmation flag (query parameter or JSON body field). Declining the
// confirmation is a complete no-op on the caller's side.
func Confirmed(c fiber.Ctx) bool {
	if c.Query("confirm") == "true" {
		return true
	}
	if len(c.Body()) == 0 {
		return false
	}
	var body struct {
		Confirm bool `json:"confirm"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return false
	}
	return body.Confirm
}

package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	applog "bakehouse/internal/log"
	"bakehouse/internal/store"
)

// fail translates the error taxonomy into a JSON response: validation
// errors are 400, missing ids are 404, anything else is a 500. Every
// failure is reported once, to the immediate caller.
func fail(c *fiber.Ctx, action string, err error) error {
	var ve *store.ValidationError
	switch {
	case errors.As(err, &ve):
		applog.Warn(c, action+".invalid", map[string]any{"reason": ve.Error()})
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": ve.Error()})
	case errors.Is(err, store.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "not found"})
	default:
		applog.Error(c, action+".fail", err, nil)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal error"})
	}
}

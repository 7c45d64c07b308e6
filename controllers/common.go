package controllers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/median-man/team-tracker/utils"
)

// Ownership and not-found failures on mutations share one shape: 404 with a
// success flag, a null entity, and a message. A caller cannot tell a missing
// resource from somebody else's.

func invalidTeamError(c *fiber.Ctx) error {
	return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
		"success": false,
		"team":    nil,
		"message": "Team doesn't exist or user is not the team owner.",
	})
}

func invalidMemberError(c *fiber.Ctx) error {
	return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
		"success": false,
		"member":  nil,
		"message": "Member doesn't exist or user is not the team owner.",
	})
}

func invalidNoteError(c *fiber.Ctx) error {
	return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
		"success": false,
		"note":    nil,
		"message": "Note doesn't exist or user is not the note owner.",
	})
}

func validationError(c *fiber.Ctx, message string, errs map[string]string) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"message": message,
		"errors":  errs,
	})
}

func userId(c *fiber.Ctx) int64 {
	return c.Locals("user").(int64)
}

func paramId(c *fiber.Ctx) (int64, error) {
	return strconv.ParseInt(c.Params("id"), 10, 64)
}

func protected(sessions SessionStore) fiber.Handler {
	return utils.Protected(utils.AuthConfig{
		ReadFrom: "any",
		Subject:  "access",
		Scopes:   []string{"basic"},
		Sessions: sessions,
	})
}

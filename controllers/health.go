package controllers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/median-man/team-tracker/utils"
	"github.com/uptrace/bun"
)

func RegisterHealthController(r *utils.Router, db *bun.DB) {
	r.Get("/healthz", func(c *fiber.Ctx) error {
		if err := db.PingContext(c.Context()); err != nil {
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
				"status": "unavailable",
			})
		}
		return c.JSON(fiber.Map{
			"status": "ok",
		})
	})
}

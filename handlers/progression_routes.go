// handlers/progression_routes.go
package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"startup-quest-system/services"
)

func SetupProgressionRoutes(app *fiber.App, progressionService *services.ProgressionService) {
	app.Get("/progress", func(c *fiber.Ctx) error {
		state := progressionService.State()
		return c.JSON(fiber.Map{
			"level":   state.UserLevel,
			"xp":      state.UserXP,
			"max_xp":  state.MaxXP,
			"phases":  state.Phases,
			"badges":  state.Badges,
			"stats":   state.UserStats,
			"user_id": c.Locals("user_id"),
		})
	})

	app.Get("/progress/phases", func(c *fiber.Ctx) error {
		return c.JSON(progressionService.Phases())
	})

	app.Get("/progress/badges", func(c *fiber.Ctx) error {
		return c.JSON(progressionService.Badges())
	})

	app.Get("/progress/stats", func(c *fiber.Ctx) error {
		return c.JSON(progressionService.Stats())
	})

	app.Post("/phases/:id/complete", func(c *fiber.Ctx) error {
		result, err := progressionService.CompletePhase(c.Params("id"))
		if err != nil {
			if errors.Is(err, services.ErrNotFound) {
				return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
					"error": "phase not found",
				})
			}
			if errors.Is(err, services.ErrPhaseLocked) {
				return c.Status(fiber.StatusConflict).JSON(fiber.Map{
					"error": "phase is still locked",
				})
			}
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "failed to complete phase",
				"cause": err.Error(),
			})
		}
		return c.JSON(result)
	})

	app.Post("/ideas/upvote", func(c *fiber.Ctx) error {
		return c.JSON(progressionService.RegisterUpvote())
	})

	app.Post("/ideas/share", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"ideas_shared": progressionService.RecordIdeaShared(),
		})
	})
}

// handlers/mentor_routes.go
package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"startup-quest-system/services"
)

func SetupMentorRoutes(app *fiber.App, mentorService *services.MentorService) {
	app.Get("/mentor/history", func(c *fiber.Ctx) error {
		return c.JSON(mentorService.History())
	})

	app.Post("/mentor/ask", func(c *fiber.Ctx) error {
		var req struct {
			Message string `json:"message"`
		}
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "invalid JSON",
				"cause": err.Error(),
			})
		}
		msg, err := mentorService.Ask(req.Message)
		if err != nil {
			if errors.Is(err, services.ErrEmptyMessage) {
				return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
					"error": "message text must not be empty",
				})
			}
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "failed to send message",
				"cause": err.Error(),
			})
		}
		return c.Status(fiber.StatusCreated).JSON(msg)
	})
}

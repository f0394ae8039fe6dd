// handlers/social_routes.go
package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"startup-quest-system/services"
)

func SetupSocialRoutes(app *fiber.App, socialService *services.SocialService) {
	app.Get("/users", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"current_user_id": c.Locals("user_id"),
			"users":           socialService.Users(),
		})
	})

	app.Get("/guilds", func(c *fiber.Ctx) error {
		return c.JSON(socialService.Guilds())
	})

	app.Get("/guilds/mine", func(c *fiber.Ctx) error {
		return c.JSON(socialService.GuildsForUser())
	})

	app.Post("/guilds", func(c *fiber.Ctx) error {
		var req struct {
			Name        string `json:"name"`
			Description string `json:"description"`
			Category    string `json:"category"`
			IsPrivate   bool   `json:"is_private"`
		}
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "invalid JSON",
				"cause": err.Error(),
			})
		}
		guild, err := socialService.CreateGuild(req.Name, req.Description, req.Category, req.IsPrivate)
		if err != nil {
			if errors.Is(err, services.ErrEmptyMessage) {
				return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
					"error": "guild name is required",
				})
			}
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "failed to create guild",
				"cause": err.Error(),
			})
		}
		return c.Status(fiber.StatusCreated).JSON(guild)
	})

	app.Post("/guilds/:id/join", func(c *fiber.Ctx) error {
		var req struct {
			Message string `json:"message"`
		}
		// Body is optional for public guilds.
		_ = c.BodyParser(&req)

		result, err := socialService.RequestOrJoinGuild(c.Params("id"), req.Message)
		if err != nil {
			if errors.Is(err, services.ErrNotFound) {
				return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
					"error": "guild not found",
				})
			}
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "failed to join guild",
				"cause": err.Error(),
			})
		}
		return c.JSON(result)
	})

	app.Get("/guilds/requests/pending", func(c *fiber.Ctx) error {
		return c.JSON(socialService.PendingRequestsForOwnedGuilds())
	})

	app.Post("/guilds/requests/:id/resolve", func(c *fiber.Ctx) error {
		var req struct {
			Action string `json:"action"`
		}
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "invalid JSON",
				"cause": err.Error(),
			})
		}
		if req.Action != "accept" && req.Action != "reject" {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "action must be accept or reject",
			})
		}

		request, err := socialService.ResolveGuildRequest(c.Params("id"), req.Action)
		if err != nil {
			if errors.Is(err, services.ErrNotFound) {
				return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
					"error": "guild request not found",
				})
			}
			if errors.Is(err, services.ErrRequestResolved) {
				return c.Status(fiber.StatusConflict).JSON(fiber.Map{
					"error": "guild request already resolved",
				})
			}
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "failed to resolve request",
				"cause": err.Error(),
			})
		}
		return c.JSON(request)
	})

	app.Get("/guilds/:id/messages", func(c *fiber.Ctx) error {
		return c.JSON(socialService.GuildMessages(c.Params("id")))
	})

	app.Post("/guilds/:id/messages", func(c *fiber.Ctx) error {
		var req struct {
			Message string `json:"message"`
		}
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "invalid JSON",
				"cause": err.Error(),
			})
		}
		msg, err := socialService.SendGuildMessage(c.Params("id"), req.Message)
		if err != nil {
			return sendMessageError(c, err, "guild not found")
		}
		return c.Status(fiber.StatusCreated).JSON(msg)
	})

	app.Get("/messages/:userId", func(c *fiber.Ctx) error {
		return c.JSON(socialService.Conversation(c.Params("userId")))
	})

	app.Post("/messages/:userId", func(c *fiber.Ctx) error {
		var req struct {
			Message string `json:"message"`
		}
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "invalid JSON",
				"cause": err.Error(),
			})
		}
		msg, err := socialService.SendDirectMessage(c.Params("userId"), req.Message)
		if err != nil {
			return sendMessageError(c, err, "recipient not found")
		}
		return c.Status(fiber.StatusCreated).JSON(msg)
	})
}

func sendMessageError(c *fiber.Ctx, err error, notFoundMsg string) error {
	if errors.Is(err, services.ErrEmptyMessage) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "message text must not be empty",
		})
	}
	if errors.Is(err, services.ErrNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": notFoundMsg,
		})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"error": "failed to send message",
		"cause": err.Error(),
	})
}

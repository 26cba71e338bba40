package controller

import (
	"dp-ai-be/internal/dto"
	"dp-ai-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IChatController interface {
	RegisterRoutes(r fiber.Router)
	Chat(ctx *fiber.Ctx) error
}

type chatController struct {
	service service.IChatService
}

func NewChatController(service service.IChatService) IChatController {
	return &chatController{service: service}
}

func (c *chatController) RegisterRoutes(r fiber.Router) {
	r.Post("/chat", c.Chat)
}

// Chat rejects malformed requests at the boundary; everything past validation
// is fail-open and answers 200 with a reply string.
func (c *chatController) Chat(ctx *fiber.Ctx) error {
	var req dto.ChatRequest
	if err := ctx.BodyParser(&req); err != nil {
		return invalidChatRequest(ctx)
	}
	if err := validate.Struct(&req); err != nil {
		return invalidChatRequest(ctx)
	}

	res, err := c.service.Chat(ctx.Context(), &req)
	if err != nil {
		// Only identity validation errors reach here; upstream failures are
		// already converted to the fallback reply.
		return invalidChatRequest(ctx)
	}

	return ctx.JSON(res)
}

// Chat errors carry the text under "reply" so clients reading only that field
// still show something.
func invalidChatRequest(ctx *fiber.Ctx) error {
	return ctx.Status(fiber.StatusBadRequest).JSON(dto.ChatResponse{
		Reply: "Invalid request 😕",
	})
}

package controller

import (
	"github.com/gofiber/fiber/v2"

	"pdf-chatbot-be/internal/dto"
	"pdf-chatbot-be/internal/pkg/serverutils"
	"pdf-chatbot-be/internal/service"
)

type IChatbotController interface {
	RegisterRoutes(r fiber.Router)
	Chat(ctx *fiber.Ctx) error
	Frontend(ctx *fiber.Ctx) error
}

type chatbotController struct {
	chatbotService service.IChatbotService
	frontendIndex  string
}

func NewChatbotController(chatbotService service.IChatbotService, frontendIndex string) IChatbotController {
	return &chatbotController{
		chatbotService: chatbotService,
		frontendIndex:  frontendIndex,
	}
}

func (c *chatbotController) RegisterRoutes(r fiber.Router) {
	r.Post("/chatbot", c.Chat)
	r.Get("/", c.Frontend)
}

func (c *chatbotController) Chat(ctx *fiber.Ctx) error {
	userId := ctx.Get("User-ID")
	if userId == "" {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "User-ID header is required"))
	}

	var req dto.ChatRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid request body"))
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.chatbotService.Answer(ctx.Context(), userId, req.Question)
	if err != nil {
		return err
	}

	return ctx.JSON(res)
}

func (c *chatbotController) Frontend(ctx *fiber.Ctx) error {
	return ctx.SendFile(c.frontendIndex)
}

package controller

import (
	"support-helpline-be/internal/dto"
	"support-helpline-be/internal/pkg/serverutils"
	"support-helpline-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type ISupportController interface {
	RegisterRoutes(r fiber.Router)
	SendChat(ctx *fiber.Ctx) error
	GetHistory(ctx *fiber.Ctx) error
	Health(ctx *fiber.Ctx) error
}

type supportController struct {
	service service.ISupportService
}

func NewSupportController(service service.ISupportService) ISupportController {
	return &supportController{service: service}
}

func (c *supportController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/support/v1")
	h.Post("chat", c.SendChat)
	h.Get("history/:sessionId", c.GetHistory)
	h.Get("health", c.Health)
}

// SendChat owns a fixed wire contract: the success body is the bare turn
// result and every invalid request gets the same 400 body, so neither goes
// through the standard envelope.
func (c *supportController) SendChat(ctx *fiber.Ctx) error {
	var req dto.SendSupportChatRequest
	if err := ctx.BodyParser(&req); err != nil {
		return c.invalidRequest(ctx)
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return c.invalidRequest(ctx)
	}

	res, err := c.service.HandleTurn(ctx.Context(), req)
	if err != nil {
		return err
	}

	return ctx.JSON(res)
}

func (c *supportController) invalidRequest(ctx *fiber.Ctx) error {
	return ctx.Status(fiber.StatusBadRequest).JSON(dto.SupportErrorResponse{
		Error: "sessionId and message are required",
	})
}

func (c *supportController) GetHistory(ctx *fiber.Ctx) error {
	sessionId := ctx.Params("sessionId")
	if sessionId == "" {
		return fiber.NewError(fiber.StatusBadRequest, "sessionId is required")
	}

	res, err := c.service.GetHistory(ctx.Context(), sessionId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get session history", res))
}

func (c *supportController) Health(ctx *fiber.Ctx) error {
	return ctx.JSON(serverutils.SuccessResponse("OK", fiber.Map{"status": "up"}))
}

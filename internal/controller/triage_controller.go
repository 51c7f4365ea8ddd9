// FILE: internal/controller/triage_controller.go
package controller

import (
	"errors"

	"medtriage-be/internal/dto"
	"medtriage-be/internal/pkg/serverutils"
	"medtriage-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type ITriageController interface {
	RegisterRoutes(r fiber.Router, authGuard fiber.Handler)
}

type triageController struct {
	service service.ITriageService
}

func NewTriageController(service service.ITriageService) ITriageController {
	return &triageController{service: service}
}

func (c *triageController) RegisterRoutes(r fiber.Router, authGuard fiber.Handler) {
	h := r.Group("/triage")
	h.Use(authGuard)
	h.Post("/chat", c.Chat)
	h.Get("/history", c.History)
	h.Get("/escalated", c.Escalated)
}

func (c *triageController) Chat(ctx *fiber.Ctx) error {
	userId, err := currentUserID(ctx)
	if err != nil {
		return err
	}

	var req dto.TriageChatRequest
	if err := serverutils.ValidateRequest(ctx, &req); err != nil {
		return err
	}

	res, err := c.service.Chat(ctx.Context(), userId, &req)
	if err != nil {
		if errors.Is(err, service.ErrQuotaExceeded) {
			return serverutils.ErrorResponse(ctx, fiber.StatusTooManyRequests, err.Error())
		}
		return serverutils.ErrorResponse(ctx, fiber.StatusBadRequest, err.Error())
	}
	return serverutils.SuccessResponse(ctx, fiber.StatusOK, "OK", res)
}

func (c *triageController) History(ctx *fiber.Ctx) error {
	userId, err := currentUserID(ctx)
	if err != nil {
		return err
	}

	limit := ctx.QueryInt("limit", 20)

	res, err := c.service.GetHistory(ctx.Context(), userId, limit)
	if err != nil {
		return serverutils.ErrorResponse(ctx, fiber.StatusBadRequest, err.Error())
	}
	return serverutils.SuccessResponse(ctx, fiber.StatusOK, "OK", res)
}

// Escalated lists open escalations for clinician review.
func (c *triageController) Escalated(ctx *fiber.Ctx) error {
	limit := ctx.QueryInt("limit", 50)

	res, err := c.service.GetEscalated(ctx.Context(), limit)
	if err != nil {
		return serverutils.ErrorResponse(ctx, fiber.StatusBadRequest, err.Error())
	}
	return serverutils.SuccessResponse(ctx, fiber.StatusOK, "OK", res)
}

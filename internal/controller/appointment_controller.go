// FILE: internal/controller/appointment_controller.go
package controller

import (
	"medtriage-be/internal/dto"
	"medtriage-be/internal/pkg/serverutils"
	"medtriage-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IAppointmentController interface {
	RegisterRoutes(r fiber.Router, authGuard fiber.Handler)
}

type appointmentController struct {
	service service.IAppointmentService
}

func NewAppointmentController(service service.IAppointmentService) IAppointmentController {
	return &appointmentController{service: service}
}

func (c *appointmentController) RegisterRoutes(r fiber.Router, authGuard fiber.Handler) {
	h := r.Group("/appointments")
	h.Use(authGuard)
	h.Post("/", c.Book)
	h.Get("/", c.ListMine)
	h.Delete("/:id", c.Cancel)
}

func (c *appointmentController) Book(ctx *fiber.Ctx) error {
	userId, err := currentUserID(ctx)
	if err != nil {
		return err
	}

	var req dto.BookAppointmentRequest
	if err := serverutils.ValidateRequest(ctx, &req); err != nil {
		return err
	}

	res, err := c.service.Book(ctx.Context(), userId, &req)
	if err != nil {
		return serverutils.ErrorResponse(ctx, fiber.StatusBadRequest, err.Error())
	}
	return serverutils.SuccessResponse(ctx, fiber.StatusCreated, "Appointment booked", res)
}

func (c *appointmentController) ListMine(ctx *fiber.Ctx) error {
	userId, err := currentUserID(ctx)
	if err != nil {
		return err
	}

	res, err := c.service.ListMine(ctx.Context(), userId)
	if err != nil {
		return serverutils.ErrorResponse(ctx, fiber.StatusBadRequest, err.Error())
	}
	return serverutils.SuccessResponse(ctx, fiber.StatusOK, "OK", res)
}

func (c *appointmentController) Cancel(ctx *fiber.Ctx) error {
	userId, err := currentUserID(ctx)
	if err != nil {
		return err
	}

	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return serverutils.ErrorResponse(ctx, fiber.StatusBadRequest, "Invalid appointment id")
	}

	if err := c.service.Cancel(ctx.Context(), userId, id); err != nil {
		return serverutils.ErrorResponse(ctx, fiber.StatusBadRequest, err.Error())
	}
	return serverutils.SuccessResponse(ctx, fiber.StatusOK, "Appointment cancelled", nil)
}

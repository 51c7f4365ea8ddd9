// FILE: internal/controller/patient_controller.go
package controller

import (
	"medtriage-be/internal/dto"
	"medtriage-be/internal/pkg/serverutils"
	"medtriage-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IPatientController interface {
	RegisterRoutes(r fiber.Router, authGuard fiber.Handler)
}

type patientController struct {
	service service.IPatientService
}

func NewPatientController(service service.IPatientService) IPatientController {
	return &patientController{service: service}
}

func (c *patientController) RegisterRoutes(r fiber.Router, authGuard fiber.Handler) {
	h := r.Group("/patients")
	h.Use(authGuard)
	h.Post("/me", c.CreateProfile)
	h.Get("/me", c.GetProfile)
	h.Put("/me", c.UpdateProfile)
	h.Post("/me/medical-events", c.AddMedicalEvent)
	h.Get("/me/medical-events", c.GetMedicalEvents)
}

func (c *patientController) CreateProfile(ctx *fiber.Ctx) error {
	userId, err := currentUserID(ctx)
	if err != nil {
		return err
	}

	var req dto.CreatePatientRequest
	if err := serverutils.ValidateRequest(ctx, &req); err != nil {
		return err
	}

	res, err := c.service.CreateProfile(ctx.Context(), userId, &req)
	if err != nil {
		return serverutils.ErrorResponse(ctx, fiber.StatusBadRequest, err.Error())
	}
	return serverutils.SuccessResponse(ctx, fiber.StatusCreated, "Patient profile created", res)
}

func (c *patientController) GetProfile(ctx *fiber.Ctx) error {
	userId, err := currentUserID(ctx)
	if err != nil {
		return err
	}

	res, err := c.service.GetProfile(ctx.Context(), userId)
	if err != nil {
		return serverutils.ErrorResponse(ctx, fiber.StatusNotFound, err.Error())
	}
	return serverutils.SuccessResponse(ctx, fiber.StatusOK, "OK", res)
}

func (c *patientController) UpdateProfile(ctx *fiber.Ctx) error {
	userId, err := currentUserID(ctx)
	if err != nil {
		return err
	}

	var req dto.UpdatePatientRequest
	if err := serverutils.ValidateRequest(ctx, &req); err != nil {
		return err
	}

	res, err := c.service.UpdateProfile(ctx.Context(), userId, &req)
	if err != nil {
		return serverutils.ErrorResponse(ctx, fiber.StatusBadRequest, err.Error())
	}
	return serverutils.SuccessResponse(ctx, fiber.StatusOK, "Patient profile updated", res)
}

func (c *patientController) AddMedicalEvent(ctx *fiber.Ctx) error {
	userId, err := currentUserID(ctx)
	if err != nil {
		return err
	}

	var req dto.CreateMedicalEventRequest
	if err := serverutils.ValidateRequest(ctx, &req); err != nil {
		return err
	}

	res, err := c.service.AddMedicalEvent(ctx.Context(), userId, &req)
	if err != nil {
		return serverutils.ErrorResponse(ctx, fiber.StatusBadRequest, err.Error())
	}
	return serverutils.SuccessResponse(ctx, fiber.StatusCreated, "Medical event recorded", res)
}

func (c *patientController) GetMedicalEvents(ctx *fiber.Ctx) error {
	userId, err := currentUserID(ctx)
	if err != nil {
		return err
	}

	res, err := c.service.GetMedicalEvents(ctx.Context(), userId)
	if err != nil {
		return serverutils.ErrorResponse(ctx, fiber.StatusBadRequest, err.Error())
	}
	return serverutils.SuccessResponse(ctx, fiber.StatusOK, "OK", res)
}

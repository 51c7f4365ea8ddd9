// FILE: internal/controller/hospital_controller.go
package controller

import (
	"medtriage-be/internal/dto"
	"medtriage-be/internal/pkg/serverutils"
	"medtriage-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IHospitalController interface {
	RegisterRoutes(r fiber.Router)
}

type hospitalController struct {
	service service.IHospitalService
}

func NewHospitalController(service service.IHospitalService) IHospitalController {
	return &hospitalController{service: service}
}

func (c *hospitalController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/hospitals")
	h.Get("/", c.List)
	h.Get("/:id", c.Get)
	h.Get("/:id/doctors", c.ListDoctors)
}

func (c *hospitalController) List(ctx *fiber.Ctx) error {
	var query dto.HospitalQuery
	if err := ctx.QueryParser(&query); err != nil {
		return serverutils.ErrorResponse(ctx, fiber.StatusBadRequest, "Invalid query parameters")
	}

	res, err := c.service.ListHospitals(ctx.Context(), &query)
	if err != nil {
		return serverutils.ErrorResponse(ctx, fiber.StatusInternalServerError, err.Error())
	}
	return serverutils.SuccessResponse(ctx, fiber.StatusOK, "OK", res)
}

func (c *hospitalController) Get(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return serverutils.ErrorResponse(ctx, fiber.StatusBadRequest, "Invalid hospital id")
	}

	res, err := c.service.GetHospital(ctx.Context(), id)
	if err != nil {
		return serverutils.ErrorResponse(ctx, fiber.StatusNotFound, err.Error())
	}
	return serverutils.SuccessResponse(ctx, fiber.StatusOK, "OK", res)
}

func (c *hospitalController) ListDoctors(ctx *fiber.Ctx) error {
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return serverutils.ErrorResponse(ctx, fiber.StatusBadRequest, "Invalid hospital id")
	}

	specialty := ctx.Query("specialty")

	res, err := c.service.ListDoctors(ctx.Context(), id, specialty)
	if err != nil {
		return serverutils.ErrorResponse(ctx, fiber.StatusInternalServerError, err.Error())
	}
	return serverutils.SuccessResponse(ctx, fiber.StatusOK, "OK", res)
}

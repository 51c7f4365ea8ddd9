// FILE: internal/controller/notification_controller.go
package controller

import (
	"medtriage-be/internal/dto"
	"medtriage-be/internal/pkg/serverutils"
	"medtriage-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type INotificationController interface {
	RegisterRoutes(r fiber.Router, authGuard fiber.Handler)
}

type notificationController struct {
	service service.INotificationService
}

func NewNotificationController(service service.INotificationService) INotificationController {
	return &notificationController{service: service}
}

func (c *notificationController) RegisterRoutes(r fiber.Router, authGuard fiber.Handler) {
	h := r.Group("/notifications")
	h.Use(authGuard)
	h.Get("/", c.List)
	h.Get("/unread-count", c.UnreadCount)
	h.Patch("/read-all", c.MarkAllRead)
	h.Patch("/:id/read", c.MarkRead)
}

func (c *notificationController) List(ctx *fiber.Ctx) error {
	userId, err := currentUserID(ctx)
	if err != nil {
		return err
	}

	unreadOnly := ctx.QueryBool("unread", false)

	res, err := c.service.ListForUser(ctx.Context(), userId, unreadOnly)
	if err != nil {
		return serverutils.ErrorResponse(ctx, fiber.StatusInternalServerError, err.Error())
	}
	return serverutils.SuccessResponse(ctx, fiber.StatusOK, "OK", res)
}

func (c *notificationController) UnreadCount(ctx *fiber.Ctx) error {
	userId, err := currentUserID(ctx)
	if err != nil {
		return err
	}

	count, err := c.service.CountUnread(ctx.Context(), userId)
	if err != nil {
		return serverutils.ErrorResponse(ctx, fiber.StatusInternalServerError, err.Error())
	}
	return serverutils.SuccessResponse(ctx, fiber.StatusOK, "OK", dto.UnreadCountResponse{Unread: count})
}

func (c *notificationController) MarkRead(ctx *fiber.Ctx) error {
	userId, err := currentUserID(ctx)
	if err != nil {
		return err
	}

	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return serverutils.ErrorResponse(ctx, fiber.StatusBadRequest, "Invalid notification id")
	}

	if err := c.service.MarkRead(ctx.Context(), userId, id); err != nil {
		return serverutils.ErrorResponse(ctx, fiber.StatusNotFound, err.Error())
	}
	return serverutils.SuccessResponse(ctx, fiber.StatusOK, "Notification marked as read", nil)
}

func (c *notificationController) MarkAllRead(ctx *fiber.Ctx) error {
	userId, err := currentUserID(ctx)
	if err != nil {
		return err
	}

	if err := c.service.MarkAllRead(ctx.Context(), userId); err != nil {
		return serverutils.ErrorResponse(ctx, fiber.StatusInternalServerError, err.Error())
	}
	return serverutils.SuccessResponse(ctx, fiber.StatusOK, "All notifications marked as read", nil)
}

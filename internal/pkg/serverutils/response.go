// FILE: internal/pkg/serverutils/response.go
package serverutils

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

// AppError is an error carrying the HTTP status it should be rendered with.
// Services return it when the failure maps to a specific client response.
type AppError struct {
	Code    int
	Message string
}

func (e *AppError) Error() string {
	return e.Message
}

func NewAppError(code int, message string) *AppError {
	return &AppError{Code: code, Message: message}
}

// ValidateRequest parses the body into req and runs struct validation,
// returning a client-readable message on the first failure.
func ValidateRequest(ctx *fiber.Ctx, req interface{}) error {
	if err := ctx.BodyParser(req); err != nil {
		return NewAppError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			fe := verrs[0]
			return NewAppError(fiber.StatusBadRequest,
				fmt.Sprintf("Field '%s' failed on '%s' rule", strings.ToLower(fe.Field()), fe.Tag()))
		}
		return NewAppError(fiber.StatusBadRequest, "Validation failed")
	}
	return nil
}

func SuccessResponse(ctx *fiber.Ctx, code int, message string, data interface{}) error {
	return ctx.Status(code).JSON(fiber.Map{
		"success": true,
		"code":    code,
		"message": message,
		"data":    data,
	})
}

func ErrorResponse(ctx *fiber.Ctx, code int, message string) error {
	return ctx.Status(code).JSON(fiber.Map{
		"success": false,
		"code":    code,
		"message": message,
	})
}

// ErrorHandlerMiddleware converts errors escaping a handler into the
// standard response envelope. AppError keeps its status; anything else
// becomes a 500 without leaking internals.
func ErrorHandlerMiddleware() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		err := ctx.Next()
		if err == nil {
			return nil
		}

		var appErr *AppError
		if errors.As(err, &appErr) {
			return ErrorResponse(ctx, appErr.Code, appErr.Message)
		}

		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			return ErrorResponse(ctx, fiberErr.Code, fiberErr.Message)
		}

		return ErrorResponse(ctx, fiber.StatusInternalServerError, "Internal server error")
	}
}

package helpers

import (
	"github.com/Mohamed-Saad-02/wild-oasis-backend/internal/pkg/errors"
	"github.com/gofiber/fiber/v2"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
)

type response struct {
	Data    interface{} `json:"data"`
	Message string      `json:"message"`
}

func RespSuccess(ctx *fiber.Ctx, log *otelzap.Logger, data interface{}, message string) error {
	return ctx.Status(fiber.StatusOK).JSON(response{
		Data:    data,
		Message: message,
	})
}

func RespError(ctx *fiber.Ctx, log *otelzap.Logger, err error) error {
	code := errors.HTTPCode(err)
	message := err.Error()
	if code == fiber.StatusInternalServerError {
		// internal detail stays on our side of the boundary
		log.Ctx(ctx.UserContext()).Error(message)
		message = "internal server error"
	}
	return ctx.Status(code).JSON(response{
		Data:    nil,
		Message: message,
	})
}

package serverutils

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"pdf-chatbot-be/internal/apperror"
	"pdf-chatbot-be/internal/constant"
)

// ErrorHandlerMiddleware maps the typed error taxonomy onto HTTP statuses.
// Controllers simply return errors from services; everything unclassified
// falls through to a 500 with the underlying message as detail.
func ErrorHandlerMiddleware() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		err := ctx.Next()
		if err == nil {
			return nil
		}

		var validationErr *apperror.ValidationError
		var extractionErr *apperror.ExtractionError

		switch {
		case errors.Is(err, apperror.ErrNoSession):
			return ctx.Status(fiber.StatusBadRequest).JSON(ErrorResponse(fiber.StatusBadRequest, constant.NoSessionMessage))
		case errors.As(err, &validationErr):
			return ctx.Status(fiber.StatusBadRequest).JSON(ErrorResponse(fiber.StatusBadRequest, validationErr.Message))
		case errors.As(err, &extractionErr):
			return ctx.Status(fiber.StatusBadRequest).JSON(ErrorResponse(fiber.StatusBadRequest, extractionErr.Error()))
		}

		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			return ctx.Status(fiberErr.Code).JSON(ErrorResponse(fiberErr.Code, fiberErr.Message))
		}

		// EmbeddingError, GenerationError and anything else downstream
		return ctx.Status(fiber.StatusInternalServerError).JSON(ErrorResponse(fiber.StatusInternalServerError, err.Error()))
	}
}

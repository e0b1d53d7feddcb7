package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"blogapi/internal/model"
)

// dataResponse wraps a created entity.
type dataResponse[T any] struct {
	Data T `json:"data"`
}

// bind decodes the JSON body into in and checks its required fields.
// It writes the error response itself and reports whether the handler may continue.
func bind(c *fiber.Ctx, in any) (bool, error) {
	if err := c.BodyParser(in); err != nil {
		return false, writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "malformed request body")
	}
	if err := model.Validate(in); err != nil {
		if errors.Is(err, model.ErrInvalidID) {
			return false, writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}
		var verr *model.ValidationError
		if errors.As(err, &verr) {
			return false, writeError(c, fiber.StatusUnprocessableEntity, "VALIDATION_ERROR", verr.Error())
		}
		return false, internalError(c, err)
	}
	return true, nil
}

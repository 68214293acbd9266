package response

import (
	goerrors "errors"

	"github.com/gofiber/fiber/v2"

	"remessa/internal/errors"
)

func Success(c *fiber.Ctx, message string, data interface{}) error {
	return c.JSON(fiber.Map{
		"message": message,
		"data":    data,
	})
}

func Created(c *fiber.Ctx, message string, data interface{}) error {
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": message,
		"data":    data,
	})
}

func Error(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{
		"error": message,
	})
}

func BadRequest(c *fiber.Ctx, message string) error {
	return Error(c, fiber.StatusBadRequest, message)
}

func NotFound(c *fiber.Ctx, message string) error {
	return Error(c, fiber.StatusNotFound, message)
}

func ServerError(c *fiber.Ctx, message string) error {
	return Error(c, fiber.StatusInternalServerError, message)
}

func ValidationError(c *fiber.Ctx, message string) error {
	return Error(c, fiber.StatusBadRequest, message)
}

// DomainErr maps a domain error to its HTTP representation, keeping the
// machine-readable code in the body. Unknown errors become a 500 with a
// generic message so internals never leak.
func DomainErr(c *fiber.Ctx, err error) error {
	var derr *errors.DomainError
	if !goerrors.As(err, &derr) {
		return ServerError(c, "internal server error")
	}

	status := fiber.StatusBadRequest
	switch derr.Code {
	case errors.ErrTransferNotFound.Code:
		status = fiber.StatusNotFound
	case errors.ErrNoApplicableTier.Code:
		// A tier gap is misconfiguration, not user input; it gets its
		// own status so it is distinguishable from plain 400s.
		status = fiber.StatusUnprocessableEntity
	}

	return c.Status(status).JSON(fiber.Map{
		"error": derr.Message,
		"code":  derr.Code,
	})
}

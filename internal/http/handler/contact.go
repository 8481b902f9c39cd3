package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"gnapi/internal/service"
)

// SubmitContact godoc
// @Summary      Submit the contact form
// @Description  Stores a lead. Throttled per client.
// @Tags         contact
// @Accept       json
// @Produce      json
// @Param        lead  body      service.LeadInput  true  "Contact form"
// @Success      201   {object}  model.Lead
// @Failure      400   {object}  errorPayload
// @Failure      429   {object}  errorPayload
// @Failure      500   {object}  errorPayload
// @Router       /api/contact [post]
func SubmitContact(svc service.LeadService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var in service.LeadInput
		if err := c.BodyParser(&in); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "request body must be a JSON object")
		}

		lead, err := svc.Submit(c.UserContext(), in)
		if err != nil {
			var verr *service.ValidationError
			if errors.As(err, &verr) {
				return writeFieldError(c, fiber.StatusBadRequest, "VALIDATION_FAILED", "one or more fields are invalid", verr.Fields)
			}
			return err
		}
		return c.Status(fiber.StatusCreated).JSON(lead)
	}
}

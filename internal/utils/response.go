package utils

import "github.com/gofiber/fiber/v2"

// SendJSON writes the payload with the given status code. Payloads are the
// records themselves, not an envelope; clients depend on byte-identical
// bodies across repeated reads.
func SendJSON(c *fiber.Ctx, status int, payload interface{}) error {
	if status == 0 {
		status = fiber.StatusOK
	}
	return c.Status(status).JSON(payload)
}

// SendStatus writes a bare status code with an empty body. Error responses
// never carry detail.
func SendStatus(c *fiber.Ctx, status int) error {
	return c.Status(status).Send(nil)
}

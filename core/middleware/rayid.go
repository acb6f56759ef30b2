package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// RayIDHeader is the response header carrying the request's ray id.
const RayIDHeader = "X-Ray-Id"

// RayID assigns every request a unique id, stored in the context locals
// and echoed in the response headers so client reports can be matched to
// server logs.
func RayID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Get(RayIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Locals("ray_id", id)
		c.Set(RayIDHeader, id)
		return c.Next()
	}
}

package middleware

import "github.com/gofiber/fiber/v2"

// AuthHeader is the request header carrying the API key.
const AuthHeader = "X-Api-Key"

// Auth validates the API key on every request. An empty configured key
// disables the check, which is the intended mode for local use.
func Auth(apiKey string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if apiKey == "" {
			return c.Next()
		}
		if c.Get(AuthHeader) != apiKey {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "invalid api key",
			})
		}
		return c.Next()
	}
}

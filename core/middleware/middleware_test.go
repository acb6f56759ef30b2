package middleware

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRayID(t *testing.T) {
	app := fiber.New()
	app.Use(RayID())
	app.Get("/", func(c *fiber.Ctx) error {
		id, _ := c.Locals("ray_id").(string)
		return c.SendString(id)
	})

	t.Run("Generated", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
		require.NoError(t, err)
		assert.NotEmpty(t, resp.Header.Get(RayIDHeader))
	})

	t.Run("Propagated", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/", nil)
		req.Header.Set(RayIDHeader, "caller-supplied")
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, "caller-supplied", resp.Header.Get(RayIDHeader))
	})
}

func TestAuth(t *testing.T) {
	newApp := func(key string) *fiber.App {
		app := fiber.New()
		app.Use(Auth(key))
		app.Get("/", func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusOK) })
		return app
	}

	t.Run("OpenWithoutKey", func(t *testing.T) {
		resp, err := newApp("").Test(httptest.NewRequest("GET", "/", nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	})

	t.Run("RejectsWrongKey", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/", nil)
		req.Header.Set(AuthHeader, "wrong")
		resp, err := newApp("secret").Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("AcceptsCorrectKey", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/", nil)
		req.Header.Set(AuthHeader, "secret")
		resp, err := newApp("secret").Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	})
}

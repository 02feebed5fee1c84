package rayid

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRayID(t *testing.T) {
	var seen string

	app := fiber.New()
	app.Use(New())
	app.Get("/", func(c *fiber.Ctx) error {
		seen, _ = c.Locals("ray_id").(string)
		return c.SendString("ok")
	})

	t.Run("generates an id", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
		require.NoError(t, err)

		rid := resp.Header.Get(HeaderName)
		assert.NotEmpty(t, rid)
		assert.Equal(t, rid, seen, "handler and response header must carry the same id")
	})

	t.Run("preserves an upstream id", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/", nil)
		req.Header.Set(HeaderName, "upstream-ray")

		resp, err := app.Test(req)
		require.NoError(t, err)

		assert.Equal(t, "upstream-ray", resp.Header.Get(HeaderName))
		assert.Equal(t, "upstream-ray", seen)
	})
}

package inventory

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Omega-Networks/Pulse-sub003/feature/inventory/models"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func setupApp(t *testing.T, name string) (*fiber.App, *Service) {
	svc, _ := setupService(t, name, fixtureHandler(t))

	app := fiber.New()
	NewHandler(svc, zap.NewNop()).RegisterRoutes(app)

	return app, svc
}

func TestHandleStatus(t *testing.T) {
	app, _ := setupApp(t, "handler_status")

	resp, err := app.Test(httptest.NewRequest("GET", "/inventory/status", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var status map[string]bool
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&status))

	assert.Len(t, status, 9)
	assert.False(t, status["device"], "no pass is in flight")
}

func TestHandleSyncKind(t *testing.T) {
	app, _ := setupApp(t, "handler_synckind")

	t.Run("known kind", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest("POST", "/inventory/sync/device-role", nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)

		var outcome struct {
			Kind    string `json:"kind"`
			Created int    `json:"created"`
		}
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&outcome))
		assert.Equal(t, "device-role", outcome.Kind)
		assert.Equal(t, 1, outcome.Created)
	})

	t.Run("unknown kind", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest("POST", "/inventory/sync/nonsense", nil))
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	})
}

func TestHandleListDevices(t *testing.T) {
	app, svc := setupApp(t, "handler_devices")

	syncInOrder(t, svc)

	resp, err := app.Test(httptest.NewRequest("GET", "/inventory/devices", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var devices []models.Device
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&devices))
	require.Len(t, devices, 1)
	assert.Equal(t, "akl-sw-01", devices[0].Name)
}

func TestHandleUpdateDevice_InvalidRequests(t *testing.T) {
	app, _ := setupApp(t, "handler_update")

	t.Run("bad id", func(t *testing.T) {
		req := httptest.NewRequest("PATCH", "/inventory/devices/abc", strings.NewReader(`{}`))
		req.Header.Set("Content-Type", "application/json")

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	})

	t.Run("bad body", func(t *testing.T) {
		req := httptest.NewRequest("PATCH", "/inventory/devices/80", strings.NewReader(`not-json`))
		req.Header.Set("Content-Type", "application/json")

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	})
}

package netbox

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Omega-Networks/Pulse-sub003/core/reconcile"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func testClient(t *testing.T, handler http.Handler) (*Client, *httptest.Server) {
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client := NewClient(Config{
		BaseURL: srv.URL,
		Token:   "test-token",
	}, zap.NewNop())

	return client, srv
}

func TestListAll_FollowsPagination(t *testing.T) {
	var gotAuth []string

	mux := http.NewServeMux()
	mux.HandleFunc("/api/tenancy/tenants/", func(w http.ResponseWriter, r *http.Request) {
		gotAuth = append(gotAuth, r.Header.Get("Authorization"))

		page := r.URL.Query().Get("page")
		w.Header().Set("Content-Type", "application/json")

		switch page {
		case "":
			next := "http://" + r.Host + "/api/tenancy/tenants/?page=2"
			fmt.Fprintf(w, `{"count":6,"next":%q,"results":[
				{"id":1,"name":"acme","slug":"acme"},
				{"id":2,"name":"globex","slug":"globex"}]}`, next)
		case "2":
			next := "http://" + r.Host + "/api/tenancy/tenants/?page=3"
			fmt.Fprintf(w, `{"count":6,"next":%q,"results":[
				{"id":3,"name":"initech","slug":"initech"},
				{"id":4,"name":"umbrella","slug":"umbrella"}]}`, next)
		case "3":
			fmt.Fprint(w, `{"count":6,"next":null,"results":[
				{"id":5,"name":"stark","slug":"stark"},
				{"id":6,"name":"wayne","slug":"wayne"}]}`)
		default:
			t.Errorf("unexpected page %q", page)
			http.NotFound(w, r)
		}
	})

	client, _ := testClient(t, mux)

	records, err := client.Tenants(context.Background())
	require.NoError(t, err)

	require.Len(t, records, 6, "pages must concatenate in order")
	for i, rec := range records {
		assert.Equal(t, int64(i+1), rec.ExternalID())
	}

	require.Len(t, gotAuth, 3)
	for _, auth := range gotAuth {
		assert.Equal(t, "Token test-token", auth, "auth header must carry over to follow-up pages")
	}
}

func TestListAll_NotConfigured(t *testing.T) {
	client := NewClient(Config{}, zap.NewNop())

	_, err := client.Sites(context.Background())
	assert.ErrorIs(t, err, reconcile.ErrNotConfigured)
}

func TestListAll_RequestError(t *testing.T) {
	client, _ := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		fmt.Fprint(w, `{"detail":"Invalid token."}`)
	}))

	_, err := client.Devices(context.Background())
	require.Error(t, err)

	var reqErr *reconcile.RequestError
	require.ErrorAs(t, err, &reqErr)
	assert.Equal(t, http.StatusForbidden, reqErr.Status)
	assert.Equal(t, "Invalid token.", reqErr.Message)
}

func TestListAll_DecodeErrorFailsWholeFetch(t *testing.T) {
	client, _ := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"results": not-json`)
	}))

	_, err := client.Regions(context.Background())
	require.Error(t, err)

	var decodeErr *reconcile.DecodeError
	assert.ErrorAs(t, err, &decodeErr)
}

func TestDevices_AppliesRoleExclusions(t *testing.T) {
	var gotQuery []string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()["role__n"]
		fmt.Fprint(w, `{"count":0,"next":null,"results":[]}`)
	}))
	t.Cleanup(srv.Close)

	client := NewClient(Config{
		BaseURL:            srv.URL,
		ExcludeDeviceRoles: "patch-panel, cable-tray",
	}, zap.NewNop())

	_, err := client.Devices(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"patch-panel", "cable-tray"}, gotQuery)
}

func TestUpdateDevice_BareObjectResponse(t *testing.T) {
	client, _ := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPatch, r.Method)
		assert.Equal(t, "/api/dcim/devices/7/", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var patch map[string]any
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&patch))
		assert.Equal(t, "sw-07", patch["name"])

		fmt.Fprint(w, `{"id":7,"name":"sw-07","status":{"value":"active","label":"Active"}}`)
	}))

	rec, err := client.UpdateDevice(context.Background(), 7, map[string]any{"name": "sw-07"})
	require.NoError(t, err)

	device := rec.(*DeviceRecord)
	assert.Equal(t, int64(7), device.ID)
	assert.Equal(t, "sw-07", device.Name)
}

func TestUpdateDevice_WrappedListResponse(t *testing.T) {
	client, _ := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Some deployments wrap write responses in a one-element list.
		fmt.Fprint(w, `{"results":[{"id":7,"name":"sw-07"}]}`)
	}))

	rec, err := client.UpdateDevice(context.Background(), 7, map[string]any{"name": "sw-07"})
	require.NoError(t, err)

	device := rec.(*DeviceRecord)
	assert.Equal(t, int64(7), device.ID)
	assert.Equal(t, "sw-07", device.Name)
}

func TestCreateDevice(t *testing.T) {
	client, _ := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/dcim/devices/", r.URL.Path)
		w.WriteHeader(http.StatusCreated)
		fmt.Fprint(w, `{"id":99,"name":"new-device"}`)
	}))

	rec, err := client.CreateDevice(context.Background(), map[string]any{"name": "new-device"})
	require.NoError(t, err)
	assert.Equal(t, int64(99), rec.ExternalID())
}

func TestDeviceRecord_NestedBriefs(t *testing.T) {
	raw := `{
		"id": 12,
		"name": "core-sw-01",
		"status": {"value": "active", "label": "Active"},
		"primary_ip4": {"address": "10.0.0.1/24"},
		"site": {"id": 3},
		"rack": null,
		"custom_fields": {"monitoring_host_id": 10084},
		"last_updated": "2025-06-01T12:00:00Z"
	}`

	var rec DeviceRecord
	require.NoError(t, json.Unmarshal([]byte(raw), &rec))

	assert.Equal(t, "10.0.0.1/24", rec.PrimaryIP())
	assert.Equal(t, int64(3), rec.Site.FK())
	assert.Equal(t, int64(0), rec.Rack.FK(), "null brief means no relation")
	assert.Equal(t, int64(10084), rec.CustomFields.MonitoringHostID)
}

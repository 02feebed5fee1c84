package netbox

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/Omega-Networks/Pulse-sub003/core/reconcile"

	"go.uber.org/zap"
)

// Client fetches remote resource collections from the asset-management API.
// List endpoints are cursor-paginated: each page carries `results` plus a
// `next` URL, followed until exhausted. Write endpoints return either a bare
// object or a one-element wrapped list; both are normalized to one record.
type Client struct {
	baseURL string
	token   string
	http    *http.Client
	logger  *zap.Logger

	deviceQuery url.Values
}

// NewClient creates a client for the configured endpoint. An empty base URL
// means the service is not configured and fetches fail fast.
func NewClient(cfg Config, logger *zap.Logger) *Client {
	timeout := cfg.TimeoutSeconds
	if timeout <= 0 {
		timeout = 30
	}

	deviceQuery := url.Values{}
	for _, slug := range strings.Split(cfg.ExcludeDeviceRoles, ",") {
		if slug = strings.TrimSpace(slug); slug != "" {
			deviceQuery.Add("role__n", slug)
		}
	}

	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		token:   cfg.Token,
		http: &http.Client{
			Timeout: time.Duration(timeout) * time.Second,
		},
		logger:      logger,
		deviceQuery: deviceQuery,
	}
}

// Configured reports whether a base URL has been set.
func (c *Client) Configured() bool { return c.baseURL != "" }

// do issues one request with the auth and accept headers attached. The same
// headers are re-attached on every pagination follow-up.
func (c *Client) do(ctx context.Context, method, rawURL string, body io.Reader) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, method, rawURL, body)
	if err != nil {
		return nil, err
	}

	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Token "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		defer resp.Body.Close()
		return nil, &reconcile.RequestError{
			Status:  resp.StatusCode,
			Message: readErrorMessage(resp.Body),
		}
	}

	return resp, nil
}

// readErrorMessage extracts the server-supplied message from an error body.
func readErrorMessage(body io.Reader) string {
	raw, err := io.ReadAll(io.LimitReader(body, 4096))
	if err != nil {
		return ""
	}

	var detail struct {
		Detail string `json:"detail"`
	}
	if json.Unmarshal(raw, &detail) == nil && detail.Detail != "" {
		return detail.Detail
	}

	return strings.TrimSpace(string(raw))
}

// page is the wrapper shape of every list endpoint response.
type page[T reconcile.Record] struct {
	Count   int     `json:"count"`
	Next    *string `json:"next"`
	Results []T     `json:"results"`
}

// listAll fetches every page of one collection endpoint and concatenates the
// results in page order. A decode failure on any page fails the whole fetch.
func listAll[T reconcile.Record](ctx context.Context, c *Client, path string, query url.Values) ([]reconcile.Record, error) {
	if !c.Configured() {
		return nil, reconcile.ErrNotConfigured
	}

	next := c.baseURL + path
	if len(query) > 0 {
		next += "?" + query.Encode()
	}

	var records []reconcile.Record
	for next != "" {
		resp, err := c.do(ctx, http.MethodGet, next, nil)
		if err != nil {
			return nil, err
		}

		var p page[T]
		err = json.NewDecoder(resp.Body).Decode(&p)
		resp.Body.Close()
		if err != nil {
			return nil, &reconcile.DecodeError{Err: err}
		}

		for _, rec := range p.Results {
			records = append(records, rec)
		}

		if p.Next == nil {
			break
		}
		next = *p.Next
	}

	c.logger.Debug("Remote collection fetched",
		zap.String("path", path), zap.Int("records", len(records)))

	return records, nil
}

// writeOne issues a single-record write and normalizes the response: write
// endpoints return either a bare object or a `results`-wrapped one-element
// list, depending on the deployment.
func writeOne[T reconcile.Record](ctx context.Context, c *Client, method, path string, payload any) (reconcile.Record, error) {
	if !c.Configured() {
		return nil, reconcile.ErrNotConfigured
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	resp, err := c.do(ctx, method, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	var wrapped struct {
		Results []json.RawMessage `json:"results"`
	}
	if json.Unmarshal(raw, &wrapped) == nil && len(wrapped.Results) > 0 {
		raw = wrapped.Results[0]
	}

	var rec T
	if err := json.Unmarshal(raw, &rec); err != nil {
		return nil, &reconcile.DecodeError{Err: err}
	}

	return rec, nil
}

// TenantGroups fetches the full tenant group collection.
func (c *Client) TenantGroups(ctx context.Context) ([]reconcile.Record, error) {
	return listAll[*TenantGroupRecord](ctx, c, "/api/tenancy/tenant-groups/", nil)
}

// Tenants fetches the full tenant collection.
func (c *Client) Tenants(ctx context.Context) ([]reconcile.Record, error) {
	return listAll[*TenantRecord](ctx, c, "/api/tenancy/tenants/", nil)
}

// Regions fetches the full region collection.
func (c *Client) Regions(ctx context.Context) ([]reconcile.Record, error) {
	return listAll[*RegionRecord](ctx, c, "/api/dcim/regions/", nil)
}

// SiteGroups fetches the full site group collection.
func (c *Client) SiteGroups(ctx context.Context) ([]reconcile.Record, error) {
	return listAll[*SiteGroupRecord](ctx, c, "/api/dcim/site-groups/", nil)
}

// Sites fetches the full site collection.
func (c *Client) Sites(ctx context.Context) ([]reconcile.Record, error) {
	return listAll[*SiteRecord](ctx, c, "/api/dcim/sites/", nil)
}

// Racks fetches the full rack collection.
func (c *Client) Racks(ctx context.Context) ([]reconcile.Record, error) {
	return listAll[*RackRecord](ctx, c, "/api/dcim/racks/", nil)
}

// DeviceRoles fetches the full device role collection.
func (c *Client) DeviceRoles(ctx context.Context) ([]reconcile.Record, error) {
	return listAll[*DeviceRoleRecord](ctx, c, "/api/dcim/device-roles/", nil)
}

// DeviceTypes fetches the full device type collection.
func (c *Client) DeviceTypes(ctx context.Context) ([]reconcile.Record, error) {
	return listAll[*DeviceTypeRecord](ctx, c, "/api/dcim/device-types/", nil)
}

// Devices fetches the full device collection, honoring the configured role
// exclusions.
func (c *Client) Devices(ctx context.Context) ([]reconcile.Record, error) {
	return listAll[*DeviceRecord](ctx, c, "/api/dcim/devices/", c.deviceQuery)
}

// UpdateDevice pushes a partial update for one device and returns the
// normalized response record, ready to be reconciled back without pruning.
func (c *Client) UpdateDevice(ctx context.Context, id int64, patch map[string]any) (reconcile.Record, error) {
	path := fmt.Sprintf("/api/dcim/devices/%d/", id)
	return writeOne[*DeviceRecord](ctx, c, http.MethodPatch, path, patch)
}

// CreateDevice creates one device remotely and returns the normalized
// response record.
func (c *Client) CreateDevice(ctx context.Context, fields map[string]any) (reconcile.Record, error) {
	return writeOne[*DeviceRecord](ctx, c, http.MethodPost, "/api/dcim/devices/", fields)
}

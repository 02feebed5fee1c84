package zabbix

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/Omega-Networks/Pulse-sub003/core/reconcile"

	"go.uber.org/zap"
)

const rpcPath = "/api_jsonrpc.php"

// Client speaks the monitoring service's JSON-RPC 2.0 protocol. A session
// token obtained via user.login is attached as a bearer credential to every
// request except the login itself.
type Client struct {
	endpoint string
	username string
	password string
	http     *http.Client
	logger   *zap.Logger

	mu    sync.Mutex
	token string
}

// NewClient creates a client for the configured endpoint.
func NewClient(cfg Config, logger *zap.Logger) *Client {
	timeout := cfg.TimeoutSeconds
	if timeout <= 0 {
		timeout = 30
	}

	endpoint := ""
	if cfg.BaseURL != "" {
		endpoint = strings.TrimRight(cfg.BaseURL, "/") + rpcPath
	}

	return &Client{
		endpoint: endpoint,
		username: cfg.Username,
		password: cfg.Password,
		http: &http.Client{
			Timeout: time.Duration(timeout) * time.Second,
		},
		logger: logger,
	}
}

// Configured reports whether a base URL has been set.
func (c *Client) Configured() bool { return c.endpoint != "" }

type rpcRequest struct {
	JSONRPC string `json:"jsonrpc"`
	Method  string `json:"method"`
	Params  any    `json:"params"`
	ID      int    `json:"id"`
}

type rpcResponse struct {
	JSONRPC string              `json:"jsonrpc"`
	Result  json.RawMessage     `json:"result"`
	Error   *reconcile.RPCError `json:"error"`
}

// Call issues one JSON-RPC request and unmarshals the result envelope field
// into result. A response carrying an error object is returned as an
// *reconcile.RPCError.
func (c *Client) Call(ctx context.Context, method string, params, result any) error {
	if !c.Configured() {
		return reconcile.ErrNotConfigured
	}

	if method != "user.login" {
		if err := c.ensureSession(ctx); err != nil {
			return err
		}
	}

	body, err := json.Marshal(rpcRequest{
		JSONRPC: "2.0",
		Method:  method,
		Params:  params,
		ID:      1,
	})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if method != "user.login" {
		c.mu.Lock()
		req.Header.Set("Authorization", "Bearer "+c.token)
		c.mu.Unlock()
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &reconcile.RequestError{Status: resp.StatusCode}
	}

	var envelope rpcResponse
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return &reconcile.DecodeError{Err: err}
	}
	if envelope.Error != nil {
		return envelope.Error
	}

	if result != nil {
		if err := json.Unmarshal(envelope.Result, result); err != nil {
			return &reconcile.DecodeError{Err: err}
		}
	}

	return nil
}

// ensureSession logs in once and caches the session token.
func (c *Client) ensureSession(ctx context.Context) error {
	c.mu.Lock()
	token := c.token
	c.mu.Unlock()
	if token != "" {
		return nil
	}
	return c.Login(ctx)
}

// Login authenticates against the monitoring service and stores the session
// token for subsequent calls. Username and password must be configured.
func (c *Client) Login(ctx context.Context) error {
	if c.username == "" || c.password == "" {
		return reconcile.ErrNotConfigured
	}

	var token string
	err := c.Call(ctx, "user.login", map[string]string{
		"username": c.username,
		"password": c.password,
	}, &token)
	if err != nil {
		return err
	}

	c.mu.Lock()
	c.token = token
	c.mu.Unlock()

	c.logger.Debug("Monitoring session established")

	return nil
}

// Problems fetches the complete active problem collection.
func (c *Client) Problems(ctx context.Context) ([]reconcile.Record, error) {
	var problems []*ProblemRecord
	err := c.Call(ctx, "problem.get", map[string]any{
		"output":      "extend",
		"selectHosts": []string{"hostid"},
		"sortfield":   "eventid",
		"recent":      false,
	}, &problems)
	if err != nil {
		return nil, err
	}

	records := make([]reconcile.Record, 0, len(problems))
	for _, p := range problems {
		records = append(records, p)
	}

	return records, nil
}

package kodi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"scrobbler/internal/config"
	"scrobbler/internal/logging"
)

// ErrNoData reports an expected-but-empty library result, e.g. a TV show
// query against a library without TV shows. It is distinct from transport
// failures and host-side RPC errors.
var ErrNoData = errors.New("kodi library has no data")

// RPCError is an error object returned by the Kodi JSON-RPC host.
type RPCError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func (e *RPCError) Error() string {
	return fmt.Sprintf("kodi rpc error %d: %s", e.Code, e.Message)
}

// HTTPDoer describes the HTTP client used by the Kodi client.
type HTTPDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client talks JSON-RPC 2.0 to a Kodi host over HTTP.
type Client struct {
	endpoint string
	username string
	password string
	client   HTTPDoer
	logger   *slog.Logger
}

// NewClient constructs a Kodi client for the given endpoint. Credentials may
// be empty when the host does not require authentication.
func NewClient(endpoint, username, password string, timeout time.Duration, logger *slog.Logger) *Client {
	return NewClientWithDoer(endpoint, username, password, &http.Client{Timeout: timeout}, logger)
}

// NewClientWithDoer constructs a client with a caller-supplied HTTP doer.
func NewClientWithDoer(endpoint, username, password string, doer HTTPDoer, logger *slog.Logger) *Client {
	return &Client{
		endpoint: strings.TrimSpace(endpoint),
		username: strings.TrimSpace(username),
		password: password,
		client:   doer,
		logger:   logging.NewComponentLogger(logger, "kodi"),
	}
}

// NewConfiguredClient builds a client from application configuration.
func NewConfiguredClient(cfg *config.Config, logger *slog.Logger) *Client {
	timeout := time.Duration(cfg.Kodi.RequestTimeout) * time.Second
	return NewClient(cfg.Kodi.URL, cfg.Kodi.Username, cfg.Kodi.Password, timeout, logger)
}

type rpcRequest struct {
	JSONRPC string `json:"jsonrpc"`
	ID      string `json:"id"`
	Method  string `json:"method"`
	Params  any    `json:"params,omitempty"`
}

type rpcResponse struct {
	Result json.RawMessage `json:"result"`
	Error  *RPCError       `json:"error"`
}

// Call sends a single JSON-RPC request and decodes the host's result into
// result when it is non-nil.
func (c *Client) Call(ctx context.Context, method string, params any, result any) error {
	request := rpcRequest{
		JSONRPC: "2.0",
		ID:      uuid.NewString(),
		Method:  method,
		Params:  params,
	}

	body, err := json.Marshal(request)
	if err != nil {
		return fmt.Errorf("marshal %s request: %w", method, err)
	}

	c.logger.Debug("json-rpc request",
		logging.String("method", method),
		logging.String("request_id", request.ID))

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build %s request: %w", method, err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.username != "" {
		req.SetBasicAuth(c.username, c.password)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("send %s request: %w", method, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusMultipleChoices {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		return fmt.Errorf("kodi returned %d for %s: %s", resp.StatusCode, method, strings.TrimSpace(string(snippet)))
	}

	var reply rpcResponse
	if err := json.NewDecoder(resp.Body).Decode(&reply); err != nil {
		return fmt.Errorf("decode %s response: %w", method, err)
	}
	if reply.Error != nil {
		return reply.Error
	}

	c.logger.Debug("json-rpc reply",
		logging.String("method", method),
		logging.String("request_id", request.ID),
		logging.Int("result_bytes", len(reply.Result)))

	if result == nil {
		return nil
	}
	if len(reply.Result) == 0 {
		return fmt.Errorf("%s response has no result", method)
	}
	if err := json.Unmarshal(reply.Result, result); err != nil {
		return fmt.Errorf("decode %s result: %w", method, err)
	}
	return nil
}

// Ping verifies JSON-RPC connectivity with the host.
func (c *Client) Ping(ctx context.Context) error {
	var pong string
	if err := c.Call(ctx, "JSONRPC.Ping", nil, &pong); err != nil {
		return err
	}
	if pong != "pong" {
		return fmt.Errorf("unexpected ping reply %q", pong)
	}
	return nil
}

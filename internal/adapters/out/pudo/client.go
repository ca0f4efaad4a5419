package pudo

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"lockerbooking/internal/core/domain/model/shipment"
	"lockerbooking/internal/core/domain/model/terminal"
	"lockerbooking/internal/pkg/errs"
)

const (
	DefaultBaseURL = "https://api-pudo.co.za/api/v1"
	DefaultTimeout = 30 * time.Second

	maxErrorBody = 4 << 10
)

// GatewayRecorder receives one observation per remote call. Status is zero
// when the call failed before a response arrived.
type GatewayRecorder interface {
	RecordGatewayRequest(operation string, status int, duration time.Duration)
}

type Option func(*Client)

func WithHTTPClient(c *http.Client) Option {
	return func(cl *Client) { cl.session = c }
}

// WithTimeout bounds every request. A client given through WithHTTPClient is
// copied rather than modified.
func WithTimeout(d time.Duration) Option {
	return func(cl *Client) {
		if d > 0 {
			cl.timeout = d
		}
	}
}

func WithRecorder(r GatewayRecorder) Option {
	return func(cl *Client) { cl.recorder = r }
}

// Client is the live locker network gateway. It is safe for concurrent use.
type Client struct {
	session  *http.Client
	timeout  time.Duration
	baseURL  string
	apiKey   string
	logger   *slog.Logger
	recorder GatewayRecorder
}

func NewClient(baseURL, apiKey string, logger *slog.Logger, opts ...Option) (*Client, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, errs.NewValueIsRequiredError("pudo api key")
	}
	if logger == nil {
		return nil, errs.NewValueIsRequiredError("logger")
	}
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		logger:  logger.With("component", "pudo_client"),
	}
	for _, opt := range opts {
		opt(c)
	}

	if c.session == nil {
		c.session = &http.Client{Timeout: DefaultTimeout}
	}
	if c.timeout > 0 {
		session := *c.session
		session.Timeout = c.timeout
		c.session = &session
	}

	return c, nil
}

// ListTerminals fetches GET /lockers-data.
func (c *Client) ListTerminals(ctx context.Context) ([]terminal.Terminal, error) {
	req, err := c.newRequest(ctx, http.MethodGet, c.baseURL+"/lockers-data", nil)
	if err != nil {
		return nil, err
	}

	body, err := c.do(OperationListTerminals, req)
	if err != nil {
		return nil, err
	}

	var records []terminalRecord
	if err = json.Unmarshal(body, &records); err != nil {
		return nil, &TransportError{
			Operation: OperationListTerminals,
			Cause:     fmt.Errorf("decode lockers response: %w", err),
		}
	}

	terminals := toTerminals(records)
	c.logger.DebugContext(ctx, "terminals listed", "received", len(records), "kept", len(terminals))
	return terminals, nil
}

// CreateShipment submits POST /shipments exactly once.
func (c *Client) CreateShipment(ctx context.Context, payload shipment.Payload) (shipment.Result, error) {
	encoded, err := json.Marshal(payload)
	if err != nil {
		return shipment.Result{}, fmt.Errorf("encode shipment payload: %w", err)
	}

	req, err := c.newRequest(ctx, http.MethodPost, c.baseURL+"/shipments", bytes.NewReader(encoded))
	if err != nil {
		return shipment.Result{}, err
	}

	body, err := c.do(OperationCreateShipment, req)
	if err != nil {
		return shipment.Result{}, err
	}

	result, err := shipment.ParseResult(body)
	if err != nil {
		return shipment.Result{}, &TransportError{Operation: OperationCreateShipment, Cause: err}
	}
	return result, nil
}

func (c *Client) newRequest(ctx context.Context, method, url string, body io.Reader) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", "application/json")

	return req, nil
}

// do sends req and returns the body of a 2xx response.
func (c *Client) do(operation string, req *http.Request) ([]byte, error) {
	start := time.Now()

	resp, err := c.session.Do(req)
	if err != nil {
		c.record(operation, 0, start)
		c.logger.WarnContext(req.Context(), "request failed", "operation", operation, "error", err)
		return nil, &TransportError{Operation: operation, Cause: err}
	}
	defer resp.Body.Close()
	c.record(operation, resp.StatusCode, start)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		c.logger.WarnContext(req.Context(), "unexpected status",
			"operation", operation, "status", resp.StatusCode)
		return nil, &TransportError{
			Operation:  operation,
			StatusCode: resp.StatusCode,
			Body:       strings.TrimSpace(string(b)),
		}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &TransportError{Operation: operation, StatusCode: resp.StatusCode, Cause: err}
	}
	return body, nil
}

func (c *Client) record(operation string, status int, start time.Time) {
	if c.recorder != nil {
		c.recorder.RecordGatewayRequest(operation, status, time.Since(start))
	}
}

// Package storeclient talks to the hotel data store over its REST API.
package storeclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/sony/gobreaker"
	"go.uber.org/zap"

	"github.com/hotel-frontdesk/service-frontdesk/internal/common/middleware"
)

// Config holds the client settings.
type Config struct {
	BaseURL         string
	Timeout         time.Duration
	BreakerFailures uint32
	BreakerTimeout  time.Duration
}

// Client is a thin JSON client for the data store. It does not retry.
type Client struct {
	baseURL string
	http    *http.Client
	cb      *gobreaker.CircuitBreaker
	logger  *zap.Logger
}

// New creates a new Client.
func New(cfg Config, logger *zap.Logger) *Client {
	failures := cfg.BreakerFailures
	if failures == 0 {
		failures = 3
	}
	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		http:    &http.Client{Timeout: cfg.Timeout},
		cb:      newBreaker(failures, cfg.BreakerTimeout, logger),
		logger:  logger,
	}
}

func newBreaker(failures uint32, timeout time.Duration, logger *zap.Logger) *gobreaker.CircuitBreaker {
	return gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "data-store",
		MaxRequests: 1,
		Timeout:     timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= failures
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("circuit breaker state changed",
				zap.String("breaker", name),
				zap.String("from", from.String()),
				zap.String("to", to.String()),
			)
		},
	})
}

// Ping checks that the store answers its health endpoint.
func (c *Client) Ping(ctx context.Context) error {
	return c.do(ctx, "reach data store", http.MethodGet, "/health", nil, nil)
}

type errorBody struct {
	Error string `json:"error"`
}

// do sends one request. out may be nil when the response body is not needed.
// Only transport failures count against the breaker: any HTTP answer,
// including 4xx and 5xx, proves the store is reachable.
func (c *Client) do(ctx context.Context, op, method, path string, in, out interface{}) error {
	var payload []byte
	if in != nil {
		var err error
		payload, err = json.Marshal(in)
		if err != nil {
			return fmt.Errorf("failed to encode request to %s: %w", op, err)
		}
	}

	result, err := c.cb.Execute(func() (interface{}, error) {
		var body io.Reader
		if payload != nil {
			body = bytes.NewReader(payload)
		}
		req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
		if err != nil {
			return nil, err
		}
		req.Header.Set("Accept", "application/json")
		if payload != nil {
			req.Header.Set("Content-Type", "application/json")
		}
		if id := middleware.RequestIDFromContext(ctx); id != "" {
			req.Header.Set(middleware.RequestIDHeader, id)
		}

		resp, err := c.http.Do(req)
		if err != nil {
			return nil, err
		}
		defer resp.Body.Close()

		raw, err := io.ReadAll(resp.Body)
		if err != nil {
			return nil, err
		}
		return &answer{status: resp.StatusCode, body: raw}, nil
	})
	if err != nil {
		c.logger.Error("data store request failed",
			zap.String("op", op),
			zap.String("method", method),
			zap.String("path", path),
			zap.Error(err),
		)
		return &TransportError{Op: op, Err: err}
	}

	ans := result.(*answer)
	if ans.status < 200 || ans.status > 299 {
		return ans.storeError(op)
	}
	if out == nil || len(ans.body) == 0 {
		return nil
	}
	if err := json.Unmarshal(ans.body, out); err != nil {
		return fmt.Errorf("failed to decode response to %s: %w", op, err)
	}
	return nil
}

type answer struct {
	status int
	body   []byte
}

func (a *answer) storeError(op string) *StoreError {
	var eb errorBody
	if err := json.Unmarshal(a.body, &eb); err == nil && eb.Error != "" {
		return &StoreError{StatusCode: a.status, Message: eb.Error}
	}
	return &StoreError{StatusCode: a.status, Message: fmt.Sprintf("failed to %s", op)}
}

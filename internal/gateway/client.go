package gateway

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/Domenick1991/shareit/config"
	"github.com/google/uuid"
	"github.com/sony/gobreaker"
)

const (
	UserIDHeader    = "X-Sharer-User-Id"
	RequestIDHeader = "X-Request-ID"
)

// errServerFailure marks a 5xx reply so the breaker counts it. The reply
// itself is still handed back to the caller.
var errServerFailure = errors.New("server tier returned 5xx")

// Request is one call forwarded to the server tier.
type Request struct {
	Method    string
	Path      string
	RawQuery  string
	Body      []byte
	UserID    string
	RequestID string
}

type Response struct {
	Status    int
	Body      []byte
	RequestID string
}

type Client struct {
	baseURL string
	http    *http.Client
	breaker *gobreaker.CircuitBreaker
}

type ClientOption func(*Client)

func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) {
		c.http = hc
	}
}

func NewClient(cfg config.GatewayConfig, opts ...ClientOption) *Client {
	threshold := cfg.Breaker.FailureThreshold
	if threshold == 0 {
		threshold = 5
	}
	settings := gobreaker.Settings{
		Name:        "shareit-server",
		MaxRequests: cfg.Breaker.MaxRequests,
		Interval:    time.Duration(cfg.Breaker.IntervalSeconds) * time.Second,
		Timeout:     time.Duration(cfg.Breaker.TimeoutSeconds) * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= threshold
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			log.Printf("Circuit breaker '%s' state changed from %s to %s", name, from, to)
		},
	}

	client := &Client{
		baseURL: strings.TrimRight(cfg.ServerURL, "/"),
		http:    &http.Client{Timeout: cfg.Timeout()},
		breaker: gobreaker.NewCircuitBreaker(settings),
	}
	for _, opt := range opts {
		opt(client)
	}
	return client
}

// Forward sends req to the server tier through the breaker. A non-nil
// Response always carries the server's status and body verbatim.
func (c *Client) Forward(ctx context.Context, req Request) (*Response, error) {
	if req.RequestID == "" {
		req.RequestID = uuid.NewString()
	}

	result, err := c.breaker.Execute(func() (interface{}, error) {
		resp, err := c.do(ctx, req)
		if err != nil {
			return nil, err
		}
		if resp.Status >= http.StatusInternalServerError {
			return resp, errServerFailure
		}
		return resp, nil
	})
	if errors.Is(err, errServerFailure) {
		return result.(*Response), nil
	}
	if err != nil {
		return nil, err
	}
	return result.(*Response), nil
}

func (c *Client) do(ctx context.Context, req Request) (*Response, error) {
	target := c.baseURL + req.Path
	if req.RawQuery != "" {
		target += "?" + req.RawQuery
	}

	var body io.Reader
	if len(req.Body) > 0 {
		body = bytes.NewReader(req.Body)
	}
	httpReq, err := http.NewRequestWithContext(ctx, req.Method, target, body)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	if body != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}
	if req.UserID != "" {
		httpReq.Header.Set(UserIDHeader, req.UserID)
	}
	httpReq.Header.Set(RequestIDHeader, req.RequestID)

	httpResp, err := c.http.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("failed to reach server: %w", err)
	}
	defer httpResp.Body.Close()

	data, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read server response: %w", err)
	}
	return &Response{Status: httpResp.StatusCode, Body: data, RequestID: req.RequestID}, nil
}

// StatusFor maps a Forward error to the status the gateway answers with.
func StatusFor(err error) (int, string) {
	switch {
	case errors.Is(err, gobreaker.ErrOpenState):
		return http.StatusServiceUnavailable, "server is temporarily unavailable"
	case errors.Is(err, gobreaker.ErrTooManyRequests):
		return http.StatusTooManyRequests, "too many requests"
	default:
		return http.StatusBadGateway, "server is unreachable"
	}
}

// Package ynab implements the upstream budgeting API client. All calls
// go through the circuit breaker, retry loop, and bulkhead; responses
// arrive wrapped in the API's data envelope and are decoded into raw
// domain structs with milliunit integers untouched.
package ynab

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/hmalcolm/ynab-bridge-go/internal/domain"
	"github.com/hmalcolm/ynab-bridge-go/internal/infra/cache"
	"github.com/hmalcolm/ynab-bridge-go/internal/infra/observability"
	"github.com/hmalcolm/ynab-bridge-go/internal/infra/resilience"
	"github.com/hmalcolm/ynab-bridge-go/internal/port"

	"github.com/sony/gobreaker"
	"go.opentelemetry.io/otel"
	"go.uber.org/zap"
)

var tracer = otel.Tracer("ynab")

// Client wraps HTTP calls to the budgeting API.
type Client struct {
	httpClient *http.Client
	baseURL    string
	token      string
	cb         *gobreaker.CircuitBreaker
	cfg        resilience.Config
	bulkhead   *resilience.Bulkhead
	metrics    *observability.Metrics
	logger     *zap.Logger

	// Slow-moving lists are cached; everything else is always fetched.
	budgetCache port.Cache[[]domain.Budget]
	payeeCache  port.Cache[[]domain.Payee]
}

// Options carries the collaborators the client needs.
type Options struct {
	HTTPClient *http.Client
	BaseURL    string
	Token      string
	Breaker    *gobreaker.CircuitBreaker
	Resilience resilience.Config
	Metrics    *observability.Metrics
	Logger     *zap.Logger
	CacheTTL   time.Duration
}

// NewClient creates a budgeting API client.
func NewClient(opts Options) *Client {
	return &Client{
		httpClient:  opts.HTTPClient,
		baseURL:     opts.BaseURL,
		token:       opts.Token,
		cb:          opts.Breaker,
		cfg:         opts.Resilience,
		bulkhead:    resilience.NewBulkhead(opts.Resilience.MaxConcurrency),
		metrics:     opts.Metrics,
		logger:      opts.Logger,
		budgetCache: cache.New[[]domain.Budget](opts.CacheTTL),
		payeeCache:  cache.New[[]domain.Payee](opts.CacheTTL),
	}
}

// errorEnvelope is the API's error payload.
type errorEnvelope struct {
	Error struct {
		ID     string `json:"id"`
		Name   string `json:"name"`
		Detail string `json:"detail"`
	} `json:"error"`
}

// doRequest executes one authenticated request. Non-2xx responses become
// ErrUpstream wrapped as permanent so the retry loop surfaces them
// immediately instead of hammering a broken endpoint.
func (c *Client) doRequest(ctx context.Context, method, path string, payload any) ([]byte, error) {
	url := fmt.Sprintf("%s/v1/%s", c.baseURL, path)

	var reqBody io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			return nil, resilience.Permanent(fmt.Errorf("encode request: %w", err))
		}
		reqBody = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reqBody)
	if err != nil {
		c.logger.Error("ynab: failed to create request",
			zap.String("method", method),
			zap.String("path", path),
			zap.Error(err),
		)
		return nil, resilience.Permanent(err)
	}

	req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", c.token))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("ynab: request failed",
			zap.String("method", method),
			zap.String("path", path),
			zap.Error(err),
		)
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		c.logger.Error("ynab: failed to read response body",
			zap.String("method", method),
			zap.String("path", path),
			zap.Error(err),
		)
		return nil, err
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var envelope errorEnvelope
		_ = json.Unmarshal(body, &envelope)
		reason := envelope.Error.Detail
		if reason == "" {
			reason = http.StatusText(resp.StatusCode)
		}

		c.logger.Warn("ynab: non-2xx response",
			zap.String("method", method),
			zap.String("path", path),
			zap.Int("status", resp.StatusCode),
			zap.String("detail", reason),
		)
		c.metrics.IncrUpstreamError(fmt.Sprintf("%d", resp.StatusCode))

		return nil, resilience.Permanent(&domain.ErrUpstream{
			Status: resp.StatusCode,
			Reason: reason,
		})
	}

	c.logger.Debug("ynab: request OK",
		zap.String("method", method),
		zap.String("path", path),
		zap.Int("status", resp.StatusCode),
	)

	return body, nil
}

// call runs doRequest under the bulkhead, circuit breaker, and retry
// loop, then decodes the response body into out when out is non-nil.
func (c *Client) call(ctx context.Context, method, path string, payload, out any) error {
	if err := c.bulkhead.Acquire(ctx); err != nil {
		return err
	}
	defer c.bulkhead.Release()

	_, err := c.cb.Execute(func() (any, error) {
		return nil, resilience.RetryWithBackoff(ctx, c.cfg, func() error {
			body, err := c.doRequest(ctx, method, path, payload)
			if err != nil {
				return err
			}
			if out == nil {
				return nil
			}
			if err := json.Unmarshal(body, out); err != nil {
				return resilience.Permanent(fmt.Errorf("decode response: %w", err))
			}
			return nil
		})
	})
	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			return &domain.ErrCircuitOpen{Service: "ynab"}
		}
		return err
	}
	return nil
}

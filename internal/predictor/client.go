// Package predictor calls the external forecasting and budget
// recommendation services.
package predictor

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/wattwiselabs/wattwise/internal/config"
	"go.uber.org/zap"
)

// ErrUpstream wraps any failure of an external prediction service. Callers
// surface the message to the originating request; nothing is retried.
var ErrUpstream = errors.New("upstream_service_error")

type Client struct {
	log       *zap.Logger
	http      *http.Client
	usageURL  string
	budgetURL string
}

func NewClient(cfg config.Config, log *zap.Logger) *Client {
	return &Client{
		log:       log.Named("predictor.client"),
		http:      &http.Client{Timeout: cfg.Predictor.Timeout},
		usageURL:  cfg.Predictor.UsageURL,
		budgetURL: cfg.Predictor.BudgetURL,
	}
}

// PredictUsage forwards the caller's payload to the energy predictor and
// relays its JSON response untouched.
func (c *Client) PredictUsage(ctx context.Context, payload json.RawMessage) (json.RawMessage, error) {
	return c.post(ctx, c.usageURL+"/predict-usage", payload)
}

// RecommendBudget forwards the caller's payload to the budget recommender.
func (c *Client) RecommendBudget(ctx context.Context, payload json.RawMessage) (json.RawMessage, error) {
	return c.post(ctx, c.budgetURL+"/recommend-budget", payload)
}

func (c *Client) post(ctx context.Context, url string, payload json.RawMessage) (json.RawMessage, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Error("prediction service unreachable", zap.String("url", url), zap.Error(err))
		return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}

	if resp.StatusCode != http.StatusOK {
		c.log.Error("prediction service error",
			zap.String("url", url),
			zap.Int("status", resp.StatusCode),
			zap.ByteString("body", body))
		return nil, fmt.Errorf("%w: status %d: %s", ErrUpstream, resp.StatusCode, body)
	}

	if !json.Valid(body) {
		return nil, fmt.Errorf("%w: invalid JSON response", ErrUpstream)
	}
	return body, nil
}

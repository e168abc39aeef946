package predictor

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wattwiselabs/wattwise/internal/config"
	"go.uber.org/zap"
)

func newTestClient(upstreamURL string) *Client {
	cfg := config.Config{}
	cfg.Predictor.UsageURL = upstreamURL
	cfg.Predictor.BudgetURL = upstreamURL
	cfg.Predictor.Timeout = 2 * time.Second
	return NewClient(cfg, zap.NewNop())
}

func TestPredictUsagePassthrough(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/predict-usage", r.URL.Path)
		require.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var in map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&in))
		assert.Equal(t, float64(3), in["people"])

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"this_month":{"predicted_kwh":120.5,"predicted_bill_lkr":3450.75},"next_month":{"predicted_kwh":131.2,"predicted_bill_lkr":3720.0}}`))
	}))
	defer upstream.Close()

	c := newTestClient(upstream.URL)
	out, err := c.PredictUsage(context.Background(), json.RawMessage(`{"people":3,"month":8}`))
	require.NoError(t, err)

	var resp struct {
		ThisMonth struct {
			PredictedKwh float64 `json:"predicted_kwh"`
		} `json:"this_month"`
	}
	require.NoError(t, json.Unmarshal(out, &resp))
	assert.Equal(t, 120.5, resp.ThisMonth.PredictedKwh)
}

func TestUpstreamErrorIsWrapped(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"model not loaded"}`, http.StatusInternalServerError)
	}))
	defer upstream.Close()

	c := newTestClient(upstream.URL)
	_, err := c.RecommendBudget(context.Background(), json.RawMessage(`{}`))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUpstream)
	assert.Contains(t, err.Error(), "model not loaded")
}

func TestUnreachableUpstream(t *testing.T) {
	c := newTestClient("http://127.0.0.1:1")
	_, err := c.PredictUsage(context.Background(), json.RawMessage(`{}`))
	assert.ErrorIs(t, err, ErrUpstream)
}

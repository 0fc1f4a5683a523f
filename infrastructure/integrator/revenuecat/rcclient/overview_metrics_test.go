package rcclient

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	rcdomain "github.com/vfg2006/revenue-leaderboard-api/infrastructure/integrator/revenuecat/domain"
	"github.com/vfg2006/revenue-leaderboard-api/internal/config"
)

func newTestClient(serverURL string) Client {
	cfg := &config.Config{}
	cfg.RevenueCat.URL = serverURL
	return NewClient(cfg)
}

func TestGetOverviewMetricsSuccess(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/projects/proj123/metrics/overview", r.URL.Path)
		assert.Equal(t, "Bearer sk_test", r.Header.Get("Authorization"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"object": "overview_metrics",
			"metrics": [
				{"id": "revenue", "name": "Revenue", "value": 1234.56},
				{"id": "mrr", "name": "MRR", "value": 321.09},
				{"id": "active_subscriptions", "name": "Active Subscriptions", "value": 42}
			]
		}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	resp, err := client.GetOverviewMetrics("sk_test", "proj123")
	require.NoError(t, err)
	require.Len(t, resp.Metrics, 3)
	assert.Equal(t, "revenue", resp.Metrics[0].ID)
	assert.Equal(t, 1234.56, resp.Metrics[0].Value)
}

func TestGetOverviewMetricsInvalidCredential(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"object":"error","type":"authentication_error","message":"Invalid API key."}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	_, err := client.GetOverviewMetrics("sk_revogada", "proj123")
	require.Error(t, err)
	assert.True(t, rcdomain.IsInvalidCredential(err))
	assert.False(t, rcdomain.IsTransient(err))
}

func TestGetOverviewMetricsAmbiguousUnauthorized(t *testing.T) {
	// 401 sem o corpo de erro reconhecido é evidência ambígua: nunca deve
	// classificar como credencial inválida
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`<html>denied</html>`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	_, err := client.GetOverviewMetrics("sk_test", "proj123")
	require.Error(t, err)
	assert.False(t, rcdomain.IsInvalidCredential(err))
	assert.True(t, rcdomain.IsTransient(err))
}

func TestGetOverviewMetricsTransientFailures(t *testing.T) {
	tests := []struct {
		name       string
		statusCode int
	}{
		{name: "Erro interno do servidor", statusCode: http.StatusInternalServerError},
		{name: "Rate limit", statusCode: http.StatusTooManyRequests},
		{name: "Indisponível", statusCode: http.StatusServiceUnavailable},
		{name: "Not found", statusCode: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.statusCode)
			}))
			defer server.Close()

			client := newTestClient(server.URL)

			_, err := client.GetOverviewMetrics("sk_test", "proj123")
			require.Error(t, err)
			assert.True(t, rcdomain.IsTransient(err))
		})
	}
}

func TestGetOverviewMetricsMalformedResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`isto não é JSON`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	_, err := client.GetOverviewMetrics("sk_test", "proj123")
	require.Error(t, err)

	var fetchErr *rcdomain.FetchError
	require.ErrorAs(t, err, &fetchErr)
	assert.Equal(t, rcdomain.FailureMalformedResponse, fetchErr.Kind)
}

func TestGetOverviewMetricsNetworkError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // servidor derrubado antes da chamada

	client := newTestClient(server.URL)

	_, err := client.GetOverviewMetrics("sk_test", "proj123")
	require.Error(t, err)
	assert.True(t, rcdomain.IsTransient(err))
}

package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRateLimiterAllow(t *testing.T) {
	limiter := NewRateLimiter(60, 2)

	assert.True(t, limiter.Allow("10.0.0.1"))
	assert.True(t, limiter.Allow("10.0.0.1"))
	assert.False(t, limiter.Allow("10.0.0.1"))

	// Outro cliente tem contador próprio
	assert.True(t, limiter.Allow("10.0.0.2"))
}

func TestRateLimiterWindowReset(t *testing.T) {
	limiter := NewRateLimiter(60, 1)

	current := time.Now()
	limiter.now = func() time.Time { return current }

	assert.True(t, limiter.Allow("10.0.0.1"))
	assert.False(t, limiter.Allow("10.0.0.1"))

	// Virada de janela zera os contadores
	current = current.Add(61 * time.Second)
	assert.True(t, limiter.Allow("10.0.0.1"))
}

func TestRateLimitMiddleware(t *testing.T) {
	limiter := NewRateLimiter(60, 1)

	handler := RateLimitMiddleware(limiter)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
	}))

	request := httptest.NewRequest(http.MethodPost, "/v1/startups", nil)
	request.RemoteAddr = "10.0.0.1:51234"

	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, request)
	assert.Equal(t, http.StatusCreated, recorder.Code)

	recorder = httptest.NewRecorder()
	handler.ServeHTTP(recorder, request)
	assert.Equal(t, http.StatusTooManyRequests, recorder.Code)

	// O ranking não é limitado
	getRequest := httptest.NewRequest(http.MethodGet, "/v1/leaderboard", nil)
	getRequest.RemoteAddr = "10.0.0.1:51234"

	recorder = httptest.NewRecorder()
	handler.ServeHTTP(recorder, getRequest)
	assert.Equal(t, http.StatusOK, recorder.Code)
}

package middleware

import (
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/vfg2006/revenue-leaderboard-api/pkg/apiErrors"
)

// RateLimiter implementa janela fixa por IP de origem. O mapa de contadores
// é zerado a cada virada de janela.
type RateLimiter struct {
	windowSeconds int
	maxRequests   int

	mu          sync.Mutex
	windowStart time.Time
	counters    map[string]int
	now         func() time.Time
}

func NewRateLimiter(windowSeconds int, maxRequests int) *RateLimiter {
	return &RateLimiter{
		windowSeconds: windowSeconds,
		maxRequests:   maxRequests,
		windowStart:   time.Now(),
		counters:      make(map[string]int),
		now:           time.Now,
	}
}

// Allow registra uma requisição do cliente e informa se ela cabe na janela
// corrente
func (rl *RateLimiter) Allow(clientKey string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()
	if now.Sub(rl.windowStart) >= time.Duration(rl.windowSeconds)*time.Second {
		rl.windowStart = now
		rl.counters = make(map[string]int)
	}

	if rl.counters[clientKey] >= rl.maxRequests {
		return false
	}

	rl.counters[clientKey]++
	return true
}

// RateLimitMiddleware limita os cadastros por IP. Somente o POST de cadastro
// é limitado; a leitura do ranking é livre.
func RateLimitMiddleware(limiter *RateLimiter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method != http.MethodPost || r.URL.Path != "/v1/startups" {
				next.ServeHTTP(w, r)
				return
			}

			clientKey := clientIP(r)
			if !limiter.Allow(clientKey) {
				apiErrors.WriteError(w, apiErrors.ErrTooManyRequests, "Limite de cadastros excedido, tente novamente em instantes", nil)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func clientIP(r *http.Request) string {
	if forwarded := r.Header.Get("X-Forwarded-For"); forwarded != "" {
		return forwarded
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

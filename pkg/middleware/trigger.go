package middleware

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"github.com/vfg2006/revenue-leaderboard-api/pkg/apiErrors"
)

// TriggerAuthMiddleware protege as rotas operacionais do job com um token
// compartilhado. A comparação é em tempo constante e um token vazio na
// configuração nega tudo.
func TriggerAuthMiddleware(triggerToken string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !strings.HasPrefix(r.URL.Path, "/v1/cron/") {
				next.ServeHTTP(w, r)
				return
			}

			authHeader := r.Header.Get("Authorization")
			tokenString := strings.TrimPrefix(authHeader, "Bearer ")
			if authHeader == "" || tokenString == authHeader {
				apiErrors.WriteError(w, apiErrors.ErrInvalidTriggerToken, "Bearer token é obrigatório", nil)
				return
			}

			if triggerToken == "" ||
				subtle.ConstantTimeCompare([]byte(tokenString), []byte(triggerToken)) != 1 {
				apiErrors.WriteError(w, apiErrors.ErrInvalidTriggerToken, "Token inválido", nil)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

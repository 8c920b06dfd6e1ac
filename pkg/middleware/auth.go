package middleware

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/Amanchaubey026/Taskopia-FluidAI/pkg/blacklist"
	"github.com/Amanchaubey026/Taskopia-FluidAI/pkg/claims"
	"github.com/Amanchaubey026/Taskopia-FluidAI/pkg/token"
)

// Auth is the per-request authorization pipeline: extract the candidate
// token, reject revoked ones, verify signature and expiry, and hand the
// decoded claims to the downstream handler via the request context. Each
// failure is terminal. The session store is never consulted here; the bearer
// token is the authorization channel.
func Auth(ledger blacklist.Repository, tokens *token.Service) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw := token.FromRequest(r)
			if raw == "" {
				deny(w, http.StatusUnauthorized, "No token, authorization denied")
				return
			}

			revoked, err := ledger.Contains(raw)
			if err != nil {
				deny(w, http.StatusInternalServerError, "Server error")
				return
			}
			if revoked {
				deny(w, http.StatusUnauthorized, "Token is blacklisted, authorization denied")
				return
			}

			c, err := tokens.Verify(raw)
			if err != nil {
				deny(w, http.StatusUnauthorized, "Token is not valid")
				return
			}

			ctx := context.WithValue(r.Context(), claims.TokenContextKey, c)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func deny(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(map[string]string{"msg": msg}); err != nil {
		return
	}
}

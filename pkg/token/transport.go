package token

import (
	"net/http"
	"strings"
)

// CookieName is the http-only cookie the login handler sets.
const CookieName = "token"

// FromRequest pulls the candidate token out of the request: the cookie wins,
// the Authorization header is the fallback. Empty string when neither is set.
func FromRequest(r *http.Request) string {
	if c, err := r.Cookie(CookieName); err == nil && c.Value != "" {
		return c.Value
	}

	auth := r.Header.Get("Authorization")
	if strings.HasPrefix(auth, "Bearer ") {
		return strings.TrimPrefix(auth, "Bearer ")
	}

	return ""
}

package middleware_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	jwt "github.com/dgrijalva/jwt-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/Amanchaubey026/Taskopia-FluidAI/pkg/claims"
	"github.com/Amanchaubey026/Taskopia-FluidAI/pkg/middleware"
	"github.com/Amanchaubey026/Taskopia-FluidAI/pkg/token"
)

type mockLedger struct {
	mock.Mock
}

func (m *mockLedger) Add(token string) error {
	return m.Called(token).Error(0)
}

func (m *mockLedger) Contains(token string) (bool, error) {
	args := m.Called(token)
	return args.Bool(0), args.Error(1)
}

var testSecret = []byte("test-secret")

func signExpired(t *testing.T) string {
	c := &claims.Claims{}
	c.User.ID = "user123"
	c.ExpiresAt = time.Now().Add(-time.Hour).UTC().Unix()

	raw, err := jwt.NewWithClaims(jwt.SigningMethodHS256, c).SignedString(testSecret)
	assert.NoError(t, err)
	return raw
}

func TestAuth(t *testing.T) {
	tokens := token.NewService(testSecret)

	valid, err := tokens.Issue("user123", "pic.png")
	assert.NoError(t, err)

	foreign, err := token.NewService([]byte("other-secret")).Issue("user123", "pic.png")
	assert.NoError(t, err)

	tests := []struct {
		name           string
		token          string
		useCookie      bool
		revoked        bool
		ledgerErr      error
		expectedStatus int
		expectedBody   string
	}{
		{
			name:           "no token",
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   "No token, authorization denied",
		},
		{
			name:           "revoked token rejected even though it would verify",
			token:          valid,
			revoked:        true,
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   "Token is blacklisted, authorization denied",
		},
		{
			name:           "bad signature",
			token:          foreign,
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   "Token is not valid",
		},
		{
			name:           "expired token",
			token:          signExpired(t),
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   "Token is not valid",
		},
		{
			name:           "ledger failure",
			token:          valid,
			ledgerErr:      errors.New("mongo down"),
			expectedStatus: http.StatusInternalServerError,
		},
		{
			name:           "valid bearer token",
			token:          valid,
			expectedStatus: http.StatusOK,
		},
		{
			name:           "valid cookie token",
			token:          valid,
			useCookie:      true,
			expectedStatus: http.StatusOK,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			ledger := new(mockLedger)
			if test.token != "" {
				ledger.On("Contains", test.token).Return(test.revoked, test.ledgerErr)
			}

			var gotClaims *claims.Claims
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				gotClaims, _ = r.Context().Value(claims.TokenContextKey).(*claims.Claims)
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/api/tasks", nil)
			if test.token != "" {
				if test.useCookie {
					req.AddCookie(&http.Cookie{Name: token.CookieName, Value: test.token})
				} else {
					req.Header.Set("Authorization", "Bearer "+test.token)
				}
			}

			rr := httptest.NewRecorder()
			middleware.Auth(ledger, tokens)(next).ServeHTTP(rr, req)

			assert.Equal(t, test.expectedStatus, rr.Code)
			if test.expectedStatus != http.StatusOK {
				assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
				assert.True(t, json.Valid(rr.Body.Bytes()))
			}
			if test.expectedBody != "" {
				assert.Contains(t, rr.Body.String(), test.expectedBody)
			}
			if test.expectedStatus == http.StatusOK {
				assert.NotNil(t, gotClaims)
				assert.Equal(t, "user123", gotClaims.User.ID)
			}
		})
	}
}

func TestAuthCookieBeatsHeader(t *testing.T) {
	tokens := token.NewService(testSecret)

	cookieToken, err := tokens.Issue("cookie-user", "")
	assert.NoError(t, err)

	ledger := new(mockLedger)
	ledger.On("Contains", cookieToken).Return(false, nil)

	var gotClaims *claims.Claims
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotClaims, _ = r.Context().Value(claims.TokenContextKey).(*claims.Claims)
	})

	req := httptest.NewRequest(http.MethodGet, "/api/tasks", nil)
	req.AddCookie(&http.Cookie{Name: token.CookieName, Value: cookieToken})
	req.Header.Set("Authorization", "Bearer some.other.token")

	middleware.Auth(ledger, tokens)(next).ServeHTTP(httptest.NewRecorder(), req)

	assert.NotNil(t, gotClaims)
	assert.Equal(t, "cookie-user", gotClaims.User.ID)
}

package token

import (
	"errors"
	"time"

	jwt "github.com/dgrijalva/jwt-go"

	"github.com/Amanchaubey026/Taskopia-FluidAI/pkg/claims"
)

// TTL is the lifetime of an issued token. Blacklist entries expire on the
// same horizon, so a revoked token is never forgotten before it dies on its own.
const TTL = 4 * time.Hour

var (
	ErrExpired          = errors.New("token expired")
	ErrInvalidSignature = errors.New("invalid token signature")
	ErrInvalidToken     = errors.New("invalid token")
)

type Service struct {
	secret []byte
}

func NewService(secret []byte) *Service {
	return &Service{secret: secret}
}

func (s *Service) Issue(userID, pic string) (string, error) {
	c := &claims.Claims{}
	c.User.ID = userID
	c.User.Pic = pic
	c.IssuedAt = time.Now().UTC().Unix()
	c.ExpiresAt = time.Now().Add(TTL).UTC().Unix()

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, c)
	return t.SignedString(s.secret)
}

// Verify checks the signature and the embedded expiry only. Revocation is the
// caller's problem.
func (s *Service) Verify(raw string) (*claims.Claims, error) {
	c := &claims.Claims{}

	t, err := jwt.ParseWithClaims(raw, c, func(t *jwt.Token) (interface{}, error) {
		method, ok := t.Method.(*jwt.SigningMethodHMAC)
		if !ok || method.Alg() != "HS256" {
			return nil, ErrInvalidSignature
		}
		return s.secret, nil
	})
	if err != nil {
		var ve *jwt.ValidationError
		if errors.As(err, &ve) {
			switch {
			case ve.Errors&jwt.ValidationErrorExpired != 0:
				return nil, ErrExpired
			case ve.Errors&jwt.ValidationErrorSignatureInvalid != 0:
				return nil, ErrInvalidSignature
			}
		}
		return nil, ErrInvalidToken
	}
	if !t.Valid || c.User.ID == "" {
		return nil, ErrInvalidToken
	}

	return c, nil
}

package claims

import jwt "github.com/dgrijalva/jwt-go"

type contextKey string

const (
	TokenContextKey contextKey = "token"
)

type Claims struct {
	User struct {
		ID  string `json:"id"`
		Pic string `json:"pic"`
	} `json:"user"`
	jwt.StandardClaims
}

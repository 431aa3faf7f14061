package session

import (
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/lestrrat-go/jwx/v2/jwt"
)

// Verifier validates access tokens issued by the hosted auth backend and
// mints short-lived stream tokens for SSE connections. Login, refresh and
// revocation live in the auth backend, not here.
type Verifier interface {
	JWTAuth() *jwtauth.JWTAuth
	GenerateStreamToken(userID string) (token string, expiresIn int, err error)
	ValidateStreamToken(tokenString string) (userID string, err error)
}

type verifier struct {
	tokenAuth *jwtauth.JWTAuth
}

func NewVerifier(secret string, acceptableSkew string) Verifier {
	skew, err := time.ParseDuration(acceptableSkew)
	if err != nil {
		skew = 30 * time.Second
	}
	return &verifier{
		tokenAuth: jwtauth.New("HS256", []byte(secret), nil, jwt.WithAcceptableSkew(skew)),
	}
}

func (v *verifier) JWTAuth() *jwtauth.JWTAuth {
	return v.tokenAuth
}

// GenerateStreamToken generates a short-lived token for SSE connections.
// EventSource cannot send an Authorization header, so the stream endpoint
// authenticates with this token passed as a query parameter instead.
func (v *verifier) GenerateStreamToken(userID string) (token string, expiresIn int, err error) {
	expiresIn = 300 // 5 minutes
	expiresAt := time.Now().Add(time.Duration(expiresIn) * time.Second).Unix()

	_, tokenString, err := v.tokenAuth.Encode(map[string]interface{}{
		"user_id": userID,
		"type":    "stream",
		"exp":     expiresAt,
	})
	if err != nil {
		return "", 0, err
	}

	return tokenString, expiresIn, nil
}

// ValidateStreamToken validates a stream token and returns the user ID.
func (v *verifier) ValidateStreamToken(tokenString string) (userID string, err error) {
	token, err := v.tokenAuth.Decode(tokenString)
	if err != nil {
		return "", err
	}

	tokenType, ok := token.Get("type")
	if !ok || tokenType != "stream" {
		return "", jwt.ErrInvalidJWT()
	}

	userIDVal, ok := token.Get("user_id")
	if !ok {
		return "", jwt.ErrInvalidJWT()
	}

	userID, ok = userIDVal.(string)
	if !ok {
		return "", jwt.ErrInvalidJWT()
	}

	return userID, nil
}

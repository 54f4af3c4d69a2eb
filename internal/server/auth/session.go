package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/dmaltsev/journal/internal/common"
)

// Claims is the session token payload: the registered claims plus the
// subject account id.
type Claims struct {
	jwt.RegisteredClaims
	UserID string
}

// Sessions issues and resolves signed session tokens. The signing secret
// and both lifetimes are fixed at construction; there is no mid-run
// rotation.
type Sessions struct {
	secret      []byte
	sessionTTL  time.Duration
	rememberTTL time.Duration
}

func NewSessions(secret []byte, sessionTTL, rememberTTL time.Duration) *Sessions {
	return &Sessions{secret: secret, sessionTTL: sessionTTL, rememberTTL: rememberTTL}
}

// TTL returns the lifetime a token issued now would get.
func (s *Sessions) TTL(remember bool) time.Duration {
	if remember {
		return s.rememberTTL
	}
	return s.sessionTTL
}

// Issue signs a token naming userID, valid for the remember-dependent
// lifetime. The token is an opaque string suitable as a cookie value.
func (s *Sessions) Issue(userID string, remember bool) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.TTL(remember))),
		},
		UserID: userID,
	})

	tokenString, err := token.SignedString(s.secret)
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

// Resolve verifies the signature and expiry of tokenString and returns
// the embedded subject id. Any failure (bad signature, expired, empty
// or malformed input) yields common.ErrInvalidToken; Resolve never
// resolves such a token to an identity.
func (s *Sessions) Resolve(tokenString string) (string, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return s.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return "", common.ErrInvalidToken
	}

	if !token.Valid || claims.UserID == "" {
		return "", common.ErrInvalidToken
	}

	return claims.UserID, nil
}

package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Validation is the outcome of checking a token. Invalid covers every
// failure mode alike: malformed, tampered, missing expiry, expired.
type Validation struct {
	Valid     bool
	ExpiresAt time.Time
}

// Codec issues and validates signed, time-limited bearer tokens using a
// single shared secret. Pure over its inputs; safe for concurrent use.
type Codec struct {
	secret []byte
}

// NewCodec creates a token codec for the given signing secret.
func NewCodec(secret string) *Codec {
	return &Codec{secret: []byte(secret)}
}

// Issue produces an HS256-signed token carrying only an absolute expiry.
func (c *Codec) Issue(ttl time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"exp": jwt.NewNumericDate(time.Now().Add(ttl)),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(c.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// Validate verifies signature and expiry. It fails closed: any parse error,
// signature mismatch, missing expiry or expired token yields Valid=false
// rather than an error.
func (c *Codec) Validate(token string) Validation {
	parsed, err := jwt.Parse(token,
		func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
			}
			return c.secret, nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	)
	if err != nil || !parsed.Valid {
		return Validation{}
	}

	exp, err := parsed.Claims.GetExpirationTime()
	if err != nil || exp == nil {
		return Validation{}
	}

	return Validation{Valid: true, ExpiresAt: exp.Time}
}

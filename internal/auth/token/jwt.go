// Package token issues and validates HS256-signed JWT bearer tokens.
package token

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/dmitrijs2005/moviecategories/internal/common"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims carries the registered claims plus the principal's email and id.
type Claims struct {
	jwt.RegisteredClaims
	Email  string `json:"email"`
	UserID string `json:"userId"`
}

// PrincipalID returns the numeric id carried in the userId claim.
func (c *Claims) PrincipalID() (int64, error) {
	return strconv.ParseInt(c.UserID, 10, 64)
}

// Codec signs and verifies tokens with a shared secret. Issuer, audience and
// lifetime are fixed at construction; a Codec is safe for concurrent use.
type Codec struct {
	key      []byte
	issuer   string
	audience string
	lifetime time.Duration
	now      func() time.Time
}

func NewCodec(key []byte, issuer, audience string, lifetime time.Duration) *Codec {
	return &Codec{
		key:      key,
		issuer:   issuer,
		audience: audience,
		lifetime: lifetime,
		now:      time.Now,
	}
}

// Issue signs a token for subject/principalID and returns it with its expiry.
func (c *Codec) Issue(subject string, principalID int64) (string, time.Time, error) {
	if len(c.key) == 0 {
		return "", time.Time{}, common.ErrSigningKeyMissing
	}

	now := c.now().UTC()
	expiresAt := jwt.NewNumericDate(now.Add(c.lifetime))

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   subject,
			Issuer:    c.issuer,
			Audience:  jwt.ClaimStrings{c.audience},
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: expiresAt,
		},
		Email:  subject,
		UserID: strconv.FormatInt(principalID, 10),
	})

	signed, err := token.SignedString(c.key)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("token signing: %w", err)
	}

	return signed, expiresAt.Time.UTC(), nil
}

// Validate parses tokenString and checks signature, issuer, audience and
// expiry. The returned error is one of the common token errors.
func (c *Codec) Validate(tokenString string) (*Claims, error) {
	if len(c.key) == 0 {
		return nil, common.ErrSigningKeyMissing
	}

	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, c.keyFunc,
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(c.issuer),
		jwt.WithAudience(c.audience),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(c.now),
	)
	if err != nil {
		return nil, classify(err)
	}
	if !token.Valid {
		return nil, common.ErrInvalidToken
	}

	return claims, nil
}

func (c *Codec) keyFunc(t *jwt.Token) (any, error) {
	if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
		return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
	}
	return c.key, nil
}

func classify(err error) error {
	switch {
	case errors.Is(err, jwt.ErrTokenMalformed):
		return common.ErrTokenMalformed
	case errors.Is(err, jwt.ErrTokenSignatureInvalid):
		return common.ErrInvalidSignature
	case errors.Is(err, jwt.ErrTokenExpired):
		return common.ErrTokenExpired
	case errors.Is(err, jwt.ErrTokenInvalidIssuer):
		return common.ErrInvalidIssuer
	case errors.Is(err, jwt.ErrTokenInvalidAudience):
		return common.ErrInvalidAudience
	default:
		return fmt.Errorf("%w: %v", common.ErrInvalidToken, err)
	}
}

type ctxKey struct{}

// NewContext returns a copy of ctx carrying claims.
func NewContext(ctx context.Context, claims *Claims) context.Context {
	return context.WithValue(ctx, ctxKey{}, claims)
}

// FromContext returns the claims stored by NewContext.
func FromContext(ctx context.Context) (*Claims, bool) {
	claims, ok := ctx.Value(ctxKey{}).(*Claims)
	return claims, ok && claims != nil
}

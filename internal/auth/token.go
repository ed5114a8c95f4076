package auth

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	ErrMissingToken = errors.New("missing access token")
	ErrInvalidToken = errors.New("invalid access token")
)

const (
	accessTokenHeader = "x-supabase-access-token"
	cookiePrefix      = "sb-"
	cookieSuffix      = "-access-token"
)

type Claims struct {
	jwt.RegisteredClaims
	Email string `json:"email,omitempty"`
	Role  string `json:"role,omitempty"`

	raw string
}

// TokenID identifies the token for revocation: the jti claim, or a digest of the raw token.
func (c *Claims) TokenID() string {
	if c.ID != "" {
		return c.ID
	}
	sum := sha256.Sum256([]byte(c.raw))
	return hex.EncodeToString(sum[:])
}

// ExpiresIn is the remaining lifetime relative to now; zero when unknown or already expired.
func (c *Claims) ExpiresIn(now time.Time) time.Duration {
	if c.ExpiresAt == nil {
		return 0
	}
	if d := c.ExpiresAt.Sub(now); d > 0 {
		return d
	}
	return 0
}

type TokenVerifier struct {
	secret   []byte
	audience string
}

// NewTokenVerifier verifies HS256 tokens; an empty audience skips the aud check.
func NewTokenVerifier(secret, audience string) *TokenVerifier {
	return &TokenVerifier{
		secret:   []byte(secret),
		audience: audience,
	}
}

func (v *TokenVerifier) Verify(token string) (*Claims, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return nil, ErrMissingToken
	}

	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Name}),
		jwt.WithExpirationRequired(),
	}
	if v.audience != "" {
		opts = append(opts, jwt.WithAudience(v.audience))
	}

	claims := &Claims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		return v.secret, nil
	}, opts...)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if !parsed.Valid {
		return nil, ErrInvalidToken
	}

	if _, err := uuid.Parse(claims.Subject); err != nil {
		return nil, fmt.Errorf("%w: subject is not a uuid", ErrInvalidToken)
	}

	claims.raw = token
	return claims, nil
}

// Issue signs a token for userID; used by tooling and tests.
func (v *TokenVerifier) Issue(userID string, ttl time.Duration, now time.Time) (string, error) {
	claims := jwt.RegisteredClaims{
		Subject:   userID,
		ID:        uuid.NewString(),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
	}
	if v.audience != "" {
		claims.Audience = jwt.ClaimStrings{v.audience}
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(v.secret)
}

// ExtractToken looks for the access token in the Authorization header,
// the x-supabase-access-token header, and sb-*-access-token cookies, in that order.
func ExtractToken(r *http.Request) (string, error) {
	if header := strings.TrimSpace(r.Header.Get("Authorization")); header != "" {
		if len(header) > 7 && strings.EqualFold(header[:7], "bearer ") {
			if token := strings.TrimSpace(header[7:]); token != "" {
				return token, nil
			}
		}
		return "", ErrInvalidToken
	}

	if token := strings.TrimSpace(r.Header.Get(accessTokenHeader)); token != "" {
		return token, nil
	}

	for _, cookie := range r.Cookies() {
		if strings.HasPrefix(cookie.Name, cookiePrefix) && strings.HasSuffix(cookie.Name, cookieSuffix) {
			if token := strings.TrimSpace(cookie.Value); token != "" {
				return token, nil
			}
		}
	}

	return "", ErrMissingToken
}

package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrMissingIdentity = errors.New("token does not contain user id")
	ErrEmptySecret     = errors.New("jwt secret is not configured")
)

// Claims is the signed session payload: {id, email, phone, role, exp}.
type Claims struct {
	ID    int64  `json:"id"`
	Email string `json:"email"`
	Phone string `json:"phone"`
	Role  string `json:"role"`
	jwt.RegisteredClaims
}

// TokenManager issues and validates HS256 bearer tokens. Validation is
// stateless; there is no revocation list.
type TokenManager struct {
	secret []byte
	ttl    map[string]time.Duration
	now    func() time.Time
}

// NewTokenManager returns a manager signing with secret. ttlByRole selects the
// expiry per role; roles missing from the map fall back to one hour.
func NewTokenManager(secret string, ttlByRole map[string]time.Duration) (*TokenManager, error) {
	if secret == "" {
		return nil, ErrEmptySecret
	}
	ttl := make(map[string]time.Duration, len(ttlByRole))
	for role, d := range ttlByRole {
		ttl[role] = d
	}
	return &TokenManager{secret: []byte(secret), ttl: ttl, now: time.Now}, nil
}

// TTL returns the token lifetime used for role.
func (m *TokenManager) TTL(role string) time.Duration {
	if d, ok := m.ttl[role]; ok && d > 0 {
		return d
	}
	return time.Hour
}

func (m *TokenManager) Issue(id int64, email, phone, role string) (string, time.Time, error) {
	now := m.now()
	expiresAt := now.Add(m.TTL(role))
	claims := Claims{
		ID:    id,
		Email: email,
		Phone: phone,
		Role:  role,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("sign token: %w", err)
	}
	return signed, expiresAt, nil
}

// Parse verifies signature and expiry and rejects payloads without an id.
func (m *TokenManager) Parse(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return m.secret, nil
	}, jwt.WithTimeFunc(m.now), jwt.WithExpirationRequired())
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, jwt.ErrTokenInvalidClaims
	}
	if claims.ID == 0 {
		return nil, ErrMissingIdentity
	}
	return claims, nil
}

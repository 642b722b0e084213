package auth

import (
	"crypto/rsa"
	"errors"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"
)

// Token kinds carried in the "type" claim. Only access tokens may authorize
// resource requests.
const (
	TokenTypeAccess  = "access"
	TokenTypeRefresh = "refresh"
)

// Verification failure taxonomy. Callers that face the network must not
// forward the distinction to the client.
var (
	ErrTokenMalformed        = errors.New("token is malformed")
	ErrTokenExpired          = errors.New("token is expired")
	ErrTokenInvalidSignature = errors.New("token signature is invalid")
)

// Claims is the verified payload of a library access token.
type Claims struct {
	TokenType string `json:"type"`
	jwt.RegisteredClaims
}

// TokenManager issues and verifies RS256-signed JWTs. Issuing requires the
// private key; verification only needs the public key.
type TokenManager struct {
	private *rsa.PrivateKey
	public  *rsa.PublicKey
	ttl     time.Duration
}

// NewTokenManager builds a manager around an RSA key pair.
func NewTokenManager(private *rsa.PrivateKey, public *rsa.PublicKey, ttl time.Duration) *TokenManager {
	if ttl <= 0 {
		ttl = 15 * time.Minute
	}
	return &TokenManager{private: private, public: public, ttl: ttl}
}

// Issue signs a token of the given kind for the subject using the default TTL.
func (tm *TokenManager) Issue(subject, kind string) (string, time.Time, error) {
	return tm.IssueWithTTL(subject, kind, tm.ttl)
}

// IssueWithTTL signs a token with an explicit lifetime.
func (tm *TokenManager) IssueWithTTL(subject, kind string, ttl time.Duration) (string, time.Time, error) {
	if tm.private == nil {
		return "", time.Time{}, errors.New("token manager has no private key")
	}

	now := time.Now()
	expiresAt := now.Add(ttl)
	claims := &Claims{
		TokenType: kind,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodRS256, claims)
	signed, err := token.SignedString(tm.private)
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, expiresAt, nil
}

// Parse verifies signature and expiry, returning the embedded claims.
func (tm *TokenManager) Parse(tokenStr string) (*Claims, error) {
	parsed, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if token.Method != jwt.SigningMethodRS256 {
			return nil, errors.New("unexpected signing method")
		}
		return tm.public, nil
	})
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenMalformed):
			return nil, ErrTokenMalformed
		case errors.Is(err, jwt.ErrTokenExpired):
			return nil, ErrTokenExpired
		case errors.Is(err, jwt.ErrTokenSignatureInvalid):
			return nil, ErrTokenInvalidSignature
		default:
			return nil, err
		}
	}

	claims, ok := parsed.Claims.(*Claims)
	if !ok || !parsed.Valid {
		return nil, ErrTokenMalformed
	}
	return claims, nil
}

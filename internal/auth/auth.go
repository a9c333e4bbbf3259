package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrBadCredentials = errors.New("password verification failed")
	ErrBadToken       = errors.New("invalid or expired edit token")
)

// Verifier checks an operator password. It exists solely to gate manual
// bank-balance edits.
type Verifier interface {
	VerifyPassword(ctx context.Context, candidate string) (bool, error)
}

// BcryptVerifier verifies candidates against a stored bcrypt hash.
type BcryptVerifier struct {
	hash []byte
}

func NewBcryptVerifier(hash string) *BcryptVerifier {
	return &BcryptVerifier{hash: []byte(hash)}
}

func (v *BcryptVerifier) VerifyPassword(_ context.Context, candidate string) (bool, error) {
	err := bcrypt.CompareHashAndPassword(v.hash, []byte(candidate))
	if err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return false, nil
		}

		return false, fmt.Errorf("comparing password hash: %w", err)
	}

	return true, nil
}

// TokenIssuer issues and checks the short-lived tokens that authorize a
// bank-balance edit after a successful unlock.
type TokenIssuer interface {
	Issue(subject string) (string, error)
	Validate(token string) error
}

const editScope = "bank-balance:edit"

type editClaims struct {
	Scope string `json:"scope"`
	jwt.RegisteredClaims
}

// JWTIssuer signs HS256 edit tokens with a configured lifetime. Tokens are
// not stored server-side: saving the balance simply requires a token that
// has not yet expired, and the lock re-engages because the client discards
// the token on save.
type JWTIssuer struct {
	secret []byte
	ttl    time.Duration
}

func NewJWTIssuer(secret string, ttl time.Duration) *JWTIssuer {
	return &JWTIssuer{secret: []byte(secret), ttl: ttl}
}

func (i *JWTIssuer) Issue(subject string) (string, error) {
	now := time.Now()

	claims := editClaims{
		Scope: editScope,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(i.ttl)),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(i.secret)
	if err != nil {
		return "", fmt.Errorf("signing edit token: %w", err)
	}

	return token, nil
}

func (i *JWTIssuer) Validate(token string) error {
	var claims editClaims

	parsed, err := jwt.ParseWithClaims(token, &claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}

		return i.secret, nil
	})
	if err != nil || !parsed.Valid {
		return ErrBadToken
	}

	if claims.Scope != editScope {
		return ErrBadToken
	}

	return nil
}

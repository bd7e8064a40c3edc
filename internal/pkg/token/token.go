// Package token issues and verifies the bearer tokens backing every
// authenticated request. Verification is two-phase: a stateless
// signature/expiry check first, then a store existence check, so forged or
// expired tokens are rejected without a database round trip.
package token

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	jwtlib "github.com/golang-jwt/jwt/v5"
	"github.com/shelfmark/core/internal/config"
)

var (
	// ErrMalformed means the token's structure or signature is invalid.
	ErrMalformed = errors.New("token malformed")
	// ErrExpired means the embedded expiry has elapsed.
	ErrExpired = errors.New("token expired")
	// ErrUnknown means the token is well-formed but has no backing store row
	// (never issued, or revoked by row deletion).
	ErrUnknown = errors.New("token unknown")
)

// Store persists issued-token rows. Row absence is the only revocation
// mechanism.
type Store interface {
	Insert(ctx context.Context, userID uint, token string, expiresAt time.Time) error
	Exists(ctx context.Context, token string) (bool, error)
}

// Service signs, records and verifies tokens. Secret and algorithm come from
// the startup config; nothing is read from package state.
type Service struct {
	secret []byte
	method jwtlib.SigningMethod
	algs   []string
	ttl    time.Duration
	store  Store
}

// New builds a token service from the auth config block.
func New(cfg config.AuthConfig, store Store) (*Service, error) {
	method := jwtlib.GetSigningMethod(cfg.JWTAlgorithm)
	if method == nil {
		return nil, fmt.Errorf("unknown signing algorithm %q", cfg.JWTAlgorithm)
	}
	if _, ok := method.(*jwtlib.SigningMethodHMAC); !ok {
		return nil, fmt.Errorf("signing algorithm %q is not HMAC", cfg.JWTAlgorithm)
	}
	return &Service{
		secret: []byte(cfg.JWTSecret),
		method: method,
		algs:   []string{cfg.JWTAlgorithm},
		ttl:    time.Duration(cfg.TokenTTLMin) * time.Minute,
		store:  store,
	}, nil
}

// Issue signs a token for the given user with the configured TTL and records
// it in the store.
func (s *Service) Issue(ctx context.Context, userID uint) (string, error) {
	return s.IssueWithTTL(ctx, userID, s.ttl)
}

// IssueWithTTL signs a token with an explicit TTL. The embedded expiry is
// absolute; a zero or negative TTL produces an already-expired token.
func (s *Service) IssueWithTTL(ctx context.Context, userID uint, ttl time.Duration) (string, error) {
	now := time.Now()
	expiresAt := now.Add(ttl)
	claims := jwtlib.RegisteredClaims{
		Subject:   strconv.FormatUint(uint64(userID), 10),
		ExpiresAt: jwtlib.NewNumericDate(expiresAt),
		IssuedAt:  jwtlib.NewNumericDate(now),
	}
	signed, err := jwtlib.NewWithClaims(s.method, claims).SignedString(s.secret)
	if err != nil {
		return "", err
	}
	if err := s.store.Insert(ctx, userID, signed, expiresAt); err != nil {
		return "", err
	}
	return signed, nil
}

// Verify resolves a token string to its owning user id, or one of
// ErrMalformed, ErrExpired, ErrUnknown.
func (s *Service) Verify(ctx context.Context, raw string) (uint, error) {
	userID, err := s.parseClaims(raw)
	if err != nil {
		return 0, err
	}

	ok, err := s.store.Exists(ctx, raw)
	if err != nil {
		return 0, fmt.Errorf("token store: %w", err)
	}
	if !ok {
		return 0, ErrUnknown
	}
	return userID, nil
}

// parseClaims is the stateless half of Verify: signature, structure and
// expiry only.
func (s *Service) parseClaims(raw string) (uint, error) {
	if raw == "" {
		return 0, ErrMalformed
	}

	var claims jwtlib.RegisteredClaims
	_, err := jwtlib.ParseWithClaims(raw, &claims, func(t *jwtlib.Token) (interface{}, error) {
		return s.secret, nil
	}, jwtlib.WithValidMethods(s.algs))
	if err != nil {
		if errors.Is(err, jwtlib.ErrTokenExpired) {
			return 0, ErrExpired
		}
		return 0, ErrMalformed
	}

	userID, err := strconv.ParseUint(claims.Subject, 10, 64)
	if err != nil || userID == 0 {
		return 0, ErrMalformed
	}
	return uint(userID), nil
}

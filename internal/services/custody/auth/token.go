// Package auth issues and verifies caller tokens. A token's subject is the
// caller's address.
package auth

import (
	"crypto/ed25519"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/golang-jwt/jwt/v5"

	apperrors "github.com/louisbranch/custody/internal/platform/errors"
	"github.com/louisbranch/custody/internal/platform/id"
	"github.com/louisbranch/custody/internal/services/custody/domain/address"
)

const (
	EnvCallerIssuer    = "CUSTODY_CALLER_ISSUER"
	EnvCallerAudience  = "CUSTODY_CALLER_AUDIENCE"
	EnvCallerPublicKey = "CUSTODY_CALLER_PUBLIC_KEY"
)

// DefaultTokenTTL bounds tokens issued without an explicit lifetime.
const DefaultTokenTTL = 24 * time.Hour

type callerEnv struct {
	Issuer    string `env:"CUSTODY_CALLER_ISSUER" envDefault:"custodyctl"`
	Audience  string `env:"CUSTODY_CALLER_AUDIENCE" envDefault:"custody"`
	PublicKey string `env:"CUSTODY_CALLER_PUBLIC_KEY"`
}

// VerifierConfig defines how caller tokens are verified.
type VerifierConfig struct {
	Issuer   string
	Audience string
	Key      ed25519.PublicKey
	Now      func() time.Time
}

// Claims captures a verified caller token.
type Claims struct {
	Caller    address.Address
	Issuer    string
	ExpiresAt time.Time
	IssuedAt  time.Time
	TokenID   string
}

// LoadVerifierConfigFromEnv reads caller token verification configuration.
// An unset public key disables authenticated methods.
func LoadVerifierConfigFromEnv(now func() time.Time) (VerifierConfig, bool, error) {
	var raw callerEnv
	if err := env.Parse(&raw); err != nil {
		return VerifierConfig{}, false, fmt.Errorf("parse caller env: %w", err)
	}
	publicKey := strings.TrimSpace(raw.PublicKey)
	if publicKey == "" {
		return VerifierConfig{}, false, nil
	}
	key, err := DecodePublicKey(publicKey)
	if err != nil {
		return VerifierConfig{}, false, fmt.Errorf("%s: %w", EnvCallerPublicKey, err)
	}
	if now == nil {
		now = time.Now
	}
	return VerifierConfig{
		Issuer:   strings.TrimSpace(raw.Issuer),
		Audience: strings.TrimSpace(raw.Audience),
		Key:      key,
		Now:      now,
	}, true, nil
}

// Verify checks token and returns its claims.
func (cfg VerifierConfig) Verify(token string) (Claims, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return Claims{}, apperrors.New(apperrors.CodeUnauthenticated, "caller token is required")
	}
	if cfg.Issuer == "" || cfg.Audience == "" || len(cfg.Key) != ed25519.PublicKeySize {
		return Claims{}, errors.New("caller verifier is not configured")
	}
	now := time.Now
	if cfg.Now != nil {
		now = cfg.Now
	}

	var parsed jwt.RegisteredClaims
	_, err := jwt.ParseWithClaims(token, &parsed, func(*jwt.Token) (any, error) {
		return cfg.Key, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodEdDSA.Alg()}),
		jwt.WithIssuer(cfg.Issuer),
		jwt.WithAudience(cfg.Audience),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(now),
	)
	if err != nil {
		return Claims{}, mapJWTError(err)
	}

	caller, err := address.Parse(parsed.Subject)
	if err != nil || caller.IsZero() {
		return Claims{}, apperrors.New(apperrors.CodeUnauthenticated, "caller token subject is not an address")
	}
	claims := Claims{
		Caller:    caller,
		Issuer:    parsed.Issuer,
		ExpiresAt: parsed.ExpiresAt.Time.UTC(),
		TokenID:   parsed.ID,
	}
	if parsed.IssuedAt != nil {
		claims.IssuedAt = parsed.IssuedAt.Time.UTC()
	}
	return claims, nil
}

// Authenticate verifies token and returns its caller.
func (cfg VerifierConfig) Authenticate(token string) (address.Address, error) {
	claims, err := cfg.Verify(token)
	if err != nil {
		return address.Address{}, err
	}
	return claims.Caller, nil
}

// Signer issues caller tokens.
type Signer struct {
	Issuer   string
	Audience string
	Key      ed25519.PrivateKey
	Now      func() time.Time
}

// Issue signs a token for caller valid for ttl.
func (s Signer) Issue(caller address.Address, ttl time.Duration) (string, error) {
	if caller.IsZero() {
		return "", errors.New("caller address is required")
	}
	if len(s.Key) != ed25519.PrivateKeySize {
		return "", errors.New("signing key is required")
	}
	if ttl <= 0 {
		ttl = DefaultTokenTTL
	}
	now := time.Now
	if s.Now != nil {
		now = s.Now
	}
	jti, err := id.NewID()
	if err != nil {
		return "", err
	}
	issuedAt := now().UTC()
	claims := jwt.RegisteredClaims{
		Issuer:    s.Issuer,
		Subject:   caller.String(),
		Audience:  jwt.ClaimStrings{s.Audience},
		IssuedAt:  jwt.NewNumericDate(issuedAt),
		ExpiresAt: jwt.NewNumericDate(issuedAt.Add(ttl)),
		ID:        jti,
	}
	return jwt.NewWithClaims(jwt.SigningMethodEdDSA, claims).SignedString(s.Key)
}

// GenerateKey returns a new key pair encoded as base64.
func GenerateKey() (publicKey, privateKey string, err error) {
	pub, priv, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return "", "", fmt.Errorf("generate key: %w", err)
	}
	return base64.RawStdEncoding.EncodeToString(pub), base64.RawStdEncoding.EncodeToString(priv), nil
}

// DecodePublicKey parses a base64 Ed25519 public key.
func DecodePublicKey(value string) (ed25519.PublicKey, error) {
	raw, err := decodeBase64(value)
	if err != nil {
		return nil, fmt.Errorf("decode public key: %w", err)
	}
	if len(raw) != ed25519.PublicKeySize {
		return nil, fmt.Errorf("public key must be %d bytes", ed25519.PublicKeySize)
	}
	return ed25519.PublicKey(raw), nil
}

// DecodePrivateKey parses a base64 Ed25519 private key.
func DecodePrivateKey(value string) (ed25519.PrivateKey, error) {
	raw, err := decodeBase64(value)
	if err != nil {
		return nil, fmt.Errorf("decode private key: %w", err)
	}
	if len(raw) != ed25519.PrivateKeySize {
		return nil, fmt.Errorf("private key must be %d bytes", ed25519.PrivateKeySize)
	}
	return ed25519.PrivateKey(raw), nil
}

func mapJWTError(err error) error {
	switch {
	case errors.Is(err, jwt.ErrTokenExpired):
		return apperrors.Wrap(apperrors.CodeUnauthenticated, "caller token is expired", err)
	case errors.Is(err, jwt.ErrTokenSignatureInvalid), errors.Is(err, jwt.ErrEd25519Verification):
		return apperrors.Wrap(apperrors.CodeUnauthenticated, "caller token signature is invalid", err)
	case errors.Is(err, jwt.ErrTokenInvalidIssuer), errors.Is(err, jwt.ErrTokenInvalidAudience):
		return apperrors.Wrap(apperrors.CodeUnauthenticated, "caller token was issued for another service", err)
	default:
		return apperrors.Wrap(apperrors.CodeUnauthenticated, "caller token is invalid", err)
	}
}

func decodeBase64(value string) ([]byte, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil, errors.New("empty base64 value")
	}
	decoded, err := base64.RawStdEncoding.DecodeString(value)
	if err == nil {
		return decoded, nil
	}
	return base64.StdEncoding.DecodeString(value)
}

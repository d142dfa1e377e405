package auth

import (
	"crypto/rsa"
	"errors"
	"fmt"
	"os"

	"github.com/golang-jwt/jwt/v5"
)

// Config selects how tokens are verified. PublicKeyPEM takes precedence over
// Secret.
type Config struct {
	// Secret is an HMAC-SHA256 key shared with the issuer.
	Secret string
	// PublicKeyPEM is the issuer's PEM-encoded RSA public key.
	PublicKeyPEM string
	// Issuer, when set, must match the iss claim.
	Issuer string
}

// Validator verifies bearer tokens.
type Validator struct {
	issuer    string
	secret    []byte
	publicKey *rsa.PublicKey
}

// NewValidator builds a validator from cfg.
func NewValidator(cfg Config) (*Validator, error) {
	v := &Validator{issuer: cfg.Issuer}

	switch {
	case cfg.PublicKeyPEM != "":
		key, err := jwt.ParseRSAPublicKeyFromPEM([]byte(cfg.PublicKeyPEM))
		if err != nil {
			return nil, fmt.Errorf("parse RSA public key: %w", err)
		}
		v.publicKey = key
	case cfg.Secret != "":
		v.secret = []byte(cfg.Secret)
	default:
		return nil, errors.New("jwt configuration requires PublicKeyPEM or Secret")
	}
	return v, nil
}

// Validate parses tokenString and returns its claims when the signature,
// expiry and issuer all check out.
func (v *Validator) Validate(tokenString string) (*Claims, error) {
	opts := []jwt.ParserOption{jwt.WithExpirationRequired()}
	if v.issuer != "" {
		opts = append(opts, jwt.WithIssuer(v.issuer))
	}
	if v.publicKey != nil {
		opts = append(opts, jwt.WithValidMethods([]string{"RS256", "RS384", "RS512"}))
	} else {
		opts = append(opts, jwt.WithValidMethods([]string{"HS256"}))
	}

	claims := &Claims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(*jwt.Token) (interface{}, error) {
		if v.publicKey != nil {
			return v.publicKey, nil
		}
		return v.secret, nil
	}, opts...)
	if err != nil {
		return nil, fmt.Errorf("parse token: %w", err)
	}
	return claims, nil
}

// LoadKeyFromFile reads a PEM-encoded key from path.
func LoadKeyFromFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read key file %q: %w", path, err)
	}
	return data, nil
}

// Package auth verifies the bearer tokens issued to authenticated users.
//
// Tokens are fernet messages whose payload is the user ID. The identity
// provider that registers users and issues tokens is a separate system;
// this package only needs the shared signing key to verify a token and
// recover the user it belongs to. IssueToken exists for that provider's
// counterpart role in tests and tooling.
package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/fernet/fernet-go"
)

// TokenTTL bounds how long an issued token stays valid.
const TokenTTL = 24 * time.Hour

// ErrInvalidToken indicates a token that is malformed, signed with the
// wrong key, or past its TTL.
var ErrInvalidToken = errors.New("invalid or expired token")

// TokenVerifier verifies bearer tokens and extracts the user identity.
type TokenVerifier struct {
	keys []*fernet.Key
}

// NewTokenVerifier creates a TokenVerifier from a base64-encoded fernet key.
func NewTokenVerifier(encodedKey string) (*TokenVerifier, error) {
	key, err := fernet.DecodeKey(encodedKey)
	if err != nil {
		return nil, fmt.Errorf("failed to decode token key: %w", err)
	}
	return &TokenVerifier{keys: []*fernet.Key{key}}, nil
}

// VerifyToken checks the token signature and TTL and returns the user ID
// it carries. Returns ErrInvalidToken for anything that does not verify.
func (v *TokenVerifier) VerifyToken(token string) (string, error) {
	payload := fernet.VerifyAndDecrypt([]byte(token), TokenTTL, v.keys)
	if payload == nil {
		return "", ErrInvalidToken
	}
	return string(payload), nil
}

// IssueToken creates a token carrying the given user ID, signed with the
// verifier's key. Used by tests and by the token issuance tooling.
func (v *TokenVerifier) IssueToken(userID string) (string, error) {
	token, err := fernet.EncryptAndSign([]byte(userID), v.keys[0])
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return string(token), nil
}

// GenerateKey creates a new random fernet key in its base64 encoding.
func GenerateKey() (string, error) {
	var key fernet.Key
	if err := key.Generate(); err != nil {
		return "", fmt.Errorf("failed to generate token key: %w", err)
	}
	return key.Encode(), nil
}

package signedtoken

import (
	"context"
	"crypto/ed25519"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
	"time"

	"parcelhub/contexts/identity-access/auth-gate/domain/entities"
	domainerrors "parcelhub/contexts/identity-access/auth-gate/domain/errors"
	"parcelhub/contexts/identity-access/auth-gate/ports"
)

const signatureSize = ed25519.SignatureSize

// Claims is the CBOR payload carried inside a token. Integer keys keep the
// encoding compact; the trailing 64 bytes of a token are the Ed25519
// signature over these bytes.
type Claims struct {
	Subject   string `cbor:"1,keyasint"`
	Audience  string `cbor:"2,keyasint"`
	ID        string `cbor:"3,keyasint"`
	IssuedAt  int64  `cbor:"4,keyasint"`
	ExpiresAt int64  `cbor:"5,keyasint"`
}

// Mint encodes and signs claims, returning the base64url bearer string.
func Mint(privateKey ed25519.PrivateKey, claims Claims) (string, error) {
	if len(privateKey) != ed25519.PrivateKeySize {
		return "", errors.New("signedtoken: invalid private key size")
	}
	payload, err := encMode.Marshal(claims)
	if err != nil {
		return "", fmt.Errorf("signedtoken: encoding claims: %w", err)
	}
	signature := ed25519.Sign(privateKey, payload)

	raw := make([]byte, len(payload)+signatureSize)
	copy(raw, payload)
	copy(raw[len(payload):], signature)
	return base64.RawURLEncoding.EncodeToString(raw), nil
}

// ParsePublicKey decodes a base64 (std or url, padded or raw) Ed25519 key.
func ParsePublicKey(encoded string) (ed25519.PublicKey, error) {
	raw, err := decodeBase64(strings.TrimSpace(encoded))
	if err != nil {
		return nil, fmt.Errorf("signedtoken: decoding public key: %w", err)
	}
	if len(raw) != ed25519.PublicKeySize {
		return nil, fmt.Errorf("signedtoken: public key must be %d bytes, got %d", ed25519.PublicKeySize, len(raw))
	}
	return ed25519.PublicKey(raw), nil
}

// ParsePrivateKey decodes a base64 Ed25519 private key or 32-byte seed.
func ParsePrivateKey(encoded string) (ed25519.PrivateKey, error) {
	raw, err := decodeBase64(strings.TrimSpace(encoded))
	if err != nil {
		return nil, fmt.Errorf("signedtoken: decoding private key: %w", err)
	}
	switch len(raw) {
	case ed25519.SeedSize:
		return ed25519.NewKeyFromSeed(raw), nil
	case ed25519.PrivateKeySize:
		return ed25519.PrivateKey(raw), nil
	default:
		return nil, fmt.Errorf("signedtoken: private key must be %d or %d bytes, got %d",
			ed25519.SeedSize, ed25519.PrivateKeySize, len(raw))
	}
}

// Verifier implements ports.IdentityVerifier for Ed25519-signed tokens.
type Verifier struct {
	PublicKey ed25519.PublicKey
	Audience  string
	Blacklist *Blacklist
	Clock     ports.Clock
}

func (v Verifier) Verify(_ context.Context, token string) (entities.VerifiedIdentity, error) {
	raw, err := base64.RawURLEncoding.DecodeString(strings.TrimSpace(token))
	if err != nil {
		return entities.VerifiedIdentity{}, fmt.Errorf("%w: malformed encoding", domainerrors.ErrInvalidCredential)
	}
	if len(raw) <= signatureSize {
		return entities.VerifiedIdentity{}, fmt.Errorf("%w: token too short", domainerrors.ErrInvalidCredential)
	}

	split := len(raw) - signatureSize
	payload, signature := raw[:split], raw[split:]
	if !ed25519.Verify(v.PublicKey, payload, signature) {
		return entities.VerifiedIdentity{}, fmt.Errorf("%w: bad signature", domainerrors.ErrInvalidCredential)
	}

	var claims Claims
	if err := decMode.Unmarshal(payload, &claims); err != nil {
		return entities.VerifiedIdentity{}, fmt.Errorf("%w: decoding claims: %w", domainerrors.ErrInvalidCredential, err)
	}

	now := v.now()
	if now.Unix() >= claims.ExpiresAt {
		return entities.VerifiedIdentity{}, fmt.Errorf("%w: %w", domainerrors.ErrInvalidCredential, domainerrors.ErrTokenExpired)
	}
	if v.Audience != "" && claims.Audience != v.Audience {
		return entities.VerifiedIdentity{}, fmt.Errorf("%w: %w: got %q", domainerrors.ErrInvalidCredential, domainerrors.ErrAudienceMismatch, claims.Audience)
	}
	if v.Blacklist != nil && claims.ID != "" && v.Blacklist.IsRevoked(claims.ID) {
		return entities.VerifiedIdentity{}, fmt.Errorf("%w: %w", domainerrors.ErrInvalidCredential, domainerrors.ErrTokenRevoked)
	}
	if strings.TrimSpace(claims.Subject) == "" {
		return entities.VerifiedIdentity{}, fmt.Errorf("%w: empty subject", domainerrors.ErrInvalidCredential)
	}

	return entities.VerifiedIdentity{
		Subject:   entities.NormalizeSubject(claims.Subject),
		TokenID:   claims.ID,
		Audience:  claims.Audience,
		IssuedAt:  time.Unix(claims.IssuedAt, 0).UTC(),
		ExpiresAt: time.Unix(claims.ExpiresAt, 0).UTC(),
	}, nil
}

func (v Verifier) now() time.Time {
	if v.Clock == nil {
		return time.Now().UTC()
	}
	return v.Clock.Now().UTC()
}

func decodeBase64(value string) ([]byte, error) {
	encodings := []*base64.Encoding{
		base64.StdEncoding,
		base64.RawStdEncoding,
		base64.URLEncoding,
		base64.RawURLEncoding,
	}
	var lastErr error
	for _, enc := range encodings {
		raw, err := enc.DecodeString(value)
		if err == nil {
			return raw, nil
		}
		lastErr = err
	}
	return nil, lastErr
}

package signedtoken

import (
	"context"
	"crypto/ed25519"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"testing"
	"time"

	domainerrors "parcelhub/contexts/identity-access/auth-gate/domain/errors"
)

type fixedClock struct{ now time.Time }

func (c fixedClock) Now() time.Time { return c.now }

func newKeys(t *testing.T) (ed25519.PublicKey, ed25519.PrivateKey) {
	t.Helper()
	public, private, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		t.Fatalf("generate key failed: %v", err)
	}
	return public, private
}

func TestMintVerifyRoundTrip(t *testing.T) {
	public, private := newKeys(t)
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	token, err := Mint(private, Claims{
		Subject:   "Rider@Example.com",
		Audience:  "parcelhub",
		ID:        "tok-1",
		IssuedAt:  now.Unix(),
		ExpiresAt: now.Add(time.Hour).Unix(),
	})
	if err != nil {
		t.Fatalf("mint failed: %v", err)
	}

	verifier := Verifier{PublicKey: public, Audience: "parcelhub", Clock: fixedClock{now: now}}
	identity, err := verifier.Verify(context.Background(), token)
	if err != nil {
		t.Fatalf("verify failed: %v", err)
	}
	if identity.Subject != "rider@example.com" {
		t.Fatalf("unexpected subject %s", identity.Subject)
	}
	if identity.TokenID != "tok-1" {
		t.Fatalf("unexpected token id %s", identity.TokenID)
	}
}

func TestVerifyRejectsExpiredToken(t *testing.T) {
	public, private := newKeys(t)
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	token, _ := Mint(private, Claims{Subject: "a@x.com", Audience: "parcelhub", ExpiresAt: now.Unix()})

	_, err := Verifier{PublicKey: public, Clock: fixedClock{now: now}}.Verify(context.Background(), token)
	if !errors.Is(err, domainerrors.ErrTokenExpired) {
		t.Fatalf("expected expired, got %v", err)
	}
	if !errors.Is(err, domainerrors.ErrInvalidCredential) {
		t.Fatalf("expected invalid credential, got %v", err)
	}
}

func TestVerifyRejectsForeignSignature(t *testing.T) {
	_, private := newKeys(t)
	otherPublic, _ := newKeys(t)
	now := time.Now().UTC()
	token, _ := Mint(private, Claims{Subject: "a@x.com", ExpiresAt: now.Add(time.Hour).Unix()})

	_, err := Verifier{PublicKey: otherPublic}.Verify(context.Background(), token)
	if !errors.Is(err, domainerrors.ErrInvalidCredential) {
		t.Fatalf("expected invalid credential, got %v", err)
	}
}

func TestVerifyRejectsTamperedPayload(t *testing.T) {
	public, private := newKeys(t)
	token, _ := Mint(private, Claims{Subject: "a@x.com", ExpiresAt: time.Now().Add(time.Hour).Unix()})

	raw, _ := base64.RawURLEncoding.DecodeString(token)
	raw[0] ^= 0xFF
	tampered := base64.RawURLEncoding.EncodeToString(raw)

	if _, err := (Verifier{PublicKey: public}).Verify(context.Background(), tampered); !errors.Is(err, domainerrors.ErrInvalidCredential) {
		t.Fatalf("expected invalid credential, got %v", err)
	}
}

func TestVerifyRejectsAudienceAndRevocation(t *testing.T) {
	public, private := newKeys(t)
	expires := time.Now().Add(time.Hour)
	token, _ := Mint(private, Claims{Subject: "a@x.com", Audience: "other", ID: "tok-9", ExpiresAt: expires.Unix()})

	if _, err := (Verifier{PublicKey: public, Audience: "parcelhub"}).Verify(context.Background(), token); !errors.Is(err, domainerrors.ErrAudienceMismatch) {
		t.Fatalf("expected audience mismatch, got %v", err)
	}

	blacklist := NewBlacklist()
	blacklist.Revoke("tok-9", expires)
	if _, err := (Verifier{PublicKey: public, Blacklist: blacklist}).Verify(context.Background(), token); !errors.Is(err, domainerrors.ErrTokenRevoked) {
		t.Fatalf("expected revoked, got %v", err)
	}
	if removed := blacklist.Cleanup(expires.Add(time.Second)); removed != 1 {
		t.Fatalf("expected one entry cleaned up, got %d", removed)
	}
}

func TestParseKeys(t *testing.T) {
	public, private := newKeys(t)

	parsedPublic, err := ParsePublicKey(base64.StdEncoding.EncodeToString(public))
	if err != nil || !parsedPublic.Equal(public) {
		t.Fatalf("parse public key failed: %v", err)
	}
	parsedPrivate, err := ParsePrivateKey(base64.RawURLEncoding.EncodeToString(private.Seed()))
	if err != nil || !parsedPrivate.Equal(private) {
		t.Fatalf("parse private seed failed: %v", err)
	}
	if _, err := ParsePublicKey("c2hvcnQ"); err == nil {
		t.Fatal("expected short public key to fail")
	}
}

package application

import (
	"context"
	"errors"
	"testing"

	"parcelhub/contexts/identity-access/auth-gate/adapters/memory"
	"parcelhub/contexts/identity-access/auth-gate/domain/entities"
	domainerrors "parcelhub/contexts/identity-access/auth-gate/domain/errors"
)

type countingVerifier struct {
	calls int
	inner *memory.StaticVerifier
}

func (c *countingVerifier) Verify(ctx context.Context, token string) (entities.VerifiedIdentity, error) {
	c.calls++
	return c.inner.Verify(ctx, token)
}

func TestAuthorizeMissingHeaderSkipsVerifier(t *testing.T) {
	verifier := &countingVerifier{inner: memory.NewStaticVerifier(map[string]string{"tok-a": "a@x.com"})}
	guard := Guard{Verifier: verifier}

	for _, header := range []string{"", "Bearer", "Bearer   ", "Basic tok-a", "tok-a"} {
		_, _, err := guard.Authorize(context.Background(), header)
		if !errors.Is(err, domainerrors.ErrUnauthenticated) {
			t.Fatalf("header %q: expected unauthenticated, got %v", header, err)
		}
	}
	if verifier.calls != 0 {
		t.Fatalf("expected verifier not to be called, got %d calls", verifier.calls)
	}
}

func TestAuthorizeInvalidTokenIsForbidden(t *testing.T) {
	guard := Guard{Verifier: memory.NewStaticVerifier(map[string]string{"tok-a": "a@x.com"})}

	_, _, err := guard.Authorize(context.Background(), "Bearer nope")
	if !errors.Is(err, domainerrors.ErrForbidden) {
		t.Fatalf("expected forbidden, got %v", err)
	}
	if !errors.Is(err, domainerrors.ErrInvalidCredential) {
		t.Fatalf("expected invalid credential cause, got %v", err)
	}
}

func TestAuthorizeBindsIdentity(t *testing.T) {
	guard := Guard{Verifier: memory.NewStaticVerifier(map[string]string{"tok-a": "A@X.com"})}

	ctx, identity, err := guard.Authorize(context.Background(), "bearer tok-a")
	if err != nil {
		t.Fatalf("authorize failed: %v", err)
	}
	if identity.Subject != "a@x.com" {
		t.Fatalf("unexpected subject %s", identity.Subject)
	}
	bound, ok := IdentityFromContext(ctx)
	if !ok || bound.Subject != identity.Subject {
		t.Fatalf("expected identity bound to context, got %+v ok=%v", bound, ok)
	}
}

func TestRequireSubjectRejectsOtherOwner(t *testing.T) {
	guard := Guard{Verifier: memory.NewStaticVerifier(map[string]string{"tok-b": "b@x.com"})}
	_, identity, err := guard.Authorize(context.Background(), "Bearer tok-b")
	if err != nil {
		t.Fatalf("authorize failed: %v", err)
	}

	if err := guard.RequireSubject(identity, "a@x.com"); !errors.Is(err, domainerrors.ErrForbidden) {
		t.Fatalf("expected forbidden for other subject, got %v", err)
	}
	if err := guard.RequireSubject(identity, " B@X.COM "); err != nil {
		t.Fatalf("expected own subject to pass, got %v", err)
	}
	if err := guard.RequireSubject(identity, ""); !errors.Is(err, domainerrors.ErrForbidden) {
		t.Fatalf("expected forbidden for empty subject, got %v", err)
	}
}

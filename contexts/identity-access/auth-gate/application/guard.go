package application

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"parcelhub/contexts/identity-access/auth-gate/domain/entities"
	domainerrors "parcelhub/contexts/identity-access/auth-gate/domain/errors"
	"parcelhub/contexts/identity-access/auth-gate/ports"
)

type identityKey struct{}

// Guard authenticates callers from an Authorization header value.
type Guard struct {
	Verifier ports.IdentityVerifier
	Logger   *slog.Logger
}

// Authorize validates "Bearer <token>" and returns a context carrying the
// verified identity. A missing or malformed header fails with
// ErrUnauthenticated before the verifier is consulted; a verifier failure
// fails with ErrForbidden.
func (g Guard) Authorize(
	ctx context.Context,
	authorizationHeader string,
) (context.Context, entities.VerifiedIdentity, error) {
	logger := ResolveLogger(g.Logger)

	token, ok := parseBearer(authorizationHeader)
	if !ok {
		return ctx, entities.VerifiedIdentity{}, domainerrors.ErrUnauthenticated
	}

	identity, err := g.Verifier.Verify(ctx, token)
	if err != nil {
		logger.Warn("credential verification failed",
			"event", "auth_gate_verify_failed",
			"module", "identity-access/auth-gate",
			"layer", "application",
			"error", err.Error(),
		)
		return ctx, entities.VerifiedIdentity{}, fmt.Errorf("%w: %w", domainerrors.ErrForbidden, err)
	}
	if strings.TrimSpace(identity.Subject) == "" {
		return ctx, entities.VerifiedIdentity{}, fmt.Errorf("%w: %w", domainerrors.ErrForbidden, domainerrors.ErrInvalidCredential)
	}

	logger.Debug("credential verified",
		"event", "auth_gate_verified",
		"module", "identity-access/auth-gate",
		"layer", "application",
		"subject", identity.Subject,
		"token_id", identity.TokenID,
	)
	return WithIdentity(ctx, identity), identity, nil
}

// RequireSubject is the ownership check: a verified identity may only act on
// resources belonging to its own subject.
func (g Guard) RequireSubject(identity entities.VerifiedIdentity, subject string) error {
	if identity.Owns(subject) {
		return nil
	}
	ResolveLogger(g.Logger).Warn("ownership check failed",
		"event", "auth_gate_ownership_denied",
		"module", "identity-access/auth-gate",
		"layer", "application",
		"subject", identity.Subject,
		"target", subject,
	)
	return domainerrors.ErrForbidden
}

// WithIdentity binds a verified identity to ctx.
func WithIdentity(ctx context.Context, identity entities.VerifiedIdentity) context.Context {
	return context.WithValue(ctx, identityKey{}, identity)
}

// IdentityFromContext returns the identity bound by Authorize, if any.
func IdentityFromContext(ctx context.Context) (entities.VerifiedIdentity, bool) {
	identity, ok := ctx.Value(identityKey{}).(entities.VerifiedIdentity)
	return identity, ok
}

func parseBearer(header string) (string, bool) {
	parts := strings.SplitN(strings.TrimSpace(header), " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", false
	}
	token := strings.TrimSpace(parts[1])
	if token == "" {
		return "", false
	}
	return token, true
}

package ports

import (
	"context"
	"time"

	"parcelhub/contexts/identity-access/auth-gate/domain/entities"
)

// IdentityVerifier validates an opaque bearer token. Implementations return
// an error wrapping ErrInvalidCredential when the token cannot be trusted.
type IdentityVerifier interface {
	Verify(ctx context.Context, token string) (entities.VerifiedIdentity, error)
}

// Clock allows deterministic expiry checks in tests.
type Clock interface {
	Now() time.Time
}

package memory

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"parcelhub/contexts/identity-access/auth-gate/domain/entities"
	domainerrors "parcelhub/contexts/identity-access/auth-gate/domain/errors"
)

// StaticVerifier resolves bearer tokens from a fixed token->subject table.
// It backs local runs and tests; it is not a trust root.
type StaticVerifier struct {
	mu     sync.RWMutex
	tokens map[string]string
}

func NewStaticVerifier(tokens map[string]string) *StaticVerifier {
	copied := make(map[string]string, len(tokens))
	for token, subject := range tokens {
		copied[token] = subject
	}
	return &StaticVerifier{tokens: copied}
}

// Grant registers token for subject.
func (v *StaticVerifier) Grant(token string, subject string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.tokens[token] = subject
}

func (v *StaticVerifier) Verify(_ context.Context, token string) (entities.VerifiedIdentity, error) {
	v.mu.RLock()
	subject, ok := v.tokens[strings.TrimSpace(token)]
	v.mu.RUnlock()
	if !ok {
		return entities.VerifiedIdentity{}, fmt.Errorf("%w: unknown token", domainerrors.ErrInvalidCredential)
	}
	return entities.VerifiedIdentity{
		Subject: entities.NormalizeSubject(subject),
		TokenID: "static",
	}, nil
}

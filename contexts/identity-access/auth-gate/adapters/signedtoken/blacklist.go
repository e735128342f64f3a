package signedtoken

import (
	"sync"
	"time"
)

// Blacklist tracks revoked token ids until the tokens would have expired
// anyway; Cleanup drops entries past that point.
type Blacklist struct {
	mu      sync.RWMutex
	entries map[string]time.Time
}

func NewBlacklist() *Blacklist {
	return &Blacklist{entries: make(map[string]time.Time)}
}

func (b *Blacklist) Revoke(tokenID string, tokenExpiresAt time.Time) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.entries[tokenID] = tokenExpiresAt
}

func (b *Blacklist) IsRevoked(tokenID string) bool {
	b.mu.RLock()
	defer b.mu.RUnlock()
	_, exists := b.entries[tokenID]
	return exists
}

func (b *Blacklist) Cleanup(now time.Time) int {
	b.mu.Lock()
	defer b.mu.Unlock()

	removed := 0
	for tokenID, expiresAt := range b.entries {
		if !now.Before(expiresAt) {
			delete(b.entries, tokenID)
			removed++
		}
	}
	return removed
}

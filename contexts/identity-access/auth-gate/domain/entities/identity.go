package entities

import (
	"strings"
	"time"
)

// VerifiedIdentity is the claim set produced by a successful credential check.
type VerifiedIdentity struct {
	Subject   string
	TokenID   string
	Audience  string
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// NormalizeSubject canonicalizes an email-like subject for comparison.
func NormalizeSubject(subject string) string {
	return strings.ToLower(strings.TrimSpace(subject))
}

// Owns reports whether the identity's subject names the given owner.
func (v VerifiedIdentity) Owns(subject string) bool {
	owner := NormalizeSubject(subject)
	return owner != "" && NormalizeSubject(v.Subject) == owner
}

package repository

import (
	"sync"
	"time"
)

// refreshEntry is one stored refresh token. Only the SHA-256 hash of the
// raw token is kept; the raw value goes back to the client and is never
// stored.
type refreshEntry struct {
	userID    uint64
	expiresAt time.Time
	revoked   bool
}

// TokenRepo keeps refresh tokens in memory, keyed by their hash. Expired
// and revoked entries fail validation; a janitor is unnecessary because the
// store is bounded by session count and dies with the process.
type TokenRepo struct {
	mu      sync.Mutex
	entries map[string]*refreshEntry
}

// NewTokenRepo returns an empty token store.
func NewTokenRepo() *TokenRepo {
	return &TokenRepo{entries: make(map[string]*refreshEntry)}
}

// StoreRefresh records a token hash for the user with its expiry.
func (r *TokenRepo) StoreRefresh(userID uint64, hash string, expiresAt time.Time) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries[hash] = &refreshEntry{userID: userID, expiresAt: expiresAt}
}

// ValidateRefresh resolves a token hash into its user ID. Unknown, revoked
// or expired hashes fail with ErrTokenInvalid.
func (r *TokenRepo) ValidateRefresh(hash string) (uint64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.entries[hash]
	if !ok || e.revoked || time.Now().UTC().After(e.expiresAt) {
		return 0, ErrTokenInvalid
	}
	return e.userID, nil
}

// RevokeByHash invalidates a single token. Revoking an unknown hash is a
// no-op so logout is idempotent.
func (r *TokenRepo) RevokeByHash(hash string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if e, ok := r.entries[hash]; ok {
		e.revoked = true
	}
}

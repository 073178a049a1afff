package repository

import "sync"

// TokenRepo is the session table: a mapping from issued opaque token to
// the owning user id.  Multiple tokens may map to the same user; there is
// no single-session enforcement and no expiry.  A binding lives until an
// explicit logout or process restart.
type TokenRepo struct {
	mu     sync.RWMutex
	tokens map[string]uint64
}

func NewTokenRepo() *TokenRepo {
	return &TokenRepo{tokens: make(map[string]uint64)}
}

// Bind associates the token with the user id.
func (r *TokenRepo) Bind(token string, userID uint64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.tokens[token] = userID
}

// Resolve returns the user id a token is bound to.
func (r *TokenRepo) Resolve(token string) (uint64, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	id, ok := r.tokens[token]
	return id, ok
}

// Exists reports whether the token is currently bound.
func (r *TokenRepo) Exists(token string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.tokens[token]
	return ok
}

// Revoke removes the binding and reports whether it was present.
func (r *TokenRepo) Revoke(token string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.tokens[token]; !ok {
		return false
	}
	delete(r.tokens, token)
	return true
}

package services

import (
	"sync"
	"time"
)

// oauthStateStore remembers state tokens issued to the identity provider
// so callbacks can be checked against them. Entries are single use and
// expire after the TTL.
type oauthStateStore struct {
	mu     sync.Mutex
	ttl    time.Duration
	now    func() time.Time
	issued map[string]time.Time
}

func newOAuthStateStore(ttl time.Duration) *oauthStateStore {
	return &oauthStateStore{
		ttl:    ttl,
		now:    time.Now,
		issued: make(map[string]time.Time),
	}
}

func (s *oauthStateStore) Put(state string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.prune()
	s.issued[state] = s.now()
}

// Consume reports whether state was issued here and is still fresh,
// removing it either way.
func (s *oauthStateStore) Consume(state string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	issuedAt, ok := s.issued[state]
	if !ok {
		return false
	}
	delete(s.issued, state)
	return s.now().Sub(issuedAt) <= s.ttl
}

func (s *oauthStateStore) prune() {
	cutoff := s.now().Add(-s.ttl)
	for state, issuedAt := range s.issued {
		if issuedAt.Before(cutoff) {
			delete(s.issued, state)
		}
	}
}

package session

import "sync"

// MemoryTokenStore keeps the session token in memory. It stands in for
// platform keychain storage and backs tests.
type MemoryTokenStore struct {
	mu    sync.Mutex
	token string
	set   bool
}

// Load implements TokenStore.
func (s *MemoryTokenStore) Load() (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token, s.set
}

// Save implements TokenStore.
func (s *MemoryTokenStore) Save(token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
	s.set = true
	return nil
}

// Clear implements TokenStore.
func (s *MemoryTokenStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = ""
	s.set = false
	return nil
}

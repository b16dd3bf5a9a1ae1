package interview

import (
	"sync"

	"github.com/google/uuid"
)

// sessionLocks provides per-session mutual exclusion so two racing
// submissions against the same question cannot both pass the
// AlreadyAnswered check. Locks are created lazily and never reclaimed;
// session counts are small and bounded by candidate quotas.
type sessionLocks struct {
	mu    sync.Mutex
	locks map[uuid.UUID]*sync.Mutex
}

func newSessionLocks() *sessionLocks {
	return &sessionLocks{locks: make(map[uuid.UUID]*sync.Mutex)}
}

// acquire locks the mutex for a session and returns the unlock function.
func (s *sessionLocks) acquire(sessionID uuid.UUID) func() {
	s.mu.Lock()
	lock, ok := s.locks[sessionID]
	if !ok {
		lock = &sync.Mutex{}
		s.locks[sessionID] = lock
	}
	s.mu.Unlock()

	lock.Lock()
	return lock.Unlock
}

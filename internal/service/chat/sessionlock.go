package chat

import "sync"

// sessionLocks serializes chat turns per session id. Without it, two
// concurrent submits to the same session interleave their user/assistant
// message pairs in store-timestamp order.
//
// Lock entries are reference-counted and removed when the last holder
// releases, so the map does not grow with the number of sessions ever seen.
type sessionLocks struct {
	mu      sync.Mutex
	entries map[string]*lockEntry
}

type lockEntry struct {
	mu   sync.Mutex
	refs int
}

func newSessionLocks() *sessionLocks {
	return &sessionLocks{entries: make(map[string]*lockEntry)}
}

// Acquire blocks until the per-session lock is held and returns the release
// function. The caller must invoke release exactly once.
func (l *sessionLocks) Acquire(sessionID string) (release func()) {
	l.mu.Lock()
	entry, ok := l.entries[sessionID]
	if !ok {
		entry = &lockEntry{}
		l.entries[sessionID] = entry
	}
	entry.refs++
	l.mu.Unlock()

	entry.mu.Lock()

	return func() {
		entry.mu.Unlock()

		l.mu.Lock()
		entry.refs--
		if entry.refs == 0 {
			delete(l.entries, sessionID)
		}
		l.mu.Unlock()
	}
}

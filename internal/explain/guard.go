package explain

import "sync"

// Latest is a per-session last-write-wins guard. A caregiver who taps
// "regenerate" while a previous request is still in flight gets only the
// newest result; the stale response is dropped when it lands.
type Latest struct {
	mu      sync.Mutex
	issued  uint64
	applied uint64
}

// Next reserves a sequence number for a new generation attempt.
func (l *Latest) Next() uint64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.issued++
	return l.issued
}

// Apply reports whether the result carrying seq is still the newest and, if
// so, records it. Results from superseded attempts return false.
func (l *Latest) Apply(seq uint64) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	if seq < l.issued || seq <= l.applied {
		return false
	}
	l.applied = seq
	return true
}

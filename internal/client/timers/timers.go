// Package timers tracks delayed callbacks so an owner can cancel them all
// when it is torn down. It exists so deferred UI actions (message auto-clear,
// delayed forced logout) never fire against a closed view.
package timers

import (
	"sync"
	"time"
)

// Set is a collection of outstanding timers with a single Stop switch.
// A stopped Set silently drops any further AfterFunc calls.
type Set struct {
	mu      sync.Mutex
	active  map[*time.Timer]struct{}
	stopped bool
}

func NewSet() *Set {
	return &Set{active: make(map[*time.Timer]struct{})}
}

// AfterFunc schedules fn to run after d. The timer is tracked until it
// fires or the set is stopped. Returns false if the set is already stopped.
func (s *Set) AfterFunc(d time.Duration, fn func()) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.stopped {
		return false
	}

	var t *time.Timer
	t = time.AfterFunc(d, func() {
		s.remove(t)
		fn()
	})
	s.active[t] = struct{}{}
	return true
}

// Stop cancels every outstanding timer and marks the set stopped.
// Safe to call more than once.
func (s *Set) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stopped = true
	for t := range s.active {
		t.Stop()
		delete(s.active, t)
	}
}

// Pending reports the number of timers that have not fired yet.
func (s *Set) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.active)
}

func (s *Set) remove(t *time.Timer) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.active, t)
}

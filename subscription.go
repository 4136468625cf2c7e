package delegate

import "sync"

// Subscription represents a target registered through Subscribe.
// Call Close() to unregister it.
type Subscription struct {
	remove func()
	once   sync.Once
}

func newSubscription(remove func()) *Subscription {
	return &Subscription{remove: remove}
}

// Close removes the subscribed target. Safe to call multiple times.
//
// Removal is by identity: if the same target was also registered with Add,
// Close unregisters that registration too.
func (s *Subscription) Close() {
	s.once.Do(s.remove)
}

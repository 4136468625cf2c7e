package delegate

import "sync"

// Locked is a Delegate guarded by a read-write mutex.
//
// Invoke copies the target list under the read lock and calls the targets
// after releasing it, so a target may register or remove targets on the same
// Locked without deadlocking. Such changes apply from the next Invoke.
type Locked[A, R any] struct {
	d  *Delegate[A, R]
	mu sync.RWMutex
}

// NewLocked creates an empty Locked delegate.
func NewLocked[A, R any](opts ...Option) *Locked[A, R] {
	return &Locked[A, R]{d: New[A, R](opts...)}
}

// Add registers t unless an equal target is already registered.
func (l *Locked[A, R]) Add(t Target[A, R]) *Locked[A, R] {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.d.Add(t)
	return l
}

// Remove unregisters the target equal to t.
func (l *Locked[A, R]) Remove(t Target[A, R]) *Locked[A, R] {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.d.Remove(t)
	return l
}

// Replace drops every registered target and leaves t as the only one.
func (l *Locked[A, R]) Replace(t Target[A, R]) *Locked[A, R] {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.d.Replace(t)
	return l
}

// Subscribe adds t and returns a Subscription that removes it again.
func (l *Locked[A, R]) Subscribe(t Target[A, R]) *Subscription {
	l.Add(t)
	return newSubscription(func() { l.Remove(t) })
}

// Invoke calls every target registered at the time of the call, in order.
func (l *Locked[A, R]) Invoke(arg A) {
	// Copy the delegate while holding the lock to prevent a data race
	l.mu.RLock()
	snapshot := l.d.Clone()
	l.mu.RUnlock()

	snapshot.Invoke(arg)
}

// Len returns the number of registered targets.
func (l *Locked[A, R]) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.d.Len()
}

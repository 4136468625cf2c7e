package delegate

import "slices"

// Delegate is an ordered set of targets sharing the signature func(A) R.
//
// No two registered targets are Equal, and Invoke calls targets in the order
// they were added. The zero value is an empty Delegate with no logging and
// no panic handler.
type Delegate[A, R any] struct {
	targets []Target[A, R]
	opts    options
}

// New creates an empty Delegate.
func New[A, R any](opts ...Option) *Delegate[A, R] {
	return &Delegate[A, R]{opts: newOptions(opts)}
}

// From creates a Delegate holding t as its only target.
func From[A, R any](t Target[A, R], opts ...Option) *Delegate[A, R] {
	return New[A, R](opts...).Add(t)
}

// Add appends t unless an equal target is already registered.
// Adding the same target twice is a no-op. A nil target is ignored.
func (d *Delegate[A, R]) Add(t Target[A, R]) *Delegate[A, R] {
	if t == nil {
		return d
	}
	if d.indexOf(t) >= 0 {
		d.opts.logger.Debug().Stringer("target", t).Msg("duplicate ignored")
		return d
	}
	d.targets = append(d.targets, t)
	d.opts.logger.Debug().Stringer("target", t).Int("targets", len(d.targets)).Msg("added")
	return d
}

// Remove unregisters the target equal to t, keeping the order of the rest.
// Removing a target that was never added is a no-op.
func (d *Delegate[A, R]) Remove(t Target[A, R]) *Delegate[A, R] {
	if t == nil {
		return d
	}
	i := d.indexOf(t)
	if i < 0 {
		d.opts.logger.Debug().Stringer("target", t).Msg("not registered")
		return d
	}
	// Build a fresh slice so an Invoke in progress keeps its snapshot intact.
	d.targets = slices.Concat(d.targets[:i], d.targets[i+1:])
	d.opts.logger.Debug().Stringer("target", t).Int("targets", len(d.targets)).Msg("removed")
	return d
}

// Replace drops every registered target and leaves t as the only one.
// Unlike Add, nothing is merged. A nil t leaves the Delegate empty.
func (d *Delegate[A, R]) Replace(t Target[A, R]) *Delegate[A, R] {
	dropped := len(d.targets)
	d.targets = nil
	if t != nil {
		d.targets = []Target[A, R]{t}
	}
	d.opts.logger.Debug().Stringer("target", t).Int("dropped", dropped).Msg("replaced")
	return d
}

// Invoke calls every target in registration order with arg.
// Results are discarded. Targets see each other's changes to arg when it
// has reference semantics. Registrations changed by a target during Invoke
// apply from the next Invoke on.
func (d *Delegate[A, R]) Invoke(arg A) {
	for _, t := range d.targets {
		d.call(t, arg)
	}
}

func (d *Delegate[A, R]) call(t Target[A, R], arg A) {
	d.opts.logger.Trace().Stringer("target", t).Msg("invoke")

	if d.opts.panicHandler != nil {
		defer func() {
			if r := recover(); r != nil {
				d.opts.logger.Error().Stringer("target", t).Interface("panic", r).Msg("target panicked")
				d.opts.panicHandler(t.String(), r)
			}
		}()
	}

	t.Invoke(arg)
}

// Len returns the number of registered targets.
func (d *Delegate[A, R]) Len() int {
	return len(d.targets)
}

// Contains reports whether a target equal to t is registered.
func (d *Delegate[A, R]) Contains(t Target[A, R]) bool {
	return t != nil && d.indexOf(t) >= 0
}

// Targets returns the registered targets in invocation order.
// Returns a copy; modifications don't affect the Delegate.
func (d *Delegate[A, R]) Targets() []Target[A, R] {
	return slices.Clone(d.targets)
}

// Clear removes every target.
func (d *Delegate[A, R]) Clear() {
	d.targets = nil
}

// Clone returns a Delegate with the same options and the same target
// instances. Later changes to either Delegate don't affect the other.
func (d *Delegate[A, R]) Clone() *Delegate[A, R] {
	return &Delegate[A, R]{
		targets: slices.Clone(d.targets),
		opts:    d.opts,
	}
}

// Subscribe adds t and returns a Subscription that removes it again.
func (d *Delegate[A, R]) Subscribe(t Target[A, R]) *Subscription {
	d.Add(t)
	return newSubscription(func() { d.Remove(t) })
}

func (d *Delegate[A, R]) indexOf(t Target[A, R]) int {
	return slices.IndexFunc(d.targets, func(existing Target[A, R]) bool {
		return existing.Equal(t)
	})
}

// Package delegate provides type-safe multicast delegates for Go.
//
// A Delegate is an ordered set of call targets sharing one signature. Targets
// are plain functions or methods bound to a receiver, and both kinds can live
// in the same Delegate. Registering a target twice is a no-op, removal is by
// identity, and Invoke calls every target in registration order.
//
// Go has no variadic type parameters, so a signature is expressed by its
// argument type A and result type R. Use a struct for several arguments and
// Unit where there is nothing to pass or return.
//
// Quick example:
//
//	d := delegate.New[delegate.Unit, delegate.Unit]()
//	d.Add(delegate.Action(flush)).
//	    Add(delegate.Action(notify)).
//	    Add(delegate.Must(delegate.ActionMethod(srv, (*Server).Reload)))
//
//	d.Invoke(delegate.Unit{}) // flush, notify, srv.Reload
//
// A Delegate is not safe for concurrent use. Wrap it in a Locked when
// targets are registered or invoked from several goroutines.
package delegate

// Unit is the empty argument or result.
type Unit = struct{}

// Target is one call target erased behind a uniform interface.
// Obtain targets from Func, Handler, Action, Method, HandlerMethod or
// ActionMethod; the concrete kinds are not exported.
type Target[A, R any] interface {
	// Invoke calls the wrapped function or method with arg.
	Invoke(arg A) R

	// Equal reports whether other wraps the same function, or the same
	// method on the same receiver. Targets of different kinds never match.
	Equal(other Target[A, R]) bool

	// String returns a readable name for logs.
	String() string
}

// PanicHandler is called when a target panics during Invoke.
// Receives the name of the target and the recovered panic value.
type PanicHandler func(target string, recovered any)

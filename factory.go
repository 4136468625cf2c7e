package delegate

import "errors"

var (
	// ErrNilReceiver is returned when a method target is built without a receiver.
	ErrNilReceiver = errors.New("delegate: nil receiver")

	// ErrNilMethod is returned when a method target is built without a method.
	ErrNilMethod = errors.New("delegate: nil method")

	// ErrNilFunc is the panic value of Func, Handler and Action given a nil function.
	ErrNilFunc = errors.New("delegate: nil function")
)

// Func wraps a plain function with signature func(A) R.
//
// Identity is the function's code, not its captured state. Closures made
// from one function literal are the same target, so adding them in a loop
// keeps only the first. Method values such as g.Hello carry no receiver
// identity either: every receiver's Hello is the same target. When each
// registration must stay separate, bind a distinct receiver with Method.
func Func[A, R any](fn func(A) R) Target[A, R] {
	if fn == nil {
		panic(ErrNilFunc)
	}
	return &staticTarget[A, R]{call: fn, fn: codePointer(fn)}
}

// Handler wraps a function that takes an argument and returns nothing.
// Identity follows the same rule as Func: closures from one function literal
// are the same target. Use HandlerMethod with distinct receivers to keep
// registrations apart.
func Handler[A any](fn func(A)) Target[A, Unit] {
	if fn == nil {
		panic(ErrNilFunc)
	}
	return &staticTarget[A, Unit]{
		call: func(arg A) Unit {
			fn(arg)
			return Unit{}
		},
		fn: codePointer(fn),
	}
}

// Action wraps a function that takes and returns nothing.
// Identity follows the same rule as Func: closures from one function literal
// are the same target. Use ActionMethod with distinct receivers to keep
// registrations apart.
func Action(fn func()) Target[Unit, Unit] {
	if fn == nil {
		panic(ErrNilFunc)
	}
	return &staticTarget[Unit, Unit]{
		call: func(Unit) Unit {
			fn()
			return Unit{}
		},
		fn: codePointer(fn),
	}
}

// Method binds the method expression m, e.g. (*Server).Handle, to recv.
// Two method targets are equal when both receiver pointer and method match.
//
// Pointers to distinct zero-size values (struct{}, empty structs) may be
// equal in Go, so receivers of a zero-size type cannot be told apart and
// binding the same method to two of them yields one target. Give the type a
// field when each receiver needs its own registration.
func Method[T, A, R any](recv *T, m func(*T, A) R) (Target[A, R], error) {
	if err := checkBound(recv, m == nil); err != nil {
		return nil, err
	}
	return &boundTarget[T, A, R]{
		recv:   recv,
		call:   func(arg A) R { return m(recv, arg) },
		method: codePointer(m),
	}, nil
}

// HandlerMethod binds a method that takes an argument and returns nothing.
// Receivers are compared as in Method, including the zero-size caveat.
func HandlerMethod[T, A any](recv *T, m func(*T, A)) (Target[A, Unit], error) {
	if err := checkBound(recv, m == nil); err != nil {
		return nil, err
	}
	return &boundTarget[T, A, Unit]{
		recv: recv,
		call: func(arg A) Unit {
			m(recv, arg)
			return Unit{}
		},
		method: codePointer(m),
	}, nil
}

// ActionMethod binds a method that takes and returns nothing.
// Receivers are compared as in Method, including the zero-size caveat.
func ActionMethod[T any](recv *T, m func(*T)) (Target[Unit, Unit], error) {
	if err := checkBound(recv, m == nil); err != nil {
		return nil, err
	}
	return &boundTarget[T, Unit, Unit]{
		recv: recv,
		call: func(Unit) Unit {
			m(recv)
			return Unit{}
		},
		method: codePointer(m),
	}, nil
}

// Must returns t, panicking if err is non-nil.
// Intended for package-level setup where the receiver is known to exist.
func Must[A, R any](t Target[A, R], err error) Target[A, R] {
	if err != nil {
		panic(err)
	}
	return t
}

func checkBound[T any](recv *T, nilMethod bool) error {
	if recv == nil {
		return ErrNilReceiver
	}
	if nilMethod {
		return ErrNilMethod
	}
	return nil
}

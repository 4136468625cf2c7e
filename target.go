package delegate

import (
	"fmt"
	"reflect"
	"runtime"
)

// staticTarget wraps a plain function.
type staticTarget[A, R any] struct {
	call func(A) R
	fn   uintptr // code pointer of the function the caller registered
}

func (s *staticTarget[A, R]) Invoke(arg A) R {
	return s.call(arg)
}

func (s *staticTarget[A, R]) Equal(other Target[A, R]) bool {
	o, ok := other.(*staticTarget[A, R])
	if !ok || o == nil {
		return false
	}
	return s.fn == o.fn
}

func (s *staticTarget[A, R]) String() string {
	return funcName(s.fn)
}

// boundTarget wraps a method expression bound to a receiver.
// The receiver stays reachable for as long as the target is.
type boundTarget[T, A, R any] struct {
	recv   *T
	call   func(A) R
	method uintptr // code pointer of the method expression
}

func (b *boundTarget[T, A, R]) Invoke(arg A) R {
	return b.call(arg)
}

func (b *boundTarget[T, A, R]) Equal(other Target[A, R]) bool {
	o, ok := other.(*boundTarget[T, A, R])
	if !ok || o == nil {
		return false
	}
	return b.recv == o.recv && b.method == o.method
}

func (b *boundTarget[T, A, R]) String() string {
	return fmt.Sprintf("%s@%p", funcName(b.method), b.recv)
}

// codePointer returns the entry address of fn.
// Closures created from one function literal share an entry address,
// so they are the same target as far as identity is concerned.
func codePointer(fn any) uintptr {
	return reflect.ValueOf(fn).Pointer()
}

func funcName(pc uintptr) string {
	if f := runtime.FuncForPC(pc); f != nil {
		return f.Name()
	}
	return fmt.Sprintf("func@%#x", pc)
}

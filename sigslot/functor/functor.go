package functor

import (
	"github.com/krew-solutions/sigslot-go/sigslot/trackable"
)

// --- Function form ---

type funcFunctor[A, R any] struct {
	fn func(A) (R, error)
}

// FromFunc adapts a context-free function. Arguments are forwarded unchanged.
func FromFunc[A, R any](fn func(A) (R, error)) Functor[A, R] {
	if fn == nil {
		panic("functor: FromFunc with nil function")
	}
	return funcFunctor[A, R]{fn: fn}
}

func (f funcFunctor[A, R]) Invoke(arg A) (R, error) {
	return f.fn(arg)
}

func (f funcFunctor[A, R]) Target() (trackable.Trackable, bool) {
	return nil, false
}

// FromProc adapts a function that produces no value.
func FromProc[A any](fn func(A) error) Functor[A, Void] {
	if fn == nil {
		panic("functor: FromProc with nil function")
	}
	return FromFunc(func(arg A) (Void, error) {
		return Void{}, fn(arg)
	})
}

type func2Functor[A, B, R any] struct {
	fn func(A, B) (R, error)
}

// FromFunc2 adapts a two-argument function into the shape consumed by Bind.
func FromFunc2[A, B, R any](fn func(A, B) (R, error)) Functor2[A, B, R] {
	if fn == nil {
		panic("functor: FromFunc2 with nil function")
	}
	return func2Functor[A, B, R]{fn: fn}
}

func (f func2Functor[A, B, R]) Invoke2(a A, b B) (R, error) {
	return f.fn(a, b)
}

func (f func2Functor[A, B, R]) Target() (trackable.Trackable, bool) {
	return nil, false
}

type func3Functor[A, B, C, R any] struct {
	fn func(A, B, C) (R, error)
}

// FromFunc3 adapts a three-argument function into the shape consumed by Bind2.
func FromFunc3[A, B, C, R any](fn func(A, B, C) (R, error)) Functor3[A, B, C, R] {
	if fn == nil {
		panic("functor: FromFunc3 with nil function")
	}
	return func3Functor[A, B, C, R]{fn: fn}
}

func (f func3Functor[A, B, C, R]) Invoke3(a A, b B, c C) (R, error) {
	return f.fn(a, b, c)
}

func (f func3Functor[A, B, C, R]) Target() (trackable.Trackable, bool) {
	return nil, false
}

// --- Method form ---
//
// A method adaptor pairs an explicit receiver with a method expression so the
// receiver stays visible for lifetime tracking. Go's two receiver kinds stand
// in for qualifier variants: a pointer receiver may mutate the object, a value
// receiver operates on a read-only copy. Passing a value receiver with a
// pointer-receiver method expression does not type-check, so a qualifier
// mismatch is rejected at compile time.

type methodFunctor[T, A, R any] struct {
	recv   T
	method func(T, A) (R, error)
}

// FromMethod adapts a (receiver, method expression) pair:
//
//	functor.FromMethod(counter, (*Counter).Add)
func FromMethod[T, A, R any](recv T, method func(T, A) (R, error)) Functor[A, R] {
	if method == nil {
		panic("functor: FromMethod with nil method")
	}
	return methodFunctor[T, A, R]{recv: recv, method: method}
}

func (f methodFunctor[T, A, R]) Invoke(arg A) (R, error) {
	return f.method(f.recv, arg)
}

func (f methodFunctor[T, A, R]) Target() (trackable.Trackable, bool) {
	target, ok := any(f.recv).(trackable.Trackable)
	return target, ok
}

// FromMethodProc adapts a method that produces no value.
func FromMethodProc[T, A any](recv T, method func(T, A) error) Functor[A, Void] {
	if method == nil {
		panic("functor: FromMethodProc with nil method")
	}
	return FromMethod(recv, func(r T, arg A) (Void, error) {
		return Void{}, method(r, arg)
	})
}

type method2Functor[T, A, B, R any] struct {
	recv   T
	method func(T, A, B) (R, error)
}

// FromMethod2 adapts a two-argument method for use with Bind.
func FromMethod2[T, A, B, R any](recv T, method func(T, A, B) (R, error)) Functor2[A, B, R] {
	if method == nil {
		panic("functor: FromMethod2 with nil method")
	}
	return method2Functor[T, A, B, R]{recv: recv, method: method}
}

func (f method2Functor[T, A, B, R]) Invoke2(a A, b B) (R, error) {
	return f.method(f.recv, a, b)
}

func (f method2Functor[T, A, B, R]) Target() (trackable.Trackable, bool) {
	target, ok := any(f.recv).(trackable.Trackable)
	return target, ok
}

package functor

import (
	"github.com/krew-solutions/sigslot-go/sigslot/trackable"
)

// --- Partial application ---
//
// Bound adaptors fix trailing arguments of an inner adaptor; the dynamically
// supplied leading argument is concatenated with the stored values at call
// time. They nest: Bind(Bind2(inner, c), b) turns a three-argument callable
// into a single-argument one.

type boundFunctor[A, B, R any] struct {
	inner Functor2[A, B, R]
	bound B
}

// Bind fixes the trailing argument of a two-argument adaptor.
func Bind[A, B, R any](inner Functor2[A, B, R], bound B) Functor[A, R] {
	if inner == nil {
		panic("functor: Bind with nil inner functor")
	}
	return boundFunctor[A, B, R]{inner: inner, bound: bound}
}

func (f boundFunctor[A, B, R]) Invoke(arg A) (R, error) {
	return f.inner.Invoke2(arg, f.bound)
}

func (f boundFunctor[A, B, R]) Target() (trackable.Trackable, bool) {
	return f.inner.Target()
}

type bound2Functor[A, B, C, R any] struct {
	inner Functor3[A, B, C, R]
	bound C
}

// Bind2 fixes the trailing argument of a three-argument adaptor.
func Bind2[A, B, C, R any](inner Functor3[A, B, C, R], bound C) Functor2[A, B, R] {
	if inner == nil {
		panic("functor: Bind2 with nil inner functor")
	}
	return bound2Functor[A, B, C, R]{inner: inner, bound: bound}
}

func (f bound2Functor[A, B, C, R]) Invoke2(a A, b B) (R, error) {
	return f.inner.Invoke3(a, b, f.bound)
}

func (f bound2Functor[A, B, C, R]) Target() (trackable.Trackable, bool) {
	return f.inner.Target()
}

type tailFunctor[A, B, R any] struct {
	fn   func(A, ...B) (R, error)
	tail []B
}

// BindTail fixes one-or-more trailing values of a variadic function. The
// caller's argument is followed by first and rest on every invocation.
func BindTail[A, B, R any](fn func(A, ...B) (R, error), first B, rest ...B) Functor[A, R] {
	if fn == nil {
		panic("functor: BindTail with nil function")
	}
	tail := make([]B, 0, 1+len(rest))
	tail = append(tail, first)
	tail = append(tail, rest...)
	return tailFunctor[A, B, R]{fn: fn, tail: tail}
}

func (f tailFunctor[A, B, R]) Invoke(arg A) (R, error) {
	return f.fn(arg, f.tail...)
}

func (f tailFunctor[A, B, R]) Target() (trackable.Trackable, bool) {
	return nil, false
}

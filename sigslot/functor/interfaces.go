package functor

import (
	"github.com/krew-solutions/sigslot-go/sigslot/trackable"
)

// Void is the result type of subscribers that produce no value.
type Void = struct{}

// Functor is a callable adapted to the fixed single-argument shape consumed by
// a signal. Invoke forwards the argument to the underlying callable; the error
// is the subscriber's own failure and is never produced by the adaptor itself.
//
// Target reports the trackable receiver the callable is bound to, if any.
// Signals use it to tear the subscription down when the receiver is destroyed.
// Composed adaptors (see Bind) propagate the innermost target.
type Functor[A, R any] interface {
	Invoke(arg A) (R, error)
	Target() (trackable.Trackable, bool)
}

// Functor2 is a two-argument callable shape, consumed by Bind to produce a
// Functor with the trailing argument fixed.
type Functor2[A, B, R any] interface {
	Invoke2(a A, b B) (R, error)
	Target() (trackable.Trackable, bool)
}

// Functor3 is a three-argument callable shape, consumed by Bind2. Together
// with Bind this lets partial application nest: Bind(Bind2(f3, c), b) fixes
// the two trailing arguments of a three-argument callable.
type Functor3[A, B, C, R any] interface {
	Invoke3(a A, b B, c C) (R, error)
	Target() (trackable.Trackable, bool)
}

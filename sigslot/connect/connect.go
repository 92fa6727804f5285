// Package connect provides shorthand helpers that wrap a raw callable in the
// matching functor form and subscribe it in one call. Pure sugar over
// signal.Signal.Connect and the functor constructors.
package connect

import (
	"github.com/krew-solutions/sigslot-go/sigslot/functor"
	"github.com/krew-solutions/sigslot-go/sigslot/signal"
)

// Func subscribes a plain function.
func Func[A, R, S any](s signal.Signal[A, R, S], fn func(A) (R, error)) signal.Connection {
	return s.Connect(functor.FromFunc(fn))
}

// Proc subscribes a function that produces no value.
func Proc[A, S any](s signal.Signal[A, functor.Void, S], fn func(A) error) signal.Connection {
	return s.Connect(functor.FromProc(fn))
}

// Method subscribes a bound method given as a (receiver, method expression)
// pair. If the receiver is trackable, the subscription is torn down when the
// receiver is destroyed.
func Method[T, A, R, S any](s signal.Signal[A, R, S], recv T, method func(T, A) (R, error)) signal.Connection {
	return s.Connect(functor.FromMethod(recv, method))
}

// MethodProc subscribes a bound method that produces no value.
func MethodProc[T, A, S any](s signal.Signal[A, functor.Void, S], recv T, method func(T, A) error) signal.Connection {
	return s.Connect(functor.FromMethodProc(recv, method))
}

// Bound subscribes a two-argument adaptor with its trailing argument fixed.
func Bound[A, B, R, S any](s signal.Signal[A, R, S], inner functor.Functor2[A, B, R], bound B) signal.Connection {
	return s.Connect(functor.Bind(inner, bound))
}

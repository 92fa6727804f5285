package signal

import (
	"github.com/krew-solutions/sigslot-go/sigslot/functor"
)

// Signal is an ordered registry of subscribers that can be triggered to invoke
// all of them. A is the emitted argument type, R the per-subscriber result
// type, S the accumulated result type returned by an emission.
//
// Signals are single-threaded: one goroutine owns a signal instance. Within
// that goroutine all operations are reentrancy-safe: a running subscriber may
// connect, disconnect, block, or emit on the same signal.
type Signal[A, R, S any] interface {
	// Connect appends a subscriber and returns a handle controlling it.
	Connect(fn functor.Functor[A, R]) Connection

	// Emit invokes every live, unblocked subscriber in connection order and
	// folds their results through the accumulation policy. A subscriber
	// error aborts the walk and propagates unwrapped; subscribers connected
	// during the walk are not invoked until the next emission.
	Emit(arg A) (S, error)

	// EmitAll is Emit except that a failing subscriber does not stop the
	// walk; every failure is collected into the returned error, annotated
	// with the slot it came from.
	EmitAll(arg A) (S, error)

	// Len reports the number of connected (not yet disconnected) slots.
	Len() int

	// Clear disconnects every slot. Safe to call from inside an emission;
	// the remainder of the in-progress walk is skipped.
	Clear()
}

// Accumulator folds per-subscriber results of one emission into a single
// returned value. Start yields the identity value returned when no subscriber
// runs. Accumulate folds one result into the state; returning false stops the
// walk early.
type Accumulator[R, S any] interface {
	Start() S
	Accumulate(state S, value R) (S, bool)
}

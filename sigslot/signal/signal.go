package signal

import (
	"github.com/hashicorp/go-multierror"
	"github.com/oklog/ulid/v2"
	"github.com/pkg/errors"

	"github.com/krew-solutions/sigslot-go/sigslot/functor"
)

// SignalImp is the standard Signal implementation: an insertion-ordered slot
// sequence plus an accumulation policy. It owns its slots' storage;
// Connections and trackable registrations only reference slots by identity.
type SignalImp[A, R, S any] struct {
	slots []*slotImp[A, R]
	acc   Accumulator[R, S]
	guard walkGuard
}

// NewWithAccumulator creates a signal with an explicit accumulation policy.
func NewWithAccumulator[A, R, S any](acc Accumulator[R, S]) *SignalImp[A, R, S] {
	if acc == nil {
		panic("signal: NewWithAccumulator with nil accumulator")
	}
	s := &SignalImp[A, R, S]{acc: acc}
	s.guard.sweep = s.removeDisconnected
	return s
}

// New creates a signal with the default last-wins policy: Emit yields the
// result of the last invoked subscriber.
func New[A, R any]() *SignalImp[A, R, R] {
	return NewWithAccumulator[A, R, R](LastValue[R]())
}

// NewCollecting creates a signal whose Emit yields every subscriber result in
// invocation order.
func NewCollecting[A, R any]() *SignalImp[A, R, []R] {
	return NewWithAccumulator[A, R, []R](CollectAll[R]())
}

// NewVoid creates a signal for subscribers that produce no value.
func NewVoid[A any]() *SignalImp[A, functor.Void, functor.Void] {
	return New[A, functor.Void]()
}

func (s *SignalImp[A, R, S]) Connect(fn functor.Functor[A, R]) Connection {
	if fn == nil {
		panic("signal: Connect with nil functor")
	}
	sl := &slotImp[A, R]{id: ulid.Make(), fn: fn, guard: &s.guard}
	if target, ok := fn.Target(); ok && target != nil {
		sl.tracking = target.RegisterOnDestroy(sl.disconnect)
	}
	s.slots = append(s.slots, sl)
	return newConnection(sl)
}

// Emit walks the slots connected before the walk started ("the frontier"),
// invoking each one that is still connected and unblocked at the moment it is
// reached. Slot state is re-read per position, so a subscriber disconnecting
// itself, an earlier, or a later slot takes effect within the same walk.
// Reentrant Emit calls are legal; each computes its own frontier.
func (s *SignalImp[A, R, S]) Emit(arg A) (S, error) {
	state := s.acc.Start()
	frontier := len(s.slots)
	if frontier == 0 {
		return state, nil
	}
	s.guard.enter()
	defer s.guard.leave()
	for i := 0; i < frontier; i++ {
		sl := s.slots[i]
		if sl.disconnected || sl.blocked {
			continue
		}
		value, err := sl.fn.Invoke(arg)
		if err != nil {
			return state, err
		}
		var keep bool
		state, keep = s.acc.Accumulate(state, value)
		if !keep {
			break
		}
	}
	return state, nil
}

// EmitAll walks like Emit but does not stop on subscriber failure: every
// eligible slot runs, and all failures are aggregated into the returned error,
// each annotated with the identity of the slot that produced it.
func (s *SignalImp[A, R, S]) EmitAll(arg A) (S, error) {
	state := s.acc.Start()
	frontier := len(s.slots)
	if frontier == 0 {
		return state, nil
	}
	s.guard.enter()
	defer s.guard.leave()
	var errs error
	for i := 0; i < frontier; i++ {
		sl := s.slots[i]
		if sl.disconnected || sl.blocked {
			continue
		}
		value, err := sl.fn.Invoke(arg)
		if err != nil {
			errs = multierror.Append(errs, errors.Wrapf(err, "slot %s", sl.id))
			continue
		}
		var keep bool
		state, keep = s.acc.Accumulate(state, value)
		if !keep {
			break
		}
	}
	return state, errs
}

func (s *SignalImp[A, R, S]) Len() int {
	n := 0
	for _, sl := range s.slots {
		if !sl.disconnected {
			n++
		}
	}
	return n
}

func (s *SignalImp[A, R, S]) Clear() {
	// Enter the guard so the per-slot disconnects coalesce into one sweep.
	s.guard.enter()
	for _, sl := range s.slots {
		sl.disconnect()
	}
	s.guard.leave()
}

// removeDisconnected compacts the slot sequence in place, preserving the
// order of still-connected slots. Only ever called with no walk in progress.
func (s *SignalImp[A, R, S]) removeDisconnected() {
	live := s.slots[:0]
	for _, sl := range s.slots {
		if !sl.disconnected {
			live = append(live, sl)
		}
	}
	for i := len(live); i < len(s.slots); i++ {
		s.slots[i] = nil
	}
	s.slots = live
}

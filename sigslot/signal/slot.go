package signal

import (
	"github.com/oklog/ulid/v2"

	"github.com/krew-solutions/sigslot-go/sigslot/disposable"
	"github.com/krew-solutions/sigslot-go/sigslot/functor"
)

// walkGuard counts in-progress emission walks over one slot sequence.
// Physical removal of disconnected slots is deferred while any walk is active,
// so a walk can keep indexing a stable prefix of the sequence.
type walkGuard struct {
	depth   int
	pending bool
	sweep   func()
}

func (g *walkGuard) enter() {
	g.depth++
}

func (g *walkGuard) leave() {
	g.depth--
	if g.depth == 0 && g.pending {
		g.pending = false
		g.sweep()
	}
}

func (g *walkGuard) scheduleSweep() {
	if g.depth == 0 {
		g.sweep()
		return
	}
	g.pending = true
}

// slotControl is the non-generic control surface a Connection holds, so that
// connections stay plain copyable values regardless of the signal's type
// parameters.
type slotControl interface {
	block()
	unblock()
	disconnect()
	connected() bool
	isBlocked() bool
}

type slotImp[A, R any] struct {
	id           ulid.ULID
	fn           functor.Functor[A, R]
	blocked      bool
	disconnected bool
	tracking     disposable.Disposable
	guard        *walkGuard
}

func (s *slotImp[A, R]) block() {
	if s.disconnected {
		return
	}
	s.blocked = true
}

func (s *slotImp[A, R]) unblock() {
	if s.disconnected {
		return
	}
	s.blocked = false
}

// disconnect is idempotent and is the single convergence point of both the
// Connection.Disconnect path and the receiver-destroyed path. It marks the
// slot dead immediately; storage is reclaimed by the owning signal at the next
// safe point.
func (s *slotImp[A, R]) disconnect() {
	if s.disconnected {
		return
	}
	s.disconnected = true
	if s.tracking != nil {
		s.tracking.Dispose()
		s.tracking = nil
	}
	s.guard.scheduleSweep()
}

func (s *slotImp[A, R]) connected() bool {
	return !s.disconnected
}

func (s *slotImp[A, R]) isBlocked() bool {
	return s.blocked && !s.disconnected
}

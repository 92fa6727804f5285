package signal

import (
	"github.com/hashicorp/go-multierror"

	"github.com/krew-solutions/sigslot-go/sigslot/functor"
)

// CompositeImp fans every operation out over a fixed set of delegate signals.
// Connect subscribes to all delegates and returns one merged Connection
// controlling every created slot; Emit triggers the delegates in order and
// yields the accumulated result of the last one.
type CompositeImp[A, R, S any] struct {
	delegates []Signal[A, R, S]
}

func NewComposite[A, R, S any](delegates ...Signal[A, R, S]) *CompositeImp[A, R, S] {
	return &CompositeImp[A, R, S]{delegates: delegates}
}

func (c *CompositeImp[A, R, S]) Connect(fn functor.Functor[A, R]) Connection {
	conns := make([]Connection, 0, len(c.delegates))
	for _, delegate := range c.delegates {
		conns = append(conns, delegate.Connect(fn))
	}
	return merge(conns...)
}

func (c *CompositeImp[A, R, S]) Emit(arg A) (S, error) {
	var state S
	for _, delegate := range c.delegates {
		var err error
		state, err = delegate.Emit(arg)
		if err != nil {
			return state, err
		}
	}
	return state, nil
}

func (c *CompositeImp[A, R, S]) EmitAll(arg A) (S, error) {
	var state S
	var errs error
	for _, delegate := range c.delegates {
		result, err := delegate.EmitAll(arg)
		state = result
		if err != nil {
			errs = multierror.Append(errs, err)
		}
	}
	return state, errs
}

func (c *CompositeImp[A, R, S]) Len() int {
	n := 0
	for _, delegate := range c.delegates {
		n += delegate.Len()
	}
	return n
}

func (c *CompositeImp[A, R, S]) Clear() {
	for _, delegate := range c.delegates {
		delegate.Clear()
	}
}

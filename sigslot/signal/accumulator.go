package signal

import (
	"github.com/krew-solutions/sigslot-go/sigslot/option"
)

type lastValueAcc[R any] struct{}

// LastValue keeps only the result of the last invoked subscriber. This is the
// default policy of New.
func LastValue[R any]() Accumulator[R, R] {
	return lastValueAcc[R]{}
}

func (lastValueAcc[R]) Start() R {
	var zero R
	return zero
}

func (lastValueAcc[R]) Accumulate(_ R, value R) (R, bool) {
	return value, true
}

type collectAllAcc[R any] struct{}

// CollectAll gathers every subscriber result into a slice, in invocation order.
func CollectAll[R any]() Accumulator[R, []R] {
	return collectAllAcc[R]{}
}

func (collectAllAcc[R]) Start() []R {
	return nil
}

func (collectAllAcc[R]) Accumulate(state []R, value R) ([]R, bool) {
	return append(state, value), true
}

type firstWhereAcc[R any] struct {
	pred func(R) bool
}

// FirstWhere stops the walk at the first result satisfying pred and yields it;
// the emission yields Nothing when no result matches.
func FirstWhere[R any](pred func(R) bool) Accumulator[R, option.Option[R]] {
	if pred == nil {
		panic("signal: FirstWhere with nil predicate")
	}
	return firstWhereAcc[R]{pred: pred}
}

func (a firstWhereAcc[R]) Start() option.Option[R] {
	return option.Nothing[R]()
}

func (a firstWhereAcc[R]) Accumulate(state option.Option[R], value R) (option.Option[R], bool) {
	if a.pred(value) {
		return option.Some(value), false
	}
	return state, true
}

type reduceAcc[R, S any] struct {
	start func() S
	fold  func(S, R) S
}

// Reduce folds results through an arbitrary (state, result) -> state function.
func Reduce[R, S any](start func() S, fold func(S, R) S) Accumulator[R, S] {
	if start == nil || fold == nil {
		panic("signal: Reduce with nil start or fold")
	}
	return reduceAcc[R, S]{start: start, fold: fold}
}

func (a reduceAcc[R, S]) Start() S {
	return a.start()
}

func (a reduceAcc[R, S]) Accumulate(state S, value R) (S, bool) {
	return a.fold(state, value), true
}

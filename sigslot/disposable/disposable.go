package disposable

// Disposable releases a previously acquired registration or resource.
// Dispose is idempotent: calling it more than once has no further effect.
type Disposable interface {
	Dispose()
}

type disposableImp struct {
	dispose func()
	done    bool
}

// NewDisposable wraps a release function into a one-shot Disposable.
func NewDisposable(dispose func()) Disposable {
	return &disposableImp{dispose: dispose}
}

func (d *disposableImp) Dispose() {
	if d.done {
		return
	}
	d.done = true
	d.dispose()
}

type compositeDisposableImp struct {
	disposables []Disposable
}

// NewCompositeDisposable aggregates several disposables into one.
// Dispose releases them in the order they were given.
func NewCompositeDisposable(disposables ...Disposable) Disposable {
	return &compositeDisposableImp{disposables: disposables}
}

func (d *compositeDisposableImp) Dispose() {
	for _, inner := range d.disposables {
		inner.Dispose()
	}
}

// Noop returns a Disposable whose Dispose does nothing.
func Noop() Disposable {
	return NewDisposable(func() {})
}

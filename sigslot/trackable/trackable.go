package trackable

import (
	"github.com/google/uuid"

	"github.com/krew-solutions/sigslot-go/sigslot/disposable"
)

type registration struct {
	id        uuid.UUID
	callback  func()
	cancelled bool
}

// TrackableImp is an embeddable lifetime registry. The zero value is ready to
// use. Destroy runs every still-registered callback exactly once, in
// registration order, then clears the registry.
//
// TrackableImp is single-threaded like the signals it cooperates with, but it
// is reentrancy-safe: a destroy callback may cancel other registrations of the
// same registry, and may destroy unrelated trackables.
type TrackableImp struct {
	registrations []registration
	destroying    bool
	destroyed     bool
}

// NewTrackable returns an empty lifetime registry. Embedding the zero value of
// TrackableImp works just as well.
func NewTrackable() *TrackableImp {
	return &TrackableImp{}
}

func (t *TrackableImp) RegisterOnDestroy(callback func()) disposable.Disposable {
	if t.destroyed || t.destroying {
		panic("trackable: RegisterOnDestroy on a destroyed receiver")
	}
	id := uuid.New()
	t.registrations = append(t.registrations, registration{id: id, callback: callback})
	return disposable.NewDisposable(func() {
		t.cancel(id)
	})
}

func (t *TrackableImp) cancel(id uuid.UUID) {
	for i := range t.registrations {
		if t.registrations[i].id == id {
			if t.destroying {
				// Destroy is walking the slice; splicing would shift
				// not-yet-visited entries. Mark instead.
				t.registrations[i].cancelled = true
			} else {
				t.registrations = append(t.registrations[:i], t.registrations[i+1:]...)
			}
			return
		}
	}
}

// Destroy notifies every registered callback that the receiver is gone.
// Idempotent: a second Destroy does nothing.
func (t *TrackableImp) Destroy() {
	if t.destroyed || t.destroying {
		return
	}
	t.destroying = true
	for i := 0; i < len(t.registrations); i++ {
		if t.registrations[i].cancelled {
			continue
		}
		t.registrations[i].callback()
	}
	t.registrations = nil
	t.destroying = false
	t.destroyed = true
}

// Destroyed reports whether Destroy has run.
func (t *TrackableImp) Destroyed() bool {
	return t.destroyed
}

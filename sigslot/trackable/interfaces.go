package trackable

import (
	"github.com/krew-solutions/sigslot-go/sigslot/disposable"
)

// Trackable is the opt-in surface for lifetime tracking. A receiver type exposes
// it (typically by embedding TrackableImp) so that subscriptions bound to the
// receiver can be torn down automatically when the receiver is destroyed.
//
// RegisterOnDestroy schedules callback to run synchronously when the receiver
// is destroyed. Disposing the returned handle before destruction cancels the
// registration with no further effect. Callbacks must treat the receiver as
// already gone and must not touch its state.
type Trackable interface {
	RegisterOnDestroy(callback func()) disposable.Disposable
}

package trackable

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/krew-solutions/sigslot-go/sigslot/disposable"
)

func TestDestroy_RunsCallbacksInRegistrationOrder(t *testing.T) {
	tr := NewTrackable()
	var order []int
	tr.RegisterOnDestroy(func() { order = append(order, 1) })
	tr.RegisterOnDestroy(func() { order = append(order, 2) })
	tr.RegisterOnDestroy(func() { order = append(order, 3) })
	tr.Destroy()
	assert.Equal(t, []int{1, 2, 3}, order)
}

func TestDestroy_RunsEachCallbackExactlyOnce(t *testing.T) {
	tr := NewTrackable()
	count := 0
	tr.RegisterOnDestroy(func() { count++ })
	tr.Destroy()
	tr.Destroy()
	assert.Equal(t, 1, count)
}

func TestDestroy_WithNoRegistrationsIsSilent(t *testing.T) {
	tr := NewTrackable()
	tr.Destroy() // should not panic
	assert.True(t, tr.Destroyed())
}

func TestCancel_BeforeDestroyRemovesCallback(t *testing.T) {
	tr := NewTrackable()
	called := false
	reg := tr.RegisterOnDestroy(func() { called = true })
	reg.Dispose()
	tr.Destroy()
	assert.False(t, called)
}

func TestCancel_AfterDestroyIsSilent(t *testing.T) {
	tr := NewTrackable()
	reg := tr.RegisterOnDestroy(func() {})
	tr.Destroy()
	reg.Dispose() // should not panic
}

func TestCancel_DuringDestroySkipsNotYetVisitedCallback(t *testing.T) {
	tr := NewTrackable()
	var secondCalled bool
	var second disposable.Disposable
	tr.RegisterOnDestroy(func() { second.Dispose() })
	second = tr.RegisterOnDestroy(func() { secondCalled = true })
	tr.Destroy()
	assert.False(t, secondCalled)
}

func TestDestroy_CallbackMayDestroyAnotherTrackable(t *testing.T) {
	first := NewTrackable()
	other := NewTrackable()
	otherNotified := false
	other.RegisterOnDestroy(func() { otherNotified = true })
	first.RegisterOnDestroy(func() { other.Destroy() })
	first.Destroy()
	assert.True(t, otherNotified)
	assert.True(t, other.Destroyed())
}

func TestRegisterOnDestroy_AfterDestroyPanics(t *testing.T) {
	tr := NewTrackable()
	tr.Destroy()
	assert.Panics(t, func() {
		tr.RegisterOnDestroy(func() {})
	})
}

func TestZeroValue_IsUsable(t *testing.T) {
	var tr TrackableImp
	called := false
	tr.RegisterOnDestroy(func() { called = true })
	tr.Destroy()
	assert.True(t, called)
}

package signal

// Connection is a copyable, non-owning handle to one subscription (or to a
// group of them, for composite signals). The zero value is "not connected".
// Every operation tolerates the referenced slot being gone: mutators become
// no-ops and queries report false, never a panic.
type Connection struct {
	ctls []slotControl
}

func newConnection(ctls ...slotControl) Connection {
	return Connection{ctls: ctls}
}

func merge(conns ...Connection) Connection {
	var ctls []slotControl
	for _, c := range conns {
		ctls = append(ctls, c.ctls...)
	}
	return Connection{ctls: ctls}
}

// Block suppresses future invocations of the slot without disconnecting it.
// Ignored for disconnected slots.
func (c Connection) Block() {
	for _, ctl := range c.ctls {
		ctl.block()
	}
}

// Unblock restores invocation from the next emission onward.
func (c Connection) Unblock() {
	for _, ctl := range c.ctls {
		ctl.unblock()
	}
}

// Disconnect permanently removes the slot from its signal. Idempotent.
func (c Connection) Disconnect() {
	for _, ctl := range c.ctls {
		ctl.disconnect()
	}
}

// Connected reports whether at least one referenced slot is still connected.
func (c Connection) Connected() bool {
	for _, ctl := range c.ctls {
		if ctl.connected() {
			return true
		}
	}
	return false
}

// Blocked reports whether every still-connected referenced slot is blocked.
// A connection with no live slot reports false.
func (c Connection) Blocked() bool {
	blocked := false
	for _, ctl := range c.ctls {
		if !ctl.connected() {
			continue
		}
		if !ctl.isBlocked() {
			return false
		}
		blocked = true
	}
	return blocked
}

// Package session derives the renderable connection state from a live
// tailscale snapshot plus the persisted pause record, and maps bar
// inputs onto tailscale commands.
package session

import (
	"time"

	"github.com/Zay931/waybar-tailscale-module/internal/pausestore"
	"github.com/Zay931/waybar-tailscale-module/internal/tailscale"
)

// State is the three-way logical state the bar renders. It is never
// persisted; it is recomputed from snapshot + pause record on every
// invocation.
type State int

const (
	StateDisconnected State = iota
	StateConnected
	StatePaused
)

// String returns a human-readable name for the state.
func (s State) String() string {
	switch s {
	case StateConnected:
		return "Connected"
	case StatePaused:
		return "Paused"
	default:
		return "Disconnected"
	}
}

// Derive computes the logical state at a given instant. A pause record
// with a future deadline wins over whatever the live snapshot reports:
// the snapshot may predate the pause taking effect. Otherwise the state
// is Connected exactly when the daemon reports Running and has an
// address. The returned duration is the remaining pause time, zero
// unless the state is StatePaused.
//
// Derive is pure. Clearing an expired record is the caller's job.
func Derive(snap tailscale.Snapshot, rec *pausestore.Record, now time.Time) (State, time.Duration) {
	if rec != nil && rec.Until.After(now) {
		return StatePaused, rec.Until.Sub(now)
	}
	if snap.State == tailscale.StateRunning && snap.SelfAddr != "" {
		return StateConnected, 0
	}
	return StateDisconnected, 0
}

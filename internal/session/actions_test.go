package session_test

import (
	"testing"

	"github.com/Zay931/waybar-tailscale-module/internal/session"
)

func TestActionTable(t *testing.T) {
	tests := []struct {
		in   session.Input
		st   session.State
		want session.Action
	}{
		{session.ClickLeft, session.StateConnected, session.ActionDisconnect},
		{session.ClickLeft, session.StateDisconnected, session.ActionConnect},
		{session.ClickLeft, session.StatePaused, session.ActionResume},

		{session.ClickRight, session.StateConnected, session.ActionPause},
		{session.ClickRight, session.StateDisconnected, session.ActionConnect},
		{session.ClickRight, session.StatePaused, session.ActionStop},

		{session.ClickMiddle, session.StateConnected, session.ActionCopyAddr},
		{session.ClickMiddle, session.StateDisconnected, session.ActionCopyAddr},
		{session.ClickMiddle, session.StatePaused, session.ActionCopyAddr},

		// Scroll is reserved; never a state change.
		{session.ScrollUp, session.StateConnected, session.ActionNone},
		{session.ScrollUp, session.StateDisconnected, session.ActionNone},
		{session.ScrollUp, session.StatePaused, session.ActionNone},
		{session.ScrollDown, session.StateConnected, session.ActionNone},
		{session.ScrollDown, session.StateDisconnected, session.ActionNone},
		{session.ScrollDown, session.StatePaused, session.ActionNone},
	}
	for _, tt := range tests {
		if got := session.ActionFor(tt.in, tt.st); got != tt.want {
			t.Errorf("ActionFor(%v, %v) = %v, want %v", tt.in, tt.st, got, tt.want)
		}
	}
}

func TestParseClick(t *testing.T) {
	for name, want := range map[string]session.Input{
		"left":   session.ClickLeft,
		"right":  session.ClickRight,
		"middle": session.ClickMiddle,
	} {
		got, ok := session.ParseClick(name)
		if !ok || got != want {
			t.Errorf("ParseClick(%q) = (%v, %v), want (%v, true)", name, got, ok, want)
		}
	}
	if _, ok := session.ParseClick("double"); ok {
		t.Error("ParseClick accepted an unknown button")
	}
}

func TestParseScroll(t *testing.T) {
	if in, ok := session.ParseScroll("up"); !ok || in != session.ScrollUp {
		t.Errorf("ParseScroll(up) = (%v, %v)", in, ok)
	}
	if in, ok := session.ParseScroll("down"); !ok || in != session.ScrollDown {
		t.Errorf("ParseScroll(down) = (%v, %v)", in, ok)
	}
	if _, ok := session.ParseScroll("sideways"); ok {
		t.Error("ParseScroll accepted an unknown direction")
	}
}

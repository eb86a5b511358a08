package waybar_test

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/Zay931/waybar-tailscale-module/internal/session"
	"github.com/Zay931/waybar-tailscale-module/internal/waybar"
)

func TestRenderConnected(t *testing.T) {
	out := waybar.Render(session.Status{
		State:       session.StateConnected,
		Machine:     "devbox",
		SelfAddr:    "100.64.0.1",
		OnlinePeers: 2,
	}, waybar.DefaultStyle())

	if out.Class != "connected" {
		t.Errorf("Class = %q, want connected", out.Class)
	}
	if !strings.Contains(out.Tooltip, "100.64.0.1") {
		t.Errorf("tooltip missing address: %q", out.Tooltip)
	}
	if !strings.Contains(out.Tooltip, "Online Peers: 2") {
		t.Errorf("tooltip missing peer count: %q", out.Tooltip)
	}
	if !strings.Contains(out.Text, "TS") {
		t.Errorf("Text = %q, want TS label", out.Text)
	}
}

func TestRenderPaused(t *testing.T) {
	out := waybar.Render(session.Status{
		State:     session.StatePaused,
		Machine:   "devbox",
		Remaining: 4*time.Minute + 12*time.Second,
	}, waybar.DefaultStyle())

	if out.Class != "paused" {
		t.Errorf("Class = %q, want paused", out.Class)
	}
	if !strings.Contains(out.Tooltip, "4m 12s remaining") {
		t.Errorf("tooltip missing countdown: %q", out.Tooltip)
	}
	if !strings.Contains(out.Tooltip, "Left Click: Resume") {
		t.Errorf("tooltip missing resume legend: %q", out.Tooltip)
	}
}

func TestRenderDisconnectedPlaceholders(t *testing.T) {
	out := waybar.Render(session.Status{State: session.StateDisconnected}, waybar.DefaultStyle())

	if out.Class != "disconnected" {
		t.Errorf("Class = %q, want disconnected", out.Class)
	}
	if !strings.Contains(out.Tooltip, "Machine: -") {
		t.Errorf("missing machine placeholder: %q", out.Tooltip)
	}
	if out.Text == "" || out.Tooltip == "" {
		t.Error("payload fields must never be empty")
	}
}

func TestRenderNoteAppears(t *testing.T) {
	out := waybar.Render(session.Status{
		State: session.StateDisconnected,
		Note:  "login required",
	}, waybar.DefaultStyle())
	if !strings.Contains(out.Tooltip, "login required") {
		t.Errorf("note missing from tooltip: %q", out.Tooltip)
	}
}

func TestEmitFixedSchema(t *testing.T) {
	var buf bytes.Buffer
	out := waybar.Render(session.Status{State: session.StateDisconnected}, waybar.DefaultStyle())
	if err := out.Emit(&buf); err != nil {
		t.Fatalf("Emit: %v", err)
	}

	line := buf.String()
	if !strings.HasSuffix(line, "\n") || strings.Count(line, "\n") != 1 {
		t.Errorf("Emit must write exactly one line, got %q", line)
	}

	var decoded map[string]any
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("payload is not valid JSON: %v", err)
	}
	for _, key := range []string{"text", "tooltip", "class"} {
		if _, ok := decoded[key]; !ok {
			t.Errorf("payload missing %q field", key)
		}
	}
}

func TestFormatRemaining(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want string
	}{
		{0, "0s"},
		{-time.Second, "0s"},
		{37 * time.Second, "37s"},
		{time.Minute, "1m 0s"},
		{4*time.Minute + 12*time.Second, "4m 12s"},
		{5 * time.Minute, "5m 0s"},
		{90*time.Second + 400*time.Millisecond, "1m 30s"},
	}
	for _, tt := range tests {
		if got := waybar.FormatRemaining(tt.d); got != tt.want {
			t.Errorf("FormatRemaining(%v) = %q, want %q", tt.d, got, tt.want)
		}
	}
}

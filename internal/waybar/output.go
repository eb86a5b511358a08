// Package waybar formats the logical state into the JSON payload the
// bar consumes on every poll.
package waybar

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/Zay931/waybar-tailscale-module/internal/session"
)

// Output is the fixed-schema payload waybar parses each cycle. All
// three fields are always present; missing upstream data is rendered
// as placeholders, never as an omitted field.
type Output struct {
	Text    string `json:"text"`
	Tooltip string `json:"tooltip"`
	Class   string `json:"class"`
}

// Emit writes the payload as a single JSON line.
func (o Output) Emit(w io.Writer) error {
	return json.NewEncoder(w).Encode(o)
}

// Style controls the bar text and the tooltip legend.
type Style struct {
	ConnectedIcon    string
	DisconnectedIcon string
	PausedIcon       string
	Label            string
	PauseDuration    time.Duration // shown in the pause legend line
}

// DefaultStyle returns the stock icons.
func DefaultStyle() Style {
	return Style{
		ConnectedIcon:    "🟢",
		DisconnectedIcon: "🔴",
		PausedIcon:       "⏸",
		Label:            "TS",
		PauseDuration:    session.DefaultPauseDuration,
	}
}

// Render maps a Status to the bar payload.
func Render(st session.Status, style Style) Output {
	machine := st.Machine
	if machine == "" {
		machine = "-"
	}
	addr := st.SelfAddr
	if addr == "" {
		addr = "-"
	}

	var icon, class string
	var lines []string
	switch st.State {
	case session.StateConnected:
		icon, class = style.ConnectedIcon, "connected"
		lines = []string{
			"Tailscale Connected",
			"Machine: " + machine,
			"IP: " + addr,
			fmt.Sprintf("Online Peers: %d", st.OnlinePeers),
		}
	case session.StatePaused:
		icon, class = style.PausedIcon, "paused"
		lines = []string{
			"Tailscale Paused",
			"Machine: " + machine,
			FormatRemaining(st.Remaining) + " remaining",
		}
	default:
		icon, class = style.DisconnectedIcon, "disconnected"
		lines = []string{
			"Tailscale Disconnected",
			"Machine: " + machine,
		}
	}

	if st.Note != "" {
		lines = append(lines, st.Note)
	}
	lines = append(lines, "")
	lines = append(lines, legend(st.State, style.PauseDuration)...)

	return Output{
		Text:    icon + " " + style.Label,
		Tooltip: strings.Join(lines, "\n"),
		Class:   class,
	}
}

// legend lists the click bindings valid in the current state.
func legend(st session.State, pause time.Duration) []string {
	switch st {
	case session.StateConnected:
		return []string{
			"Left Click: Disconnect",
			"Right Click: Pause " + pauseLegend(pause),
			"Middle Click: Copy IP",
		}
	case session.StatePaused:
		return []string{
			"Left Click: Resume",
			"Right Click: Stop",
			"Middle Click: Copy IP",
		}
	default:
		return []string{
			"Left Click: Connect",
			"Middle Click: Copy IP",
		}
	}
}

// pauseLegend renders the configured pause length compactly: "5m" for
// whole minutes, the full form otherwise.
func pauseLegend(d time.Duration) string {
	if d >= time.Minute && d%time.Minute == 0 {
		return fmt.Sprintf("%dm", int(d.Minutes()))
	}
	return FormatRemaining(d)
}

// FormatRemaining renders a duration as "4m 12s", rounding to whole
// seconds and dropping the minute part under one minute.
func FormatRemaining(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	secs := int(d.Round(time.Second).Seconds())
	if secs < 60 {
		return fmt.Sprintf("%ds", secs)
	}
	return fmt.Sprintf("%dm %ds", secs/60, secs%60)
}

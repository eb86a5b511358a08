package main

import (
	"fmt"
	"strings"

	"github.com/Zay931/waybar-tailscale-module/internal/session"
	"github.com/Zay931/waybar-tailscale-module/internal/ui"
	"github.com/Zay931/waybar-tailscale-module/internal/waybar"
)

// renderWatch renders the dashboard view for a status.
func renderWatch(st session.Status, width int) string {
	if width > ui.MaxWidth {
		width = ui.MaxWidth
	}
	contentWidth := width - 4
	if contentWidth < 40 {
		contentWidth = 40
	}

	var lines []string
	lines = append(lines, ui.Row("STATE", stateLine(st), "PEERS", fmt.Sprintf("%d online", st.OnlinePeers), contentWidth))

	machine := st.Machine
	if machine == "" {
		machine = "-"
	}
	addr := st.SelfAddr
	if addr == "" {
		addr = "-"
	}
	lines = append(lines, ui.Row("MACHINE", machine, "IP", addr, contentWidth))

	if st.Note != "" {
		lines = append(lines, ui.Warn(st.Note))
	}

	section := ui.Section("Tailscale", strings.Join(lines, "\n"), width)
	keys := ui.Keys("l toggle/resume", "p pause/stop", "y copy ip", "r refresh", "q quit")
	return section + keys + "\n"
}

func stateLine(st session.Status) string {
	switch st.State {
	case session.StateConnected:
		return ui.Dot(ui.DotConnected) + " connected"
	case session.StatePaused:
		return ui.Dot(ui.DotPaused) + " paused, " + waybar.FormatRemaining(st.Remaining) + " left"
	default:
		return ui.Dot(ui.DotDisconnected) + " disconnected"
	}
}

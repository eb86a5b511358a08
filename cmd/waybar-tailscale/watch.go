package main

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Zay931/waybar-tailscale-module/internal/config"
	"github.com/Zay931/waybar-tailscale-module/internal/session"
)

// runWatch runs the live terminal dashboard.
func runWatch(machine *session.Machine, cfg *config.Config) error {
	p := tea.NewProgram(newWatchModel(machine, cfg))
	_, err := p.Run()
	return err
}

// watchModel is the Bubble Tea model for the dashboard.
type watchModel struct {
	machine  *session.Machine
	interval time.Duration
	status   session.Status
	width    int
	quitting bool
}

func newWatchModel(machine *session.Machine, cfg *config.Config) watchModel {
	return watchModel{
		machine:  machine,
		interval: cfg.PollInterval(),
		status:   machine.Read(context.Background()),
		width:    80,
	}
}

// Messages.
type tickMsg time.Time

func tickCmd(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

type refreshMsg struct {
	status session.Status
}

func (m watchModel) readCmd() tea.Cmd {
	return func() tea.Msg {
		return refreshMsg{status: m.machine.Read(context.Background())}
	}
}

// inputCmd replays a bar input through the same dispatcher the click
// handler uses.
func (m watchModel) inputCmd(in session.Input) tea.Cmd {
	return func() tea.Msg {
		return refreshMsg{status: m.machine.Handle(context.Background(), in)}
	}
}

func (m watchModel) Init() tea.Cmd {
	return tickCmd(m.interval)
}

func (m watchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			m.quitting = true
			return m, tea.Quit
		case "r":
			return m, m.readCmd()
		case "l":
			return m, m.inputCmd(session.ClickLeft)
		case "p":
			return m, m.inputCmd(session.ClickRight)
		case "y":
			return m, m.inputCmd(session.ClickMiddle)
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case tickMsg:
		return m, tea.Batch(m.readCmd(), tickCmd(m.interval))

	case refreshMsg:
		m.status = msg.status
		return m, nil
	}

	return m, nil
}

func (m watchModel) View() string {
	if m.quitting {
		return ""
	}
	return renderWatch(m.status, m.width)
}

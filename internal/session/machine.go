package session

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/Zay931/waybar-tailscale-module/internal/clipboard"
	"github.com/Zay931/waybar-tailscale-module/internal/pausestore"
	"github.com/Zay931/waybar-tailscale-module/internal/tailscale"
)

// Config holds the tunables the machine needs. Timing is explicit
// configuration, not package constants, so tests can vary it without
// wall-clock waits.
type Config struct {
	PauseDuration time.Duration // length of a right-click pause
	StatusTimeout time.Duration // bound on `tailscale status --json`
	ActionTimeout time.Duration // bound on up/down commands
	TailscalePath string        // tailscale binary, default "tailscale"
	UseSudo       bool          // prefix state-changing commands with sudo
}

const (
	DefaultPauseDuration = 5 * time.Minute
	DefaultStatusTimeout = 5 * time.Second
	DefaultActionTimeout = 15 * time.Second
)

// Status is the renderable result of one read: the logical state plus
// everything the tooltip shows. Downstream consumers never see the raw
// snapshot or the pause record.
type Status struct {
	State       State
	Remaining   time.Duration // pause time left, StatePaused only
	Machine     string
	SelfAddr    string
	OnlinePeers int
	Note        string // extra tooltip line, "" when nothing to report
}

// Machine combines the live snapshot with the persisted pause record.
// It is the sole interpreter of both.
type Machine struct {
	runner tailscale.Runner
	store  *pausestore.Store
	cfg    Config
	now    func() time.Time
	copy   func(string) error
}

// New creates a machine. Zero Config fields get defaults.
func New(runner tailscale.Runner, store *pausestore.Store, cfg Config) *Machine {
	if cfg.PauseDuration <= 0 {
		cfg.PauseDuration = DefaultPauseDuration
	}
	if cfg.StatusTimeout <= 0 {
		cfg.StatusTimeout = DefaultStatusTimeout
	}
	if cfg.ActionTimeout <= 0 {
		cfg.ActionTimeout = DefaultActionTimeout
	}
	if cfg.TailscalePath == "" {
		cfg.TailscalePath = "tailscale"
	}
	return &Machine{
		runner: runner,
		store:  store,
		cfg:    cfg,
		now:    time.Now,
		copy:   clipboard.Copy,
	}
}

// SetClock overrides the wall clock. Used in tests.
func (m *Machine) SetClock(now func() time.Time) {
	m.now = now
}

// SetCopyFunc overrides the clipboard write function. Used in tests.
func (m *Machine) SetCopyFunc(fn func(string) error) {
	m.copy = fn
}

// Read queries the tool, loads the pause record, and derives the
// logical state. An expired record is cleared the first time it is
// observed. Read never fails: every upstream error degrades to a
// renderable Status.
func (m *Machine) Read(ctx context.Context) Status {
	snap, note := m.fetchSnapshot(ctx)

	rec, err := m.store.Load()
	if err != nil {
		log.Printf("pause store: %v", err)
		rec = nil
	}

	now := m.now()
	state, remaining := Derive(snap, rec, now)
	if rec != nil && !rec.Until.After(now) {
		if err := m.store.Clear(); err != nil {
			log.Printf("clear expired pause: %v", err)
		}
	}

	return Status{
		State:       state,
		Remaining:   remaining,
		Machine:     snap.Machine,
		SelfAddr:    snap.SelfAddr,
		OnlinePeers: snap.OnlinePeers,
		Note:        note,
	}
}

// Handle dispatches a bar input: read the current state, resolve the
// action, run it, and return a fresh read. A command that times out or
// exits non-zero leaves the pause record untouched — the next poll
// reflects whatever the tool actually did.
func (m *Machine) Handle(ctx context.Context, in Input) Status {
	st := m.Read(ctx)

	var note string
	switch ActionFor(in, st.State) {
	case ActionConnect:
		if m.runVerb(ctx, "up").OK() {
			// A leftover record would mask the new connection as paused.
			if err := m.store.Clear(); err != nil {
				log.Printf("clear pause record: %v", err)
			}
		} else {
			note = "connect failed"
		}

	case ActionDisconnect:
		if m.runVerb(ctx, "down").OK() {
			if err := m.store.Clear(); err != nil {
				log.Printf("clear pause record: %v", err)
			}
		} else {
			note = "disconnect failed"
		}

	case ActionPause:
		if m.runVerb(ctx, "down").OK() {
			until := m.now().Add(m.cfg.PauseDuration)
			if err := m.store.Save(until); err != nil {
				log.Printf("save pause record: %v", err)
				note = "pause may not have persisted"
			}
		} else {
			note = "pause failed"
		}

	case ActionResume:
		if m.runVerb(ctx, "up").OK() {
			if err := m.store.Clear(); err != nil {
				log.Printf("clear pause record: %v", err)
				note = "resume may not have persisted"
			}
		} else {
			note = "resume failed"
		}

	case ActionStop:
		if m.runVerb(ctx, "down").OK() {
			if err := m.store.Clear(); err != nil {
				log.Printf("clear pause record: %v", err)
				note = "stop may not have persisted"
			}
		} else {
			note = "stop failed"
		}

	case ActionCopyAddr:
		if st.SelfAddr == "" {
			note = "no address to copy"
		} else if err := m.copy(st.SelfAddr); err != nil {
			log.Printf("clipboard: %v", err)
			note = "copy failed"
		} else {
			note = "address copied"
		}
	}

	out := m.Read(ctx)
	if note != "" {
		out.Note = note
	}
	return out
}

// fetchSnapshot runs the status query and classifies failures into a
// tooltip note. The snapshot itself degrades to Unknown; the render
// path never aborts.
func (m *Machine) fetchSnapshot(ctx context.Context) (tailscale.Snapshot, string) {
	res := m.runner.Run(ctx, m.cfg.StatusTimeout, m.cfg.TailscalePath, "status", "--json")
	switch {
	case res.NotFound:
		return tailscale.ParseStatus(nil), "tailscale not installed"
	case res.TimedOut:
		return tailscale.ParseStatus(nil), "status query timed out"
	case !res.OK():
		return tailscale.ParseStatus(nil), fmt.Sprintf("status query failed (exit %d)", res.ExitCode)
	}

	snap := tailscale.ParseStatus(res.Stdout)
	if snap.State == tailscale.StateNeedsLogin {
		return snap, "login required"
	}
	return snap, ""
}

// runVerb executes a state-changing tailscale command. sudo runs
// non-interactively; waybar has no terminal to prompt on.
func (m *Machine) runVerb(ctx context.Context, verb string) tailscale.Result {
	name := m.cfg.TailscalePath
	args := []string{verb}
	if m.cfg.UseSudo {
		name = "sudo"
		args = []string{"-n", m.cfg.TailscalePath, verb}
	}
	res := m.runner.Run(ctx, m.cfg.ActionTimeout, name, args...)
	if !res.OK() {
		log.Printf("tailscale %s: exit=%d timeout=%v notfound=%v stderr=%s",
			verb, res.ExitCode, res.TimedOut, res.NotFound, res.Stderr)
	}
	return res
}

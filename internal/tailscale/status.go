package tailscale

import (
	"encoding/json"
	"strings"
)

// BackendState is the normalized connection state reported by the
// tailscale daemon.
type BackendState int

const (
	StateUnknown BackendState = iota
	StateRunning
	StateStopped
	StateNeedsLogin
)

// String returns the tailscaled vocabulary name for the state.
func (s BackendState) String() string {
	switch s {
	case StateRunning:
		return "Running"
	case StateStopped:
		return "Stopped"
	case StateNeedsLogin:
		return "NeedsLogin"
	default:
		return "Unknown"
	}
}

// backendStates maps the daemon's BackendState vocabulary onto the
// normalized enum. Anything absent here (NoState, Starting,
// NeedsMachineAuth, future additions) degrades to StateUnknown.
var backendStates = map[string]BackendState{
	"Running":    StateRunning,
	"Stopped":    StateStopped,
	"NeedsLogin": StateNeedsLogin,
}

// Snapshot is a point-in-time read of `tailscale status --json`.
type Snapshot struct {
	State       BackendState
	SelfAddr    string // first tailscale IP of this machine, or ""
	Machine     string // machine name, "unknown" when undeterminable
	OnlinePeers int    // peers whose own Online flag is set
}

// statusDoc is the subset of the status JSON this module reads. Strict
// field names; schema drift surfaces as zero values, not as guesses.
type statusDoc struct {
	BackendState string             `json:"BackendState"`
	TailscaleIPs []string           `json:"TailscaleIPs"`
	Self         *peerDoc           `json:"Self"`
	Peer         map[string]peerDoc `json:"Peer"`
}

type peerDoc struct {
	HostName string `json:"HostName"`
	DNSName  string `json:"DNSName"`
	Online   bool   `json:"Online"`
}

// ParseStatus decodes the status JSON into a Snapshot. Malformed or
// empty input yields an Unknown snapshot — the render path must always
// have something to show.
func ParseStatus(data []byte) Snapshot {
	snap := Snapshot{State: StateUnknown, Machine: "unknown"}

	var doc statusDoc
	if err := json.Unmarshal(data, &doc); err != nil {
		return snap
	}

	if st, ok := backendStates[doc.BackendState]; ok {
		snap.State = st
	}
	if len(doc.TailscaleIPs) > 0 {
		snap.SelfAddr = doc.TailscaleIPs[0]
	}
	if name := machineName(doc.Self); name != "" {
		snap.Machine = name
	}
	for _, peer := range doc.Peer {
		if peer.Online {
			snap.OnlinePeers++
		}
	}
	return snap
}

// machineName derives the machine name from the Self entry: first label
// of the DNS name, falling back to the bare hostname.
func machineName(self *peerDoc) string {
	if self == nil {
		return ""
	}
	if self.DNSName != "" {
		if label, _, _ := strings.Cut(self.DNSName, "."); label != "" {
			return label
		}
	}
	return self.HostName
}

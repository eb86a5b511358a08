package session

// Input is a bar interaction forwarded by waybar.
type Input int

const (
	ClickLeft Input = iota
	ClickRight
	ClickMiddle
	ScrollUp
	ScrollDown
)

// ParseClick maps a waybar click button name to an Input.
func ParseClick(button string) (Input, bool) {
	switch button {
	case "left":
		return ClickLeft, true
	case "right":
		return ClickRight, true
	case "middle":
		return ClickMiddle, true
	}
	return 0, false
}

// ParseScroll maps a waybar scroll direction to an Input.
func ParseScroll(dir string) (Input, bool) {
	switch dir {
	case "up":
		return ScrollUp, true
	case "down":
		return ScrollDown, true
	}
	return 0, false
}

// Action is the command a given input resolves to.
type Action int

const (
	ActionNone Action = iota
	ActionConnect
	ActionDisconnect
	ActionPause
	ActionResume
	ActionStop
	ActionCopyAddr
)

// actionTable maps (input, current state) to an action. Combinations
// absent here are no-ops, never errors. Scroll inputs are reserved and
// never change connection state.
var actionTable = map[Input]map[State]Action{
	ClickLeft: {
		StateConnected:    ActionDisconnect,
		StateDisconnected: ActionConnect,
		StatePaused:       ActionResume,
	},
	ClickRight: {
		StateConnected:    ActionPause,
		StateDisconnected: ActionConnect,
		StatePaused:       ActionStop,
	},
	ClickMiddle: {
		StateConnected:    ActionCopyAddr,
		StateDisconnected: ActionCopyAddr,
		StatePaused:       ActionCopyAddr,
	},
}

// ActionFor resolves an input against the current logical state.
func ActionFor(in Input, st State) Action {
	return actionTable[in][st]
}

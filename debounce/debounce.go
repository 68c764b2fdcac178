// Package debounce implements a two state toggle driven by serial input,
// debounced by a saturating window timer.
//
// On every tick the window timer advances by one tick, up to the debounce
// window. If a character arrived on that tick, it toggles the state only if
// it is the valid character and the window is full. Any character, accepted
// or not, restarts the window.
package debounce

import (
	"time"
)

// State of the toggle.
type State int

const (
	OFF = State(0)
	ON  = State(1)
)

func (s State) String() string {
	if s == ON {
		return "ON"
	}
	return "OFF"
}

// Result of a single tick.
type Result int

const (
	IDLE            = Result(0) // No character arrived.
	ACCEPTED        = Result(1) // Valid character outside the window, state toggled.
	IGNORED_INVALID = Result(2) // Not the valid character.
	IGNORED_WINDOW  = Result(3) // Valid character inside the window.
)

func (r Result) String() string {
	switch r {
	case IDLE:
		return "idle"
	case ACCEPTED:
		return "accepted"
	case IGNORED_INVALID:
		return "ignored invalid"
	case IGNORED_WINDOW:
		return "ignored within window"
	}
	return "unknown"
}

const (
	DEFAULT_VALID  = 'A'
	DEFAULT_WINDOW = 500 * time.Millisecond
	DEFAULT_TICK   = 10 * time.Millisecond
)

// Config of a debounce machine.
type Config struct {
	Valid  byte          // The only character that toggles the state.
	Window time.Duration // Minimum quiet time before a toggle is accepted.
	Tick   time.Duration // Time represented by one Tick() call.
}

// DefaultConfig accepts 'A' at most every 500ms, ticking every 10ms.
func DefaultConfig() Config {
	return Config{
		Valid:  DEFAULT_VALID,
		Window: DEFAULT_WINDOW,
		Tick:   DEFAULT_TICK,
	}
}

// Machine is the debounce state machine.
type Machine struct {
	Config
	State   State         // Current toggle state.
	Elapsed time.Duration // Window timer, saturating at Config.Window.
}

// NewMachine creates a machine in the OFF state, ready to accept.
func NewMachine(cfg Config) (m *Machine) {
	m = &Machine{
		Config:  cfg,
		State:   OFF,
		Elapsed: cfg.Window,
	}

	return
}

// Ready reports whether the window is full.
func (m *Machine) Ready() bool {
	return m.Elapsed >= m.Window
}

// Tick advances the machine by one tick. ok reports whether ch arrived
// during the tick.
func (m *Machine) Tick(ch byte, ok bool) (res Result) {
	if m.Elapsed < m.Window {
		m.Elapsed = min(m.Elapsed+m.Config.Tick, m.Window)
	}

	if !ok {
		res = IDLE
		return
	}

	switch {
	case ch != m.Valid:
		res = IGNORED_INVALID
	case !m.Ready():
		res = IGNORED_WINDOW
	default:
		res = ACCEPTED
		if m.State == ON {
			m.State = OFF
		} else {
			m.State = ON
		}
	}

	m.Elapsed = 0

	return
}

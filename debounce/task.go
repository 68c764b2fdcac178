package debounce

import (
	"io"
	"time"

	"github.com/rs/zerolog"

	"github.com/ezrec/cyclex/schedule"
	"github.com/ezrec/cyclex/translate"
)

const (
	TASK_NAME       = "debounce"  // Registry name of the debounce task.
	HEARTBEAT_EVERY = time.Second // Simulated time between heartbeat logs.
)

// Input supplies at most one character per tick.
type Input interface {
	Poll() (ch byte, ok bool)
}

// LED shows the toggle state.
type LED interface {
	Set(on bool)
}

// WriterLED reports LED changes as text.
type WriterLED struct {
	Output io.Writer
	On     bool
}

// Set the LED.
func (led *WriterLED) Set(on bool) {
	led.On = on
	state := OFF
	if on {
		state = ON
	}
	translate.Fprintf(led.Output, "led %v\n", state)
}

// Task runs one tick of a debounce machine each time it is dispatched.
type Task struct {
	Machine *Machine
	Input   Input
	LED     LED
	Logger  zerolog.Logger

	Ticks     int           // Ticks run so far.
	heartbeat time.Duration // Simulated time since the last heartbeat.
}

var _ schedule.Task = (*Task)(nil)

// NewTask creates a debounce task with the default configuration. The LED is
// switched off to match the initial state.
func NewTask(input Input, led LED, logger zerolog.Logger) (task *Task) {
	task = &Task{
		Machine: NewMachine(DefaultConfig()),
		Input:   input,
		LED:     led,
		Logger:  logger,
	}

	if led != nil {
		led.Set(false)
	}

	return
}

// Registry returns the task under TASK_NAME.
func (task *Task) Registry() schedule.Registry {
	return schedule.Registry{TASK_NAME: task}
}

// Run polls the input and ticks the machine.
func (task *Task) Run() {
	m := task.Machine

	var ch byte
	var ok bool
	if task.Input != nil {
		ch, ok = task.Input.Poll()
	}

	// Window timer as seen by this tick, before a character resets it.
	elapsed := min(m.Elapsed+m.Config.Tick, m.Window)
	res := m.Tick(ch, ok)
	task.Ticks++

	switch res {
	case ACCEPTED:
		if task.LED != nil {
			task.LED.Set(m.State == ON)
		}
		task.Logger.Info().
			Str("char", string(rune(ch))).
			Stringer("state", m.State).
			Msg("debounce accept")
	case IGNORED_INVALID:
		task.Logger.Info().
			Str("char", string(rune(ch))).
			Msg("debounce ignored invalid")
	case IGNORED_WINDOW:
		task.Logger.Info().
			Str("char", string(rune(ch))).
			Dur("window", m.Window).
			Dur("elapsed", elapsed).
			Msg("debounce ignored within window")
	}

	task.heartbeat += m.Config.Tick
	if task.heartbeat >= HEARTBEAT_EVERY {
		task.heartbeat = 0
		task.Logger.Debug().
			Stringer("state", m.State).
			Dur("elapsed", m.Elapsed).
			Dur("window", m.Window).
			Msg("debounce heartbeat")
	}
}

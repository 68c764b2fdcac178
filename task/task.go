// Package task provides the demonstration work units of the cyclic
// executive: tasks one to five, which announce themselves and then block for
// as many seconds as their number.
package task

import (
	"io"
	"strconv"
	"time"

	"github.com/benbjohnson/clock"

	"github.com/ezrec/cyclex/schedule"
	"github.com/ezrec/cyclex/translate"
)

// Sleeper blocks the caller for a duration.
type Sleeper func(d time.Duration)

// ClockSleeper sleeps on clk.
func ClockSleeper(clk clock.Clock) Sleeper {
	return clk.Sleep
}

var names = [...]string{"one", "two", "three", "four", "five"}

// Names returns the names of the demonstration tasks, in order.
func Names() []string {
	return names[:]
}

// Demo is a demonstration task.
type Demo struct {
	Number int           // Task number, reported on each run.
	Block  time.Duration // Time the task blocks for.
	Output io.Writer     // Where to report. Nil disables the report.
	Sleep  Sleeper       // How to block. Nil does not block.

	Runs int // Number of completed runs.
}

var _ schedule.Task = (*Demo)(nil)

// Run reports the task and then blocks.
func (demo *Demo) Run() {
	translate.Fprintf(demo.Output, "task %s running\n", strconv.Itoa(demo.Number))
	if demo.Sleep != nil && demo.Block > 0 {
		demo.Sleep(demo.Block)
	}
	demo.Runs++
}

// Registry returns tasks one to five. Task n blocks for n seconds.
func Registry(out io.Writer, sleep Sleeper) (reg schedule.Registry) {
	reg = schedule.Registry{}
	for n, name := range names {
		reg[name] = &Demo{
			Number: n + 1,
			Block:  time.Duration(n+1) * time.Second,
			Output: out,
			Sleep:  sleep,
		}
	}

	return
}

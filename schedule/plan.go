package schedule

import (
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"
	"time"
)

const (
	DEFAULT_SLOT_TIME = 5000 * time.Millisecond // Slot time of the default plan.
)

// Plan is a schedule layout together with its timing.
type Plan struct {
	SlotTime       time.Duration // Time the filler pads each slot out to.
	FillerEndsSlot bool          // If set, the filler also ends the remainder of its slot.
	Layout         Layout        // Task names, slots by cycles.
}

// DefaultPlan returns the demonstration plan: three slots running task one
// and then one of tasks two to four, followed by an idle slot.
func DefaultPlan() Plan {
	return Plan{
		SlotTime: DEFAULT_SLOT_TIME,
		Layout: Layout{
			{"one", "two", FillerName, FillerName, FillerName},
			{"one", "three", FillerName, FillerName, FillerName},
			{"one", "four", FillerName, FillerName, FillerName},
			{FillerName, FillerName, FillerName, FillerName, FillerName},
		},
	}
}

// slotTime converts a slot time in milliseconds, rejecting values that a
// time.Duration cannot hold.
func slotTime(ms int64) (d time.Duration, err error) {
	const limit = math.MaxInt64 / int64(time.Millisecond)
	if ms > limit || ms < -limit {
		err = ErrPlanSlotTime
		return
	}

	d = time.Duration(ms) * time.Millisecond
	return
}

// Validate checks the plan is usable.
func (plan Plan) Validate() (err error) {
	if plan.SlotTime < time.Millisecond {
		err = ErrPlanSlotTime
		return
	}

	if len(plan.Layout) == 0 || len(plan.Layout[0]) == 0 {
		err = ErrPlanTable
		return
	}

	for _, row := range plan.Layout {
		if len(row) != len(plan.Layout[0]) {
			err = ErrPlanTable
			return
		}
	}

	return
}

// Load reads a plan from r, choosing the format by the extension of name:
// .star or .py for Starlark, .yaml or .yml for YAML.
func Load(name string, r io.Reader) (plan Plan, err error) {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".star", ".py":
		plan, err = LoadStarlark(name, r)
	case ".yaml", ".yml":
		plan, err = LoadYAML(name, r)
	default:
		err = &ErrSyntax{File: name, Err: ErrPlanFormat}
	}

	return
}

// LoadFile reads a plan from a file. An empty path returns the default plan.
func LoadFile(path string) (plan Plan, err error) {
	if len(path) == 0 {
		plan = DefaultPlan()
		return
	}

	inf, err := os.Open(path)
	if err != nil {
		return
	}
	defer inf.Close()

	return Load(path, inf)
}

package schedule

import (
	"io"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

// Starlark plan globals.
const (
	starlarkSlotMs         = "slot_ms"
	starlarkFillerEndsSlot = "filler_ends_slot"
	starlarkTable          = "table"

	starlarkMaxSteps = 1 << 20
)

// LoadStarlark evaluates a Starlark plan.
//
// The plan must assign `table`, a list of rows of task names. It may assign
// `slot_ms` (default 5000) and `filler_ends_slot` (default False). The name
// of the idle task is predeclared as `FILLER`, so a slot of idle time can be
// written as `[FILLER] * 5`.
func LoadStarlark(name string, r io.Reader) (plan Plan, err error) {
	defer func() {
		if err != nil {
			err = &ErrSyntax{File: name, Err: err}
		}
	}()

	thread := &starlark.Thread{Name: name}
	thread.SetMaxExecutionSteps(starlarkMaxSteps)
	opts := syntax.FileOptions{}
	pred := starlark.StringDict{
		"FILLER": starlark.String(FillerName),
	}

	globals, err := starlark.ExecFileOptions(&opts, thread, name, r, pred)
	if err != nil {
		return
	}

	plan = Plan{SlotTime: DEFAULT_SLOT_TIME}

	if value, ok := globals[starlarkSlotMs]; ok {
		st_int, ok := value.(starlark.Int)
		if !ok {
			err = ErrPlanSlotTime
			return
		}
		ms, ok := st_int.Int64()
		if !ok {
			err = ErrPlanSlotTime
			return
		}
		plan.SlotTime, err = slotTime(ms)
		if err != nil {
			return
		}
	}

	if value, ok := globals[starlarkFillerEndsSlot]; ok {
		plan.FillerEndsSlot = bool(value.Truth())
	}

	value, ok := globals[starlarkTable]
	if !ok {
		err = ErrPlanTable
		return
	}

	plan.Layout, err = starlarkLayout(value)
	if err != nil {
		return
	}

	err = plan.Validate()

	return
}

// starlarkLayout converts a sequence of sequences of strings.
func starlarkLayout(value starlark.Value) (layout Layout, err error) {
	rows, ok := starlarkSequence(value)
	if !ok {
		err = ErrPlanTable
		return
	}

	layout = make(Layout, rows.Len())
	for slot := range rows.Len() {
		row, ok := starlarkSequence(rows.Index(slot))
		if !ok {
			err = ErrPlanTable
			return
		}
		names := make([]string, row.Len())
		for cycle := range row.Len() {
			name, ok := starlark.AsString(row.Index(cycle))
			if !ok {
				err = &ErrCell{Slot: slot, Cycle: cycle, Err: ErrPlanTable}
				return
			}
			names[cycle] = name
		}
		layout[slot] = names
	}

	return
}

// starlarkSequence accepts lists and tuples, but not strings.
func starlarkSequence(value starlark.Value) (seq starlark.Indexable, ok bool) {
	switch value := value.(type) {
	case *starlark.List:
		seq, ok = value, true
	case starlark.Tuple:
		seq, ok = value, true
	}
	return
}

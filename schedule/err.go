package schedule

import (
	"errors"

	"github.com/ezrec/cyclex/translate"
)

var f = translate.From

var (
	// Table errors
	ErrTableShape  = errors.New(f("table shape invalid"))
	ErrTaskMissing = errors.New(f("task missing"))

	// Plan errors
	ErrPlanTable    = errors.New(f("plan table invalid"))
	ErrPlanSlotTime = errors.New(f("plan slot time invalid"))
	ErrPlanFormat   = errors.New(f("plan format unknown"))
)

// ErrTaskUnknown is returned when a layout names a task that is not in the
// registry.
type ErrTaskUnknown string

func (err ErrTaskUnknown) Error() string {
	return f("task %v unknown", string(err))
}

// ErrCell locates a table construction error.
type ErrCell struct {
	Slot  int
	Cycle int
	Err   error
}

func (err *ErrCell) Error() string {
	return f("slot %d cycle %d %v", err.Slot, err.Cycle, err.Err)
}

func (err *ErrCell) Unwrap() error {
	return err.Err
}

// ErrSyntax indicates a plan file that could not be loaded.
type ErrSyntax struct {
	File string
	Err  error
}

func (err *ErrSyntax) Error() string {
	return f("%v: %v", err.File, err.Err)
}

func (err *ErrSyntax) Unwrap() error {
	return err.Err
}

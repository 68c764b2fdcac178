package schedule

// FillerName is the registry name of the idle task that pads a slot out to
// the slot time.
const FillerName = "burn"

// Task is a unit of work dispatched from a table cell.
//
// Run is invoked synchronously and must return before the next cell is
// dispatched. A task that never returns stalls the whole schedule.
type Task interface {
	Run()
}

// TaskFunc adapts a plain function to a Task.
type TaskFunc func()

// Run calls fn().
func (fn TaskFunc) Run() {
	fn()
}

// Entry is the content of a single table cell.
type Entry struct {
	Name string // Registry name of the task.
	Task Task   // Task action to dispatch.
}

// Filler reports whether the entry is the idle task.
func (e Entry) Filler() bool {
	return e.Name == FillerName
}

package schedule

import (
	"iter"
	"maps"
	"slices"

	"github.com/ezrec/cyclex/internal"
)

// Layout is a schedule grid of task names, slots by cycles.
type Layout [][]string

// Registry maps task names to task actions.
type Registry map[string]Task

// Merge returns a new registry with the entries of all the registries.
// Later registries override earlier ones.
func Merge(regs ...Registry) Registry {
	seqs := make([]iter.Seq2[string, Task], 0, len(regs))
	for _, reg := range regs {
		seqs = append(seqs, maps.All(reg))
	}
	return maps.Collect(internal.Concat2(seqs...))
}

// Names returns the sorted task names of the registry.
func (reg Registry) Names() []string {
	return slices.Sorted(maps.Keys(reg))
}

// Build resolves the names of the layout against reg into a Table.
func (layout Layout) Build(reg Registry) (table *Table, err error) {
	rows := make([][]Entry, len(layout))
	for slot, names := range layout {
		row := make([]Entry, len(names))
		for cycle, name := range names {
			task, ok := reg[name]
			if !ok {
				err = &ErrCell{Slot: slot, Cycle: cycle, Err: ErrTaskUnknown(name)}
				return
			}
			row[cycle] = Entry{Name: name, Task: task}
		}
		rows[slot] = row
	}

	return NewTable(rows)
}

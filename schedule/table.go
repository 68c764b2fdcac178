// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package schedule

import (
	"fmt"
	"iter"
	"strings"
)

// Table is the immutable schedule grid, slots by cycles.
type Table struct {
	slots  int
	cycles int
	cell   []Entry // Row-major, slots*cycles entries.
}

// NewTable builds a table from rows of entries.
//
// Every row must have the same, non-zero, number of entries and every entry
// must hold a task. The rows are copied; later changes to the argument do
// not affect the table.
func NewTable(rows [][]Entry) (table *Table, err error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		err = ErrTableShape
		return
	}

	cycles := len(rows[0])
	cells := make([]Entry, 0, len(rows)*cycles)
	for slot, row := range rows {
		if len(row) != cycles {
			err = &ErrCell{Slot: slot, Cycle: len(row), Err: ErrTableShape}
			return
		}
		for cycle, entry := range row {
			if entry.Task == nil {
				err = &ErrCell{Slot: slot, Cycle: cycle, Err: ErrTaskMissing}
				return
			}
			cells = append(cells, entry)
		}
	}

	table = &Table{
		slots:  len(rows),
		cycles: cycles,
		cell:   cells,
	}

	return
}

// Slots returns the number of task slots (rows).
func (table *Table) Slots() int {
	return table.slots
}

// Cycles returns the number of minor cycles (columns) per slot.
func (table *Table) Cycles() int {
	return table.cycles
}

// Len returns the number of dispatch steps in one major cycle.
func (table *Table) Len() int {
	return len(table.cell)
}

// At returns the entry at a cursor position.
func (table *Table) At(at Cursor) Entry {
	if at.Slot < 0 || at.Slot >= table.slots || at.Cycle < 0 || at.Cycle >= table.cycles {
		panic(fmt.Sprintf("schedule: cursor %v outside %dx%d table", at, table.slots, table.cycles))
	}
	return table.cell[at.Slot*table.cycles+at.Cycle]
}

// All iterates over one major cycle in dispatch order.
func (table *Table) All() iter.Seq2[Cursor, Entry] {
	return func(yield func(at Cursor, entry Entry) bool) {
		for at := range Steps(table.slots, table.cycles) {
			if !yield(at, table.At(at)) {
				return
			}
		}
	}
}

// Layout returns the names of the tasks in the table.
func (table *Table) Layout() (layout Layout) {
	layout = make(Layout, table.slots)
	for slot := range layout {
		row := make([]string, table.cycles)
		for cycle := range row {
			row[cycle] = table.At(Cursor{Slot: slot, Cycle: cycle}).Name
		}
		layout[slot] = row
	}

	return
}

// String renders the table as rows of task names.
func (table *Table) String() string {
	var text strings.Builder
	for _, row := range table.Layout() {
		text.WriteString("{ ")
		text.WriteString(strings.Join(row, ", "))
		text.WriteString(" }\n")
	}
	return text.String()
}

package schedule

import (
	"fmt"
	"iter"
)

// Cursor is a position in a table.
type Cursor struct {
	Slot  int
	Cycle int
}

func (at Cursor) String() string {
	return fmt.Sprintf("(%d,%d)", at.Slot, at.Cycle)
}

// Next returns the position after at in a slots by cycles table.
//
// The cycle advances fastest. When it wraps, the slot advances, and when the
// slot wraps the major cycle restarts at (0,0).
func (at Cursor) Next(slots, cycles int) (next Cursor) {
	next = at
	next.Cycle++
	if next.Cycle >= cycles {
		next.Cycle = 0
		next.Slot++
		if next.Slot >= slots {
			next.Slot = 0
		}
	}
	return
}

// NextSlot returns the first position of the slot after at.
func (at Cursor) NextSlot(slots int) (next Cursor) {
	next.Slot = at.Slot + 1
	if next.Slot >= slots {
		next.Slot = 0
	}
	return
}

// Steps iterates over the positions of one major cycle in dispatch order.
func Steps(slots, cycles int) iter.Seq[Cursor] {
	return func(yield func(at Cursor) bool) {
		for slot := range slots {
			for cycle := range cycles {
				if !yield(Cursor{Slot: slot, Cycle: cycle}) {
					return
				}
			}
		}
	}
}

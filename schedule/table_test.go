package schedule

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stub struct {
	runs int
}

func (s *stub) Run() {
	s.runs++
}

func nop() Task {
	return &stub{}
}

func demoRegistry() Registry {
	return Registry{
		"one":      nop(),
		"two":      nop(),
		"three":    nop(),
		"four":     nop(),
		FillerName: nop(),
	}
}

func TestCursorNext(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		At   Cursor
		Next Cursor
	}){
		{At: Cursor{0, 0}, Next: Cursor{0, 1}},
		{At: Cursor{0, 4}, Next: Cursor{1, 0}},
		{At: Cursor{2, 3}, Next: Cursor{2, 4}},
		{At: Cursor{3, 4}, Next: Cursor{0, 0}},
	}

	for _, testcase := range table {
		assert.Equal(testcase.Next, testcase.At.Next(4, 5), testcase.At.String())
	}

	assert.Equal(Cursor{1, 0}, Cursor{0, 2}.NextSlot(4))
	assert.Equal(Cursor{0, 0}, Cursor{3, 1}.NextSlot(4))
}

func TestCursorSequence(t *testing.T) {
	assert := assert.New(t)

	for _, dims := range [][2]int{{1, 1}, {1, 3}, {3, 1}, {4, 5}, {7, 2}} {
		slots, cycles := dims[0], dims[1]

		var want []Cursor
		for slot := range slots {
			for cycle := range cycles {
				want = append(want, Cursor{Slot: slot, Cycle: cycle})
			}
		}
		assert.Equal(want, slices.Collect(Steps(slots, cycles)), "%v", dims)

		// Walking Next from (0,0) enumerates the same order, repeatedly.
		at := Cursor{}
		for round := range 3 {
			for n, expect := range want {
				assert.Equal(expect, at, "round %d step %d", round, n)
				at = at.Next(slots, cycles)
			}
		}
	}
}

func TestNewTable(t *testing.T) {
	assert := assert.New(t)

	_, err := NewTable(nil)
	assert.ErrorIs(err, ErrTableShape)

	_, err = NewTable([][]Entry{{}})
	assert.ErrorIs(err, ErrTableShape)

	_, err = NewTable([][]Entry{
		{{Name: "a", Task: nop()}, {Name: "b", Task: nop()}},
		{{Name: "a", Task: nop()}},
	})
	assert.ErrorIs(err, ErrTableShape)

	_, err = NewTable([][]Entry{
		{{Name: "a", Task: nop()}, {Name: "b"}},
	})
	assert.ErrorIs(err, ErrTaskMissing)
	var cell *ErrCell
	if assert.ErrorAs(err, &cell) {
		assert.Equal(0, cell.Slot)
		assert.Equal(1, cell.Cycle)
	}

	rows := [][]Entry{
		{{Name: "a", Task: nop()}, {Name: "b", Task: nop()}},
	}
	table, err := NewTable(rows)
	assert.NoError(err)
	rows[0][0].Name = "changed"
	assert.Equal("a", table.At(Cursor{0, 0}).Name)
	assert.Equal(1, table.Slots())
	assert.Equal(2, table.Cycles())
	assert.Equal(2, table.Len())
	assert.Panics(func() { table.At(Cursor{1, 0}) })
}

func TestLayoutBuild(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	plan := DefaultPlan()
	table, err := plan.Layout.Build(demoRegistry())
	require.NoError(err)

	assert.Equal(4, table.Slots())
	assert.Equal(5, table.Cycles())
	assert.Equal(plan.Layout, table.Layout())
	assert.True(table.At(Cursor{3, 0}).Filler())
	assert.False(table.At(Cursor{0, 0}).Filler())

	var names []string
	for _, entry := range table.All() {
		names = append(names, entry.Name)
	}
	assert.Equal([]string{
		"one", "two", "burn", "burn", "burn",
		"one", "three", "burn", "burn", "burn",
		"one", "four", "burn", "burn", "burn",
		"burn", "burn", "burn", "burn", "burn",
	}, names)

	assert.Equal("{ one, two, burn, burn, burn }\n", table.String()[:len("{ one, two, burn, burn, burn }\n")])
}

func TestLayoutBuildIdempotent(t *testing.T) {
	assert := assert.New(t)

	reg := demoRegistry()
	layout := DefaultPlan().Layout

	a, err := layout.Build(reg)
	assert.NoError(err)
	b, err := layout.Build(reg)
	assert.NoError(err)

	for at, entry := range a.All() {
		other := b.At(at)
		assert.Equal(entry.Name, other.Name, at.String())
		assert.Same(entry.Task, other.Task, at.String())
	}
}

func TestLayoutBuildUnknown(t *testing.T) {
	assert := assert.New(t)

	layout := Layout{{"one", "five"}}
	_, err := layout.Build(demoRegistry())

	var unknown ErrTaskUnknown
	assert.ErrorAs(err, &unknown)
	assert.Equal(ErrTaskUnknown("five"), unknown)

	var cell *ErrCell
	if assert.ErrorAs(err, &cell) {
		assert.Equal(Cursor{0, 1}, Cursor{cell.Slot, cell.Cycle})
	}
}

func TestMerge(t *testing.T) {
	assert := assert.New(t)

	filler := nop()
	reg := Merge(Registry{"one": nop(), FillerName: nop()}, Registry{FillerName: filler})

	assert.Equal([]string{"burn", "one"}, reg.Names())
	assert.Same(filler, reg[FillerName])
}

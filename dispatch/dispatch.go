// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package dispatch implements a time-triggered cyclic executive.
//
// The dispatcher walks a static schedule table forever, running one task
// per step and never starting a task before the previous one returned. Idle
// positions of the table hold the filler task, which spins on the tick
// source until a full slot time has elapsed since the previous filler
// finished. Overruns are not compensated: a late filler simply returns at
// once and all later timing shifts with it.
//
// A Dispatcher is not safe for concurrent use.
package dispatch

import (
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/ezrec/cyclex/schedule"
	"github.com/ezrec/cyclex/tick"
	"github.com/ezrec/cyclex/translate"
)

// State is the mutable state of a dispatcher.
type State struct {
	TicksPerSecond int64           // Tick rate recorded at initialization.
	SlotTicks      int64           // Slot time in ticks.
	Cursor         schedule.Cursor // Next position to dispatch.
	Then           int64           // Tick count when the filler last finished.

	Steps       uint64 // Tasks dispatched.
	MajorCycles uint64 // Complete traversals of the table.
	Overruns    uint64 // Fillers that found their slot time already used up.
}

// Dispatcher is a cyclic executive over a schedule plan.
type Dispatcher struct {
	Output io.Writer      // Diagnostic console output. Nil disables it.
	Logger zerolog.Logger // Structured log.

	plan   schedule.Plan
	source tick.Source
	table  *schedule.Table
	state  State
	ready  bool
}

// New creates a dispatcher for plan, timed by source.
// It must be initialized before it can run.
func New(source tick.Source, plan schedule.Plan) (d *Dispatcher) {
	d = &Dispatcher{
		Logger: zerolog.Nop(),
		plan:   plan,
		source: source,
	}

	return
}

// Initialize records the tick rate, then builds and installs the schedule
// table from the plan layout and reg. The filler is registered as
// schedule.FillerName and overrides any task of that name in reg.
//
// On error the dispatcher is left uninitialized.
func (d *Dispatcher) Initialize(rate tick.RateFunc, reg schedule.Registry) (err error) {
	defer func() {
		if err != nil {
			err = &ErrInitialize{Err: err}
		}
	}()

	d.ready = false
	d.table = nil

	if rate == nil {
		err = tick.ErrRate
		return
	}

	tps, err := rate()
	if err != nil || tps <= 0 {
		err = errors.Join(tick.ErrRate, err)
		return
	}

	err = d.plan.Validate()
	if err != nil {
		return
	}

	reg = schedule.Merge(reg, schedule.Registry{schedule.FillerName: d.Filler()})
	table, err := d.plan.Layout.Build(reg)
	if err != nil {
		return
	}

	d.table = table
	d.state = State{
		TicksPerSecond: tps,
		SlotTicks:      tick.SlotTicks(d.plan.SlotTime, tps),
		Then:           d.source.Ticks(),
	}
	d.ready = true

	translate.Fprintf(d.Output, "clock ticks/sec = %s\n\n", strconv.FormatInt(tps, 10))

	d.Logger.Info().
		Int64("tps", tps).
		Int64("slot_ticks", d.state.SlotTicks).
		Dur("slot_time", d.plan.SlotTime).
		Int("slots", table.Slots()).
		Int("cycles", table.Cycles()).
		Bool("filler_ends_slot", d.plan.FillerEndsSlot).
		Msg("dispatcher initialized")

	return
}

// Plan returns the plan of the dispatcher.
func (d *Dispatcher) Plan() schedule.Plan {
	return d.plan
}

// Table returns the installed table, or nil before initialization.
func (d *Dispatcher) Table() *schedule.Table {
	return d.table
}

// State returns a copy of the dispatcher state.
func (d *Dispatcher) State() State {
	return d.state
}

// Filler returns the idle task bound to this dispatcher.
func (d *Dispatcher) Filler() schedule.Task {
	return schedule.TaskFunc(d.burn)
}

// Step dispatches the task at the cursor, then advances the cursor.
func (d *Dispatcher) Step() (err error) {
	if !d.ready {
		err = ErrNotInitialized
		return
	}

	d.dispatch()

	return
}

// RunCycles dispatches until count more major cycles have completed.
func (d *Dispatcher) RunCycles(count int) (err error) {
	if !d.ready {
		err = ErrNotInitialized
		return
	}

	target := d.state.MajorCycles + uint64(max(count, 0))
	for d.state.MajorCycles < target {
		d.dispatch()
	}

	return
}

// RunForever dispatches the table forever. It only returns, with
// ErrNotInitialized, if the dispatcher was never successfully initialized.
func (d *Dispatcher) RunForever() (err error) {
	if !d.ready {
		err = ErrNotInitialized
		return
	}

	for {
		d.dispatch()
	}
}

func (d *Dispatcher) dispatch() {
	st := &d.state
	at := st.Cursor
	entry := d.table.At(at)

	d.Logger.Debug().Stringer("at", at).Str("task", entry.Name).Msg("dispatch")

	entry.Task.Run()
	st.Steps++

	next := at.Next(d.table.Slots(), d.table.Cycles())
	if d.plan.FillerEndsSlot && entry.Filler() {
		next = at.NextSlot(d.table.Slots())
	}
	if next == (schedule.Cursor{}) {
		st.MajorCycles++
	}
	st.Cursor = next
}

// burn spins until a slot time has passed since the previous burn finished.
func (d *Dispatcher) burn() {
	st := &d.state

	start := d.source.Ticks()
	now := start
	if late := now - st.Then - st.SlotTicks; late > 0 {
		st.Overruns++
		d.Logger.Debug().
			Stringer("at", st.Cursor).
			Int64("late_ticks", late).
			Msg("slot overrun")
	}

	for now-st.Then < st.SlotTicks {
		now = d.source.Ticks()
	}

	translate.Fprintf(d.Output, "burn time = %sms\n\n", digits(tick.Millis(now-start, st.TicksPerSecond)))

	st.Then = now
}

// digits formats n with at least two digits and no grouping, whatever the
// locale of the printer.
func digits(n int64) string {
	return fmt.Sprintf("%02d", n)
}

// Package schedule describes the static schedule of a cyclic executive.
//
// A schedule is a fixed grid of task slots (rows) by minor cycles (columns).
// The grid is resolved once, from a Layout of task names and a Registry of
// task actions, into an immutable Table. A Cursor walks the table in nested
// order: the cycle index advances fastest, then the slot index, then the
// whole major cycle repeats.
//
// Plans, which pair a layout with its slot time, can be written in Starlark
// or YAML.
package schedule

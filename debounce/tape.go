package debounce

import (
	"io"
)

// quiet reports whether b stands for a tick on which nothing arrived.
func quiet(b byte) bool {
	switch b {
	case ' ', '\t', '\r', '\n':
		return true
	}
	return false
}

// Tape replays recorded serial input, one byte per tick.
//
// Whitespace on the tape means nothing arrived on that tick, so a tape can
// be written as text with spacing for quiet time. After the input ends every
// tick is quiet.
//
// Each Poll is a blocking read of Input, so a Tape is for replay from a file.
// Use a Serial for a live stream.
type Tape struct {
	Input io.Reader

	ReadIndex int // Bytes consumed from Input.
	ended     bool
}

// Poll returns the character that arrived on this tick, if any.
func (tc *Tape) Poll() (ch byte, ok bool) {
	if tc.ended || tc.Input == nil {
		return
	}

	var one [1]byte
	n, err := tc.Input.Read(one[:])
	if n == 0 {
		if err != nil {
			tc.ended = true
		}
		return
	}
	tc.ReadIndex++

	if quiet(one[0]) {
		return
	}

	ch, ok = one[0], true
	return
}

// Ended reports whether the input is exhausted.
func (tc *Tape) Ended() bool {
	return tc.ended
}

package debounce

import (
	"io"
)

const (
	DEFAULT_FIFO = 256 // Receive buffer depth of a Serial.
)

// Serial polls a live stream without blocking the caller.
//
// A receiver goroutine moves bytes from the stream into a receive buffer,
// like a UART FIFO. Poll takes at most one byte from the buffer per tick and
// reports a quiet tick when it is empty. Whitespace is a quiet tick, as on a
// Tape.
type Serial struct {
	fifo  chan byte
	ended bool
}

// NewSerial starts receiving from input into a buffer of depth bytes.
func NewSerial(input io.Reader, depth int) (serial *Serial) {
	serial = &Serial{
		fifo: make(chan byte, max(depth, 1)),
	}

	if input == nil {
		close(serial.fifo)
		return
	}

	go serial.receive(input)

	return
}

func (serial *Serial) receive(input io.Reader) {
	defer close(serial.fifo)

	var buf [64]byte
	for {
		n, err := input.Read(buf[:])
		for _, b := range buf[:n] {
			serial.fifo <- b
		}
		if err != nil {
			return
		}
	}
}

// Poll returns the character received by this tick, if any.
func (serial *Serial) Poll() (ch byte, ok bool) {
	if serial.ended {
		return
	}

	select {
	case b, open := <-serial.fifo:
		if !open {
			serial.ended = true
			return
		}
		if quiet(b) {
			return
		}
		ch, ok = b, true
	default:
	}

	return
}

// Ended reports whether the stream is closed and its buffer drained.
func (serial *Serial) Ended() bool {
	return serial.ended
}

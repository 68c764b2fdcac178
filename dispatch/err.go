package dispatch

import (
	"errors"

	"github.com/ezrec/cyclex/translate"
)

var f = translate.From

var (
	ErrNotInitialized = errors.New(f("dispatcher not initialized"))
)

// ErrInitialize wraps the reason the dispatcher could not start.
type ErrInitialize struct {
	Err error
}

func (err *ErrInitialize) Error() string {
	return f("initialize: %v", err.Err)
}

func (err *ErrInitialize) Unwrap() error {
	return err.Err
}

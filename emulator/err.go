package emulator

import (
	"github.com/ezrec/nybble/translate"
)

var f = translate.From

// ErrRuntime indicates the tick, and listing line, of a runtime error.
type ErrRuntime struct {
	Tick   int
	LineNo int
	Err    error
}

func (err *ErrRuntime) Error() string {
	if err.LineNo == 0 {
		return f("tick %d %v", err.Tick, err.Err)
	}
	return f("tick %d line %d %v", err.Tick, err.LineNo, err.Err)
}

func (err *ErrRuntime) Unwrap() error {
	return err.Err
}

package drivererr

import (
	"fmt"
	"io"
)

type (
	// PanicError is the cause of errors created by Definition.CapturePanic.
	PanicError interface {
		error

		// PanicValue returns the value recovered from the panic.
		PanicValue() any
		// Unwrap returns the underlying error if the panic value is an error.
		Unwrap() error
	}

	panicError struct {
		msg        string
		panicValue any
	}
)

var (
	_ PanicError    = (*panicError)(nil)
	_ fmt.Formatter = (*panicError)(nil)
)

func newPanicError(panicValue any) *panicError {
	return &panicError{
		msg:        fmt.Sprintf("panic: %v", panicValue),
		panicValue: panicValue,
	}
}

func (e *panicError) Error() string {
	return e.msg
}

func (e *panicError) PanicValue() any {
	return e.panicValue
}

func (e *panicError) Unwrap() error {
	if err, ok := e.panicValue.(error); ok {
		return err
	}
	return nil
}

func (e *panicError) Format(s fmt.State, verb rune) {
	switch verb {
	case 'v':
		if s.Flag('+') {
			_, _ = io.WriteString(s, e.Error())
			_, _ = io.WriteString(s, "\n---")
			_, _ = io.WriteString(s, "\npanic_value: ")
			_, _ = fmt.Fprintf(s, "%+v", e.panicValue)
			return
		}
		_, _ = io.WriteString(s, e.Error())
	case 's':
		_, _ = io.WriteString(s, e.Error())
	case 'q':
		_, _ = fmt.Fprintf(s, "%q", e.Error())
	}
}

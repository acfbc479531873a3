package gen

import (
	"fmt"
	"runtime/debug"
	"strings"
)

// PanicError is returned by Resume when the task body panicked. The
// task is finished once the error has been reported.
type PanicError struct {
	// Value is the value passed to panic.
	Value any
	// Stack is the body's stack at the time of the panic.
	Stack []byte
}

func newPanicError(v any) *PanicError {
	return &PanicError{Value: v, Stack: debug.Stack()}
}

func (p *PanicError) Error() string {
	return fmt.Sprintf("%v", p.Value)
}

// ErrorWithStack returns the panic value followed by its stack.
func (p *PanicError) ErrorWithStack() string {
	return fmt.Sprintf("%v\n\n%s", p.Value, p.Stack)
}

// Unwrap returns the panic value when it is an error, so that a task
// panicking with ErrInvalidResumption still matches errors.Is.
func (p *PanicError) Unwrap() error {
	err, _ := p.Value.(error)
	return err
}

// DebugString renders the whole cause chain, one cause per paragraph,
// including the stack of every nested PanicError. A cause reached twice
// is printed once.
func (p *PanicError) DebugString() string {
	var sb strings.Builder
	seen := make(map[error]bool)
	pending := []error{p}

	for len(pending) > 0 {
		e := pending[0]
		pending = pending[1:]
		if e == nil || seen[e] {
			continue
		}
		seen[e] = true

		if sb.Len() > 0 {
			sb.WriteString("caused by: ")
		}
		if pe, ok := e.(*PanicError); ok {
			sb.WriteString(pe.ErrorWithStack())
		} else {
			sb.WriteString(e.Error())
		}
		sb.WriteByte('\n')

		switch u := e.(type) {
		case interface{ Unwrap() []error }:
			pending = append(pending, u.Unwrap()...)
		case interface{ Unwrap() error }:
			pending = append(pending, u.Unwrap())
		}
	}
	return sb.String()
}

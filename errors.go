package gen

import "errors"

var (
	// ErrInvalidResumption is returned when a finished task is resumed.
	ErrInvalidResumption = errors.New("gen: resumption of finished task")

	// ErrRunning is returned when a task is resumed or closed from
	// inside its own execution.
	ErrRunning = errors.New("gen: task already running")

	// ErrYieldOutsideBody is the panic value raised when a Yielder is
	// used while its task is not running, e.g. after it escaped the
	// body that received it.
	ErrYieldOutsideBody = errors.New("gen: yield outside running task body")

	errNilInner = errors.New("gen: delegation to nil task")

	// errClosed unwinds a suspended body when its task is closed.
	errClosed = errors.New("gen: task closed")
)

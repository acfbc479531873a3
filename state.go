package gen

import "fmt"

// State is the lifecycle position of a task.
type State uint8

const (
	// NotStarted tasks have run no code yet.
	NotStarted State = iota
	// Running tasks are executing inside a call to Resume.
	Running
	// Suspended tasks are paused at a yield point.
	Suspended
	// Finished tasks have returned, panicked or been closed.
	Finished
)

func (s State) String() string {
	switch s {
	case NotStarted:
		return "not started"
	case Running:
		return "running"
	case Suspended:
		return "suspended"
	case Finished:
		return "finished"
	}
	return fmt.Sprintf("State(%d)", uint8(s))
}

package gen

import (
	"fmt"
	"io"

	"go.uber.org/zap"
)

// looperLimit is the accumulator value a looper must exceed to finish.
const looperLimit = 8

// Looper is the accumulator task written as a state machine: its frame
// holds the accumulator i, the step inc, and the state that tells
// Resume where to continue.
//
// Each iteration adds inc to i, prints "before", yields i and takes the
// value sent back as the new inc, prints "after", and finishes if i is
// past 8.
type Looper struct {
	i     int
	inc   int
	state State
	out   io.Writer
	log   *zap.Logger
}

// NewLooper returns a looper that has not started. Its markers are
// written to the WithOutput writer.
func NewLooper(opts ...Option) *Looper {
	o := newOptions(append([]Option{WithName("looper")}, opts...))
	return &Looper{out: o.out, log: o.log}
}

// State returns the looper's lifecycle state.
func (l *Looper) State() State {
	return l.state
}

// Resume implements Suspendable. The looper returns 0 when it finishes.
func (l *Looper) Resume(in int) (int, bool, error) {
	switch l.state {
	case Finished:
		l.log.Debug("resume of finished task")
		return 0, false, ErrInvalidResumption
	case NotStarted:
		l.log.Debug("task started")
		l.i, l.inc = 0, 1
	case Suspended:
		l.inc = in
		l.mark("after")
		if l.i > looperLimit {
			l.state = Finished
			l.log.Debug("task finished")
			return 0, false, nil
		}
	}

	l.i += l.inc
	l.mark("before")
	l.state = Suspended
	l.log.Debug("task suspended")
	return l.i, true, nil
}

// Close finishes the looper.
func (l *Looper) Close() error {
	l.state = Finished
	return nil
}

func (l *Looper) mark(s string) {
	_, _ = fmt.Fprintln(l.out, s)
}

// LooperBody is the looper's algorithm as a Task body writing its
// markers to w.
func LooperBody(w io.Writer) Body[int, int] {
	return func(y *Yielder[int, int]) int {
		i, inc := 0, 1
		for {
			i += inc
			_, _ = fmt.Fprintln(w, "before")
			inc = y.Yield(i)
			_, _ = fmt.Fprintln(w, "after")
			if i > looperLimit {
				return 0
			}
		}
	}
}

// NewLooperTask returns the looper as a coroutine-backed Task.
func NewLooperTask(opts ...Option) *Task[int, int] {
	opts = append([]Option{WithName("looper")}, opts...)
	return New(LooperBody(newOptions(opts).out), opts...)
}

// NewOuterLooper returns a task that delegates to a new Looper and
// returns 0 once the looper finishes.
func NewOuterLooper(opts ...Option) *Delegation[int, int] {
	return Delegate[int, int](NewLooper(innerOptions(opts)...), func(int) int { return 0 },
		append([]Option{WithName("outer")}, opts...)...)
}

// NewOuterLooperTask is NewOuterLooper as a Task body. The inner looper
// is created when the outer task starts.
func NewOuterLooperTask(opts ...Option) *Task[int, int] {
	return New(func(y *Yielder[int, int]) int {
		if _, err := y.From(NewLooperTask(innerOptions(opts)...)); err != nil {
			panic(err)
		}
		return 0
	}, append([]Option{WithName("outer")}, opts...)...)
}

// innerOptions names the looper inside an outer task "<name>/looper"
// when the caller named the outer task, and "looper" otherwise.
func innerOptions(opts []Option) []Option {
	name := "looper"
	if outer := newOptions(append([]Option{WithName("")}, opts...)).name; outer != "" {
		name = outer + "/" + name
	}
	return append(opts[:len(opts):len(opts)], WithName(name))
}

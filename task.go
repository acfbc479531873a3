package gen

import "go.uber.org/zap"

// Suspendable is a task that can be started, suspended and resumed.
//
// Resume starts the task on its first call, ignoring in, and otherwise
// continues it with in as the result of the pending yield point. It
// returns the yielded value and true when the task suspends, the return
// value and false on the call that finishes it, and
// ErrInvalidResumption on any call after that.
type Suspendable[In, Out any] interface {
	Resume(in In) (Out, bool, error)
	State() State
}

// Body is the logic of a Task. It pauses at every call to y.Yield; its
// return value is reported by the Resume call that finishes the task.
type Body[In, Out any] func(y *Yielder[In, Out]) Out

// Task runs a Body on its own coroutine. Nothing in the body runs until
// the first call to Resume.
type Task[In, Out any] struct {
	co      *coroutine
	body    Body[In, Out]
	state   State
	closing bool
	in      In
	out     Out
	perr    *PanicError
	log     *zap.Logger
}

var _ Suspendable[int, int] = (*Task[int, int])(nil)

// New creates a task that will run body.
func New[In, Out any](body Body[In, Out], opts ...Option) *Task[In, Out] {
	o := newOptions(opts)
	t := &Task[In, Out]{body: body, log: o.log}
	t.co = newCoroutine(t.run)
	return t
}

func (t *Task[In, Out]) run(*coroutine) {
	defer func() {
		if p := recover(); p != nil && p != errClosed {
			t.perr = newPanicError(p)
		}
		t.state = Finished
	}()
	t.out = t.body(&Yielder[In, Out]{t: t})
}

// State returns the task's lifecycle state.
func (t *Task[In, Out]) State() State {
	return t.state
}

// Resume implements Suspendable. A panic in the body is returned as a
// *PanicError and finishes the task.
func (t *Task[In, Out]) Resume(in In) (Out, bool, error) {
	var zero Out

	switch t.state {
	case Running:
		return zero, false, ErrRunning
	case Finished:
		t.log.Debug("resume of finished task")
		return zero, false, ErrInvalidResumption
	case NotStarted:
		t.log.Debug("task started")
		var none In
		in = none
	}

	t.in = in
	t.state = Running
	t.co.resume()

	if p := t.perr; p != nil {
		t.perr = nil
		t.log.Debug("task panicked", zap.Error(p))
		return zero, false, p
	}
	if t.state == Finished {
		out := t.out
		t.out = zero
		t.log.Debug("task finished")
		return out, false, nil
	}
	t.log.Debug("task suspended")
	return t.out, true, nil
}

// Close finishes the task without running it further. A suspended body
// is unwound from its yield point so that its deferred calls run; tasks
// it is delegating to are closed as well. Close returns a *PanicError
// if the body panics while unwinding, and ErrRunning when called from
// inside the body. Closing a finished task does nothing.
func (t *Task[In, Out]) Close() error {
	switch t.state {
	case Finished:
		return nil
	case Running:
		return ErrRunning
	}

	t.log.Debug("task closed", zap.Stringer("state", t.state))
	t.closing = true
	t.state = Running
	t.co.cancel()
	t.state = Finished

	if p := t.perr; p != nil {
		t.perr = nil
		return p
	}
	return nil
}

// Yielder is handed to a Body and is only valid while that body runs.
type Yielder[In, Out any] struct {
	t *Task[In, Out]
}

// Yield suspends the task, handing v to the caller of Resume, and
// returns the value passed to the Resume call that continues it.
//
// Yield panics with ErrYieldOutsideBody when the task is not running.
// When the task is closed while suspended, Yield does not return: it
// panics to unwind the body, and keeps doing so if the body recovers
// and yields again.
func (y *Yielder[In, Out]) Yield(v Out) In {
	t := y.t
	if t.state != Running {
		panic(ErrYieldOutsideBody)
	}
	if t.closing {
		panic(errClosed)
	}

	t.out = v
	t.state = Suspended
	if !t.co.suspend() {
		panic(errClosed)
	}
	return t.in
}

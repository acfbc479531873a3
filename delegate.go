package gen

import "go.uber.org/zap"

type closer interface {
	Close() error
}

// From delegates to inner until it finishes and returns inner's return
// value. Meanwhile every value inner yields is yielded unchanged by the
// calling body, and every value sent to the calling task is sent
// unchanged to inner. An error from inner ends the delegation and is
// returned as is.
//
// If the calling task is closed during the delegation, inner is closed
// too when it has a Close method, and an error from that Close is
// reported by the calling task's Close.
func (y *Yielder[In, Out]) From(inner Suspendable[In, Out]) (Out, error) {
	defer func() {
		if c, ok := inner.(closer); ok && y.t.closing {
			if err := c.Close(); err != nil {
				panic(err)
			}
		}
	}()

	var none In
	out, suspended, err := inner.Resume(none)
	for err == nil && suspended {
		out, suspended, err = inner.Resume(y.Yield(out))
	}
	return out, err
}

// Delegation is a task whose only work is to delegate to an inner task
// and then finish. The link to the inner task is dropped as soon as the
// inner task finishes.
type Delegation[In, Out any] struct {
	inner Suspendable[In, Out]
	then  func(Out) Out
	state State
	log   *zap.Logger
}

var _ Suspendable[int, int] = (*Delegation[int, int])(nil)

// Delegate returns a task that forwards every resumption to inner. When
// inner finishes, the delegation finishes with then applied to inner's
// return value; a nil then passes it through. Delegate panics if inner
// is nil.
func Delegate[In, Out any](inner Suspendable[In, Out], then func(Out) Out, opts ...Option) *Delegation[In, Out] {
	if inner == nil {
		panic(errNilInner)
	}
	o := newOptions(opts)
	return &Delegation[In, Out]{inner: inner, then: then, log: o.log}
}

// State returns the delegation's lifecycle state.
func (d *Delegation[In, Out]) State() State {
	return d.state
}

// Resume implements Suspendable. The first call starts inner with the
// zero value of In. Errors from inner are returned unchanged and finish
// the delegation.
func (d *Delegation[In, Out]) Resume(in In) (Out, bool, error) {
	var zero Out

	switch d.state {
	case Running:
		return zero, false, ErrRunning
	case Finished:
		d.log.Debug("resume of finished task")
		return zero, false, ErrInvalidResumption
	case NotStarted:
		d.log.Debug("task started")
		var none In
		in = none
	}

	d.state = Running
	out, suspended, err := d.inner.Resume(in)
	if err == nil && suspended {
		d.state = Suspended
		d.log.Debug("task suspended")
		return out, true, nil
	}

	d.inner = nil
	d.state = Finished
	if err != nil {
		d.log.Debug("delegation failed", zap.Error(err))
		return zero, false, err
	}
	d.log.Debug("task finished")
	if d.then != nil {
		out = d.then(out)
	}
	return out, false, nil
}

// Close finishes the delegation, closing inner if it has a Close method.
func (d *Delegation[In, Out]) Close() error {
	switch d.state {
	case Finished:
		return nil
	case Running:
		return ErrRunning
	}

	d.log.Debug("task closed", zap.Stringer("state", d.state))
	inner := d.inner
	d.inner = nil
	d.state = Finished
	if c, ok := inner.(closer); ok {
		return c.Close()
	}
	return nil
}

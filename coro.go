package gen

import "iter"

// coroutine is a runtime coroutine reached through iter.Pull. Control
// moves into the body only from resume and back out only from suspend,
// so exactly one side runs at a time.
type coroutine struct {
	next  func() (struct{}, bool)
	stop  func()
	yield func(struct{}) bool
}

// newCoroutine creates a coroutine for fn. fn does not start until the
// first call to resume.
func newCoroutine(fn func(*coroutine)) *coroutine {
	c := new(coroutine)
	c.next, c.stop = iter.Pull(func(yield func(struct{}) bool) {
		c.yield = yield
		fn(c)
	})
	return c
}

// resume switches into the coroutine. It returns false once fn has
// returned.
func (c *coroutine) resume() bool {
	_, alive := c.next()
	return alive
}

// suspend switches back to the caller of resume. It returns false when
// the coroutine is being stopped and fn must unwind.
func (c *coroutine) suspend() bool {
	return c.yield(struct{}{})
}

// cancel unwinds a suspended coroutine. It is a no-op for one that never
// started or has already returned.
func (c *coroutine) cancel() {
	c.stop()
}

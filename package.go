// Package gen provides suspendable tasks: units of execution that can
// pause mid-way, hand a value to their caller, and later continue from
// the same point with a value sent back in.
//
// Every task implements Suspendable. Its Resume method starts the task
// on the first call (the value passed in is ignored) and continues it
// on later calls, where the value passed in becomes the result of the
// pending yield point. Resume reports the yielded value and true while
// the task is suspended, the task's return value and false on the call
// that finishes it, and ErrInvalidResumption on every call after that.
//
// Tasks come in two forms. A Task runs an ordinary Go function that
// receives a Yielder and pauses with Yielder.Yield; it is backed by a
// runtime coroutine, so the function keeps its own stack between
// resumptions. A hand-written state machine such as Looper keeps its
// resume point and locals in struct fields instead.
//
// Delegation composes two tasks into one. While an outer task delegates,
// every value the caller sends is forwarded verbatim to the inner task
// and every value the inner task yields is forwarded verbatim back. When
// the inner task finishes, the outer task continues with the inner
// task's return value. Delegate builds such an outer task around any
// Suspendable; Yielder.From delegates from inside a Task body.
//
// Tasks are cooperative and single-threaded: a task runs only while its
// holder is inside Resume, and none of the types here are safe for
// concurrent use.
package gen

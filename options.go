package gen

import (
	"io"
	"os"

	"go.uber.org/zap"
)

type options struct {
	out  io.Writer
	log  *zap.Logger
	name string
}

// Option configures a task at construction.
type Option func(*options)

// WithOutput sets where a task writes its program output. The default
// is os.Stdout.
func WithOutput(w io.Writer) Option {
	return func(o *options) { o.out = w }
}

// WithLogger sets the logger that receives lifecycle events at debug
// level. The default discards everything.
func WithLogger(l *zap.Logger) Option {
	return func(o *options) { o.log = l }
}

// WithName names the task in log entries.
func WithName(name string) Option {
	return func(o *options) { o.name = name }
}

func newOptions(opts []Option) options {
	o := options{out: os.Stdout, name: "task"}
	for _, opt := range opts {
		opt(&o)
	}
	if o.out == nil {
		o.out = io.Discard
	}
	if o.log == nil {
		o.log = zap.NewNop()
	}
	o.log = o.log.With(zap.String("task", o.name))
	return o
}

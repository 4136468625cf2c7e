package delegate

import "github.com/rs/zerolog"

// Option configures a Delegate.
type Option func(*options)

type options struct {
	logger       zerolog.Logger
	name         string
	panicHandler PanicHandler
}

func newOptions(opts []Option) options {
	o := options{logger: zerolog.Nop()}
	for _, opt := range opts {
		opt(&o)
	}
	if o.name != "" {
		o.logger = o.logger.With().Str("delegate", o.name).Logger()
	}
	return o
}

// WithLogger sets the logger used to report registry changes.
// Changes are logged at debug level, each invoked target at trace level.
// By default nothing is logged.
func WithLogger(logger zerolog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithName tags every log line with the delegate's name.
// Has no effect unless combined with WithLogger; order does not matter.
func WithName(name string) Option {
	return func(o *options) {
		o.name = name
	}
}

// WithPanicHandler recovers targets that panic during Invoke.
// The handler receives the target name and the recovered value, and the
// remaining targets still run. Without a handler, a panic propagates to the
// caller of Invoke and the remaining targets are skipped.
func WithPanicHandler(handler PanicHandler) Option {
	return func(o *options) {
		o.panicHandler = handler
	}
}

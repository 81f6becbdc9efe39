package priority

import (
	"io"

	"github.com/sirupsen/logrus"
)

// options defines all configuration options for a queue.
type options struct {
	reverse  bool               // Serve the greatest key first
	capacity int                // Initial capacity of the backing store
	logger   logrus.FieldLogger // Receives debug entries for bulk operations
}

// Option is a function that configures the queue options.
type Option func(*options)

// WithReverse makes the queue serve elements from the greatest key to the
// smallest. Elements with equal keys are still served in insertion order.
func WithReverse() Option {
	return func(o *options) {
		o.reverse = true
	}
}

// WithCapacity pre-sizes the backing store for n elements.
func WithCapacity(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.capacity = n
		}
	}
}

// WithLogger sets the logger used for debug output.
func WithLogger(logger logrus.FieldLogger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// defaultOptions returns the default configuration.
func defaultOptions() options {
	return options{
		reverse:  false,
		capacity: 0,
		logger:   discard,
	}
}

// discard is shared by every queue created without WithLogger.
var discard = func() logrus.FieldLogger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}()

func buildOptions(opts []Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

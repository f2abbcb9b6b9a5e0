package worker

import "github.com/okian/berth/pkg/logger"

// Option applies a configuration option to a Worker.
type Option func(*Worker)

// WithName sets the worker name used for logging.
func WithName(name string) Option {
	return func(w *Worker) {
		if name != "" {
			w.name = name
			w.logger = logger.Get().Named(name)
		}
	}
}

package rpn

import (
	"log/slog"
	"os"
)

// config holds everything an Evaluator can be configured with
type config struct {
	handler slog.Handler
}

// Option is a function that modifies the evaluator configuration
type Option func(*config) error

// WithLogHandler sets the handler evaluation traces are written to. A nil
// handler keeps the default.
func WithLogHandler(handler slog.Handler) Option {
	return func(c *config) error {
		if handler != nil {
			c.handler = handler
		}
		return nil
	}
}

func defaultConfig() *config {
	return &config{
		handler: slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}),
	}
}

func (c *config) logger(group string) *slog.Logger {
	return slog.New(c.handler.WithGroup(group))
}

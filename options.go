package colmap

import (
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
)

// Option configures a SchemaService.
type Option interface {
	apply(*serviceConfig)
}

// optionFunc adapts a function to the Option interface.
type optionFunc func(*serviceConfig)

func (f optionFunc) apply(c *serviceConfig) { f(c) }

type serviceConfig struct {
	database   string
	logger     *zap.Logger
	metricsReg prometheus.Registerer
}

// WithDefaultDatabase sets the database used by Describe and by Create when
// the request does not name one.
func WithDefaultDatabase(name string) Option {
	return optionFunc(func(c *serviceConfig) {
		c.database = name
	})
}

// WithLogger enables structured logging for service operations.
// Pass nil to disable (default).
func WithLogger(l *zap.Logger) Option {
	return optionFunc(func(c *serviceConfig) {
		c.logger = l
	})
}

// WithPrometheus registers operation counts and durations on the given
// registerer. Pass nil to disable (default).
func WithPrometheus(reg prometheus.Registerer) Option {
	return optionFunc(func(c *serviceConfig) {
		c.metricsReg = reg
	})
}

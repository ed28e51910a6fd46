package colmap

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	logpkg "github.com/kailas-cloud/colmap/internal/logger"
)

type serviceMetrics struct {
	operations *prometheus.CounterVec
	duration   *prometheus.HistogramVec
}

func newServiceMetrics(reg prometheus.Registerer) (*serviceMetrics, error) {
	m := &serviceMetrics{
		operations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "colmap",
			Subsystem: "sdk",
			Name:      "operations_total",
			Help:      "Total schema operations by type and status.",
		}, []string{"operation", "status"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "colmap",
			Subsystem: "sdk",
			Name:      "operation_duration_seconds",
			Help:      "Schema operation duration in seconds.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"operation"}),
	}
	if err := registerOrReuse(reg, &m.operations); err != nil {
		return nil, err
	}
	if err := registerOrReuse(reg, &m.duration); err != nil {
		return nil, err
	}
	return m, nil
}

// registerOrReuse registers a collector or picks up the one already there,
// so several services can share a registerer.
func registerOrReuse[T prometheus.Collector](reg prometheus.Registerer, c *T) error {
	err := reg.Register(*c)
	if err == nil {
		return nil
	}
	var are prometheus.AlreadyRegisteredError
	if !errors.As(err, &are) {
		return fmt.Errorf("colmap: register metric: %w", err)
	}
	existing, ok := are.ExistingCollector.(T)
	if !ok {
		return fmt.Errorf("colmap: metric already registered with incompatible type: %T", are.ExistingCollector)
	}
	*c = existing
	return nil
}

// observer logs and counts service operations. A nil observer is a no-op.
type observer struct {
	logger  *zap.Logger
	metrics *serviceMetrics
}

func newObserver(logger *zap.Logger, reg prometheus.Registerer) (*observer, error) {
	o := &observer{logger: logger}
	if reg != nil {
		m, err := newServiceMetrics(reg)
		if err != nil {
			return nil, err
		}
		o.metrics = m
	}
	return o, nil
}

// observe records one operation. Without a configured logger it falls back
// to the one carried by ctx.
func (o *observer) observe(ctx context.Context, op, collection string, start time.Time, err error) {
	if o == nil {
		return
	}
	dur := time.Since(start)

	if o.metrics != nil {
		status := "ok"
		if err != nil {
			status = "error"
		}
		o.metrics.operations.WithLabelValues(op, status).Inc()
		o.metrics.duration.WithLabelValues(op).Observe(dur.Seconds())
	}

	log := o.logger
	if log == nil {
		log = logpkg.FromContext(ctx)
	}
	if err != nil {
		log.Warn("operation failed",
			zap.String("op", op),
			zap.String("collection", collection),
			zap.Duration("duration", dur),
			zap.Error(err),
		)
		return
	}
	log.Debug("operation completed",
		zap.String("op", op),
		zap.String("collection", collection),
		zap.Duration("duration", dur),
	)
}

package sahayata

import (
	"errors"
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/kailas-cloud/sahayata/internal/domain"
	"github.com/kailas-cloud/sahayata/internal/metrics"
)

// Operation outcomes, used as the "outcome" label.
const (
	outcomeOK          = "ok"
	outcomeNotFound    = "not_found"
	outcomeInvalid     = "invalid"
	outcomeUnavailable = "unavailable"
	outcomeError       = "error"
)

func outcomeOf(err error) string {
	switch {
	case err == nil:
		return outcomeOK
	case errors.Is(err, domain.ErrSchemeNotFound):
		return outcomeNotFound
	case errors.Is(err, domain.ErrInvalidQuery), errors.Is(err, domain.ErrInvalidProfile):
		return outcomeInvalid
	case errors.Is(err, domain.ErrStoreUnavailable):
		return outcomeUnavailable
	default:
		return outcomeError
	}
}

type sdkMetrics struct {
	calls   *prometheus.CounterVec
	latency *prometheus.HistogramVec
}

func newSDKMetrics(reg prometheus.Registerer) (*sdkMetrics, error) {
	m := &sdkMetrics{
		calls: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: "sdk",
			Name:      "calls_total",
			Help:      "Embedded client calls by operation and outcome.",
		}, []string{"operation", "outcome"}),
		latency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: metrics.Namespace,
			Subsystem: "sdk",
			Name:      "call_duration_seconds",
			Help:      "Embedded client call latency.",
			Buckets:   []float64{0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1},
		}, []string{"operation"}),
	}
	if err := registerOrReuse(reg, &m.calls); err != nil {
		return nil, err
	}
	if err := registerOrReuse(reg, &m.latency); err != nil {
		return nil, err
	}
	return m, nil
}

// registerOrReuse registers c, or points it at the collector a previous
// client already registered under the same name.
func registerOrReuse[T prometheus.Collector](reg prometheus.Registerer, c *T) error {
	err := reg.Register(*c)
	if err == nil {
		return nil
	}
	var are prometheus.AlreadyRegisteredError
	if !errors.As(err, &are) {
		return fmt.Errorf("sahayata: register metric: %w", err)
	}
	existing, ok := are.ExistingCollector.(T)
	if !ok {
		return fmt.Errorf("sahayata: metric already registered as %T", are.ExistingCollector)
	}
	*c = existing
	return nil
}

// observer logs and counts client calls. Either half may be absent.
type observer struct {
	logger  *zap.Logger
	metrics *sdkMetrics
}

func newObserver(logger *zap.Logger, reg prometheus.Registerer) (*observer, error) {
	o := &observer{logger: logger}
	if reg != nil {
		m, err := newSDKMetrics(reg)
		if err != nil {
			return nil, err
		}
		o.metrics = m
	}
	return o, nil
}

// track starts timing op; call the returned func with the call's error.
func (o *observer) track(op string) func(error) {
	start := time.Now()
	return func(err error) {
		if o == nil {
			return
		}
		elapsed := time.Since(start)
		outcome := outcomeOf(err)

		if o.metrics != nil {
			o.metrics.calls.WithLabelValues(op, outcome).Inc()
			o.metrics.latency.WithLabelValues(op).Observe(elapsed.Seconds())
		}
		if o.logger == nil {
			return
		}
		fields := []zap.Field{
			zap.String("op", op),
			zap.String("outcome", outcome),
			zap.Duration("elapsed", elapsed),
		}
		switch outcome {
		case outcomeUnavailable, outcomeError:
			o.logger.Warn("sdk call failed", append(fields, zap.Error(err))...)
		default:
			o.logger.Debug("sdk call", fields...)
		}
	}
}

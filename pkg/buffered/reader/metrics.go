package reader

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/vnykmshr/bufkit/pkg/metrics"
	"github.com/vnykmshr/bufkit/pkg/transport"
)

// observer records reader activity into a metrics registry.
// A nil observer records nothing.
type observer struct {
	registry *metrics.Registry
	name     string
}

// NewWithMetrics creates a Reader with metrics enabled.
func NewWithMetrics(src transport.Source, name string) *Reader {
	// Use a separate registry for each metrics-enabled component to avoid conflicts
	registry := prometheus.NewRegistry()
	config := metrics.Config{
		Enabled:  true,
		Registry: registry,
	}

	return NewWithConfigAndMetrics(src, DefaultConfig(), name, config)
}

// NewWithConfigAndMetrics creates a Reader with custom config and metrics.
// If metricsConfig is disabled the plain Reader is returned.
func NewWithConfigAndMetrics(src transport.Source, config Config, name string, metricsConfig metrics.Config) *Reader {
	r := NewWithConfig(src, config)

	if !metricsConfig.Enabled {
		return r
	}

	registry := metrics.RegistryFor(metricsConfig)
	r.obs = &observer{registry: registry, name: name}
	return r
}

// MetricsEnabled returns true if the Reader records metrics.
func (r *Reader) MetricsEnabled() bool {
	return r.obs != nil
}

func (o *observer) fill(res transport.ReadResult) {
	if o == nil {
		return
	}
	o.registry.ReaderFills.WithLabelValues(o.name).Inc()
	if len(res.Data) > 0 {
		o.registry.ReaderBytesFilled.WithLabelValues(o.name).Add(float64(len(res.Data)))
	}
	if res.Err != nil {
		o.registry.ReaderErrors.WithLabelValues(o.name).Inc()
	}
	if res.Timeout {
		o.registry.ReaderTimeouts.WithLabelValues(o.name).Inc()
	}
}

func (o *observer) scan(result string) {
	if o == nil {
		return
	}
	o.registry.ReaderScans.WithLabelValues(o.name, result).Inc()
}

func (o *observer) buffered(n int) {
	if o == nil {
		return
	}
	o.registry.ReaderBuffered.WithLabelValues(o.name).Set(float64(n))
}

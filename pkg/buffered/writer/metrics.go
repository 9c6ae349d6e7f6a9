package writer

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/vnykmshr/bufkit/pkg/metrics"
	"github.com/vnykmshr/bufkit/pkg/transport"
)

// observer records writer activity into a metrics registry.
// A nil observer records nothing.
type observer struct {
	registry *metrics.Registry
	name     string
}

// NewWithMetrics creates a Writer with metrics enabled.
func NewWithMetrics(sink transport.Sink, name string) *Writer {
	// Use a separate registry for each metrics-enabled component to avoid conflicts
	registry := prometheus.NewRegistry()
	config := metrics.Config{
		Enabled:  true,
		Registry: registry,
	}

	return NewWithConfigAndMetrics(sink, DefaultConfig(), name, config)
}

// NewWithConfigAndMetrics creates a Writer with custom config and metrics.
// If metricsConfig is disabled the plain Writer is returned.
func NewWithConfigAndMetrics(sink transport.Sink, config Config, name string, metricsConfig metrics.Config) *Writer {
	w := NewWithConfig(sink, config)

	if !metricsConfig.Enabled {
		return w
	}

	registry := metrics.RegistryFor(metricsConfig)
	w.obs = &observer{registry: registry, name: name}
	return w
}

// MetricsEnabled returns true if the Writer records metrics.
func (w *Writer) MetricsEnabled() bool {
	return w.obs != nil
}

func (o *observer) flush(remaining int, d time.Duration) {
	if o == nil {
		return
	}
	o.registry.WriterFlushes.WithLabelValues(o.name).Inc()
	o.registry.WriterFlushDuration.WithLabelValues(o.name).Observe(d.Seconds())
	o.registry.WriterBuffered.WithLabelValues(o.name).Set(float64(remaining))
}

func (o *observer) bytesOut(n int) {
	if o == nil || n == 0 {
		return
	}
	o.registry.WriterBytesOut.WithLabelValues(o.name).Add(float64(n))
}

func (o *observer) failed() {
	if o == nil {
		return
	}
	o.registry.WriterErrors.WithLabelValues(o.name).Inc()
}

func (o *observer) timedOut() {
	if o == nil {
		return
	}
	o.registry.WriterTimeouts.WithLabelValues(o.name).Inc()
}

func (o *observer) buffered(n int) {
	if o == nil {
		return
	}
	o.registry.WriterBuffered.WithLabelValues(o.name).Set(float64(n))
}

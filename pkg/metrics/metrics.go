// Package metrics provides Prometheus instrumentation for bufkit components.
package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// DefaultNamespace is the metric namespace used when none is configured.
const DefaultNamespace = "bufkit"

// Registry holds all metric instances for bufkit components.
type Registry struct {
	// Reader Metrics
	ReaderFills       *prometheus.CounterVec
	ReaderBytesFilled *prometheus.CounterVec
	ReaderScans       *prometheus.CounterVec
	ReaderTimeouts    *prometheus.CounterVec
	ReaderErrors      *prometheus.CounterVec
	ReaderBuffered    *prometheus.GaugeVec

	// Writer Metrics
	WriterFlushes       *prometheus.CounterVec
	WriterBytesOut      *prometheus.CounterVec
	WriterTimeouts      *prometheus.CounterVec
	WriterErrors        *prometheus.CounterVec
	WriterBuffered      *prometheus.GaugeVec
	WriterFlushDuration *prometheus.HistogramVec
}

// DefaultRegistry is the default metrics registry used by bufkit components.
var DefaultRegistry *Registry

func init() {
	DefaultRegistry = RegistryFor(DefaultConfig())
}

type registryKey struct {
	reg       prometheus.Registerer
	namespace string
}

var (
	registriesMu sync.Mutex
	registries   = map[registryKey]*Registry{}
)

// RegistryFor returns the Registry for config's registerer and namespace,
// creating it on first use. Components sharing a registerer share the
// collectors, so constructing several instrumented components never
// registers the same metric twice. Constant labels are taken from the first
// config seen for a given registerer and namespace.
func RegistryFor(config Config) *Registry {
	if config.Registry == nil {
		config.Registry = prometheus.DefaultRegisterer
	}
	if config.Namespace == "" {
		config.Namespace = DefaultNamespace
	}
	key := registryKey{reg: config.Registry, namespace: config.Namespace}

	registriesMu.Lock()
	defer registriesMu.Unlock()

	if r, ok := registries[key]; ok {
		return r
	}
	r := NewRegistryFromConfig(config)
	registries[key] = r
	return r
}

// NewRegistry creates a new metrics registry with the given Prometheus registerer.
// It panics if the registerer already holds bufkit metrics; use RegistryFor
// to share collectors.
func NewRegistry(reg prometheus.Registerer) *Registry {
	return NewRegistryFromConfig(Config{
		Enabled:   true,
		Registry:  reg,
		Namespace: DefaultNamespace,
	})
}

// NewRegistryFromConfig creates a metrics registry honoring the namespace and
// constant labels of config. A nil config.Registry registers with
// prometheus.DefaultRegisterer.
func NewRegistryFromConfig(config Config) *Registry {
	reg := config.Registry
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	ns := config.Namespace
	if ns == "" {
		ns = DefaultNamespace
	}
	factory := promauto.With(reg)
	labels := config.Labels

	return &Registry{
		ReaderFills: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace:   ns,
				Subsystem:   "reader",
				Name:        "fills_total",
				Help:        "Total number of reads issued to the underlying source",
				ConstLabels: labels,
			},
			[]string{"reader_name"},
		),

		ReaderBytesFilled: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace:   ns,
				Subsystem:   "reader",
				Name:        "bytes_filled_total",
				Help:        "Total bytes received from the underlying source",
				ConstLabels: labels,
			},
			[]string{"reader_name"},
		),

		ReaderScans: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace:   ns,
				Subsystem:   "reader",
				Name:        "scans_total",
				Help:        "Total number of delimiter scans by outcome",
				ConstLabels: labels,
			},
			[]string{"reader_name", "result"},
		),

		ReaderTimeouts: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace:   ns,
				Subsystem:   "reader",
				Name:        "timeouts_total",
				Help:        "Total number of source reads that stalled",
				ConstLabels: labels,
			},
			[]string{"reader_name"},
		),

		ReaderErrors: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace:   ns,
				Subsystem:   "reader",
				Name:        "errors_total",
				Help:        "Total number of source reads that failed",
				ConstLabels: labels,
			},
			[]string{"reader_name"},
		),

		ReaderBuffered: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace:   ns,
				Subsystem:   "reader",
				Name:        "buffered_bytes",
				Help:        "Bytes held by the reader and not yet delivered",
				ConstLabels: labels,
			},
			[]string{"reader_name"},
		),

		WriterFlushes: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace:   ns,
				Subsystem:   "writer",
				Name:        "flushes_total",
				Help:        "Total number of writer flushes",
				ConstLabels: labels,
			},
			[]string{"writer_name"},
		),

		WriterBytesOut: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace:   ns,
				Subsystem:   "writer",
				Name:        "bytes_out_total",
				Help:        "Total bytes accepted by the underlying sink",
				ConstLabels: labels,
			},
			[]string{"writer_name"},
		),

		WriterTimeouts: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace:   ns,
				Subsystem:   "writer",
				Name:        "timeouts_total",
				Help:        "Total number of flushes or writeouts that stalled",
				ConstLabels: labels,
			},
			[]string{"writer_name"},
		),

		WriterErrors: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace:   ns,
				Subsystem:   "writer",
				Name:        "errors_total",
				Help:        "Total number of flushes or writeouts that failed",
				ConstLabels: labels,
			},
			[]string{"writer_name"},
		),

		WriterBuffered: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace:   ns,
				Subsystem:   "writer",
				Name:        "buffered_bytes",
				Help:        "Bytes held by the writer and not yet sent",
				ConstLabels: labels,
			},
			[]string{"writer_name"},
		),

		WriterFlushDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace:   ns,
				Subsystem:   "writer",
				Name:        "flush_duration_seconds",
				Help:        "Time spent draining the writer buffer",
				Buckets:     prometheus.DefBuckets,
				ConstLabels: labels,
			},
			[]string{"writer_name"},
		),
	}
}

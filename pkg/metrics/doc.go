// Package metrics provides Prometheus instrumentation for bufkit components.
//
// # Quick Start
//
// Enable metrics by using the metrics-enabled constructors:
//
//	r := reader.NewWithMetrics(src, "upstream")
//	w := writer.NewWithMetrics(sink, "downstream")
//
// Then expose metrics via HTTP:
//
//	http.Handle("/metrics", promhttp.Handler())
//	log.Fatal(http.ListenAndServe(":8080", nil))
//
// # Custom Registry
//
// Use a custom Prometheus registry for isolation:
//
//	registry := prometheus.NewRegistry()
//	config := metrics.Config{
//		Enabled:  true,
//		Registry: registry,
//	}
//
//	w := writer.NewWithConfigAndMetrics(sink, writer.DefaultConfig(), "custom", config)
//
// # Available Metrics
//
// ## Reader Metrics
//
//   - bufkit_reader_fills_total: Reads issued to the source
//   - bufkit_reader_bytes_filled_total: Bytes received from the source
//   - bufkit_reader_scans_total: Delimiter scans, labeled by result ("found", "not_found", "failed")
//   - bufkit_reader_timeouts_total: Source reads that stalled
//   - bufkit_reader_errors_total: Source reads that failed
//   - bufkit_reader_buffered_bytes: Bytes buffered and not yet delivered
//
// ## Writer Metrics
//
//   - bufkit_writer_flushes_total: Flushes issued (automatic and explicit)
//   - bufkit_writer_bytes_out_total: Bytes accepted by the sink
//   - bufkit_writer_timeouts_total: Flushes or writeouts that stalled
//   - bufkit_writer_errors_total: Flushes or writeouts that failed
//   - bufkit_writer_buffered_bytes: Bytes buffered and not yet sent
//   - bufkit_writer_flush_duration_seconds: Time spent draining the buffer
//
// # Configuration
//
//	config := metrics.Config{
//		Enabled:   true,
//		Registry:  prometheus.DefaultRegisterer,
//		Namespace: "myapp",                             // Override default "bufkit"
//		Labels:    prometheus.Labels{"version": "1.0"}, // Constant labels
//	}
//
// Metrics are updated only when operations occur; there are no background
// goroutines or timers.
package metrics

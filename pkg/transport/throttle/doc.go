// Package throttle limits the byte rate of transport capabilities using a
// token bucket.
//
// A throttled Source or Sink never blocks. When the byte budget is exhausted
// it reports a timeout instead of calling the wrapped capability, and when
// some budget is left it narrows the request to fit. Buffered readers and
// writers already treat both outcomes as ordinary transport conditions:
//
//	sink, err := throttle.NewSink(transport.FromWriter(conn), throttle.Config{
//		Rate:  64 * 1024, // 64 KiB per second
//		Burst: 16 * 1024,
//	})
//	if err != nil {
//		return err
//	}
//	w := writer.New(sink)
//
// Buckets start full unless Config.EmptyStart is set. A zero Rate grants
// only that initial budget; Inf disables throttling.
package throttle

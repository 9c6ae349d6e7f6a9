/*
Package bufkit provides buffered reading and writing on top of any byte
transport that can read or write a chunk at a time.

Buffered I/O (pkg/buffered):
  - reader: Bounded reads, exact-length reads and delimiter scanning
  - writer: Batched writes with automatic flush on a full buffer

Transports (pkg/transport):
  - transport: Source and Sink contracts, io.Reader and io.Writer adapters
  - throttle: Byte-rate limiting for a Source or Sink

Every operation is synchronous. Transport errors and timeouts are returned
in tagged results; invalid arguments and transports that break their
contract cause a panic.

Example usage:

	import (
		"github.com/vnykmshr/bufkit/pkg/buffered/reader"
		"github.com/vnykmshr/bufkit/pkg/buffered/writer"
		"github.com/vnykmshr/bufkit/pkg/transport"
	)

	r := reader.New(transport.FromReader(conn))
	w := writer.New(transport.FromWriter(conn))

	if line := r.Scan("\r\n"); line.Found {
		w.Write(line.Data)
		w.Flush()
	}
*/
package bufkit

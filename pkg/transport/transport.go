package transport

// ReadResult is the outcome of a read from a Source or a buffered reader.
//
// Exactly one of three situations is described:
//   - success: Data is non-empty, Err is nil, Timeout is false
//   - stall: Timeout is true, the caller may retry later
//   - failure: Err is set
//
// An empty result with neither Err nor Timeout set means the source has no
// more data (end of stream).
type ReadResult struct {
	// Data holds the bytes that were read. It may be non-empty even when
	// Err or Timeout is set, in which case it carries partial progress.
	Data []byte

	// Err is a transport error reported by the source.
	Err error

	// Timeout reports that the source stalled without producing data.
	Timeout bool
}

// Empty reports whether the result carries no data.
func (r ReadResult) Empty() bool {
	return len(r.Data) == 0
}

// Failed reports whether the result carries an error or a timeout.
func (r ReadResult) Failed() bool {
	return r.Err != nil || r.Timeout
}

// WriteResult is the outcome of a write to a Sink or a buffered writer.
type WriteResult struct {
	// N is the number of bytes accepted.
	N int

	// Err is a transport error reported by the sink.
	Err error

	// Timeout reports a partial or zero send that should be retried later.
	Timeout bool
}

// Failed reports whether the result carries an error or a timeout.
func (r WriteResult) Failed() bool {
	return r.Err != nil || r.Timeout
}

// Source produces bytes for a buffered reader.
//
// Read returns at most max bytes. An empty result without error or timeout
// signals that no more data is available. Returning more than max bytes is a
// contract violation and makes the consuming reader panic.
type Source interface {
	Read(max int) ReadResult
}

// Sink consumes bytes for a buffered writer.
//
// Write returns the number of bytes accepted, in the range [0, len(p)].
// A zero count must be accompanied by Err or Timeout; a sink that silently
// stalls, or reports a count outside the range, makes the writer panic.
type Sink interface {
	Write(p []byte) WriteResult
}

// SourceFunc adapts an ordinary function to the Source interface.
type SourceFunc func(max int) ReadResult

// Read calls f(max).
func (f SourceFunc) Read(max int) ReadResult {
	return f(max)
}

// SinkFunc adapts an ordinary function to the Sink interface.
type SinkFunc func(p []byte) WriteResult

// Write calls f(p).
func (f SinkFunc) Write(p []byte) WriteResult {
	return f(p)
}

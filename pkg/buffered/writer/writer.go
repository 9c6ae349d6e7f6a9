package writer

import (
	"time"

	bkerrors "github.com/vnykmshr/bufkit/pkg/common/errors"
	"github.com/vnykmshr/bufkit/pkg/common/validation"
	"github.com/vnykmshr/bufkit/pkg/transport"
)

// DefaultBufferSize is the number of bytes buffered before a write forces a
// flush when no other size is configured.
const DefaultBufferSize = 4096

// chunkLimit bounds how large a pending chunk may grow by coalescing small
// writes into it.
const chunkLimit = 4096

const module = "writer"

// Config holds configuration options for Writer.
type Config struct {
	// BufferSize is the number of bytes held before a flush is forced.
	// Default: 4096
	BufferSize int

	// OnFlush is called after every flush that drained the buffer completely.
	OnFlush func(bytesWritten int, duration time.Duration)

	// OnError is called when the sink reports an error.
	OnError func(error)

	// OnTimeout is called when the sink reports a stall.
	OnTimeout func()
}

// DefaultConfig returns a default configuration.
func DefaultConfig() Config {
	return Config{
		BufferSize: DefaultBufferSize,
	}
}

// Writer accumulates bytes and sends them to a transport.Sink in batches of
// at most BufferSize bytes.
//
// A Writer is not safe for concurrent use and never flushes on its own
// schedule; callers must Flush before discarding it.
type Writer struct {
	sink       transport.Sink
	config     Config
	bufferSize int

	// pending holds accepted bytes not yet confirmed by the sink, in order.
	pending  [][]byte
	buffered int

	flushed  int
	bytesOut int64

	obs *observer
}

// New creates a Writer over sink with the default configuration.
func New(sink transport.Sink) *Writer {
	return NewWithConfig(sink, DefaultConfig())
}

// NewWithConfig creates a Writer over sink with the specified configuration.
// A nil sink panics.
func NewWithConfig(sink transport.Sink, config Config) *Writer {
	validation.MustNotNil(module, "sink", sink)
	validation.MustNonNegative(module, "BufferSize", config.BufferSize)
	if config.BufferSize == 0 {
		config.BufferSize = DefaultBufferSize
	}

	return &Writer{
		sink:       sink,
		config:     config,
		bufferSize: config.BufferSize,
	}
}

// SetBufferSize sets the number of bytes held before a flush is forced.
// Zero restores DefaultBufferSize; a negative size panics. Buffered bytes
// are kept even if they exceed the new size.
func (w *Writer) SetBufferSize(n int) {
	validation.MustNonNegative(module, "bufferSize", n)
	if n == 0 {
		n = DefaultBufferSize
	}
	w.bufferSize = n
}

// BufferSize returns the current buffer limit.
func (w *Writer) BufferSize() int {
	return w.bufferSize
}

// Size returns the number of buffered bytes not yet sent.
func (w *Writer) Size() int {
	return w.buffered
}

// Available returns how many more bytes fit before the buffer limit.
func (w *Writer) Available() int {
	return w.bufferSize - w.buffered
}

// Flushed returns the number of bytes sent by the most recent Flush.
func (w *Writer) Flushed() int {
	return w.flushed
}

// BytesOut returns the total number of bytes accepted by the sink.
func (w *Writer) BytesOut() int64 {
	return w.bytesOut
}

// ResetBytesOut returns the total number of bytes accepted by the sink and
// clears the counter.
func (w *Writer) ResetBytesOut() int64 {
	n := w.bytesOut
	w.bytesOut = 0
	return n
}

// Write buffers p.
//
// If p does not fit in the remaining space and bytes are already buffered,
// the buffer is flushed first; should that flush fail or stall, p is not
// buffered and the condition is returned with N == 0. When the buffer reaches
// its limit after p was added it is flushed, and the flush result is
// returned. Otherwise the result reports len(p) bytes accepted.
func (w *Writer) Write(p []byte) transport.WriteResult {
	if len(p) == 0 {
		return transport.WriteResult{}
	}

	if w.buffered > 0 && len(p) > w.Available() {
		res := w.Flush()
		if res.Failed() {
			return transport.WriteResult{Err: res.Err, Timeout: res.Timeout}
		}
	}

	w.enqueue(p)

	if w.buffered >= w.bufferSize {
		return w.Flush()
	}
	return transport.WriteResult{N: len(p)}
}

// WriteString is like Write but accepts a string.
func (w *Writer) WriteString(s string) transport.WriteResult {
	return w.Write([]byte(s))
}

// Flush sends every buffered byte to the sink.
//
// If a chunk cannot be sent completely the unsent remainder stays at the
// front of the buffer and Flush returns the bytes sent so far together with
// the sink's error or timeout. Flushing an empty buffer is a no-op.
func (w *Writer) Flush() transport.WriteResult {
	w.flushed = 0
	if w.buffered == 0 {
		return transport.WriteResult{}
	}

	start := time.Now()
	for len(w.pending) > 0 {
		chunk := w.pending[0]
		res := w.Writeout(chunk)
		w.flushed += res.N
		w.buffered -= res.N

		if res.N < len(chunk) {
			w.pending[0] = chunk[res.N:]
		} else {
			w.pending[0] = nil
			w.pending = w.pending[1:]
		}

		if res.N < len(chunk) || res.Failed() {
			w.obs.flush(w.buffered, time.Since(start))
			return transport.WriteResult{N: w.flushed, Err: res.Err, Timeout: res.Timeout}
		}
	}

	w.pending = nil
	w.buffered = 0

	duration := time.Since(start)
	w.obs.flush(0, duration)
	if w.config.OnFlush != nil {
		w.config.OnFlush(w.flushed, duration)
	}
	return transport.WriteResult{N: w.flushed}
}

// Writeout sends p directly to the sink, bypassing the buffer, and keeps
// calling the sink while it reports short counts.
//
// On a sink error or timeout the bytes sent so far are returned with the
// condition. A sink reporting a negative count, a count larger than what it
// was given, or a zero count without an error or timeout breaks its
// contract and Writeout panics with a *errors.ContractError.
func (w *Writer) Writeout(p []byte) transport.WriteResult {
	sent := 0
	for sent < len(p) {
		remaining := len(p) - sent
		res := w.sink.Write(p[sent:])

		switch {
		case res.N < 0:
			panic(bkerrors.NewContractError(module, "sink",
				"reported a negative count", res.N, remaining))
		case res.N > remaining:
			panic(bkerrors.NewContractError(module, "sink",
				"reported more bytes written than given", res.N, remaining))
		case res.N == 0 && !res.Failed():
			panic(bkerrors.NewContractError(module, "sink",
				"stalled without reporting an error or timeout", res.N, remaining))
		}

		sent += res.N
		w.bytesOut += int64(res.N)
		w.obs.bytesOut(res.N)

		if res.Err != nil {
			w.obs.failed()
			if w.config.OnError != nil {
				w.config.OnError(res.Err)
			}
			return transport.WriteResult{N: sent, Err: res.Err}
		}
		if res.Timeout {
			w.obs.timedOut()
			if w.config.OnTimeout != nil {
				w.config.OnTimeout()
			}
			return transport.WriteResult{N: sent, Timeout: true}
		}
	}
	return transport.WriteResult{N: sent}
}

// enqueue copies p onto the tail of the pending chunks, coalescing it into
// the last chunk while that stays within chunkLimit.
func (w *Writer) enqueue(p []byte) {
	if n := len(w.pending); n > 0 && len(w.pending[n-1])+len(p) <= chunkLimit {
		w.pending[n-1] = append(w.pending[n-1], p...)
	} else {
		w.pending = append(w.pending, append(make([]byte, 0, max(len(p), 64)), p...))
	}
	w.buffered += len(p)
	w.obs.buffered(w.buffered)
}

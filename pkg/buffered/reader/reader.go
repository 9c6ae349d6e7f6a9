package reader

import (
	"bytes"
	"regexp"

	bkerrors "github.com/vnykmshr/bufkit/pkg/common/errors"
	"github.com/vnykmshr/bufkit/pkg/common/validation"
	"github.com/vnykmshr/bufkit/pkg/transport"
)

// DefaultBufferSize is the number of bytes requested from the source per fill
// when no other size is configured.
const DefaultBufferSize = 4096

const module = "reader"

// ScanResult is the outcome of a delimiter scan.
type ScanResult struct {
	// Data holds the bytes preceding the delimiter. It is only meaningful
	// when Found is true.
	Data []byte

	// Found reports whether the delimiter was located.
	Found bool

	// Err is a source error that interrupted the scan.
	Err error

	// Timeout reports that the source stalled during the scan.
	Timeout bool
}

// Failed reports whether the scan was interrupted by an error or a timeout.
func (r ScanResult) Failed() bool {
	return r.Err != nil || r.Timeout
}

// Config holds configuration options for Reader.
type Config struct {
	// BufferSize is the number of bytes requested from the source per fill.
	// Default: 4096
	BufferSize int

	// OnFill is called after every source read that returned data.
	OnFill func(n int)

	// OnError is called when the source reports an error.
	OnError func(error)

	// OnTimeout is called when the source reports a stall.
	OnTimeout func()
}

// DefaultConfig returns a default configuration.
func DefaultConfig() Config {
	return Config{
		BufferSize: DefaultBufferSize,
	}
}

// Reader buffers bytes pulled from a transport.Source and serves them as
// bounded reads, exact-length reads and delimiter scans.
//
// A Reader is not safe for concurrent use. Unread buffered bytes are simply
// discarded when the Reader is no longer referenced.
type Reader struct {
	src        transport.Source
	config     Config
	bufferSize int

	// pending holds bytes taken from the source or prepended by the caller
	// that have not been delivered yet.
	pending []byte

	patterns map[string]*regexp.Regexp
	obs      *observer
}

// New creates a Reader over src with the default configuration.
func New(src transport.Source) *Reader {
	return NewWithConfig(src, DefaultConfig())
}

// NewWithConfig creates a Reader over src with the specified configuration.
// A nil source panics.
func NewWithConfig(src transport.Source, config Config) *Reader {
	validation.MustNotNil(module, "source", src)
	validation.MustNonNegative(module, "BufferSize", config.BufferSize)
	if config.BufferSize == 0 {
		config.BufferSize = DefaultBufferSize
	}

	return &Reader{
		src:        src,
		config:     config,
		bufferSize: config.BufferSize,
	}
}

// SetBufferSize sets the fill size used by Read, Scan and ReadFull.
// Zero restores DefaultBufferSize; a negative size panics. Bytes already
// buffered are kept.
func (r *Reader) SetBufferSize(n int) {
	validation.MustNonNegative(module, "bufferSize", n)
	if n == 0 {
		n = DefaultBufferSize
	}
	r.bufferSize = n
}

// BufferSize returns the current fill size.
func (r *Reader) BufferSize() int {
	return r.bufferSize
}

// Size returns the number of buffered bytes not yet delivered.
func (r *Reader) Size() int {
	return len(r.pending)
}

// Prepend pushes p back in front of the buffered bytes so that it is the
// next data returned. The bytes are copied.
func (r *Reader) Prepend(p []byte) {
	if len(p) == 0 {
		return
	}

	buf := make([]byte, 0, len(p)+len(r.pending))
	buf = append(buf, p...)
	r.pending = append(buf, r.pending...)
	r.obs.buffered(len(r.pending))
}

// Read returns up to n bytes.
//
// Buffered bytes are served first without touching the source. Otherwise a
// single fill of BufferSize bytes is performed and any surplus beyond n is
// kept for the next call. An error or timeout from the source is returned in
// the result along with whatever data came with it.
func (r *Reader) Read(n int) transport.ReadResult {
	validation.MustPositive(module, "n", n)

	if len(r.pending) > 0 {
		return transport.ReadResult{Data: r.take(n)}
	}

	res := r.Fill(r.bufferSize)
	if len(res.Data) > n {
		r.pending = append(r.pending, res.Data[n:]...)
		res.Data = res.Data[:n:n]
		r.obs.buffered(len(r.pending))
	}
	return res
}

// ReadFull returns exactly n bytes, filling from the source as many times as
// needed.
//
// If the source runs out of data first, the bytes collected so far are
// returned with errors.ErrNoData. A source error or timeout is returned with
// the bytes collected so far. Bytes read beyond n are kept for the next call.
func (r *Reader) ReadFull(n int) transport.ReadResult {
	validation.MustPositive(module, "n", n)

	if len(r.pending) >= n {
		return transport.ReadResult{Data: r.take(n)}
	}

	data := make([]byte, 0, n)
	data = append(data, r.pending...)
	r.pending = nil
	r.obs.buffered(0)

	for len(data) < n {
		res := r.Fill(r.bufferSize)
		data = append(data, res.Data...)
		if res.Failed() {
			r.stash(data, n)
			return transport.ReadResult{Data: clip(data, n), Err: res.Err, Timeout: res.Timeout}
		}
		if res.Empty() {
			return transport.ReadResult{Data: data, Err: bkerrors.ErrNoData}
		}
	}

	r.stash(data, n)
	return transport.ReadResult{Data: clip(data, n)}
}

// Scan returns the bytes preceding the first occurrence of delim and consumes
// the delimiter itself. delim is matched literally.
//
// When the source runs dry before delim is seen, everything read is pushed
// back and the result has Found set to false with no error, so the caller may
// try again later. On a source error or timeout the read bytes are pushed back
// as well and the condition is reported in the result.
func (r *Reader) Scan(delim string) ScanResult {
	validation.MustNotEmpty(module, "delimiter", delim)

	sep := []byte(delim)
	return r.scan(func(b []byte, from int) (int, int) {
		i := bytes.Index(b[from:], sep)
		if i < 0 {
			return -1, -1
		}
		return from + i, from + i + len(sep)
	}, func(prev int) int {
		// A match straddling the previous chunk boundary starts at most
		// len(sep)-1 bytes before it.
		if from := prev - len(sep) + 1; from > 0 {
			return from
		}
		return 0
	})
}

// ScanPattern is like Scan but treats pattern as a regular expression in
// the syntax accepted by package regexp. Compiled patterns are cached on the
// Reader. An empty or invalid pattern panics.
func (r *Reader) ScanPattern(pattern string) ScanResult {
	validation.MustNotEmpty(module, "pattern", pattern)

	re, ok := r.patterns[pattern]
	if !ok {
		var err error
		re, err = regexp.Compile(pattern)
		if err != nil {
			panic(bkerrors.NewValidationError(module, "pattern", pattern, err.Error()).
				WithHint("use Scan for literal delimiters"))
		}
		if r.patterns == nil {
			r.patterns = make(map[string]*regexp.Regexp)
		}
		r.patterns[pattern] = re
	}
	return r.ScanRegexp(re)
}

// ScanRegexp is like ScanPattern with a precompiled expression.
func (r *Reader) ScanRegexp(re *regexp.Regexp) ScanResult {
	if re == nil {
		panic(bkerrors.NewValidationError(module, "regexp", nil, "cannot be nil"))
	}

	return r.scan(func(b []byte, from int) (int, int) {
		loc := re.FindIndex(b[from:])
		if loc == nil {
			return -1, -1
		}
		return from + loc[0], from + loc[1]
	}, func(int) int {
		// The leftmost match may begin anywhere in the scratch buffer.
		return 0
	})
}

// scan accumulates reads into a scratch buffer until find reports a match.
// next returns the offset the following search may start at given the
// scratch length before the latest read was appended.
func (r *Reader) scan(find func(b []byte, from int) (int, int), next func(prev int) int) ScanResult {
	var scratch []byte

	for {
		prev := len(scratch)
		res := r.Read(r.bufferSize)
		scratch = append(scratch, res.Data...)

		if res.Failed() {
			r.Prepend(scratch)
			r.obs.scan("failed")
			return ScanResult{Err: res.Err, Timeout: res.Timeout}
		}
		if res.Empty() {
			r.Prepend(scratch)
			r.obs.scan("not_found")
			return ScanResult{}
		}

		start, end := find(scratch, next(prev))
		if start >= 0 {
			r.Prepend(scratch[end:])
			r.obs.scan("found")
			return ScanResult{Data: scratch[:start:start], Found: true}
		}
	}
}

// Fill requests up to n bytes directly from the source, bypassing the
// buffer. It is the only operation that calls the source.
//
// A source returning more than n bytes breaks its contract and Fill panics
// with a *errors.ContractError.
func (r *Reader) Fill(n int) transport.ReadResult {
	validation.MustPositive(module, "n", n)

	res := r.src.Read(n)
	if len(res.Data) > n {
		panic(bkerrors.NewContractError(module, "source",
			"returned more bytes than requested", len(res.Data), n))
	}
	if len(res.Data) > 0 {
		res.Data = res.Data[:len(res.Data):len(res.Data)]
	} else {
		res.Data = nil
	}

	r.observeFill(res)
	return res
}

func (r *Reader) observeFill(res transport.ReadResult) {
	if len(res.Data) > 0 && r.config.OnFill != nil {
		r.config.OnFill(len(res.Data))
	}
	if res.Err != nil && r.config.OnError != nil {
		r.config.OnError(res.Err)
	}
	if res.Timeout && r.config.OnTimeout != nil {
		r.config.OnTimeout()
	}
	r.obs.fill(res)
}

// take removes and returns up to n bytes from the front of the buffer.
func (r *Reader) take(n int) []byte {
	if n > len(r.pending) {
		n = len(r.pending)
	}
	out := r.pending[:n:n]
	r.pending = r.pending[n:]
	if len(r.pending) == 0 {
		r.pending = nil
	}
	r.obs.buffered(len(r.pending))
	return out
}

// stash keeps data[n:] as the buffer. The buffer is empty when called.
func (r *Reader) stash(data []byte, n int) {
	if len(data) > n {
		r.pending = append([]byte(nil), data[n:]...)
		r.obs.buffered(len(r.pending))
	}
}

func clip(data []byte, n int) []byte {
	if len(data) > n {
		return data[:n:n]
	}
	return data
}

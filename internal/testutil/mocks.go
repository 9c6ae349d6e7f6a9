package testutil

import (
	"bytes"
	"errors"
	"sync"
	"time"

	"github.com/vnykmshr/bufkit/pkg/transport"
)

// MockClock implements Clock interface for testing with controllable time.
// This is used by throttle tests to avoid actual time delays.
type MockClock struct {
	mu  sync.Mutex
	now time.Time
}

// NewMockClock creates a new MockClock starting at the given time.
// If zero time is provided, uses current time.
func NewMockClock(start time.Time) *MockClock {
	if start.IsZero() {
		start = time.Now()
	}
	return &MockClock{now: start}
}

// Now returns the current mock time.
func (m *MockClock) Now() time.Time {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.now
}

// Advance moves the mock clock forward by the given duration.
func (m *MockClock) Advance(d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.now = m.now.Add(d)
}

// MockSource is a scripted transport.Source. Each Read consumes the next
// scripted result; once the script is exhausted Read reports end of data.
type MockSource struct {
	mu       sync.Mutex
	script   []transport.ReadResult
	requests []int
}

// NewMockSource creates a MockSource that yields each chunk in turn.
func NewMockSource(chunks ...string) *MockSource {
	ms := &MockSource{}
	for _, c := range chunks {
		ms.Push(transport.ReadResult{Data: []byte(c)})
	}
	return ms
}

// Push appends a result to the script.
func (ms *MockSource) Push(res transport.ReadResult) *MockSource {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	ms.script = append(ms.script, res)
	return ms
}

// PushData appends a data chunk to the script.
func (ms *MockSource) PushData(s string) *MockSource {
	return ms.Push(transport.ReadResult{Data: []byte(s)})
}

// PushTimeout appends a stall to the script.
func (ms *MockSource) PushTimeout() *MockSource {
	return ms.Push(transport.ReadResult{Timeout: true})
}

// PushError appends an error to the script.
func (ms *MockSource) PushError(err error) *MockSource {
	return ms.Push(transport.ReadResult{Err: err})
}

// PushEOF appends an explicit end-of-data result to the script.
func (ms *MockSource) PushEOF() *MockSource {
	return ms.Push(transport.ReadResult{})
}

// Read implements transport.Source. Scripted chunks are returned verbatim,
// even when longer than max, so contract checks can be exercised.
func (ms *MockSource) Read(max int) transport.ReadResult {
	ms.mu.Lock()
	defer ms.mu.Unlock()

	ms.requests = append(ms.requests, max)
	if len(ms.script) == 0 {
		return transport.ReadResult{}
	}
	res := ms.script[0]
	ms.script = ms.script[1:]
	return res
}

// Requests returns the max argument of every Read call so far.
func (ms *MockSource) Requests() []int {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	return append([]int(nil), ms.requests...)
}

// Calls returns the number of Read calls.
func (ms *MockSource) Calls() int {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	return len(ms.requests)
}

// SinkStep scripts the outcome of one MockSink write.
type SinkStep struct {
	// Accept is the count to report. A negative value accepts everything.
	Accept int

	// Err is returned alongside the count.
	Err error

	// Timeout is returned alongside the count.
	Timeout bool

	// Raw reports Accept verbatim without storing or clamping, so contract
	// violations can be exercised.
	Raw bool
}

// MockSink is a scripted transport.Sink. Each Write consumes the next
// scripted step; once the script is exhausted every write is accepted in
// full. Accepted bytes are collected and can be inspected.
type MockSink struct {
	mu     sync.Mutex
	script []SinkStep
	buf    bytes.Buffer
	writes [][]byte
}

// NewMockSink creates a MockSink running the given steps first.
func NewMockSink(steps ...SinkStep) *MockSink {
	return &MockSink{script: steps}
}

// Push appends a step to the script.
func (ms *MockSink) Push(step SinkStep) *MockSink {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	ms.script = append(ms.script, step)
	return ms
}

// Write implements transport.Sink.
func (ms *MockSink) Write(p []byte) transport.WriteResult {
	ms.mu.Lock()
	defer ms.mu.Unlock()

	ms.writes = append(ms.writes, append([]byte(nil), p...))

	step := SinkStep{Accept: -1}
	if len(ms.script) > 0 {
		step = ms.script[0]
		ms.script = ms.script[1:]
	}

	if step.Raw {
		return transport.WriteResult{N: step.Accept, Err: step.Err, Timeout: step.Timeout}
	}

	n := step.Accept
	if n < 0 || n > len(p) {
		n = len(p)
	}
	ms.buf.Write(p[:n])
	return transport.WriteResult{N: n, Err: step.Err, Timeout: step.Timeout}
}

// String returns every byte accepted so far.
func (ms *MockSink) String() string {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	return ms.buf.String()
}

// Writes returns a copy of the argument of every Write call.
func (ms *MockSink) Writes() []string {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	out := make([]string, len(ms.writes))
	for i, w := range ms.writes {
		out[i] = string(w)
	}
	return out
}

// WriteCount returns the number of Write calls.
func (ms *MockSink) WriteCount() int {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	return len(ms.writes)
}

// MockWriter is a test io.Writer that can simulate various write conditions
// including delays, errors, and write counting.
type MockWriter struct {
	buf         *bytes.Buffer
	mu          sync.Mutex
	writeDelay  time.Duration
	errorOnNth  int
	writeCount  int
	shouldError bool
	err         error
	maxWrite    int
}

// NewMockWriter creates a new MockWriter.
func NewMockWriter() *MockWriter {
	return &MockWriter{
		buf: &bytes.Buffer{},
	}
}

// Write implements io.Writer interface with configurable behavior.
func (mw *MockWriter) Write(p []byte) (int, error) {
	mw.mu.Lock()
	defer mw.mu.Unlock()

	mw.writeCount++

	if mw.writeDelay > 0 {
		time.Sleep(mw.writeDelay)
	}

	if mw.shouldError {
		return 0, mw.err
	}

	if mw.errorOnNth > 0 && mw.writeCount == mw.errorOnNth {
		return 0, errors.New("simulated error")
	}

	if mw.maxWrite > 0 && len(p) > mw.maxWrite {
		return mw.buf.Write(p[:mw.maxWrite])
	}
	return mw.buf.Write(p)
}

// String returns the current buffer contents.
func (mw *MockWriter) String() string {
	mw.mu.Lock()
	defer mw.mu.Unlock()
	return mw.buf.String()
}

// Len returns the current buffer length.
func (mw *MockWriter) Len() int {
	mw.mu.Lock()
	defer mw.mu.Unlock()
	return mw.buf.Len()
}

// WriteCount returns the number of Write calls.
func (mw *MockWriter) WriteCount() int {
	mw.mu.Lock()
	defer mw.mu.Unlock()
	return mw.writeCount
}

// SetWriteDelay configures a delay for each write operation.
func (mw *MockWriter) SetWriteDelay(delay time.Duration) {
	mw.mu.Lock()
	defer mw.mu.Unlock()
	mw.writeDelay = delay
}

// SetErrorOnNth configures the writer to error on the nth write.
func (mw *MockWriter) SetErrorOnNth(n int) {
	mw.mu.Lock()
	defer mw.mu.Unlock()
	mw.errorOnNth = n
}

// SetAlwaysError configures the writer to always return the given error.
func (mw *MockWriter) SetAlwaysError(err error) {
	mw.mu.Lock()
	defer mw.mu.Unlock()
	mw.shouldError = true
	mw.err = err
}

// SetMaxWrite makes every write accept at most n bytes without an error.
func (mw *MockWriter) SetMaxWrite(n int) {
	mw.mu.Lock()
	defer mw.mu.Unlock()
	mw.maxWrite = n
}

// Reset clears the buffer and resets counters.
func (mw *MockWriter) Reset() {
	mw.mu.Lock()
	defer mw.mu.Unlock()
	mw.buf.Reset()
	mw.writeCount = 0
	mw.shouldError = false
	mw.errorOnNth = 0
	mw.writeDelay = 0
	mw.maxWrite = 0
	mw.err = nil
}

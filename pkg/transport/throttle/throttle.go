package throttle

import (
	bkerrors "github.com/vnykmshr/bufkit/pkg/common/errors"
	"github.com/vnykmshr/bufkit/pkg/common/validation"
	"github.com/vnykmshr/bufkit/pkg/transport"
)

// Source limits the byte rate of a wrapped transport.Source.
//
// Each Read asks the wrapped source for at most the bytes currently allowed.
// When no budget is left Read reports a timeout without calling the wrapped
// source, so a buffered reader surfaces the stall to its caller.
type Source struct {
	src transport.Source
	b   *bucket
}

// NewSource wraps src with a byte-rate limit.
func NewSource(src transport.Source, config Config) (*Source, error) {
	if err := validation.ValidateNotNil("throttle", "source", src); err != nil {
		return nil, err
	}
	b, err := newBucket(config)
	if err != nil {
		return nil, err
	}
	return &Source{src: src, b: b}, nil
}

// Read implements transport.Source. A wrapped source returning more than
// the granted budget panics with a *errors.ContractError.
func (s *Source) Read(max int) transport.ReadResult {
	granted := s.b.take(max)
	if granted == 0 {
		return transport.ReadResult{Timeout: true}
	}

	res := s.src.Read(granted)
	if len(res.Data) > granted {
		panic(bkerrors.NewContractError("throttle", "source",
			"returned more bytes than requested", len(res.Data), granted))
	}
	s.b.refund(granted - len(res.Data))
	return res
}

// Available returns the number of bytes that may currently be read.
func (s *Source) Available() float64 {
	return s.b.available()
}

// Sink limits the byte rate of a wrapped transport.Sink.
//
// Each Write offers the wrapped sink at most the bytes currently allowed, so
// the buffered writer sees a short count. When no budget is left Write
// reports a timeout without calling the wrapped sink.
type Sink struct {
	sink transport.Sink
	b    *bucket
}

// NewSink wraps sink with a byte-rate limit.
func NewSink(sink transport.Sink, config Config) (*Sink, error) {
	if err := validation.ValidateNotNil("throttle", "sink", sink); err != nil {
		return nil, err
	}
	b, err := newBucket(config)
	if err != nil {
		return nil, err
	}
	return &Sink{sink: sink, b: b}, nil
}

// Write implements transport.Sink. A wrapped sink reporting a count outside
// [0, granted] panics with a *errors.ContractError.
func (s *Sink) Write(p []byte) transport.WriteResult {
	if len(p) == 0 {
		return transport.WriteResult{}
	}

	granted := s.b.take(len(p))
	if granted == 0 {
		return transport.WriteResult{Timeout: true}
	}

	res := s.sink.Write(p[:granted])
	switch {
	case res.N < 0:
		panic(bkerrors.NewContractError("throttle", "sink",
			"reported a negative count", res.N, granted))
	case res.N > granted:
		panic(bkerrors.NewContractError("throttle", "sink",
			"reported more bytes written than given", res.N, granted))
	}
	s.b.refund(granted - res.N)
	return res
}

// Available returns the number of bytes that may currently be written.
func (s *Sink) Available() float64 {
	return s.b.available()
}

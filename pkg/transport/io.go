package transport

import (
	"errors"
	"io"
	"os"

	bkerrors "github.com/vnykmshr/bufkit/pkg/common/errors"
	"github.com/vnykmshr/bufkit/pkg/common/validation"
)

// timeoutError matches errors from net and os that know whether they are timeouts.
type timeoutError interface {
	Timeout() bool
}

// IsTimeout reports whether err describes a stalled operation rather than a
// hard failure. Deadline errors from os and net, and bufkit's ErrTimeout,
// are treated as timeouts.
func IsTimeout(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, os.ErrDeadlineExceeded) || errors.Is(err, bkerrors.ErrTimeout) {
		return true
	}
	var te timeoutError
	if errors.As(err, &te) {
		return te.Timeout()
	}
	return false
}

// maxConsecutiveEmptyReads bounds retries of an io.Reader returning (0, nil).
const maxConsecutiveEmptyReads = 100

type readerSource struct {
	r io.Reader
}

// FromReader adapts an io.Reader to the Source interface.
//
// io.EOF maps to an empty result (end of data) and timeouts map to a Timeout
// result. Other errors are returned wrapped in an OperationError, with bytes
// read alongside them kept in Data. A reader that keeps returning (0, nil)
// is retried a bounded number of times before io.ErrNoProgress is reported.
func FromReader(r io.Reader) Source {
	validation.MustNotNil("transport", "reader", r)
	return &readerSource{r: r}
}

func (s *readerSource) Read(max int) ReadResult {
	if max <= 0 {
		return ReadResult{}
	}

	buf := make([]byte, max)
	var n int
	var err error
	for i := 0; ; i++ {
		n, err = s.r.Read(buf)
		if n > 0 || err != nil {
			break
		}
		if i+1 >= maxConsecutiveEmptyReads {
			err = io.ErrNoProgress
			break
		}
	}

	res := ReadResult{}
	if n > 0 {
		res.Data = buf[:n:n]
	}

	switch {
	case err == nil, errors.Is(err, io.EOF):
	case IsTimeout(err):
		res.Timeout = true
	default:
		res.Err = bkerrors.NewOperationError("transport", "read", err)
	}
	return res
}

type writerSink struct {
	w io.Writer
}

// FromWriter adapts an io.Writer to the Sink interface.
//
// A short write reported without an error is turned into io.ErrShortWrite so
// the adapter never presents a silent stall to the buffered writer.
func FromWriter(w io.Writer) Sink {
	validation.MustNotNil("transport", "writer", w)
	return &writerSink{w: w}
}

func (s *writerSink) Write(p []byte) WriteResult {
	n, err := s.w.Write(p)
	if n < 0 {
		n = 0
	}
	// Counts above len(p) are passed through; the buffered writer rejects them.

	res := WriteResult{N: n}
	switch {
	case err == nil:
		if n < len(p) {
			res.Err = bkerrors.NewOperationError("transport", "write", io.ErrShortWrite).
				WithContext("writer accepted fewer bytes than given")
		}
	case IsTimeout(err):
		res.Timeout = true
	default:
		res.Err = bkerrors.NewOperationError("transport", "write", err)
	}
	return res
}

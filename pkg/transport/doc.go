/*
Package transport defines the capability contracts that connect bufkit's
buffered reader and writer to an actual byte stream.

A Source produces bytes on demand and a Sink consumes them. Both report their
outcome as a tagged result that separates three cases: progress, a stall
(timeout) and a hard error.

	src := transport.SourceFunc(func(max int) transport.ReadResult {
		return transport.ReadResult{Data: next(max)}
	})

	sink := transport.FromWriter(conn)

# Adapters

FromReader and FromWriter wrap the standard io interfaces. Deadline errors
from os and net are reported as timeouts, io.EOF becomes end of data, and a
short write without an error becomes io.ErrShortWrite.

# Contract

A Source must never return more bytes than requested. A Sink must report a
count between 0 and len(p), and a zero count must come with an error or a
timeout. Violations are treated as programming errors by the buffered
components and cause a panic with a *errors.ContractError.
*/
package transport

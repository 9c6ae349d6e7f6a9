/*
Package writer provides a buffered writer over a pluggable byte sink.

A Writer accepts bytes into memory and sends them to a transport.Sink in
batches once BufferSize bytes are pending, or when Flush is called. Nothing
happens in the background: every sink call is made from Write, Flush or
Writeout on the caller's goroutine.

# Quick Start

	w := writer.New(transport.FromWriter(conn))

	w.WriteString("HELLO\r\n")
	if res := w.Flush(); res.Failed() {
		// res.N bytes were sent, the rest is still buffered
	}

# Buffering

Write copies its argument into the buffer. When the argument does not fit
in the remaining space the buffer is flushed first, and when the buffer
reaches its limit it is flushed automatically:

	w := writer.NewWithConfig(sink, writer.Config{BufferSize: 10})
	w.WriteString("hello") // buffered, N == 5
	w.WriteString("world") // flushed, N == 10

# Partial Sends

A sink may accept fewer bytes than offered and report a timeout or error.
Flush keeps the unsent remainder at the front of the buffer and returns the
count sent so far, so a later Flush resumes exactly where the previous one
stopped. Writeout sends bytes directly, bypassing the buffer, and retries
short counts until the sink reports a timeout or error.

# Accounting

Size and Available describe the buffer, Flushed reports the bytes sent by
the most recent Flush, and BytesOut is a running total of bytes the sink
accepted:

	sent := w.ResetBytesOut() // read and clear

# Errors

Sink errors and timeouts are reported in the returned WriteResult. A sink
reporting a negative count, more bytes than it was given, or a zero count
without an error or timeout causes a panic with a *errors.ContractError.

# Thread Safety

A Writer is not safe for concurrent use. Confine it to one goroutine or
guard it with a mutex, and Flush before discarding it.
*/
package writer

/*
Package reader provides a buffered reader over a pluggable byte source.

A Reader pulls bytes from a transport.Source in chunks of BufferSize and
serves them as bounded reads, exact-length reads and delimiter scans. It
never reads ahead on its own: every operation calls the source at most as
often as its contract requires and reports whatever the source returned.

# Quick Start

	r := reader.New(transport.FromReader(conn))

	line := r.Scan("\n")
	if line.Found {
		handle(line.Data)
	}

# Reading

Read returns up to n bytes, serving buffered bytes first and filling from the
source at most once:

	res := r.Read(512)
	switch {
	case res.Err != nil:
		// hard failure reported by the source
	case res.Timeout:
		// the source stalled, try again later
	case res.Empty():
		// end of data
	}

ReadFull keeps filling until exactly n bytes are available. When the source
runs out first the partial data is returned with errors.ErrNoData:

	header := r.ReadFull(8)
	if errors.Is(header.Err, bkerrors.ErrNoData) {
		// truncated stream
	}

# Scanning

Scan searches for a literal delimiter, ScanPattern and ScanRegexp for a
regular expression. The delimiter is consumed and the bytes before it are
returned. If the source runs dry, stalls or fails before a match, everything
read so far is pushed back so a later scan sees it again:

	r.Scan("\r\n")
	r.ScanPattern(`\r*\n`)

# Pushing Back

Prepend puts bytes in front of the buffer; the last prepended bytes are read
first.

# Errors

Transport conditions (source errors, timeouts, end of data) are reported in
the returned result. Invalid arguments such as a non-positive count, and a
source that returns more bytes than requested, are programming errors and
cause a panic with a *errors.ValidationError or *errors.ContractError.

# Thread Safety

A Reader is not safe for concurrent use. Confine it to one goroutine or
guard it with a mutex.
*/
package reader

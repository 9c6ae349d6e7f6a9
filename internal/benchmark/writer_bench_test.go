package benchmark

import (
	"bytes"
	"io"
	"testing"

	"github.com/vnykmshr/bufkit/pkg/buffered/writer"
	"github.com/vnykmshr/bufkit/pkg/transport"
)

// BenchmarkWriterWrite measures buffered writes with automatic flushing.
func BenchmarkWriterWrite(b *testing.B) {
	sizes := []int{10, 100, 1000, 10000}

	for _, size := range sizes {
		p := bytes.Repeat([]byte("w"), size)

		b.Run(sizeLabel(size), func(b *testing.B) {
			b.ReportAllocs()
			b.SetBytes(int64(size))
			w := writer.New(transport.FromWriter(io.Discard))
			for i := 0; i < b.N; i++ {
				w.Write(p)
			}
			w.Flush()
		})
	}
}

// BenchmarkWriterWriteout measures direct writes that bypass the buffer.
func BenchmarkWriterWriteout(b *testing.B) {
	p := bytes.Repeat([]byte("o"), 1000)

	b.ReportAllocs()
	b.SetBytes(int64(len(p)))
	w := writer.New(transport.FromWriter(io.Discard))
	for i := 0; i < b.N; i++ {
		w.Writeout(p)
	}
}

// BenchmarkWriterShortSink measures flushing into a sink that accepts a
// few bytes per call.
func BenchmarkWriterShortSink(b *testing.B) {
	sink := transport.SinkFunc(func(p []byte) transport.WriteResult {
		if len(p) > 512 {
			return transport.WriteResult{N: 512}
		}
		return transport.WriteResult{N: len(p)}
	})
	p := bytes.Repeat([]byte("s"), 100)

	b.ReportAllocs()
	b.SetBytes(int64(len(p)))
	w := writer.New(sink)
	for i := 0; i < b.N; i++ {
		w.Write(p)
	}
	w.Flush()
}

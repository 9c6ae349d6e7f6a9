package benchmark

import (
	"bytes"
	"strings"
	"testing"

	"github.com/vnykmshr/bufkit/pkg/buffered/reader"
	"github.com/vnykmshr/bufkit/pkg/transport"
)

// BenchmarkReaderRead measures bounded reads over an in-memory source.
func BenchmarkReaderRead(b *testing.B) {
	sizes := []int{10, 100, 1000, 10000}
	data := bytes.Repeat([]byte("x"), 1<<20)

	for _, size := range sizes {
		b.Run(sizeLabel(size), func(b *testing.B) {
			b.ReportAllocs()
			b.SetBytes(int64(size))
			r := reader.New(transport.FromReader(bytes.NewReader(data)))
			for i := 0; i < b.N; i++ {
				res := r.Read(size)
				if res.Empty() {
					r = reader.New(transport.FromReader(bytes.NewReader(data)))
				}
			}
		})
	}
}

// BenchmarkReaderReadFull measures exact-length reads that span fills.
func BenchmarkReaderReadFull(b *testing.B) {
	sizes := []int{100, 1000, 10000}
	data := bytes.Repeat([]byte("y"), 1<<20)

	for _, size := range sizes {
		b.Run(sizeLabel(size), func(b *testing.B) {
			b.ReportAllocs()
			b.SetBytes(int64(size))
			r := reader.New(transport.FromReader(bytes.NewReader(data)))
			for i := 0; i < b.N; i++ {
				res := r.ReadFull(size)
				if res.Err != nil {
					r = reader.New(transport.FromReader(bytes.NewReader(data)))
				}
			}
		})
	}
}

// BenchmarkReaderScan measures literal line scanning.
func BenchmarkReaderScan(b *testing.B) {
	sizes := []int{10, 100, 1000, 10000}

	for _, size := range sizes {
		line := strings.Repeat("z", size) + "\r\n"
		input := strings.Repeat(line, 64)

		b.Run(sizeLabel(size), func(b *testing.B) {
			b.ReportAllocs()
			b.SetBytes(int64(len(line)))
			r := reader.New(transport.FromReader(strings.NewReader(input)))
			for i := 0; i < b.N; i++ {
				if res := r.Scan("\r\n"); !res.Found {
					r = reader.New(transport.FromReader(strings.NewReader(input)))
				}
			}
		})
	}
}

// BenchmarkReaderScanPattern measures regular expression line scanning.
func BenchmarkReaderScanPattern(b *testing.B) {
	line := strings.Repeat("p", 80) + "\r\n"
	input := strings.Repeat(line, 256)

	b.ReportAllocs()
	b.SetBytes(int64(len(line)))
	r := reader.New(transport.FromReader(strings.NewReader(input)))
	for i := 0; i < b.N; i++ {
		if res := r.ScanPattern(`\r*\n`); !res.Found {
			r = reader.New(transport.FromReader(strings.NewReader(input)))
		}
	}
}

func sizeLabel(size int) string {
	switch {
	case size >= 10000:
		return "10k"
	case size >= 1000:
		return "1k"
	case size >= 100:
		return "100"
	default:
		return "10"
	}
}

package writer

import (
	"bytes"
	"fmt"
	"time"

	"github.com/vnykmshr/bufkit/pkg/transport"
)

// Example demonstrates basic buffered writing to an io.Writer.
func Example() {
	var buf bytes.Buffer
	w := New(transport.FromWriter(&buf))

	w.WriteString("Hello, ")
	w.WriteString("buffered ")
	w.WriteString("world!")
	fmt.Printf("before flush: %q\n", buf.String())

	w.Flush()
	fmt.Printf("after flush: %q\n", buf.String())

	// Output:
	// before flush: ""
	// after flush: "Hello, buffered world!"
}

// Example_autoFlush demonstrates the flush triggered by a full buffer.
func Example_autoFlush() {
	var buf bytes.Buffer
	w := NewWithConfig(transport.FromWriter(&buf), Config{BufferSize: 10})

	res := w.WriteString("hello")
	fmt.Println(res.N, buf.Len())

	res = w.WriteString("world")
	fmt.Println(res.N, buf.String())

	// Output:
	// 5 0
	// 10 helloworld
}

// Example_partialSend demonstrates resuming a flush after a stalled sink.
func Example_partialSend() {
	var out bytes.Buffer
	stalled := true
	sink := transport.SinkFunc(func(p []byte) transport.WriteResult {
		if stalled {
			stalled = false
			out.Write(p[:4])
			return transport.WriteResult{N: 4, Timeout: true}
		}
		out.Write(p)
		return transport.WriteResult{N: len(p)}
	})

	w := New(sink)
	w.WriteString("partial send")

	res := w.Flush()
	fmt.Println(res.N, res.Timeout, w.Size())

	res = w.Flush()
	fmt.Println(res.N, res.Timeout, w.Size())
	fmt.Println(out.String())

	// Output:
	// 4 true 8
	// 8 false 0
	// partial send
}

// Example_bytesOut demonstrates the transmitted byte counter.
func Example_bytesOut() {
	var buf bytes.Buffer
	w := NewWithConfig(transport.FromWriter(&buf), Config{
		OnFlush: func(n int, _ time.Duration) {
			fmt.Printf("flushed %d bytes\n", n)
		},
	})

	w.WriteString("abc")
	fmt.Println(w.BytesOut())

	w.Flush()
	w.Writeout([]byte("direct"))
	fmt.Println(w.ResetBytesOut(), w.BytesOut())

	// Output:
	// 0
	// flushed 3 bytes
	// 9 0
}

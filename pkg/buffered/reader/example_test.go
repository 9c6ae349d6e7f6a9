package reader

import (
	"errors"
	"fmt"
	"strings"

	bkerrors "github.com/vnykmshr/bufkit/pkg/common/errors"
	"github.com/vnykmshr/bufkit/pkg/transport"
)

// Example demonstrates line scanning over an io.Reader.
func Example() {
	r := New(transport.FromReader(strings.NewReader("alpha\nbeta\ngamma")))

	for {
		line := r.Scan("\n")
		if !line.Found {
			break
		}
		fmt.Println(string(line.Data))
	}

	rest := r.Read(r.Size())
	fmt.Println(string(rest.Data))

	// Output:
	// alpha
	// beta
	// gamma
}

// Example_readFull demonstrates exact-length reads and short data detection.
func Example_readFull() {
	r := New(transport.FromReader(strings.NewReader("HDR1payload")))

	header := r.ReadFull(4)
	fmt.Printf("header=%s\n", header.Data)

	body := r.ReadFull(32)
	if errors.Is(body.Err, bkerrors.ErrNoData) {
		fmt.Printf("short body=%s\n", body.Data)
	}

	// Output:
	// header=HDR1
	// short body=payload
}

// Example_pattern demonstrates scanning with a regular expression.
func Example_pattern() {
	r := New(transport.FromReader(strings.NewReader("one\r\ntwo\nthree\r\r\n")))

	for {
		line := r.ScanPattern(`\r*\n`)
		if !line.Found {
			break
		}
		fmt.Println(string(line.Data))
	}

	// Output:
	// one
	// two
	// three
}

// Example_prepend demonstrates pushing bytes back in front of the buffer.
func Example_prepend() {
	r := New(transport.FromReader(strings.NewReader("world")))
	r.Prepend([]byte("hello "))

	res := r.ReadFull(11)
	fmt.Println(string(res.Data))

	// Output: hello world
}

// Example_customSource demonstrates implementing a Source with a function.
func Example_customSource() {
	chunks := []string{"a,", "b", ",c"}
	src := transport.SourceFunc(func(max int) transport.ReadResult {
		if len(chunks) == 0 {
			return transport.ReadResult{}
		}
		c := chunks[0]
		chunks = chunks[1:]
		return transport.ReadResult{Data: []byte(c)}
	})

	r := New(src)
	for {
		field := r.Scan(",")
		if !field.Found {
			break
		}
		fmt.Println(string(field.Data))
	}
	fmt.Println(r.Size())

	// Output:
	// a
	// b
	// 1
}

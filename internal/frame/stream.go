package frame

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"io"
	"sync"
)

// maxLine bounds one message on a stream.
const maxLine = 64 * 1024

// Encoder writes messages to a stream, one JSON document per line.
type Encoder struct {
	mu sync.Mutex
	w  io.Writer
}

// NewEncoder writes messages to w.
func NewEncoder(w io.Writer) *Encoder {
	return &Encoder{w: w}
}

// Encode writes m followed by a newline.
func (e *Encoder) Encode(m Message) error {
	data, err := m.Marshal()
	if err != nil {
		return err
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	_, err = e.w.Write(append(data, '\n'))
	return err
}

// StreamBus returns a Bus whose posts are written to e. The source of each post is
// implied by the stream and not encoded.
func (e *Encoder) StreamBus() *Bus {
	b := NewBus()
	b.Listen(func(ev Event) {
		e.mu.Lock()
		defer e.mu.Unlock()
		_, _ = e.w.Write(append(append([]byte(nil), ev.Data...), '\n'))
	})
	return b
}

// Pump reads line-delimited messages from r and posts each non-empty line to bus
// as coming from source. Lines are not validated here; the listening host decides
// what to trust. A line longer than maxLine is discarded up to its newline and
// reading continues. Pump returns when r is exhausted or ctx is done.
func Pump(ctx context.Context, r io.Reader, source *Window, bus *Bus) error {
	br := bufio.NewReaderSize(r, 4096)
	var line []byte
	skipping := false
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		chunk, err := br.ReadSlice('\n')
		if !skipping {
			line = append(line, chunk...)
			if len(bytes.TrimSpace(line)) > maxLine {
				line, skipping = line[:0], true
			}
		}
		if errors.Is(err, bufio.ErrBufferFull) {
			continue
		}

		if msg := bytes.TrimSpace(line); !skipping && len(msg) > 0 {
			bus.Post(source, append([]byte(nil), msg...))
		}
		line, skipping = line[:0], false

		if errors.Is(err, io.EOF) {
			return ctx.Err()
		}
		if err != nil {
			return err
		}
	}
}

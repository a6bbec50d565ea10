// Package trace records engine execution for later inspection.
//
// A Recorder is installed as the Tracer of a vm.Config. It keeps one Entry
// per executed instruction and can export them as a zstd-compressed stream
// of JSON lines.
package trace

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/klauspost/compress/zstd"

	"github.com/fortiblox/stackvm/pkg/vm"
)

// Entry is the recorded form of one executed instruction.
type Entry struct {
	PC       int     `json:"pc"`
	Op       string  `json:"op"`
	Operands []int32 `json:"operands,omitempty"`
	Depth    int     `json:"depth"`
	Error    string  `json:"error,omitempty"`
}

// Recorder collects entries from an engine.
type Recorder struct {
	entries []Entry
}

// NewRecorder creates an empty recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

// TraceStep implements vm.Tracer.
func (r *Recorder) TraceStep(s vm.Step) {
	e := Entry{
		PC:    s.PC,
		Op:    s.Op.String(),
		Depth: s.Depth,
	}
	if len(s.Operands) > 0 {
		e.Operands = append([]int32(nil), s.Operands...)
	}
	if s.Err != nil {
		e.Error = s.Err.Error()
	}
	r.entries = append(r.entries, e)
}

// Entries returns the recorded entries in execution order.
func (r *Recorder) Entries() []Entry {
	return r.entries
}

// Len returns the number of recorded entries.
func (r *Recorder) Len() int {
	return len(r.entries)
}

// Reset discards all recorded entries.
func (r *Recorder) Reset() {
	r.entries = r.entries[:0]
}

// WriteTo writes the entries to w as zstd-compressed JSON lines.
func (r *Recorder) WriteTo(w io.Writer) (int64, error) {
	cw := &countingWriter{w: w}
	enc, err := zstd.NewWriter(cw, zstd.WithEncoderLevel(zstd.SpeedDefault))
	if err != nil {
		return 0, fmt.Errorf("zstd writer: %w", err)
	}

	je := json.NewEncoder(enc)
	for i := range r.entries {
		if err := je.Encode(&r.entries[i]); err != nil {
			enc.Close()
			return cw.n, fmt.Errorf("encode entry %d: %w", i, err)
		}
	}
	if err := enc.Close(); err != nil {
		return cw.n, fmt.Errorf("zstd close: %w", err)
	}
	return cw.n, nil
}

// Decode reads entries written by WriteTo.
func Decode(rd io.Reader) ([]Entry, error) {
	dec, err := zstd.NewReader(rd)
	if err != nil {
		return nil, fmt.Errorf("zstd reader: %w", err)
	}
	defer dec.Close()

	var out []Entry
	jd := json.NewDecoder(dec)
	for {
		var e Entry
		if err := jd.Decode(&e); err != nil {
			if errors.Is(err, io.EOF) {
				return out, nil
			}
			return out, fmt.Errorf("decode entry %d: %w", len(out), err)
		}
		out = append(out, e)
	}
}

type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)
	return n, err
}

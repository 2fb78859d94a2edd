package scramble

import (
	"io"

	"github.com/saylorsolutions/impass/pkg/keys"
)

var (
	_ io.Reader = (*Reader)(nil)
	_ io.Writer = (*Writer)(nil)
)

// Reader undoes the keyed transform on everything read from its source.
// Byte positions start at 0 and advance with each byte read, so a Reader must see a stream from its beginning.
type Reader struct {
	source io.Reader
	scr    *screen
}

// NewReader creates a Reader over source, or returns ErrDegenerateShift if k can't be inverted.
func NewReader(source io.Reader, k keys.CipherKeys) (*Reader, error) {
	scr, err := newScreen(k)
	if err != nil {
		return nil, err
	}
	return &Reader{source: source, scr: scr}, nil
}

func (r *Reader) Read(out []byte) (int, error) {
	n, err := r.source.Read(out)
	for i := range out[:n] {
		out[i] = r.scr.inverse(out[i])
	}
	return n, err
}

// Writer applies the keyed transform to everything written before passing it to its target.
type Writer struct {
	target io.Writer
	scr    *screen
}

// NewWriter creates a Writer over target, or returns ErrDegenerateShift if k can't be inverted.
func NewWriter(target io.Writer, k keys.CipherKeys) (*Writer, error) {
	scr, err := newScreen(k)
	if err != nil {
		return nil, err
	}
	return &Writer{target: target, scr: scr}, nil
}

func (w *Writer) Write(in []byte) (int, error) {
	screened := make([]byte, len(in))
	for i, b := range in {
		screened[i] = w.scr.forward(b)
	}
	return w.target.Write(screened)
}

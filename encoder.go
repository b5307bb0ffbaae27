package huffman

import (
	"errors"
	"fmt"
	"io"

	"github.com/chronos-tachyon/assert"
)

var errEncoderClosed = errors.New("huffman: write to closed Encoder")

// Encoder writes the Code of each byte written to it onto a BitWriter.
// Close terminates the stream with the Code for EndOfStream.
type Encoder struct {
	w      BitWriter
	codes  *CodeTable
	offset int64
	closed bool
}

// NewEncoder returns an Encoder that writes to w using the given codes.
func NewEncoder(w BitWriter, codes *CodeTable) *Encoder {
	assert.Assertf(w != nil, "BitWriter is nil")
	assert.Assertf(codes != nil, "*CodeTable is nil")
	assert.Assertf(codes.Len() > 0, "*CodeTable is empty")
	return &Encoder{w: w, codes: codes}
}

// Write encodes p.  If a byte of p has no Code, Write stops at that byte and
// returns an error wrapping ErrUnknownSymbol; n counts the bytes encoded
// before it.
func (e *Encoder) Write(p []byte) (int, error) {
	if e.closed {
		return 0, errEncoderClosed
	}
	for n, b := range p {
		hc, ok := e.codes.Lookup(Symbol(b))
		if !ok {
			return n, fmt.Errorf("%w: byte 0x%02x at offset %d", ErrUnknownSymbol, b, e.offset)
		}
		if err := writeCode(e.w, hc); err != nil {
			return n, err
		}
		e.offset++
	}
	return len(p), nil
}

// Close writes the Code for EndOfStream.  It does not close or flush the
// underlying BitWriter.  Calling Close more than once has no further effect.
func (e *Encoder) Close() error {
	if e.closed {
		return nil
	}
	e.closed = true
	hc, ok := e.codes.Lookup(EndOfStream)
	assert.Assertf(ok, "CodeTable has no Code for EndOfStream")
	return writeCode(e.w, hc)
}

var _ io.WriteCloser = (*Encoder)(nil)

// Encode writes the Codes for every byte of data followed by the Code for
// EndOfStream.
func Encode(w BitWriter, codes *CodeTable, data []byte) error {
	e := NewEncoder(w, codes)
	if _, err := e.Write(data); err != nil {
		return err
	}
	return e.Close()
}

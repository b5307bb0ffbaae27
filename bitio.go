package huffman

import (
	"errors"
	"io"

	"github.com/icza/bitio"
)

// BitReader is the bit-granularity input consumed by ReadHeader and Decoder.
// ReadBool must return io.EOF (or io.ErrUnexpectedEOF) once the underlying
// data is exhausted.
type BitReader interface {
	ReadBool() (bool, error)
}

// BitWriter is the bit-granularity output consumed by WriteHeader and
// Encoder.
type BitWriter interface {
	WriteBool(bit bool) error
}

var (
	_ BitReader = (*bitio.Reader)(nil)
	_ BitWriter = (*bitio.Writer)(nil)
)

// readBit reads one bit, turning exhaustion of r into ErrTruncatedStream.
func readBit(r BitReader) (bool, error) {
	bit, err := r.ReadBool()
	if err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return false, ErrTruncatedStream
		}
		return false, err
	}
	return bit, nil
}

// readBitsLSB reads an n-bit unsigned value, least significant bit first.
func readBitsLSB(r BitReader, n uint) (uint64, error) {
	var value uint64
	for i := uint(0); i < n; i++ {
		bit, err := readBit(r)
		if err != nil {
			return 0, err
		}
		if bit {
			value |= uint64(1) << i
		}
	}
	return value, nil
}

// writeBitsLSB writes the low n bits of value, least significant bit first.
func writeBitsLSB(w BitWriter, value uint64, n uint) error {
	for i := uint(0); i < n; i++ {
		if err := w.WriteBool((value>>i)&1 != 0); err != nil {
			return err
		}
	}
	return nil
}

func writeCode(w BitWriter, hc Code) error {
	for i := uint(0); i < uint(hc.Size); i++ {
		if err := w.WriteBool(hc.Bit(i)); err != nil {
			return err
		}
	}
	return nil
}

package huffman

import (
	"errors"
	"fmt"
	"io"

	"github.com/cespare/xxhash/v2"
	"github.com/icza/bitio"
)

// Compress writes data to dst as a self-contained stream:
//
//     <header> <encoded data> <padding to a byte boundary> <xxhash64 of data, 8 bytes, big endian>
//
func Compress(dst io.Writer, data []byte) error {
	var freqs Frequencies
	freqs.Add(data)
	t, err := NewTree(freqs[:])
	if err != nil {
		return err
	}

	w := bitio.NewWriter(dst)
	if err := WriteHeader(w, t); err != nil {
		return err
	}
	if err := Encode(w, t.Codes(), data); err != nil {
		return err
	}
	if _, err := w.Align(); err != nil {
		return err
	}
	if err := w.WriteBits(xxhash.Sum64(data), 64); err != nil {
		return err
	}
	return w.Close()
}

// Decompress reads a stream produced by Compress from src and writes the
// original data to dst.  It returns the number of bytes written to dst.  If
// the data does not match its checksum, the error wraps ErrChecksum.
func Decompress(dst io.Writer, src io.Reader) (int64, error) {
	r := bitio.NewReader(src)
	t, err := ReadHeader(r)
	if err != nil {
		return 0, err
	}

	digest := xxhash.New()
	n, err := Decode(io.MultiWriter(dst, digest), r, t)
	if err != nil {
		return n, err
	}

	r.Align()
	expect, err := r.ReadBits(64)
	if err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return n, fmt.Errorf("%w: missing checksum", ErrTruncatedStream)
		}
		return n, err
	}
	if actual := digest.Sum64(); actual != expect {
		return n, fmt.Errorf("%w: expected %016x, got %016x", ErrChecksum, expect, actual)
	}
	return n, nil
}

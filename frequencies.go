package huffman

import (
	"errors"
	"io"
)

// Frequencies counts occurrences of each Symbol.  The EndOfStream entry is
// normally left at zero; NewTree always gives EndOfStream a weight of at
// least 1.
type Frequencies [NumSymbols]int64

// Add counts every byte of p.
func (f *Frequencies) Add(p []byte) {
	for _, b := range p {
		f[b]++
	}
}

// ReadFrom counts every byte read from r until EOF.
func (f *Frequencies) ReadFrom(r io.Reader) (int64, error) {
	var buf [32 * 1024]byte
	var total int64
	for {
		n, err := r.Read(buf[:])
		f.Add(buf[:n])
		total += int64(n)
		if errors.Is(err, io.EOF) {
			return total, nil
		}
		if err != nil {
			return total, err
		}
	}
}

// Total returns the sum of all counts.
func (f *Frequencies) Total() int64 {
	var sum int64
	for _, count := range f {
		sum += count
	}
	return sum
}

var _ io.ReaderFrom = (*Frequencies)(nil)

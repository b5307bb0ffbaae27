package huffman

import (
	"io"

	"github.com/chronos-tachyon/assert"
)

// Decoder reads bits from a BitReader and walks a Tree to recover the bytes
// that an Encoder wrote.  Decoding stops at the EndOfStream leaf; if the
// BitReader runs dry first, the Decoder reports ErrTruncatedStream.
type Decoder struct {
	r    BitReader
	tree *Tree
	err  error
}

// NewDecoder returns a Decoder that reads from r using the given Tree.
func NewDecoder(r BitReader, t *Tree) *Decoder {
	assert.Assertf(r != nil, "BitReader is nil")
	assertBuilt(t)
	return &Decoder{r: r, tree: t}
}

// ReadSymbol decodes the next Symbol.  EndOfStream is returned exactly once;
// afterward ReadSymbol returns io.EOF.
//
// A Tree consisting of just the EndOfStream leaf decodes EndOfStream without
// consuming any bits.
//
func (d *Decoder) ReadSymbol() (Symbol, error) {
	if d.err != nil {
		return InvalidSymbol, d.err
	}

	t := d.tree
	s := t.root
	for isSynthetic(s) {
		bit, err := readBit(d.r)
		if err != nil {
			d.err = err
			return InvalidSymbol, err
		}
		node := &t.internal[syntheticIndex(s)]
		if bit {
			s = node.right
		} else {
			s = node.left
		}
	}

	if s == EndOfStream {
		d.err = io.EOF
	}
	return s, nil
}

// Read implements io.Reader.
func (d *Decoder) Read(p []byte) (int, error) {
	n := 0
	for n < len(p) {
		s, err := d.ReadSymbol()
		if err != nil {
			if n > 0 && err == io.EOF {
				return n, nil
			}
			return n, err
		}
		if s == EndOfStream {
			break
		}
		assert.Assertf(s.IsByte(), "decoded Symbol %d is not a byte", s)
		p[n] = byte(s)
		n++
	}
	if n == 0 && d.err != nil {
		return 0, d.err
	}
	return n, nil
}

var _ io.Reader = (*Decoder)(nil)

// Decode copies every byte decoded from src to dst, stopping after the
// EndOfStream leaf.  It returns the number of bytes written to dst.
func Decode(dst io.Writer, src BitReader, t *Tree) (int64, error) {
	return io.Copy(dst, NewDecoder(src, t))
}

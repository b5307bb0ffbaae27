package huffman

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/chronos-tachyon/assert"
)

// maxCodeSize is the deepest a leaf can sit in a tree of NumSymbols leaves.
const maxCodeSize = 256

const codeWords = (maxCodeSize + 63) / 64

// Code represents a sequence of bits: the path from the root of a Tree to one
// of its leaves, where 0 means "go left" and 1 means "go right".
type Code struct {
	// Size holds the number of valid bits.
	Size uint16

	// Bits holds the actual values of the bits.  The least significant bit
	// of Bits[0] is the first bit; bit i lives in Bits[i/64] at position
	// i%64.
	Bits [codeWords]uint64
}

// ParseCode constructs a Code from a string of '0' and '1' characters.
func ParseCode(str string) (Code, error) {
	if len(str) > maxCodeSize {
		return Code{}, fmt.Errorf("%w: code %q is longer than %d bits", ErrInvalidInput, str, maxCodeSize)
	}
	var hc Code
	for i := 0; i < len(str); i++ {
		switch str[i] {
		case '0':
			hc = hc.Append(false)
		case '1':
			hc = hc.Append(true)
		default:
			return Code{}, fmt.Errorf("%w: code %q contains %q", ErrInvalidInput, str, str[i])
		}
	}
	return hc, nil
}

// Bit returns the i'th bit of this Code.
func (hc Code) Bit(i uint) bool {
	assert.Assertf(i < uint(hc.Size), "bit index %d out of range for Code of size %d", i, hc.Size)
	return (hc.Bits[i/64]>>(i%64))&1 != 0
}

// Append returns a copy of this Code with one more bit at the end.
func (hc Code) Append(bit bool) Code {
	assert.Assertf(hc.Size < maxCodeSize, "Code cannot grow beyond %d bits", maxCodeSize)
	if bit {
		i := uint(hc.Size)
		hc.Bits[i/64] |= uint64(1) << (i % 64)
	}
	hc.Size++
	return hc
}

// HasPrefix returns true iff prefix is a prefix of this Code.  Every Code is
// a prefix of itself.
func (hc Code) HasPrefix(prefix Code) bool {
	if prefix.Size > hc.Size {
		return false
	}
	for i := uint(0); i < uint(prefix.Size); i++ {
		if hc.Bit(i) != prefix.Bit(i) {
			return false
		}
	}
	return true
}

// String returns the string representation of this Code.
func (hc Code) String() string {
	return strconv.Quote(hc.path())
}

// path spells the Code out as '0' and '1' characters, first bit first.
func (hc Code) path() string {
	var sb strings.Builder
	sb.Grow(int(hc.Size))
	for i := uint(0); i < uint(hc.Size); i++ {
		if hc.Bit(i) {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}
	return sb.String()
}

var _ fmt.Stringer = Code{}

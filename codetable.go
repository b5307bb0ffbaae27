package huffman

import (
	"bytes"
	"fmt"
	"io"
)

// CodeTable maps each Symbol of a Tree to its Code.  No Code in a CodeTable
// is a prefix of another.
type CodeTable struct {
	codes   [NumSymbols]Code
	present [NumSymbols]bool
	count   int
	minSize uint16
	maxSize uint16
}

// DeriveCodes computes the CodeTable for t.
func DeriveCodes(t *Tree) *CodeTable {
	assertBuilt(t)
	ct := new(CodeTable)
	t.walk(func(symbol Symbol, hc Code) {
		if ct.count == 0 || ct.minSize > hc.Size {
			ct.minSize = hc.Size
		}
		if ct.count == 0 || ct.maxSize < hc.Size {
			ct.maxSize = hc.Size
		}
		ct.codes[symbol] = hc
		ct.present[symbol] = true
		ct.count++
	})
	return ct
}

// Codes is shorthand for DeriveCodes(t).
func (t *Tree) Codes() *CodeTable {
	return DeriveCodes(t)
}

// Lookup returns the Code for the given Symbol.  The second return value is
// false if the Symbol has no Code.
func (ct *CodeTable) Lookup(symbol Symbol) (Code, bool) {
	if !symbol.IsValid() || !ct.present[symbol] {
		return Code{}, false
	}
	return ct.codes[symbol], true
}

// Len returns the number of Symbols with a Code.
func (ct *CodeTable) Len() int {
	return ct.count
}

// MinSize is the bit length of the shortest Code.
func (ct *CodeTable) MinSize() uint16 {
	return ct.minSize
}

// MaxSize is the bit length of the longest Code.
func (ct *CodeTable) MaxSize() uint16 {
	return ct.maxSize
}

// String returns a brief description of this CodeTable.
func (ct *CodeTable) String() string {
	return fmt.Sprintf("(Huffman code table with %d symbols, with coded lengths of %d .. %d bits)", ct.count, ct.minSize, ct.maxSize)
}

// Dump writes a programmer-readable debugging dump of the CodeTable to the
// given writer.  Symbols without a Code are omitted.
func (ct *CodeTable) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("CodeTable{\n")
	fmt.Fprintf(&buf, "\tMinSize() = %d\n", ct.minSize)
	fmt.Fprintf(&buf, "\tMaxSize() = %d\n", ct.maxSize)
	for symbol := Symbol(0); symbol <= MaxSymbol; symbol++ {
		if ct.present[symbol] {
			fmt.Fprintf(&buf, "\tLookup(%d) = %s\n", symbol, ct.codes[symbol])
		}
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}

var _ fmt.Stringer = (*CodeTable)(nil)

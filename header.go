package huffman

import "fmt"

// WriteHeader serializes the shape and leaf symbols of t to w, in preorder.
// Internal nodes are written as a single 0 bit; leaves are written as a 1
// bit followed by the 9-bit Symbol, least significant bit first.
func WriteHeader(w BitWriter, t *Tree) error {
	assertBuilt(t)
	return writeHeaderNode(w, t, t.root)
}

func writeHeaderNode(w BitWriter, t *Tree, s Symbol) error {
	if !isSynthetic(s) {
		if err := w.WriteBool(true); err != nil {
			return err
		}
		return writeBitsLSB(w, uint64(s), symbolBits)
	}

	node := t.internal[syntheticIndex(s)]
	if err := w.WriteBool(false); err != nil {
		return err
	}
	if err := writeHeaderNode(w, t, node.left); err != nil {
		return err
	}
	return writeHeaderNode(w, t, node.right)
}

// ReadHeader reconstructs a Tree that was serialized by WriteHeader.  The
// returned Tree has the original shape and leaf symbols, but all of its
// weights are 0.
func ReadHeader(r BitReader) (*Tree, error) {
	t := new(Tree)
	root, err := readHeaderNode(r, t, 0)
	if err != nil {
		return nil, err
	}
	t.root = root
	if err := t.checkComplete(); err != nil {
		return nil, err
	}
	return t, nil
}

func readHeaderNode(r BitReader, t *Tree, depth uint) (Symbol, error) {
	isLeaf, err := readBit(r)
	if err != nil {
		return InvalidSymbol, err
	}

	if isLeaf {
		value, err := readBitsLSB(r, symbolBits)
		if err != nil {
			return InvalidSymbol, err
		}
		symbol := Symbol(value)
		if !symbol.IsValid() {
			return InvalidSymbol, fmt.Errorf("%w: header symbol %d out of range [0, %d]", ErrInvalidInput, value, MaxSymbol)
		}
		if t.present[symbol] {
			return InvalidSymbol, fmt.Errorf("%w: header repeats symbol %d", ErrInvalidInput, symbol)
		}
		t.addLeaf(symbol, 0)
		return symbol, nil
	}

	// The children of this node would sit deeper than any leaf of a
	// NumSymbols-leaf tree can.
	if depth >= maxCodeSize {
		return InvalidSymbol, fmt.Errorf("%w: header nests deeper than %d levels", ErrInvalidInput, maxCodeSize)
	}

	left, err := readHeaderNode(r, t, depth+1)
	if err != nil {
		return InvalidSymbol, err
	}
	right, err := readHeaderNode(r, t, depth+1)
	if err != nil {
		return InvalidSymbol, err
	}
	return t.addInternal(left, right, 0), nil
}

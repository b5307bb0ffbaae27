package huffman

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// emptySlot marks a child that ReadText has not filled in yet.
const emptySlot = InvalidSymbol

// WriteText writes t in the text header format: for each leaf in preorder,
// one line with the decimal Symbol and one line with its path.
func WriteText(w io.Writer, t *Tree) error {
	assertBuilt(t)
	var buf bytes.Buffer
	t.walk(func(symbol Symbol, hc Code) {
		buf.WriteString(strconv.Itoa(int(symbol)))
		buf.WriteByte('\n')
		buf.WriteString(hc.path())
		buf.WriteByte('\n')
	})
	_, err := buf.WriteTo(w)
	return err
}

// ReadText reconstructs a Tree from the text header format, reading until
// EOF.  Internal nodes are created as the paths require them.  The returned
// Tree has all of its weights set to 0.
func ReadText(r io.Reader) (*Tree, error) {
	t := &Tree{root: emptySlot}

	sc := bufio.NewScanner(r)
	lineNum := 0
	for sc.Scan() {
		lineNum++
		symbolLine := strings.TrimSpace(sc.Text())
		if !sc.Scan() {
			if err := scanError(sc, lineNum+1); err != nil {
				return nil, err
			}
			return nil, fmt.Errorf("%w: line %d: symbol %q has no path", ErrInvalidInput, lineNum, symbolLine)
		}
		lineNum++
		pathLine := strings.TrimSpace(sc.Text())

		value, err := strconv.ParseUint(symbolLine, 10, 32)
		if err != nil || value > uint64(MaxSymbol) {
			return nil, fmt.Errorf("%w: line %d: bad symbol %q", ErrInvalidInput, lineNum-1, symbolLine)
		}
		if err := t.graft(Symbol(value), pathLine); err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNum, err)
		}
	}
	if err := scanError(sc, lineNum+1); err != nil {
		return nil, err
	}

	if t.root == emptySlot {
		return nil, fmt.Errorf("%w: text header has no leaves", ErrInvalidInput)
	}
	for i, node := range t.internal {
		if node.left == emptySlot || node.right == emptySlot {
			return nil, fmt.Errorf("%w: internal node %d is missing a child", ErrInvalidInput, i)
		}
	}
	if err := t.checkComplete(); err != nil {
		return nil, err
	}
	return t, nil
}

// scanError reports why sc stopped early, if it did.  No well-formed line
// comes anywhere near the Scanner's buffer limit.
func scanError(sc *bufio.Scanner, lineNum int) error {
	err := sc.Err()
	if errors.Is(err, bufio.ErrTooLong) {
		return fmt.Errorf("%w: line %d: %v", ErrInvalidInput, lineNum, err)
	}
	return err
}

// graft follows path from the root, creating internal nodes where none
// exist yet, and attaches a leaf for symbol where the path ends.
func (t *Tree) graft(symbol Symbol, path string) error {
	if t.present[symbol] {
		return fmt.Errorf("%w: symbol %d appears twice", ErrInvalidInput, symbol)
	}
	if len(path) > maxCodeSize {
		return fmt.Errorf("%w: path for symbol %d is longer than %d bits", ErrInvalidInput, symbol, maxCodeSize)
	}

	atRoot := true
	var parent Symbol
	var right bool

	slot := func() *Symbol {
		if atRoot {
			return &t.root
		}
		node := &t.internal[syntheticIndex(parent)]
		if right {
			return &node.right
		}
		return &node.left
	}

	for i := 0; i < len(path); i++ {
		var bit bool
		switch path[i] {
		case '0':
		case '1':
			bit = true
		default:
			return fmt.Errorf("%w: path %q contains %q", ErrInvalidInput, path, path[i])
		}

		s := *slot()
		if s == emptySlot {
			s = t.addInternal(emptySlot, emptySlot, 0)
			*slot() = s
		} else if !isSynthetic(s) {
			return fmt.Errorf("%w: path %q for symbol %d runs through the leaf for symbol %d", ErrInvalidInput, path, symbol, s)
		}
		atRoot, parent, right = false, s, bit
	}

	end := slot()
	if *end != emptySlot {
		return fmt.Errorf("%w: path %q for symbol %d ends on an existing node", ErrInvalidInput, path, symbol)
	}
	*end = symbol
	t.addLeaf(symbol, 0)
	return nil
}

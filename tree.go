package huffman

import (
	"bytes"
	"fmt"
	"io"

	"github.com/chronos-tachyon/assert"
)

// Tree is a Huffman code tree.  It is immutable once built by NewTree,
// ReadHeader, or ReadText, and may be shared by any number of concurrent
// Encoders and Decoders.  The zero Tree has no leaves and cannot be used
// for coding until Init is called.
//
// Leaves are named by their natural Symbol.  Internal nodes are named by
// synthetic (negative) symbols which index into the internal slice.
type Tree struct {
	internal  []internalNode
	weights   [NumSymbols]uint64
	present   [NumSymbols]bool
	numLeaves int
	root      Symbol
}

type internalNode struct {
	left   Symbol
	right  Symbol
	weight uint64
}

// Leaf describes one leaf of a Tree.
type Leaf struct {
	Symbol Symbol
	Code   Code
	Weight uint64
}

// Root returns the root node of this Tree.
func (t *Tree) Root() Node {
	return Node{t, t.root}
}

// NumLeaves returns the number of leaves, which is also the number of
// symbols with a code.
func (t *Tree) NumLeaves() int {
	return t.numLeaves
}

// Weight returns the weight of the root.  Trees reconstructed from a header
// have a weight of 0, since weights are not serialized.
func (t *Tree) Weight() uint64 {
	if t.numLeaves == 0 {
		return 0
	}
	return t.weight(t.root)
}

// Has returns true iff the given Symbol has a leaf in this Tree.
func (t *Tree) Has(symbol Symbol) bool {
	return symbol.IsValid() && t.present[symbol]
}

// Leaves lists the leaves of this Tree in preorder, i.e. left to right.
func (t *Tree) Leaves() []Leaf {
	out := make([]Leaf, 0, t.numLeaves)
	t.walk(func(symbol Symbol, hc Code) {
		out = append(out, Leaf{symbol, hc, t.weights[symbol]})
	})
	return out
}

// Equal returns true iff both Trees have the same shape and the same
// symbols at the same leaves.  Weights are not compared.
func (t *Tree) Equal(other *Tree) bool {
	if t.numLeaves == 0 || other.numLeaves == 0 {
		return t.numLeaves == other.numLeaves
	}
	return equalNodes(t, t.root, other, other.root)
}

func equalNodes(a *Tree, x Symbol, b *Tree, y Symbol) bool {
	if !isSynthetic(x) || !isSynthetic(y) {
		return x == y
	}
	nx := a.internal[syntheticIndex(x)]
	ny := b.internal[syntheticIndex(y)]
	return equalNodes(a, nx.left, b, ny.left) && equalNodes(a, nx.right, b, ny.right)
}

// String returns a brief description of this Tree.
func (t *Tree) String() string {
	return fmt.Sprintf("(Huffman tree with %d leaves, total weight %d)", t.numLeaves, t.Weight())
}

// Dump writes a programmer-readable debugging dump of the Tree to the given
// writer.
func (t *Tree) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("Tree{\n")
	fmt.Fprintf(&buf, "\tNumLeaves() = %d\n", t.numLeaves)
	fmt.Fprintf(&buf, "\tWeight() = %d\n", t.Weight())
	t.walk(func(symbol Symbol, hc Code) {
		fmt.Fprintf(&buf, "\tLeaf(%d) = {%s, %d}\n", symbol, hc, t.weights[symbol])
	})
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}

func (t *Tree) weight(s Symbol) uint64 {
	if isSynthetic(s) {
		return t.internal[syntheticIndex(s)].weight
	}
	return t.weights[s]
}

func (t *Tree) addLeaf(symbol Symbol, weight uint64) {
	assert.Assertf(symbol.IsValid(), "Symbol %d out of range", symbol)
	assert.Assertf(!t.present[symbol], "Symbol %d already has a leaf", symbol)
	t.weights[symbol] = weight
	t.present[symbol] = true
	t.numLeaves++
}

func (t *Tree) addInternal(left, right Symbol, weight uint64) Symbol {
	t.internal = append(t.internal, internalNode{left, right, weight})
	return syntheticSymbol(len(t.internal) - 1)
}

// walk visits every leaf in preorder along with its Code.
//
// We use stackItem.x to keep track of where we are in the tree walk:
//   x=0 → We just arrived at stackItem for the first time
//   x=1 → We have already processed the left child
//   x=2 → We have already processed both children
//
func (t *Tree) walk(fn func(symbol Symbol, hc Code)) {
	if t.numLeaves == 0 {
		return
	}

	type stackItem struct {
		s  Symbol
		hc Code
		x  byte
	}

	stack := make([]stackItem, 0, 16)

	processChild := func(child Symbol, hc Code) {
		if isSynthetic(child) {
			stack = append(stack, stackItem{s: child, hc: hc})
			return
		}
		fn(child, hc)
	}

	processChild(t.root, Code{})
	for len(stack) != 0 {
		top := &stack[len(stack)-1]
		x := top.x
		top.x++
		switch x {
		case 0:
			processChild(t.internal[syntheticIndex(top.s)].left, top.hc.Append(false))
		case 1:
			processChild(t.internal[syntheticIndex(top.s)].right, top.hc.Append(true))
		case 2:
			stack = stack[:len(stack)-1]
		}
	}
}

// assertBuilt panics if t is nil or has not been built yet.
func assertBuilt(t *Tree) {
	assert.Assertf(t != nil, "*Tree is nil")
	assert.Assertf(t.numLeaves > 0, "*Tree has not been initialized")
}

// checkComplete verifies the properties every reconstructed Tree must have.
func (t *Tree) checkComplete() error {
	if !t.present[EndOfStream] {
		return fmt.Errorf("%w: tree has no end-of-stream leaf", ErrInvalidInput)
	}
	return nil
}

var _ fmt.Stringer = (*Tree)(nil)

// type Node {{{

// Node is a read-only handle to one node of a Tree.
type Node struct {
	t *Tree
	s Symbol
}

// IsLeaf returns true iff this Node has no children.
func (n Node) IsLeaf() bool {
	return !isSynthetic(n.s)
}

// Symbol returns the Symbol carried by this leaf.
func (n Node) Symbol() Symbol {
	assert.Assertf(n.IsLeaf(), "Symbol called on an internal Node")
	return n.s
}

// Weight returns the weight of this Node.  An internal Node weighs as much as
// its two children combined.
func (n Node) Weight() uint64 {
	return n.t.weight(n.s)
}

// Left returns the child reached by a 0 bit.
func (n Node) Left() Node {
	assert.Assertf(!n.IsLeaf(), "Left called on a leaf Node")
	return Node{n.t, n.t.internal[syntheticIndex(n.s)].left}
}

// Right returns the child reached by a 1 bit.
func (n Node) Right() Node {
	assert.Assertf(!n.IsLeaf(), "Right called on a leaf Node")
	return Node{n.t, n.t.internal[syntheticIndex(n.s)].right}
}

// }}}

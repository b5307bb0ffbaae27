package huffman

import (
	"io"
	"strings"
	"testing"
)

func TestTree_Node(t *testing.T) {
	tree := makeTestTree()

	root := tree.Root()
	if root.IsLeaf() {
		t.Fatal("root is a leaf")
	}
	if root.Weight() != 9 {
		t.Errorf("expected root weight 9, got %d", root.Weight())
	}

	a := root.Right()
	if !a.IsLeaf() || a.Symbol() != 'A' || a.Weight() != 5 {
		t.Errorf("expected leaf 'A' with weight 5 at \"1\", got %d/%d", a.s, a.Weight())
	}

	eos := root.Left().Right().Right()
	if !eos.IsLeaf() || eos.Symbol() != EndOfStream {
		t.Errorf("expected EndOfStream at \"011\", got %d", eos.s)
	}
}

func TestTree_String(t *testing.T) {
	tree := makeTestTree()

	expectString := "(Huffman tree with 4 leaves, total weight 9)"
	actualString := tree.String()
	if expectString != actualString {
		t.Errorf("wrong output:\n\texpect: %s\n\tactual: %s", expectString, actualString)
	}
}

func TestTree_Has(t *testing.T) {
	tree := makeTestTree()

	for _, s := range []Symbol{'A', 'B', 'C', EndOfStream} {
		if !tree.Has(s) {
			t.Errorf("expected a leaf for %d", s)
		}
	}
	for _, s := range []Symbol{0, 'D', 255, InvalidSymbol, MaxSymbol + 1} {
		if tree.Has(s) {
			t.Errorf("unexpected leaf for %d", s)
		}
	}
}

func TestTree_Equal(t *testing.T) {
	a := makeTestTree()
	b := makeTestTree()
	if !a.Equal(b) {
		t.Error("identical trees reported unequal")
	}

	freqs := makeTestFrequencies()
	freqs['D'] = 1
	c, err := NewTree(freqs)
	if err != nil {
		t.Fatal(err)
	}
	if a.Equal(c) || c.Equal(a) {
		t.Error("different trees reported equal")
	}

	d, err := NewTree(nil)
	if err != nil {
		t.Fatal(err)
	}
	if a.Equal(d) || d.Equal(a) {
		t.Error("single-leaf tree reported equal to a larger tree")
	}
}

func TestTree_NodeMisuse(t *testing.T) {
	tree := makeTestTree()

	expectPanic := func(name string, fn func()) {
		t.Helper()
		defer func() {
			if recover() == nil {
				t.Errorf("%s: expected a panic", name)
			}
		}()
		fn()
	}

	expectPanic("Symbol on internal node", func() { _ = tree.Root().Symbol() })
	expectPanic("Left on leaf", func() { _ = tree.Root().Right().Left() })
	expectPanic("Right on leaf", func() { _ = tree.Root().Right().Right() })
}

func TestTree_Zero(t *testing.T) {
	var tree Tree

	expectDump := strings.Join([]string{
		"Tree{\n",
		"\tNumLeaves() = 0\n",
		"\tWeight() = 0\n",
		"}\n",
	}, "")

	var buf strings.Builder
	_, _ = tree.Dump(&buf)
	actualDump := buf.String()

	if expectDump != actualDump {
		t.Errorf("wrong output:\n\texpect: %s\n\tactual: %s", expectDump, actualDump)
	}
	if len(tree.Leaves()) != 0 {
		t.Errorf("expected no leaves, got %d", len(tree.Leaves()))
	}
	if tree.Equal(makeTestTree()) || makeTestTree().Equal(&tree) {
		t.Error("zero tree reported equal to a built tree")
	}
	if !tree.Equal(&Tree{}) {
		t.Error("two zero trees reported unequal")
	}
}

func TestTree_ZeroRejected(t *testing.T) {
	expectPanic := func(name string, fn func()) {
		t.Helper()
		defer func() {
			if recover() == nil {
				t.Errorf("%s: expected a panic", name)
			}
		}()
		fn()
	}

	expectPanic("NewDecoder", func() { NewDecoder(parseBits("0101"), &Tree{}) })
	expectPanic("Decode", func() { _, _ = Decode(io.Discard, parseBits("0101"), &Tree{}) })
	expectPanic("DeriveCodes", func() { DeriveCodes(&Tree{}) })
	expectPanic("NewEncoder", func() { NewEncoder(new(bitSlice), new(CodeTable)) })
	expectPanic("WriteHeader", func() { _ = WriteHeader(new(bitSlice), &Tree{}) })
	expectPanic("WriteText", func() { _ = WriteText(io.Discard, &Tree{}) })
}

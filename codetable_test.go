package huffman

import (
	"strings"
	"testing"
)

func TestCodeTable(t *testing.T) {
	tree, err := NewTree([]int64{5, 9, 12, 13, 16, 45})
	if err != nil {
		t.Fatal(err)
	}
	codes := tree.Codes()

	expectDump := strings.Join([]string{
		"CodeTable{\n",
		"\tMinSize() = 1\n",
		"\tMaxSize() = 5\n",
		"\tLookup(0) = \"11001\"\n",
		"\tLookup(1) = \"1101\"\n",
		"\tLookup(2) = \"100\"\n",
		"\tLookup(3) = \"101\"\n",
		"\tLookup(4) = \"111\"\n",
		"\tLookup(5) = \"0\"\n",
		"\tLookup(256) = \"11000\"\n",
		"}\n",
	}, "")

	var buf strings.Builder
	_, _ = codes.Dump(&buf)
	actualDump := buf.String()

	if expectDump != actualDump {
		t.Errorf("wrong output:\n\texpect: %s\n\tactual: %s", expectDump, actualDump)
	}

	expectString := "(Huffman code table with 7 symbols, with coded lengths of 1 .. 5 bits)"
	if actualString := codes.String(); expectString != actualString {
		t.Errorf("wrong output:\n\texpect: %s\n\tactual: %s", expectString, actualString)
	}
}

func TestCodeTable_Lookup(t *testing.T) {
	codes := makeTestTree().Codes()

	type testRow struct {
		symbol Symbol
		code   string
		ok     bool
	}

	testData := [...]testRow{
		{symbol: 'A', code: "1", ok: true},
		{symbol: 'B', code: "00", ok: true},
		{symbol: 'C', code: "010", ok: true},
		{symbol: EndOfStream, code: "011", ok: true},
		{symbol: 'D', ok: false},
		{symbol: InvalidSymbol, ok: false},
		{symbol: MaxSymbol + 1, ok: false},
	}
	for _, row := range testData {
		hc, ok := codes.Lookup(row.symbol)
		if ok != row.ok {
			t.Errorf("Lookup(%d): expected ok=%v, got %v", row.symbol, row.ok, ok)
			continue
		}
		if ok && hc.path() != row.code {
			t.Errorf("Lookup(%d): expected %q, got %s", row.symbol, row.code, hc)
		}
	}
	if codes.Len() != 4 {
		t.Errorf("expected 4 codes, got %d", codes.Len())
	}
}

func TestCodeTable_SingleLeaf(t *testing.T) {
	tree, err := NewTree(nil)
	if err != nil {
		t.Fatal(err)
	}
	codes := DeriveCodes(tree)

	hc, ok := codes.Lookup(EndOfStream)
	if !ok {
		t.Fatal("no code for EndOfStream")
	}
	if hc.Size != 0 {
		t.Errorf("expected the empty code, got %s", hc)
	}
	if codes.Len() != 1 || codes.MinSize() != 0 || codes.MaxSize() != 0 {
		t.Errorf("wrong table: %v", codes)
	}
}

func TestCodeTable_PrefixFree(t *testing.T) {
	freqs := make([]int64, NumSymbols)
	for i := 0; i < 256; i++ {
		freqs[i] = int64((i*37)%101 + 1)
	}
	tree, err := NewTree(freqs)
	if err != nil {
		t.Fatal(err)
	}
	codes := tree.Codes()
	if codes.Len() != NumSymbols {
		t.Fatalf("expected %d codes, got %d", NumSymbols, codes.Len())
	}

	for a := Symbol(0); a <= MaxSymbol; a++ {
		ca, _ := codes.Lookup(a)
		for b := Symbol(0); b <= MaxSymbol; b++ {
			if a == b {
				continue
			}
			cb, _ := codes.Lookup(b)
			if cb.HasPrefix(ca) {
				t.Fatalf("code for %d (%s) is a prefix of code for %d (%s)", a, ca, b, cb)
			}
		}
	}
}

package huffman

import (
	"container/heap"
	"fmt"

	"github.com/chronos-tachyon/assert"
)

// NewTree is a convenience function that allocates a Tree and initializes it
// with Init.
func NewTree(frequencies []int64) (*Tree, error) {
	t := new(Tree)
	if err := t.Init(frequencies); err != nil {
		return nil, err
	}
	return t, nil
}

// Init builds this Tree from a list of frequencies (i.e. number of
// occurrences), one for each Symbol except that any Symbol not represented
// in the list is assumed to have a frequency of 0.  Symbols with a frequency
// of 0 get no leaf, except for EndOfStream, which always gets a leaf with a
// weight of at least 1.
//
// If only EndOfStream has a leaf, the Tree is that single leaf and its Code
// is empty.
//
func (t *Tree) Init(frequencies []int64) error {
	if len(frequencies) > NumSymbols {
		return fmt.Errorf("%w: %d frequencies for an alphabet of %d symbols", ErrInvalidInput, len(frequencies), NumSymbols)
	}
	for symbol, freq := range frequencies {
		if freq < 0 {
			return fmt.Errorf("%w: negative frequency %d for symbol %d", ErrInvalidInput, freq, symbol)
		}
	}

	*t = Tree{}
	nodes := make([]symbolAndWeight, 0, NumSymbols)
	for symbol := Symbol(0); symbol < EndOfStream && int(symbol) < len(frequencies); symbol++ {
		if freq := frequencies[symbol]; freq != 0 {
			t.addLeaf(symbol, uint64(freq))
			nodes = append(nodes, symbolAndWeight{symbol, uint64(freq)})
		}
	}

	eosWeight := uint64(1)
	if len(frequencies) > int(EndOfStream) && frequencies[EndOfStream] > 1 {
		eosWeight = uint64(frequencies[EndOfStream])
	}
	t.addLeaf(EndOfStream, eosWeight)
	nodes = append(nodes, symbolAndWeight{EndOfStream, eosWeight})

	// Pop two nodes, combine them under a new internal node, and push the
	// internal node back onto the minheap, until only the root is left.

	h := weightHeap{nodes}
	h.Init()
	for h.Len() > 1 {
		a := heap.Pop(&h).(symbolAndWeight)
		b := heap.Pop(&h).(symbolAndWeight)
		sum := addWeights(a.weight, b.weight)
		heap.Push(&h, symbolAndWeight{t.addInternal(a.symbol, b.symbol, sum), sum})
	}
	t.root = heap.Pop(&h).(symbolAndWeight).symbol

	assert.Assertf(len(t.internal) == t.numLeaves-1, "%d internal nodes for %d leaves", len(t.internal), t.numLeaves)
	return nil
}

// type symbolAndWeight + type weightHeap {{{

type symbolAndWeight struct {
	symbol Symbol
	weight uint64
}

type weightHeap struct {
	list []symbolAndWeight
}

func (h *weightHeap) Init() {
	heap.Init(h)
}

func (h *weightHeap) Len() int {
	return len(h.list)
}

func (h *weightHeap) Swap(i, j int) {
	h.list[i], h.list[j] = h.list[j], h.list[i]
}

// Less orders by weight, then by symbol as uint32.  Natural symbols thus come
// before synthetic symbols, and synthetic symbols are ordered by creation.
func (h *weightHeap) Less(i, j int) bool {
	a, b := h.list[i], h.list[j]
	if a.weight != b.weight {
		return a.weight < b.weight
	}
	return uint32(a.symbol) < uint32(b.symbol)
}

func (h *weightHeap) Push(x interface{}) {
	h.list = append(h.list, x.(symbolAndWeight))
}

func (h *weightHeap) Pop() interface{} {
	last := uint(len(h.list)) - 1
	x := h.list[last]
	h.list = h.list[:last]
	return x
}

var _ heap.Interface = (*weightHeap)(nil)

// }}}

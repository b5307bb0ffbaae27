package huffman

import (
	"math"
	mathbits "math/bits"
)

// addWeights is saturating addition for node weights.
func addWeights(a, b uint64) uint64 {
	sum, carry := mathbits.Add64(a, b, 0)
	if carry != 0 {
		return math.MaxUint64
	}
	return sum
}

// Internal nodes are named by "synthetic" symbols, which are distinguished
// from natural symbols by their sign: natural symbols are zero- or
// positive-valued, while synthetic symbols are negative-valued.
// math.MinInt32 is the 0'th synthetic symbol, and the subsequent ones are
// assigned as consecutive integers approaching 0 from below.

func isSynthetic(s Symbol) bool {
	return s < 0
}

func syntheticSymbol(index int) Symbol {
	return Symbol(math.MinInt32 + int64(index))
}

func syntheticIndex(s Symbol) int {
	return int(int32(s) - math.MinInt32)
}

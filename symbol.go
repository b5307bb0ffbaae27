package huffman

// Symbol represents a symbol in the coded alphabet.  Symbols 0 through 255
// are byte values and EndOfStream marks the end of the coded data.  Negative
// symbols are not valid.
type Symbol int32

// EndOfStream is the reserved symbol that terminates every encoded stream.
const EndOfStream = Symbol(256)

// MaxSymbol is the maximum valid symbol.
const MaxSymbol = EndOfStream

// NumSymbols is the size of the alphabet, including EndOfStream.
const NumSymbols = 257

// InvalidSymbol is returned by some functions to clearly indicate that no
// symbol is being returned.
const InvalidSymbol = Symbol(-1)

// symbolBits is the fixed width of a Symbol in the binary header.
const symbolBits = 9

// IsValid returns true iff the Symbol lies within [0, MaxSymbol].
func (s Symbol) IsValid() bool {
	return s >= 0 && s <= MaxSymbol
}

// IsByte returns true iff the Symbol stands for a literal byte value.
func (s Symbol) IsByte() bool {
	return s >= 0 && s <= 0xff
}

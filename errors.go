package huffman

import "errors"

var (
	// ErrInvalidInput is returned for negative frequencies, malformed headers,
	// and symbols outside of [0, MaxSymbol].
	ErrInvalidInput = errors.New("huffman: invalid input")

	// ErrUnknownSymbol is returned when a byte has no code in the CodeTable.
	ErrUnknownSymbol = errors.New("huffman: symbol has no code")

	// ErrTruncatedStream is returned when the bit source runs out before the
	// end-of-stream symbol is reached.
	ErrTruncatedStream = errors.New("huffman: truncated stream")

	// ErrChecksum is returned by Decompress when the decoded data does not
	// match the checksum stored after it.
	ErrChecksum = errors.New("huffman: checksum mismatch")
)

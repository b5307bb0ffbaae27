// Package huffman implements Huffman coding over the byte alphabet with an
// explicit end-of-stream symbol.  A Tree is built from per-symbol frequencies,
// serialized into a compact preorder header, and used to turn a byte stream
// into a bit stream and back.  Decoding stops when the end-of-stream symbol is
// decoded, so the encoded data need not carry its own length.
//
// Tree construction uses a min-heap keyed on weight.  Ties are broken in a
// fixed order, which is part of the format: leaves sort before internal nodes,
// leaves sort by ascending Symbol, and internal nodes sort by the order in
// which they were created.  The first node removed becomes the left child.
//
// Header format:
//
//     internal node:  0 <left subtree> <right subtree>
//     leaf:           1 <symbol, 9 bits, least significant bit first>
//
// Text header format, one record per leaf in preorder:
//
//     <decimal symbol>\n
//     <path from the root, as '0' and '1' characters>\n
//
// References:
//
//     <https://en.wikipedia.org/wiki/Huffman_coding>
//
package huffman

// Package louds implements a Level-Order Unary Degree Sequence ordinal tree
// on top of a rankselect.Index.
//
// # Encoding
//
// The sequence starts with the super-root block "10" (position 0 is the
// virtual node's single edge). Then every node, in breadth-first order,
// contributes a block of one bit per child followed by a terminating zero:
//
//	root(2 children) -> a(3 children), b(0)
//	a -> c, d, e (all leaves)
//
//	10 110 1110 0 0 0 0
//	^  ^   ^    ^ positions 0, 2, 5, 9
//
// A tree of n nodes takes 2n+1 bits. Nodes are addressed by the position of
// their block; the root is always at position 2.
//
// # Navigation
//
// All moves are compositions of rank and select:
//
//	FirstChild(x)  = select0(rank1(x)) + 1
//	Child(x, k)    = select0(rank1(x+k-1)) + 1
//	Parent(x)      = select0(rank0(select1(rank0(x-1)))) + 1
//	NextSibling(x) = select0(rank0(x-1)+1) + 1
//
// Moves that leave the tree (parent of the root, child beyond the degree,
// sibling after the last child) fail with succinct.ErrOutOfRange.
package louds

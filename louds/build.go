package louds

import (
	"github.com/bits-and-blooms/bitset"

	"github.com/hupe1980/succinct"
	"github.com/hupe1980/succinct/bitvector"
	"github.com/hupe1980/succinct/internal/conv"
)

// Encode writes the LOUDS sequence of a breadth-first degree sequence.
// degrees[0] is the root. The result is not validated; use FromDegrees for
// a checked tree.
func Encode(degrees []int) (*bitvector.Bitvector, error) {
	length := 2
	for i, d := range degrees {
		if d < 0 {
			return nil, succinct.InvalidArgument("node %d has negative degree %d", i, d)
		}
		length += d + 1
	}
	bv, err := bitvector.New(length)
	if err != nil {
		return nil, err
	}
	if length == 2 {
		return bv, nil
	}
	if err := bv.Set(0); err != nil {
		return nil, err
	}
	pos := rootPos
	for _, d := range degrees {
		for i := 0; i < d; i++ {
			if err := bv.Set(pos); err != nil {
				return nil, err
			}
			pos++
		}
		pos++
	}
	return bv, nil
}

// FromDegrees builds a tree from its breadth-first degree sequence.
func FromDegrees(degrees []int, opts ...Option) (*Tree, error) {
	bv, err := Encode(degrees)
	if err != nil {
		return nil, err
	}
	return FromBitvector(bv, opts...)
}

// FromChildren builds a tree from an adjacency list: children[v] lists the
// children of node v in order. Every node must be reachable from root
// exactly once.
//
// The second result maps each node v to its position in the tree.
func FromChildren(children [][]int, root int, opts ...Option) (*Tree, []int, error) {
	n := len(children)
	if err := succinct.CheckRange("root", root, 0, n-1); err != nil {
		return nil, nil, succinct.InvalidArgument("root %d: %v", root, err)
	}

	size, err := conv.IntToUint(n)
	if err != nil {
		return nil, nil, err
	}
	visited := bitset.New(size)
	r, err := conv.IntToUint(root)
	if err != nil {
		return nil, nil, err
	}
	visited.Set(r)

	order := make([]int, 0, n)
	order = append(order, root)
	degrees := make([]int, 0, n)
	for head := 0; head < len(order); head++ {
		v := order[head]
		for _, c := range children[v] {
			if c < 0 || c >= n {
				return nil, nil, succinct.InvalidArgument("node %d has unknown child %d", v, c)
			}
			u, err := conv.IntToUint(c)
			if err != nil {
				return nil, nil, err
			}
			if visited.Test(u) {
				return nil, nil, succinct.InvalidArgument("node %d is reached twice (child of %d)", c, v)
			}
			visited.Set(u)
			order = append(order, c)
		}
		degrees = append(degrees, len(children[v]))
	}
	if len(order) != n {
		return nil, nil, succinct.InvalidArgument("%d of %d nodes are unreachable from %d", n-len(order), n, root)
	}

	t, err := FromDegrees(degrees, opts...)
	if err != nil {
		return nil, nil, err
	}

	positions := make([]int, n)
	for id, v := range order {
		pos, err := t.Position(id + 1)
		if err != nil {
			return nil, nil, err
		}
		positions[v] = pos
	}
	return t, positions, nil
}

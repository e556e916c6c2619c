package louds

import (
	"context"
	"fmt"
	"time"

	"github.com/hupe1980/succinct"
	"github.com/hupe1980/succinct/bitvector"
	"github.com/hupe1980/succinct/rankselect"
)

// rootPos is the block position of the root: right after the "10" prefix.
const rootPos = 2

// EncodingError reports why a bit sequence is not a LOUDS tree.
//
// It unwraps to succinct.ErrInvalidArgument.
type EncodingError struct {
	Pos    int
	Reason string
}

func (e *EncodingError) Error() string {
	return fmt.Sprintf("louds: invalid encoding at bit %d: %s", e.Pos, e.Reason)
}

func (e *EncodingError) Unwrap() error { return succinct.ErrInvalidArgument }

// Tree is an ordinal tree stored as a LOUDS bit sequence.
//
// A Tree is immutable and safe for concurrent use.
type Tree struct {
	idx   *rankselect.Index
	nodes int
}

// New wraps idx as a tree after checking that it holds a valid encoding.
func New(idx *rankselect.Index, opts ...Option) (*Tree, error) {
	o := defaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	return newTree(idx, o)
}

func newTree(idx *rankselect.Index, o options) (*Tree, error) {
	if idx == nil {
		return nil, succinct.InvalidArgument("nil index")
	}
	logger := o.logger.WithComponent("louds")

	start := time.Now()
	err := validate(idx)
	elapsed := time.Since(start)

	o.metricsCollector.RecordBuild("louds", idx.Len(), elapsed, err)
	if err != nil {
		logger.LogBuild(context.Background(), "louds", idx.Len(), elapsed, err)
		return nil, err
	}
	t := &Tree{idx: idx, nodes: idx.NumberOfOnes()}
	logger.LogBuild(context.Background(), "louds", idx.Len(), elapsed, nil, "nodes", t.nodes)
	return t, nil
}

// FromBitvector indexes bv and wraps it as a tree.
func FromBitvector(bv *bitvector.Bitvector, opts ...Option) (*Tree, error) {
	o := defaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	rsOpts := append([]rankselect.Option{
		rankselect.WithLogger(o.logger),
		rankselect.WithMetricsCollector(o.metricsCollector),
	}, o.rankSelect...)

	idx, err := rankselect.New(bv, rsOpts...)
	if err != nil {
		return nil, err
	}
	return newTree(idx, o)
}

// validate checks the shape of a LOUDS sequence: the "10" prefix, n ones and
// n+1 zeros, a trailing terminator, and every node referenced by an edge
// that precedes its own block.
func validate(idx *rankselect.Index) error {
	n := idx.Len()
	if n < 3 {
		return &EncodingError{Pos: 0, Reason: fmt.Sprintf("%d bits cannot hold a root", n)}
	}
	if b, _ := idx.Access(0); !b {
		return &EncodingError{Pos: 0, Reason: "missing super-root edge"}
	}
	if b, _ := idx.Access(1); b {
		return &EncodingError{Pos: 1, Reason: "super-root must have exactly one child"}
	}
	if b, _ := idx.Access(n - 1); b {
		return &EncodingError{Pos: n - 1, Reason: "sequence must end with a terminator"}
	}
	nodes := idx.NumberOfOnes()
	if idx.NumberOfZeroes() != nodes+1 {
		return &EncodingError{Pos: n - 1, Reason: fmt.Sprintf("%d edges for %d blocks", nodes, idx.NumberOfZeroes()-1)}
	}

	// The k-th edge must lie before the end of block k-1, i.e. before the
	// k-th zero: otherwise block k would be orphaned.
	for k := 1; k <= nodes; k++ {
		z, err := idx.Select0(k)
		if err != nil {
			return err
		}
		e, err := idx.Select1(k)
		if err != nil {
			return err
		}
		if e > z {
			return &EncodingError{Pos: z + 1, Reason: fmt.Sprintf("node %d is not referenced by any earlier node", k)}
		}
	}
	return nil
}

// Index returns the underlying rank/select index.
func (t *Tree) Index() *rankselect.Index {
	return t.idx
}

// Root returns the position of the root.
func (t *Tree) Root() int {
	return rootPos
}

// NumNodes returns the number of nodes, the root included.
func (t *Tree) NumNodes() int {
	return t.nodes
}

// checkNode rejects positions that are not the start of a node block.
func (t *Tree) checkNode(op string, pos int) error {
	if err := succinct.CheckRange(op, pos, rootPos, t.idx.Len()-1); err != nil {
		return err
	}
	if prev, _ := t.idx.Access(pos - 1); prev {
		return &succinct.RangeError{Op: op + " (not a node position)", Value: pos, Min: rootPos, Max: t.idx.Len() - 1}
	}
	return nil
}

// NodeID returns the 1-indexed breadth-first rank of the node at pos.
// The root has id 1.
func (t *Tree) NodeID(pos int) (int, error) {
	if err := t.checkNode("node id", pos); err != nil {
		return 0, err
	}
	return t.idx.Rank0(pos - 1)
}

// Position returns the block position of the node with breadth-first id.
func (t *Tree) Position(id int) (int, error) {
	if err := succinct.CheckRange("position", id, 1, t.nodes); err != nil {
		return 0, err
	}
	z, err := t.idx.Select0(id)
	if err != nil {
		return 0, err
	}
	return z + 1, nil
}

// Degree returns the number of children of the node at pos.
func (t *Tree) Degree(pos int) (int, error) {
	if err := t.checkNode("degree", pos); err != nil {
		return 0, err
	}
	end, err := t.idx.SelectNext0(pos)
	if err != nil {
		return 0, err
	}
	return end - pos, nil
}

// IsLeaf reports whether the node at pos has no children.
func (t *Tree) IsLeaf(pos int) (bool, error) {
	d, err := t.Degree(pos)
	if err != nil {
		return false, err
	}
	return d == 0, nil
}

// FirstChild returns the position of the first child of the node at pos.
func (t *Tree) FirstChild(pos int) (int, error) {
	d, err := t.Degree(pos)
	if err != nil {
		return 0, err
	}
	if err := succinct.CheckRange("first child", 1, 1, d); err != nil {
		return 0, err
	}
	r, err := t.idx.Rank1(pos)
	if err != nil {
		return 0, err
	}
	z, err := t.idx.Select0(r)
	if err != nil {
		return 0, err
	}
	return z + 1, nil
}

// Child returns the position of the k-th (1-indexed) child of the node at pos.
func (t *Tree) Child(pos, k int) (int, error) {
	d, err := t.Degree(pos)
	if err != nil {
		return 0, err
	}
	if err := succinct.CheckRange("child", k, 1, d); err != nil {
		return 0, err
	}
	r, err := t.idx.Rank1(pos + k - 1)
	if err != nil {
		return 0, err
	}
	z, err := t.idx.Select0(r)
	if err != nil {
		return 0, err
	}
	return z + 1, nil
}

// LastChild returns the position of the last child of the node at pos.
func (t *Tree) LastChild(pos int) (int, error) {
	d, err := t.Degree(pos)
	if err != nil {
		return 0, err
	}
	if d == 0 {
		return 0, succinct.CheckRange("last child", 1, 1, 0)
	}
	return t.Child(pos, d)
}

// Children returns the positions of all children of the node at pos, in order.
func (t *Tree) Children(pos int) ([]int, error) {
	d, err := t.Degree(pos)
	if err != nil || d == 0 {
		return nil, err
	}
	first, err := t.FirstChild(pos)
	if err != nil {
		return nil, err
	}
	// Sibling blocks are consecutive: each one ends at the next zero.
	out := make([]int, 0, d)
	out = append(out, first)
	for len(out) < d {
		end, err := t.idx.SelectNext0(out[len(out)-1])
		if err != nil {
			return nil, err
		}
		out = append(out, end+1)
	}
	return out, nil
}

// edge returns the position of the one bit that references the node at pos.
func (t *Tree) edge(pos int) (int, error) {
	id, err := t.idx.Rank0(pos - 1)
	if err != nil {
		return 0, err
	}
	return t.idx.Select1(id)
}

// Parent returns the position of the parent of the node at pos.
// The root has no parent.
func (t *Tree) Parent(pos int) (int, error) {
	if err := t.checkNode("parent", pos); err != nil {
		return 0, err
	}
	if pos == rootPos {
		return 0, &succinct.RangeError{Op: "parent", Value: pos, Min: rootPos + 1, Max: t.idx.Len() - 1}
	}
	e, err := t.edge(pos)
	if err != nil {
		return 0, err
	}
	z, err := t.idx.Rank0(e)
	if err != nil {
		return 0, err
	}
	p, err := t.idx.Select0(z)
	if err != nil {
		return 0, err
	}
	return p + 1, nil
}

// NextSibling returns the position of the next sibling of the node at pos.
// The last child of a node has no next sibling.
func (t *Tree) NextSibling(pos int) (int, error) {
	if err := t.checkNode("next sibling", pos); err != nil {
		return 0, err
	}
	e, err := t.edge(pos)
	if err != nil {
		return 0, err
	}
	// The sibling's edge directly follows ours inside the parent's block.
	if more, _ := t.idx.Access(e + 1); !more {
		return 0, &succinct.RangeError{Op: "next sibling", Value: pos, Min: rootPos, Max: pos - 1}
	}
	id, err := t.idx.Rank0(pos - 1)
	if err != nil {
		return 0, err
	}
	z, err := t.idx.Select0(id + 1)
	if err != nil {
		return 0, err
	}
	return z + 1, nil
}

// String renders the encoding as one '0' or '1' per bit.
func (t *Tree) String() string {
	return t.idx.String()
}

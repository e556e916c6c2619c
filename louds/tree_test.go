package louds

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/succinct"
	"github.com/hupe1980/succinct/bitvector"
	"github.com/hupe1980/succinct/rankselect"
	"github.com/hupe1980/succinct/testutil"
)

// root has 2 children (a, b); a has 3 children (c, d, e).
const sample = "1011011100000"

func sampleTree(t *testing.T) *Tree {
	t.Helper()
	bv, err := bitvector.FromString(sample)
	require.NoError(t, err)
	tree, err := FromBitvector(bv)
	require.NoError(t, err)
	return tree
}

func TestConcreteScenario(t *testing.T) {
	tree := sampleTree(t)
	root := tree.Root()
	assert.Equal(t, 2, root)
	assert.Equal(t, 6, tree.NumNodes())

	a, err := tree.FirstChild(root)
	require.NoError(t, err)
	b, err := tree.Child(root, 2)
	require.NoError(t, err)
	assert.Equal(t, 5, a)
	assert.Equal(t, 9, b)
	assert.NotEqual(t, a, b)

	first, err := tree.Child(root, 1)
	require.NoError(t, err)
	assert.Equal(t, a, first)

	sib, err := tree.NextSibling(a)
	require.NoError(t, err)
	assert.Equal(t, b, sib)

	for _, x := range []int{a, b} {
		p, err := tree.Parent(x)
		require.NoError(t, err)
		assert.Equal(t, root, p)
	}

	kids, err := tree.Children(a)
	require.NoError(t, err)
	assert.Equal(t, []int{10, 11, 12}, kids)
	for _, k := range kids {
		p, err := tree.Parent(k)
		require.NoError(t, err)
		assert.Equal(t, a, p)
	}

	deg, err := tree.Degree(a)
	require.NoError(t, err)
	assert.Equal(t, 3, deg)
	leaf, err := tree.IsLeaf(b)
	require.NoError(t, err)
	assert.True(t, leaf)

	last, err := tree.LastChild(a)
	require.NoError(t, err)
	assert.Equal(t, 12, last)

	assert.Equal(t, sample, tree.String())
}

func TestNavigationFailures(t *testing.T) {
	tree := sampleTree(t)
	root := tree.Root()

	tests := map[string]func() error{
		"parent of root":        func() error { _, err := tree.Parent(root); return err },
		"child beyond degree":   func() error { _, err := tree.Child(root, 3); return err },
		"child zero":            func() error { _, err := tree.Child(root, 0); return err },
		"first child of leaf":   func() error { _, err := tree.FirstChild(9); return err },
		"last child of leaf":    func() error { _, err := tree.LastChild(12); return err },
		"sibling of last child": func() error { _, err := tree.NextSibling(9); return err },
		"sibling of root":       func() error { _, err := tree.NextSibling(root); return err },
		"not a block start":     func() error { _, err := tree.Degree(3); return err },
		"negative position":     func() error { _, err := tree.Parent(-1); return err },
		"past the end":          func() error { _, err := tree.Degree(13); return err },
		"sentinel":              func() error { _, err := tree.FirstChild(0); return err },
		"position of id 0":      func() error { _, err := tree.Position(0); return err },
		"position of id n+1":    func() error { _, err := tree.Position(7); return err },
	}
	for name, fn := range tests {
		assert.ErrorIs(t, fn(), succinct.ErrOutOfRange, name)
	}
}

func TestInvalidEncodings(t *testing.T) {
	for name, s := range map[string]string{
		"empty":                "",
		"too short":            "10",
		"missing super-root":   "0110000",
		"super-root fan-out":   "1101000",
		"trailing edge":        "1011001",
		"edge count mismatch":  "10110",
		"orphaned block":       "1000110",
		"edge after its block": "10010",
		"only terminators":     "000",
	} {
		bv, err := bitvector.FromString(s)
		require.NoError(t, err)
		_, err = FromBitvector(bv)
		assert.ErrorIs(t, err, succinct.ErrInvalidArgument, name)
	}

	_, err := New(nil)
	assert.ErrorIs(t, err, succinct.ErrInvalidArgument)
}

func TestSingleNode(t *testing.T) {
	tree, err := FromDegrees([]int{0})
	require.NoError(t, err)
	assert.Equal(t, "100", tree.String())
	assert.Equal(t, 1, tree.NumNodes())

	leaf, err := tree.IsLeaf(tree.Root())
	require.NoError(t, err)
	assert.True(t, leaf)

	_, err = tree.Parent(tree.Root())
	assert.ErrorIs(t, err, succinct.ErrOutOfRange)
}

func TestEncode(t *testing.T) {
	bv, err := Encode([]int{2, 3, 0, 0, 0, 0})
	require.NoError(t, err)
	assert.Equal(t, sample, bv.String())

	_, err = Encode([]int{1, -1})
	assert.ErrorIs(t, err, succinct.ErrInvalidArgument)

	_, err = FromDegrees([]int{3, 0})
	assert.ErrorIs(t, err, succinct.ErrInvalidArgument)
}

func TestNewOverExistingIndex(t *testing.T) {
	bv, err := bitvector.FromString(sample)
	require.NoError(t, err)
	idx, err := rankselect.New(bv, rankselect.WithFactor(1))
	require.NoError(t, err)

	tree, err := New(idx)
	require.NoError(t, err)
	assert.Same(t, idx, tree.Index())
}

// walk checks every navigation primitive on a random tree against the
// degree sequence it was generated from.
func walk(t *testing.T, degrees []int, tree *Tree) {
	t.Helper()
	require.Equal(t, len(degrees), tree.NumNodes())

	// BFS ids are assigned in the same order as degrees.
	nextID := 2
	for id := 1; id <= len(degrees); id++ {
		x, err := tree.Position(id)
		require.NoError(t, err)
		gotID, err := tree.NodeID(x)
		require.NoError(t, err)
		require.Equal(t, id, gotID)

		d, err := tree.Degree(x)
		require.NoError(t, err)
		require.Equal(t, degrees[id-1], d, "degree of node %d", id)

		if id == 1 {
			_, err := tree.Parent(x)
			require.ErrorIs(t, err, succinct.ErrOutOfRange)
		}
		if d == 0 {
			_, err := tree.FirstChild(x)
			require.ErrorIs(t, err, succinct.ErrOutOfRange)
			continue
		}

		first, err := tree.FirstChild(x)
		require.NoError(t, err)
		p, err := tree.Parent(first)
		require.NoError(t, err)
		require.Equal(t, x, p, "parent(firstChild(%d))", x)

		kids, err := tree.Children(x)
		require.NoError(t, err)
		require.Len(t, kids, d)

		cur := first
		for k := 1; k <= d; k++ {
			c, err := tree.Child(x, k)
			require.NoError(t, err)
			require.Equal(t, kids[k-1], c)
			require.Equal(t, cur, c)

			cid, err := tree.NodeID(c)
			require.NoError(t, err)
			require.Equal(t, nextID, cid)
			nextID++

			p, err := tree.Parent(c)
			require.NoError(t, err)
			require.Equal(t, x, p)

			sib, err := tree.NextSibling(c)
			if k == d {
				require.ErrorIs(t, err, succinct.ErrOutOfRange)
			} else {
				require.NoError(t, err)
				cur = sib
			}
		}
		_, err = tree.Child(x, d+1)
		require.ErrorIs(t, err, succinct.ErrOutOfRange)
	}
	require.Equal(t, len(degrees)+1, nextID)
}

func TestRandomTrees(t *testing.T) {
	rng := testutil.NewRNG(4711)

	for _, tc := range []struct {
		nodes, maxDegree, factor int
	}{
		{1, 1, 1},
		{2, 1, 1},
		{50, 1, 2},
		{200, 3, 1},
		{1000, 50, rankselect.DefaultFactor},
		{3000, 8, 4},
	} {
		degrees := rng.RandomDegrees(tc.nodes, tc.maxDegree)
		tree, err := FromDegrees(degrees, WithRankSelectOptions(rankselect.WithFactor(tc.factor)))
		require.NoError(t, err)
		assert.Equal(t, tc.factor, tree.Index().Factor())
		walk(t, degrees, tree)
	}
}

func TestRandomLOUDSFixture(t *testing.T) {
	rng := testutil.NewRNG(99)
	bv := rng.RandomLOUDS(500, 10)

	tree, err := FromBitvector(bv)
	require.NoError(t, err)
	assert.Equal(t, 500, tree.NumNodes())
	assert.Equal(t, bv.String(), tree.String())
}

func TestFromChildren(t *testing.T) {
	// 3 is the root; node ids are deliberately not in BFS order.
	children := [][]int{
		0: {},
		1: {4, 0, 5},
		2: {},
		3: {1, 2},
		4: {},
		5: {},
	}
	tree, positions, err := FromChildren(children, 3)
	require.NoError(t, err)
	assert.Equal(t, sample, tree.String())

	assert.Equal(t, tree.Root(), positions[3])
	for v, kids := range children {
		for k, c := range kids {
			got, err := tree.Child(positions[v], k+1)
			require.NoError(t, err)
			assert.Equal(t, positions[c], got)

			p, err := tree.Parent(positions[c])
			require.NoError(t, err)
			assert.Equal(t, positions[v], p)
		}
	}
}

func TestFromChildrenRejectsNonTrees(t *testing.T) {
	for name, tc := range map[string]struct {
		children [][]int
		root     int
	}{
		"cycle":         {[][]int{{1}, {0}}, 0},
		"shared child":  {[][]int{{1, 2}, {2}, {}}, 0},
		"self loop":     {[][]int{{0}}, 0},
		"unreachable":   {[][]int{{1}, {}, {}}, 0},
		"unknown child": {[][]int{{7}}, 0},
		"bad root":      {[][]int{{}}, 1},
		"no nodes":      {nil, 0},
	} {
		_, _, err := FromChildren(tc.children, tc.root)
		assert.ErrorIs(t, err, succinct.ErrInvalidArgument, name)
	}
}

func TestBuildMetrics(t *testing.T) {
	mc := &succinct.BasicMetricsCollector{}
	_, err := FromDegrees([]int{2, 0, 0}, WithMetricsCollector(mc), WithLogger(nil))
	require.NoError(t, err)

	// one rank/select build and one tree validation
	stats := mc.GetStats()
	assert.Equal(t, int64(2), stats.BuildCount)
	assert.Equal(t, int64(0), stats.BuildErrors)
	assert.Equal(t, int64(14), stats.BuildBits)
}

func TestBuildIsLogged(t *testing.T) {
	var buf bytes.Buffer
	logger := succinct.NewLogger(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	_, err := FromDegrees([]int{1, 0}, WithLogger(logger))
	require.NoError(t, err)
	_, err = FromDegrees([]int{2, 0}, WithLogger(logger))
	require.Error(t, err)

	out := buf.String()
	assert.Contains(t, out, "component=rankselect")
	assert.Contains(t, out, "component=louds")
	assert.Contains(t, out, "nodes=2")
	assert.Contains(t, out, "build failed")
}

// Package succinct provides compact, immutable bit-level indexes: a
// rank/select dictionary over a plain bitvector and a LOUDS ordinal tree
// navigated purely through rank and select.
//
// # Layers
//
// The module is organized bottom-up, each layer depending only on the one
// below:
//
//	bitvector   fixed-length mutable bits (Get/Set/Clear)
//	rankselect  immutable snapshot + superblock table (Rank/Select/SelectNext/SelectPrev)
//	louds       ordinal tree over a rankselect.Index (Parent/FirstChild/Child/NextSibling)
//
// This root package holds the vocabulary shared by the layers: the error
// taxonomy, the slog-based Logger and the MetricsCollector hook.
//
// # Quick Start
//
//	bv, _ := bitvector.FromString("1010110100110101")
//	idx, _ := rankselect.New(bv)
//	r, _ := idx.Rank1(7)   // 5
//	p, _ := idx.Select1(5) // 7
//
//	tree, _ := louds.FromDegrees([]int{2, 3, 0, 0, 0, 0})
//	c, _ := tree.FirstChild(tree.Root())
//	parent, _ := tree.Parent(c) // tree.Root()
//
// # Errors
//
// Every range-checked operation fails with an error wrapping ErrOutOfRange
// (a *RangeError). Constructors reject inconsistent input with
// ErrInvalidArgument. Directional searches (SelectNext1, SelectPrev0, ...)
// report "not found" with a sentinel position instead of an error.
//
// # Concurrency
//
// A bitvector.Bitvector is not safe for concurrent mutation. Indexes and
// trees are read-only once their constructor returns and may be shared
// freely between goroutines.
package succinct

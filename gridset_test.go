package sweepline_test

import (
	"github.com/google/btree"

	"github.com/nordest27/sweepline"
)

// gridItem is a Segment snapped to a coarse grid, ordered lexicographically
// on (Ini.X, Ini.Y, End.X, End.Y) so it can be stored in a
// github.com/google/btree.BTree. Oracle comparisons need a deduplicated,
// order-independent set of artifacts; a btree gives that with O(log n)
// insert/lookup instead of an O(n) linear scan.
type gridItem sweepline.Segment

func (a gridItem) Less(than btree.Item) bool {
	b := than.(gridItem)
	if a.Ini.X != b.Ini.X {
		return a.Ini.X < b.Ini.X
	}
	if a.Ini.Y != b.Ini.Y {
		return a.Ini.Y < b.Ini.Y
	}
	if a.End.X != b.End.X {
		return a.End.X < b.End.X
	}
	return a.End.Y < b.End.Y
}

// buildGridSet snaps every segment in result to gridSize and stores it in a
// btree, deduplicating artifacts that collapse onto the same grid cell.
func buildGridSet(result []sweepline.Segment, gridSize float64) *btree.BTree {
	set := btree.New(32)
	for _, s := range result {
		set.ReplaceOrInsert(gridItem(s.ToGrid(gridSize)))
	}
	return set
}

// symmetricDifferenceCount returns the number of grid cells present in
// exactly one of a and b.
func symmetricDifferenceCount(a, b *btree.BTree) int {
	diff := 0
	a.Ascend(func(item btree.Item) bool {
		if b.Get(item) == nil {
			diff++
		}
		return true
	})
	b.Ascend(func(item btree.Item) bool {
		if a.Get(item) == nil {
			diff++
		}
		return true
	})
	return diff
}

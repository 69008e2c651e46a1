package sweepline

import (
	"math/rand"
	"time"
)

// treapNode is a node of the status treap. Keys are SegmentTable
// identifiers; the node never stores a Segment value directly because the
// Cross handler rewrites a segment's Ini in place, and the tree must see
// that update through the shared table rather than a stale copy.
type treapNode struct {
	id       int
	priority uint64
	left     *treapNode
	right    *treapNode
}

// StatusTree is the sweep's ordered status structure: a randomized binary
// search tree (treap) whose comparator interpolates each segment's
// y-coordinate at the sweep position last set by SetX ("sweep-order mode":
// the comparator is re-evaluated against the current sweep position rather
// than frozen at insert time). Split/merge restore heap order on
// priority while partitioning on the comparator.
type StatusTree struct {
	root     *treapNode
	table    *SegmentTable
	rng      *rand.Rand
	currentX float64
	ops      *int64
}

// NewStatusTree creates a status tree over table, seeding treap priorities
// from the current time. Use NewStatusTreeWithSource for reproducible runs.
func NewStatusTree(table *SegmentTable, ops *int64) *StatusTree {
	return NewStatusTreeWithSource(table, ops, rand.NewSource(time.Now().UnixNano()))
}

// NewStatusTreeWithSource creates a status tree whose treap priorities are
// drawn from src, for deterministic tests and benchmarks.
func NewStatusTreeWithSource(table *SegmentTable, ops *int64, src rand.Source) *StatusTree {
	return &StatusTree{
		table: table,
		rng:   rand.New(src),
		ops:   ops,
	}
}

// SetX updates the sweep position used by every subsequent comparison.
// Must be called before Insert/Remove/Find/Successor/Predecessor at a new
// event point.
func (t *StatusTree) SetX(x float64) {
	t.currentX = x
}

func (t *StatusTree) tick() {
	if t.ops != nil {
		*t.ops++
	}
}

// interpolateY returns the segment's y-coordinate at x. Vertical segments
// (Ini.X == End.X) return Ini.Y: they are included in the tree and given a
// fixed rank derived from their own start, since their x-interval is a
// single point and interpolation is otherwise undefined.
func interpolateY(seg Segment, x float64) float64 {
	if seg.IsVertical() {
		return seg.Ini.Y
	}
	if x <= seg.Ini.X {
		return seg.Ini.Y
	}
	if x >= seg.End.X {
		return seg.End.Y
	}
	return seg.Ini.Y + (seg.End.Y-seg.Ini.Y)*(x-seg.Ini.X)/(seg.End.X-seg.Ini.X)
}

func (t *StatusTree) y(id int) float64 {
	return interpolateY(t.table.Get(id), t.currentX)
}

// split partitions node into (less-than-key, greater-than-key), discarding
// any node that compares equal to key within Epsilon — its children are
// grafted onto the split result, so a duplicate insert replaces the prior
// node rather than coexisting with it.
func (t *StatusTree) split(node *treapNode, keyID int) (left, right *treapNode) {
	if node == nil {
		return nil, nil
	}
	t.tick()

	nodeY, keyY := t.y(node.id), t.y(keyID)
	switch {
	case nodeY < keyY-Epsilon:
		l, r := t.split(node.right, keyID)
		node.right = l
		return node, r
	case nodeY > keyY+Epsilon:
		l, r := t.split(node.left, keyID)
		node.left = r
		return l, node
	default:
		return node.left, node.right
	}
}

// merge combines two subtrees known to be ordered (every key under left
// compares less than every key under right), choosing the higher-priority
// root per the treap invariant.
func (t *StatusTree) merge(left, right *treapNode) *treapNode {
	if left == nil {
		return right
	}
	if right == nil {
		return left
	}
	t.tick()

	if left.priority > right.priority {
		left.right = t.merge(left.right, right)
		return left
	}
	right.left = t.merge(left, right.left)
	return right
}

// Insert adds id's segment into the status tree. If a node comparing equal
// under the current comparator is already present, it is discarded and
// replaced: the tree behaves as a set, not a multiset.
func (t *StatusTree) Insert(id int) {
	left, right := t.split(t.root, id)
	node := &treapNode{id: id, priority: t.rng.Uint64()}
	t.root = t.merge(t.merge(left, node), right)
}

// Remove deletes the node whose key compares equal to id under the current
// comparator. Returns whether a removal occurred.
func (t *StatusTree) Remove(id int) bool {
	if !t.Find(id) {
		return false
	}
	left, right := t.split(t.root, id)
	t.root = t.merge(left, right)
	return true
}

// Find reports whether id is present in the tree under the current
// comparator.
func (t *StatusTree) Find(id int) bool {
	node := t.root
	keyY := t.y(id)
	for node != nil {
		t.tick()
		nodeY := t.y(node.id)
		switch {
		case nodeY > keyY+Epsilon:
			node = node.left
		case nodeY < keyY-Epsilon:
			node = node.right
		default:
			return true
		}
	}
	return false
}

// Successor returns the smallest stored key strictly greater than id under
// the current comparator.
func (t *StatusTree) Successor(id int) (int, bool) {
	node := t.root
	keyY := t.y(id)
	best, found := 0, false
	for node != nil {
		t.tick()
		nodeY := t.y(node.id)
		if nodeY > keyY+Epsilon {
			best, found = node.id, true
			node = node.left
		} else {
			node = node.right
		}
	}
	return best, found
}

// Predecessor returns the greatest stored key strictly less than id under
// the current comparator.
func (t *StatusTree) Predecessor(id int) (int, bool) {
	node := t.root
	keyY := t.y(id)
	best, found := 0, false
	for node != nil {
		t.tick()
		nodeY := t.y(node.id)
		if nodeY < keyY-Epsilon {
			best, found = node.id, true
			node = node.right
		} else {
			node = node.left
		}
	}
	return best, found
}

// InOrder returns the identifiers currently in the tree in ascending order
// under the comparator then in effect. It exists for testing the treap's
// ordering invariant, not for the sweep engine itself.
func (t *StatusTree) InOrder() []int {
	var out []int
	var walk func(*treapNode)
	walk = func(n *treapNode) {
		if n == nil {
			return
		}
		walk(n.left)
		out = append(out, n.id)
		walk(n.right)
	}
	walk(t.root)
	return out
}

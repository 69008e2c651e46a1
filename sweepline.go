package sweepline

import (
	"log/slog"
	"math"
	"time"
)

// iterationCapFactor bounds the sweep loop against pathological looping
// under floating-point drift. The cap is logged, never treated as a hard
// error.
const iterationCapFactor = 4

// Solve fills problem.Result with the intersection artifacts the
// Bentley-Ottmann sweep finds, and increments problem.BasicOperations once
// per treap split/merge recursion or search-descent step, once per event
// dequeue, and once per kernel intersection test. It performs no I/O.
func Solve(problem *Problem) {
	start := time.Now()
	defer func() { problem.Elapsed = time.Since(start) }()

	problem.Result = problem.Result[:0]
	n := len(problem.Segments)
	if n == 0 {
		return
	}

	table := NewSegmentTable()
	eq := NewEventQueue(&problem.BasicOperations)

	for _, raw := range problem.Segments {
		seg := raw.Normalize()
		id := table.Add(seg)
		eq.Push(&Event{Point: seg.Ini, Kind: EventStart, A: id, B: id})
		eq.Push(&Event{Point: seg.End, Kind: EventEnd, A: id, B: id})
	}

	tree := NewStatusTree(table, &problem.BasicOperations)

	cap := iterationCapFactor * n * n
	iters := 0
	for {
		event, ok := eq.Pop()
		if !ok {
			break
		}
		iters++
		if iters > cap {
			slog.Warn("sweepline: iteration cap reached, aborting sweep",
				"segments", n, "cap", cap)
			break
		}

		tree.SetX(event.Point.X)

		switch event.Kind {
		case EventStart:
			handleStart(table, tree, eq, event, problem)
		case EventEnd:
			handleEnd(table, tree, eq, event, problem)
		case EventCross:
			handleCross(table, tree, eq, event, problem)
		}
	}
}

func handleStart(table *SegmentTable, tree *StatusTree, eq *EventQueue, event *Event, problem *Problem) {
	id := event.A

	if succ, ok := tree.Successor(id); ok {
		checkIntersection(table, eq, &problem.BasicOperations, id, succ, event.Point)
	}
	if pred, ok := tree.Predecessor(id); ok {
		checkIntersection(table, eq, &problem.BasicOperations, pred, id, event.Point)
	}

	tree.Insert(id)
}

func handleEnd(table *SegmentTable, tree *StatusTree, eq *EventQueue, event *Event, problem *Problem) {
	id := event.A

	above, hasAbove := tree.Successor(id)
	below, hasBelow := tree.Predecessor(id)

	if tree.Remove(id) && hasAbove && hasBelow {
		checkIntersection(table, eq, &problem.BasicOperations, below, above, event.Point)
	}
}

func handleCross(table *SegmentTable, tree *StatusTree, eq *EventQueue, event *Event, problem *Problem) {
	p := event.Point
	i, j := event.A, event.B

	problem.Result = append(problem.Result, Segment{Ini: p, End: p})

	si, sj := table.Get(i), table.Get(j)
	if si.IsDegenerate() || sj.IsDegenerate() ||
		p == si.Ini || p == si.End || p == sj.Ini || p == sj.End {
		// Already handled: this swallows the Start/End double-reporting
		// a crossing exactly at a shared endpoint would otherwise induce.
		return
	}

	if !tree.Remove(i) {
		// A prior event already displaced i; nothing to undo, drop the
		// event.
		slog.Warn("sweepline: cross event on segment no longer in status tree, dropping", "segment", i)
		return
	}
	if !tree.Remove(j) {
		tree.Insert(i) // undo the partial removal above before dropping
		slog.Warn("sweepline: cross event on segment no longer in status tree, dropping", "segment", j)
		return
	}

	table.Rewrite(i, Segment{Ini: p, End: si.End})
	table.Rewrite(j, Segment{Ini: p, End: sj.End})

	tree.SetX(p.X + 10*Epsilon)
	tree.Insert(i)
	tree.Insert(j)

	if succ, ok := tree.Successor(i); ok && succ != j {
		checkIntersection(table, eq, &problem.BasicOperations, i, succ, p)
	}
	if pred, ok := tree.Predecessor(j); ok && pred != i {
		checkIntersection(table, eq, &problem.BasicOperations, pred, j, p)
	}
}

// checkIntersection tests a and b for a proper point crossing and, if one
// exists strictly in the future of the sweep (q.x strictly greater than the
// current sweep x, or equal to it and not yet processed), pushes a Cross
// event for it. Collinear overlaps are not pushed: overlap detection is a
// contract of the kernel and the reference solver only, never of the sweep
// status machine.
func checkIntersection(table *SegmentTable, eq *EventQueue, ops *int64, a, b int, current Point) {
	*ops++
	segA, segB := table.Get(a), table.Get(b)

	hit, ok := SegmentsIntersection(segA, segB)
	if !ok || !hit.IsDegenerate() {
		return
	}
	q := hit.Ini

	isFuture := (q.X-current.X > Epsilon) ||
		(math.Abs(q.X-current.X) < Epsilon && q.Y-current.Y > Epsilon)
	if !isFuture {
		return
	}

	eq.Push(&Event{Point: q, Kind: EventCross, A: a, B: b})
}

package sweepline

import "time"

// SolveNaive fills problem.Result using the O(n²) brute-force reference
// solver: every unordered pair of input segments is tested with
// SegmentsIntersection, and a point or overlap artifact is appended when
// one is found. It is idempotent — two consecutive calls on the same
// problem yield identical result lists, since Result is cleared before the
// pairs are re-scanned.
func SolveNaive(problem *Problem) {
	start := time.Now()
	defer func() { problem.Elapsed = time.Since(start) }()

	problem.Result = problem.Result[:0]
	segments := problem.Segments

	for i := range segments {
		for j := i + 1; j < len(segments); j++ {
			problem.BasicOperations++
			if hit, ok := SegmentsIntersection(segments[i], segments[j]); ok {
				problem.Result = append(problem.Result, hit)
			}
		}
	}
}

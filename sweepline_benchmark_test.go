package sweepline_test

import (
	"math/rand"
	"testing"

	"github.com/nordest27/sweepline"
)

// randomSegments generates n segments with endpoints drawn uniformly from a
// bounded square, biased toward general position (vertical segments
// excluded).
func randomSegments(rng *rand.Rand, n int, bound float64) []sweepline.Segment {
	segments := make([]sweepline.Segment, n)
	for i := range segments {
		var s sweepline.Segment
		for {
			s = sweepline.Segment{
				Ini: sweepline.Point{X: rng.Float64() * bound, Y: rng.Float64() * bound},
				End: sweepline.Point{X: rng.Float64() * bound, Y: rng.Float64() * bound},
			}
			if s.Ini.X != s.End.X {
				break
			}
		}
		segments[i] = s
	}
	return segments
}

// gridSegments lays out n horizontal and n vertical segments on an evenly
// spaced grid, a worst-case-density shape for the status tree (every
// horizontal segment crosses every vertical one).
func gridSegments(n int, bound float64) []sweepline.Segment {
	segments := make([]sweepline.Segment, 0, 2*n)
	step := bound / float64(n+1)
	for i := 1; i <= n; i++ {
		y := step * float64(i)
		segments = append(segments, sweepline.Segment{
			Ini: sweepline.Point{X: 0, Y: y},
			End: sweepline.Point{X: bound, Y: y},
		})
		x := step * float64(i)
		segments = append(segments, sweepline.Segment{
			Ini: sweepline.Point{X: x, Y: 0},
			End: sweepline.Point{X: x, Y: bound},
		})
	}
	return segments
}

func BenchmarkSolveRandom1000(b *testing.B) {
	rng := rand.New(rand.NewSource(1))
	segments := randomSegments(rng, 1000, 10000)

	for b.Loop() {
		problem := sweepline.NewProblem(segments)
		sweepline.Solve(problem)
	}
}

func BenchmarkSolveNaiveRandom1000(b *testing.B) {
	rng := rand.New(rand.NewSource(1))
	segments := randomSegments(rng, 1000, 10000)

	for b.Loop() {
		problem := sweepline.NewProblem(segments)
		sweepline.SolveNaive(problem)
	}
}

func BenchmarkSolveGrid200(b *testing.B) {
	segments := gridSegments(200, 10000)

	for b.Loop() {
		problem := sweepline.NewProblem(segments)
		sweepline.Solve(problem)
	}
}

func BenchmarkSolveNaiveGrid200(b *testing.B) {
	segments := gridSegments(200, 10000)

	for b.Loop() {
		problem := sweepline.NewProblem(segments)
		sweepline.SolveNaive(problem)
	}
}

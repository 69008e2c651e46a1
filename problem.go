package sweepline

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"
)

// Problem is the input list of segments, the output list of intersection
// artifacts, and two measured quantities: elapsed wall-clock time and a
// basic-operations counter incremented once per treap split/merge or
// search-descent step, once per event dequeue, and once per kernel
// intersection test.
type Problem struct {
	Segments        []Segment
	Result          []Segment
	Elapsed         time.Duration
	BasicOperations int64
}

// NewProblem wraps segments into a fresh Problem with empty counters and
// result list.
func NewProblem(segments []Segment) *Problem {
	return &Problem{Segments: segments}
}

// LoadProblem parses the plain-text problem-instance format: a first line
// giving the segment count N, followed by N lines of four
// whitespace-separated floats. Unknown trailing lines are ignored.
func LoadProblem(r io.Reader) (*Problem, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 1024), 1<<20)

	if !scanner.Scan() {
		return nil, fmt.Errorf("sweepline: reading segment count: %w", scannerErr(scanner))
	}
	n, err := strconv.Atoi(strings.TrimSpace(scanner.Text()))
	if err != nil {
		return nil, fmt.Errorf("sweepline: parsing segment count: %w", err)
	}

	segments := make([]Segment, 0, n)
	for i := 0; i < n; i++ {
		if !scanner.Scan() {
			return nil, fmt.Errorf("sweepline: line %d: reading segment: %w", i+2, scannerErr(scanner))
		}
		fields := strings.Fields(scanner.Text())
		if len(fields) < 4 {
			return nil, fmt.Errorf("sweepline: line %d: expected 4 coordinates, got %d", i+2, len(fields))
		}
		coords := make([]float64, 4)
		for j := 0; j < 4; j++ {
			v, err := strconv.ParseFloat(fields[j], 64)
			if err != nil {
				return nil, fmt.Errorf("sweepline: line %d: parsing coordinate %d: %w", i+2, j+1, err)
			}
			coords[j] = v
		}
		segments = append(segments, Segment{
			Ini: Point{X: coords[0], Y: coords[1]},
			End: Point{X: coords[2], Y: coords[3]},
		})
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("sweepline: scanning problem file: %w", err)
	}

	return NewProblem(segments), nil
}

func scannerErr(scanner *bufio.Scanner) error {
	if err := scanner.Err(); err != nil {
		return err
	}
	return io.ErrUnexpectedEOF
}

// Save writes p.Segments in the plain-text problem-instance format. Only
// the input segments are persisted; the result is a computed artifact, not
// part of the instance.
func (p *Problem) Save(w io.Writer) error {
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "%d\n", len(p.Segments)); err != nil {
		return fmt.Errorf("sweepline: writing segment count: %w", err)
	}
	for _, s := range p.Segments {
		if _, err := fmt.Fprintf(bw, "%v %v %v %v\n", s.Ini.X, s.Ini.Y, s.End.X, s.End.Y); err != nil {
			return fmt.Errorf("sweepline: writing segment: %w", err)
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("sweepline: flushing problem file: %w", err)
	}
	return nil
}

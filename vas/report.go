package vas

import (
	"fmt"
	"time"

	"github.com/montanaflynn/stats"

	"github.com/tuneinsight/realroots/interval"
)

// Report is the outcome of an isolation.
type Report struct {
	// Intervals are the isolating intervals in discovery order.
	Intervals []interval.Interval
	// Operations is the number of evaluated steps.
	Operations int
	// MaxFrontier is the largest number of pending states observed before
	// evaluating a step (or a frontier of steps if several workers are used).
	MaxFrontier int
	// Elapsed is the wall-clock duration of the isolation.
	Elapsed time.Duration
	// Cached is true if the intervals were loaded from the cache.
	Cached bool
}

// Widths returns the widths of the bounded intervals of the report.
func (r Report) Widths() (widths []float64) {
	for _, i := range r.Intervals {
		if i.IsBounded() {
			widths = append(widths, i.Width())
		}
	}
	return
}

// Summary aggregates the intervals of a [Report].
type Summary struct {
	Intervals   int
	Points      int
	Unbounded   int
	MeanWidth   float64
	MedianWidth float64
	MaxWidth    float64
}

// Summary returns the summary of the report. Width statistics are computed on
// the bounded intervals only and are zero if there is none.
func (r Report) Summary() (s Summary, err error) {

	s.Intervals = len(r.Intervals)

	for _, i := range r.Intervals {
		switch {
		case i.IsPoint():
			s.Points++
		case !i.IsBounded():
			s.Unbounded++
		}
	}

	widths := r.Widths()

	if len(widths) == 0 {
		return
	}

	if s.MeanWidth, err = stats.Mean(widths); err != nil {
		return Summary{}, fmt.Errorf("cannot Summary: %w", err)
	}

	if s.MedianWidth, err = stats.Median(widths); err != nil {
		return Summary{}, fmt.Errorf("cannot Summary: %w", err)
	}

	if s.MaxWidth, err = stats.Max(widths); err != nil {
		return Summary{}, fmt.Errorf("cannot Summary: %w", err)
	}

	return
}

// String returns a one-line description of the summary.
func (s Summary) String() string {
	return fmt.Sprintf("%d intervals (%d points, %d unbounded), width mean=%g median=%g max=%g",
		s.Intervals, s.Points, s.Unbounded, s.MeanWidth, s.MedianWidth, s.MaxWidth)
}

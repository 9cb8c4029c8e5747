package vas

import (
	"github.com/tuneinsight/realroots/interval"
	"github.com/tuneinsight/realroots/mobius"
	"github.com/tuneinsight/realroots/polynomial"
)

// State is a pending region of the search: the roots of Polynomial in (0, +Inf)
// are mapped by Transform to the roots of the input polynomial.
type State struct {
	Polynomial *polynomial.Polynomial
	Transform  mobius.Transform
}

// Item is the outcome of a step, either a [Continue] or a [Done].
type Item interface {
	isItem()
}

// Continue is a state still to be evaluated.
type Continue struct {
	State
}

// Done carries the isolating intervals found by a step, possibly none.
type Done struct {
	Intervals []interval.Interval
}

func (Continue) isItem() {}
func (Done) isItem()     {}

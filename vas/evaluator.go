package vas

import (
	"github.com/charmbracelet/log"

	"github.com/tuneinsight/realroots/bound"
	"github.com/tuneinsight/realroots/interval"
	"github.com/tuneinsight/realroots/polynomial"
)

// Evaluator performs the individual steps of the VAS search.
// It holds no mutable state and can be used concurrently.
type Evaluator struct {
	params    Parameters
	estimator bound.Estimator
	custom    bool
	logger    *log.Logger
}

// NewEvaluator instantiates a new Evaluator using the estimator and the
// reduction of the given parameters.
func NewEvaluator(params Parameters) *Evaluator {
	return &Evaluator{
		params:    params,
		estimator: params.Estimator(),
		logger:    log.Default(),
	}
}

// Parameters returns the parameters of the evaluator.
func (eval Evaluator) Parameters() Parameters {
	return eval.params
}

// WithEstimator returns a shallow copy of the evaluator using est as lower-bound estimator.
// A nil est restores the estimator of the parameters.
func (eval Evaluator) WithEstimator(est bound.Estimator) *Evaluator {
	if est == nil {
		eval.estimator = eval.params.Estimator()
		eval.custom = false
		return &eval
	}
	eval.estimator = est
	eval.custom = true
	return &eval
}

// WithLogger returns a shallow copy of the evaluator logging to logger, log.Default() if nil.
func (eval Evaluator) WithLogger(logger *log.Logger) *Evaluator {
	if logger == nil {
		logger = log.Default()
	}
	eval.logger = logger
	return &eval
}

// StripZeroRoots removes the root at the origin of the state polynomial, whatever
// its multiplicity, and returns the reduced state along with the point interval of
// the corresponding root of the input polynomial, if any.
func (eval Evaluator) StripZeroRoots(s State) (State, []interval.Interval) {

	var found []interval.Interval

	for !s.Polynomial.IsZero() && s.Polynomial.Constant() == 0 {

		if found == nil {
			found = []interval.Interval{interval.NewPoint(s.Transform.Apply(0))}
		}

		s.Polynomial = eval.params.Reduction().Apply(s.Polynomial)
	}

	return s, found
}

// Step evaluates a state and returns its outcome: the intervals isolated by the
// step, in a [Done] item, preceded by the successor states, in [Continue] items.
//
// A state with no sign change is discarded and a state with exactly one is
// resolved to the image of (0, +Inf) by its transform. Otherwise the estimated
// lower bound α on the positive roots is used to move the origin: if α exceeds
// the threshold of the rescale rule (the constant term by default, see [Rescale])
// the variable is first scaled by α (and α is set to 1), then
// if α is at least 1 the variable is shifted by α. If α is below 1, the region
// is split into (0, 1), through x -> 1/(x+1), and (1, +Inf), through x -> x+1.
func (eval Evaluator) Step(s State) []Item {

	s, found := eval.StripZeroRoots(s)

	p, m := s.Polynomial, s.Transform

	signs := p.SignChanges()

	switch signs {
	case 0:
		eval.logger.Debug("discard", "degree", p.Degree(), "signs", signs)
		return []Item{Done{Intervals: found}}
	case 1:
		isolated := m.Bounds()
		eval.logger.Debug("isolate", "degree", p.Degree(), "signs", signs, "interval", isolated)
		return []Item{Done{Intervals: append(found, isolated)}}
	}

	alpha := eval.estimator.EstimateLowerBound(p)

	if alpha > eval.params.Rescale().Threshold(p) {
		p = p.Compose(polynomial.New(0, alpha))
		m = m.ScaleBy(alpha)
		alpha = 1
	}

	if alpha >= 1 {
		eval.logger.Debug("shift", "degree", p.Degree(), "signs", signs, "bound", alpha)
		return []Item{
			Continue{State{Polynomial: p.Compose(polynomial.New(alpha, 1)), Transform: m.ShiftBy(alpha)}},
			Done{Intervals: found},
		}
	}

	eval.logger.Debug("split", "degree", p.Degree(), "signs", signs, "bound", alpha)

	return []Item{
		Continue{State{Polynomial: p.Compose(polynomial.New(1, 1)), Transform: m.ShiftBy(1)}},
		Continue{State{Polynomial: p.VincentReduction(), Transform: m.VincentReduction()}},
		Done{Intervals: found},
	}
}

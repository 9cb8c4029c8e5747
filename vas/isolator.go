package vas

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/charmbracelet/log"
	"github.com/zeebo/blake3"
	"golang.org/x/sync/errgroup"

	"github.com/tuneinsight/realroots/bound"
	"github.com/tuneinsight/realroots/interval"
	"github.com/tuneinsight/realroots/mobius"
	"github.com/tuneinsight/realroots/polynomial"
	"github.com/tuneinsight/realroots/utils"
)

// ErrBudgetExhausted is wrapped by the error returned when an isolation reaches
// the MaxOperations budget of its parameters. The report still carries the
// intervals found until then.
var ErrBudgetExhausted = errors.New("operation budget exhausted")

// Isolator finds isolating intervals for the positive real roots of polynomials.
// An Isolator can be used concurrently: each isolation owns its worklist.
type Isolator struct {
	*Evaluator
	cache Cache
}

// NewIsolator instantiates a new Isolator without cache, logging to log.Default().
func NewIsolator(params Parameters) *Isolator {
	return &Isolator{
		Evaluator: NewEvaluator(params),
		cache:     NullCache{},
	}
}

// WithCache returns a shallow copy of the isolator storing its results in cache.
// A nil cache disables caching.
func (iso Isolator) WithCache(cache Cache) *Isolator {
	if cache == nil {
		cache = NullCache{}
	}
	iso.cache = cache
	return &iso
}

// WithEstimator returns a shallow copy of the isolator using est as lower-bound
// estimator. Results obtained with a custom estimator are not cached. A nil est
// restores the estimator of the parameters.
func (iso Isolator) WithEstimator(est bound.Estimator) *Isolator {
	iso.Evaluator = iso.Evaluator.WithEstimator(est)
	return &iso
}

// WithLogger returns a shallow copy of the isolator logging to logger, log.Default() if nil.
func (iso Isolator) WithLogger(logger *log.Logger) *Isolator {
	iso.Evaluator = iso.Evaluator.WithLogger(logger)
	return &iso
}

// FindRootIntervals returns isolating intervals for the positive real roots of p,
// see [Isolator.Isolate].
func (iso Isolator) FindRootIntervals(ctx context.Context, p *polynomial.Polynomial) ([]interval.Interval, error) {
	report, err := iso.Isolate(ctx, p)
	if report == nil {
		return nil, err
	}
	return report.Intervals, err
}

// Isolate searches isolating intervals for the positive real roots of p.
//
// A polynomial without sign change yields no interval and a polynomial with a single
// sign change yields (0, +Inf). Otherwise the states are evaluated in FIFO order,
// starting from p and the identity transform, and the intervals are reported in the
// order they are found.
//
// If the context is done or the operation budget is exhausted, Isolate returns the
// report of the intervals found so far along with a non-nil error.
func (iso Isolator) Isolate(ctx context.Context, p *polynomial.Polynomial) (report *Report, err error) {

	if p == nil {
		return nil, fmt.Errorf("cannot Isolate: nil polynomial: %w", polynomial.ErrInvalidArgument)
	}

	start := time.Now()

	report = &Report{}

	defer func() {
		report.Elapsed = time.Since(start)
		iso.logger.Info("isolation",
			"degree", p.Degree(),
			"intervals", len(report.Intervals),
			"operations", report.Operations,
			"cached", report.Cached,
			"elapsed", report.Elapsed.Round(time.Microsecond),
			"err", err)
	}()

	var key []byte
	if !iso.custom {
		key = iso.cacheKey(p)
		if intervals, ok := iso.cache.Load(key); ok {
			report.Intervals, report.Cached = intervals, true
			return
		}
	}

	switch p.SignChanges() {
	case 0:
	case 1:
		report.Intervals = []interval.Interval{interval.NewOpen(0, math.Inf(1))}
	default:
		if err = iso.run(ctx, State{Polynomial: p, Transform: mobius.Identity}, report); err != nil {
			return
		}
	}

	if key != nil {
		iso.cache.Store(key, report.Intervals)
	}

	return
}

// run drains the worklist seeded with s. With several workers, the whole pending
// frontier is evaluated concurrently and the successors are queued in frontier
// order, which reproduces the sequential FIFO order.
func (iso Isolator) run(ctx context.Context, s State, report *Report) (err error) {

	queue := []State{s}

	budget := iso.params.MaxOperations()
	workers := utils.Max(iso.params.Workers(), 1)

	for len(queue) > 0 {

		if err = ctx.Err(); err != nil {
			return fmt.Errorf("cannot Isolate: %w", err)
		}

		report.MaxFrontier = utils.Max(report.MaxFrontier, len(queue))

		size := 1
		if workers > 1 {
			size = len(queue)
		}

		if budget > 0 {

			if report.Operations >= budget {
				return fmt.Errorf("cannot Isolate: after %d operations: %w", report.Operations, ErrBudgetExhausted)
			}

			size = utils.Min(size, budget-report.Operations)
		}

		var outcomes [][]Item
		if outcomes, err = iso.evaluate(ctx, queue[:size], workers); err != nil {
			return fmt.Errorf("cannot Isolate: %w", err)
		}

		queue = queue[size:]

		for _, items := range outcomes {
			for _, item := range items {
				switch item := item.(type) {
				case Continue:
					queue = append(queue, item.State)
				case Done:
					report.Intervals = append(report.Intervals, item.Intervals...)
				}
			}
		}

		report.Operations += size
	}

	return
}

// evaluate steps every state of the frontier, with at most workers concurrent goroutines.
func (iso Isolator) evaluate(ctx context.Context, frontier []State, workers int) ([][]Item, error) {

	outcomes := make([][]Item, len(frontier))

	if workers == 1 || len(frontier) == 1 {
		for i := range frontier {
			outcomes[i] = iso.Step(frontier[i])
		}
		return outcomes, nil
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i := range frontier {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			outcomes[i] = iso.Step(frontier[i])
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return outcomes, nil
}

func (iso Isolator) cacheKey(p *polynomial.Polynomial) []byte {
	h := blake3.New()
	h.Write(p.Fingerprint())
	h.Write(iso.params.Fingerprint())
	return h.Sum(nil)
}

package vas

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/go-cmp/cmp"
	"github.com/zeebo/blake3"

	"github.com/tuneinsight/realroots/bound"
	"github.com/tuneinsight/realroots/polynomial"
)

// DefaultMaxOperations is the default budget of evaluation steps of a single isolation.
const DefaultMaxOperations = 1 << 16

// ErrInvalidParameters is wrapped by the errors returned by [NewParametersFromLiteral].
var ErrInvalidParameters = errors.New("invalid parameters")

// Reduction is the name of the operation used to remove a root at the origin.
type Reduction string

const (
	// ReductionExact divides the polynomial by x, see [polynomial.Polynomial.ReduceDegree].
	ReductionExact = Reduction("exact")
	// ReductionTruncated also drops the leading term, see [polynomial.Polynomial.ReduceDegreeTruncated].
	ReductionTruncated = Reduction("truncated")
)

// Apply returns the reduction of p.
func (r Reduction) Apply(p *polynomial.Polynomial) *polynomial.Polynomial {
	if r == ReductionTruncated {
		return p.ReduceDegreeTruncated()
	}
	return p.ReduceDegree()
}

// Rescale is the name of the rule deciding when a state is rescaled by its
// estimated lower bound α before being shifted.
type Rescale string

const (
	// RescaleConstantTerm rescales when α exceeds the constant term of the state polynomial.
	// States with a negative constant term are then always rescaled, which can
	// make the search creep towards the first root and merge several roots into
	// an unbounded interval.
	RescaleConstantTerm = Rescale("constant-term")
	// RescaleUnit rescales when α exceeds 1.
	RescaleUnit = Rescale("unit")
)

// Threshold returns the value above which a lower bound triggers a rescaling of p.
func (r Rescale) Threshold(p *polynomial.Polynomial) float64 {
	if r == RescaleUnit {
		return 1
	}
	return p.Constant()
}

// ParametersLiteral is a literal representation of the isolation parameters.
// It has public fields and is used to express unchecked user-defined parameters
// literally into Go programs. The NewParametersFromLiteral function is used to
// generate the actual checked parameters from the literal representation.
//
// MaxOperations bounds the number of evaluation steps of an isolation, zero
// meaning no bound. The other fields are optional: an empty Reduction defaults to
// ReductionExact, an empty Rescale to RescaleConstantTerm, an empty Estimator to
// the LMQ bound and a zero Workers to 1.
type ParametersLiteral struct {
	MaxOperations int
	Reduction     Reduction `json:",omitempty"`
	Rescale       Rescale   `json:",omitempty"`
	Estimator     string    `json:",omitempty"`
	Workers       int       `json:",omitempty"`
}

// DefaultParametersLiteral is the literal of the default parameters.
var DefaultParametersLiteral = ParametersLiteral{
	MaxOperations: DefaultMaxOperations,
	Reduction:     ReductionExact,
	Rescale:       RescaleConstantTerm,
	Estimator:     bound.NameLocalMaxQuadratic,
	Workers:       1,
}

// Parameters is a checked set of isolation parameters. Its fields are private
// and immutable. See ParametersLiteral for user-specified parameters.
type Parameters struct {
	maxOperations int
	reduction     Reduction
	rescale       Rescale
	estimator     string
	workers       int
}

// NewParametersFromLiteral instantiates a set of Parameters from a ParametersLiteral.
// It returns the empty parameters Parameters{} and a non-nil error if the specified
// parameters are invalid.
func NewParametersFromLiteral(pl ParametersLiteral) (Parameters, error) {

	if pl.MaxOperations < 0 {
		return Parameters{}, fmt.Errorf("cannot NewParametersFromLiteral: MaxOperations must be non-negative but is %d: %w", pl.MaxOperations, ErrInvalidParameters)
	}

	if pl.Workers < 0 {
		return Parameters{}, fmt.Errorf("cannot NewParametersFromLiteral: Workers must be non-negative but is %d: %w", pl.Workers, ErrInvalidParameters)
	}

	switch pl.Reduction {
	case "":
		pl.Reduction = ReductionExact
	case ReductionExact, ReductionTruncated:
	default:
		return Parameters{}, fmt.Errorf("cannot NewParametersFromLiteral: unknown reduction %q: %w", pl.Reduction, ErrInvalidParameters)
	}

	switch pl.Rescale {
	case "":
		pl.Rescale = RescaleConstantTerm
	case RescaleConstantTerm, RescaleUnit:
	default:
		return Parameters{}, fmt.Errorf("cannot NewParametersFromLiteral: unknown rescale rule %q: %w", pl.Rescale, ErrInvalidParameters)
	}

	if pl.Estimator == "" {
		pl.Estimator = bound.NameLocalMaxQuadratic
	}

	if _, err := bound.ByName(pl.Estimator); err != nil {
		return Parameters{}, fmt.Errorf("cannot NewParametersFromLiteral: %w: %w", ErrInvalidParameters, err)
	}

	if pl.Workers == 0 {
		pl.Workers = 1
	}

	return Parameters{
		maxOperations: pl.MaxOperations,
		reduction:     pl.Reduction,
		rescale:       pl.Rescale,
		estimator:     pl.Estimator,
		workers:       pl.Workers,
	}, nil
}

// DefaultParameters returns the parameters of DefaultParametersLiteral.
func DefaultParameters() Parameters {
	params, err := NewParametersFromLiteral(DefaultParametersLiteral)
	if err != nil {
		panic(err)
	}
	return params
}

// ParametersLiteral returns the ParametersLiteral of the target Parameters.
func (p Parameters) ParametersLiteral() ParametersLiteral {
	return ParametersLiteral{
		MaxOperations: p.maxOperations,
		Reduction:     p.reduction,
		Rescale:       p.rescale,
		Estimator:     p.estimator,
		Workers:       p.workers,
	}
}

// MaxOperations returns the budget of evaluation steps, 0 if unbounded.
func (p Parameters) MaxOperations() int {
	return p.maxOperations
}

// Reduction returns the zero-root reduction.
func (p Parameters) Reduction() Reduction {
	return p.reduction
}

// Rescale returns the rescale rule.
func (p Parameters) Rescale() Rescale {
	return p.rescale
}

// EstimatorName returns the name of the lower-bound estimator.
func (p Parameters) EstimatorName() string {
	return p.estimator
}

// Estimator returns a new instance of the lower-bound estimator.
func (p Parameters) Estimator() bound.Estimator {

	if p.estimator == "" {
		return bound.LocalMaxQuadratic{}
	}

	est, err := bound.ByName(p.estimator)

	// sanity check, the name is validated by NewParametersFromLiteral
	if err != nil {
		panic(err)
	}

	return est
}

// Workers returns the number of goroutines evaluating the worklist.
func (p Parameters) Workers() int {
	return p.workers
}

// Fingerprint returns a digest of the parameters that can change the result of an
// isolation. Parameters differing only by their number of workers share a fingerprint.
func (p Parameters) Fingerprint() []byte {
	pl := p.ParametersLiteral()
	pl.Workers = 0
	data, err := json.Marshal(pl)
	// sanity check, a literal is always marshalable
	if err != nil {
		panic(err)
	}
	sum := blake3.Sum256(data)
	return sum[:]
}

// Equal compares two sets of parameters for equality.
func (p Parameters) Equal(other Parameters) bool {
	return cmp.Equal(p.ParametersLiteral(), other.ParametersLiteral())
}

// MarshalBinary returns a []byte representation of the parameter set.
func (p Parameters) MarshalBinary() ([]byte, error) {
	return p.MarshalJSON()
}

// UnmarshalBinary decodes a []byte into a parameter set struct.
func (p *Parameters) UnmarshalBinary(data []byte) (err error) {
	return p.UnmarshalJSON(data)
}

// MarshalJSON returns a JSON representation of this parameter set. See `Marshal` from the `encoding/json` package.
func (p Parameters) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.ParametersLiteral())
}

// UnmarshalJSON reads a JSON representation of a parameter set into the receiver Parameter. See `Unmarshal` from the `encoding/json` package.
func (p *Parameters) UnmarshalJSON(data []byte) (err error) {
	var params ParametersLiteral
	if err = json.Unmarshal(data, &params); err != nil {
		return
	}
	*p, err = NewParametersFromLiteral(params)
	return
}

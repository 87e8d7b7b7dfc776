package sampling

import (
	"errors"
	"fmt"
	"math"
	"math/rand"
)

// ErrInvalidWeights is returned when a categorical distribution is not a valid probability table
var ErrInvalidWeights = errors.New("invalid categorical weights")

// weightTolerance bounds how far the weights may drift from 1
const weightTolerance = 1e-9

// Weighted pairs a category value with its probability
type Weighted[T any] struct {
	Value  T
	Weight float64
}

// Categorical draws values from a fixed discrete distribution.
// Outcomes keep the order they were declared in so a seeded source always yields the same draws.
type Categorical[T any] struct {
	values     []T
	cumulative []float64
}

// NewCategorical validates the weights and builds the distribution
func NewCategorical[T any](outcomes []Weighted[T]) (*Categorical[T], error) {
	if len(outcomes) == 0 {
		return nil, fmt.Errorf("%w: no outcomes", ErrInvalidWeights)
	}

	c := &Categorical[T]{
		values:     make([]T, len(outcomes)),
		cumulative: make([]float64, len(outcomes)),
	}
	total := 0.0
	for i, o := range outcomes {
		if o.Weight < 0 || math.IsNaN(o.Weight) || math.IsInf(o.Weight, 0) {
			return nil, fmt.Errorf("%w: weight %v for %v", ErrInvalidWeights, o.Weight, o.Value)
		}
		total += o.Weight
		c.values[i] = o.Value
		c.cumulative[i] = total
	}
	if math.Abs(total-1) > weightTolerance {
		return nil, fmt.Errorf("%w: weights sum to %v", ErrInvalidWeights, total)
	}

	// normalize so the last bucket always closes at exactly 1
	for i := range c.cumulative {
		c.cumulative[i] /= total
	}
	c.cumulative[len(c.cumulative)-1] = 1
	return c, nil
}

// Draw returns one value, consuming exactly one Float64 from rng
func (c *Categorical[T]) Draw(rng *rand.Rand) T {
	u := rng.Float64()
	for i, edge := range c.cumulative {
		if u < edge {
			return c.values[i]
		}
	}
	return c.values[len(c.values)-1]
}

// Choose is a one-off weighted draw
func Choose[T any](rng *rand.Rand, outcomes []Weighted[T]) (T, error) {
	c, err := NewCategorical(outcomes)
	if err != nil {
		var zero T
		return zero, err
	}
	return c.Draw(rng), nil
}

package derive

import (
	"errors"
	"fmt"
	"math"
)

// ErrOutOfRange is returned for a value no bin covers
var ErrOutOfRange = errors.New("value outside bin range")

// Bins assigns labels to right-closed intervals (edges[i], edges[i+1]].
// The first interval also includes its lower edge.
type Bins struct {
	Edges  []float64
	Labels []string
}

// FICOBins buckets credit scores
var FICOBins = Bins{
	Edges:  []float64{0, 580, 670, 740, 800, 850},
	Labels: []string{"Very Poor", "Fair", "Good", "Very Good", "Excellent"},
}

// DTIBins buckets debt-to-income ratios
var DTIBins = Bins{
	Edges:  []float64{0, 10, 20, 30, 40, math.Inf(1)},
	Labels: []string{"Very Low", "Low", "Moderate", "High", "Very High"},
}

// Assign returns the label of the bin holding v
func (b Bins) Assign(v float64) (string, error) {
	if len(b.Edges) != len(b.Labels)+1 {
		return "", fmt.Errorf("bins have %d edges for %d labels", len(b.Edges), len(b.Labels))
	}
	if math.IsNaN(v) || v < b.Edges[0] || v > b.Edges[len(b.Edges)-1] {
		return "", fmt.Errorf("%w: %v", ErrOutOfRange, v)
	}
	for i, label := range b.Labels {
		if v <= b.Edges[i+1] {
			return label, nil
		}
	}
	return "", fmt.Errorf("%w: %v", ErrOutOfRange, v)
}

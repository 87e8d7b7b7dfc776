package generator

import (
	"errors"
	"fmt"
	"math"

	"github.com/Dan9191/loan-dataset/internal/models"
)

// ErrUnknownGrade is returned for a grade outside A..G
var ErrUnknownGrade = errors.New("unknown grade")

// maxDTI is the debt-to-income ratio at which the DTI penalty saturates
const maxDTI = 50.0

var baseDefaultProbability = map[models.Grade]float64{
	models.GradeA: 0.02,
	models.GradeB: 0.04,
	models.GradeC: 0.08,
	models.GradeD: 0.15,
	models.GradeE: 0.25,
	models.GradeF: 0.35,
	models.GradeG: 0.45,
}

// DefaultProbability returns the chance that a loan of the given grade and DTI defaults.
// The grade's base rate is scaled by up to 2x as DTI approaches 50; the result is kept in [0, 1].
func DefaultProbability(grade models.Grade, dti float64) (float64, error) {
	base, ok := baseDefaultProbability[grade]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownGrade, grade)
	}
	dtiFactor := math.Max(0, math.Min(dti/maxDTI, 1))
	return math.Max(0, math.Min(base*(1+dtiFactor), 1)), nil
}

package generator

import (
	"testing"

	"github.com/Dan9191/loan-dataset/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultProbability(t *testing.T) {
	tests := []struct {
		name  string
		grade models.Grade
		dti   float64
		want  float64
	}{
		{"grade A no debt", models.GradeA, 0, 0.02},
		{"grade A saturated", models.GradeA, 50, 0.04},
		{"grade C half", models.GradeC, 25, 0.12},
		{"grade D", models.GradeD, 10, 0.18},
		{"grade G saturated", models.GradeG, 50, 0.90},
		{"grade G beyond cap", models.GradeG, 80, 0.90},
		{"negative dti", models.GradeB, -5, 0.04},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DefaultProbability(tt.grade, tt.dti)
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, 1e-12)
		})
	}
}

func TestDefaultProbabilityUnknownGrade(t *testing.T) {
	_, err := DefaultProbability(models.Grade("H"), 10)
	assert.ErrorIs(t, err, ErrUnknownGrade)
}

func TestDefaultProbabilityMonotone(t *testing.T) {
	for _, dti := range []float64{0, 12.5, 33.3, 49.9} {
		prev := 0.0
		for _, grade := range models.Grades {
			p, err := DefaultProbability(grade, dti)
			require.NoError(t, err)
			assert.Greater(t, p, prev)
			assert.LessOrEqual(t, p, 1.0)
			prev = p
		}
	}
	for _, grade := range models.Grades {
		prev := 0.0
		for dti := 0.0; dti <= 50; dti += 5 {
			p, err := DefaultProbability(grade, dti)
			require.NoError(t, err)
			assert.Greater(t, p, prev)
			prev = p
		}
	}
}

package derive

import (
	"fmt"
	"math"
	"testing"

	"github.com/Dan9191/loan-dataset/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFICOBins(t *testing.T) {
	tests := []struct {
		score float64
		want  string
	}{
		{0, "Very Poor"},
		{580, "Very Poor"},
		{581, "Fair"},
		{670, "Fair"},
		{671, "Good"},
		{740, "Good"},
		{741, "Very Good"},
		{800, "Very Good"},
		{801, "Excellent"},
		{850, "Excellent"},
	}
	for _, tt := range tests {
		got, err := FICOBins.Assign(tt.score)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "score %v", tt.score)
	}

	_, err := FICOBins.Assign(851)
	assert.ErrorIs(t, err, ErrOutOfRange)
	_, err = FICOBins.Assign(-1)
	assert.ErrorIs(t, err, ErrOutOfRange)
}

func TestDTIBins(t *testing.T) {
	tests := []struct {
		dti  float64
		want string
	}{
		{0, "Very Low"},
		{9.9, "Very Low"},
		{10, "Very Low"},
		{10.1, "Low"},
		{20, "Low"},
		{25, "Moderate"},
		{30, "Moderate"},
		{40, "High"},
		{40.1, "Very High"},
		{50, "Very High"},
		{1e6, "Very High"},
	}
	for _, tt := range tests {
		got, err := DTIBins.Assign(tt.dti)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "dti %v", tt.dti)
	}

	_, err := DTIBins.Assign(-0.1)
	assert.ErrorIs(t, err, ErrOutOfRange)
	_, err = DTIBins.Assign(math.NaN())
	assert.ErrorIs(t, err, ErrOutOfRange)
}

func TestBinsMismatchedLabels(t *testing.T) {
	b := Bins{Edges: []float64{0, 1}, Labels: []string{"a", "b"}}
	_, err := b.Assign(0.5)
	assert.Error(t, err)
}

func TestEmpLengthYears(t *testing.T) {
	for years := 0; years < 10; years++ {
		got, err := EmpLengthYears(fmt.Sprintf("%d years", years))
		require.NoError(t, err)
		assert.Equal(t, years, got)
	}

	got, err := EmpLengthYears("10+ years")
	require.NoError(t, err)
	assert.Equal(t, 10, got)

	for _, bad := range []string{"", "ten years", "5", "-1 years", "3 months"} {
		_, err := EmpLengthYears(bad)
		assert.Error(t, err, "label %q", bad)
	}
}

func TestRecord(t *testing.T) {
	r := models.LoanRecord{
		LoanID:       7,
		LoanAmount:   12000,
		Grade:        models.GradeB,
		AnnualIncome: 65000,
		EmpLength:    "10+ years",
		DTI:          20,
		FicoScore:    740,
		LoanStatus:   models.LoanStatusFullyPaid,
	}

	d, err := Record(r)
	require.NoError(t, err)
	assert.Equal(t, r, d.Loan)
	assert.Equal(t, 10, d.EmpYears)
	assert.Equal(t, "Good", d.FicoCategory)
	assert.Equal(t, "Low", d.DTICategory)
	assert.InDelta(t, math.Log(65001), d.LogIncome, 1e-12)
	assert.InDelta(t, math.Log(12001), d.LogLoanAmount, 1e-12)
}

func TestBuildReportsBadRow(t *testing.T) {
	rows := []models.LoanRecord{
		{LoanID: 1, EmpLength: "2 years", FicoScore: 700, DTI: 5},
		{LoanID: 2, EmpLength: "two years", FicoScore: 700, DTI: 5},
	}
	_, err := Build(rows)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "loan 2")
}

func TestLog1p(t *testing.T) {
	assert.Equal(t, 0.0, Log1p(0))
	assert.InDelta(t, math.Log(2), Log1p(1), 1e-15)
}

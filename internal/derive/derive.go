package derive

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/Dan9191/loan-dataset/internal/models"
)

// EmpLengthYears converts an employment label ("3 years", "10+ years") to whole years
func EmpLengthYears(label string) (int, error) {
	s := strings.TrimSuffix(label, " years")
	if s == label {
		return 0, fmt.Errorf("invalid employment length %q", label)
	}
	s = strings.TrimSuffix(s, "+")
	years, err := strconv.Atoi(s)
	if err != nil || years < 0 {
		return 0, fmt.Errorf("invalid employment length %q", label)
	}
	return years, nil
}

// Log1p applies log(x+1)
func Log1p(x float64) float64 {
	return math.Log1p(x)
}

// Record derives the golden form of a single loan record
func Record(r models.LoanRecord) (models.DerivedRecord, error) {
	years, err := EmpLengthYears(r.EmpLength)
	if err != nil {
		return models.DerivedRecord{}, err
	}
	fico, err := FICOBins.Assign(float64(r.FicoScore))
	if err != nil {
		return models.DerivedRecord{}, fmt.Errorf("fico score: %w", err)
	}
	dti, err := DTIBins.Assign(r.DTI)
	if err != nil {
		return models.DerivedRecord{}, fmt.Errorf("dti: %w", err)
	}

	return models.DerivedRecord{
		Loan:          r,
		EmpYears:      years,
		FicoCategory:  fico,
		DTICategory:   dti,
		LogIncome:     Log1p(r.AnnualIncome),
		LogLoanAmount: Log1p(r.LoanAmount),
	}, nil
}

// Build derives the golden table row by row
func Build(records []models.LoanRecord) ([]models.DerivedRecord, error) {
	out := make([]models.DerivedRecord, len(records))
	for i, r := range records {
		d, err := Record(r)
		if err != nil {
			return nil, fmt.Errorf("failed to derive loan %d: %w", r.LoanID, err)
		}
		out[i] = d
	}
	return out, nil
}

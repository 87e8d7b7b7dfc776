package generator

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/Dan9191/loan-dataset/internal/models"
	"github.com/Dan9191/loan-dataset/internal/sampling"
	"github.com/sirupsen/logrus"
)

// ErrInvalidSampleCount is returned when fewer than one record is requested
var ErrInvalidSampleCount = errors.New("sample count must be positive")

var (
	termWeights = []sampling.Weighted[string]{
		{Value: "36 months", Weight: 0.7},
		{Value: "60 months", Weight: 0.3},
	}
	gradeWeights = []sampling.Weighted[models.Grade]{
		{Value: models.GradeA, Weight: 0.30},
		{Value: models.GradeB, Weight: 0.25},
		{Value: models.GradeC, Weight: 0.20},
		{Value: models.GradeD, Weight: 0.15},
		{Value: models.GradeE, Weight: 0.05},
		{Value: models.GradeF, Weight: 0.03},
		{Value: models.GradeG, Weight: 0.02},
	}
	purposeWeights = []sampling.Weighted[string]{
		{Value: "debt_consolidation", Weight: 0.40},
		{Value: "credit_card", Weight: 0.20},
		{Value: "home_improvement", Weight: 0.10},
		{Value: "medical", Weight: 0.08},
		{Value: "major_purchase", Weight: 0.07},
		{Value: "small_business", Weight: 0.05},
		{Value: "wedding", Weight: 0.05},
		{Value: "vacation", Weight: 0.03},
		{Value: "other", Weight: 0.02},
	}
	homeOwnershipWeights = []sampling.Weighted[string]{
		{Value: "RENT", Weight: 0.40},
		{Value: "MORTGAGE", Weight: 0.45},
		{Value: "OWN", Weight: 0.15},
	}
)

// Generator produces synthetic loan records from one seeded random source.
// A Generator is not safe for concurrent use.
type Generator struct {
	rng  *rand.Rand
	log  *logrus.Logger
	seed int64

	terms         *sampling.Categorical[string]
	grades        *sampling.Categorical[models.Grade]
	purposes      *sampling.Categorical[string]
	homeOwnership *sampling.Categorical[string]
}

// New builds a generator seeded with seed, validating every categorical table up front
func New(seed int64, log *logrus.Logger) (*Generator, error) {
	g := &Generator{
		rng:  rand.New(rand.NewSource(seed)),
		log:  log,
		seed: seed,
	}

	var err error
	if g.terms, err = sampling.NewCategorical(termWeights); err != nil {
		return nil, fmt.Errorf("term distribution: %w", err)
	}
	if g.grades, err = sampling.NewCategorical(gradeWeights); err != nil {
		return nil, fmt.Errorf("grade distribution: %w", err)
	}
	if g.purposes, err = sampling.NewCategorical(purposeWeights); err != nil {
		return nil, fmt.Errorf("purpose distribution: %w", err)
	}
	if g.homeOwnership, err = sampling.NewCategorical(homeOwnershipWeights); err != nil {
		return nil, fmt.Errorf("home ownership distribution: %w", err)
	}
	return g, nil
}

// Generate draws n loan records. Columns are drawn one after another over all rows,
// followed by the loan status of every row, so the same seed always yields the same table.
func (g *Generator) Generate(n int) ([]models.LoanRecord, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidSampleCount, n)
	}

	records := make([]models.LoanRecord, n)
	for i := range records {
		records[i].LoanID = i + 1
	}

	for i := range records {
		records[i].LoanAmount = sampling.Round(sampling.Uniform(g.rng, 1000, 40000), -2)
	}
	for i := range records {
		records[i].Term = g.terms.Draw(g.rng)
	}
	for i := range records {
		records[i].InterestRate = sampling.Round(sampling.Uniform(g.rng, 5, 25), 1)
	}
	for i := range records {
		records[i].Grade = g.grades.Draw(g.rng)
	}
	for i := range records {
		records[i].Purpose = g.purposes.Draw(g.rng)
	}
	for i := range records {
		records[i].HomeOwnership = g.homeOwnership.Draw(g.rng)
	}
	for i := range records {
		income := sampling.Round(sampling.LogNormal(g.rng, 11, 0.5), -3)
		records[i].AnnualIncome = sampling.Clamp(income, 20000, 300000)
	}
	for i := range records {
		records[i].EmpLength = EmpLengthLabel(sampling.IntRange(g.rng, 0, 10))
	}
	for i := range records {
		records[i].DTI = sampling.Round(sampling.Uniform(g.rng, 0, 50), 1)
	}
	for i := range records {
		fico := sampling.Round(sampling.Normal(g.rng, 700, 50), 0)
		records[i].FicoScore = int(sampling.Clamp(fico, 580, 850))
	}
	for i := range records {
		records[i].TotalCreditLines = sampling.IntRange(g.rng, 5, 30)
	}
	for i := range records {
		records[i].RevolvingBalance = sampling.Round(sampling.Uniform(g.rng, 0, 50000), -2)
	}
	for i := range records {
		records[i].RevolvingUtilization = sampling.Round(sampling.Uniform(g.rng, 0, 1), 2)
	}

	for i := range records {
		status, err := g.drawStatus(records[i].Grade, records[i].DTI)
		if err != nil {
			return nil, fmt.Errorf("failed to draw loan status for loan %d: %w", records[i].LoanID, err)
		}
		records[i].LoanStatus = status
	}

	g.log.WithFields(logrus.Fields{"seed": g.seed, "rows": n}).Debug("Generated loan records")
	return records, nil
}

func (g *Generator) drawStatus(grade models.Grade, dti float64) (models.LoanStatus, error) {
	p, err := DefaultProbability(grade, dti)
	if err != nil {
		return "", err
	}
	return sampling.Choose(g.rng, []sampling.Weighted[models.LoanStatus]{
		{Value: models.LoanStatusDefault, Weight: p},
		{Value: models.LoanStatusFullyPaid, Weight: 1 - p},
	})
}

// EmpLengthLabel renders employment years as "N years", with "10+ years" for ten or more
func EmpLengthLabel(years int) string {
	if years >= 10 {
		return "10+ years"
	}
	if years < 0 {
		years = 0
	}
	return fmt.Sprintf("%d years", years)
}

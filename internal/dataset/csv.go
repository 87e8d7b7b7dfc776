package dataset

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"slices"
	"strconv"

	"github.com/Dan9191/loan-dataset/internal/models"
)

var (
	// ErrBadHeader is returned when a raw table does not start with the expected columns
	ErrBadHeader = errors.New("unexpected csv header")
	// ErrInvalidValue is returned for a categorical field outside its known values
	ErrInvalidValue = errors.New("invalid categorical value")
)

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func rawFields(r models.LoanRecord, empLength string) []string {
	return []string{
		strconv.Itoa(r.LoanID),
		formatFloat(r.LoanAmount),
		r.Term,
		formatFloat(r.InterestRate),
		string(r.Grade),
		r.Purpose,
		r.HomeOwnership,
		formatFloat(r.AnnualIncome),
		empLength,
		formatFloat(r.DTI),
		strconv.Itoa(r.FicoScore),
		strconv.Itoa(r.TotalCreditLines),
		formatFloat(r.RevolvingBalance),
		formatFloat(r.RevolvingUtilization),
		string(r.LoanStatus),
	}
}

// WriteRaw writes the raw table with a header row
func WriteRaw(w io.Writer, rows []models.LoanRecord) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(models.RawColumns); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	for _, r := range rows {
		if err := cw.Write(rawFields(r, r.EmpLength)); err != nil {
			return fmt.Errorf("failed to write loan %d: %w", r.LoanID, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteGolden writes the derived table with a header row
func WriteGolden(w io.Writer, rows []models.DerivedRecord) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(models.GoldenColumns); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	for _, d := range rows {
		fields := append(rawFields(d.Loan, strconv.Itoa(d.EmpYears)),
			d.FicoCategory,
			d.DTICategory,
			formatFloat(d.LogIncome),
			formatFloat(d.LogLoanAmount),
		)
		if err := cw.Write(fields); err != nil {
			return fmt.Errorf("failed to write loan %d: %w", d.Loan.LoanID, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// ReadRaw parses a raw table written by WriteRaw
func ReadRaw(r io.Reader) ([]models.LoanRecord, error) {
	reader := csv.NewReader(bufio.NewReader(r))
	reader.FieldsPerRecord = len(models.RawColumns)

	header, err := reader.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("%w: empty input", ErrBadHeader)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}
	for i, col := range models.RawColumns {
		if header[i] != col {
			return nil, fmt.Errorf("%w: column %d is %q, want %q", ErrBadHeader, i, header[i], col)
		}
	}

	var rows []models.LoanRecord
	for line := 2; ; line++ {
		rec, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read line %d: %w", line, err)
		}
		row, err := parseRaw(rec)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// fieldParser collects the first conversion error so a row is parsed in one pass
type fieldParser struct {
	rec []string
	err error
}

func (p *fieldParser) atoi(i int) int {
	v, err := strconv.Atoi(p.rec[i])
	if err != nil && p.err == nil {
		p.err = fmt.Errorf("column %s: %w", models.RawColumns[i], err)
	}
	return v
}

func (p *fieldParser) parseFloat(i int) float64 {
	v, err := strconv.ParseFloat(p.rec[i], 64)
	if err != nil && p.err == nil {
		p.err = fmt.Errorf("column %s: %w", models.RawColumns[i], err)
	}
	return v
}

// oneOf records an error unless rec[i] is one of allowed
func oneOf[T ~string](p *fieldParser, i int, allowed []T) T {
	v := T(p.rec[i])
	if !slices.Contains(allowed, v) && p.err == nil {
		p.err = fmt.Errorf("column %s: %w: %q", models.RawColumns[i], ErrInvalidValue, p.rec[i])
	}
	return v
}

func parseRaw(rec []string) (models.LoanRecord, error) {
	p := &fieldParser{rec: rec}
	row := models.LoanRecord{
		LoanID:               p.atoi(0),
		LoanAmount:           p.parseFloat(1),
		Term:                 oneOf(p, 2, models.Terms),
		InterestRate:         p.parseFloat(3),
		Grade:                oneOf(p, 4, models.Grades),
		Purpose:              oneOf(p, 5, models.Purposes),
		HomeOwnership:        oneOf(p, 6, models.HomeOwnerships),
		AnnualIncome:         p.parseFloat(7),
		EmpLength:            rec[8],
		DTI:                  p.parseFloat(9),
		FicoScore:            p.atoi(10),
		TotalCreditLines:     p.atoi(11),
		RevolvingBalance:     p.parseFloat(12),
		RevolvingUtilization: p.parseFloat(13),
		LoanStatus:           oneOf(p, 14, models.LoanStatuses),
	}
	return row, p.err
}

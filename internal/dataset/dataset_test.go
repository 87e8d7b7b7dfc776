package dataset

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/Dan9191/loan-dataset/internal/derive"
	"github.com/Dan9191/loan-dataset/internal/generator"
	"github.com/Dan9191/loan-dataset/internal/models"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleRows(t *testing.T, seed int64, n int) ([]models.LoanRecord, []models.DerivedRecord) {
	t.Helper()
	logger := logrus.New()
	logger.SetOutput(io.Discard)

	g, err := generator.New(seed, logger)
	require.NoError(t, err)
	raw, err := g.Generate(n)
	require.NoError(t, err)
	golden, err := derive.Build(raw)
	require.NoError(t, err)
	return raw, golden
}

func TestWriteRawHeaderAndRow(t *testing.T) {
	rows := []models.LoanRecord{{
		LoanID:               1,
		LoanAmount:           15300,
		Term:                 "36 months",
		InterestRate:         12.5,
		Grade:                models.GradeC,
		Purpose:              "credit_card",
		HomeOwnership:        "RENT",
		AnnualIncome:         58000,
		EmpLength:            "10+ years",
		DTI:                  18.2,
		FicoScore:            712,
		TotalCreditLines:     14,
		RevolvingBalance:     8700,
		RevolvingUtilization: 0.43,
		LoanStatus:           models.LoanStatusFullyPaid,
	}}

	var buf bytes.Buffer
	require.NoError(t, WriteRaw(&buf, rows))

	want := "loan_id,loan_amount,term,interest_rate,grade,purpose,home_ownership,annual_income,emp_length,dti,fico_score,total_credit_lines,revolving_balance,revolving_utilization,loan_status\n" +
		"1,15300,36 months,12.5,C,credit_card,RENT,58000,10+ years,18.2,712,14,8700,0.43,Fully Paid\n"
	assert.Equal(t, want, buf.String())
}

func TestWriteGoldenColumns(t *testing.T) {
	_, golden := sampleRows(t, 42, 5)

	var buf bytes.Buffer
	require.NoError(t, WriteGolden(&buf, golden))

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	require.Len(t, lines, 6)
	assert.Equal(t, strings.Join(models.GoldenColumns, ","), lines[0])
	for _, line := range lines[1:] {
		assert.Len(t, strings.Split(line, ","), len(models.GoldenColumns))
		assert.NotContains(t, line, "years")
	}
}

func TestGoldenRoundTrip(t *testing.T) {
	raw, golden := sampleRows(t, 42, 300)

	var rawBuf, goldenBuf bytes.Buffer
	require.NoError(t, WriteRaw(&rawBuf, raw))
	require.NoError(t, WriteGolden(&goldenBuf, golden))

	readBack, err := ReadRaw(bytes.NewReader(rawBuf.Bytes()))
	require.NoError(t, err)
	assert.Equal(t, raw, readBack)

	rebuilt, err := derive.Build(readBack)
	require.NoError(t, err)
	var rebuiltBuf bytes.Buffer
	require.NoError(t, WriteGolden(&rebuiltBuf, rebuilt))

	assert.Equal(t, goldenBuf.Bytes(), rebuiltBuf.Bytes())
}

func TestWriteIsByteIdenticalForSameSeed(t *testing.T) {
	rawA, goldenA := sampleRows(t, 42, 300)
	rawB, goldenB := sampleRows(t, 42, 300)

	var a, b bytes.Buffer
	require.NoError(t, WriteRaw(&a, rawA))
	require.NoError(t, WriteRaw(&b, rawB))
	assert.Equal(t, a.Bytes(), b.Bytes())

	a.Reset()
	b.Reset()
	require.NoError(t, WriteGolden(&a, goldenA))
	require.NoError(t, WriteGolden(&b, goldenB))
	assert.Equal(t, a.Bytes(), b.Bytes())
}

func TestReadRawRejectsBadInput(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty", ""},
		{"wrong header", "id,amount\n1,2\n"},
		{"renamed column", strings.Replace(strings.Join(models.RawColumns, ","), "dti", "debt", 1) + "\n"},
		{"bad number", strings.Join(models.RawColumns, ",") + "\nx,1,36 months,1,A,other,OWN,1,1 years,1,700,5,0,0,Default\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ReadRaw(strings.NewReader(tt.input))
			assert.Error(t, err)
		})
	}
}

func TestReadRawRejectsUnknownCategories(t *testing.T) {
	header := strings.Join(models.RawColumns, ",") + "\n"
	valid := []string{"1", "1000", "36 months", "10", "A", "other", "OWN", "50000", "1 years", "10", "700", "5", "0", "0", "Default"}

	_, err := ReadRaw(strings.NewReader(header + strings.Join(valid, ",") + "\n"))
	require.NoError(t, err)

	tests := []struct {
		column string
		value  string
	}{
		{"term", "48 months"},
		{"grade", "H"},
		{"purpose", "holiday"},
		{"home_ownership", "rent"},
		{"loan_status", "Charged Off"},
	}
	for _, tt := range tests {
		t.Run(tt.column, func(t *testing.T) {
			rec := append([]string{}, valid...)
			rec[slices.Index(models.RawColumns, tt.column)] = tt.value

			_, err := ReadRaw(strings.NewReader(header + strings.Join(rec, ",") + "\n"))
			assert.ErrorIs(t, err, ErrInvalidValue)
			assert.ErrorContains(t, err, tt.column)
		})
	}
}

func TestSyncDir(t *testing.T) {
	assert.NoError(t, syncDir(t.TempDir()))
	assert.Error(t, syncDir(filepath.Join(t.TempDir(), "missing")))
}

func TestSaveFilePublishesAtomically(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "raw.csv")

	require.NoError(t, SaveFile(path, func(w io.Writer) error {
		_, err := io.WriteString(w, "first\n")
		return err
	}))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "first\n", string(data))

	boom := errors.New("boom")
	err = SaveFile(path, func(w io.Writer) error {
		io.WriteString(w, "partial")
		return boom
	})
	assert.ErrorIs(t, err, boom)

	data, err = os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "first\n", string(data), "failed write must not replace the published file")

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temp files must be cleaned up")
}

func TestLoadRaw(t *testing.T) {
	raw, _ := sampleRows(t, 9, 20)
	path := filepath.Join(t.TempDir(), "raw.csv")
	require.NoError(t, SaveFile(path, func(w io.Writer) error { return WriteRaw(w, raw) }))

	loaded, err := LoadRaw(path)
	require.NoError(t, err)
	assert.Equal(t, raw, loaded)

	_, err = LoadRaw(filepath.Join(t.TempDir(), "missing.csv"))
	assert.Error(t, err)
}

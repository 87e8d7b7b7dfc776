package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Dan9191/loan-dataset/internal/models"
	"github.com/lib/pq"
)

const schemaSQL = `
	CREATE SCHEMA IF NOT EXISTS loan_dataset;
	CREATE TABLE IF NOT EXISTS loan_dataset.raw_loans (
		snapshot_seed BIGINT NOT NULL,
		loan_id INTEGER NOT NULL,
		loan_amount DOUBLE PRECISION NOT NULL,
		term TEXT NOT NULL,
		interest_rate DOUBLE PRECISION NOT NULL,
		grade TEXT NOT NULL,
		purpose TEXT NOT NULL,
		home_ownership TEXT NOT NULL,
		annual_income DOUBLE PRECISION NOT NULL,
		emp_length TEXT NOT NULL,
		dti DOUBLE PRECISION NOT NULL,
		fico_score INTEGER NOT NULL,
		total_credit_lines INTEGER NOT NULL,
		revolving_balance DOUBLE PRECISION NOT NULL,
		revolving_utilization DOUBLE PRECISION NOT NULL,
		loan_status TEXT NOT NULL,
		PRIMARY KEY (snapshot_seed, loan_id)
	);
	CREATE TABLE IF NOT EXISTS loan_dataset.golden_loans (
		snapshot_seed BIGINT NOT NULL,
		loan_id INTEGER NOT NULL,
		loan_amount DOUBLE PRECISION NOT NULL,
		term TEXT NOT NULL,
		interest_rate DOUBLE PRECISION NOT NULL,
		grade TEXT NOT NULL,
		purpose TEXT NOT NULL,
		home_ownership TEXT NOT NULL,
		annual_income DOUBLE PRECISION NOT NULL,
		emp_length INTEGER NOT NULL,
		dti DOUBLE PRECISION NOT NULL,
		fico_score INTEGER NOT NULL,
		total_credit_lines INTEGER NOT NULL,
		revolving_balance DOUBLE PRECISION NOT NULL,
		revolving_utilization DOUBLE PRECISION NOT NULL,
		loan_status TEXT NOT NULL,
		fico_category TEXT NOT NULL,
		dti_category TEXT NOT NULL,
		log_income DOUBLE PRECISION NOT NULL,
		log_loan_amount DOUBLE PRECISION NOT NULL,
		PRIMARY KEY (snapshot_seed, loan_id)
	);`

// Repository stores dataset snapshots in Postgres
type Repository struct {
	db *sql.DB
}

// NewRepository initializes a new repository
func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

// Prepare checks the connection and creates the schema, returning a ready repository
func Prepare(ctx context.Context, db *sql.DB) (*Repository, error) {
	if err := db.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}
	repo := NewRepository(db)
	if err := repo.EnsureSchema(ctx); err != nil {
		return nil, err
	}
	return repo, nil
}

// EnsureSchema creates the dataset schema and tables if they do not exist
func (r *Repository) EnsureSchema(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, schemaSQL); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}
	return nil
}

// SaveSnapshot replaces the rows stored for seed with the given raw and golden tables
func (r *Repository) SaveSnapshot(ctx context.Context, seed int64, raw []models.LoanRecord, golden []models.DerivedRecord) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	for _, table := range []string{"raw_loans", "golden_loans"} {
		query := fmt.Sprintf(`DELETE FROM loan_dataset.%s WHERE snapshot_seed = $1`, table)
		if _, err := tx.ExecContext(ctx, query, seed); err != nil {
			return fmt.Errorf("failed to clear %s: %w", table, err)
		}
	}

	rawRows := make([][]interface{}, len(raw))
	for i, l := range raw {
		rawRows[i] = append([]interface{}{seed}, loanValues(l, l.EmpLength)...)
	}
	if err := copyRows(ctx, tx, "raw_loans", append([]string{"snapshot_seed"}, models.RawColumns...), rawRows); err != nil {
		return err
	}

	goldenRows := make([][]interface{}, len(golden))
	for i, d := range golden {
		values := append([]interface{}{seed}, loanValues(d.Loan, d.EmpYears)...)
		goldenRows[i] = append(values, d.FicoCategory, d.DTICategory, d.LogIncome, d.LogLoanAmount)
	}
	if err := copyRows(ctx, tx, "golden_loans", append([]string{"snapshot_seed"}, models.GoldenColumns...), goldenRows); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit snapshot %d: %w", seed, err)
	}
	return nil
}

func loanValues(l models.LoanRecord, empLength interface{}) []interface{} {
	return []interface{}{
		l.LoanID,
		l.LoanAmount,
		l.Term,
		l.InterestRate,
		string(l.Grade),
		l.Purpose,
		l.HomeOwnership,
		l.AnnualIncome,
		empLength,
		l.DTI,
		l.FicoScore,
		l.TotalCreditLines,
		l.RevolvingBalance,
		l.RevolvingUtilization,
		string(l.LoanStatus),
	}
}

// copyRows bulk-loads rows with COPY FROM STDIN
func copyRows(ctx context.Context, tx *sql.Tx, table string, columns []string, rows [][]interface{}) error {
	stmt, err := tx.PrepareContext(ctx, pq.CopyInSchema("loan_dataset", table, columns...))
	if err != nil {
		return fmt.Errorf("failed to prepare copy into %s: %w", table, err)
	}
	defer stmt.Close()

	for _, row := range rows {
		if _, err := stmt.ExecContext(ctx, row...); err != nil {
			return fmt.Errorf("failed to copy row into %s: %w", table, err)
		}
	}
	if _, err := stmt.ExecContext(ctx); err != nil {
		return fmt.Errorf("failed to flush copy into %s: %w", table, err)
	}
	return nil
}

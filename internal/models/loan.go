package models

// Grade is the ordinal risk tier of a loan, A (lowest risk) to G (highest risk)
type Grade string

const (
	GradeA Grade = "A"
	GradeB Grade = "B"
	GradeC Grade = "C"
	GradeD Grade = "D"
	GradeE Grade = "E"
	GradeF Grade = "F"
	GradeG Grade = "G"
)

// Grades lists every grade from lowest to highest risk
var Grades = []Grade{GradeA, GradeB, GradeC, GradeD, GradeE, GradeF, GradeG}

// LoanStatus is the observed outcome of a loan
type LoanStatus string

const (
	LoanStatusDefault   LoanStatus = "Default"
	LoanStatusFullyPaid LoanStatus = "Fully Paid"
)

// LoanStatuses lists every loan outcome
var LoanStatuses = []LoanStatus{LoanStatusDefault, LoanStatusFullyPaid}

// Terms lists the offered loan terms
var Terms = []string{"36 months", "60 months"}

// Purposes lists the loan purposes
var Purposes = []string{
	"debt_consolidation",
	"credit_card",
	"home_improvement",
	"medical",
	"major_purchase",
	"small_business",
	"wedding",
	"vacation",
	"other",
}

// HomeOwnerships lists the borrower housing situations
var HomeOwnerships = []string{"RENT", "MORTGAGE", "OWN"}

// LoanRecord represents one synthetic loan application and its outcome (raw table row)
type LoanRecord struct {
	LoanID               int        `json:"loan_id"`
	LoanAmount           float64    `json:"loan_amount"`
	Term                 string     `json:"term"`
	InterestRate         float64    `json:"interest_rate"`
	Grade                Grade      `json:"grade"`
	Purpose              string     `json:"purpose"`
	HomeOwnership        string     `json:"home_ownership"`
	AnnualIncome         float64    `json:"annual_income"`
	EmpLength            string     `json:"emp_length"`
	DTI                  float64    `json:"dti"`
	FicoScore            int        `json:"fico_score"`
	TotalCreditLines     int        `json:"total_credit_lines"`
	RevolvingBalance     float64    `json:"revolving_balance"`
	RevolvingUtilization float64    `json:"revolving_utilization"`
	LoanStatus           LoanStatus `json:"loan_status"`
}

// DerivedRecord is the feature-engineered (golden table) form of a LoanRecord.
// EmpYears replaces the emp_length label in the golden table.
type DerivedRecord struct {
	Loan          LoanRecord `json:"loan"`
	EmpYears      int        `json:"emp_length"`
	FicoCategory  string     `json:"fico_category"`
	DTICategory   string     `json:"dti_category"`
	LogIncome     float64    `json:"log_income"`
	LogLoanAmount float64    `json:"log_loan_amount"`
}

// RawColumns is the header of the raw table
var RawColumns = []string{
	"loan_id",
	"loan_amount",
	"term",
	"interest_rate",
	"grade",
	"purpose",
	"home_ownership",
	"annual_income",
	"emp_length",
	"dti",
	"fico_score",
	"total_credit_lines",
	"revolving_balance",
	"revolving_utilization",
	"loan_status",
}

// GoldenColumns is the header of the golden table
var GoldenColumns = append(append([]string{}, RawColumns...),
	"fico_category",
	"dti_category",
	"log_income",
	"log_loan_amount",
)

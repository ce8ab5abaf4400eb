package service

import (
	"github.com/shopspring/decimal"
)

// EligibilityInput contains the applicant data required for the rule-based
// pre-screen. Monetary values are annual unless noted.
type EligibilityInput struct {
	AnnualIncome           decimal.Decimal
	MonthlyAnnuity         decimal.Decimal
	LoanAmount             decimal.Decimal
	PreviousOutstandingAmt decimal.Decimal
	CreditScore            int
	EmploymentYears        int
	PreviousLoanCount      int
}

// EligibilityOutput contains the pre-screen result. Reasons are stable
// machine-readable codes; Suggestions are human-readable remediation advice
// aligned index-for-index with Reasons.
type EligibilityOutput struct {
	Reasons     []string
	Suggestions []string
	Eligible    bool
}

// EligibilityChecker is a domain service applying rule-based lending
// heuristics before (or alongside) model scoring. It catches applications a
// lender would reject regardless of the model's probability estimate.
type EligibilityChecker struct {
	// MinCreditScore is the score below which an applicant is pre-screened out.
	MinCreditScore int
	// MaxDebtToIncome is the highest acceptable annualized annuity / income ratio.
	MaxDebtToIncome decimal.Decimal
	// MinEmploymentYears is the minimum acceptable employment history.
	MinEmploymentYears int
	// MaxLoanToIncomeMultiple caps the loan amount relative to annual income.
	MaxLoanToIncomeMultiple decimal.Decimal
	// MaxPreviousLoans caps the number of existing loans.
	MaxPreviousLoans int
	// MaxOutstandingToIncomeMultiple caps existing outstanding debt relative
	// to annual income.
	MaxOutstandingToIncomeMultiple decimal.Decimal
}

// NewEligibilityChecker creates a checker with the standard thresholds.
func NewEligibilityChecker() *EligibilityChecker {
	return &EligibilityChecker{
		MinCreditScore:                 650,
		MaxDebtToIncome:                decimal.NewFromFloat(0.5),
		MinEmploymentYears:             1,
		MaxLoanToIncomeMultiple:        decimal.NewFromInt(5),
		MaxPreviousLoans:               3,
		MaxOutstandingToIncomeMultiple: decimal.NewFromInt(2),
	}
}

// Check evaluates the applicant against each rule and collects every failing
// rule with its remediation suggestion. The applicant is eligible only when
// no rule fails.
func (c *EligibilityChecker) Check(input EligibilityInput) EligibilityOutput {
	reasons := make([]string, 0)
	suggestions := make([]string, 0)

	// Rule: credit score below the lending cutoff.
	if input.CreditScore < c.MinCreditScore {
		reasons = append(reasons, "low_credit_score")
		suggestions = append(suggestions,
			"Improve your credit score by paying all existing bills and EMIs on time without any delays.")
	}

	// Rule: proposed repayment too high for the declared income.
	annualAnnuity := input.MonthlyAnnuity.Mul(decimal.NewFromInt(12))
	dti := decimal.NewFromInt(1)
	if input.AnnualIncome.IsPositive() {
		dti = annualAnnuity.Div(input.AnnualIncome)
	}
	if dti.GreaterThan(c.MaxDebtToIncome) {
		reasons = append(reasons, "high_debt_to_income")
		suggestions = append(suggestions,
			"The proposed monthly payment is high for your current income. Consider reducing the loan amount or extending the tenure to lower the EMI.")
	}

	// Rule: short employment history.
	if input.EmploymentYears < c.MinEmploymentYears {
		reasons = append(reasons, "short_employment_history")
		suggestions = append(suggestions,
			"Lenders prefer applicants with a stable employment history of at least 1-2 years. Building a longer track record at your current job will help.")
	}

	// Rule: loan amount outsized relative to income.
	if input.LoanAmount.GreaterThan(input.AnnualIncome.Mul(c.MaxLoanToIncomeMultiple)) {
		reasons = append(reasons, "high_loan_to_income")
		suggestions = append(suggestions,
			"The requested loan amount is very high compared to your annual income.")
	}

	// Rule: too many existing loans.
	if input.PreviousLoanCount > c.MaxPreviousLoans {
		reasons = append(reasons, "too_many_existing_loans")
		suggestions = append(suggestions,
			"Closing one or more of your existing loans before applying will improve your repayment capacity.")
	}

	// Rule: existing outstanding debt outsized relative to income.
	if input.PreviousOutstandingAmt.GreaterThan(input.AnnualIncome.Mul(c.MaxOutstandingToIncomeMultiple)) {
		reasons = append(reasons, "high_existing_debt_burden")
		suggestions = append(suggestions,
			"Your existing outstanding loan amount is high compared to your income. Reducing this debt will significantly improve your eligibility.")
	}

	return EligibilityOutput{
		Eligible:    len(reasons) == 0,
		Reasons:     reasons,
		Suggestions: suggestions,
	}
}

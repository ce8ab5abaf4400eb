package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/credbureau/scoring-service/internal/domain/model"
)

// ScoreApplicantRequest is the input DTO for the ScoreApplicant use case.
type ScoreApplicantRequest struct {
	Features    map[string]float64 `json:"features"`
	ApplicantID string             `json:"applicant_id,omitempty"`
}

// ScoreApplicantResponse is the output DTO returned after scoring.
type ScoreApplicantResponse struct {
	ScoredAt    time.Time `json:"scored_at"`
	ScorecardID uuid.UUID `json:"scorecard_id"`
	ApplicantID string    `json:"applicant_id,omitempty"`
	Grade       string    `json:"grade"`
	Decision    string    `json:"decision"`
	Score       int       `json:"score"`
}

// CheckEligibilityRequest is the input DTO for the CheckEligibility use case.
type CheckEligibilityRequest struct {
	AnnualIncome           decimal.Decimal `json:"annual_income"`
	MonthlyAnnuity         decimal.Decimal `json:"monthly_annuity"`
	LoanAmount             decimal.Decimal `json:"loan_amount"`
	PreviousOutstandingAmt decimal.Decimal `json:"previous_outstanding_amount"`
	ApplicantID            string          `json:"applicant_id,omitempty"`
	CreditScore            int             `json:"credit_score"`
	EmploymentYears        int             `json:"employment_years"`
	PreviousLoanCount      int             `json:"previous_loan_count"`
}

// CheckEligibilityResponse is the output DTO for the eligibility pre-screen.
type CheckEligibilityResponse struct {
	Reasons     []string `json:"reasons"`
	Suggestions []string `json:"suggestions"`
	ApplicantID string   `json:"applicant_id,omitempty"`
	Eligible    bool     `json:"eligible"`
}

// FromScorecard maps a scored scorecard to the response DTO.
func FromScorecard(c *model.Scorecard) ScoreApplicantResponse {
	return ScoreApplicantResponse{
		ScorecardID: c.ID(),
		ApplicantID: c.ApplicantID(),
		Score:       c.Score().Value(),
		Grade:       c.Grade().String(),
		Decision:    c.Decision().String(),
		ScoredAt:    c.ScoredAt(),
	}
}

package usecase

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/credbureau/scoring-service/internal/application/dto"
	"github.com/credbureau/scoring-service/internal/domain/event"
	"github.com/credbureau/scoring-service/internal/domain/port"
	"github.com/credbureau/scoring-service/internal/domain/service"
)

// CheckEligibility is the use case for the rule-based lending pre-screen.
type CheckEligibility struct {
	checker   *service.EligibilityChecker
	publisher port.EventPublisher
	logger    *slog.Logger
}

// NewCheckEligibility creates a new CheckEligibility use case.
func NewCheckEligibility(
	checker *service.EligibilityChecker,
	publisher port.EventPublisher,
	logger *slog.Logger,
) *CheckEligibility {
	return &CheckEligibility{
		checker:   checker,
		publisher: publisher,
		logger:    logger,
	}
}

// Execute runs the pre-screen rules and publishes an ApplicantIneligible
// event when the applicant is rejected.
func (uc *CheckEligibility) Execute(ctx context.Context, req dto.CheckEligibilityRequest) (dto.CheckEligibilityResponse, error) {
	result := uc.checker.Check(service.EligibilityInput{
		CreditScore:            req.CreditScore,
		AnnualIncome:           req.AnnualIncome,
		MonthlyAnnuity:         req.MonthlyAnnuity,
		LoanAmount:             req.LoanAmount,
		PreviousOutstandingAmt: req.PreviousOutstandingAmt,
		EmploymentYears:        req.EmploymentYears,
		PreviousLoanCount:      req.PreviousLoanCount,
	})

	if !result.Eligible {
		evt := event.ApplicantIneligible{
			CheckID:     uuid.New(),
			ApplicantID: req.ApplicantID,
			Reasons:     result.Reasons,
			CheckedAt:   time.Now().UTC(),
		}
		if err := uc.publisher.Publish(ctx, evt); err != nil {
			uc.logger.Warn("failed to publish ineligibility event",
				slog.String("applicant_id", req.ApplicantID),
				slog.String("error", err.Error()),
			)
		}
	}

	uc.logger.Info("eligibility checked",
		slog.String("applicant_id", req.ApplicantID),
		slog.Bool("eligible", result.Eligible),
		slog.Int("failed_rules", len(result.Reasons)),
	)

	return dto.CheckEligibilityResponse{
		ApplicantID: req.ApplicantID,
		Eligible:    result.Eligible,
		Reasons:     result.Reasons,
		Suggestions: result.Suggestions,
	}, nil
}

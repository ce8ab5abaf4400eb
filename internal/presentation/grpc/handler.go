package grpc

import (
	"context"
	"log/slog"

	"github.com/shopspring/decimal"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/credbureau/scoring-service/internal/application/dto"
	"github.com/credbureau/scoring-service/internal/application/usecase"
	"github.com/credbureau/scoring-service/internal/domain/service"
)

// Compile-time assertion that ScoringServiceHandler implements ScoringServiceServer.
var _ ScoringServiceServer = (*ScoringServiceHandler)(nil)

// ScoringServiceHandler implements the gRPC ScoringServiceServer interface.
type ScoringServiceHandler struct {
	UnimplementedScoringServiceServer
	scoreApplicant   *usecase.ScoreApplicant
	checkEligibility *usecase.CheckEligibility
	logger           *slog.Logger
}

// NewScoringServiceHandler creates a new gRPC handler.
func NewScoringServiceHandler(
	scoreApplicant *usecase.ScoreApplicant,
	checkEligibility *usecase.CheckEligibility,
	logger *slog.Logger,
) *ScoringServiceHandler {
	return &ScoringServiceHandler{
		scoreApplicant:   scoreApplicant,
		checkEligibility: checkEligibility,
		logger:           logger,
	}
}

// Proto-aligned request/response message types.

// ScoreApplicantRequest represents the proto ScoreApplicantRequest message.
type ScoreApplicantRequest struct {
	ApplicantID string             `json:"applicant_id"`
	Features    map[string]float64 `json:"features"`
}

// ScoreApplicantResponse represents the proto ScoreApplicantResponse message.
type ScoreApplicantResponse struct {
	ScorecardID string `json:"scorecard_id"`
	ApplicantID string `json:"applicant_id"`
	Score       int32  `json:"score"`
	Grade       string `json:"grade"`
	Decision    string `json:"decision"`
}

// CheckEligibilityRequest represents the proto CheckEligibilityRequest message.
type CheckEligibilityRequest struct {
	ApplicantID            string `json:"applicant_id"`
	CreditScore            int32  `json:"credit_score"`
	AnnualIncome           string `json:"annual_income"`
	MonthlyAnnuity         string `json:"monthly_annuity"`
	LoanAmount             string `json:"loan_amount"`
	PreviousOutstandingAmt string `json:"previous_outstanding_amount"`
	EmploymentYears        int32  `json:"employment_years"`
	PreviousLoanCount      int32  `json:"previous_loan_count"`
}

// CheckEligibilityResponse represents the proto CheckEligibilityResponse message.
type CheckEligibilityResponse struct {
	ApplicantID string   `json:"applicant_id"`
	Eligible    bool     `json:"eligible"`
	Reasons     []string `json:"reasons"`
	Suggestions []string `json:"suggestions"`
}

// ScoreApplicant handles a scoring request.
func (h *ScoringServiceHandler) ScoreApplicant(ctx context.Context, req *ScoreApplicantRequest) (*ScoreApplicantResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	h.logger.Info("scoring applicant",
		slog.String("applicant_id", req.ApplicantID),
		slog.Int("feature_count", len(req.Features)),
	)

	result, err := h.scoreApplicant.Execute(ctx, dto.ScoreApplicantRequest{
		ApplicantID: req.ApplicantID,
		Features:    req.Features,
	})
	if err != nil {
		return nil, h.toStatusError(err, req.ApplicantID)
	}

	return &ScoreApplicantResponse{
		ScorecardID: result.ScorecardID.String(),
		ApplicantID: result.ApplicantID,
		Score:       int32(result.Score),
		Grade:       result.Grade,
		Decision:    result.Decision,
	}, nil
}

// CheckEligibility handles a pre-screen request.
func (h *ScoringServiceHandler) CheckEligibility(ctx context.Context, req *CheckEligibilityRequest) (*CheckEligibilityResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	income, err := decimal.NewFromString(req.AnnualIncome)
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "invalid annual_income: %v", err)
	}
	annuity, err := decimal.NewFromString(req.MonthlyAnnuity)
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "invalid monthly_annuity: %v", err)
	}
	loanAmount, err := decimal.NewFromString(req.LoanAmount)
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "invalid loan_amount: %v", err)
	}
	outstanding := decimal.Zero
	if req.PreviousOutstandingAmt != "" {
		outstanding, err = decimal.NewFromString(req.PreviousOutstandingAmt)
		if err != nil {
			return nil, status.Errorf(codes.InvalidArgument, "invalid previous_outstanding_amount: %v", err)
		}
	}

	result, err := h.checkEligibility.Execute(ctx, dto.CheckEligibilityRequest{
		ApplicantID:            req.ApplicantID,
		CreditScore:            int(req.CreditScore),
		AnnualIncome:           income,
		MonthlyAnnuity:         annuity,
		LoanAmount:             loanAmount,
		PreviousOutstandingAmt: outstanding,
		EmploymentYears:        int(req.EmploymentYears),
		PreviousLoanCount:      int(req.PreviousLoanCount),
	})
	if err != nil {
		h.logger.Error("eligibility check failed",
			slog.String("applicant_id", req.ApplicantID),
			slog.String("error", err.Error()),
		)
		return nil, status.Error(codes.Internal, "internal error")
	}

	return &CheckEligibilityResponse{
		ApplicantID: result.ApplicantID,
		Eligible:    result.Eligible,
		Reasons:     result.Reasons,
		Suggestions: result.Suggestions,
	}, nil
}

// toStatusError maps the domain error taxonomy onto gRPC status codes.
func (h *ScoringServiceHandler) toStatusError(err error, applicantID string) error {
	kind, ok := service.KindOf(err)
	if !ok {
		h.logger.Error("scoring failed",
			slog.String("applicant_id", applicantID),
			slog.String("error", err.Error()),
		)
		return status.Error(codes.Internal, "internal error")
	}

	switch kind {
	case service.ErrorKindInvalidInput:
		return status.Error(codes.InvalidArgument, err.Error())
	case service.ErrorKindModelUnavailable:
		return status.Error(codes.Unavailable, err.Error())
	case service.ErrorKindInvalidModelOutput:
		h.logger.Error("model produced invalid output",
			slog.String("applicant_id", applicantID),
			slog.String("error", err.Error()),
		)
		return status.Error(codes.Internal, err.Error())
	default:
		return status.Error(codes.Internal, err.Error())
	}
}

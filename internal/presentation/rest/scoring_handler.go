package rest

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/credbureau/scoring-service/internal/application/dto"
	"github.com/credbureau/scoring-service/internal/application/usecase"
	"github.com/credbureau/scoring-service/internal/domain/service"
)

// ScoringHandler exposes the scoring and eligibility operations over JSON.
// The response contract is uniform: either {"score": N, ...} or
// {"error": {"kind": ..., "message": ...}}.
type ScoringHandler struct {
	scoreApplicant   *usecase.ScoreApplicant
	checkEligibility *usecase.CheckEligibility
	logger           *slog.Logger
}

// NewScoringHandler creates a new scoring handler.
func NewScoringHandler(
	scoreApplicant *usecase.ScoreApplicant,
	checkEligibility *usecase.CheckEligibility,
	logger *slog.Logger,
) *ScoringHandler {
	return &ScoringHandler{
		scoreApplicant:   scoreApplicant,
		checkEligibility: checkEligibility,
		logger:           logger,
	}
}

// RegisterRoutes registers scoring endpoints on the provided ServeMux.
func (h *ScoringHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("POST /v1/score", h.Score)
	mux.HandleFunc("POST /v1/eligibility", h.Eligibility)
}

type scoreRequestBody struct {
	Features    map[string]any `json:"features"`
	ApplicantID string         `json:"applicant_id"`
}

type scoreResponseBody struct {
	Score       int    `json:"score"`
	Grade       string `json:"grade"`
	Decision    string `json:"decision"`
	ScorecardID string `json:"scorecard_id"`
	ApplicantID string `json:"applicant_id,omitempty"`
}

type errorBody struct {
	Error errorDetail `json:"error"`
}

type errorDetail struct {
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

// Score handles POST /v1/score. The feature object is decoded loosely so
// that non-numeric values can be rejected with the offending field name
// instead of a generic decode error.
func (h *ScoringHandler) Score(w http.ResponseWriter, r *http.Request) {
	var body scoreRequestBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		h.writeError(w, service.NewInvalidInput("malformed request body: %v", err))
		return
	}
	if body.Features == nil {
		h.writeError(w, service.NewInvalidInput("features object is required"))
		return
	}

	features, err := toFeatureRecord(body.Features)
	if err != nil {
		h.writeError(w, err)
		return
	}

	result, err := h.scoreApplicant.Execute(r.Context(), dto.ScoreApplicantRequest{
		ApplicantID: body.ApplicantID,
		Features:    features,
	})
	if err != nil {
		h.writeError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, scoreResponseBody{
		Score:       result.Score,
		Grade:       result.Grade,
		Decision:    result.Decision,
		ScorecardID: result.ScorecardID.String(),
		ApplicantID: result.ApplicantID,
	})
}

type eligibilityRequestBody struct {
	ApplicantID            string          `json:"applicant_id"`
	AnnualIncome           decimal.Decimal `json:"annual_income"`
	MonthlyAnnuity         decimal.Decimal `json:"monthly_annuity"`
	LoanAmount             decimal.Decimal `json:"loan_amount"`
	PreviousOutstandingAmt decimal.Decimal `json:"previous_outstanding_amount"`
	CreditScore            int             `json:"credit_score"`
	EmploymentYears        int             `json:"employment_years"`
	PreviousLoanCount      int             `json:"previous_loan_count"`
}

// Eligibility handles POST /v1/eligibility.
func (h *ScoringHandler) Eligibility(w http.ResponseWriter, r *http.Request) {
	var body eligibilityRequestBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		h.writeError(w, service.NewInvalidInput("malformed request body: %v", err))
		return
	}

	result, err := h.checkEligibility.Execute(r.Context(), dto.CheckEligibilityRequest{
		ApplicantID:            body.ApplicantID,
		CreditScore:            body.CreditScore,
		AnnualIncome:           body.AnnualIncome,
		MonthlyAnnuity:         body.MonthlyAnnuity,
		LoanAmount:             body.LoanAmount,
		PreviousOutstandingAmt: body.PreviousOutstandingAmt,
		EmploymentYears:        body.EmploymentYears,
		PreviousLoanCount:      body.PreviousLoanCount,
	})
	if err != nil {
		h.writeError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, result)
}

// toFeatureRecord converts the loosely decoded feature object, rejecting the
// first non-numeric value in sorted field order.
func toFeatureRecord(raw map[string]any) (map[string]float64, error) {
	names := make([]string, 0, len(raw))
	for name := range raw {
		names = append(names, name)
	}
	sort.Strings(names)

	features := make(map[string]float64, len(raw))
	for _, name := range names {
		value, ok := raw[name].(float64)
		if !ok {
			return nil, service.NewInvalidInput("feature %q is not numeric", name)
		}
		features[name] = value
	}
	return features, nil
}

func (h *ScoringHandler) writeError(w http.ResponseWriter, err error) {
	kind, ok := service.KindOf(err)
	if !ok {
		h.logger.Error("scoring request failed", slog.String("error", err.Error()))
		h.writeJSON(w, http.StatusInternalServerError, errorBody{
			Error: errorDetail{Kind: "Internal", Message: "internal error"},
		})
		return
	}

	var code int
	switch kind {
	case service.ErrorKindInvalidInput:
		code = http.StatusBadRequest
	case service.ErrorKindModelUnavailable:
		code = http.StatusServiceUnavailable
	case service.ErrorKindInvalidModelOutput:
		h.logger.Error("model produced invalid output", slog.String("error", err.Error()))
		code = http.StatusInternalServerError
	default:
		code = http.StatusInternalServerError
	}

	message := err.Error()
	var se *service.ScoringError
	if errors.As(err, &se) {
		message = se.Message
	}

	h.writeJSON(w, code, errorBody{
		Error: errorDetail{Kind: string(kind), Message: message},
	})
}

func (h *ScoringHandler) writeJSON(w http.ResponseWriter, code int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		h.logger.Error("failed to encode response", slog.String("error", err.Error()))
	}
}

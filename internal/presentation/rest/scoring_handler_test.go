package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"math"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/credbureau/scoring-service/internal/application/usecase"
	"github.com/credbureau/scoring-service/internal/domain/service"
	"github.com/credbureau/scoring-service/pkg/events"
	"github.com/credbureau/scoring-service/pkg/testutil"
)

type mockModelClient struct {
	probability float64
	predictErr  error
	healthErr   error
}

func (m *mockModelClient) Predict(_ context.Context, _ service.FeatureRecord) (float64, error) {
	if m.predictErr != nil {
		return 0, m.predictErr
	}
	return m.probability, nil
}

func (m *mockModelClient) Health(_ context.Context) error {
	return m.healthErr
}

type mockEventPublisher struct {
	published []events.DomainEvent
	err       error
}

func (m *mockEventPublisher) Publish(_ context.Context, evts ...events.DomainEvent) error {
	if m.err != nil {
		return m.err
	}
	m.published = append(m.published, evts...)
	return nil
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
}

func newTestMux(t *testing.T, model *mockModelClient) *http.ServeMux {
	t.Helper()

	scoring, err := service.NewScoringService(service.ScoringConfig{
		ExpectedFeatures: testutil.DefaultFeatureNames(),
		ScoreMin:         300,
		ScoreMax:         900,
	})
	require.NoError(t, err)

	logger := testLogger()
	publisher := &mockEventPublisher{}
	scoreApplicant := usecase.NewScoreApplicant(scoring, model, publisher, logger)
	checkEligibility := usecase.NewCheckEligibility(service.NewEligibilityChecker(), publisher, logger)

	mux := http.NewServeMux()
	NewScoringHandler(scoreApplicant, checkEligibility, logger).RegisterRoutes(mux)
	return mux
}

func postJSON(mux *http.ServeMux, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) errorBody {
	t.Helper()
	var body errorBody
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	return body
}

func TestScoringHandlerScore(t *testing.T) {
	t.Run("scores a valid request", func(t *testing.T) {
		mux := newTestMux(t, &mockModelClient{probability: 0.1})

		rec := postJSON(mux, "/v1/score",
			`{"applicant_id":"APP-2024-0001","features":{"income":5000,"debt_ratio":0.2}}`)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

		var body scoreResponseBody
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
		assert.Equal(t, 840, body.Score)
		assert.Equal(t, "EXCELLENT", body.Grade)
		assert.Equal(t, "APPROVE", body.Decision)
		assert.Equal(t, "APP-2024-0001", body.ApplicantID)
		assert.NotEmpty(t, body.ScorecardID)
	})

	t.Run("rejects a missing feature with 400", func(t *testing.T) {
		mux := newTestMux(t, &mockModelClient{probability: 0.1})

		rec := postJSON(mux, "/v1/score", `{"features":{"income":5000}}`)

		require.Equal(t, http.StatusBadRequest, rec.Code)
		body := decodeError(t, rec)
		assert.Equal(t, "InvalidInput", body.Error.Kind)
		assert.Equal(t, `missing feature "debt_ratio"`, body.Error.Message)
	})

	t.Run("rejects a non-numeric feature with 400", func(t *testing.T) {
		mux := newTestMux(t, &mockModelClient{probability: 0.1})

		rec := postJSON(mux, "/v1/score",
			`{"features":{"income":"lots","debt_ratio":0.2}}`)

		require.Equal(t, http.StatusBadRequest, rec.Code)
		body := decodeError(t, rec)
		assert.Equal(t, "InvalidInput", body.Error.Kind)
		assert.Equal(t, `feature "income" is not numeric`, body.Error.Message)
	})

	t.Run("rejects a missing features object with 400", func(t *testing.T) {
		mux := newTestMux(t, &mockModelClient{probability: 0.1})

		rec := postJSON(mux, "/v1/score", `{"applicant_id":"APP-2024-0001"}`)

		require.Equal(t, http.StatusBadRequest, rec.Code)
		body := decodeError(t, rec)
		assert.Equal(t, "InvalidInput", body.Error.Kind)
		assert.Equal(t, "features object is required", body.Error.Message)
	})

	t.Run("rejects malformed JSON with 400", func(t *testing.T) {
		mux := newTestMux(t, &mockModelClient{probability: 0.1})

		rec := postJSON(mux, "/v1/score", `{not json`)

		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "InvalidInput", decodeError(t, rec).Error.Kind)
	})

	t.Run("maps model failure to 503", func(t *testing.T) {
		mux := newTestMux(t, &mockModelClient{predictErr: assert.AnError})

		rec := postJSON(mux, "/v1/score",
			`{"features":{"income":5000,"debt_ratio":0.2}}`)

		require.Equal(t, http.StatusServiceUnavailable, rec.Code)
		body := decodeError(t, rec)
		assert.Equal(t, "ModelUnavailable", body.Error.Kind)
		assert.Contains(t, body.Error.Message, "prediction failed")
	})

	t.Run("maps non-finite prediction to 500", func(t *testing.T) {
		mux := newTestMux(t, &mockModelClient{probability: math.NaN()})

		rec := postJSON(mux, "/v1/score",
			`{"features":{"income":5000,"debt_ratio":0.2}}`)

		require.Equal(t, http.StatusInternalServerError, rec.Code)
		body := decodeError(t, rec)
		assert.Equal(t, "InvalidModelOutput", body.Error.Kind)
		assert.Equal(t, "model returned NaN", body.Error.Message)
	})
}

func TestScoringHandlerEligibility(t *testing.T) {
	t.Run("approves an eligible applicant", func(t *testing.T) {
		mux := newTestMux(t, &mockModelClient{})

		rec := postJSON(mux, "/v1/eligibility", `{
			"applicant_id": "APP-2024-0001",
			"annual_income": "60000",
			"monthly_annuity": "1500",
			"loan_amount": "100000",
			"credit_score": 720,
			"employment_years": 4,
			"previous_loan_count": 1
		}`)

		require.Equal(t, http.StatusOK, rec.Code)

		var body struct {
			Eligible bool     `json:"eligible"`
			Reasons  []string `json:"reasons"`
		}
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
		assert.True(t, body.Eligible)
		assert.Empty(t, body.Reasons)
	})

	t.Run("returns failing rules for an ineligible applicant", func(t *testing.T) {
		mux := newTestMux(t, &mockModelClient{})

		rec := postJSON(mux, "/v1/eligibility", `{
			"applicant_id": "APP-2024-0002",
			"annual_income": "20000",
			"monthly_annuity": "1500",
			"loan_amount": "150000",
			"previous_outstanding_amount": "50000",
			"credit_score": 580,
			"employment_years": 0,
			"previous_loan_count": 5
		}`)

		require.Equal(t, http.StatusOK, rec.Code)

		var body struct {
			Eligible    bool     `json:"eligible"`
			Reasons     []string `json:"reasons"`
			Suggestions []string `json:"suggestions"`
		}
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
		assert.False(t, body.Eligible)
		assert.Contains(t, body.Reasons, "low_credit_score")
		assert.Contains(t, body.Reasons, "too_many_existing_loans")
		assert.Contains(t, body.Reasons, "high_existing_debt_burden")
		assert.Len(t, body.Suggestions, len(body.Reasons))
	})

	t.Run("rejects malformed JSON with 400", func(t *testing.T) {
		mux := newTestMux(t, &mockModelClient{})

		rec := postJSON(mux, "/v1/eligibility", `{broken`)

		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "InvalidInput", decodeError(t, rec).Error.Kind)
	})
}

func TestHealthHandler(t *testing.T) {
	t.Run("healthz is always healthy", func(t *testing.T) {
		mux := http.NewServeMux()
		NewHealthHandler(&mockModelClient{}, testLogger()).RegisterRoutes(mux)

		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

		require.Equal(t, http.StatusOK, rec.Code)

		var body HealthResponse
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
		assert.Equal(t, "healthy", body.Status)
		assert.Equal(t, "scoring-service", body.Service)
	})

	t.Run("readyz follows the model health check", func(t *testing.T) {
		mux := http.NewServeMux()
		NewHealthHandler(&mockModelClient{healthErr: assert.AnError}, testLogger()).RegisterRoutes(mux)

		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/readyz", nil))

		require.Equal(t, http.StatusServiceUnavailable, rec.Code)

		var body StatusResponse
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
		assert.Equal(t, "error", body.Status)
		assert.Equal(t, "unavailable", body.Checks["model"])
	})

	t.Run("status reports ready when the model is reachable", func(t *testing.T) {
		mux := http.NewServeMux()
		NewHealthHandler(&mockModelClient{}, testLogger()).RegisterRoutes(mux)

		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/status", nil))

		require.Equal(t, http.StatusOK, rec.Code)

		var body StatusResponse
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
		assert.Equal(t, "ready", body.Status)
		assert.Equal(t, "ok", body.Checks["model"])
	})
}

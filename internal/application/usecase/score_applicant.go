package usecase

import (
	"context"
	"log/slog"

	"github.com/credbureau/scoring-service/internal/application/dto"
	"github.com/credbureau/scoring-service/internal/domain/model"
	"github.com/credbureau/scoring-service/internal/domain/port"
	"github.com/credbureau/scoring-service/internal/domain/service"
)

// ScoreApplicant is the use case for scoring a single applicant. Each call is
// a stateless validate-predict-map transaction; the resulting scorecard is
// returned to the caller and discarded.
type ScoreApplicant struct {
	scoring   *service.ScoringService
	model     port.ModelClient
	publisher port.EventPublisher
	logger    *slog.Logger
}

// NewScoreApplicant creates a new ScoreApplicant use case.
func NewScoreApplicant(
	scoring *service.ScoringService,
	model port.ModelClient,
	publisher port.EventPublisher,
	logger *slog.Logger,
) *ScoreApplicant {
	return &ScoreApplicant{
		scoring:   scoring,
		model:     model,
		publisher: publisher,
		logger:    logger,
	}
}

// Execute validates the feature record, obtains a prediction from the model
// client, and maps it onto a credit score. Failures are always typed
// *service.ScoringError; the model's internal errors never reach the caller.
func (uc *ScoreApplicant) Execute(ctx context.Context, req dto.ScoreApplicantRequest) (dto.ScoreApplicantResponse, error) {
	card := model.NewScorecard(req.ApplicantID)

	var probability float64
	predict := func(ctx context.Context, features service.FeatureRecord) (float64, error) {
		p, err := uc.model.Predict(ctx, features)
		probability = p
		return p, err
	}

	score, err := uc.scoring.Score(ctx, service.FeatureRecord(req.Features), predict)
	if err != nil {
		if kind, ok := service.KindOf(err); ok && kind == service.ErrorKindInvalidModelOutput {
			// An unmappable prediction is an integration bug; alert on it
			// rather than letting it disappear into the error response.
			card.RejectModelOutput(err.Error())
			uc.publishEvents(ctx, card)
		}
		return dto.ScoreApplicantResponse{}, err
	}

	if err := card.Apply(probability, score); err != nil {
		return dto.ScoreApplicantResponse{}, service.NewInvalidModelOutput("scorecard rejected score: %v", err)
	}

	uc.logger.Info("applicant scored",
		slog.String("scorecard_id", card.ID().String()),
		slog.Int("score", card.Score().Value()),
		slog.String("grade", card.Grade().String()),
	)

	uc.publishEvents(ctx, card)

	return dto.FromScorecard(card), nil
}

// publishEvents drains the scorecard's events. A computed score is never
// failed because the broker is down; publish errors are logged and dropped.
func (uc *ScoreApplicant) publishEvents(ctx context.Context, card *model.Scorecard) {
	evts := card.ClearEvents()
	if len(evts) == 0 {
		return
	}
	if err := uc.publisher.Publish(ctx, evts...); err != nil {
		uc.logger.Warn("failed to publish scoring events",
			slog.String("scorecard_id", card.ID().String()),
			slog.String("error", err.Error()),
		)
	}
}

package usecase

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/ressKim-io/sentiment-api/internal/domain/entity"
	"github.com/ressKim-io/sentiment-api/internal/domain/service"
)

// Error definitions for predict usecase
var (
	ErrInvalidRequest = errors.New("invalid request")
)

// PredictInput represents the input for a prediction. Text is a pointer so
// that a missing field is rejected while an empty string is accepted.
type PredictInput struct {
	Text *string `json:"text" binding:"required"`
}

// PredictOutput represents the output for a prediction
type PredictOutput struct {
	Sentiment entity.Sentiment `json:"sentiment"`
}

// ModelInfoOutput describes the loaded artifacts
type ModelInfoOutput struct {
	VectorizerType string `json:"vectorizer_type"`
	ClassifierType string `json:"classifier_type"`
	NumFeatures    int    `json:"num_features"`
	Classes        []int  `json:"classes"`
	PositiveClass  int    `json:"positive_class"`
}

// PredictUsecase defines the interface for sentiment prediction
type PredictUsecase interface {
	Predict(ctx context.Context, input *PredictInput) (*PredictOutput, error)
	ModelInfo(ctx context.Context) *ModelInfoOutput
}

type predictUsecase struct {
	vectorizer service.Vectorizer
	classifier service.Predictor
	recorder   service.PredictionRecorder
	logger     *zap.Logger
}

// NewPredictUsecase creates a new predict usecase. recorder may be nil.
func NewPredictUsecase(vectorizer service.Vectorizer, classifier service.Predictor, recorder service.PredictionRecorder, logger *zap.Logger) PredictUsecase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &predictUsecase{
		vectorizer: vectorizer,
		classifier: classifier,
		recorder:   recorder,
		logger:     logger,
	}
}

func (u *predictUsecase) Predict(_ context.Context, input *PredictInput) (*PredictOutput, error) {
	if input == nil || input.Text == nil {
		return nil, ErrInvalidRequest
	}

	start := time.Now()
	features := u.vectorizer.Transform(*input.Text)
	class := u.classifier.Predict(features)
	sentiment := entity.SentimentFromClass(class)
	elapsed := time.Since(start)

	if u.recorder != nil {
		u.recorder.ObservePrediction(sentiment, elapsed)
	}
	u.logger.Debug("Prediction completed",
		zap.Int("class", class),
		zap.String("sentiment", sentiment.String()),
		zap.Int("features", features.NNZ()),
		zap.Duration("latency", elapsed),
	)

	return &PredictOutput{Sentiment: sentiment}, nil
}

func (u *predictUsecase) ModelInfo(_ context.Context) *ModelInfoOutput {
	return &ModelInfoOutput{
		VectorizerType: u.vectorizer.Type(),
		ClassifierType: u.classifier.Type(),
		NumFeatures:    u.vectorizer.NumFeatures(),
		Classes:        u.classifier.Classes(),
		PositiveClass:  entity.PositiveClass,
	}
}

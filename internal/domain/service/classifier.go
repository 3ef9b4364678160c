package service

import (
	"time"

	"github.com/ressKim-io/sentiment-api/internal/domain/entity"
)

// Vectorizer turns raw text into a feature vector
type Vectorizer interface {
	// Transform converts a single text. It never fails: text with no known
	// terms yields the zero vector.
	Transform(text string) entity.FeatureVector

	// NumFeatures returns the width of the feature space
	NumFeatures() int

	// Type returns the artifact type the vectorizer was loaded from
	Type() string
}

// Predictor maps a feature vector to a class id
type Predictor interface {
	// Predict returns one of Classes()
	Predict(x entity.FeatureVector) int

	// Classes returns the class ids in model order
	Classes() []int

	// NumFeatures returns the input width the model expects
	NumFeatures() int

	// Type returns the artifact type the model was loaded from
	Type() string
}

// PredictionRecorder observes completed predictions
type PredictionRecorder interface {
	ObservePrediction(sentiment entity.Sentiment, elapsed time.Duration)
}

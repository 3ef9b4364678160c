package model

import (
	"math"

	"github.com/ressKim-io/sentiment-api/internal/domain/entity"
)

// Linear classifier artifact types
const (
	TypeLogisticRegression = "logistic_regression"
	TypeLinearSVC          = "linear_svc"
	TypeSGDClassifier      = "sgd_classifier"
)

// LinearClassifier scores each class as coef·x + intercept.
// A binary model stores a single row scoring the second class.
type LinearClassifier struct {
	kind      string
	classes   []int
	coef      [][]float64
	intercept []float64
	nFeatures int
}

// NewLinearClassifier validates art and builds a linear classifier from it
func NewLinearClassifier(art *ClassifierArtifact) (*LinearClassifier, error) {
	if err := checkClasses(art.Classes); err != nil {
		return nil, err
	}

	rows := len(art.Classes)
	if rows == 2 {
		rows = 1
	}
	if len(art.Coef) != rows {
		return nil, invalidf("coef has %d rows, want %d for %d classes", len(art.Coef), rows, len(art.Classes))
	}
	if len(art.Intercept) != rows {
		return nil, invalidf("intercept has %d values, want %d", len(art.Intercept), rows)
	}
	if err := checkMatrix("coef", art.Coef, art.NumFeatures); err != nil {
		return nil, err
	}

	return &LinearClassifier{
		kind:      art.Type,
		classes:   art.Classes,
		coef:      art.Coef,
		intercept: art.Intercept,
		nFeatures: art.NumFeatures,
	}, nil
}

// Predict returns the class with the highest decision score
func (c *LinearClassifier) Predict(x entity.FeatureVector) int {
	if len(c.coef) == 1 {
		if x.Dot(c.coef[0])+c.intercept[0] > 0 {
			return c.classes[1]
		}
		return c.classes[0]
	}

	best, bestScore := 0, math.Inf(-1)
	for k, w := range c.coef {
		if s := x.Dot(w) + c.intercept[k]; s > bestScore {
			best, bestScore = k, s
		}
	}
	return c.classes[best]
}

// Classes returns the class ids in model order
func (c *LinearClassifier) Classes() []int {
	return append([]int(nil), c.classes...)
}

// NumFeatures returns the expected input width
func (c *LinearClassifier) NumFeatures() int {
	return c.nFeatures
}

// Type returns the artifact type
func (c *LinearClassifier) Type() string {
	return c.kind
}

func checkClasses(classes []int) error {
	if len(classes) < 2 {
		return invalidf("need at least 2 classes, got %d", len(classes))
	}
	seen := make(map[int]bool, len(classes))
	for _, cls := range classes {
		if seen[cls] {
			return invalidf("class %d listed twice", cls)
		}
		seen[cls] = true
	}
	return nil
}

func checkMatrix(name string, m [][]float64, width int) error {
	if width <= 0 {
		return invalidf("n_features must be positive, got %d", width)
	}
	for i, row := range m {
		if len(row) != width {
			return invalidf("%s row %d has %d values, want %d", name, i, len(row), width)
		}
	}
	return nil
}

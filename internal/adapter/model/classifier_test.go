package model

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ressKim-io/sentiment-api/internal/domain/entity"
)

func vector(dim int, idx []int, vals []float64) entity.FeatureVector {
	return entity.FeatureVector{Dim: dim, Indices: idx, Values: vals}
}

func TestLinearClassifier_Predict(t *testing.T) {
	t.Run("binary uses sign of decision score", func(t *testing.T) {
		clf, err := NewLinearClassifier(&ClassifierArtifact{
			Type:        TypeLogisticRegression,
			Classes:     []int{0, 1},
			NumFeatures: 2,
			Coef:        [][]float64{{1, -1}},
			Intercept:   []float64{0},
		})
		require.NoError(t, err)

		assert.Equal(t, 1, clf.Predict(vector(2, []int{0}, []float64{1})))
		assert.Equal(t, 0, clf.Predict(vector(2, []int{1}, []float64{1})))
		// zero score is not positive
		assert.Equal(t, 0, clf.Predict(vector(2, nil, nil)))
	})

	t.Run("binary keeps artifact class ids", func(t *testing.T) {
		clf, err := NewLinearClassifier(&ClassifierArtifact{
			Type:        TypeLinearSVC,
			Classes:     []int{-1, 1},
			NumFeatures: 1,
			Coef:        [][]float64{{1}},
			Intercept:   []float64{-0.5},
		})
		require.NoError(t, err)

		assert.Equal(t, -1, clf.Predict(vector(1, nil, nil)))
		assert.Equal(t, 1, clf.Predict(vector(1, []int{0}, []float64{1})))
	})

	t.Run("multiclass takes argmax", func(t *testing.T) {
		clf, err := NewLinearClassifier(&ClassifierArtifact{
			Type:        TypeSGDClassifier,
			Classes:     []int{0, 1, 2},
			NumFeatures: 2,
			Coef:        [][]float64{{1, 0}, {0, 1}, {0.5, 0.5}},
			Intercept:   []float64{0, 0, 0.1},
		})
		require.NoError(t, err)

		assert.Equal(t, 0, clf.Predict(vector(2, []int{0}, []float64{1})))
		assert.Equal(t, 1, clf.Predict(vector(2, []int{1}, []float64{1})))
		assert.Equal(t, 2, clf.Predict(vector(2, []int{0, 1}, []float64{1, 1})))
		assert.Equal(t, []int{0, 1, 2}, clf.Classes())
	})
}

func TestNewLinearClassifier_Invalid(t *testing.T) {
	tests := []struct {
		name string
		art  ClassifierArtifact
	}{
		{name: "single class", art: ClassifierArtifact{Classes: []int{1}, NumFeatures: 1, Coef: [][]float64{{1}}, Intercept: []float64{0}}},
		{name: "duplicate classes", art: ClassifierArtifact{Classes: []int{1, 1}, NumFeatures: 1, Coef: [][]float64{{1}}, Intercept: []float64{0}}},
		{name: "too many rows for binary", art: ClassifierArtifact{Classes: []int{0, 1}, NumFeatures: 1, Coef: [][]float64{{1}, {2}}, Intercept: []float64{0, 0}}},
		{name: "intercept length", art: ClassifierArtifact{Classes: []int{0, 1}, NumFeatures: 1, Coef: [][]float64{{1}}}},
		{name: "row width", art: ClassifierArtifact{Classes: []int{0, 1}, NumFeatures: 2, Coef: [][]float64{{1}}, Intercept: []float64{0}}},
		{name: "no features", art: ClassifierArtifact{Classes: []int{0, 1}, Coef: [][]float64{{}}, Intercept: []float64{0}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.art.Type = TypeLogisticRegression
			_, err := NewLinearClassifier(&tt.art)

			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidArtifact))
		})
	}
}

func TestNaiveBayes_Predict(t *testing.T) {
	art := ClassifierArtifact{
		Type:           TypeMultinomialNB,
		Classes:        []int{0, 1},
		NumFeatures:    2,
		ClassLogPrior:  []float64{-0.1, -2.3},
		FeatureLogProb: [][]float64{{-2, -0.2}, {-0.2, -2}},
	}

	t.Run("multinomial adds prior", func(t *testing.T) {
		nb, err := NewNaiveBayes(&art)
		require.NoError(t, err)

		assert.Equal(t, 1, nb.Predict(vector(2, []int{0}, []float64{3})))
		assert.Equal(t, 0, nb.Predict(vector(2, []int{1}, []float64{1})))
		// prior decides the empty document
		assert.Equal(t, 0, nb.Predict(vector(2, nil, nil)))
	})

	t.Run("complement ignores prior", func(t *testing.T) {
		c := art
		c.Type = TypeComplementNB
		c.ClassLogPrior = []float64{-5, 0}
		nb, err := NewNaiveBayes(&c)
		require.NoError(t, err)

		assert.Equal(t, 0, nb.Predict(vector(2, []int{1}, []float64{1})))
		// ties go to the first class
		assert.Equal(t, 0, nb.Predict(vector(2, nil, nil)))
	})

	t.Run("rejects mismatched prior", func(t *testing.T) {
		bad := art
		bad.ClassLogPrior = []float64{-1}

		_, err := NewNaiveBayes(&bad)
		assert.True(t, errors.Is(err, ErrInvalidArtifact))
	})

	t.Run("rejects mismatched rows", func(t *testing.T) {
		bad := art
		bad.FeatureLogProb = [][]float64{{-1, -1}}

		_, err := NewNaiveBayes(&bad)
		assert.True(t, errors.Is(err, ErrInvalidArtifact))
	})
}

package model

import (
	"math"

	"github.com/ressKim-io/sentiment-api/internal/domain/entity"
)

// Naive Bayes artifact types
const (
	TypeMultinomialNB = "multinomial_nb"
	TypeComplementNB  = "complement_nb"
)

// NaiveBayes picks the class with the highest joint log likelihood
type NaiveBayes struct {
	kind           string
	classes        []int
	classLogPrior  []float64
	featureLogProb [][]float64
	nFeatures      int
}

// NewNaiveBayes validates art and builds a naive Bayes classifier from it
func NewNaiveBayes(art *ClassifierArtifact) (*NaiveBayes, error) {
	if err := checkClasses(art.Classes); err != nil {
		return nil, err
	}
	if len(art.ClassLogPrior) != len(art.Classes) {
		return nil, invalidf("class_log_prior has %d values for %d classes", len(art.ClassLogPrior), len(art.Classes))
	}
	if len(art.FeatureLogProb) != len(art.Classes) {
		return nil, invalidf("feature_log_prob has %d rows for %d classes", len(art.FeatureLogProb), len(art.Classes))
	}
	if err := checkMatrix("feature_log_prob", art.FeatureLogProb, art.NumFeatures); err != nil {
		return nil, err
	}

	return &NaiveBayes{
		kind:           art.Type,
		classes:        art.Classes,
		classLogPrior:  art.ClassLogPrior,
		featureLogProb: art.FeatureLogProb,
		nFeatures:      art.NumFeatures,
	}, nil
}

// Predict returns the most likely class. Ties go to the earlier class.
func (nb *NaiveBayes) Predict(x entity.FeatureVector) int {
	best, bestScore := 0, math.Inf(-1)
	for k, row := range nb.featureLogProb {
		score := x.Dot(row)
		// complement NB weights are already normalized against the other classes
		if nb.kind != TypeComplementNB {
			score += nb.classLogPrior[k]
		}
		if score > bestScore {
			best, bestScore = k, score
		}
	}
	return nb.classes[best]
}

// Classes returns the class ids in model order
func (nb *NaiveBayes) Classes() []int {
	return append([]int(nil), nb.classes...)
}

// NumFeatures returns the expected input width
func (nb *NaiveBayes) NumFeatures() int {
	return nb.nFeatures
}

// Type returns the artifact type
func (nb *NaiveBayes) Type() string {
	return nb.kind
}

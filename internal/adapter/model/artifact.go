package model

import (
	"encoding/json"
	"os"

	"github.com/cockroachdb/errors"

	"github.com/ressKim-io/sentiment-api/internal/domain/service"
)

// VectorizerArtifact is the on-disk form of a fitted text vectorizer.
// scripts/export_artifacts.py writes it from the training pickle.
type VectorizerArtifact struct {
	Type         string         `json:"type"`
	Lowercase    bool           `json:"lowercase"`
	StripAccents string         `json:"strip_accents"`
	TokenPattern string         `json:"token_pattern"`
	NgramRange   [2]int         `json:"ngram_range"`
	StopWords    []string       `json:"stop_words"`
	Vocabulary   map[string]int `json:"vocabulary"`
	IDF          []float64      `json:"idf"`
	Norm         string         `json:"norm"`
	UseIDF       bool           `json:"use_idf"`
	SublinearTF  bool           `json:"sublinear_tf"`
	Binary       bool           `json:"binary"`
}

// ClassifierArtifact is the on-disk form of a fitted classifier.
// Linear models fill Coef and Intercept; naive Bayes models fill
// ClassLogPrior and FeatureLogProb.
type ClassifierArtifact struct {
	Type           string      `json:"type"`
	Classes        []int       `json:"classes"`
	NumFeatures    int         `json:"n_features"`
	Coef           [][]float64 `json:"coef,omitempty"`
	Intercept      []float64   `json:"intercept,omitempty"`
	ClassLogPrior  []float64   `json:"class_log_prior,omitempty"`
	FeatureLogProb [][]float64 `json:"feature_log_prob,omitempty"`
}

// Artifacts holds the two models the service needs, loaded once at startup.
// Neither is mutated after Load returns, so both are safe for concurrent use.
type Artifacts struct {
	Vectorizer *TfidfVectorizer
	Classifier service.Predictor
}

// Load reads and validates both artifacts and checks that the classifier
// expects the feature width the vectorizer produces.
func Load(vectorizerPath, classifierPath string) (*Artifacts, error) {
	vec, err := LoadVectorizer(vectorizerPath)
	if err != nil {
		return nil, err
	}

	clf, err := LoadClassifier(classifierPath)
	if err != nil {
		return nil, err
	}

	if vec.NumFeatures() != clf.NumFeatures() {
		return nil, invalidf("vectorizer %s produces %d features but classifier %s expects %d",
			vectorizerPath, vec.NumFeatures(), classifierPath, clf.NumFeatures())
	}

	return &Artifacts{Vectorizer: vec, Classifier: clf}, nil
}

// LoadVectorizer reads a vectorizer artifact from path
func LoadVectorizer(path string) (*TfidfVectorizer, error) {
	var art VectorizerArtifact
	if err := readArtifact(path, &art); err != nil {
		return nil, err
	}

	vec, err := NewTfidfVectorizer(&art)
	if err != nil {
		return nil, errors.Wrapf(err, "vectorizer %s", path)
	}
	return vec, nil
}

// LoadClassifier reads a classifier artifact from path
func LoadClassifier(path string) (service.Predictor, error) {
	var art ClassifierArtifact
	if err := readArtifact(path, &art); err != nil {
		return nil, err
	}

	clf, err := NewClassifier(&art)
	if err != nil {
		return nil, errors.Wrapf(err, "classifier %s", path)
	}
	return clf, nil
}

// NewClassifier builds the predictor named by art.Type
func NewClassifier(art *ClassifierArtifact) (service.Predictor, error) {
	switch art.Type {
	case TypeLogisticRegression, TypeLinearSVC, TypeSGDClassifier:
		clf, err := NewLinearClassifier(art)
		if err != nil {
			return nil, err
		}
		return clf, nil
	case TypeMultinomialNB, TypeComplementNB:
		clf, err := NewNaiveBayes(art)
		if err != nil {
			return nil, err
		}
		return clf, nil
	default:
		return nil, errors.Wrapf(ErrUnsupportedType, "classifier type %q", art.Type)
	}
}

func readArtifact(path string, v interface{}) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrapf(err, "failed to read artifact %s", path)
	}

	if err := json.Unmarshal(data, v); err != nil {
		return errors.Mark(errors.Wrapf(err, "failed to decode artifact %s", path), ErrInvalidArtifact)
	}
	return nil
}

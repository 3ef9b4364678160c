package model

import (
	"math"
	"sort"

	"github.com/cockroachdb/errors"

	"github.com/ressKim-io/sentiment-api/internal/domain/entity"
)

// Vectorizer artifact types
const (
	TypeTfidf = "tfidf"
	TypeCount = "count"
)

// Vector norms
const (
	NormNone = ""
	NormL1   = "l1"
	NormL2   = "l2"
)

// TfidfVectorizer maps text to term weights over a fixed vocabulary.
// A count artifact loads into the same type with idf weighting and
// normalization turned off.
type TfidfVectorizer struct {
	kind        string
	analyzer    *analyzer
	vocabulary  map[string]int
	idf         []float64
	useIDF      bool
	norm        string
	sublinearTF bool
	binary      bool
}

// NewTfidfVectorizer validates art and builds a vectorizer from it
func NewTfidfVectorizer(art *VectorizerArtifact) (*TfidfVectorizer, error) {
	switch art.Type {
	case TypeTfidf, TypeCount:
	default:
		return nil, errors.Wrapf(ErrUnsupportedType, "vectorizer type %q", art.Type)
	}

	if len(art.Vocabulary) == 0 {
		return nil, invalidf("empty vocabulary")
	}
	if err := checkVocabulary(art.Vocabulary); err != nil {
		return nil, err
	}

	v := &TfidfVectorizer{
		kind:       art.Type,
		vocabulary: art.Vocabulary,
		binary:     art.Binary,
	}

	if art.Type == TypeTfidf {
		switch art.Norm {
		case NormNone, NormL1, NormL2:
			v.norm = art.Norm
		default:
			return nil, errors.Wrapf(ErrUnsupportedType, "norm %q", art.Norm)
		}
		v.sublinearTF = art.SublinearTF
		v.useIDF = art.UseIDF
		if v.useIDF {
			if len(art.IDF) != len(art.Vocabulary) {
				return nil, invalidf("idf has %d weights for %d vocabulary terms", len(art.IDF), len(art.Vocabulary))
			}
			v.idf = art.IDF
		}
	}

	a, err := newAnalyzer(art)
	if err != nil {
		return nil, err
	}
	v.analyzer = a

	return v, nil
}

// vocabulary columns must cover 0..n-1 exactly once
func checkVocabulary(vocab map[string]int) error {
	seen := make([]bool, len(vocab))
	for term, idx := range vocab {
		if idx < 0 || idx >= len(vocab) {
			return invalidf("vocabulary term %q has column %d outside [0, %d)", term, idx, len(vocab))
		}
		if seen[idx] {
			return invalidf("vocabulary column %d is assigned twice", idx)
		}
		seen[idx] = true
	}
	return nil
}

// Transform converts text into a sparse feature vector
func (v *TfidfVectorizer) Transform(text string) entity.FeatureVector {
	counts := make(map[int]float64)
	for _, term := range v.analyzer.analyze(text) {
		if idx, ok := v.vocabulary[term]; ok {
			counts[idx]++
		}
	}

	vec := entity.FeatureVector{
		Dim:     len(v.vocabulary),
		Indices: make([]int, 0, len(counts)),
		Values:  make([]float64, 0, len(counts)),
	}
	for idx := range counts {
		vec.Indices = append(vec.Indices, idx)
	}
	sort.Ints(vec.Indices)

	for _, idx := range vec.Indices {
		tf := counts[idx]
		if v.binary {
			tf = 1
		}
		if v.sublinearTF {
			tf = 1 + math.Log(tf)
		}
		if v.useIDF {
			tf *= v.idf[idx]
		}
		vec.Values = append(vec.Values, tf)
	}

	normalize(vec.Values, v.norm)
	return vec
}

// NumFeatures returns the vocabulary size
func (v *TfidfVectorizer) NumFeatures() int {
	return len(v.vocabulary)
}

// Type returns the artifact type
func (v *TfidfVectorizer) Type() string {
	return v.kind
}

func normalize(values []float64, norm string) {
	var total float64
	switch norm {
	case NormL1:
		for _, x := range values {
			total += math.Abs(x)
		}
	case NormL2:
		for _, x := range values {
			total += x * x
		}
		total = math.Sqrt(total)
	default:
		return
	}

	if total == 0 {
		return
	}
	for i := range values {
		values[i] /= total
	}
}

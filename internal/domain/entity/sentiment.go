package entity

// Sentiment is the label returned for a classified text
type Sentiment string

// Sentiment values
const (
	SentimentPositive Sentiment = "positive"
	SentimentNegative Sentiment = "negative"
)

// PositiveClass is the class id the classifier emits for positive text
const PositiveClass = 1

// SentimentFromClass maps a predicted class id to a sentiment label.
// Only PositiveClass is positive. Any other id is negative, including ids a
// multi-class model could produce.
func SentimentFromClass(class int) Sentiment {
	if class == PositiveClass {
		return SentimentPositive
	}
	return SentimentNegative
}

// String returns the string representation of the sentiment
func (s Sentiment) String() string {
	return string(s)
}

// IsValid reports whether s is one of the two known labels
func (s Sentiment) IsValid() bool {
	return s == SentimentPositive || s == SentimentNegative
}

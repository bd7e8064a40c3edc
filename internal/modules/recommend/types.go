package recommend

import "errors"

// Recommendation mirrors the single-element list shape the endpoint has
// always returned. BookID and Summary stay null when nothing suitable was
// found.
type Recommendation struct {
	BookID         *uint   `json:"book_id"`
	Summary        *string `json:"summary"`
	Recommendation string  `json:"recommendation"`
}

const (
	noRecommendationMessage = "No Recommendation"
	recommendationMessage   = "I hope this book meets your preferences and fulfills your expectations."
)

var errEmptyCatalog = errors.New("no books in catalog")

func noRecommendation() Recommendation {
	return Recommendation{Recommendation: noRecommendationMessage}
}

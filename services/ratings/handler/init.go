package handler

import (
	"github.com/pidsadka/pidsadka/services/ratings"
)

// RatingHandler handles HTTP requests for the rating aggregator
type RatingHandler struct {
	ratingUC ratings.RatingUC
}

// NewRatingHandler creates a new rating handler
func NewRatingHandler(ratingUC ratings.RatingUC) *RatingHandler {
	return &RatingHandler{ratingUC: ratingUC}
}

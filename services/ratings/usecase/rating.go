package usecase

import (
	"context"

	"github.com/pidsadka/pidsadka/internal/pkg/apperrors"
	"github.com/pidsadka/pidsadka/internal/pkg/logger"
	"github.com/pidsadka/pidsadka/internal/pkg/models"
	"github.com/pidsadka/pidsadka/services/ratings"
)

const (
	minScore = 1
	maxScore = 5

	recentReviewsLimit = 20
)

type ratingUC struct {
	cfg        *models.Config
	ratingRepo ratings.RatingRepo
}

// NewRatingUC creates a new rating use case
func NewRatingUC(
	cfg *models.Config,
	ratingRepo ratings.RatingRepo,
) ratings.RatingUC {
	return &ratingUC{
		cfg:        cfg,
		ratingRepo: ratingRepo,
	}
}

// AddReview validates and records one post-trip review
func (uc *ratingUC) AddReview(ctx context.Context, req *models.AddReviewRequest) (*models.Rating, error) {
	if req.Score < minScore || req.Score > maxScore {
		return nil, apperrors.Validationf("score must be between %d and %d", minScore, maxScore)
	}
	if !req.Role.Valid() {
		return nil, apperrors.Validationf("role must be driver or passenger")
	}
	if req.FromUserID == req.ToUserID {
		return nil, apperrors.Validationf("you cannot review yourself")
	}
	if req.ToUserID == 0 {
		return nil, apperrors.Validationf("to_user_id is required")
	}

	rating := &models.Rating{
		FromUserID: req.FromUserID,
		ToUserID:   req.ToUserID,
		TripID:     req.TripID,
		Role:       req.Role,
		Score:      req.Score,
	}
	if err := uc.ratingRepo.AddReview(ctx, rating); err != nil {
		return nil, err
	}

	logger.Info("Review recorded", logger.Fields{
		"from_user_id": rating.FromUserID,
		"to_user_id":   rating.ToUserID,
		"role":         rating.Role,
		"score":        rating.Score,
	})

	return rating, nil
}

// GetRating returns the user's rolling average, neutral when unreviewed
func (uc *ratingUC) GetRating(ctx context.Context, userID int64, role models.RatingRole) (*models.RatingSummary, error) {
	if !role.Valid() {
		return nil, apperrors.Validationf("role must be driver or passenger")
	}

	summary, err := uc.ratingRepo.GetSummary(ctx, userID, role)
	if err != nil {
		return nil, err
	}
	if summary.Count == 0 {
		summary.Average = models.NeutralRating
	}
	return summary, nil
}

// ListReceived returns the user's most recent received reviews
func (uc *ratingUC) ListReceived(ctx context.Context, userID int64) ([]models.Rating, error) {
	return uc.ratingRepo.ListReceived(ctx, userID, recentReviewsLimit)
}

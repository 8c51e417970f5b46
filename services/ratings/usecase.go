package ratings

import (
	"context"

	"github.com/pidsadka/pidsadka/internal/pkg/models"
)

// RatingUC defines the interface for rating business logic
// go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/pidsadka/pidsadka/services/ratings RatingUC
type RatingUC interface {
	AddReview(ctx context.Context, req *models.AddReviewRequest) (*models.Rating, error)
	GetRating(ctx context.Context, userID int64, role models.RatingRole) (*models.RatingSummary, error)
	ListReceived(ctx context.Context, userID int64) ([]models.Rating, error)
}

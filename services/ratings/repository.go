package ratings

import (
	"context"

	"github.com/pidsadka/pidsadka/internal/pkg/models"
)

// RatingRepo defines the interface for rating data access operations.
// AddReview appends to the ratings log and recomputes the target user's
// rolling average in the same transaction, so the derived columns never
// drift from the log.
// go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/pidsadka/pidsadka/services/ratings RatingRepo
type RatingRepo interface {
	AddReview(ctx context.Context, rating *models.Rating) error
	GetSummary(ctx context.Context, userID int64, role models.RatingRole) (*models.RatingSummary, error)
	ListReceived(ctx context.Context, userID int64, limit int) ([]models.Rating, error)
}

package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgconn"
	"github.com/jmoiron/sqlx"

	"github.com/pidsadka/pidsadka/internal/pkg/apperrors"
	"github.com/pidsadka/pidsadka/internal/pkg/models"
)

const uniqueViolation = "23505"

type RatingRepo struct {
	cfg *models.Config
	db  *sqlx.DB
}

func NewRatingRepository(
	cfg *models.Config,
	db *sqlx.DB,
) *RatingRepo {
	return &RatingRepo{
		cfg: cfg,
		db:  db,
	}
}

// AddReview appends one review and refreshes the target's rolling average.
// The ratings table carries a unique constraint on (from_user_id,
// to_user_id, trip_id, role), which makes a repeated submission an
// ErrConflict instead of a double count.
func (r *RatingRepo) AddReview(ctx context.Context, rating *models.Rating) error {
	rating.ID = uuid.New()
	rating.CreatedAt = time.Now()

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return apperrors.Storage("add review", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO ratings (id, from_user_id, to_user_id, trip_id, role, score, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`, rating.ID, rating.FromUserID, rating.ToUserID, rating.TripID, rating.Role, rating.Score, rating.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return apperrors.ErrConflict
		}
		return apperrors.Storage("add review", err)
	}

	column := "rating_passenger"
	if rating.Role == models.RoleDriver {
		column = "rating_driver"
	}
	// Recomputed from the full log rather than nudged incrementally
	_, err = tx.ExecContext(ctx, fmt.Sprintf(`
		UPDATE users SET %s = (
			SELECT AVG(score) FROM ratings WHERE to_user_id = $1 AND role = $2
		)
		WHERE user_id = $1
	`, column), rating.ToUserID, rating.Role)
	if err != nil {
		return apperrors.Storage("refresh rating", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit review: %w", err)
	}
	return nil
}

// GetSummary returns the rolling average and review count for one user role
func (r *RatingRepo) GetSummary(ctx context.Context, userID int64, role models.RatingRole) (*models.RatingSummary, error) {
	summary := &models.RatingSummary{}
	err := r.db.QueryRowxContext(ctx, `
		SELECT COALESCE(AVG(score), 0) AS average, COUNT(*) AS count
		FROM ratings WHERE to_user_id = $1 AND role = $2
	`, userID, role).StructScan(summary)
	if err != nil {
		return nil, apperrors.Storage("get rating summary", err)
	}
	return summary, nil
}

// ListReceived returns the user's most recent received reviews
func (r *RatingRepo) ListReceived(ctx context.Context, userID int64, limit int) ([]models.Rating, error) {
	result := []models.Rating{}
	err := r.db.SelectContext(ctx, &result, `
		SELECT id, from_user_id, to_user_id, trip_id, role, score, created_at
		FROM ratings WHERE to_user_id = $1
		ORDER BY created_at DESC LIMIT $2
	`, userID, limit)
	if err != nil {
		return nil, apperrors.Storage("list received reviews", err)
	}
	return result, nil
}

package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/pidsadka/pidsadka/internal/pkg/apperrors"
	"github.com/pidsadka/pidsadka/internal/pkg/constants"
	"github.com/pidsadka/pidsadka/internal/pkg/database"
)

// PenaltyRepo tracks recent booking cancellations per passenger in Redis.
// The counter expires on its own, so a quiet passenger is forgiven
// without any cleanup job.
type PenaltyRepo struct {
	redisClient *database.RedisClient
}

func NewPenaltyRepository(redisClient *database.RedisClient) *PenaltyRepo {
	return &PenaltyRepo{
		redisClient: redisClient,
	}
}

func penaltyKey(userID int64) string {
	return fmt.Sprintf("%s:%d", constants.KeyCancelPenalty, userID)
}

// RegisterCancellation bumps the passenger's cancellation counter and
// returns the new count. The expiry is set only when the key is created,
// so the window runs from the first cancellation in the burst.
func (r *PenaltyRepo) RegisterCancellation(ctx context.Context, userID int64, window time.Duration) (int64, error) {
	key := penaltyKey(userID)

	count, err := r.redisClient.Incr(ctx, key)
	if err != nil {
		return 0, apperrors.Storage("register cancellation", err)
	}
	if count == 1 {
		if err := r.redisClient.Expire(ctx, key, window); err != nil {
			return 0, apperrors.Storage("register cancellation", err)
		}
	}
	return count, nil
}

// CancellationCount reads the passenger's current counter, zero when expired
func (r *PenaltyRepo) CancellationCount(ctx context.Context, userID int64) (int64, error) {
	val, err := r.redisClient.GetClient().Get(ctx, penaltyKey(userID)).Int64()
	if err == redis.Nil {
		return 0, nil
	}
	if err != nil {
		return 0, apperrors.Storage("cancellation count", err)
	}
	return val, nil
}

package models

import (
	"time"

	"github.com/google/uuid"
)

// RatingRole identifies which side of the trip is being rated
type RatingRole string

const (
	RoleDriver    RatingRole = "driver"
	RolePassenger RatingRole = "passenger"
)

// Valid reports whether the role is one of the two known sides.
func (r RatingRole) Valid() bool {
	return r == RoleDriver || r == RolePassenger
}

// NeutralRating is the rolling average assigned to users with no reviews yet.
const NeutralRating = 5.0

// Rating is one immutable post-trip review. The ratings log is the
// authoritative source; the per-user rolling averages are derived from it.
type Rating struct {
	ID         uuid.UUID  `json:"id" db:"id"`
	FromUserID int64      `json:"from_user_id" db:"from_user_id"`
	ToUserID   int64      `json:"to_user_id" db:"to_user_id"`
	TripID     uuid.UUID  `json:"trip_id" db:"trip_id"`
	Role       RatingRole `json:"role" db:"role"`
	Score      int        `json:"score" db:"score"`
	CreatedAt  time.Time  `json:"created_at" db:"created_at"`
}

// RatingSummary is the derived rolling average for one user in one role
type RatingSummary struct {
	Average float64 `json:"average" db:"average"`
	Count   int     `json:"count" db:"count"`
}

// AddReviewRequest is the review submission input
type AddReviewRequest struct {
	FromUserID int64      `json:"-"`
	ToUserID   int64      `json:"to_user_id"`
	TripID     uuid.UUID  `json:"trip_id"`
	Role       RatingRole `json:"role"`
	Score      int        `json:"score"`
}

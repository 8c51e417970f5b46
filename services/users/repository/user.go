package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/pidsadka/pidsadka/internal/pkg/apperrors"
	"github.com/pidsadka/pidsadka/internal/pkg/models"
)

type UserRepo struct {
	cfg *models.Config
	db  *sqlx.DB
}

func NewUserRepository(
	cfg *models.Config,
	db *sqlx.DB,
) *UserRepo {
	return &UserRepo{
		cfg: cfg,
		db:  db,
	}
}

// UpsertUser creates the user on first contact and refreshes the mutable
// profile fields on every later one. Vehicle fields and ratings survive the
// update; the phone is only replaced when a non empty value arrives.
func (r *UserRepo) UpsertUser(ctx context.Context, req *models.UpsertUserRequest) (*models.User, error) {
	query := `
		INSERT INTO users (
			user_id, username, name, phone,
			vehicle_model, vehicle_plate, vehicle_color,
			rating_driver, rating_passenger,
			is_banned, created_at, last_active
		) VALUES ($1, $2, $3, COALESCE(NULLIF($4, ''), $5), $5, $5, $5, $6, $6, FALSE, NOW(), NOW())
		ON CONFLICT (user_id) DO UPDATE SET
			username = EXCLUDED.username,
			name = EXCLUDED.name,
			phone = CASE WHEN $4 <> '' THEN $4 ELSE users.phone END,
			last_active = NOW()
		RETURNING user_id, username, name, phone,
			vehicle_model, vehicle_plate, vehicle_color,
			rating_driver, rating_passenger,
			is_banned, created_at, last_active
	`

	user := &models.User{}
	err := r.db.GetContext(ctx, user, query,
		req.UserID, req.Username, req.Name, req.Phone,
		models.FieldUnset, models.NeutralRating,
	)
	if err != nil {
		return nil, apperrors.Storage("upsert user", err)
	}

	return user, nil
}

// UpdateVehicle completes or replaces the driver side of the profile
func (r *UserRepo) UpdateVehicle(ctx context.Context, userID int64, req *models.UpdateVehicleRequest) error {
	query := `
		UPDATE users
		SET vehicle_model = $1, vehicle_plate = $2, vehicle_color = $3, last_active = NOW()
		WHERE user_id = $4
	`

	result, err := r.db.ExecContext(ctx, query, req.Model, req.Plate, req.Color, userID)
	if err != nil {
		return apperrors.Storage("update vehicle", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return apperrors.Storage("update vehicle", err)
	}
	if rows == 0 {
		return apperrors.ErrNotFound
	}

	return nil
}

// GetUser retrieves a user by id
func (r *UserRepo) GetUser(ctx context.Context, userID int64) (*models.User, error) {
	query := `
		SELECT user_id, username, name, phone,
			vehicle_model, vehicle_plate, vehicle_color,
			rating_driver, rating_passenger,
			is_banned, created_at, last_active
		FROM users
		WHERE user_id = $1
	`

	user := &models.User{}
	if err := r.db.GetContext(ctx, user, query, userID); err != nil {
		return nil, apperrors.Storage("get user", err)
	}

	return user, nil
}

// TouchLastActive bumps the user's activity timestamp
func (r *UserRepo) TouchLastActive(ctx context.Context, userID int64) error {
	query := `UPDATE users SET last_active = NOW() WHERE user_id = $1`

	if _, err := r.db.ExecContext(ctx, query, userID); err != nil {
		return apperrors.Storage("touch last active", err)
	}
	return nil
}

// BanUserCascade flags the user and tears down everything they hold open:
// their active trips with all passengers on them, and their own active
// bookings with the seats given back. The whole cascade commits atomically.
func (r *UserRepo) BanUserCascade(ctx context.Context, userID int64) (*models.BanCascade, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, apperrors.Storage("ban user", err)
	}
	defer tx.Rollback()

	result, err := tx.ExecContext(ctx, `UPDATE users SET is_banned = TRUE WHERE user_id = $1`, userID)
	if err != nil {
		return nil, apperrors.Storage("ban user", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return nil, apperrors.Storage("ban user", err)
	}
	if rows == 0 {
		return nil, apperrors.ErrNotFound
	}

	cascade := &models.BanCascade{}

	// Trips the banned user was driving, with the passengers booked on them
	tripRows, err := tx.QueryxContext(ctx, `
		SELECT t.id, b.passenger_id
		FROM trips t
		LEFT JOIN bookings b ON b.trip_id = t.id AND b.status = 'active'
		WHERE t.driver_id = $1 AND t.status = 'active'
		ORDER BY t.id
	`, userID)
	if err != nil {
		return nil, apperrors.Storage("ban user: list trips", err)
	}

	tripPassengers := make(map[uuid.UUID][]int64)
	var tripOrder []uuid.UUID
	for tripRows.Next() {
		var tripID uuid.UUID
		var passengerID *int64
		if err := tripRows.Scan(&tripID, &passengerID); err != nil {
			tripRows.Close()
			return nil, apperrors.Storage("ban user: list trips", err)
		}
		if _, seen := tripPassengers[tripID]; !seen {
			tripOrder = append(tripOrder, tripID)
			tripPassengers[tripID] = nil
		}
		if passengerID != nil {
			tripPassengers[tripID] = append(tripPassengers[tripID], *passengerID)
		}
	}
	tripRows.Close()
	if err := tripRows.Err(); err != nil {
		return nil, apperrors.Storage("ban user: list trips", err)
	}

	if len(tripOrder) > 0 {
		_, err = tx.ExecContext(ctx, `
			UPDATE bookings SET status = 'cancelled'
			WHERE status = 'active'
			AND trip_id IN (SELECT id FROM trips WHERE driver_id = $1 AND status = 'active')
		`, userID)
		if err != nil {
			return nil, apperrors.Storage("ban user: cancel trip bookings", err)
		}

		_, err = tx.ExecContext(ctx, `
			UPDATE trips SET status = 'cancelled'
			WHERE driver_id = $1 AND status = 'active'
		`, userID)
		if err != nil {
			return nil, apperrors.Storage("ban user: cancel trips", err)
		}

		for _, tripID := range tripOrder {
			cascade.CancelledTrips = append(cascade.CancelledTrips, models.TripCancelledEvent{
				TripID:       tripID,
				DriverID:     userID,
				PassengerIDs: tripPassengers[tripID],
			})
		}
	}

	// Seats the banned user held on other drivers' trips
	bookingRows, err := tx.QueryxContext(ctx, `
		SELECT b.id, b.trip_id, t.driver_id
		FROM bookings b
		JOIN trips t ON t.id = b.trip_id
		WHERE b.passenger_id = $1 AND b.status = 'active'
	`, userID)
	if err != nil {
		return nil, apperrors.Storage("ban user: list bookings", err)
	}

	for bookingRows.Next() {
		var bookingID, tripID uuid.UUID
		var driverID int64
		if err := bookingRows.Scan(&bookingID, &tripID, &driverID); err != nil {
			bookingRows.Close()
			return nil, apperrors.Storage("ban user: list bookings", err)
		}
		cascade.CancelledBookings = append(cascade.CancelledBookings, models.BookingCancelledEvent{
			TripID:      tripID,
			BookingID:   bookingID,
			PassengerID: userID,
			DriverID:    driverID,
			Reason:      models.CancelReasonBan,
		})
	}
	bookingRows.Close()
	if err := bookingRows.Err(); err != nil {
		return nil, apperrors.Storage("ban user: list bookings", err)
	}

	if len(cascade.CancelledBookings) > 0 {
		_, err = tx.ExecContext(ctx, `
			UPDATE trips SET seats_taken = GREATEST(seats_taken - 1, 0)
			WHERE id IN (SELECT trip_id FROM bookings WHERE passenger_id = $1 AND status = 'active')
		`, userID)
		if err != nil {
			return nil, apperrors.Storage("ban user: release seats", err)
		}

		_, err = tx.ExecContext(ctx, `
			UPDATE bookings SET status = 'cancelled'
			WHERE passenger_id = $1 AND status = 'active'
		`, userID)
		if err != nil {
			return nil, apperrors.Storage("ban user: cancel bookings", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit ban cascade: %w", err)
	}

	return cascade, nil
}

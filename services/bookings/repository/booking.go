package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/pidsadka/pidsadka/internal/pkg/apperrors"
	"github.com/pidsadka/pidsadka/internal/pkg/models"
)

type BookingRepo struct {
	cfg *models.Config
	db  *sqlx.DB
}

func NewBookingRepository(
	cfg *models.Config,
	db *sqlx.DB,
) *BookingRepo {
	return &BookingRepo{
		cfg: cfg,
		db:  db,
	}
}

// AddBooking reserves one seat. The trip row is locked for the duration of
// the checks, so two passengers racing for the last seat cannot both win.
// Returns the booking and the trip's driver id for event publishing.
func (r *BookingRepo) AddBooking(ctx context.Context, tripID uuid.UUID, passengerID int64) (*models.Booking, int64, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, 0, apperrors.Storage("add booking", err)
	}
	defer tx.Rollback()

	var driverID int64
	var status models.TripStatus
	var seatsTotal, seatsTaken int
	err = tx.QueryRowxContext(ctx, `
		SELECT driver_id, status, seats_total, seats_taken
		FROM trips WHERE id = $1 FOR UPDATE
	`, tripID).Scan(&driverID, &status, &seatsTotal, &seatsTaken)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, 0, apperrors.ErrNotFound
		}
		return nil, 0, apperrors.Storage("add booking", err)
	}

	if status != models.TripStatusActive {
		return nil, 0, apperrors.ErrInvalidState
	}

	// The duplicate check runs before the capacity check, a passenger who
	// already holds a seat on a full trip gets Conflict, not NoSeatsAvailable
	var existing int
	err = tx.QueryRowxContext(ctx, `
		SELECT COUNT(*) FROM bookings
		WHERE trip_id = $1 AND passenger_id = $2 AND status = 'active'
	`, tripID, passengerID).Scan(&existing)
	if err != nil {
		return nil, 0, apperrors.Storage("add booking", err)
	}
	if existing > 0 {
		return nil, 0, apperrors.ErrConflict
	}

	if driverID == passengerID {
		return nil, 0, apperrors.ErrSelfBooking
	}
	if seatsTaken >= seatsTotal {
		return nil, 0, apperrors.ErrNoSeatsAvailable
	}

	booking := &models.Booking{
		ID:          uuid.New(),
		TripID:      tripID,
		PassengerID: passengerID,
		Status:      models.BookingStatusActive,
		CreatedAt:   time.Now(),
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO bookings (id, trip_id, passenger_id, status, reminded, created_at)
		VALUES ($1, $2, $3, $4, FALSE, $5)
	`, booking.ID, booking.TripID, booking.PassengerID, booking.Status, booking.CreatedAt)
	if err != nil {
		return nil, 0, apperrors.Storage("insert booking", err)
	}

	_, err = tx.ExecContext(ctx,
		`UPDATE trips SET seats_taken = seats_taken + 1 WHERE id = $1`, tripID)
	if err != nil {
		return nil, 0, apperrors.Storage("take seat", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, 0, fmt.Errorf("failed to commit booking: %w", err)
	}

	return booking, driverID, nil
}

// CancelBooking releases the passenger's own seat. A cancelled booking is
// gone from the caller's point of view, so a replay is NotFound rather than
// a second penalty and a second event. The seat release is clamped at zero
// so it can never drive the counter negative.
func (r *BookingRepo) CancelBooking(ctx context.Context, bookingID uuid.UUID, passengerID int64) (*models.TripContext, error) {
	return r.cancel(ctx, bookingID, passengerID, false)
}

// KickPassenger releases a seat on the driver's own trip
func (r *BookingRepo) KickPassenger(ctx context.Context, bookingID uuid.UUID, driverID int64) (*models.TripContext, error) {
	return r.cancel(ctx, bookingID, driverID, true)
}

func (r *BookingRepo) cancel(ctx context.Context, bookingID uuid.UUID, requesterID int64, asDriver bool) (*models.TripContext, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, apperrors.Storage("cancel booking", err)
	}
	defer tx.Rollback()

	tctx := &models.TripContext{}
	var status models.BookingStatus
	err = tx.QueryRowxContext(ctx, `
		SELECT b.status, t.id, t.driver_id, b.passenger_id, u.name,
			t.origin, t.destination, t.date, t.time
		FROM bookings b
		JOIN trips t ON t.id = b.trip_id
		JOIN users u ON u.user_id = b.passenger_id
		WHERE b.id = $1
		FOR UPDATE OF b, t
	`, bookingID).Scan(
		&status, &tctx.TripID, &tctx.DriverID, &tctx.PassengerID, &tctx.PassengerName,
		&tctx.Origin, &tctx.Destination, &tctx.Date, &tctx.Time,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.Storage("cancel booking", err)
	}

	if asDriver {
		if tctx.DriverID != requesterID {
			return nil, apperrors.ErrForbidden
		}
	} else if tctx.PassengerID != requesterID {
		return nil, apperrors.ErrForbidden
	}

	if status == models.BookingStatusCancelled {
		return nil, apperrors.ErrNotFound
	}

	_, err = tx.ExecContext(ctx,
		`UPDATE bookings SET status = 'cancelled' WHERE id = $1`, bookingID)
	if err != nil {
		return nil, apperrors.Storage("cancel booking", err)
	}

	_, err = tx.ExecContext(ctx, `
		UPDATE trips SET seats_taken = GREATEST(seats_taken - 1, 0) WHERE id = $1
	`, tctx.TripID)
	if err != nil {
		return nil, apperrors.Storage("release seat", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit booking cancellation: %w", err)
	}

	return tctx, nil
}

// CountActiveByPassenger counts the passenger's open seat reservations
func (r *BookingRepo) CountActiveByPassenger(ctx context.Context, passengerID int64) (int, error) {
	var count int
	err := r.db.GetContext(ctx, &count, `
		SELECT COUNT(*) FROM bookings WHERE passenger_id = $1 AND status = 'active'
	`, passengerID)
	if err != nil {
		return 0, apperrors.Storage("count bookings", err)
	}
	return count, nil
}

// ListByPassenger lists the passenger's active bookings with trip and driver info
func (r *BookingRepo) ListByPassenger(ctx context.Context, passengerID int64) ([]models.PassengerBooking, error) {
	query := `
		SELECT b.id AS booking_id, t.id AS trip_id,
			t.origin, t.destination, t.date, t.time, t.price,
			t.driver_id, u.name AS driver_name, u.phone AS driver_phone
		FROM bookings b
		JOIN trips t ON t.id = b.trip_id
		JOIN users u ON u.user_id = t.driver_id
		WHERE b.passenger_id = $1 AND b.status = 'active'
		ORDER BY b.created_at DESC
	`

	result := []models.PassengerBooking{}
	if err := r.db.SelectContext(ctx, &result, query, passengerID); err != nil {
		return nil, apperrors.Storage("list passenger bookings", err)
	}
	return result, nil
}

// ListTripPassengers lists the active passengers on the driver's own trip
func (r *BookingRepo) ListTripPassengers(ctx context.Context, tripID uuid.UUID, driverID int64) ([]models.TripPassenger, error) {
	var owner int64
	err := r.db.GetContext(ctx, &owner,
		`SELECT driver_id FROM trips WHERE id = $1`, tripID)
	if err != nil {
		return nil, apperrors.Storage("list trip passengers", err)
	}
	if owner != driverID {
		return nil, apperrors.ErrForbidden
	}

	query := `
		SELECT u.user_id, u.name, u.username, u.phone, b.id AS booking_id
		FROM bookings b
		JOIN users u ON u.user_id = b.passenger_id
		WHERE b.trip_id = $1 AND b.status = 'active'
		ORDER BY b.created_at
	`

	result := []models.TripPassenger{}
	if err := r.db.SelectContext(ctx, &result, query, tripID); err != nil {
		return nil, apperrors.Storage("list trip passengers", err)
	}
	return result, nil
}

// ListUnreminded returns active bookings on active trips that have not
// received a departure reminder yet.
func (r *BookingRepo) ListUnreminded(ctx context.Context) ([]models.ReminderCandidate, error) {
	query := `
		SELECT b.id AS booking_id, t.id AS trip_id, b.passenger_id,
			t.origin, t.destination, t.date, t.time
		FROM bookings b
		JOIN trips t ON t.id = b.trip_id
		WHERE b.status = 'active' AND b.reminded = FALSE AND t.status = 'active'
	`

	result := []models.ReminderCandidate{}
	if err := r.db.SelectContext(ctx, &result, query); err != nil {
		return nil, apperrors.Storage("list unreminded bookings", err)
	}
	return result, nil
}

// MarkReminded flags a booking as reminded. Returns false when another
// sweep got there first or the booking was cancelled meanwhile.
func (r *BookingRepo) MarkReminded(ctx context.Context, bookingID uuid.UUID) (bool, error) {
	result, err := r.db.ExecContext(ctx, `
		UPDATE bookings SET reminded = TRUE
		WHERE id = $1 AND status = 'active' AND reminded = FALSE
	`, bookingID)
	if err != nil {
		return false, apperrors.Storage("mark reminded", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return false, apperrors.Storage("mark reminded", err)
	}
	return rows > 0, nil
}

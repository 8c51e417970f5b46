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

type TripRepo struct {
	cfg *models.Config
	db  *sqlx.DB
}

func NewTripRepository(
	cfg *models.Config,
	db *sqlx.DB,
) *TripRepo {
	return &TripRepo{
		cfg: cfg,
		db:  db,
	}
}

// CreateTrip inserts a new trip offer
func (r *TripRepo) CreateTrip(ctx context.Context, trip *models.Trip) error {
	if trip.ID == uuid.Nil {
		trip.ID = uuid.New()
	}
	trip.Status = models.TripStatusActive
	trip.SeatsTaken = 0
	trip.CreatedAt = time.Now()

	query := `
		INSERT INTO trips (
			id, driver_id, origin, destination, date, time,
			seats_total, seats_taken, price, description, status, created_at
		) VALUES (:id, :driver_id, :origin, :destination, :date, :time,
			:seats_total, :seats_taken, :price, :description, :status, :created_at)
	`

	if _, err := r.db.NamedExecContext(ctx, query, trip); err != nil {
		return apperrors.Storage("insert trip", err)
	}

	return nil
}

// GetTrip retrieves a trip by id
func (r *TripRepo) GetTrip(ctx context.Context, tripID uuid.UUID) (*models.Trip, error) {
	query := `
		SELECT id, driver_id, origin, destination, date, time,
			seats_total, seats_taken, price, description, status, created_at
		FROM trips
		WHERE id = $1
	`

	trip := &models.Trip{}
	if err := r.db.GetContext(ctx, trip, query, tripID); err != nil {
		return nil, apperrors.Storage("get trip", err)
	}

	return trip, nil
}

// GetTripDetails retrieves a trip joined with its driver's public profile
func (r *TripRepo) GetTripDetails(ctx context.Context, tripID uuid.UUID) (*models.TripDetails, error) {
	query := `
		SELECT t.id, t.driver_id, t.origin, t.destination, t.date, t.time,
			t.seats_total, t.seats_taken, t.price, t.description, t.status, t.created_at,
			u.name AS driver_name, u.username AS driver_username, u.phone AS driver_phone,
			u.rating_driver AS driver_rating,
			u.vehicle_model, u.vehicle_color
		FROM trips t
		JOIN users u ON u.user_id = t.driver_id
		WHERE t.id = $1
	`

	details := &models.TripDetails{}
	if err := r.db.GetContext(ctx, details, query, tripID); err != nil {
		return nil, apperrors.Storage("get trip details", err)
	}

	return details, nil
}

// ListActiveByDriver lists the driver's open trip offers
func (r *TripRepo) ListActiveByDriver(ctx context.Context, driverID int64) ([]models.Trip, error) {
	query := `
		SELECT id, driver_id, origin, destination, date, time,
			seats_total, seats_taken, price, description, status, created_at
		FROM trips
		WHERE driver_id = $1 AND status = 'active'
		ORDER BY substr(date, 4, 2), substr(date, 1, 2), time
	`

	trips := []models.Trip{}
	if err := r.db.SelectContext(ctx, &trips, query, driverID); err != nil {
		return nil, apperrors.Storage("list driver trips", err)
	}

	return trips, nil
}

// ActiveSchedules returns the departures of the driver's open trips,
// used for the overlap check on creation.
func (r *TripRepo) ActiveSchedules(ctx context.Context, driverID int64) ([]models.TripSchedule, error) {
	query := `SELECT date, time FROM trips WHERE driver_id = $1 AND status = 'active'`

	schedules := []models.TripSchedule{}
	if err := r.db.SelectContext(ctx, &schedules, query, driverID); err != nil {
		return nil, apperrors.Storage("list driver schedules", err)
	}

	return schedules, nil
}

// ListActive returns every open trip. The lifecycle worker resolves the
// departures in Go because dates are stored without a year.
func (r *TripRepo) ListActive(ctx context.Context) ([]models.Trip, error) {
	query := `
		SELECT id, driver_id, origin, destination, date, time,
			seats_total, seats_taken, price, description, status, created_at
		FROM trips
		WHERE status = 'active'
	`

	trips := []models.Trip{}
	if err := r.db.SelectContext(ctx, &trips, query); err != nil {
		return nil, apperrors.Storage("list active trips", err)
	}

	return trips, nil
}

// Search returns one page of joinable trips plus the total match count. The
// page and the count run concurrently on separate connections.
func (r *TripRepo) Search(ctx context.Context, query *models.TripSearchQuery) (*models.TripSearchPage, error) {
	where := `
		FROM trips t
		JOIN users u ON u.user_id = t.driver_id
		WHERE t.status = 'active'
		AND t.seats_taken < t.seats_total
		AND u.is_banned = FALSE
		AND t.driver_id <> $1
		AND t.origin ILIKE '%' || $2 || '%'
		AND t.destination ILIKE '%' || $3 || '%'
		AND ($4 = '' OR t.date = $4)
	`

	countCh := make(chan error, 1)
	var total int
	go func() {
		countCh <- r.db.GetContext(ctx, &total,
			`SELECT COUNT(*) `+where,
			query.ViewerID, query.Origin, query.Destination, query.Date,
		)
	}()

	pageQuery := `
		SELECT t.id, t.driver_id, t.origin, t.destination, t.date, t.time,
			t.seats_total, t.seats_taken, t.price, t.description, t.status, t.created_at,
			u.name AS driver_name, u.rating_driver AS driver_rating,
			u.vehicle_model, u.vehicle_color
	` + where + `
		-- soonest departure first: month, then day, then time
		ORDER BY substr(t.date, 4, 2), substr(t.date, 1, 2), t.time
		LIMIT $5 OFFSET $6
	`

	results := []models.TripSearchResult{}
	err := r.db.SelectContext(ctx, &results, pageQuery,
		query.ViewerID, query.Origin, query.Destination, query.Date,
		query.Limit, query.Offset,
	)
	if err != nil {
		<-countCh
		return nil, apperrors.Storage("search trips", err)
	}

	if err := <-countCh; err != nil {
		return nil, apperrors.Storage("count trips", err)
	}

	return &models.TripSearchPage{Trips: results, Total: total}, nil
}

// SaveSearchHistory records what the passenger looked for and keeps only
// their most recent entries.
func (r *TripRepo) SaveSearchHistory(ctx context.Context, viewerID int64, query *models.TripSearchQuery) error {
	insert := `
		INSERT INTO search_history (user_id, origin, destination, date, created_at)
		VALUES ($1, $2, $3, $4, NOW())
	`

	if _, err := r.db.ExecContext(ctx, insert, viewerID, query.Origin, query.Destination, query.Date); err != nil {
		return apperrors.Storage("save search history", err)
	}

	trim := `
		DELETE FROM search_history
		WHERE user_id = $1 AND id NOT IN (
			SELECT id FROM search_history
			WHERE user_id = $1 ORDER BY created_at DESC LIMIT $2
		)
	`
	if _, err := r.db.ExecContext(ctx, trim, viewerID, r.cfg.Booking.SearchHistoryLimit); err != nil {
		return apperrors.Storage("trim search history", err)
	}
	return nil
}

// CancelCascade cancels a trip and every active booking on it in one
// transaction. Cancelling an already cancelled trip is a no-op with a nil
// event; finished trips cannot be cancelled. The row lock keeps a
// concurrent booking from slipping a passenger onto the trip mid-cancel.
func (r *TripRepo) CancelCascade(ctx context.Context, tripID uuid.UUID, requesterID int64, admin bool) (*models.TripCancelledEvent, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, apperrors.Storage("cancel trip", err)
	}
	defer tx.Rollback()

	var driverID int64
	var status models.TripStatus
	err = tx.QueryRowxContext(ctx,
		`SELECT driver_id, status FROM trips WHERE id = $1 FOR UPDATE`, tripID,
	).Scan(&driverID, &status)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.Storage("cancel trip", err)
	}

	if !admin && driverID != requesterID {
		return nil, apperrors.ErrForbidden
	}

	switch status {
	case models.TripStatusCancelled:
		return nil, nil
	case models.TripStatusFinished:
		return nil, apperrors.ErrInvalidState
	}

	var passengerIDs []int64
	err = tx.SelectContext(ctx, &passengerIDs,
		`SELECT passenger_id FROM bookings WHERE trip_id = $1 AND status = 'active'`, tripID)
	if err != nil {
		return nil, apperrors.Storage("cancel trip: list passengers", err)
	}

	_, err = tx.ExecContext(ctx,
		`UPDATE bookings SET status = 'cancelled' WHERE trip_id = $1 AND status = 'active'`, tripID)
	if err != nil {
		return nil, apperrors.Storage("cancel trip: cancel bookings", err)
	}

	_, err = tx.ExecContext(ctx,
		`UPDATE trips SET status = 'cancelled' WHERE id = $1`, tripID)
	if err != nil {
		return nil, apperrors.Storage("cancel trip", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit trip cancellation: %w", err)
	}

	return &models.TripCancelledEvent{
		TripID:       tripID,
		DriverID:     driverID,
		PassengerIDs: passengerIDs,
	}, nil
}

// FinishTrip retires an active trip and returns the finish event with the
// passengers to notify. Finishing an already settled trip is a no-op with
// a nil event, so a retry never publishes twice; a missing trip is NotFound.
func (r *TripRepo) FinishTrip(ctx context.Context, tripID uuid.UUID) (*models.TripFinishedEvent, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, apperrors.Storage("finish trip", err)
	}
	defer tx.Rollback()

	var driverID int64
	err = tx.QueryRowxContext(ctx, `
		UPDATE trips SET status = 'finished'
		WHERE id = $1 AND status = 'active'
		RETURNING driver_id
	`, tripID).Scan(&driverID)
	if err != nil {
		if err == sql.ErrNoRows {
			var status models.TripStatus
			err = tx.QueryRowxContext(ctx,
				`SELECT status FROM trips WHERE id = $1`, tripID).Scan(&status)
			if err != nil {
				if err == sql.ErrNoRows {
					return nil, apperrors.ErrNotFound
				}
				return nil, apperrors.Storage("finish trip", err)
			}
			return nil, nil
		}
		return nil, apperrors.Storage("finish trip", err)
	}

	var passengerIDs []int64
	err = tx.SelectContext(ctx, &passengerIDs,
		`SELECT passenger_id FROM bookings WHERE trip_id = $1 AND status = 'active'`, tripID)
	if err != nil {
		return nil, apperrors.Storage("finish trip: list passengers", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit trip finish: %w", err)
	}

	return &models.TripFinishedEvent{
		TripID:       tripID,
		DriverID:     driverID,
		PassengerIDs: passengerIDs,
	}, nil
}

// PurgeOldTrips deletes settled trips created before the cutoff. The cut is
// on created_at, the departure string carries no year to compare in SQL.
// Bookings and ratings hang off trips with ON DELETE CASCADE.
func (r *TripRepo) PurgeOldTrips(ctx context.Context, cutoff time.Time) (int64, error) {
	result, err := r.db.ExecContext(ctx,
		`DELETE FROM trips WHERE status <> 'active' AND created_at < $1`, cutoff)
	if err != nil {
		return 0, apperrors.Storage("purge old trips", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return 0, apperrors.Storage("purge old trips", err)
	}
	return rows, nil
}

// PruneSearchHistory deletes search history rows older than the cutoff
func (r *TripRepo) PruneSearchHistory(ctx context.Context, cutoff time.Time) (int64, error) {
	result, err := r.db.ExecContext(ctx,
		`DELETE FROM search_history WHERE created_at < $1`, cutoff)
	if err != nil {
		return 0, apperrors.Storage("prune search history", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return 0, apperrors.Storage("prune search history", err)
	}
	return rows, nil
}

package repository

import (
	"context"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jackc/pgconn"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pidsadka/pidsadka/internal/pkg/apperrors"
	"github.com/pidsadka/pidsadka/internal/pkg/models"
)

func setupMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	db := sqlx.NewDb(mockDB, "sqlmock")
	return db, mock
}

func TestAddReview(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewRatingRepository(&models.Config{}, db)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO ratings")).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec(regexp.QuoteMeta("UPDATE users SET rating_driver")).
		WithArgs(int64(10), models.RoleDriver).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	rating := &models.Rating{
		FromUserID: 20,
		ToUserID:   10,
		TripID:     uuid.New(),
		Role:       models.RoleDriver,
		Score:      4,
	}

	err := repo.AddReview(context.Background(), rating)

	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, rating.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAddReview_PassengerRoleUpdatesPassengerColumn(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewRatingRepository(&models.Config{}, db)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO ratings")).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec(regexp.QuoteMeta("UPDATE users SET rating_passenger")).
		WithArgs(int64(20), models.RolePassenger).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	err := repo.AddReview(context.Background(), &models.Rating{
		FromUserID: 10,
		ToUserID:   20,
		TripID:     uuid.New(),
		Role:       models.RolePassenger,
		Score:      5,
	})

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAddReview_Duplicate(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewRatingRepository(&models.Config{}, db)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO ratings")).
		WillReturnError(&pgconn.PgError{Code: "23505"})
	mock.ExpectRollback()

	err := repo.AddReview(context.Background(), &models.Rating{
		FromUserID: 20,
		ToUserID:   10,
		TripID:     uuid.New(),
		Role:       models.RoleDriver,
		Score:      4,
	})

	assert.ErrorIs(t, err, apperrors.ErrConflict)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetSummary(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewRatingRepository(&models.Config{}, db)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT COALESCE(AVG(score), 0)")).
		WithArgs(int64(10), models.RoleDriver).
		WillReturnRows(sqlmock.NewRows([]string{"average", "count"}).AddRow(4.5, 8))

	summary, err := repo.GetSummary(context.Background(), 10, models.RoleDriver)

	require.NoError(t, err)
	assert.Equal(t, 4.5, summary.Average)
	assert.Equal(t, 8, summary.Count)
	assert.NoError(t, mock.ExpectationsWereMet())
}

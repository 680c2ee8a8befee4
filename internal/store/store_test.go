package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"specialroom-backend/internal/model"
)

// A helper function to create a mock database connection.
func newTestDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	gormDB, err := gorm.Open(postgres.New(postgres.Config{
		Conn: db,
	}), &gorm.Config{})
	require.NoError(t, err)

	return gormDB, mock
}

const selectBooking = `SELECT \* FROM "bookings" WHERE id = \$1 ORDER BY "bookings"."id" LIMIT \$[0-9]+`

func TestGormStore_FindBooking(t *testing.T) {
	now := time.Date(2026, time.October, 1, 9, 30, 0, 0, time.UTC)

	testCases := []struct {
		name             string
		id               string
		mockExpectations func(mock sqlmock.Sqlmock)
		expected         model.Booking
		expectedErr      error
		expectAnyErr     bool
	}{
		{
			name: "Booking exists",
			id:   "1234567890123",
			mockExpectations: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(selectBooking).
					WithArgs("1234567890123", 1).
					WillReturnRows(sqlmock.NewRows([]string{"id", "full_name", "building", "status", "created_at", "updated_at"}).
						AddRow("1234567890123", "Johe Doe", "KongKiat Dome", "under-review", now, now))
			},
			expected: model.Booking{
				ID:        "1234567890123",
				FullName:  "Johe Doe",
				Building:  "KongKiat Dome",
				Status:    "under-review",
				CreatedAt: now,
				UpdatedAt: now,
			},
		},
		{
			name: "Booking missing",
			id:   "0000000000000",
			mockExpectations: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(selectBooking).
					WithArgs("0000000000000", 1).
					WillReturnRows(sqlmock.NewRows([]string{"id", "full_name", "building", "status"}))
			},
			expectedErr: ErrNotFound,
		},
		{
			name: "Database failure is not a miss",
			id:   "1234567890123",
			mockExpectations: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(selectBooking).
					WithArgs("1234567890123", 1).
					WillReturnError(errors.New("connection reset"))
			},
			expectAnyErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			gormDB, mock := newTestDB(t)
			store := NewGormStore(gormDB)

			tc.mockExpectations(mock)

			got, err := store.FindBooking(context.Background(), tc.id)

			switch {
			case tc.expectedErr != nil:
				assert.ErrorIs(t, err, tc.expectedErr)
			case tc.expectAnyErr:
				assert.Error(t, err)
				assert.NotErrorIs(t, err, ErrNotFound)
			default:
				assert.NoError(t, err)
				assert.Equal(t, tc.expected, got)
			}

			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestMemoryStore_FindBooking(t *testing.T) {
	s := NewMemoryStore(model.MockBookings()...)

	b, err := s.FindBooking(context.Background(), "1234567890123")
	require.NoError(t, err)
	assert.Equal(t, "KongKiat Dome", b.Building)

	_, err = s.FindBooking(context.Background(), "1234567890124")
	assert.ErrorIs(t, err, ErrNotFound)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = s.FindBooking(ctx, "1234567890123")
	assert.ErrorIs(t, err, context.Canceled)
}

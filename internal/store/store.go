package store

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"specialroom-backend/internal/model"
)

// ErrNotFound is returned when no booking has the requested id.
var ErrNotFound = errors.New("booking not found")

// Store defines the read operations behind the booking lookup.
type Store interface {
	FindBooking(ctx context.Context, id string) (model.Booking, error)
}

// GormStore implements Store on top of a GORM connection.
type GormStore struct {
	db *gorm.DB
}

// NewGormStore creates a new GORM-backed store.
func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

// FindBooking loads one booking by its id.
func (s *GormStore) FindBooking(ctx context.Context, id string) (model.Booking, error) {
	var b model.Booking
	err := s.db.WithContext(ctx).First(&b, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Booking{}, ErrNotFound
	}
	if err != nil {
		return model.Booking{}, fmt.Errorf("failed to load booking %q: %w", id, err)
	}
	return b, nil
}

// Seed upserts fixture bookings, refreshing name, building and status of
// rows that already exist.
func (s *GormStore) Seed(ctx context.Context, bookings []model.Booking) error {
	if len(bookings) == 0 {
		return nil
	}
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			DoUpdates: clause.AssignmentColumns([]string{"full_name", "building", "status", "updated_at"}),
		}).Create(&bookings).Error; err != nil {
			return fmt.Errorf("seed bookings failed: %w", err)
		}
		return nil
	})
}

// MemoryStore serves bookings from a fixed in-process set. It is never
// mutated after construction.
type MemoryStore struct {
	bookings map[string]model.Booking
}

// NewMemoryStore creates a store holding the given bookings.
func NewMemoryStore(bookings ...model.Booking) *MemoryStore {
	m := &MemoryStore{bookings: make(map[string]model.Booking, len(bookings))}
	for _, b := range bookings {
		m.bookings[b.ID] = b
	}
	return m
}

// FindBooking returns the booking with the given id.
func (m *MemoryStore) FindBooking(ctx context.Context, id string) (model.Booking, error) {
	if err := ctx.Err(); err != nil {
		return model.Booking{}, err
	}
	b, ok := m.bookings[id]
	if !ok {
		return model.Booking{}, ErrNotFound
	}
	return b, nil
}

// Package booking is the lookup boundary the pages use to fetch a booking
// snapshot by id.
package booking

import (
	"context"
	"errors"
	"fmt"

	"specialroom-backend/internal/model"
	"specialroom-backend/internal/store"
)

// Record is the booking snapshot shown to a visitor.
type Record struct {
	ID       string `json:"-"`
	FullName string `json:"fullName"`
	Building string `json:"building"`
	Status   string `json:"status"`
}

// ErrNotFound is returned when no booking matches the id.
var ErrNotFound = errors.New("booking not found")

// UnavailableError wraps any lookup failure other than a miss.
type UnavailableError struct {
	ID  string
	Err error
}

func (e *UnavailableError) Error() string {
	return fmt.Sprintf("booking %q unavailable: %v", e.ID, e.Err)
}

func (e *UnavailableError) Unwrap() error { return e.Err }

// IsCanceled reports whether err comes from a lookup that was abandoned.
func IsCanceled(err error) bool {
	return errors.Is(err, context.Canceled)
}

// Fetcher fetches one booking. Implementations honor ctx cancellation.
type Fetcher interface {
	Fetch(ctx context.Context, id string) (Record, error)
}

// FromModel converts a stored booking into a record.
func FromModel(b model.Booking) Record {
	return Record{ID: b.ID, FullName: b.FullName, Building: b.Building, Status: b.Status}
}

// StoreFetcher serves lookups straight from a store.
type StoreFetcher struct {
	Store store.Store
}

// Fetch implements Fetcher.
func (f StoreFetcher) Fetch(ctx context.Context, id string) (Record, error) {
	b, err := f.Store.FindBooking(ctx, id)
	switch {
	case err == nil:
		return FromModel(b), nil
	case errors.Is(err, store.ErrNotFound):
		return Record{}, ErrNotFound
	case ctx.Err() != nil:
		return Record{}, ctx.Err()
	default:
		return Record{}, &UnavailableError{ID: id, Err: err}
	}
}

package api

import (
	"specialroom-backend/internal/booking"
)

// Handler holds shared dependencies for API handlers.
type Handler struct {
	fetcher booking.Fetcher
}

// NewHandler creates a new API handler.
func NewHandler(f booking.Fetcher) *Handler {
	return &Handler{
		fetcher: f,
	}
}

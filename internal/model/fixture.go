package model

// MockBookings is the fixture served when no database is configured.
func MockBookings() []Booking {
	return []Booking{
		{
			ID:       "1234567890123",
			FullName: "Johe Doe",
			Building: "KongKiat Dome",
			Status:   "under-review",
		},
	}
}

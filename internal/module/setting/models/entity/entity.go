package entity

import "time"

// Setting is the global booking policy. Exactly one row (id=1) may exist;
// bookings cannot be accepted without it.
type Setting struct {
	ID                  int64     `db:"id" json:"id"`
	MinBookingLength    int       `db:"min_booking_length" json:"min_booking_length"`
	MaxBookingLength    int       `db:"max_booking_length" json:"max_booking_length"`
	MaxGuestsPerBooking int       `db:"max_guests_per_booking" json:"max_guests_per_booking"`
	BreakfastPrice      float64   `db:"breakfast_price" json:"breakfast_price"`
	CreatedAt           time.Time `db:"created_at" json:"created_at"`
	UpdatedAt           time.Time `db:"updated_at" json:"updated_at"`
}

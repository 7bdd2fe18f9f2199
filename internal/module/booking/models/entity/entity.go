package entity

import (
	"database/sql"
	"time"
)

const (
	StatusUnconfirmed = "unconfirmed"
	StatusCheckedIn   = "checked-in"
	StatusCheckedOut  = "checked-out"
)

const (
	RoleAdmin = "admin"
	RoleGuest = "guest"
)

// Actor is the authenticated caller, threaded explicitly through usecases.
type Actor struct {
	ID   int64
	Role string
}

func (a Actor) IsAdmin() bool {
	return a.Role == RoleAdmin
}

type Booking struct {
	ID           int64          `db:"id"`
	CabinID      int64          `db:"cabin_id"`
	GuestID      int64          `db:"guest_id"`
	StartDate    time.Time      `db:"start_date"`
	EndDate      time.Time      `db:"end_date"`
	NumNights    int            `db:"num_nights"`
	NumGuests    int            `db:"num_guests"`
	CabinPrice   float64        `db:"cabin_price"`
	ExtrasPrice  float64        `db:"extras_price"`
	TotalPrice   float64        `db:"total_price"`
	Status       string         `db:"status"`
	HasBreakfast bool           `db:"has_breakfast"`
	IsPaid       bool           `db:"is_paid"`
	Observations sql.NullString `db:"observations"`
	CreatedAt    time.Time      `db:"created_at"`
	UpdatedAt    time.Time      `db:"updated_at"`
}

// BookingWithRelations carries the cabin and guest field subsets joined in
// list and detail queries.
type BookingWithRelations struct {
	Booking
	CabinName        string  `db:"cabin_name"`
	CabinDiscount    float64 `db:"cabin_discount"`
	CabinImageURL    string  `db:"cabin_image_url"`
	CabinMaxCapacity int     `db:"cabin_max_capacity"`
	GuestFullName    string  `db:"guest_full_name"`
	GuestEmail       string  `db:"guest_email"`
}

// Cabin is the booking module's read-only view of the cabins table.
type Cabin struct {
	ID           int64   `db:"id"`
	Name         string  `db:"name"`
	MaxCapacity  int     `db:"max_capacity"`
	RegularPrice float64 `db:"regular_price"`
	Discount     float64 `db:"discount"`
}

// Setting is the booking module's read-only view of the settings singleton.
// The json tags match the cache payload written by the setting module.
type Setting struct {
	ID                  int64   `db:"id" json:"id"`
	MinBookingLength    int     `db:"min_booking_length" json:"min_booking_length"`
	MaxBookingLength    int     `db:"max_booking_length" json:"max_booking_length"`
	MaxGuestsPerBooking int     `db:"max_guests_per_booking" json:"max_guests_per_booking"`
	BreakfastPrice      float64 `db:"breakfast_price" json:"breakfast_price"`
}

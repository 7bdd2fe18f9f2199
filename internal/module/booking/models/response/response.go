package response

import "time"

type UserServiceValidate struct {
	IsValid bool   `json:"is_valid"`
	UserID  int64  `json:"user_id"`
	Role    string `json:"role"`
}

type Metadata struct {
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	Total      int `json:"total"`
	TotalPages int `json:"total_pages"`
}

type CabinSummary struct {
	ID       int64   `json:"id"`
	Name     string  `json:"name"`
	Discount float64 `json:"discount"`
	Image    string  `json:"image"`
}

type GuestSummary struct {
	ID       int64  `json:"id"`
	FullName string `json:"full_name"`
	Email    string `json:"email"`
}

// BookingRow is the list projection joined with cabin and guest subsets.
type BookingRow struct {
	ID         int64        `json:"id"`
	StartDate  time.Time    `json:"start_date"`
	EndDate    time.Time    `json:"end_date"`
	NumNights  int          `json:"num_nights"`
	NumGuests  int          `json:"num_guests"`
	Status     string       `json:"status"`
	TotalPrice float64      `json:"total_price"`
	CreatedAt  time.Time    `json:"created_at"`
	UpdatedAt  time.Time    `json:"updated_at"`
	Cabin      CabinSummary `json:"cabin"`
	Guest      GuestSummary `json:"guest"`
}

type BookingList struct {
	Metadata Metadata     `json:"metadata"`
	Data     []BookingRow `json:"data"`
}

// BookingDetail is the full record returned to administrators.
type BookingDetail struct {
	ID           int64     `json:"id"`
	CabinID      int64     `json:"cabin_id"`
	GuestID      int64     `json:"guest_id"`
	StartDate    time.Time `json:"start_date"`
	EndDate      time.Time `json:"end_date"`
	NumNights    int       `json:"num_nights"`
	NumGuests    int       `json:"num_guests"`
	CabinPrice   float64   `json:"cabin_price"`
	ExtrasPrice  float64   `json:"extras_price"`
	TotalPrice   float64   `json:"total_price"`
	Status       string    `json:"status"`
	HasBreakfast bool      `json:"has_breakfast"`
	IsPaid       bool      `json:"is_paid"`
	Observations string    `json:"observations"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// MyBooking is the restricted subset an owner sees for a single booking.
type MyBooking struct {
	ID           int64          `json:"id"`
	Observations string         `json:"observations"`
	NumGuests    int            `json:"num_guests"`
	Cabin        MyBookingCabin `json:"cabin"`
}

type MyBookingCabin struct {
	ID          int64 `json:"id"`
	MaxCapacity int   `json:"max_capacity"`
}

type BookedDate struct {
	StartDate time.Time `json:"start_date"`
	EndDate   time.Time `json:"end_date"`
}

package request

import (
	"strings"
	"time"

	"github.com/Mohamed-Saad-02/wild-oasis-backend/internal/pkg/errors"
)

var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
}

type CreateBooking struct {
	CabinID      int64  `json:"cabin_id" validate:"required"`
	GuestID      int64  `json:"guest_id"`
	StartDate    string `json:"start_date" validate:"required"`
	EndDate      string `json:"end_date" validate:"required"`
	NumGuests    int    `json:"num_guests" validate:"required,min=1"`
	HasBreakfast bool   `json:"has_breakfast"`
	IsPaid       bool   `json:"is_paid"`
	Observations string `json:"observations" validate:"omitempty,max=500"`
}

// ParseDates validates and parses the stay window. The start may be today but
// not in the past, the end must be strictly after the start. Dates parse as
// UTC midnights, so "today" is measured in UTC as well.
func (r *CreateBooking) ParseDates() (time.Time, time.Time, error) {
	start, err := ParseDate(r.StartDate)
	if err != nil {
		return time.Time{}, time.Time{}, errors.BadRequest("Invalid startDate")
	}
	end, err := ParseDate(r.EndDate)
	if err != nil {
		return time.Time{}, time.Time{}, errors.BadRequest("Invalid endDate")
	}

	today := startOfDay(time.Now().UTC())
	if start.Before(today) {
		return time.Time{}, time.Time{}, errors.BadRequest("startDate must be a future date or today")
	}
	if end.Before(today) {
		return time.Time{}, time.Time{}, errors.BadRequest("endDate must be a future date")
	}
	if !end.After(start) {
		return time.Time{}, time.Time{}, errors.BadRequest("endDate must be after startDate")
	}

	r.Observations = strings.TrimSpace(r.Observations)

	return start, end, nil
}

func ParseDate(value string) (time.Time, error) {
	var lastErr error
	for _, layout := range dateLayouts {
		t, err := time.Parse(layout, value)
		if err == nil {
			return t, nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

type FindAllBookings struct {
	Page      int    `query:"page"`
	Limit     int    `query:"limit"`
	Status    string `query:"status" validate:"omitempty,oneof=unconfirmed checked-in checked-out"`
	SortBy    string `query:"sort_by" validate:"omitempty,oneof=created_at updated_at start_date end_date total_price"`
	SortOrder string `query:"sort_order" validate:"omitempty,oneof=asc desc"`
	GuestID   int64  `query:"-"`
}

// Normalize applies the page/limit defaults.
func (r *FindAllBookings) Normalize() {
	if r.Page < 1 {
		r.Page = 1
	}
	if r.Limit < 1 {
		r.Limit = 10
	}
}

type UpdateBooking struct {
	NumGuests    *int    `json:"num_guests" validate:"omitempty,min=1"`
	Status       *string `json:"status" validate:"omitempty,oneof=unconfirmed checked-in checked-out"`
	HasBreakfast *bool   `json:"has_breakfast"`
	IsPaid       *bool   `json:"is_paid"`
	Observations *string `json:"observations" validate:"omitempty,max=500"`
}

// BookingCreated is the event published after a successful admission.
type BookingCreated struct {
	BookingID int64  `json:"booking_id" validate:"required"`
	GuestID   int64  `json:"guest_id" validate:"required"`
	CabinID   int64  `json:"cabin_id" validate:"required"`
	StartDate string `json:"start_date" validate:"required"`
}

// BookingReminder is the scheduled task payload for pre-arrival reminders.
type BookingReminder struct {
	BookingID int64 `json:"booking_id" validate:"required"`
}

type NotificationMessage struct {
	Message        string `json:"message" validate:"required"`
	EmailRecipient string `json:"email_recipient" validate:"required"`
}

type PoisonedQueue struct {
	TopicTarget string      `json:"topic_target" validate:"required"`
	ErrorMsg    string      `json:"error_msg" validate:"required"`
	Payload     interface{} `json:"payload" validate:"required"`
}

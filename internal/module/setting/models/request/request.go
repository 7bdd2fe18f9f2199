package request

type CreateSetting struct {
	MinBookingLength    int     `json:"min_booking_length" validate:"required,min=1"`
	MaxBookingLength    int     `json:"max_booking_length" validate:"required,gtefield=MinBookingLength"`
	MaxGuestsPerBooking int     `json:"max_guests_per_booking" validate:"required,min=1"`
	BreakfastPrice      float64 `json:"breakfast_price" validate:"required,gte=0"`
}

type UpdateSetting struct {
	MinBookingLength    *int     `json:"min_booking_length" validate:"omitempty,min=1"`
	MaxBookingLength    *int     `json:"max_booking_length" validate:"omitempty,min=1"`
	MaxGuestsPerBooking *int     `json:"max_guests_per_booking" validate:"omitempty,min=1"`
	BreakfastPrice      *float64 `json:"breakfast_price" validate:"omitempty,gte=0"`
}

package usecases

import (
	"context"
	"database/sql"
	"fmt"
	"math"
	"time"

	"github.com/Mohamed-Saad-02/wild-oasis-backend/internal/module/booking/models/entity"
	"github.com/Mohamed-Saad-02/wild-oasis-backend/internal/module/booking/models/request"
	"github.com/Mohamed-Saad-02/wild-oasis-backend/internal/module/booking/models/response"
	"github.com/Mohamed-Saad-02/wild-oasis-backend/internal/module/booking/repositories"
	"github.com/Mohamed-Saad-02/wild-oasis-backend/internal/pkg/errors"
	"github.com/Mohamed-Saad-02/wild-oasis-backend/internal/pkg/log"
	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/goccy/go-json"
)

const (
	TopicBookingCreated = "booking_created"
	TopicNotification   = "notification"
)

type usecase struct {
	repo    repositories.Repositories
	log     log.Logger
	publish message.Publisher
}

type Usecase interface {
	// http
	CreateBooking(ctx context.Context, payload *request.CreateBooking, guestID int64) error
	FindAllBookings(ctx context.Context, filter *request.FindAllBookings) (response.BookingList, error)
	FindBooking(ctx context.Context, id int64) (response.BookingDetail, error)
	GetMyBooking(ctx context.Context, id int64, guestID int64) (response.MyBooking, error)
	UpdateBooking(ctx context.Context, id int64, payload *request.UpdateBooking, actor entity.Actor) error
	RemoveBooking(ctx context.Context, id int64, actor entity.Actor) error
	RemoveAllBookings(ctx context.Context) error
	FindAllAfterDate(ctx context.Context, date string) ([]response.BookingDetail, error)
	FindAllRecentStays(ctx context.Context, date string) ([]response.BookingDetail, error)
	FindTodayActivity(ctx context.Context) ([]response.BookingRow, error)
	GetBookedDates(ctx context.Context, cabinID int64) ([]response.BookedDate, error)
	// queue + scheduler
	ScheduleBookingReminder(ctx context.Context, payload *request.BookingCreated) error
	SendBookingReminder(ctx context.Context, payload *request.BookingReminder) error
}

func New(repo repositories.Repositories, log log.Logger, publish message.Publisher) Usecase {
	return &usecase{
		repo:    repo,
		log:     log,
		publish: publish,
	}
}

// CreateBooking runs the admission pipeline: resolve cabin and owner, bound
// the stay length and guest count against the settings singleton, then price
// and persist. The overlap check and the insert are atomic inside the
// repository, so no partial write can happen on any rejection path.
func (u *usecase) CreateBooking(ctx context.Context, payload *request.CreateBooking, guestID int64) error {
	startDate, endDate, err := payload.ParseDates()
	if err != nil {
		return err
	}

	cabin, err := u.repo.FindCabinByID(ctx, payload.CabinID)
	if err != nil {
		return err
	}
	if cabin.ID == 0 {
		return errors.BadRequest("Cabin does not exist")
	}

	exists, err := u.repo.GuestExists(ctx, guestID)
	if err != nil {
		return err
	}
	if !exists {
		return errors.BadRequest("User does not exist")
	}

	numNights := int(math.Ceil(endDate.Sub(startDate).Hours() / 24))

	setting, err := u.repo.GetSetting(ctx)
	if err != nil {
		return err
	}

	if numNights < setting.MinBookingLength {
		return errors.BadRequest("Booking length is less than minimum")
	}
	if numNights > setting.MaxBookingLength {
		return errors.BadRequest("Booking length is greater than maximum")
	}
	if payload.NumGuests > setting.MaxGuestsPerBooking {
		return errors.BadRequest("Number of guests exceeds maximum allowed")
	}
	if payload.NumGuests > cabin.MaxCapacity {
		return errors.BadRequest("Number of guests exceeds cabin capacity")
	}

	breakfastPrice := float64(0)
	if payload.HasBreakfast {
		breakfastPrice = setting.BreakfastPrice
	}
	cabinPrice := float64(numNights) * (cabin.RegularPrice - cabin.Discount)
	extrasPrice := breakfastPrice * float64(payload.NumGuests) * float64(numNights)

	booking := &entity.Booking{
		CabinID:      payload.CabinID,
		GuestID:      guestID,
		StartDate:    startDate,
		EndDate:      endDate,
		NumNights:    numNights,
		NumGuests:    payload.NumGuests,
		CabinPrice:   cabinPrice,
		ExtrasPrice:  extrasPrice,
		TotalPrice:   cabinPrice + extrasPrice,
		Status:       entity.StatusUnconfirmed,
		HasBreakfast: payload.HasBreakfast,
		IsPaid:       payload.IsPaid,
		Observations: sql.NullString{String: payload.Observations, Valid: payload.Observations != ""},
	}

	bookingID, err := u.repo.CreateBooking(ctx, booking)
	if err != nil {
		return err
	}

	// best effort, the booking is already durable
	event := request.BookingCreated{
		BookingID: bookingID,
		GuestID:   guestID,
		CabinID:   cabin.ID,
		StartDate: startDate.Format(time.RFC3339),
	}
	jsonPayload, _ := json.Marshal(event)
	if err := u.publish.Publish(TopicBookingCreated, message.NewMessage(watermill.NewUUID(), jsonPayload)); err != nil {
		u.log.Error(ctx, "error publish booking created event", err)
	}

	return nil
}

func (u *usecase) FindAllBookings(ctx context.Context, filter *request.FindAllBookings) (response.BookingList, error) {
	filter.Normalize()

	bookings, total, err := u.repo.FindBookings(ctx, filter)
	if err != nil {
		return response.BookingList{}, err
	}

	totalPages := 0
	if total > 0 {
		totalPages = int(math.Ceil(float64(total) / float64(filter.Limit)))
	}

	rows := make([]response.BookingRow, 0, len(bookings))
	for _, booking := range bookings {
		rows = append(rows, toBookingRow(booking))
	}

	return response.BookingList{
		Metadata: response.Metadata{
			Page:       filter.Page,
			Limit:      filter.Limit,
			Total:      total,
			TotalPages: totalPages,
		},
		Data: rows,
	}, nil
}

func (u *usecase) FindBooking(ctx context.Context, id int64) (response.BookingDetail, error) {
	booking, err := u.repo.FindBookingByID(ctx, id)
	if err != nil {
		return response.BookingDetail{}, err
	}
	if booking.ID == 0 {
		return response.BookingDetail{}, errors.NotFound("Booking not found")
	}
	return toBookingDetail(booking.Booking), nil
}

func (u *usecase) GetMyBooking(ctx context.Context, id int64, guestID int64) (response.MyBooking, error) {
	booking, err := u.repo.FindBookingByIDForGuest(ctx, id, guestID)
	if err != nil {
		return response.MyBooking{}, err
	}
	if booking.ID == 0 {
		return response.MyBooking{}, errors.NotFound("Booking not found")
	}
	return response.MyBooking{
		ID:           booking.ID,
		Observations: booking.Observations.String,
		NumGuests:    booking.NumGuests,
		Cabin: response.MyBookingCabin{
			ID:          booking.CabinID,
			MaxCapacity: booking.CabinMaxCapacity,
		},
	}, nil
}

// UpdateBooking scopes the lookup to the owner for non-admin actors, so a
// booking that belongs to someone else surfaces as NotFound, not Forbidden.
// RemoveBooking deliberately behaves differently, see below.
func (u *usecase) UpdateBooking(ctx context.Context, id int64, payload *request.UpdateBooking, actor entity.Actor) error {
	var booking entity.BookingWithRelations
	var err error
	if actor.ID != 0 && !actor.IsAdmin() {
		booking, err = u.repo.FindBookingByIDForGuest(ctx, id, actor.ID)
	} else {
		booking, err = u.repo.FindBookingByID(ctx, id)
	}
	if err != nil {
		return err
	}
	if booking.ID == 0 {
		return errors.NotFound("Booking not found")
	}

	return u.repo.UpdateBooking(ctx, id, payload)
}

// RemoveBooking loads the booking unscoped and rejects a non-admin non-owner
// with an explicit authorization error.
func (u *usecase) RemoveBooking(ctx context.Context, id int64, actor entity.Actor) error {
	booking, err := u.repo.FindBookingByID(ctx, id)
	if err != nil {
		return err
	}
	if booking.ID == 0 {
		return errors.NotFound("Booking not found")
	}

	if actor.ID != 0 && !actor.IsAdmin() && booking.GuestID != actor.ID {
		return errors.Forbidden("You are not authorized to delete this booking")
	}

	return u.repo.DeleteBooking(ctx, id)
}

func (u *usecase) RemoveAllBookings(ctx context.Context) error {
	return u.repo.DeleteAllBookings(ctx)
}

// FindAllAfterDate returns bookings created between the given date and the
// end of today, UTC.
func (u *usecase) FindAllAfterDate(ctx context.Context, date string) ([]response.BookingDetail, error) {
	from, to, err := utcWindow(date)
	if err != nil {
		return nil, err
	}

	bookings, err := u.repo.FindBookingsCreatedBetween(ctx, from, to)
	if err != nil {
		return nil, err
	}

	return toBookingDetails(bookings), nil
}

// FindAllRecentStays returns checked-in or checked-out bookings whose stay
// started between the given date and the end of today, UTC.
func (u *usecase) FindAllRecentStays(ctx context.Context, date string) ([]response.BookingDetail, error) {
	from, to, err := utcWindow(date)
	if err != nil {
		return nil, err
	}

	bookings, err := u.repo.FindRecentStays(ctx, from, to)
	if err != nil {
		return nil, err
	}

	return toBookingDetails(bookings), nil
}

// FindTodayActivity uses local midnights, unlike the UTC end-of-day windows
// above. The asymmetry is intentional.
func (u *usecase) FindTodayActivity(ctx context.Context) ([]response.BookingRow, error) {
	now := time.Now()
	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	dayEnd := dayStart.AddDate(0, 0, 1)

	bookings, err := u.repo.FindTodayActivity(ctx, dayStart, dayEnd)
	if err != nil {
		return nil, err
	}

	rows := make([]response.BookingRow, 0, len(bookings))
	for _, booking := range bookings {
		rows = append(rows, toBookingRow(booking))
	}
	return rows, nil
}

func (u *usecase) GetBookedDates(ctx context.Context, cabinID int64) ([]response.BookedDate, error) {
	exists, err := u.repo.CabinExists(ctx, cabinID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, errors.NotFound("Cabin not found")
	}

	now := time.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	bookings, err := u.repo.FindBookedDates(ctx, cabinID, today)
	if err != nil {
		return nil, err
	}

	dates := make([]response.BookedDate, 0, len(bookings))
	for _, booking := range bookings {
		dates = append(dates, response.BookedDate{
			StartDate: booking.StartDate,
			EndDate:   booking.EndDate,
		})
	}
	return dates, nil
}

// ScheduleBookingReminder schedules a pre-arrival reminder task a day before
// check-in. Stays starting sooner than that get no reminder.
func (u *usecase) ScheduleBookingReminder(ctx context.Context, payload *request.BookingCreated) error {
	startDate, err := request.ParseDate(payload.StartDate)
	if err != nil {
		return errors.BadRequest("Invalid startDate")
	}

	remindAt := startDate.Add(-24 * time.Hour)
	if !remindAt.After(time.Now()) {
		u.log.Info(ctx, "skip reminder for booking starting too soon", payload.BookingID)
		return nil
	}

	reminder := request.BookingReminder{BookingID: payload.BookingID}
	jsonPayload, _ := json.Marshal(reminder)

	taskID, err := u.repo.SetTaskScheduler(ctx, remindAt, jsonPayload)
	if err != nil {
		return err
	}

	u.log.Info(ctx, "scheduled booking reminder", payload.BookingID, taskID)
	return nil
}

// SendBookingReminder re-checks the booking still exists before notifying, so
// reminders for bookings deleted in the meantime are silently dropped.
func (u *usecase) SendBookingReminder(ctx context.Context, payload *request.BookingReminder) error {
	booking, err := u.repo.FindBookingByID(ctx, payload.BookingID)
	if err != nil {
		return err
	}
	if booking.ID == 0 {
		return nil
	}

	notification := request.NotificationMessage{
		Message: fmt.Sprintf("Reminder: your stay at %s starts on %s",
			booking.CabinName, booking.StartDate.Format("2006-01-02")),
		EmailRecipient: booking.GuestEmail,
	}
	jsonPayload, _ := json.Marshal(notification)

	return u.publish.Publish(TopicNotification, message.NewMessage(watermill.NewUUID(), jsonPayload))
}

func utcWindow(date string) (time.Time, time.Time, error) {
	if date == "" {
		return time.Time{}, time.Time{}, errors.BadRequest("Date is required")
	}
	from, err := request.ParseDate(date)
	if err != nil {
		return time.Time{}, time.Time{}, errors.BadRequest("Invalid date")
	}

	now := time.Now().UTC()
	to := time.Date(now.Year(), now.Month(), now.Day(), 23, 59, 59, 999*int(time.Millisecond), time.UTC)
	return from, to, nil
}

func toBookingRow(booking entity.BookingWithRelations) response.BookingRow {
	return response.BookingRow{
		ID:         booking.ID,
		StartDate:  booking.StartDate,
		EndDate:    booking.EndDate,
		NumNights:  booking.NumNights,
		NumGuests:  booking.NumGuests,
		Status:     booking.Status,
		TotalPrice: booking.TotalPrice,
		CreatedAt:  booking.CreatedAt,
		UpdatedAt:  booking.UpdatedAt,
		Cabin: response.CabinSummary{
			ID:       booking.CabinID,
			Name:     booking.CabinName,
			Discount: booking.CabinDiscount,
			Image:    booking.CabinImageURL,
		},
		Guest: response.GuestSummary{
			ID:       booking.GuestID,
			FullName: booking.GuestFullName,
			Email:    booking.GuestEmail,
		},
	}
}

func toBookingDetail(booking entity.Booking) response.BookingDetail {
	return response.BookingDetail{
		ID:           booking.ID,
		CabinID:      booking.CabinID,
		GuestID:      booking.GuestID,
		StartDate:    booking.StartDate,
		EndDate:      booking.EndDate,
		NumNights:    booking.NumNights,
		NumGuests:    booking.NumGuests,
		CabinPrice:   booking.CabinPrice,
		ExtrasPrice:  booking.ExtrasPrice,
		TotalPrice:   booking.TotalPrice,
		Status:       booking.Status,
		HasBreakfast: booking.HasBreakfast,
		IsPaid:       booking.IsPaid,
		Observations: booking.Observations.String,
		CreatedAt:    booking.CreatedAt,
		UpdatedAt:    booking.UpdatedAt,
	}
}

func toBookingDetails(bookings []entity.Booking) []response.BookingDetail {
	details := make([]response.BookingDetail, 0, len(bookings))
	for _, booking := range bookings {
		details = append(details, toBookingDetail(booking))
	}
	return details
}

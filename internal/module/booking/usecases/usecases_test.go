package usecases_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/Mohamed-Saad-02/wild-oasis-backend/internal/module/booking/mocks"
	"github.com/Mohamed-Saad-02/wild-oasis-backend/internal/module/booking/models/entity"
	"github.com/Mohamed-Saad-02/wild-oasis-backend/internal/module/booking/models/request"
	"github.com/Mohamed-Saad-02/wild-oasis-backend/internal/module/booking/usecases"
	"github.com/Mohamed-Saad-02/wild-oasis-backend/internal/pkg/errors"
	"github.com/Mohamed-Saad-02/wild-oasis-backend/internal/pkg/log"
	log_internal "github.com/Mohamed-Saad-02/wild-oasis-backend/internal/pkg/log"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

var (
	uc       usecases.Usecase
	repoMock *mocks.Repositories
	logMock  log.Logger
	p        message.Publisher
)

type mockPublisher struct{}

// Close implements message.Publisher.
func (m *mockPublisher) Close() error {
	return nil
}

// Publish implements message.Publisher.
func (m *mockPublisher) Publish(topic string, messages ...*message.Message) error {
	return nil
}

func NewMockPublisher() message.Publisher {
	return &mockPublisher{}
}

func setup() {
	repoMock = new(mocks.Repositories)
	p = NewMockPublisher()
	logZap := log_internal.SetupLogger()
	log_internal.Init(logZap)
	logMock = log_internal.GetLogger()
	uc = usecases.New(repoMock, logMock, p)
}

func teardown() {
	repoMock = nil
	uc = nil
}

func defaultSetting() entity.Setting {
	return entity.Setting{
		ID:                  1,
		MinBookingLength:    2,
		MaxBookingLength:    30,
		MaxGuestsPerBooking: 4,
		BreakfastPrice:      15,
	}
}

func defaultCabin() entity.Cabin {
	return entity.Cabin{
		ID:           1,
		Name:         "001",
		MaxCapacity:  4,
		RegularPrice: 100,
		Discount:     20,
	}
}

func stayDates(startInDays, nights int) (string, string) {
	start := time.Now().AddDate(0, 0, startInDays)
	end := start.AddDate(0, 0, nights)
	return start.Format("2006-01-02"), end.Format("2006-01-02")
}

func TestCreateBooking(t *testing.T) {
	t.Run("success with breakfast pricing", func(t *testing.T) {
		setup()
		defer teardown()
		ctx := context.Background()

		startDate, endDate := stayDates(10, 3)
		payload := request.CreateBooking{
			CabinID:      1,
			StartDate:    startDate,
			EndDate:      endDate,
			NumGuests:    2,
			HasBreakfast: true,
		}

		parsedStart, _ := time.Parse("2006-01-02", startDate)
		parsedEnd, _ := time.Parse("2006-01-02", endDate)

		// 3 nights * (100 - 20) = 240, breakfast 15 * 2 guests * 3 nights = 90
		expectedBooking := entity.Booking{
			CabinID:      1,
			GuestID:      7,
			StartDate:    parsedStart,
			EndDate:      parsedEnd,
			NumNights:    3,
			NumGuests:    2,
			CabinPrice:   240,
			ExtrasPrice:  90,
			TotalPrice:   330,
			Status:       entity.StatusUnconfirmed,
			HasBreakfast: true,
		}

		repoMock.On("FindCabinByID", ctx, int64(1)).Return(defaultCabin(), nil)
		repoMock.On("GuestExists", ctx, int64(7)).Return(true, nil)
		repoMock.On("GetSetting", ctx).Return(defaultSetting(), nil)
		repoMock.On("CreateBooking", ctx, &expectedBooking).Return(int64(10), nil)

		err := uc.CreateBooking(ctx, &payload, 7)

		assert.NoError(t, err)
		repoMock.AssertExpectations(t)
	})

	t.Run("cabin does not exist", func(t *testing.T) {
		setup()
		defer teardown()
		ctx := context.Background()

		startDate, endDate := stayDates(10, 3)
		payload := request.CreateBooking{
			CabinID:   99,
			StartDate: startDate,
			EndDate:   endDate,
			NumGuests: 2,
		}

		repoMock.On("FindCabinByID", ctx, int64(99)).Return(entity.Cabin{}, nil)

		err := uc.CreateBooking(ctx, &payload, 7)

		assert.Equal(t, errors.BadRequest("Cabin does not exist"), err)
	})

	t.Run("guest does not exist", func(t *testing.T) {
		setup()
		defer teardown()
		ctx := context.Background()

		startDate, endDate := stayDates(10, 3)
		payload := request.CreateBooking{
			CabinID:   1,
			StartDate: startDate,
			EndDate:   endDate,
			NumGuests: 2,
		}

		repoMock.On("FindCabinByID", ctx, int64(1)).Return(defaultCabin(), nil)
		repoMock.On("GuestExists", ctx, int64(7)).Return(false, nil)

		err := uc.CreateBooking(ctx, &payload, 7)

		assert.Equal(t, errors.BadRequest("User does not exist"), err)
	})

	t.Run("stay shorter than minimum", func(t *testing.T) {
		setup()
		defer teardown()
		ctx := context.Background()

		startDate, endDate := stayDates(10, 1)
		payload := request.CreateBooking{
			CabinID:   1,
			StartDate: startDate,
			EndDate:   endDate,
			NumGuests: 2,
		}

		repoMock.On("FindCabinByID", ctx, int64(1)).Return(defaultCabin(), nil)
		repoMock.On("GuestExists", ctx, int64(7)).Return(true, nil)
		repoMock.On("GetSetting", ctx).Return(defaultSetting(), nil)

		err := uc.CreateBooking(ctx, &payload, 7)

		assert.Equal(t, errors.BadRequest("Booking length is less than minimum"), err)
	})

	t.Run("stay longer than maximum", func(t *testing.T) {
		setup()
		defer teardown()
		ctx := context.Background()

		startDate, endDate := stayDates(10, 31)
		payload := request.CreateBooking{
			CabinID:   1,
			StartDate: startDate,
			EndDate:   endDate,
			NumGuests: 2,
		}

		repoMock.On("FindCabinByID", ctx, int64(1)).Return(defaultCabin(), nil)
		repoMock.On("GuestExists", ctx, int64(7)).Return(true, nil)
		repoMock.On("GetSetting", ctx).Return(defaultSetting(), nil)

		err := uc.CreateBooking(ctx, &payload, 7)

		assert.Equal(t, errors.BadRequest("Booking length is greater than maximum"), err)
	})

	t.Run("guest count above policy maximum", func(t *testing.T) {
		setup()
		defer teardown()
		ctx := context.Background()

		startDate, endDate := stayDates(10, 3)
		payload := request.CreateBooking{
			CabinID:   1,
			StartDate: startDate,
			EndDate:   endDate,
			NumGuests: 5,
		}

		repoMock.On("FindCabinByID", ctx, int64(1)).Return(defaultCabin(), nil)
		repoMock.On("GuestExists", ctx, int64(7)).Return(true, nil)
		repoMock.On("GetSetting", ctx).Return(defaultSetting(), nil)

		err := uc.CreateBooking(ctx, &payload, 7)

		assert.Equal(t, errors.BadRequest("Number of guests exceeds maximum allowed"), err)
	})

	t.Run("guest count above cabin capacity", func(t *testing.T) {
		setup()
		defer teardown()
		ctx := context.Background()

		startDate, endDate := stayDates(10, 3)
		payload := request.CreateBooking{
			CabinID:   1,
			StartDate: startDate,
			EndDate:   endDate,
			NumGuests: 3,
		}

		smallCabin := defaultCabin()
		smallCabin.MaxCapacity = 2

		repoMock.On("FindCabinByID", ctx, int64(1)).Return(smallCabin, nil)
		repoMock.On("GuestExists", ctx, int64(7)).Return(true, nil)
		repoMock.On("GetSetting", ctx).Return(defaultSetting(), nil)

		err := uc.CreateBooking(ctx, &payload, 7)

		assert.Equal(t, errors.BadRequest("Number of guests exceeds cabin capacity"), err)
	})

	t.Run("overlap rejection propagates", func(t *testing.T) {
		setup()
		defer teardown()
		ctx := context.Background()

		startDate, endDate := stayDates(10, 3)
		payload := request.CreateBooking{
			CabinID:   1,
			StartDate: startDate,
			EndDate:   endDate,
			NumGuests: 2,
		}

		repoMock.On("FindCabinByID", ctx, int64(1)).Return(defaultCabin(), nil)
		repoMock.On("GuestExists", ctx, int64(7)).Return(true, nil)
		repoMock.On("GetSetting", ctx).Return(defaultSetting(), nil)
		repoMock.On("CreateBooking", ctx, mock.Anything).
			Return(int64(0), errors.BadRequest("Cabin is already booked for the selected dates"))

		err := uc.CreateBooking(ctx, &payload, 7)

		assert.Equal(t, errors.BadRequest("Cabin is already booked for the selected dates"), err)
	})

	t.Run("end date not after start date", func(t *testing.T) {
		setup()
		defer teardown()
		ctx := context.Background()

		startDate, _ := stayDates(10, 3)
		payload := request.CreateBooking{
			CabinID:   1,
			StartDate: startDate,
			EndDate:   startDate,
			NumGuests: 2,
		}

		err := uc.CreateBooking(ctx, &payload, 7)

		assert.Equal(t, errors.BadRequest("endDate must be after startDate"), err)
	})
}

func TestFindAllBookings(t *testing.T) {
	setup()
	defer teardown()
	ctx := context.Background()

	t.Run("success with pagination metadata", func(t *testing.T) {
		filter := request.FindAllBookings{Page: 2, Limit: 10, Status: entity.StatusUnconfirmed}

		rows := []entity.BookingWithRelations{
			{
				Booking:       entity.Booking{ID: 11, CabinID: 1, GuestID: 7, NumNights: 3, NumGuests: 2, TotalPrice: 330, Status: entity.StatusUnconfirmed},
				CabinName:     "001",
				GuestFullName: "John Doe",
				GuestEmail:    "john@example.com",
			},
		}

		repoMock.On("FindBookings", ctx, &filter).Return(rows, 25, nil)

		resp, err := uc.FindAllBookings(ctx, &filter)

		assert.NoError(t, err)
		assert.Equal(t, 25, resp.Metadata.Total)
		assert.Equal(t, 3, resp.Metadata.TotalPages)
		assert.Len(t, resp.Data, 1)
		assert.Equal(t, "John Doe", resp.Data[0].Guest.FullName)
	})

	t.Run("empty result has zero total pages", func(t *testing.T) {
		filter := request.FindAllBookings{Page: 1, Limit: 10}

		repoMock.On("FindBookings", ctx, &filter).Return([]entity.BookingWithRelations{}, 0, nil)

		resp, err := uc.FindAllBookings(ctx, &filter)

		assert.NoError(t, err)
		assert.Equal(t, 0, resp.Metadata.Total)
		assert.Equal(t, 0, resp.Metadata.TotalPages)
		assert.Empty(t, resp.Data)
	})
}

func TestFindBooking(t *testing.T) {
	setup()
	defer teardown()
	ctx := context.Background()

	t.Run("not found", func(t *testing.T) {
		repoMock.On("FindBookingByID", ctx, int64(404)).Return(entity.BookingWithRelations{}, nil)

		_, err := uc.FindBooking(ctx, 404)

		assert.Equal(t, errors.NotFound("Booking not found"), err)
	})
}

func TestUpdateBooking(t *testing.T) {
	t.Run("admin updates any booking", func(t *testing.T) {
		setup()
		defer teardown()
		ctx := context.Background()

		status := entity.StatusCheckedIn
		payload := request.UpdateBooking{Status: &status}
		actor := entity.Actor{ID: 1, Role: entity.RoleAdmin}

		booking := entity.BookingWithRelations{Booking: entity.Booking{ID: 11, GuestID: 7}}
		repoMock.On("FindBookingByID", ctx, int64(11)).Return(booking, nil)
		repoMock.On("UpdateBooking", ctx, int64(11), &payload).Return(nil)

		err := uc.UpdateBooking(ctx, 11, &payload, actor)

		assert.NoError(t, err)
	})

	t.Run("guest cannot reach someone else's booking", func(t *testing.T) {
		setup()
		defer teardown()
		ctx := context.Background()

		numGuests := 3
		payload := request.UpdateBooking{NumGuests: &numGuests}
		actor := entity.Actor{ID: 5, Role: entity.RoleGuest}

		repoMock.On("FindBookingByIDForGuest", ctx, int64(11), int64(5)).Return(entity.BookingWithRelations{}, nil)

		err := uc.UpdateBooking(ctx, 11, &payload, actor)

		assert.Equal(t, errors.NotFound("Booking not found"), err)
	})
}

func TestRemoveBooking(t *testing.T) {
	t.Run("admin removes any booking", func(t *testing.T) {
		setup()
		defer teardown()
		ctx := context.Background()

		booking := entity.BookingWithRelations{Booking: entity.Booking{ID: 11, GuestID: 7}}
		repoMock.On("FindBookingByID", ctx, int64(11)).Return(booking, nil)
		repoMock.On("DeleteBooking", ctx, int64(11)).Return(nil)

		err := uc.RemoveBooking(ctx, 11, entity.Actor{ID: 1, Role: entity.RoleAdmin})

		assert.NoError(t, err)
	})

	t.Run("non-owner is rejected explicitly", func(t *testing.T) {
		setup()
		defer teardown()
		ctx := context.Background()

		booking := entity.BookingWithRelations{Booking: entity.Booking{ID: 11, GuestID: 7}}
		repoMock.On("FindBookingByID", ctx, int64(11)).Return(booking, nil)

		err := uc.RemoveBooking(ctx, 11, entity.Actor{ID: 5, Role: entity.RoleGuest})

		assert.Equal(t, errors.Forbidden("You are not authorized to delete this booking"), err)
	})

	t.Run("owner removes own booking", func(t *testing.T) {
		setup()
		defer teardown()
		ctx := context.Background()

		booking := entity.BookingWithRelations{Booking: entity.Booking{ID: 11, GuestID: 5}}
		repoMock.On("FindBookingByID", ctx, int64(11)).Return(booking, nil)
		repoMock.On("DeleteBooking", ctx, int64(11)).Return(nil)

		err := uc.RemoveBooking(ctx, 11, entity.Actor{ID: 5, Role: entity.RoleGuest})

		assert.NoError(t, err)
	})
}

func TestFindAllAfterDate(t *testing.T) {
	setup()
	defer teardown()
	ctx := context.Background()

	t.Run("date is required", func(t *testing.T) {
		_, err := uc.FindAllAfterDate(ctx, "")

		assert.Equal(t, errors.BadRequest("Date is required"), err)
	})

	t.Run("success", func(t *testing.T) {
		bookings := []entity.Booking{{ID: 11, TotalPrice: 330}}
		endOfToday := mock.MatchedBy(func(to time.Time) bool {
			return to.Location() == time.UTC && to.Hour() == 23 && to.Minute() == 59 &&
				to.Second() == 59 && to.Nanosecond() == 999*int(time.Millisecond)
		})
		repoMock.On("FindBookingsCreatedBetween", ctx, mock.Anything, endOfToday).Return(bookings, nil)

		resp, err := uc.FindAllAfterDate(ctx, "2026-08-01")

		assert.NoError(t, err)
		assert.Len(t, resp, 1)
		assert.Equal(t, float64(330), resp[0].TotalPrice)
	})
}

func TestGetBookedDates(t *testing.T) {
	t.Run("cabin not found", func(t *testing.T) {
		setup()
		defer teardown()
		ctx := context.Background()

		repoMock.On("CabinExists", ctx, int64(99)).Return(false, nil)

		_, err := uc.GetBookedDates(ctx, 99)

		assert.Equal(t, errors.NotFound("Cabin not found"), err)
	})

	t.Run("success", func(t *testing.T) {
		setup()
		defer teardown()
		ctx := context.Background()

		start := time.Now().AddDate(0, 0, 5)
		end := start.AddDate(0, 0, 3)
		bookings := []entity.Booking{{ID: 11, StartDate: start, EndDate: end}}

		repoMock.On("CabinExists", ctx, int64(1)).Return(true, nil)
		repoMock.On("FindBookedDates", ctx, int64(1), mock.Anything).Return(bookings, nil)

		resp, err := uc.GetBookedDates(ctx, 1)

		assert.NoError(t, err)
		assert.Len(t, resp, 1)
		assert.Equal(t, start, resp[0].StartDate)
		assert.Equal(t, end, resp[0].EndDate)
	})
}

func TestScheduleBookingReminder(t *testing.T) {
	t.Run("schedules a day before check-in", func(t *testing.T) {
		setup()
		defer teardown()
		ctx := context.Background()

		startDate := time.Now().UTC().AddDate(0, 0, 10).Truncate(time.Second)
		payload := request.BookingCreated{
			BookingID: 10,
			GuestID:   7,
			CabinID:   1,
			StartDate: startDate.Format(time.RFC3339),
		}

		remindAt := startDate.Add(-24 * time.Hour)
		jsonPayload, _ := json.Marshal(request.BookingReminder{BookingID: 10})

		repoMock.On("SetTaskScheduler", ctx, remindAt, jsonPayload).Return("task-1", nil)

		err := uc.ScheduleBookingReminder(ctx, &payload)

		assert.NoError(t, err)
		repoMock.AssertExpectations(t)
	})

	t.Run("stay starting too soon gets no reminder", func(t *testing.T) {
		setup()
		defer teardown()
		ctx := context.Background()

		payload := request.BookingCreated{
			BookingID: 10,
			GuestID:   7,
			CabinID:   1,
			StartDate: time.Now().UTC().Add(12 * time.Hour).Format(time.RFC3339),
		}

		err := uc.ScheduleBookingReminder(ctx, &payload)

		assert.NoError(t, err)
		repoMock.AssertNotCalled(t, "SetTaskScheduler", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestSendBookingReminder(t *testing.T) {
	t.Run("booking still exists", func(t *testing.T) {
		setup()
		defer teardown()
		ctx := context.Background()

		booking := entity.BookingWithRelations{
			Booking:    entity.Booking{ID: 10, StartDate: time.Now().AddDate(0, 0, 1)},
			CabinName:  "001",
			GuestEmail: "john@example.com",
		}
		repoMock.On("FindBookingByID", ctx, int64(10)).Return(booking, nil)

		err := uc.SendBookingReminder(ctx, &request.BookingReminder{BookingID: 10})

		assert.NoError(t, err)
	})

	t.Run("booking deleted in the meantime", func(t *testing.T) {
		setup()
		defer teardown()
		ctx := context.Background()

		repoMock.On("FindBookingByID", ctx, int64(10)).Return(entity.BookingWithRelations{}, nil)

		err := uc.SendBookingReminder(ctx, &request.BookingReminder{BookingID: 10})

		assert.NoError(t, err)
	})
}

package handler_test

import (
	"context"
	"testing"
	"time"

	"github.com/Mohamed-Saad-02/wild-oasis-backend/internal/module/booking/handler"
	"github.com/Mohamed-Saad-02/wild-oasis-backend/internal/module/booking/mocks"
	"github.com/Mohamed-Saad-02/wild-oasis-backend/internal/module/booking/models/entity"
	"github.com/Mohamed-Saad-02/wild-oasis-backend/internal/module/booking/models/request"
	"github.com/Mohamed-Saad-02/wild-oasis-backend/internal/module/booking/models/response"
	log_internal "github.com/Mohamed-Saad-02/wild-oasis-backend/internal/pkg/log"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	"github.com/hibiken/asynq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
	"github.com/valyala/fasthttp"
)

var (
	h             *handler.BookingHandler
	ucm           *mocks.Usecase
	logMock       *otelzap.Logger
	app           *fiber.App
	validatorTest *validator.Validate
	p             message.Publisher
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
	ucm = &mocks.Usecase{}
	logMock = log_internal.Setup()
	validatorTest = validator.New()
	p = NewMockPublisher()
	h = &handler.BookingHandler{
		Log:       logMock,
		Validator: validatorTest,
		Usecase:   ucm,
		Publish:   p,
	}
	app = fiber.New()
}

func teardown() {
	ucm = nil
	logMock = nil
	validatorTest = nil
	p = nil
	h = nil
	app = nil
}

func TestCreateMyBooking(t *testing.T) {
	setup()
	defer teardown()
	t.Run("success", func(t *testing.T) {
		// mock data
		start := time.Now().AddDate(0, 0, 10).Format("2006-01-02")
		end := time.Now().AddDate(0, 0, 13).Format("2006-01-02")
		payload := request.CreateBooking{
			CabinID:      1,
			StartDate:    start,
			EndDate:      end,
			NumGuests:    2,
			HasBreakfast: true,
		}

		jsonData, _ := json.Marshal(payload)

		ctx := app.AcquireCtx(&fasthttp.RequestCtx{})
		ctx.Request().SetRequestURI("/api/v1/bookings/me")
		ctx.Request().Header.SetContentType("application/json")
		ctx.Request().Header.SetMethod("POST")
		ctx.Request().SetBody(jsonData)
		ctx.Locals("user_id", int64(7))
		ctx.Locals("user_role", entity.RoleGuest)

		// mock usecase
		ucm.On("CreateBooking", mock.Anything, &payload, int64(7)).Return(nil)

		// test
		err := h.CreateMyBooking(ctx)

		// assertion
		assert.NoError(t, err)
	})
}

func TestCreateBooking(t *testing.T) {
	setup()
	defer teardown()
	t.Run("guest_id required on the admin route", func(t *testing.T) {
		// mock data
		start := time.Now().AddDate(0, 0, 10).Format("2006-01-02")
		end := time.Now().AddDate(0, 0, 13).Format("2006-01-02")
		payload := request.CreateBooking{
			CabinID:   1,
			StartDate: start,
			EndDate:   end,
			NumGuests: 2,
		}

		jsonData, _ := json.Marshal(payload)

		ctx := app.AcquireCtx(&fasthttp.RequestCtx{})
		ctx.Request().SetRequestURI("/api/v1/bookings")
		ctx.Request().Header.SetContentType("application/json")
		ctx.Request().Header.SetMethod("POST")
		ctx.Request().SetBody(jsonData)
		ctx.Locals("user_id", int64(1))
		ctx.Locals("user_role", entity.RoleAdmin)

		// test
		err := h.CreateBooking(ctx)

		// assertion
		assert.NoError(t, err)
		assert.Equal(t, fiber.StatusBadRequest, ctx.Response().StatusCode())
		ucm.AssertNotCalled(t, "CreateBooking", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestShowBookings(t *testing.T) {
	setup()
	defer teardown()
	t.Run("success", func(t *testing.T) {
		// mock data
		ctx := app.AcquireCtx(&fasthttp.RequestCtx{})
		ctx.Request().SetRequestURI("/api/v1/bookings?status=unconfirmed")
		ctx.Request().Header.SetContentType("application/json")
		ctx.Request().Header.SetMethod("GET")
		ctx.Locals("user_id", int64(1))
		ctx.Locals("user_role", entity.RoleAdmin)

		expected := request.FindAllBookings{Status: entity.StatusUnconfirmed}

		// mock usecase
		ucm.On("FindAllBookings", mock.Anything, &expected).Return(response.BookingList{}, nil)

		// test
		err := h.ShowBookings(ctx)

		// assertion
		assert.NoError(t, err)
	})
}

func TestShowMyBookings(t *testing.T) {
	setup()
	defer teardown()
	t.Run("scoped to the caller", func(t *testing.T) {
		// mock data
		ctx := app.AcquireCtx(&fasthttp.RequestCtx{})
		ctx.Request().SetRequestURI("/api/v1/bookings/me")
		ctx.Request().Header.SetContentType("application/json")
		ctx.Request().Header.SetMethod("GET")
		ctx.Locals("user_id", int64(7))
		ctx.Locals("user_role", entity.RoleGuest)

		expected := request.FindAllBookings{GuestID: 7}

		// mock usecase
		ucm.On("FindAllBookings", mock.Anything, &expected).Return(response.BookingList{}, nil)

		// test
		err := h.ShowMyBookings(ctx)

		// assertion
		assert.NoError(t, err)
	})
}

func TestShowTodayActivity(t *testing.T) {
	setup()
	defer teardown()
	t.Run("success", func(t *testing.T) {
		// mock data
		ctx := app.AcquireCtx(&fasthttp.RequestCtx{})
		ctx.Request().SetRequestURI("/api/v1/bookings/today-activity")
		ctx.Request().Header.SetMethod("GET")

		// mock usecase
		ucm.On("FindTodayActivity", mock.Anything).Return([]response.BookingRow{}, nil)

		// test
		err := h.ShowTodayActivity(ctx)

		// assertion
		assert.NoError(t, err)
	})
}

func TestShowBookingsAfterDate(t *testing.T) {
	setup()
	defer teardown()
	t.Run("passes the date query through", func(t *testing.T) {
		// mock data
		ctx := app.AcquireCtx(&fasthttp.RequestCtx{})
		ctx.Request().SetRequestURI("/api/v1/bookings/after-date?date=2026-08-01")
		ctx.Request().Header.SetMethod("GET")

		// mock usecase
		ucm.On("FindAllAfterDate", mock.Anything, "2026-08-01").Return([]response.BookingDetail{}, nil)

		// test
		err := h.ShowBookingsAfterDate(ctx)

		// assertion
		assert.NoError(t, err)
	})
}

func TestConsumeBookingCreatedQueue(t *testing.T) {
	setup()
	defer teardown()
	t.Run("success", func(t *testing.T) {
		// mock data
		payload := request.BookingCreated{
			BookingID: 10,
			GuestID:   7,
			CabinID:   1,
			StartDate: "2026-09-10T00:00:00Z",
		}

		jsonData, _ := json.Marshal(payload)
		msg := message.NewMessage("123", jsonData)

		// mock usecase
		ucm.On("ScheduleBookingReminder", mock.Anything, &payload).Return(nil)

		// test
		err := h.ConsumeBookingCreatedQueue(msg)

		// assertion
		assert.NoError(t, err)
	})
}

func TestSendBookingReminder(t *testing.T) {
	setup()
	defer teardown()

	ctx := context.Background()
	t.Run("success", func(t *testing.T) {
		// mock data
		payload := request.BookingReminder{BookingID: 10}
		task := asynq.NewTask("booking_reminder", []byte(`{"booking_id":10}`))

		// mock usecase
		ucm.On("SendBookingReminder", ctx, &payload).Return(nil)

		// test
		err := h.SendBookingReminder(ctx, task)

		// assertion
		assert.NoError(t, err)
	})
}

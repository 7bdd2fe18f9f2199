package handler

import (
	"context"
	"fmt"
	"strconv"

	"github.com/Mohamed-Saad-02/wild-oasis-backend/internal/module/booking/models/entity"
	"github.com/Mohamed-Saad-02/wild-oasis-backend/internal/module/booking/models/request"
	"github.com/Mohamed-Saad-02/wild-oasis-backend/internal/module/booking/usecases"
	"github.com/Mohamed-Saad-02/wild-oasis-backend/internal/pkg/errors"
	"github.com/Mohamed-Saad-02/wild-oasis-backend/internal/pkg/helpers"
	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	"github.com/hibiken/asynq"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
)

type BookingHandler struct {
	Log       *otelzap.Logger
	Validator *validator.Validate
	Usecase   usecases.Usecase
	Publish   message.Publisher
}

func actorFromLocals(ctx *fiber.Ctx) entity.Actor {
	return entity.Actor{
		ID:   ctx.Locals("user_id").(int64),
		Role: ctx.Locals("user_role").(string),
	}
}

func paramID(ctx *fiber.Ctx, name string) (int64, error) {
	id, err := strconv.ParseInt(ctx.Params(name), 10, 64)
	if err != nil || id < 1 {
		return 0, errors.BadRequest(fmt.Sprintf("Invalid %s", name))
	}
	return id, nil
}

// CreateBooking is the administrative create; the owner comes from the body.
func (h *BookingHandler) CreateBooking(ctx *fiber.Ctx) error {
	var req request.CreateBooking
	if err := ctx.BodyParser(&req); err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error parse request: %v", err))
		return helpers.RespError(ctx, h.Log, errors.BadRequest("error parse request"))
	}

	if err := h.Validator.Struct(req); err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error validate request: %v", err))
		return helpers.RespError(ctx, h.Log, errors.BadRequest(err.Error()))
	}

	if req.GuestID == 0 {
		return helpers.RespError(ctx, h.Log, errors.BadRequest("guest_id is required"))
	}

	if err := h.Usecase.CreateBooking(ctx.UserContext(), &req, req.GuestID); err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error create booking: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, nil, "Booking created successfully")
}

// CreateMyBooking binds the owner to the caller.
func (h *BookingHandler) CreateMyBooking(ctx *fiber.Ctx) error {
	var req request.CreateBooking
	if err := ctx.BodyParser(&req); err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error parse request: %v", err))
		return helpers.RespError(ctx, h.Log, errors.BadRequest("error parse request"))
	}

	if err := h.Validator.Struct(req); err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error validate request: %v", err))
		return helpers.RespError(ctx, h.Log, errors.BadRequest(err.Error()))
	}

	actor := actorFromLocals(ctx)
	if err := h.Usecase.CreateBooking(ctx.UserContext(), &req, actor.ID); err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error create booking: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, nil, "Booking created successfully")
}

func (h *BookingHandler) ShowBookings(ctx *fiber.Ctx) error {
	var req request.FindAllBookings
	if err := ctx.QueryParser(&req); err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error parse query: %v", err))
		return helpers.RespError(ctx, h.Log, errors.BadRequest("error parse query"))
	}

	if err := h.Validator.Struct(req); err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error validate query: %v", err))
		return helpers.RespError(ctx, h.Log, errors.BadRequest(err.Error()))
	}

	resp, err := h.Usecase.FindAllBookings(ctx.UserContext(), &req)
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error show bookings: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, resp, "success show bookings")
}

// ShowMyBookings is ShowBookings scoped to the caller.
func (h *BookingHandler) ShowMyBookings(ctx *fiber.Ctx) error {
	var req request.FindAllBookings
	if err := ctx.QueryParser(&req); err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error parse query: %v", err))
		return helpers.RespError(ctx, h.Log, errors.BadRequest("error parse query"))
	}

	if err := h.Validator.Struct(req); err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error validate query: %v", err))
		return helpers.RespError(ctx, h.Log, errors.BadRequest(err.Error()))
	}

	req.GuestID = actorFromLocals(ctx).ID

	resp, err := h.Usecase.FindAllBookings(ctx.UserContext(), &req)
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error show my bookings: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, resp, "success show bookings")
}

func (h *BookingHandler) ShowBooking(ctx *fiber.Ctx) error {
	id, err := paramID(ctx, "id")
	if err != nil {
		return helpers.RespError(ctx, h.Log, err)
	}

	resp, err := h.Usecase.FindBooking(ctx.UserContext(), id)
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error show booking: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, resp, "success show booking")
}

func (h *BookingHandler) ShowMyBooking(ctx *fiber.Ctx) error {
	id, err := paramID(ctx, "id")
	if err != nil {
		return helpers.RespError(ctx, h.Log, err)
	}

	actor := actorFromLocals(ctx)
	resp, err := h.Usecase.GetMyBooking(ctx.UserContext(), id, actor.ID)
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error show my booking: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, resp, "success show booking")
}

// UpdateBooking serves both the admin route and the owner route; the
// ownership scoping follows the actor's role.
func (h *BookingHandler) UpdateBooking(ctx *fiber.Ctx) error {
	actor := actorFromLocals(ctx)
	id, err := paramID(ctx, "id")
	if err != nil {
		return helpers.RespError(ctx, h.Log, err)
	}

	var req request.UpdateBooking
	if err := ctx.BodyParser(&req); err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error parse request: %v", err))
		return helpers.RespError(ctx, h.Log, errors.BadRequest("error parse request"))
	}

	if err := h.Validator.Struct(req); err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error validate request: %v", err))
		return helpers.RespError(ctx, h.Log, errors.BadRequest(err.Error()))
	}

	if err := h.Usecase.UpdateBooking(ctx.UserContext(), id, &req, actor); err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error update booking: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, nil, "Booking updated successfully")
}

func (h *BookingHandler) RemoveBooking(ctx *fiber.Ctx) error {
	id, err := paramID(ctx, "id")
	if err != nil {
		return helpers.RespError(ctx, h.Log, err)
	}

	if err := h.Usecase.RemoveBooking(ctx.UserContext(), id, actorFromLocals(ctx)); err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error remove booking: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, nil, "Booking deleted successfully")
}

func (h *BookingHandler) RemoveAllBookings(ctx *fiber.Ctx) error {
	if err := h.Usecase.RemoveAllBookings(ctx.UserContext()); err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error remove all bookings: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, nil, "All bookings deleted successfully")
}

func (h *BookingHandler) ShowBookingsAfterDate(ctx *fiber.Ctx) error {
	resp, err := h.Usecase.FindAllAfterDate(ctx.UserContext(), ctx.Query("date"))
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error show bookings after date: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, resp, "success show bookings after date")
}

func (h *BookingHandler) ShowRecentStays(ctx *fiber.Ctx) error {
	resp, err := h.Usecase.FindAllRecentStays(ctx.UserContext(), ctx.Query("date"))
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error show recent stays: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, resp, "success show recent stays")
}

func (h *BookingHandler) ShowTodayActivity(ctx *fiber.Ctx) error {
	resp, err := h.Usecase.FindTodayActivity(ctx.UserContext())
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error show today activity: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, resp, "success show today activity")
}

func (h *BookingHandler) ShowBookedDates(ctx *fiber.Ctx) error {
	cabinID, err := paramID(ctx, "cabinId")
	if err != nil {
		return helpers.RespError(ctx, h.Log, err)
	}

	resp, err := h.Usecase.GetBookedDates(ctx.UserContext(), cabinID)
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error show booked dates: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, resp, "success show booked dates")
}

// ConsumeBookingCreatedQueue handles booking_created events and schedules the
// pre-arrival reminder.
func (h *BookingHandler) ConsumeBookingCreatedQueue(msg *message.Message) error {
	msg.Ack() // acknowledge message
	var req request.BookingCreated
	if err := json.Unmarshal(msg.Payload, &req); err != nil {
		h.Log.Ctx(msg.Context()).Error(fmt.Sprintf("error unmarshal message: %v", err))

		// publish to poison queue
		reqPoisoned := request.PoisonedQueue{
			TopicTarget: usecases.TopicBookingCreated,
			ErrorMsg:    err.Error(),
			Payload:     msg.Payload,
		}

		jsonPayload, _ := json.Marshal(reqPoisoned)

		err = h.Publish.Publish("poisoned_queue", message.NewMessage(watermill.NewUUID(), jsonPayload))
		if err != nil {
			h.Log.Ctx(msg.Context()).Error(fmt.Sprintf("error publish to poison queue: %v", err))
		}

		return err
	}

	ctx := context.Background()

	if err := h.Usecase.ScheduleBookingReminder(ctx, &req); err != nil {
		reqPoisoned := request.PoisonedQueue{
			TopicTarget: usecases.TopicBookingCreated,
			ErrorMsg:    err.Error(),
			Payload:     msg.Payload,
		}

		jsonPayload, _ := json.Marshal(reqPoisoned)
		if err := h.Publish.Publish("poisoned_queue", message.NewMessage(watermill.NewUUID(), jsonPayload)); err != nil {
			h.Log.Ctx(msg.Context()).Error(fmt.Sprintf("error publish to poison queue: %v", err))
		}

		h.Log.Ctx(msg.Context()).Error(fmt.Sprintf("error schedule booking reminder: %v", err))

		return err
	}

	return nil
}

// SendBookingReminder is the asynq task handler for scheduled reminders.
func (h *BookingHandler) SendBookingReminder(ctx context.Context, t *asynq.Task) error {
	var req request.BookingReminder
	if err := json.Unmarshal(t.Payload(), &req); err != nil {
		h.Log.Ctx(ctx).Error(fmt.Sprintf("error unmarshal payload: %v", err))
		return err
	}

	if err := h.Validator.Struct(req); err != nil {
		h.Log.Ctx(ctx).Error(fmt.Sprintf("error validate payload: %v", err))
		return err
	}

	if err := h.Usecase.SendBookingReminder(ctx, &req); err != nil {
		h.Log.Ctx(ctx).Error(fmt.Sprintf("error send booking reminder: %v", err))
		return err
	}

	return nil
}

package handler

import (
	"fmt"
	"strconv"

	"github.com/Mohamed-Saad-02/wild-oasis-backend/internal/module/guest/models/request"
	"github.com/Mohamed-Saad-02/wild-oasis-backend/internal/module/guest/usecases"
	"github.com/Mohamed-Saad-02/wild-oasis-backend/internal/pkg/errors"
	"github.com/Mohamed-Saad-02/wild-oasis-backend/internal/pkg/helpers"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
)

type GuestHandler struct {
	Log       *otelzap.Logger
	Validator *validator.Validate
	Usecase   usecases.Usecase
}

func paramID(ctx *fiber.Ctx) (int64, error) {
	id, err := strconv.ParseInt(ctx.Params("id"), 10, 64)
	if err != nil || id < 1 {
		return 0, errors.BadRequest("Invalid id")
	}
	return id, nil
}

func (h *GuestHandler) CreateGuest(ctx *fiber.Ctx) error {
	var req request.CreateGuest
	if err := ctx.BodyParser(&req); err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error parse request: %v", err))
		return helpers.RespError(ctx, h.Log, errors.BadRequest("error parse request"))
	}

	if err := h.Validator.Struct(req); err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error validate request: %v", err))
		return helpers.RespError(ctx, h.Log, errors.BadRequest(err.Error()))
	}

	if err := h.Usecase.CreateGuest(ctx.UserContext(), &req); err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error create guest: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, nil, "Guest created successfully")
}

func (h *GuestHandler) CreateGuestsBulk(ctx *fiber.Ctx) error {
	var req []request.CreateGuest
	if err := ctx.BodyParser(&req); err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error parse request: %v", err))
		return helpers.RespError(ctx, h.Log, errors.BadRequest("error parse request"))
	}

	for _, guest := range req {
		if err := h.Validator.Struct(guest); err != nil {
			h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error validate request: %v", err))
			return helpers.RespError(ctx, h.Log, errors.BadRequest(err.Error()))
		}
	}

	if err := h.Usecase.CreateGuestsBulk(ctx.UserContext(), req); err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error create guests: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, nil, "Guests created successfully")
}

func (h *GuestHandler) ShowGuests(ctx *fiber.Ctx) error {
	resp, err := h.Usecase.FindAllGuests(ctx.UserContext())
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error show guests: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, resp, "success show guests")
}

func (h *GuestHandler) ShowGuest(ctx *fiber.Ctx) error {
	id, err := paramID(ctx)
	if err != nil {
		return helpers.RespError(ctx, h.Log, err)
	}

	resp, err := h.Usecase.FindGuest(ctx.UserContext(), id)
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error show guest: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, resp, "success show guest")
}

func (h *GuestHandler) UpdateGuest(ctx *fiber.Ctx) error {
	id, err := paramID(ctx)
	if err != nil {
		return helpers.RespError(ctx, h.Log, err)
	}

	var req request.UpdateGuest
	if err := ctx.BodyParser(&req); err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error parse request: %v", err))
		return helpers.RespError(ctx, h.Log, errors.BadRequest("error parse request"))
	}

	if err := h.Validator.Struct(req); err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error validate request: %v", err))
		return helpers.RespError(ctx, h.Log, errors.BadRequest(err.Error()))
	}

	if err := h.Usecase.UpdateGuest(ctx.UserContext(), id, &req); err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error update guest: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, nil, "Guest updated successfully")
}

func (h *GuestHandler) RemoveGuest(ctx *fiber.Ctx) error {
	id, err := paramID(ctx)
	if err != nil {
		return helpers.RespError(ctx, h.Log, err)
	}

	if err := h.Usecase.RemoveGuest(ctx.UserContext(), id); err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error remove guest: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, nil, "Guest deleted successfully")
}

func (h *GuestHandler) RemoveAllGuests(ctx *fiber.Ctx) error {
	if err := h.Usecase.RemoveAllGuests(ctx.UserContext()); err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error remove all guests: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, nil, "All guests deleted successfully")
}

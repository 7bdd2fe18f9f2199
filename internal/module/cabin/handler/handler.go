package handler

import (
	"fmt"
	"strconv"

	"github.com/Mohamed-Saad-02/wild-oasis-backend/internal/module/cabin/models/request"
	"github.com/Mohamed-Saad-02/wild-oasis-backend/internal/module/cabin/usecases"
	"github.com/Mohamed-Saad-02/wild-oasis-backend/internal/pkg/errors"
	"github.com/Mohamed-Saad-02/wild-oasis-backend/internal/pkg/helpers"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
)

type CabinHandler struct {
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

func (h *CabinHandler) CreateCabin(ctx *fiber.Ctx) error {
	var req request.CreateCabin
	if err := ctx.BodyParser(&req); err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error parse request: %v", err))
		return helpers.RespError(ctx, h.Log, errors.BadRequest("error parse request"))
	}

	if err := h.Validator.Struct(req); err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error validate request: %v", err))
		return helpers.RespError(ctx, h.Log, errors.BadRequest(err.Error()))
	}

	image, err := ctx.FormFile("image")
	if err != nil || image == nil {
		return helpers.RespError(ctx, h.Log, errors.BadRequest("Image is required"))
	}

	if err := h.Usecase.CreateCabin(ctx.UserContext(), &req, image); err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error create cabin: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, nil, "Cabin created successfully")
}

func (h *CabinHandler) ShowCabins(ctx *fiber.Ctx) error {
	var req request.FindAllCabins
	if err := ctx.QueryParser(&req); err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error parse query: %v", err))
		return helpers.RespError(ctx, h.Log, errors.BadRequest("error parse query"))
	}

	resp, err := h.Usecase.FindAllCabins(ctx.UserContext(), &req)
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error show cabins: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, resp, "success show cabins")
}

func (h *CabinHandler) ShowCabin(ctx *fiber.Ctx) error {
	id, err := paramID(ctx)
	if err != nil {
		return helpers.RespError(ctx, h.Log, err)
	}

	resp, err := h.Usecase.FindCabin(ctx.UserContext(), id)
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error show cabin: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, resp, "success show cabin")
}

func (h *CabinHandler) UpdateCabin(ctx *fiber.Ctx) error {
	id, err := paramID(ctx)
	if err != nil {
		return helpers.RespError(ctx, h.Log, err)
	}

	var req request.UpdateCabin
	if err := ctx.BodyParser(&req); err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error parse request: %v", err))
		return helpers.RespError(ctx, h.Log, errors.BadRequest("error parse request"))
	}

	if err := h.Validator.Struct(req); err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error validate request: %v", err))
		return helpers.RespError(ctx, h.Log, errors.BadRequest(err.Error()))
	}

	// image is optional on update
	image, _ := ctx.FormFile("image")

	if err := h.Usecase.UpdateCabin(ctx.UserContext(), id, &req, image); err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error update cabin: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, nil, "Cabin updated successfully")
}

func (h *CabinHandler) RemoveCabin(ctx *fiber.Ctx) error {
	id, err := paramID(ctx)
	if err != nil {
		return helpers.RespError(ctx, h.Log, err)
	}

	if err := h.Usecase.RemoveCabin(ctx.UserContext(), id); err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error remove cabin: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, nil, "Cabin deleted successfully")
}

func (h *CabinHandler) RemoveAllCabins(ctx *fiber.Ctx) error {
	if err := h.Usecase.RemoveAllCabins(ctx.UserContext()); err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error remove all cabins: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, nil, "All cabins deleted successfully")
}

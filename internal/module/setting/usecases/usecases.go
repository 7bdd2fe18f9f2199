package usecases

import (
	"context"

	"github.com/Mohamed-Saad-02/wild-oasis-backend/internal/module/setting/models/entity"
	"github.com/Mohamed-Saad-02/wild-oasis-backend/internal/module/setting/models/request"
	"github.com/Mohamed-Saad-02/wild-oasis-backend/internal/module/setting/repositories"
	"github.com/Mohamed-Saad-02/wild-oasis-backend/internal/pkg/errors"
	"github.com/Mohamed-Saad-02/wild-oasis-backend/internal/pkg/log"
)

type usecase struct {
	repo repositories.Repositories
	log  log.Logger
}

type Usecase interface {
	CreateSetting(ctx context.Context, payload *request.CreateSetting) error
	FindSetting(ctx context.Context) (entity.Setting, error)
	UpdateSetting(ctx context.Context, payload *request.UpdateSetting) error
}

func New(repo repositories.Repositories, log log.Logger) Usecase {
	return &usecase{
		repo: repo,
		log:  log,
	}
}

// CreateSetting refuses to create a second row; the policy is a singleton.
func (u *usecase) CreateSetting(ctx context.Context, payload *request.CreateSetting) error {
	exists, err := u.repo.SettingExists(ctx)
	if err != nil {
		return err
	}
	if exists {
		return errors.BadRequest("Setting already exists")
	}

	setting := &entity.Setting{
		MinBookingLength:    payload.MinBookingLength,
		MaxBookingLength:    payload.MaxBookingLength,
		MaxGuestsPerBooking: payload.MaxGuestsPerBooking,
		BreakfastPrice:      payload.BreakfastPrice,
	}

	return u.repo.InsertSetting(ctx, setting)
}

func (u *usecase) FindSetting(ctx context.Context) (entity.Setting, error) {
	return u.repo.GetSetting(ctx)
}

func (u *usecase) UpdateSetting(ctx context.Context, payload *request.UpdateSetting) error {
	if _, err := u.repo.GetSetting(ctx); err != nil {
		return err
	}

	return u.repo.UpdateSetting(ctx, payload)
}

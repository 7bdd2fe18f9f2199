package usecases

import (
	"context"

	"github.com/Mohamed-Saad-02/wild-oasis-backend/internal/module/guest/models/entity"
	"github.com/Mohamed-Saad-02/wild-oasis-backend/internal/module/guest/models/request"
	"github.com/Mohamed-Saad-02/wild-oasis-backend/internal/module/guest/repositories"
	"github.com/Mohamed-Saad-02/wild-oasis-backend/internal/pkg/errors"
	"github.com/Mohamed-Saad-02/wild-oasis-backend/internal/pkg/log"
)

type usecase struct {
	repo repositories.Repositories
	log  log.Logger
}

type Usecase interface {
	CreateGuest(ctx context.Context, payload *request.CreateGuest) error
	CreateGuestsBulk(ctx context.Context, payloads []request.CreateGuest) error
	FindAllGuests(ctx context.Context) ([]entity.Guest, error)
	FindGuest(ctx context.Context, id int64) (entity.Guest, error)
	UpdateGuest(ctx context.Context, id int64, payload *request.UpdateGuest) error
	RemoveGuest(ctx context.Context, id int64) error
	RemoveAllGuests(ctx context.Context) error
}

func New(repo repositories.Repositories, log log.Logger) Usecase {
	return &usecase{
		repo: repo,
		log:  log,
	}
}

func (u *usecase) CreateGuest(ctx context.Context, payload *request.CreateGuest) error {
	guest := &entity.Guest{
		FullName:    payload.FullName,
		Email:       payload.Email,
		NationalID:  payload.NationalID,
		Nationality: payload.Nationality,
		CountryFlag: payload.CountryFlag,
	}

	return u.repo.InsertGuest(ctx, guest)
}

// CreateGuestsBulk inserts the whole batch in one statement. Used to seed
// the guest directory.
func (u *usecase) CreateGuestsBulk(ctx context.Context, payloads []request.CreateGuest) error {
	if len(payloads) == 0 {
		return errors.BadRequest("Guests payload is empty")
	}

	guests := make([]entity.Guest, 0, len(payloads))
	for _, payload := range payloads {
		guests = append(guests, entity.Guest{
			FullName:    payload.FullName,
			Email:       payload.Email,
			NationalID:  payload.NationalID,
			Nationality: payload.Nationality,
			CountryFlag: payload.CountryFlag,
		})
	}

	return u.repo.InsertGuests(ctx, guests)
}

func (u *usecase) FindAllGuests(ctx context.Context) ([]entity.Guest, error) {
	return u.repo.FindGuests(ctx)
}

func (u *usecase) FindGuest(ctx context.Context, id int64) (entity.Guest, error) {
	guest, err := u.repo.FindGuestByID(ctx, id)
	if err != nil {
		return entity.Guest{}, err
	}
	if guest.ID == 0 {
		return entity.Guest{}, errors.NotFound("Guest not found")
	}

	return guest, nil
}

func (u *usecase) UpdateGuest(ctx context.Context, id int64, payload *request.UpdateGuest) error {
	if _, err := u.FindGuest(ctx, id); err != nil {
		return err
	}

	return u.repo.UpdateGuest(ctx, id, payload)
}

func (u *usecase) RemoveGuest(ctx context.Context, id int64) error {
	if _, err := u.FindGuest(ctx, id); err != nil {
		return err
	}

	return u.repo.DeleteGuest(ctx, id)
}

func (u *usecase) RemoveAllGuests(ctx context.Context) error {
	return u.repo.DeleteAllGuests(ctx)
}

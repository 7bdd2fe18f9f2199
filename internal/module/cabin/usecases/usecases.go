package usecases

import (
	"context"
	"math"
	"mime/multipart"

	"github.com/Mohamed-Saad-02/wild-oasis-backend/config"
	"github.com/Mohamed-Saad-02/wild-oasis-backend/internal/module/cabin/models/entity"
	"github.com/Mohamed-Saad-02/wild-oasis-backend/internal/module/cabin/models/request"
	"github.com/Mohamed-Saad-02/wild-oasis-backend/internal/module/cabin/models/response"
	"github.com/Mohamed-Saad-02/wild-oasis-backend/internal/module/cabin/repositories"
	"github.com/Mohamed-Saad-02/wild-oasis-backend/internal/pkg/errors"
	"github.com/Mohamed-Saad-02/wild-oasis-backend/internal/pkg/log"
	"github.com/Mohamed-Saad-02/wild-oasis-backend/internal/pkg/uploader"
)

type usecase struct {
	repo     repositories.Repositories
	log      log.Logger
	uploader uploader.Uploader
	cfg      *config.StorageConfig
}

type Usecase interface {
	CreateCabin(ctx context.Context, payload *request.CreateCabin, image *multipart.FileHeader) error
	FindAllCabins(ctx context.Context, filter *request.FindAllCabins) (response.CabinList, error)
	FindCabin(ctx context.Context, id int64) (response.Cabin, error)
	UpdateCabin(ctx context.Context, id int64, payload *request.UpdateCabin, image *multipart.FileHeader) error
	RemoveCabin(ctx context.Context, id int64) error
	RemoveAllCabins(ctx context.Context) error
}

func New(repo repositories.Repositories, log log.Logger, up uploader.Uploader, cfg *config.StorageConfig) Usecase {
	return &usecase{
		repo:     repo,
		log:      log,
		uploader: up,
		cfg:      cfg,
	}
}

func (u *usecase) CreateCabin(ctx context.Context, payload *request.CreateCabin, image *multipart.FileHeader) error {
	uploaded, err := u.uploader.Upload(ctx, image, u.cfg.CabinFolder)
	if err != nil {
		return err
	}

	cabin := &entity.Cabin{
		Name:          payload.Name,
		MaxCapacity:   payload.MaxCapacity,
		RegularPrice:  payload.RegularPrice,
		Discount:      payload.Discount,
		Description:   payload.Description,
		ImageURL:      uploaded.URL,
		ImagePublicID: uploaded.PublicID,
	}

	return u.repo.InsertCabin(ctx, cabin)
}

func (u *usecase) FindAllCabins(ctx context.Context, filter *request.FindAllCabins) (response.CabinList, error) {
	filter.Normalize()

	cabins, total, err := u.repo.FindCabins(ctx, filter.Page, filter.Limit)
	if err != nil {
		return response.CabinList{}, err
	}

	totalPages := 0
	if total > 0 {
		totalPages = int(math.Ceil(float64(total) / float64(filter.Limit)))
	}

	data := make([]response.Cabin, 0, len(cabins))
	for _, cabin := range cabins {
		data = append(data, toCabin(cabin))
	}

	return response.CabinList{
		Metadata: response.Metadata{
			Page:       filter.Page,
			Limit:      filter.Limit,
			Total:      total,
			TotalPages: totalPages,
		},
		Data: data,
	}, nil
}

func (u *usecase) FindCabin(ctx context.Context, id int64) (response.Cabin, error) {
	cabin, err := u.repo.FindCabinByID(ctx, id)
	if err != nil {
		return response.Cabin{}, err
	}
	if cabin.ID == 0 {
		return response.Cabin{}, errors.NotFound("Cabin not found")
	}
	return toCabin(cabin), nil
}

func (u *usecase) UpdateCabin(ctx context.Context, id int64, payload *request.UpdateCabin, image *multipart.FileHeader) error {
	cabin, err := u.repo.FindCabinByID(ctx, id)
	if err != nil {
		return err
	}
	if cabin.ID == 0 {
		return errors.NotFound("Cabin not found")
	}

	imageURL, imagePublicID := "", ""
	if image != nil {
		uploaded, err := u.uploader.Upload(ctx, image, u.cfg.CabinFolder)
		if err != nil {
			return err
		}
		imageURL, imagePublicID = uploaded.URL, uploaded.PublicID

		if cabin.ImagePublicID != "" {
			if err := u.uploader.Delete(ctx, cabin.ImagePublicID); err != nil {
				u.log.Error(ctx, "error delete replaced cabin image", err)
			}
		}
	}

	return u.repo.UpdateCabin(ctx, id, payload, imageURL, imagePublicID)
}

func (u *usecase) RemoveCabin(ctx context.Context, id int64) error {
	cabin, err := u.repo.FindCabinByID(ctx, id)
	if err != nil {
		return err
	}
	if cabin.ID == 0 {
		return errors.NotFound("Cabin not found")
	}

	if cabin.ImagePublicID != "" {
		if err := u.uploader.Delete(ctx, cabin.ImagePublicID); err != nil {
			u.log.Error(ctx, "error delete cabin image", err)
		}
	}

	return u.repo.DeleteCabin(ctx, id)
}

func (u *usecase) RemoveAllCabins(ctx context.Context) error {
	images, err := u.repo.FindAllCabinImages(ctx)
	if err != nil {
		return err
	}

	for _, publicID := range images {
		if err := u.uploader.Delete(ctx, publicID); err != nil {
			u.log.Error(ctx, "error delete cabin image", err)
		}
	}

	return u.repo.DeleteAllCabins(ctx)
}

func toCabin(cabin entity.Cabin) response.Cabin {
	return response.Cabin{
		ID:           cabin.ID,
		Name:         cabin.Name,
		MaxCapacity:  cabin.MaxCapacity,
		RegularPrice: cabin.RegularPrice,
		Discount:     cabin.Discount,
		Description:  cabin.Description,
		Image:        cabin.ImageURL,
		CreatedAt:    cabin.CreatedAt,
		UpdatedAt:    cabin.UpdatedAt,
	}
}

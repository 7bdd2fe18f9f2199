package usecases_test

import (
	"context"
	"mime/multipart"
	"testing"

	"github.com/Mohamed-Saad-02/wild-oasis-backend/config"
	"github.com/Mohamed-Saad-02/wild-oasis-backend/internal/module/cabin/mocks"
	"github.com/Mohamed-Saad-02/wild-oasis-backend/internal/module/cabin/models/entity"
	"github.com/Mohamed-Saad-02/wild-oasis-backend/internal/module/cabin/models/request"
	"github.com/Mohamed-Saad-02/wild-oasis-backend/internal/module/cabin/usecases"
	"github.com/Mohamed-Saad-02/wild-oasis-backend/internal/pkg/errors"
	"github.com/Mohamed-Saad-02/wild-oasis-backend/internal/pkg/log"
	log_internal "github.com/Mohamed-Saad-02/wild-oasis-backend/internal/pkg/log"
	"github.com/Mohamed-Saad-02/wild-oasis-backend/internal/pkg/uploader"
	uploaderMocks "github.com/Mohamed-Saad-02/wild-oasis-backend/internal/pkg/uploader/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

var (
	uc           usecases.Usecase
	repoMock     *mocks.Repositories
	uploaderMock *uploaderMocks.Uploader
	logMock      log.Logger
	storageCfg   = config.StorageConfig{CabinFolder: "cabins", AvatarFolder: "avatars"}
)

func setup() {
	repoMock = new(mocks.Repositories)
	uploaderMock = new(uploaderMocks.Uploader)
	logZap := log_internal.SetupLogger()
	log_internal.Init(logZap)
	logMock = log_internal.GetLogger()
	uc = usecases.New(repoMock, logMock, uploaderMock, &storageCfg)
}

func teardown() {
	repoMock = nil
	uploaderMock = nil
	uc = nil
}

func TestCreateCabin(t *testing.T) {
	setup()
	defer teardown()
	ctx := context.Background()

	t.Run("uploads image then persists", func(t *testing.T) {
		payload := request.CreateCabin{
			Name:         "001",
			MaxCapacity:  4,
			RegularPrice: 100,
			Discount:     20,
			Description:  "Cozy cabin in the woods",
		}
		image := &multipart.FileHeader{Filename: "cabin.jpg"}

		uploaderMock.On("Upload", ctx, image, "cabins").
			Return(uploader.UploadResult{URL: "https://cdn.example.com/cabins/abc.jpg", PublicID: "cabins/abc"}, nil)

		expected := entity.Cabin{
			Name:          "001",
			MaxCapacity:   4,
			RegularPrice:  100,
			Discount:      20,
			Description:   "Cozy cabin in the woods",
			ImageURL:      "https://cdn.example.com/cabins/abc.jpg",
			ImagePublicID: "cabins/abc",
		}
		repoMock.On("InsertCabin", ctx, &expected).Return(nil)

		err := uc.CreateCabin(ctx, &payload, image)

		assert.NoError(t, err)
		repoMock.AssertExpectations(t)
		uploaderMock.AssertExpectations(t)
	})
}

func TestFindCabin(t *testing.T) {
	setup()
	defer teardown()
	ctx := context.Background()

	t.Run("not found", func(t *testing.T) {
		repoMock.On("FindCabinByID", ctx, int64(99)).Return(entity.Cabin{}, nil)

		_, err := uc.FindCabin(ctx, 99)

		assert.Equal(t, errors.NotFound("Cabin not found"), err)
	})
}

func TestUpdateCabin(t *testing.T) {
	t.Run("image replaced and old one deleted", func(t *testing.T) {
		setup()
		defer teardown()
		ctx := context.Background()

		name := "002"
		payload := request.UpdateCabin{Name: &name}
		image := &multipart.FileHeader{Filename: "new.jpg"}

		existing := entity.Cabin{ID: 1, Name: "001", ImagePublicID: "cabins/old"}
		repoMock.On("FindCabinByID", ctx, int64(1)).Return(existing, nil)
		uploaderMock.On("Upload", ctx, image, "cabins").
			Return(uploader.UploadResult{URL: "https://cdn.example.com/cabins/new.jpg", PublicID: "cabins/new"}, nil)
		uploaderMock.On("Delete", ctx, "cabins/old").Return(nil)
		repoMock.On("UpdateCabin", ctx, int64(1), &payload, "https://cdn.example.com/cabins/new.jpg", "cabins/new").Return(nil)

		err := uc.UpdateCabin(ctx, 1, &payload, image)

		assert.NoError(t, err)
		uploaderMock.AssertExpectations(t)
	})

	t.Run("no image keeps the current one", func(t *testing.T) {
		setup()
		defer teardown()
		ctx := context.Background()

		name := "002"
		payload := request.UpdateCabin{Name: &name}

		existing := entity.Cabin{ID: 1, Name: "001", ImagePublicID: "cabins/old"}
		repoMock.On("FindCabinByID", ctx, int64(1)).Return(existing, nil)
		repoMock.On("UpdateCabin", ctx, int64(1), &payload, "", "").Return(nil)

		err := uc.UpdateCabin(ctx, 1, &payload, nil)

		assert.NoError(t, err)
		uploaderMock.AssertNotCalled(t, "Upload", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestRemoveCabin(t *testing.T) {
	setup()
	defer teardown()
	ctx := context.Background()

	t.Run("image cleaned up with the row", func(t *testing.T) {
		existing := entity.Cabin{ID: 1, Name: "001", ImagePublicID: "cabins/old"}
		repoMock.On("FindCabinByID", ctx, int64(1)).Return(existing, nil)
		uploaderMock.On("Delete", ctx, "cabins/old").Return(nil)
		repoMock.On("DeleteCabin", ctx, int64(1)).Return(nil)

		err := uc.RemoveCabin(ctx, 1)

		assert.NoError(t, err)
	})
}

func TestRemoveAllCabins(t *testing.T) {
	setup()
	defer teardown()
	ctx := context.Background()

	t.Run("all images cleaned up", func(t *testing.T) {
		repoMock.On("FindAllCabinImages", ctx).Return([]string{"cabins/a", "cabins/b"}, nil)
		uploaderMock.On("Delete", ctx, "cabins/a").Return(nil)
		uploaderMock.On("Delete", ctx, "cabins/b").Return(nil)
		repoMock.On("DeleteAllCabins", ctx).Return(nil)

		err := uc.RemoveAllCabins(ctx)

		assert.NoError(t, err)
		uploaderMock.AssertExpectations(t)
	})
}

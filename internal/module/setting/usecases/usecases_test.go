package usecases_test

import (
	"context"
	"testing"

	"github.com/Mohamed-Saad-02/wild-oasis-backend/internal/module/setting/mocks"
	"github.com/Mohamed-Saad-02/wild-oasis-backend/internal/module/setting/models/entity"
	"github.com/Mohamed-Saad-02/wild-oasis-backend/internal/module/setting/models/request"
	"github.com/Mohamed-Saad-02/wild-oasis-backend/internal/module/setting/usecases"
	"github.com/Mohamed-Saad-02/wild-oasis-backend/internal/pkg/errors"
	"github.com/Mohamed-Saad-02/wild-oasis-backend/internal/pkg/log"
	log_internal "github.com/Mohamed-Saad-02/wild-oasis-backend/internal/pkg/log"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

var (
	uc       usecases.Usecase
	repoMock *mocks.Repositories
	logMock  log.Logger
)

func setup() {
	repoMock = new(mocks.Repositories)
	logZap := log_internal.SetupLogger()
	log_internal.Init(logZap)
	logMock = log_internal.GetLogger()
	uc = usecases.New(repoMock, logMock)
}

func teardown() {
	repoMock = nil
	uc = nil
}

func TestCreateSetting(t *testing.T) {
	t.Run("first row is created", func(t *testing.T) {
		setup()
		defer teardown()
		ctx := context.Background()

		payload := request.CreateSetting{
			MinBookingLength:    2,
			MaxBookingLength:    30,
			MaxGuestsPerBooking: 4,
			BreakfastPrice:      15,
		}
		expected := entity.Setting{
			MinBookingLength:    2,
			MaxBookingLength:    30,
			MaxGuestsPerBooking: 4,
			BreakfastPrice:      15,
		}

		repoMock.On("SettingExists", ctx).Return(false, nil)
		repoMock.On("InsertSetting", ctx, &expected).Return(nil)

		err := uc.CreateSetting(ctx, &payload)

		assert.NoError(t, err)
		repoMock.AssertExpectations(t)
	})

	t.Run("second row is refused", func(t *testing.T) {
		setup()
		defer teardown()
		ctx := context.Background()

		payload := request.CreateSetting{
			MinBookingLength:    2,
			MaxBookingLength:    30,
			MaxGuestsPerBooking: 4,
			BreakfastPrice:      15,
		}

		repoMock.On("SettingExists", ctx).Return(true, nil)

		err := uc.CreateSetting(ctx, &payload)

		assert.Equal(t, errors.BadRequest("Setting already exists"), err)
		repoMock.AssertNotCalled(t, "InsertSetting", mock.Anything, mock.Anything)
	})
}

func TestUpdateSetting(t *testing.T) {
	t.Run("missing singleton surfaces not found", func(t *testing.T) {
		setup()
		defer teardown()
		ctx := context.Background()

		minLength := 3
		payload := request.UpdateSetting{MinBookingLength: &minLength}

		repoMock.On("GetSetting", ctx).Return(entity.Setting{}, errors.NotFound("Setting not found"))

		err := uc.UpdateSetting(ctx, &payload)

		assert.Equal(t, errors.NotFound("Setting not found"), err)
	})

	t.Run("partial patch applied", func(t *testing.T) {
		setup()
		defer teardown()
		ctx := context.Background()

		breakfastPrice := 17.5
		payload := request.UpdateSetting{BreakfastPrice: &breakfastPrice}

		repoMock.On("GetSetting", ctx).Return(entity.Setting{ID: 1, MinBookingLength: 2}, nil)
		repoMock.On("UpdateSetting", ctx, &payload).Return(nil)

		err := uc.UpdateSetting(ctx, &payload)

		assert.NoError(t, err)
	})
}

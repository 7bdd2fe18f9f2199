package repositories

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/Mohamed-Saad-02/wild-oasis-backend/internal/module/setting/models/entity"
	"github.com/Mohamed-Saad-02/wild-oasis-backend/internal/module/setting/models/request"
	"github.com/Mohamed-Saad-02/wild-oasis-backend/internal/pkg/errors"
	"github.com/Mohamed-Saad-02/wild-oasis-backend/internal/pkg/log"
	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"
)

const settingCacheKey = "settings:1"

type repositories struct {
	db          *sqlx.DB
	log         log.Logger
	redisClient *redis.Client
}

type Repositories interface {
	SettingExists(ctx context.Context) (bool, error)
	InsertSetting(ctx context.Context, setting *entity.Setting) error
	GetSetting(ctx context.Context) (entity.Setting, error)
	UpdateSetting(ctx context.Context, patch *request.UpdateSetting) error
}

func New(db *sqlx.DB, log log.Logger, redisClient *redis.Client) Repositories {
	return &repositories{
		db:          db,
		log:         log,
		redisClient: redisClient,
	}
}

// SettingExists implements Repositories.
func (r *repositories) SettingExists(ctx context.Context) (bool, error) {
	var exists bool
	if err := r.db.GetContext(ctx, &exists, `SELECT EXISTS(SELECT 1 FROM settings WHERE id = 1)`); err != nil {
		return false, errors.InternalServerError("error check setting exists")
	}
	return exists, nil
}

// InsertSetting implements Repositories. The singleton is pinned to id=1.
func (r *repositories) InsertSetting(ctx context.Context, setting *entity.Setting) error {
	query := `
		INSERT INTO settings (id, min_booking_length, max_booking_length, max_guests_per_booking, breakfast_price)
		VALUES (1, $1, $2, $3, $4)`
	_, err := r.db.ExecContext(ctx, query,
		setting.MinBookingLength, setting.MaxBookingLength,
		setting.MaxGuestsPerBooking, setting.BreakfastPrice)
	if err != nil {
		return errors.InternalServerError("error insert setting")
	}
	return nil
}

// GetSetting implements Repositories.
func (r *repositories) GetSetting(ctx context.Context) (entity.Setting, error) {
	var setting entity.Setting

	if r.redisClient != nil {
		cached, err := r.redisClient.Get(ctx, settingCacheKey).Result()
		if err == nil {
			if err := json.Unmarshal([]byte(cached), &setting); err == nil {
				return setting, nil
			}
		}
	}

	err := r.db.GetContext(ctx, &setting, `SELECT * FROM settings WHERE id = 1`)
	if err == sql.ErrNoRows {
		return entity.Setting{}, errors.NotFound("Setting not found")
	}
	if err != nil {
		return entity.Setting{}, errors.InternalServerError("error find setting")
	}

	if r.redisClient != nil {
		if payload, err := json.Marshal(setting); err == nil {
			r.redisClient.Set(ctx, settingCacheKey, payload, time.Hour)
		}
	}

	return setting, nil
}

// UpdateSetting implements Repositories. The cache entry is dropped so the
// next read goes to the database.
func (r *repositories) UpdateSetting(ctx context.Context, patch *request.UpdateSetting) error {
	set := []string{}
	args := []interface{}{}

	appendSet := func(column string, value interface{}) {
		args = append(args, value)
		set = append(set, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if patch.MinBookingLength != nil {
		appendSet("min_booking_length", *patch.MinBookingLength)
	}
	if patch.MaxBookingLength != nil {
		appendSet("max_booking_length", *patch.MaxBookingLength)
	}
	if patch.MaxGuestsPerBooking != nil {
		appendSet("max_guests_per_booking", *patch.MaxGuestsPerBooking)
	}
	if patch.BreakfastPrice != nil {
		appendSet("breakfast_price", *patch.BreakfastPrice)
	}

	set = append(set, "updated_at = NOW()")

	query := fmt.Sprintf(`UPDATE settings SET %s WHERE id = 1`, strings.Join(set, ", "))
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return errors.InternalServerError("error update setting")
	}

	if r.redisClient != nil {
		r.redisClient.Del(ctx, settingCacheKey)
	}

	return nil
}

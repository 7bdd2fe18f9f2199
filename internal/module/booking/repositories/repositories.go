package repositories

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/Mohamed-Saad-02/wild-oasis-backend/config"
	"github.com/Mohamed-Saad-02/wild-oasis-backend/internal/module/booking/models/entity"
	"github.com/Mohamed-Saad-02/wild-oasis-backend/internal/module/booking/models/request"
	"github.com/Mohamed-Saad-02/wild-oasis-backend/internal/module/booking/models/response"
	"github.com/Mohamed-Saad-02/wild-oasis-backend/internal/pkg/errors"
	"github.com/Mohamed-Saad-02/wild-oasis-backend/internal/pkg/log"
	"github.com/Mohamed-Saad-02/wild-oasis-backend/internal/pkg/scheduler"
	"github.com/go-redsync/redsync/v4"
	"github.com/hibiken/asynq"
	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"
	circuit "github.com/rubyist/circuitbreaker"
)

const settingCacheKey = "settings:1"

type repositories struct {
	db              *sqlx.DB
	log             log.Logger
	httpClient      *circuit.HTTPClient
	cfgUserService  *config.UserServiceConfig
	redisClient     *redis.Client
	rs              *redsync.Redsync
	schedulerClient *asynq.Client
}

type Repositories interface {
	// http
	ValidateToken(ctx context.Context, token string) (response.UserServiceValidate, error)
	// db
	FindCabinByID(ctx context.Context, cabinID int64) (entity.Cabin, error)
	CabinExists(ctx context.Context, cabinID int64) (bool, error)
	GuestExists(ctx context.Context, guestID int64) (bool, error)
	GetSetting(ctx context.Context) (entity.Setting, error)
	CreateBooking(ctx context.Context, booking *entity.Booking) (int64, error)
	FindBookingByID(ctx context.Context, id int64) (entity.BookingWithRelations, error)
	FindBookingByIDForGuest(ctx context.Context, id int64, guestID int64) (entity.BookingWithRelations, error)
	FindBookings(ctx context.Context, filter *request.FindAllBookings) ([]entity.BookingWithRelations, int, error)
	UpdateBooking(ctx context.Context, id int64, patch *request.UpdateBooking) error
	DeleteBooking(ctx context.Context, id int64) error
	DeleteAllBookings(ctx context.Context) error
	FindBookingsCreatedBetween(ctx context.Context, from time.Time, to time.Time) ([]entity.Booking, error)
	FindRecentStays(ctx context.Context, from time.Time, to time.Time) ([]entity.Booking, error)
	FindTodayActivity(ctx context.Context, dayStart time.Time, dayEnd time.Time) ([]entity.BookingWithRelations, error)
	FindBookedDates(ctx context.Context, cabinID int64, today time.Time) ([]entity.Booking, error)
	// scheduler
	SetTaskScheduler(ctx context.Context, processAt time.Time, payload []byte) (string, error)
}

func New(
	db *sqlx.DB,
	log log.Logger,
	httpClient *circuit.HTTPClient,
	cfgUserService *config.UserServiceConfig,
	redisClient *redis.Client,
	rs *redsync.Redsync,
	schedulerClient *asynq.Client,
) Repositories {
	return &repositories{
		db:              db,
		log:             log,
		httpClient:      httpClient,
		cfgUserService:  cfgUserService,
		redisClient:     redisClient,
		rs:              rs,
		schedulerClient: schedulerClient,
	}
}

const bookingWithRelationsColumns = `
	b.id, b.cabin_id, b.guest_id, b.start_date, b.end_date, b.num_nights,
	b.num_guests, b.cabin_price, b.extras_price, b.total_price, b.status,
	b.has_breakfast, b.is_paid, b.observations, b.created_at, b.updated_at,
	c.name AS cabin_name, c.discount AS cabin_discount,
	c.image_url AS cabin_image_url, c.max_capacity AS cabin_max_capacity,
	g.full_name AS guest_full_name, g.email AS guest_email`

// FindCabinByID implements Repositories. A zero-value cabin means not found.
func (r *repositories) FindCabinByID(ctx context.Context, cabinID int64) (entity.Cabin, error) {
	query := `SELECT id, name, max_capacity, regular_price, discount FROM cabins WHERE id = $1`
	var cabin entity.Cabin
	err := r.db.GetContext(ctx, &cabin, query, cabinID)
	if err == sql.ErrNoRows {
		return entity.Cabin{}, nil
	}
	if err != nil {
		return entity.Cabin{}, errors.InternalServerError("error find cabin by id")
	}
	return cabin, nil
}

// CabinExists implements Repositories.
func (r *repositories) CabinExists(ctx context.Context, cabinID int64) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM cabins WHERE id = $1)`
	var exists bool
	if err := r.db.GetContext(ctx, &exists, query, cabinID); err != nil {
		return false, errors.InternalServerError("error check cabin exists")
	}
	return exists, nil
}

// GuestExists implements Repositories.
func (r *repositories) GuestExists(ctx context.Context, guestID int64) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM guests WHERE id = $1)`
	var exists bool
	if err := r.db.GetContext(ctx, &exists, query, guestID); err != nil {
		return false, errors.InternalServerError("error check guest exists")
	}
	return exists, nil
}

// GetSetting implements Repositories. The singleton row is cached in redis by
// the setting module; the cache is read-through here.
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

	query := `SELECT id, min_booking_length, max_booking_length, max_guests_per_booking, breakfast_price FROM settings WHERE id = 1`
	err := r.db.GetContext(ctx, &setting, query)
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

// CreateBooking implements Repositories. The conflict check and the insert run
// inside one transaction holding a row lock on the cabin, under a per-cabin
// redsync mutex, so two concurrent admissions cannot both pass the overlap
// test and double-book.
func (r *repositories) CreateBooking(ctx context.Context, booking *entity.Booking) (int64, error) {
	if r.rs != nil {
		mutex := r.rs.NewMutex(fmt.Sprintf("booking:cabin:%d", booking.CabinID))
		if err := mutex.LockContext(ctx); err != nil {
			return 0, errors.InternalServerError("error acquire cabin lock")
		}
		defer mutex.UnlockContext(ctx)
	}

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return 0, errors.InternalServerError("error starting transaction")
	}

	var cabinID int64
	err = tx.GetContext(ctx, &cabinID, `SELECT id FROM cabins WHERE id = $1 FOR UPDATE`, booking.CabinID)
	if err == sql.ErrNoRows {
		tx.Rollback()
		return 0, errors.BadRequest("Cabin does not exist")
	}
	if err != nil {
		tx.Rollback()
		return 0, errors.InternalServerError("error locking cabin row")
	}

	// Half-open interval overlap test; checked-in stays are excluded because
	// their departure is not yet authoritative for forward scheduling.
	var conflict bool
	err = tx.GetContext(ctx, &conflict, `
		SELECT EXISTS(
			SELECT 1 FROM bookings
			WHERE cabin_id = $1
			AND status <> $2
			AND start_date < $3
			AND end_date > $4
		)`, booking.CabinID, entity.StatusCheckedIn, booking.EndDate, booking.StartDate)
	if err != nil {
		tx.Rollback()
		return 0, errors.InternalServerError("error check booking conflict")
	}
	if conflict {
		tx.Rollback()
		return 0, errors.BadRequest("Cabin is already booked for the selected dates")
	}

	var id int64
	err = tx.GetContext(ctx, &id, `
		INSERT INTO bookings (
			cabin_id, guest_id, start_date, end_date, num_nights, num_guests,
			cabin_price, extras_price, total_price, status, has_breakfast,
			is_paid, observations
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING id`,
		booking.CabinID, booking.GuestID, booking.StartDate, booking.EndDate,
		booking.NumNights, booking.NumGuests, booking.CabinPrice,
		booking.ExtrasPrice, booking.TotalPrice, booking.Status,
		booking.HasBreakfast, booking.IsPaid, booking.Observations)
	if err != nil {
		tx.Rollback()
		return 0, errors.InternalServerError("error insert booking")
	}

	if err := tx.Commit(); err != nil {
		return 0, errors.InternalServerError("error committing transaction")
	}

	return id, nil
}

// FindBookingByID implements Repositories. A zero-value booking means not found.
func (r *repositories) FindBookingByID(ctx context.Context, id int64) (entity.BookingWithRelations, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM bookings b
		JOIN cabins c ON c.id = b.cabin_id
		JOIN guests g ON g.id = b.guest_id
		WHERE b.id = $1`, bookingWithRelationsColumns)
	var booking entity.BookingWithRelations
	err := r.db.GetContext(ctx, &booking, query, id)
	if err == sql.ErrNoRows {
		return entity.BookingWithRelations{}, nil
	}
	if err != nil {
		return entity.BookingWithRelations{}, errors.InternalServerError("error find booking by id")
	}
	return booking, nil
}

// FindBookingByIDForGuest implements Repositories. The lookup is scoped to the
// owner, so "not mine" and "does not exist" are indistinguishable here.
func (r *repositories) FindBookingByIDForGuest(ctx context.Context, id int64, guestID int64) (entity.BookingWithRelations, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM bookings b
		JOIN cabins c ON c.id = b.cabin_id
		JOIN guests g ON g.id = b.guest_id
		WHERE b.id = $1 AND b.guest_id = $2`, bookingWithRelationsColumns)
	var booking entity.BookingWithRelations
	err := r.db.GetContext(ctx, &booking, query, id, guestID)
	if err == sql.ErrNoRows {
		return entity.BookingWithRelations{}, nil
	}
	if err != nil {
		return entity.BookingWithRelations{}, errors.InternalServerError("error find booking by id for guest")
	}
	return booking, nil
}

// FindBookings implements Repositories.
func (r *repositories) FindBookings(ctx context.Context, filter *request.FindAllBookings) ([]entity.BookingWithRelations, int, error) {
	where := []string{"1=1"}
	args := []interface{}{}

	if filter.Status != "" {
		args = append(args, filter.Status)
		where = append(where, fmt.Sprintf("b.status = $%d", len(args)))
	}
	if filter.GuestID != 0 {
		args = append(args, filter.GuestID)
		where = append(where, fmt.Sprintf("b.guest_id = $%d", len(args)))
	}
	whereClause := strings.Join(where, " AND ")

	var total int
	countQuery := fmt.Sprintf(`SELECT COUNT(*) FROM bookings b WHERE %s`, whereClause)
	if err := r.db.GetContext(ctx, &total, countQuery, args...); err != nil {
		return nil, 0, errors.InternalServerError("error count bookings")
	}

	orderClause := ""
	if filter.SortBy != "" {
		direction := "ASC"
		if filter.SortOrder == "desc" {
			direction = "DESC"
		}
		// SortBy is whitelisted by request validation, never interpolated raw input
		orderClause = fmt.Sprintf(" ORDER BY b.%s %s", filter.SortBy, direction)
	}

	args = append(args, filter.Limit, (filter.Page-1)*filter.Limit)
	query := fmt.Sprintf(`
		SELECT %s FROM bookings b
		JOIN cabins c ON c.id = b.cabin_id
		JOIN guests g ON g.id = b.guest_id
		WHERE %s%s
		LIMIT $%d OFFSET $%d`,
		bookingWithRelationsColumns, whereClause, orderClause, len(args)-1, len(args))

	bookings := []entity.BookingWithRelations{}
	if err := r.db.SelectContext(ctx, &bookings, query, args...); err != nil {
		return nil, 0, errors.InternalServerError("error find bookings")
	}

	return bookings, total, nil
}

// UpdateBooking implements Repositories. Applies the partial patch and
// refreshes updated_at.
func (r *repositories) UpdateBooking(ctx context.Context, id int64, patch *request.UpdateBooking) error {
	set := []string{}
	args := []interface{}{}

	appendSet := func(column string, value interface{}) {
		args = append(args, value)
		set = append(set, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if patch.NumGuests != nil {
		appendSet("num_guests", *patch.NumGuests)
	}
	if patch.Status != nil {
		appendSet("status", *patch.Status)
	}
	if patch.HasBreakfast != nil {
		appendSet("has_breakfast", *patch.HasBreakfast)
	}
	if patch.IsPaid != nil {
		appendSet("is_paid", *patch.IsPaid)
	}
	if patch.Observations != nil {
		appendSet("observations", strings.TrimSpace(*patch.Observations))
	}

	set = append(set, "updated_at = NOW()")

	args = append(args, id)
	query := fmt.Sprintf(`UPDATE bookings SET %s WHERE id = $%d`, strings.Join(set, ", "), len(args))
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return errors.InternalServerError("error update booking")
	}
	return nil
}

// DeleteBooking implements Repositories.
func (r *repositories) DeleteBooking(ctx context.Context, id int64) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM bookings WHERE id = $1`, id); err != nil {
		return errors.InternalServerError("error delete booking")
	}
	return nil
}

// DeleteAllBookings implements Repositories.
func (r *repositories) DeleteAllBookings(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM bookings`); err != nil {
		return errors.InternalServerError("error delete all bookings")
	}
	return nil
}

// FindBookingsCreatedBetween implements Repositories.
func (r *repositories) FindBookingsCreatedBetween(ctx context.Context, from time.Time, to time.Time) ([]entity.Booking, error) {
	query := `SELECT * FROM bookings WHERE created_at BETWEEN $1 AND $2`
	bookings := []entity.Booking{}
	if err := r.db.SelectContext(ctx, &bookings, query, from, to); err != nil {
		return nil, errors.InternalServerError("error find bookings after date")
	}
	return bookings, nil
}

// FindRecentStays implements Repositories.
func (r *repositories) FindRecentStays(ctx context.Context, from time.Time, to time.Time) ([]entity.Booking, error) {
	query := `
		SELECT * FROM bookings
		WHERE start_date BETWEEN $1 AND $2
		AND status IN ($3, $4)`
	bookings := []entity.Booking{}
	err := r.db.SelectContext(ctx, &bookings, query, from, to, entity.StatusCheckedIn, entity.StatusCheckedOut)
	if err != nil {
		return nil, errors.InternalServerError("error find recent stays")
	}
	return bookings, nil
}

// FindTodayActivity implements Repositories. Arrivals still unconfirmed and
// departures still checked in, within the local day, oldest first.
func (r *repositories) FindTodayActivity(ctx context.Context, dayStart time.Time, dayEnd time.Time) ([]entity.BookingWithRelations, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM bookings b
		JOIN cabins c ON c.id = b.cabin_id
		JOIN guests g ON g.id = b.guest_id
		WHERE (b.status = $1 AND b.start_date >= $3 AND b.start_date < $4)
		OR (b.status = $2 AND b.end_date >= $3 AND b.end_date < $4)
		ORDER BY b.created_at ASC`, bookingWithRelationsColumns)
	bookings := []entity.BookingWithRelations{}
	err := r.db.SelectContext(ctx, &bookings, query, entity.StatusUnconfirmed, entity.StatusCheckedIn, dayStart, dayEnd)
	if err != nil {
		return nil, errors.InternalServerError("error find today activity")
	}
	return bookings, nil
}

// FindBookedDates implements Repositories.
func (r *repositories) FindBookedDates(ctx context.Context, cabinID int64, today time.Time) ([]entity.Booking, error) {
	query := `
		SELECT id, cabin_id, guest_id, start_date, end_date, num_nights,
			num_guests, cabin_price, extras_price, total_price, status,
			has_breakfast, is_paid, observations, created_at, updated_at
		FROM bookings
		WHERE cabin_id = $1 AND (start_date >= $2 OR status = $3)`
	bookings := []entity.Booking{}
	err := r.db.SelectContext(ctx, &bookings, query, cabinID, today, entity.StatusCheckedIn)
	if err != nil {
		return nil, errors.InternalServerError("error find booked dates")
	}
	return bookings, nil
}

// SetTaskScheduler implements Repositories.
func (r *repositories) SetTaskScheduler(ctx context.Context, processAt time.Time, payload []byte) (string, error) {
	task := asynq.NewTask(scheduler.TypeBookingReminder, payload)
	info, err := r.schedulerClient.EnqueueContext(ctx, task, asynq.ProcessAt(processAt))
	if err != nil {
		return "", errors.InternalServerError("error enqueue scheduled task")
	}
	return info.ID, nil
}

func (r *repositories) ValidateToken(ctx context.Context, token string) (response.UserServiceValidate, error) {
	// http call to the credential service
	url := fmt.Sprintf("http://%s:%s/api/private/token/validate?token=%s", r.cfgUserService.Host, r.cfgUserService.Port, token)
	resp, err := r.httpClient.Get(url)
	if err != nil {
		return response.UserServiceValidate{}, err
	}

	defer resp.Body.Close()

	if resp.StatusCode != 200 {
		r.log.Error(ctx, "Invalid token", resp.StatusCode)
		return response.UserServiceValidate{}, errors.UnauthorizedError("Invalid token")
	}

	var respData response.UserServiceValidate
	dec := json.NewDecoder(resp.Body)
	if err := dec.Decode(&respData); err != nil {
		return response.UserServiceValidate{}, err
	}

	if !respData.IsValid {
		r.log.Error(ctx, "Invalid token", resp.StatusCode)
		return response.UserServiceValidate{}, errors.UnauthorizedError("Invalid token")
	}

	return respData, nil
}

package repositories

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/Mohamed-Saad-02/wild-oasis-backend/internal/module/guest/models/entity"
	"github.com/Mohamed-Saad-02/wild-oasis-backend/internal/module/guest/models/request"
	"github.com/Mohamed-Saad-02/wild-oasis-backend/internal/pkg/errors"
	"github.com/Mohamed-Saad-02/wild-oasis-backend/internal/pkg/log"
	"github.com/jmoiron/sqlx"
)

type repositories struct {
	db  *sqlx.DB
	log log.Logger
}

type Repositories interface {
	InsertGuest(ctx context.Context, guest *entity.Guest) error
	InsertGuests(ctx context.Context, guests []entity.Guest) error
	FindGuests(ctx context.Context) ([]entity.Guest, error)
	FindGuestByID(ctx context.Context, id int64) (entity.Guest, error)
	UpdateGuest(ctx context.Context, id int64, patch *request.UpdateGuest) error
	DeleteGuest(ctx context.Context, id int64) error
	DeleteAllGuests(ctx context.Context) error
}

func New(db *sqlx.DB, log log.Logger) Repositories {
	return &repositories{
		db:  db,
		log: log,
	}
}

const insertGuestQuery = `
	INSERT INTO guests (full_name, email, national_id, nationality, country_flag)
	VALUES (:full_name, :email, :national_id, :nationality, :country_flag)`

// InsertGuest implements Repositories.
func (r *repositories) InsertGuest(ctx context.Context, guest *entity.Guest) error {
	if _, err := r.db.NamedExecContext(ctx, insertGuestQuery, guest); err != nil {
		return errors.InternalServerError("error insert guest")
	}
	return nil
}

// InsertGuests implements Repositories. sqlx expands the named exec over the
// slice into a single multi-row insert.
func (r *repositories) InsertGuests(ctx context.Context, guests []entity.Guest) error {
	if len(guests) == 0 {
		return nil
	}
	if _, err := r.db.NamedExecContext(ctx, insertGuestQuery, guests); err != nil {
		return errors.InternalServerError("error insert guests")
	}
	return nil
}

// FindGuests implements Repositories.
func (r *repositories) FindGuests(ctx context.Context) ([]entity.Guest, error) {
	guests := []entity.Guest{}
	if err := r.db.SelectContext(ctx, &guests, `SELECT * FROM guests ORDER BY id`); err != nil {
		return nil, errors.InternalServerError("error find guests")
	}
	return guests, nil
}

// FindGuestByID implements Repositories. A zero-value guest means not found.
func (r *repositories) FindGuestByID(ctx context.Context, id int64) (entity.Guest, error) {
	var guest entity.Guest
	err := r.db.GetContext(ctx, &guest, `SELECT * FROM guests WHERE id = $1`, id)
	if err == sql.ErrNoRows {
		return entity.Guest{}, nil
	}
	if err != nil {
		return entity.Guest{}, errors.InternalServerError("error find guest by id")
	}
	return guest, nil
}

// UpdateGuest implements Repositories.
func (r *repositories) UpdateGuest(ctx context.Context, id int64, patch *request.UpdateGuest) error {
	set := []string{}
	args := []interface{}{}

	appendSet := func(column string, value interface{}) {
		args = append(args, value)
		set = append(set, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if patch.FullName != nil {
		appendSet("full_name", *patch.FullName)
	}
	if patch.Email != nil {
		appendSet("email", *patch.Email)
	}
	if patch.NationalID != nil {
		appendSet("national_id", *patch.NationalID)
	}
	if patch.Nationality != nil {
		appendSet("nationality", *patch.Nationality)
	}
	if patch.CountryFlag != nil {
		appendSet("country_flag", *patch.CountryFlag)
	}

	set = append(set, "updated_at = NOW()")

	args = append(args, id)
	query := fmt.Sprintf(`UPDATE guests SET %s WHERE id = $%d`, strings.Join(set, ", "), len(args))
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return errors.InternalServerError("error update guest")
	}
	return nil
}

// DeleteGuest implements Repositories. Bookings cascade at the schema level.
func (r *repositories) DeleteGuest(ctx context.Context, id int64) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM guests WHERE id = $1`, id); err != nil {
		return errors.InternalServerError("error delete guest")
	}
	return nil
}

// DeleteAllGuests implements Repositories.
func (r *repositories) DeleteAllGuests(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM guests`); err != nil {
		return errors.InternalServerError("error delete all guests")
	}
	return nil
}

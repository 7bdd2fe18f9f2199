package repositories

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/Mohamed-Saad-02/wild-oasis-backend/internal/module/cabin/models/entity"
	"github.com/Mohamed-Saad-02/wild-oasis-backend/internal/module/cabin/models/request"
	"github.com/Mohamed-Saad-02/wild-oasis-backend/internal/pkg/errors"
	"github.com/Mohamed-Saad-02/wild-oasis-backend/internal/pkg/log"
	"github.com/jmoiron/sqlx"
)

type repositories struct {
	db  *sqlx.DB
	log log.Logger
}

type Repositories interface {
	InsertCabin(ctx context.Context, cabin *entity.Cabin) error
	FindCabins(ctx context.Context, page int, limit int) ([]entity.Cabin, int, error)
	FindCabinByID(ctx context.Context, id int64) (entity.Cabin, error)
	UpdateCabin(ctx context.Context, id int64, patch *request.UpdateCabin, imageURL string, imagePublicID string) error
	DeleteCabin(ctx context.Context, id int64) error
	DeleteAllCabins(ctx context.Context) error
	FindAllCabinImages(ctx context.Context) ([]string, error)
}

func New(db *sqlx.DB, log log.Logger) Repositories {
	return &repositories{
		db:  db,
		log: log,
	}
}

// InsertCabin implements Repositories.
func (r *repositories) InsertCabin(ctx context.Context, cabin *entity.Cabin) error {
	query := `
		INSERT INTO cabins (name, max_capacity, regular_price, discount, description, image_url, image_public_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.db.ExecContext(ctx, query,
		cabin.Name, cabin.MaxCapacity, cabin.RegularPrice, cabin.Discount,
		cabin.Description, cabin.ImageURL, cabin.ImagePublicID)
	if err != nil {
		return errors.InternalServerError("error insert cabin")
	}
	return nil
}

// FindCabins implements Repositories.
func (r *repositories) FindCabins(ctx context.Context, page int, limit int) ([]entity.Cabin, int, error) {
	var total int
	if err := r.db.GetContext(ctx, &total, `SELECT COUNT(*) FROM cabins`); err != nil {
		return nil, 0, errors.InternalServerError("error count cabins")
	}

	cabins := []entity.Cabin{}
	query := `SELECT * FROM cabins ORDER BY id LIMIT $1 OFFSET $2`
	if err := r.db.SelectContext(ctx, &cabins, query, limit, (page-1)*limit); err != nil {
		return nil, 0, errors.InternalServerError("error find cabins")
	}

	return cabins, total, nil
}

// FindCabinByID implements Repositories. A zero-value cabin means not found.
func (r *repositories) FindCabinByID(ctx context.Context, id int64) (entity.Cabin, error) {
	var cabin entity.Cabin
	err := r.db.GetContext(ctx, &cabin, `SELECT * FROM cabins WHERE id = $1`, id)
	if err == sql.ErrNoRows {
		return entity.Cabin{}, nil
	}
	if err != nil {
		return entity.Cabin{}, errors.InternalServerError("error find cabin by id")
	}
	return cabin, nil
}

// UpdateCabin implements Repositories. Empty image arguments keep the stored
// image untouched.
func (r *repositories) UpdateCabin(ctx context.Context, id int64, patch *request.UpdateCabin, imageURL string, imagePublicID string) error {
	set := []string{}
	args := []interface{}{}

	appendSet := func(column string, value interface{}) {
		args = append(args, value)
		set = append(set, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if patch.Name != nil {
		appendSet("name", *patch.Name)
	}
	if patch.MaxCapacity != nil {
		appendSet("max_capacity", *patch.MaxCapacity)
	}
	if patch.RegularPrice != nil {
		appendSet("regular_price", *patch.RegularPrice)
	}
	if patch.Discount != nil {
		appendSet("discount", *patch.Discount)
	}
	if patch.Description != nil {
		appendSet("description", *patch.Description)
	}
	if imageURL != "" {
		appendSet("image_url", imageURL)
		appendSet("image_public_id", imagePublicID)
	}

	set = append(set, "updated_at = NOW()")

	args = append(args, id)
	query := fmt.Sprintf(`UPDATE cabins SET %s WHERE id = $%d`, strings.Join(set, ", "), len(args))
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return errors.InternalServerError("error update cabin")
	}
	return nil
}

// DeleteCabin implements Repositories. Bookings cascade at the schema level.
func (r *repositories) DeleteCabin(ctx context.Context, id int64) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM cabins WHERE id = $1`, id); err != nil {
		return errors.InternalServerError("error delete cabin")
	}
	return nil
}

// DeleteAllCabins implements Repositories.
func (r *repositories) DeleteAllCabins(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM cabins`); err != nil {
		return errors.InternalServerError("error delete all cabins")
	}
	return nil
}

// FindAllCabinImages implements Repositories.
func (r *repositories) FindAllCabinImages(ctx context.Context) ([]string, error) {
	ids := []string{}
	query := `SELECT image_public_id FROM cabins WHERE image_public_id <> ''`
	if err := r.db.SelectContext(ctx, &ids, query); err != nil {
		return nil, errors.InternalServerError("error find cabin images")
	}
	return ids, nil
}

package entity

import "time"

type Cabin struct {
	ID            int64     `db:"id"`
	Name          string    `db:"name"`
	MaxCapacity   int       `db:"max_capacity"`
	RegularPrice  float64   `db:"regular_price"`
	Discount      float64   `db:"discount"`
	Description   string    `db:"description"`
	ImageURL      string    `db:"image_url"`
	ImagePublicID string    `db:"image_public_id"`
	CreatedAt     time.Time `db:"created_at"`
	UpdatedAt     time.Time `db:"updated_at"`
}

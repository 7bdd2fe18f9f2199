package entity

import "time"

// Guest is the booking owner directory entry. Credentials live in the
// external credential service, not here.
type Guest struct {
	ID          int64     `db:"id" json:"id"`
	FullName    string    `db:"full_name" json:"full_name"`
	Email       string    `db:"email" json:"email"`
	NationalID  string    `db:"national_id" json:"national_id"`
	Nationality string    `db:"nationality" json:"nationality"`
	CountryFlag string    `db:"country_flag" json:"country_flag"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time `db:"updated_at" json:"updated_at"`
}

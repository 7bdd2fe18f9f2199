package response

import "time"

type Metadata struct {
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	Total      int `json:"total"`
	TotalPages int `json:"total_pages"`
}

type Cabin struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	MaxCapacity  int       `json:"max_capacity"`
	RegularPrice float64   `json:"regular_price"`
	Discount     float64   `json:"discount"`
	Description  string    `json:"description"`
	Image        string    `json:"image"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type CabinList struct {
	Metadata Metadata `json:"metadata"`
	Data     []Cabin  `json:"data"`
}

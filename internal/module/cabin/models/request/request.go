package request

type CreateCabin struct {
	Name         string  `json:"name" form:"name" validate:"required"`
	MaxCapacity  int     `json:"max_capacity" form:"max_capacity" validate:"required,min=1"`
	RegularPrice float64 `json:"regular_price" form:"regular_price" validate:"required,gt=0"`
	Discount     float64 `json:"discount" form:"discount" validate:"omitempty,min=0"`
	Description  string  `json:"description" form:"description" validate:"required"`
}

type UpdateCabin struct {
	Name         *string  `json:"name" form:"name"`
	MaxCapacity  *int     `json:"max_capacity" form:"max_capacity" validate:"omitempty,min=1"`
	RegularPrice *float64 `json:"regular_price" form:"regular_price" validate:"omitempty,gt=0"`
	Discount     *float64 `json:"discount" form:"discount" validate:"omitempty,min=0"`
	Description  *string  `json:"description" form:"description"`
}

type FindAllCabins struct {
	Page  int `query:"page"`
	Limit int `query:"limit"`
}

func (r *FindAllCabins) Normalize() {
	if r.Page < 1 {
		r.Page = 1
	}
	if r.Limit < 1 {
		r.Limit = 10
	}
}

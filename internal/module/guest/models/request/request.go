package request

type CreateGuest struct {
	FullName    string `json:"full_name" validate:"required"`
	Email       string `json:"email" validate:"required,email"`
	NationalID  string `json:"national_id" validate:"required"`
	Nationality string `json:"nationality" validate:"required"`
	CountryFlag string `json:"country_flag" validate:"required"`
}

type UpdateGuest struct {
	FullName    *string `json:"full_name"`
	Email       *string `json:"email" validate:"omitempty,email"`
	NationalID  *string `json:"national_id"`
	Nationality *string `json:"nationality"`
	CountryFlag *string `json:"country_flag"`
}

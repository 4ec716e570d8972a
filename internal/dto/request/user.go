package request

type UpdateProfileRequest struct {
	FirstName string `json:"first_name" validate:"omitempty,min=1,max=100"`
	LastName  string `json:"last_name" validate:"omitempty,min=1,max=100"`
	BirthDate string `json:"birth_date" validate:"omitempty,datetime=2006-01-02"`
}

package request

type ReservationRequest struct {
	ScreeningID string   `json:"screening_id" validate:"required,uuid"`
	Seats       []string `json:"seats" validate:"dive,required"`
}

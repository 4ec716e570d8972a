package request

type ScreeningRequest struct {
	FilmID string `json:"film_id" validate:"required,uuid"`
	Start  string `json:"start" validate:"required"`
}

type AssignRoomRequest struct {
	RoomID string `json:"room_id" validate:"required,uuid"`
}

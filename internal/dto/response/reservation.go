package response

import (
	"time"

	"cinema-boxoffice/internal/data/entity"
)

type ReservationResponse struct {
	ID          string    `json:"id"`
	Code        string    `json:"code"`
	UserID      string    `json:"user_id"`
	RoomNumber  int       `json:"room_number"`
	FilmTitle   string    `json:"film_title"`
	Start       string    `json:"start"`
	Seats       []string  `json:"seats"`
	TotalPrice  int       `json:"total_price"`
	NormalSeats int       `json:"normal_seats"`
	VIPSeats    int       `json:"vip_seats"`
	CreatedAt   time.Time `json:"created_at"`
}

func ReservationToResponse(reservation *entity.Reservation, roomNumber int, filmTitle string) ReservationResponse {
	return ReservationResponse{
		ID:         reservation.ID.String(),
		Code:       reservation.Code,
		UserID:     reservation.UserID.String(),
		RoomNumber: roomNumber,
		FilmTitle:  filmTitle,
		Start:      reservation.Start,
		Seats:      reservation.Seats,
		CreatedAt:  reservation.CreatedAt,
	}
}

// QuoteResponse is the price breakdown for a seat selection.
type QuoteResponse struct {
	Total       int `json:"total"`
	NormalSeats int `json:"normal_seats"`
	VIPSeats    int `json:"vip_seats"`
}

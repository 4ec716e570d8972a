package response

import "cinema-boxoffice/internal/data/entity"

type ScreeningResponse struct {
	ID        string `json:"id"`
	FilmID    string `json:"film_id"`
	FilmTitle string `json:"film_title,omitempty"`
	Start     string `json:"start"`
	End       string `json:"end"`
	RoomID    string `json:"room_id,omitempty"`
}

func ScreeningToResponse(screening *entity.Screening) ScreeningResponse {
	return ScreeningResponse{
		ID:     screening.ID.String(),
		FilmID: screening.FilmID.String(),
		Start:  screening.Start,
		End:    screening.End,
	}
}

// SeatMapResponse is everything a UI needs to draw the grid for one
// screening: rows of 'o'/'x', where the VIP band ends, and the count of
// seats still open.
type SeatMapResponse struct {
	ScreeningID    string   `json:"screening_id"`
	RoomNumber     int      `json:"room_number"`
	Rows           int      `json:"rows"`
	VIPRows        int      `json:"vip_rows"`
	Columns        int      `json:"columns"`
	Grid           []string `json:"grid"`
	AvailableSeats int      `json:"available_seats"`
}

package entity

import "github.com/google/uuid"

// Reservation is a user's claim on a set of seats for one screening.
// Seats are stored as labels ("A1", "B3", ...). The screening is
// referenced by film + start time. Cancellation deletes the record
// outright rather than flagging it.
type Reservation struct {
	BaseSimple
	Code   string    `db:"code"`
	UserID uuid.UUID `db:"user_id"`
	RoomID uuid.UUID `db:"room_id"`
	FilmID uuid.UUID `db:"film_id"`
	Start  string    `db:"start_time"`
	Seats  []string  `db:"seats"`
}

func (r *Reservation) SeatCount() int {
	return len(r.Seats)
}

package entity

import (
	"time"

	"github.com/google/uuid"
)

// RoomSeating is the persisted grid for one (room, screening) pairing.
// It is created exactly once, when the screening is assigned to the
// room, and the grid is mutated in place afterwards; it is never
// regenerated.
type RoomSeating struct {
	RoomID      uuid.UUID `db:"room_id"`
	ScreeningID uuid.UUID `db:"screening_id"`
	Grid        SeatGrid  `db:"grid"`
	UpdatedAt   time.Time `db:"updated_at"`
}

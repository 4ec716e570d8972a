package repository

import (
	"cinema-boxoffice/pkg/database"

	"go.uber.org/zap"
)

type Repository struct {
	User        UserRepository
	Session     SessionRepository
	Film        FilmRepository
	Room        RoomRepository
	Screening   ScreeningRepository
	Seating     SeatingRepository
	Reservation ReservationRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		User:        NewUserRepository(db, log),
		Session:     NewSessionRepository(db, log),
		Film:        NewFilmRepository(db, log),
		Room:        NewRoomRepository(db, log),
		Screening:   NewScreeningRepository(db, log),
		Seating:     NewSeatingRepository(db, log),
		Reservation: NewReservationRepository(db, log),
	}
}

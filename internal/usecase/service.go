package usecase

import (
	"time"

	"cinema-boxoffice/internal/data/repository"
	"cinema-boxoffice/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Auth        AuthService
	User        UserService
	Film        FilmService
	Room        RoomService
	Schedule    ScheduleService
	Reservation ReservationService
}

func NewService(repo *repository.Repository, config *utils.Config, log *zap.Logger) *Service {
	// Wall clock is injected so age checks and timestamps stay
	// deterministic under test.
	now := time.Now

	return &Service{
		Auth:        NewAuthService(repo, config, log, now),
		User:        NewUserService(repo.User, log),
		Film:        NewFilmService(repo, log, now),
		Room:        NewRoomService(repo, log, now),
		Schedule:    NewScheduleService(repo, log, now),
		Reservation: NewReservationService(repo, log, now),
	}
}

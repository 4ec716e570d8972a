package adaptor

import (
	"errors"
	"net/http"
	"strings"

	"cinema-boxoffice/internal/data/entity"
	"cinema-boxoffice/internal/usecase"
	"cinema-boxoffice/pkg/utils"

	"go.uber.org/zap"
)

type Handler struct {
	Auth        *AuthHandler
	User        *UserHandler
	Film        *FilmHandler
	Room        *RoomHandler
	Schedule    *ScheduleHandler
	Reservation *ReservationHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Auth:        NewAuthHandler(service.Auth, log),
		User:        NewUserHandler(service.User, log),
		Film:        NewFilmHandler(service.Film, log),
		Room:        NewRoomHandler(service.Room, log),
		Schedule:    NewScheduleHandler(service.Schedule, log),
		Reservation: NewReservationHandler(service.Reservation, log),
	}
}

// respondServiceError maps usecase errors onto HTTP status codes. The
// services return typed errors, so the mapping is by type rather than
// by message text.
func respondServiceError(w http.ResponseWriter, log *zap.Logger, err error, operation string) {
	var (
		validationErr  *entity.ValidationError
		formatErr      *entity.FormatError
		oobErr         *entity.OutOfBoundsError
		seatStateErr   *entity.SeatStateError
		ageErr         *usecase.AgeRestrictedError
		unavailableErr *usecase.SeatUnavailableError
		duplicateErr   *usecase.DuplicateSeatError
		conflictErr    *usecase.ScheduleConflictError
		storageErr     *usecase.StorageError
	)

	switch {
	case errors.As(err, &validationErr),
		errors.As(err, &formatErr),
		errors.As(err, &oobErr),
		errors.As(err, &duplicateErr),
		errors.Is(err, usecase.ErrEmptySelection):
		log.Warn(operation+" rejected", zap.Error(err))
		utils.ResponseBadRequest(w, err.Error(), nil)

	case errors.As(err, &ageErr),
		errors.Is(err, usecase.ErrNotOwner):
		log.Warn(operation+" forbidden", zap.Error(err))
		utils.ResponseForbidden(w, err.Error())

	case errors.As(err, &unavailableErr),
		errors.As(err, &conflictErr),
		errors.As(err, &seatStateErr),
		errors.Is(err, usecase.ErrGridMissing):
		log.Warn(operation+" conflict", zap.Error(err))
		utils.ResponseConflict(w, err.Error(), nil)

	case errors.Is(err, usecase.ErrNotFound):
		log.Warn(operation+" target not found", zap.Error(err))
		utils.ResponseNotFound(w, err.Error())

	case errors.As(err, &storageErr):
		log.Error("Failed to "+operation, zap.Error(err))
		utils.ResponseInternalError(w, "Internal server error")

	// services still return plain fmt.Errorf for request-shaped
	// problems like bad UUIDs and duplicates
	case strings.Contains(err.Error(), "validation failed"),
		strings.Contains(err.Error(), "invalid"),
		strings.Contains(err.Error(), "already"),
		strings.Contains(err.Error(), "no showtime"):
		log.Warn(operation+" rejected", zap.Error(err))
		utils.ResponseBadRequest(w, err.Error(), nil)

	default:
		log.Error("Failed to "+operation, zap.Error(err))
		utils.ResponseInternalError(w, "Internal server error")
	}
}

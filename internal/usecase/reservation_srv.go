package usecase

import (
	"context"
	"fmt"
	"time"

	"cinema-boxoffice/internal/data/entity"
	"cinema-boxoffice/internal/data/repository"
	"cinema-boxoffice/internal/dto/request"
	"cinema-boxoffice/internal/dto/response"
	"cinema-boxoffice/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Ticket tariff in currency units. VIP rows are the first rows of the
// room (row index below the room's VIP row count).
const (
	PriceNormal = 9
	PriceVIP    = 15
)

type ReservationService interface {
	Reserve(ctx context.Context, userID string, req *request.ReservationRequest) (*response.ReservationResponse, error)
	Cancel(ctx context.Context, userID string, reservationID string) error
	Quote(room *entity.Room, seatLabels []string) (*response.QuoteResponse, error)
	GetUserReservations(ctx context.Context, userID string) ([]response.ReservationResponse, error)
	GetAllReservations(ctx context.Context) ([]response.ReservationResponse, error)
}

type reservationService struct {
	repo *repository.Repository
	log  *zap.Logger
	now  func() time.Time
}

func NewReservationService(repo *repository.Repository, log *zap.Logger, now func() time.Time) ReservationService {
	return &reservationService{
		repo: repo,
		log:  log.With(zap.String("service", "reservation")),
		now:  now,
	}
}

// PriceForSeat prices a single seat label against the room's VIP band.
func PriceForSeat(room *entity.Room, seatLabel string) (int, error) {
	coord, err := entity.ParseSeatLabel(seatLabel)
	if err != nil {
		return 0, err
	}
	if room.IsVIPRow(coord.Row) {
		return PriceVIP, nil
	}
	return PriceNormal, nil
}

// Quote sums the tariff over a seat selection. Pure, no mutation.
func (s *reservationService) Quote(room *entity.Room, seatLabels []string) (*response.QuoteResponse, error) {
	quote := &response.QuoteResponse{}
	for _, label := range seatLabels {
		price, err := PriceForSeat(room, label)
		if err != nil {
			return nil, err
		}
		quote.Total += price
		if price == PriceVIP {
			quote.VIPSeats++
		} else {
			quote.NormalSeats++
		}
	}
	return quote, nil
}

// Reserve turns a seat selection into a persisted reservation. The
// grid marks, the reservation record and the user's counter bump form
// one logical transaction: a failure after cells are marked rolls the
// cells back before the error surfaces.
func (s *reservationService) Reserve(ctx context.Context, userID string, req *request.ReservationRequest) (*response.ReservationResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Reserve validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return nil, fmt.Errorf("invalid user ID format %s: %w", userID, err)
	}
	screeningID, err := uuid.Parse(req.ScreeningID)
	if err != nil {
		return nil, fmt.Errorf("invalid screening ID format %s: %w", req.ScreeningID, err)
	}

	// Precondition a: a reservation claims at least one seat.
	if len(req.Seats) == 0 {
		return nil, ErrEmptySelection
	}

	user, err := s.repo.User.FindByID(ctx, userUUID)
	if err != nil {
		return nil, &StorageError{Op: "load user", Err: err}
	}
	if user == nil {
		return nil, fmt.Errorf("user %s: %w", userID, ErrNotFound)
	}

	screening, err := s.repo.Screening.FindByID(ctx, screeningID)
	if err != nil {
		return nil, &StorageError{Op: "load screening", Err: err}
	}
	if screening == nil {
		return nil, fmt.Errorf("screening %s: %w", req.ScreeningID, ErrNotFound)
	}

	film, err := s.repo.Film.FindByID(ctx, screening.FilmID)
	if err != nil {
		return nil, &StorageError{Op: "load film", Err: err}
	}
	if film == nil {
		return nil, fmt.Errorf("film %s: %w", screening.FilmID.String(), ErrNotFound)
	}

	// Precondition b: age gate against the film's minimum age.
	if age := user.Age(s.now()); age < film.MinimumAge {
		s.log.Info("Reservation rejected by age gate",
			zap.String("user_id", userID),
			zap.String("film", film.Title),
			zap.Int("required", film.MinimumAge),
			zap.Int("actual", age),
		)
		return nil, &AgeRestrictedError{Required: film.MinimumAge, Actual: age}
	}

	room, err := s.repo.Room.FindByScreeningID(ctx, screeningID)
	if err != nil {
		return nil, &StorageError{Op: "find assigned room", Err: err}
	}
	if room == nil {
		return nil, ErrGridMissing
	}

	seating, err := s.repo.Seating.Find(ctx, room.ID, screeningID)
	if err != nil {
		return nil, &StorageError{Op: "load seating grid", Err: err}
	}
	if seating == nil {
		return nil, ErrGridMissing
	}
	grid := seating.Grid

	// Precondition c: every label parses and lies inside the grid.
	coords := make([]entity.Coord, len(req.Seats))
	for i, label := range req.Seats {
		coord, err := entity.ParseSeatLabel(label)
		if err != nil {
			return nil, err
		}
		if !grid.Contains(coord) {
			return nil, &entity.OutOfBoundsError{
				Row: coord.Row, Col: coord.Col,
				Rows: grid.Rows(), Cols: grid.Columns(),
			}
		}
		coords[i] = coord
	}

	// Precondition d: every referenced cell is still available.
	for i, coord := range coords {
		if grid.StateAt(coord) != entity.SeatAvailable {
			return nil, &SeatUnavailableError{Seat: req.Seats[i]}
		}
	}

	// Precondition e: no seat listed twice in one request.
	seen := make(map[entity.Coord]bool, len(coords))
	for i, coord := range coords {
		if seen[coord] {
			return nil, &DuplicateSeatError{Seat: req.Seats[i]}
		}
		seen[coord] = true
	}

	if err := grid.Mark(coords, entity.SeatOccupied); err != nil {
		return nil, err
	}

	rollback := func() {
		if err := grid.Mark(coords, entity.SeatAvailable); err != nil {
			s.log.Error("Seat rollback failed", zap.Error(err))
		}
	}

	quote, err := s.Quote(room, req.Seats)
	if err != nil {
		rollback()
		return nil, err
	}

	now := s.now()
	reservation := &entity.Reservation{
		BaseSimple: entity.BaseSimple{
			ID:        uuid.New(),
			CreatedAt: now,
		},
		Code:   utils.GenerateReservationCode(now),
		UserID: user.ID,
		RoomID: room.ID,
		FilmID: film.ID,
		Start:  screening.Start,
		Seats:  append([]string(nil), req.Seats...),
	}

	// Persist only once the in-memory mutation is complete; each later
	// failure compensates the earlier writes so stored state never
	// drifts from the grid.
	if err := s.repo.Seating.SaveGrid(ctx, room.ID, screeningID, grid); err != nil {
		rollback()
		return nil, &StorageError{Op: "save seating grid", Err: err}
	}

	if err := s.repo.Reservation.Create(ctx, reservation); err != nil {
		rollback()
		if saveErr := s.repo.Seating.SaveGrid(ctx, room.ID, screeningID, grid); saveErr != nil {
			s.log.Error("Failed to restore seating grid after reservation failure", zap.Error(saveErr))
		}
		return nil, &StorageError{Op: "create reservation", Err: err}
	}

	user.ReservationCount = s.recountReservations(ctx, user.ID, user.ReservationCount+1)
	user.UpdatedAt = now
	if err := s.repo.User.Update(ctx, user); err != nil {
		if delErr := s.repo.Reservation.Delete(ctx, reservation.ID); delErr != nil {
			s.log.Error("Failed to remove reservation after counter failure", zap.Error(delErr))
		}
		rollback()
		if saveErr := s.repo.Seating.SaveGrid(ctx, room.ID, screeningID, grid); saveErr != nil {
			s.log.Error("Failed to restore seating grid after counter failure", zap.Error(saveErr))
		}
		return nil, &StorageError{Op: "update user counter", Err: err}
	}

	s.log.Info("Reservation created",
		zap.String("reservation_id", reservation.ID.String()),
		zap.String("code", reservation.Code),
		zap.String("user_id", userID),
		zap.String("film", film.Title),
		zap.Strings("seats", reservation.Seats),
		zap.Int("total_price", quote.Total),
	)

	resp := response.ReservationToResponse(reservation, room.Number, film.Title)
	resp.TotalPrice = quote.Total
	resp.NormalSeats = quote.NormalSeats
	resp.VIPSeats = quote.VIPSeats
	return &resp, nil
}

// Cancel frees the reservation's seats, removes the record and
// decrements the user's counter (floored at zero). A reservation whose
// grid no longer exists is still deleted, but the caller is told the
// seats could not be released.
func (s *reservationService) Cancel(ctx context.Context, userID string, reservationID string) error {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return fmt.Errorf("invalid user ID format %s: %w", userID, err)
	}
	resID, err := uuid.Parse(reservationID)
	if err != nil {
		return fmt.Errorf("invalid reservation ID format %s: %w", reservationID, err)
	}

	reservation, err := s.repo.Reservation.FindByID(ctx, resID)
	if err != nil {
		return &StorageError{Op: "load reservation", Err: err}
	}
	if reservation == nil {
		return fmt.Errorf("reservation %s: %w", reservationID, ErrNotFound)
	}
	if reservation.UserID != userUUID {
		return ErrNotOwner
	}

	user, err := s.repo.User.FindByID(ctx, userUUID)
	if err != nil {
		return &StorageError{Op: "load user", Err: err}
	}
	if user == nil {
		return fmt.Errorf("user %s: %w", userID, ErrNotFound)
	}

	seating, seatsFreed, err := s.freeSeats(ctx, reservation)
	if err != nil {
		return err
	}

	if err := s.repo.Reservation.Delete(ctx, resID); err != nil {
		if seatsFreed {
			// re-occupy so the grid matches the still-existing record
			s.reoccupySeats(ctx, seating, reservation)
		}
		return &StorageError{Op: "delete reservation", Err: err}
	}

	fallback := user.ReservationCount - 1
	if fallback < 0 {
		fallback = 0
	}
	user.ReservationCount = s.recountReservations(ctx, userUUID, fallback)
	user.UpdatedAt = s.now()
	if err := s.repo.User.Update(ctx, user); err != nil {
		// record is gone and seats are freed; the stored counter stays
		// stale until the next successful write recounts it, so log
		// loudly instead of failing the cancellation
		s.log.Error("Failed to decrement reservation counter",
			zap.Error(err),
			zap.String("user_id", userID),
		)
	}

	s.log.Info("Reservation cancelled",
		zap.String("reservation_id", reservationID),
		zap.String("user_id", userID),
		zap.Bool("seats_released", seatsFreed),
	)

	if !seatsFreed {
		return ErrSeatsNotReleased
	}
	return nil
}

// freeSeats marks the reservation's cells available and persists the
// grid. The second return reports whether a grid existed at all.
func (s *reservationService) freeSeats(ctx context.Context, reservation *entity.Reservation) (*entity.RoomSeating, bool, error) {
	screening, err := s.repo.Screening.FindByFilmAndStart(ctx, reservation.FilmID, reservation.Start)
	if err != nil {
		return nil, false, &StorageError{Op: "find screening", Err: err}
	}
	if screening == nil {
		return nil, false, nil
	}

	seating, err := s.repo.Seating.Find(ctx, reservation.RoomID, screening.ID)
	if err != nil {
		return nil, false, &StorageError{Op: "load seating grid", Err: err}
	}
	if seating == nil {
		return nil, false, nil
	}

	coords := make([]entity.Coord, len(reservation.Seats))
	for i, label := range reservation.Seats {
		coord, err := entity.ParseSeatLabel(label)
		if err != nil {
			return nil, false, err
		}
		// The grid dimensions never change after creation, so a label
		// outside the grid means corrupted data.
		if !seating.Grid.Contains(coord) {
			return nil, false, &entity.OutOfBoundsError{
				Row: coord.Row, Col: coord.Col,
				Rows: seating.Grid.Rows(), Cols: seating.Grid.Columns(),
			}
		}
		coords[i] = coord
	}

	if err := seating.Grid.Mark(coords, entity.SeatAvailable); err != nil {
		return nil, false, err
	}

	if err := s.repo.Seating.SaveGrid(ctx, reservation.RoomID, screening.ID, seating.Grid); err != nil {
		return nil, false, &StorageError{Op: "save seating grid", Err: err}
	}

	seating.ScreeningID = screening.ID
	return seating, true, nil
}

func (s *reservationService) reoccupySeats(ctx context.Context, seating *entity.RoomSeating, reservation *entity.Reservation) {
	coords := make([]entity.Coord, 0, len(reservation.Seats))
	for _, label := range reservation.Seats {
		if coord, err := entity.ParseSeatLabel(label); err == nil {
			coords = append(coords, coord)
		}
	}
	if err := seating.Grid.Mark(coords, entity.SeatOccupied); err != nil {
		s.log.Error("Failed to re-occupy seats", zap.Error(err))
		return
	}
	if err := s.repo.Seating.SaveGrid(ctx, seating.RoomID, seating.ScreeningID, seating.Grid); err != nil {
		s.log.Error("Failed to restore seating grid", zap.Error(err))
	}
}

// recountReservations derives the user's counter from the stored
// reservations, so a counter write missed earlier heals on the next
// successful update. Falls back to the adjusted stored value when the
// store cannot be read.
func (s *reservationService) recountReservations(ctx context.Context, userID uuid.UUID, fallback int) int {
	reservations, err := s.repo.Reservation.FindByUserID(ctx, userID)
	if err != nil {
		s.log.Warn("Could not recount reservations",
			zap.Error(err),
			zap.String("user_id", userID.String()),
		)
		return fallback
	}
	return len(reservations)
}

func (s *reservationService) GetUserReservations(ctx context.Context, userID string) ([]response.ReservationResponse, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return nil, fmt.Errorf("invalid user ID format %s: %w", userID, err)
	}

	reservations, err := s.repo.Reservation.FindByUserID(ctx, userUUID)
	if err != nil {
		return nil, &StorageError{Op: "list user reservations", Err: err}
	}

	return s.buildResponses(ctx, reservations)
}

func (s *reservationService) GetAllReservations(ctx context.Context) ([]response.ReservationResponse, error) {
	reservations, err := s.repo.Reservation.FindAll(ctx)
	if err != nil {
		return nil, &StorageError{Op: "list reservations", Err: err}
	}

	return s.buildResponses(ctx, reservations)
}

func (s *reservationService) buildResponses(ctx context.Context, reservations []*entity.Reservation) ([]response.ReservationResponse, error) {
	responses := make([]response.ReservationResponse, len(reservations))
	for i, reservation := range reservations {
		room, err := s.repo.Room.FindByID(ctx, reservation.RoomID)
		if err != nil {
			return nil, &StorageError{Op: "load reservation room", Err: err}
		}
		film, err := s.repo.Film.FindByID(ctx, reservation.FilmID)
		if err != nil {
			return nil, &StorageError{Op: "load reservation film", Err: err}
		}

		var roomNumber int
		var filmTitle string
		if room != nil {
			roomNumber = room.Number
		}
		if film != nil {
			filmTitle = film.Title
		}

		responses[i] = response.ReservationToResponse(reservation, roomNumber, filmTitle)
		if room != nil {
			quote, err := s.Quote(room, reservation.Seats)
			if err != nil {
				return nil, err
			}
			responses[i].TotalPrice = quote.Total
			responses[i].NormalSeats = quote.NormalSeats
			responses[i].VIPSeats = quote.VIPSeats
		}
	}
	return responses, nil
}

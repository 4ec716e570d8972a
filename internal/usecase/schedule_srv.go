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

// changeoverBuffer is the mandatory gap between two screenings sharing
// a room, in minutes (cleaning and changeover time).
const changeoverBuffer = 15

type ScheduleService interface {
	CreateScreening(ctx context.Context, req *request.ScreeningRequest) (*response.ScreeningResponse, error)
	AssignRoom(ctx context.Context, screeningID string, req *request.AssignRoomRequest) (*response.ScreeningResponse, error)
	GetSeatMap(ctx context.Context, screeningID string) (*response.SeatMapResponse, error)
	GetScreeningsByFilm(ctx context.Context, filmID string) ([]response.ScreeningResponse, error)
}

type scheduleService struct {
	repo *repository.Repository
	log  *zap.Logger
	now  func() time.Time
}

func NewScheduleService(repo *repository.Repository, log *zap.Logger, now func() time.Time) ScheduleService {
	return &scheduleService{
		repo: repo,
		log:  log.With(zap.String("service", "schedule")),
		now:  now,
	}
}

// canShareRoom decides whether a candidate interval fits alongside an
// existing screening once the changeover buffer widens the existing
// slot. All values are minutes since midnight, intervals half-open.
func canShareRoom(candStart, candEnd, existingStart, existingEnd int) bool {
	return candEnd+changeoverBuffer <= existingStart ||
		existingEnd+changeoverBuffer <= candStart
}

// checkRoomConflict returns a ScheduleConflictError naming the first
// assigned screening the candidate would collide with, or nil if the
// room is free. Pure over the supplied data.
func (s *scheduleService) checkRoomConflict(ctx context.Context, room *entity.Room, candidate *entity.Screening) error {
	candStart, err := entity.ParseClock(candidate.Start)
	if err != nil {
		return err
	}
	candEnd, err := entity.ParseClock(candidate.End)
	if err != nil {
		return err
	}

	for _, screeningID := range room.ScreeningIDs {
		existing, err := s.repo.Screening.FindByID(ctx, screeningID)
		if err != nil {
			return &StorageError{Op: "load assigned screening", Err: err}
		}
		if existing == nil {
			// dangling assignment, nothing to collide with
			continue
		}

		existingStart, err := entity.ParseClock(existing.Start)
		if err != nil {
			return err
		}
		existingEnd, err := entity.ParseClock(existing.End)
		if err != nil {
			return err
		}

		if canShareRoom(candStart, candEnd, existingStart, existingEnd) {
			continue
		}

		title := "unknown film"
		if film, err := s.repo.Film.FindByID(ctx, existing.FilmID); err == nil && film != nil {
			title = film.Title
		}
		return &ScheduleConflictError{
			FilmTitle: title,
			Start:     existing.Start,
			End:       existing.End,
		}
	}

	return nil
}

func (s *scheduleService) CreateScreening(ctx context.Context, req *request.ScreeningRequest) (*response.ScreeningResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create screening validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	filmID, err := uuid.Parse(req.FilmID)
	if err != nil {
		return nil, fmt.Errorf("invalid film ID format %s: %w", req.FilmID, err)
	}

	film, err := s.repo.Film.FindByID(ctx, filmID)
	if err != nil {
		return nil, &StorageError{Op: "load film", Err: err}
	}
	if film == nil {
		return nil, fmt.Errorf("film %s: %w", req.FilmID, ErrNotFound)
	}

	if !film.HasShowtime(req.Start) {
		return nil, fmt.Errorf("film %q has no showtime at %s", film.Title, req.Start)
	}

	end, err := entity.EndTime(req.Start, film.DurationInMinutes)
	if err != nil {
		return nil, err
	}

	existing, err := s.repo.Screening.FindByFilmAndStart(ctx, filmID, req.Start)
	if err != nil {
		return nil, &StorageError{Op: "check existing screening", Err: err}
	}
	if existing != nil {
		return nil, fmt.Errorf("screening of %q at %s already exists", film.Title, req.Start)
	}

	screening := &entity.Screening{
		BaseSimple: entity.BaseSimple{
			ID:        uuid.New(),
			CreatedAt: s.now(),
		},
		FilmID: filmID,
		Start:  req.Start,
		End:    end,
	}

	if err := s.repo.Screening.Create(ctx, screening); err != nil {
		s.log.Error("Failed to create screening",
			zap.Error(err),
			zap.String("film_id", req.FilmID),
			zap.String("start", req.Start),
		)
		return nil, &StorageError{Op: "create screening", Err: err}
	}

	s.log.Info("Screening created",
		zap.String("screening_id", screening.ID.String()),
		zap.String("film", film.Title),
		zap.String("start", screening.Start),
		zap.String("end", screening.End),
	)

	resp := response.ScreeningToResponse(screening)
	resp.FilmTitle = film.Title
	return &resp, nil
}

// AssignRoom is the sole creation point for a seating grid: the
// conflict check must pass, then the screening joins the room's
// assignment list and an all-available grid is generated from the
// room's geometry. On conflict nothing is mutated.
func (s *scheduleService) AssignRoom(ctx context.Context, screeningID string, req *request.AssignRoomRequest) (*response.ScreeningResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Assign room validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	sID, err := uuid.Parse(screeningID)
	if err != nil {
		return nil, fmt.Errorf("invalid screening ID format %s: %w", screeningID, err)
	}
	roomID, err := uuid.Parse(req.RoomID)
	if err != nil {
		return nil, fmt.Errorf("invalid room ID format %s: %w", req.RoomID, err)
	}

	screening, err := s.repo.Screening.FindByID(ctx, sID)
	if err != nil {
		return nil, &StorageError{Op: "load screening", Err: err}
	}
	if screening == nil {
		return nil, fmt.Errorf("screening %s: %w", screeningID, ErrNotFound)
	}

	room, err := s.repo.Room.FindByID(ctx, roomID)
	if err != nil {
		return nil, &StorageError{Op: "load room", Err: err}
	}
	if room == nil {
		return nil, fmt.Errorf("room %s: %w", req.RoomID, ErrNotFound)
	}

	if room.HasScreening(sID) {
		return nil, fmt.Errorf("screening %s is already assigned to room %d", screeningID, room.Number)
	}
	if assigned, err := s.repo.Room.FindByScreeningID(ctx, sID); err != nil {
		return nil, &StorageError{Op: "check existing assignment", Err: err}
	} else if assigned != nil {
		return nil, fmt.Errorf("screening %s is already assigned to room %d", screeningID, assigned.Number)
	}

	if err := s.checkRoomConflict(ctx, room, screening); err != nil {
		s.log.Warn("Room assignment rejected",
			zap.String("screening_id", screeningID),
			zap.String("room_id", req.RoomID),
			zap.Error(err),
		)
		return nil, err
	}

	grid, err := entity.GenerateGrid(room)
	if err != nil {
		return nil, err
	}

	seating := &entity.RoomSeating{
		RoomID:      room.ID,
		ScreeningID: screening.ID,
		Grid:        grid,
		UpdatedAt:   s.now(),
	}
	if err := s.repo.Seating.Create(ctx, seating); err != nil {
		return nil, &StorageError{Op: "create seating grid", Err: err}
	}

	assigned := room.ScreeningIDs
	room.ScreeningIDs = append(append([]uuid.UUID(nil), assigned...), screening.ID)
	room.UpdatedAt = s.now()
	if err := s.repo.Room.UpdateScreenings(ctx, room); err != nil {
		// remove the just-created grid so a retry of the same
		// assignment does not collide with an orphaned row
		room.ScreeningIDs = assigned
		if delErr := s.repo.Seating.Delete(ctx, room.ID, screening.ID); delErr != nil {
			s.log.Error("Failed to remove seating grid after assignment failure", zap.Error(delErr))
		}
		return nil, &StorageError{Op: "update room assignments", Err: err}
	}

	s.log.Info("Screening assigned to room",
		zap.String("screening_id", screeningID),
		zap.Int("room_number", room.Number),
		zap.Int("seats", grid.Rows()*grid.Columns()),
	)

	resp := response.ScreeningToResponse(screening)
	resp.RoomID = room.ID.String()
	return &resp, nil
}

func (s *scheduleService) GetSeatMap(ctx context.Context, screeningID string) (*response.SeatMapResponse, error) {
	sID, err := uuid.Parse(screeningID)
	if err != nil {
		return nil, fmt.Errorf("invalid screening ID format %s: %w", screeningID, err)
	}

	screening, err := s.repo.Screening.FindByID(ctx, sID)
	if err != nil {
		return nil, &StorageError{Op: "load screening", Err: err}
	}
	if screening == nil {
		return nil, fmt.Errorf("screening %s: %w", screeningID, ErrNotFound)
	}

	room, err := s.repo.Room.FindByScreeningID(ctx, sID)
	if err != nil {
		return nil, &StorageError{Op: "find assigned room", Err: err}
	}
	if room == nil {
		return nil, ErrGridMissing
	}

	seating, err := s.repo.Seating.Find(ctx, room.ID, sID)
	if err != nil {
		return nil, &StorageError{Op: "load seating grid", Err: err}
	}
	if seating == nil {
		return nil, ErrGridMissing
	}

	return &response.SeatMapResponse{
		ScreeningID:    screeningID,
		RoomNumber:     room.Number,
		Rows:           seating.Grid.Rows(),
		VIPRows:        room.VIPRows,
		Columns:        seating.Grid.Columns(),
		Grid:           []string(seating.Grid),
		AvailableSeats: seating.Grid.CountAvailable(),
	}, nil
}

func (s *scheduleService) GetScreeningsByFilm(ctx context.Context, filmID string) ([]response.ScreeningResponse, error) {
	fID, err := uuid.Parse(filmID)
	if err != nil {
		return nil, fmt.Errorf("invalid film ID format %s: %w", filmID, err)
	}

	screenings, err := s.repo.Screening.FindByFilmID(ctx, fID)
	if err != nil {
		return nil, &StorageError{Op: "list screenings", Err: err}
	}

	responses := make([]response.ScreeningResponse, len(screenings))
	for i, screening := range screenings {
		responses[i] = response.ScreeningToResponse(screening)
		if room, err := s.repo.Room.FindByScreeningID(ctx, screening.ID); err == nil && room != nil {
			responses[i].RoomID = room.ID.String()
		}
	}

	return responses, nil
}

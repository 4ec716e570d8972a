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

type FilmService interface {
	CreateFilm(ctx context.Context, req *request.FilmRequest) (*response.FilmResponse, error)
	GetFilm(ctx context.Context, id string) (*response.FilmResponse, error)
	GetAllFilms(ctx context.Context) ([]response.FilmResponse, error)
}

type filmService struct {
	repo *repository.Repository
	log  *zap.Logger
	now  func() time.Time
}

func NewFilmService(repo *repository.Repository, log *zap.Logger, now func() time.Time) FilmService {
	return &filmService{
		repo: repo,
		log:  log.With(zap.String("service", "film")),
		now:  now,
	}
}

func (s *filmService) CreateFilm(ctx context.Context, req *request.FilmRequest) (*response.FilmResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("CreateFilm validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	// Showtimes are clock labels, they must parse before the film is
	// accepted so screenings can trust them later.
	seen := make(map[string]bool, len(req.Showtimes))
	for _, showtime := range req.Showtimes {
		if _, err := entity.ParseClock(showtime); err != nil {
			return nil, err
		}
		if seen[showtime] {
			return nil, &entity.ValidationError{Field: "showtimes", Reason: fmt.Sprintf("duplicate showtime %s", showtime)}
		}
		seen[showtime] = true
	}

	now := s.now()
	film := &entity.Film{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Title:             req.Title,
		DurationInMinutes: req.DurationInMinutes,
		Category:          req.Category,
		MinimumAge:        req.MinimumAge,
		Showtimes:         append([]string(nil), req.Showtimes...),
	}

	if err := s.repo.Film.Create(ctx, film); err != nil {
		return nil, &StorageError{Op: "create film", Err: err}
	}

	s.log.Info("Film created",
		zap.String("film_id", film.ID.String()),
		zap.String("title", film.Title),
	)

	resp := response.FilmToResponse(film)
	return &resp, nil
}

func (s *filmService) GetFilm(ctx context.Context, id string) (*response.FilmResponse, error) {
	filmID, err := uuid.Parse(id)
	if err != nil {
		return nil, fmt.Errorf("invalid film ID format %s: %w", id, err)
	}

	film, err := s.repo.Film.FindByID(ctx, filmID)
	if err != nil {
		return nil, &StorageError{Op: "load film", Err: err}
	}
	if film == nil {
		return nil, fmt.Errorf("film %s: %w", id, ErrNotFound)
	}

	resp := response.FilmToResponse(film)
	return &resp, nil
}

func (s *filmService) GetAllFilms(ctx context.Context) ([]response.FilmResponse, error) {
	films, err := s.repo.Film.FindAll(ctx)
	if err != nil {
		return nil, &StorageError{Op: "list films", Err: err}
	}

	responses := make([]response.FilmResponse, len(films))
	for i, film := range films {
		responses[i] = response.FilmToResponse(film)
	}
	return responses, nil
}

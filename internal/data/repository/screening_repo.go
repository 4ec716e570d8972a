package repository

import (
	"context"
	"fmt"

	"cinema-boxoffice/internal/data/entity"
	"cinema-boxoffice/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type ScreeningRepository interface {
	Create(ctx context.Context, screening *entity.Screening) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Screening, error)
	FindByFilmID(ctx context.Context, filmID uuid.UUID) ([]*entity.Screening, error)
	FindByFilmAndStart(ctx context.Context, filmID uuid.UUID, start string) (*entity.Screening, error)
}

type screeningRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewScreeningRepository(db database.PgxIface, log *zap.Logger) ScreeningRepository {
	return &screeningRepository{
		db:  db,
		log: log.With(zap.String("repository", "screening")),
	}
}

func (r *screeningRepository) Create(ctx context.Context, screening *entity.Screening) error {
	query := `
		INSERT INTO screenings (id, film_id, start_time, end_time, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`

	_, err := r.db.Exec(ctx, query,
		screening.ID,
		screening.FilmID,
		screening.Start,
		screening.End,
		screening.CreatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create screening",
			zap.Error(err),
			zap.String("film_id", screening.FilmID.String()),
			zap.String("start", screening.Start),
		)
		return fmt.Errorf("create screening for film %s at %s: %w",
			screening.FilmID.String(), screening.Start, err)
	}

	return nil
}

func (r *screeningRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Screening, error) {
	query := `
		SELECT id, film_id, start_time, end_time, created_at
		FROM screenings
		WHERE id = $1
	`

	var screening entity.Screening
	err := r.db.QueryRow(ctx, query, id).Scan(
		&screening.ID,
		&screening.FilmID,
		&screening.Start,
		&screening.End,
		&screening.CreatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find screening by ID",
			zap.Error(err),
			zap.String("screening_id", id.String()),
		)
		return nil, fmt.Errorf("find screening %s: %w", id.String(), err)
	}

	return &screening, nil
}

func (r *screeningRepository) FindByFilmID(ctx context.Context, filmID uuid.UUID) ([]*entity.Screening, error) {
	query := `
		SELECT id, film_id, start_time, end_time, created_at
		FROM screenings
		WHERE film_id = $1
		ORDER BY start_time
	`

	rows, err := r.db.Query(ctx, query, filmID)
	if err != nil {
		r.log.Error("Failed to find screenings by film ID",
			zap.Error(err),
			zap.String("film_id", filmID.String()),
		)
		return nil, fmt.Errorf("find screenings for film %s: %w", filmID.String(), err)
	}
	defer rows.Close()

	var screenings []*entity.Screening
	for rows.Next() {
		var screening entity.Screening
		err := rows.Scan(
			&screening.ID,
			&screening.FilmID,
			&screening.Start,
			&screening.End,
			&screening.CreatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan screening row", zap.Error(err))
			return nil, fmt.Errorf("scan screening row: %w", err)
		}
		screenings = append(screenings, &screening)
	}

	return screenings, nil
}

func (r *screeningRepository) FindByFilmAndStart(ctx context.Context, filmID uuid.UUID, start string) (*entity.Screening, error) {
	query := `
		SELECT id, film_id, start_time, end_time, created_at
		FROM screenings
		WHERE film_id = $1 AND start_time = $2
	`

	var screening entity.Screening
	err := r.db.QueryRow(ctx, query, filmID, start).Scan(
		&screening.ID,
		&screening.FilmID,
		&screening.Start,
		&screening.End,
		&screening.CreatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find screening by film and start",
			zap.Error(err),
			zap.String("film_id", filmID.String()),
			zap.String("start", start),
		)
		return nil, fmt.Errorf("find screening for film %s at %s: %w", filmID.String(), start, err)
	}

	return &screening, nil
}

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

type FilmRepository interface {
	Create(ctx context.Context, film *entity.Film) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Film, error)
	FindAll(ctx context.Context) ([]*entity.Film, error)
}

type filmRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewFilmRepository(db database.PgxIface, log *zap.Logger) FilmRepository {
	return &filmRepository{
		db:  db,
		log: log.With(zap.String("repository", "film")),
	}
}

func (r *filmRepository) Create(ctx context.Context, film *entity.Film) error {
	query := `
		INSERT INTO films (id, title, duration_in_minutes, category, minimum_age, showtimes, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err := r.db.Exec(ctx, query,
		film.ID,
		film.Title,
		film.DurationInMinutes,
		film.Category,
		film.MinimumAge,
		film.Showtimes,
		film.CreatedAt,
		film.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create film",
			zap.Error(err),
			zap.String("title", film.Title),
		)
		return fmt.Errorf("create film %q: %w", film.Title, err)
	}

	return nil
}

func (r *filmRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Film, error) {
	query := `
		SELECT id, title, duration_in_minutes, category, minimum_age, showtimes, created_at, updated_at
		FROM films
		WHERE id = $1
	`

	var film entity.Film
	err := r.db.QueryRow(ctx, query, id).Scan(
		&film.ID,
		&film.Title,
		&film.DurationInMinutes,
		&film.Category,
		&film.MinimumAge,
		&film.Showtimes,
		&film.CreatedAt,
		&film.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find film by ID",
			zap.Error(err),
			zap.String("film_id", id.String()),
		)
		return nil, fmt.Errorf("find film %s: %w", id.String(), err)
	}

	return &film, nil
}

func (r *filmRepository) FindAll(ctx context.Context) ([]*entity.Film, error) {
	query := `
		SELECT id, title, duration_in_minutes, category, minimum_age, showtimes, created_at, updated_at
		FROM films
		ORDER BY title
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to list films", zap.Error(err))
		return nil, fmt.Errorf("list films: %w", err)
	}
	defer rows.Close()

	var films []*entity.Film
	for rows.Next() {
		var film entity.Film
		err := rows.Scan(
			&film.ID,
			&film.Title,
			&film.DurationInMinutes,
			&film.Category,
			&film.MinimumAge,
			&film.Showtimes,
			&film.CreatedAt,
			&film.UpdatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan film row", zap.Error(err))
			return nil, fmt.Errorf("scan film row: %w", err)
		}
		films = append(films, &film)
	}

	return films, nil
}

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

// SeatingRepository persists the seat grid of a (room, screening)
// pairing as a whole document: reads and writes always cover the full
// grid, never single cells.
type SeatingRepository interface {
	Create(ctx context.Context, seating *entity.RoomSeating) error
	Find(ctx context.Context, roomID, screeningID uuid.UUID) (*entity.RoomSeating, error)
	SaveGrid(ctx context.Context, roomID, screeningID uuid.UUID, grid entity.SeatGrid) error
	Delete(ctx context.Context, roomID, screeningID uuid.UUID) error
}

type seatingRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewSeatingRepository(db database.PgxIface, log *zap.Logger) SeatingRepository {
	return &seatingRepository{
		db:  db,
		log: log.With(zap.String("repository", "seating")),
	}
}

func (r *seatingRepository) Create(ctx context.Context, seating *entity.RoomSeating) error {
	query := `
		INSERT INTO room_seating (room_id, screening_id, grid, updated_at)
		VALUES ($1, $2, $3, $4)
	`

	_, err := r.db.Exec(ctx, query,
		seating.RoomID,
		seating.ScreeningID,
		[]string(seating.Grid),
		seating.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create seating grid",
			zap.Error(err),
			zap.String("room_id", seating.RoomID.String()),
			zap.String("screening_id", seating.ScreeningID.String()),
		)
		return fmt.Errorf("create seating grid for room %s screening %s: %w",
			seating.RoomID.String(), seating.ScreeningID.String(), err)
	}

	return nil
}

func (r *seatingRepository) Find(ctx context.Context, roomID, screeningID uuid.UUID) (*entity.RoomSeating, error) {
	query := `
		SELECT room_id, screening_id, grid, updated_at
		FROM room_seating
		WHERE room_id = $1 AND screening_id = $2
	`

	var seating entity.RoomSeating
	var grid []string
	err := r.db.QueryRow(ctx, query, roomID, screeningID).Scan(
		&seating.RoomID,
		&seating.ScreeningID,
		&grid,
		&seating.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find seating grid",
			zap.Error(err),
			zap.String("room_id", roomID.String()),
			zap.String("screening_id", screeningID.String()),
		)
		return nil, fmt.Errorf("find seating grid for room %s screening %s: %w",
			roomID.String(), screeningID.String(), err)
	}

	seating.Grid = entity.SeatGrid(grid)
	return &seating, nil
}

func (r *seatingRepository) SaveGrid(ctx context.Context, roomID, screeningID uuid.UUID, grid entity.SeatGrid) error {
	query := `
		UPDATE room_seating SET grid = $3, updated_at = NOW()
		WHERE room_id = $1 AND screening_id = $2
	`

	result, err := r.db.Exec(ctx, query, roomID, screeningID, []string(grid))
	if err != nil {
		r.log.Error("Failed to save seating grid",
			zap.Error(err),
			zap.String("room_id", roomID.String()),
			zap.String("screening_id", screeningID.String()),
		)
		return fmt.Errorf("save seating grid for room %s screening %s: %w",
			roomID.String(), screeningID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("seating grid for room %s screening %s not found",
			roomID.String(), screeningID.String())
	}

	return nil
}

func (r *seatingRepository) Delete(ctx context.Context, roomID, screeningID uuid.UUID) error {
	query := `
		DELETE FROM room_seating
		WHERE room_id = $1 AND screening_id = $2
	`

	_, err := r.db.Exec(ctx, query, roomID, screeningID)
	if err != nil {
		r.log.Error("Failed to delete seating grid",
			zap.Error(err),
			zap.String("room_id", roomID.String()),
			zap.String("screening_id", screeningID.String()),
		)
		return fmt.Errorf("delete seating grid for room %s screening %s: %w",
			roomID.String(), screeningID.String(), err)
	}

	return nil
}

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

type RoomRepository interface {
	Create(ctx context.Context, room *entity.Room) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Room, error)
	FindByScreeningID(ctx context.Context, screeningID uuid.UUID) (*entity.Room, error)
	FindAll(ctx context.Context) ([]*entity.Room, error)
	UpdateScreenings(ctx context.Context, room *entity.Room) error
}

type roomRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewRoomRepository(db database.PgxIface, log *zap.Logger) RoomRepository {
	return &roomRepository{
		db:  db,
		log: log.With(zap.String("repository", "room")),
	}
}

func (r *roomRepository) Create(ctx context.Context, room *entity.Room) error {
	query := `
		INSERT INTO rooms (id, room_number, total_rows, vip_rows, columns, screening_ids, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err := r.db.Exec(ctx, query,
		room.ID,
		room.Number,
		room.TotalRows,
		room.VIPRows,
		room.Columns,
		room.ScreeningIDs,
		room.CreatedAt,
		room.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create room",
			zap.Error(err),
			zap.Int("room_number", room.Number),
		)
		return fmt.Errorf("create room %d: %w", room.Number, err)
	}

	return nil
}

func (r *roomRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Room, error) {
	query := `
		SELECT id, room_number, total_rows, vip_rows, columns, screening_ids, created_at, updated_at
		FROM rooms
		WHERE id = $1
	`

	var room entity.Room
	err := r.db.QueryRow(ctx, query, id).Scan(
		&room.ID,
		&room.Number,
		&room.TotalRows,
		&room.VIPRows,
		&room.Columns,
		&room.ScreeningIDs,
		&room.CreatedAt,
		&room.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find room by ID",
			zap.Error(err),
			zap.String("room_id", id.String()),
		)
		return nil, fmt.Errorf("find room %s: %w", id.String(), err)
	}

	return &room, nil
}

// FindByScreeningID returns the room the screening is assigned to, or
// nil if the screening has no room yet.
func (r *roomRepository) FindByScreeningID(ctx context.Context, screeningID uuid.UUID) (*entity.Room, error) {
	query := `
		SELECT id, room_number, total_rows, vip_rows, columns, screening_ids, created_at, updated_at
		FROM rooms
		WHERE $1 = ANY(screening_ids)
	`

	var room entity.Room
	err := r.db.QueryRow(ctx, query, screeningID).Scan(
		&room.ID,
		&room.Number,
		&room.TotalRows,
		&room.VIPRows,
		&room.Columns,
		&room.ScreeningIDs,
		&room.CreatedAt,
		&room.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find room by screening",
			zap.Error(err),
			zap.String("screening_id", screeningID.String()),
		)
		return nil, fmt.Errorf("find room for screening %s: %w", screeningID.String(), err)
	}

	return &room, nil
}

func (r *roomRepository) FindAll(ctx context.Context) ([]*entity.Room, error) {
	query := `
		SELECT id, room_number, total_rows, vip_rows, columns, screening_ids, created_at, updated_at
		FROM rooms
		ORDER BY room_number
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to list rooms", zap.Error(err))
		return nil, fmt.Errorf("list rooms: %w", err)
	}
	defer rows.Close()

	var rooms []*entity.Room
	for rows.Next() {
		var room entity.Room
		err := rows.Scan(
			&room.ID,
			&room.Number,
			&room.TotalRows,
			&room.VIPRows,
			&room.Columns,
			&room.ScreeningIDs,
			&room.CreatedAt,
			&room.UpdatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan room row", zap.Error(err))
			return nil, fmt.Errorf("scan room row: %w", err)
		}
		rooms = append(rooms, &room)
	}

	return rooms, nil
}

// UpdateScreenings rewrites the room's assignment list.
func (r *roomRepository) UpdateScreenings(ctx context.Context, room *entity.Room) error {
	query := `UPDATE rooms SET screening_ids = $2, updated_at = $3 WHERE id = $1`

	result, err := r.db.Exec(ctx, query, room.ID, room.ScreeningIDs, room.UpdatedAt)
	if err != nil {
		r.log.Error("Failed to update room screenings",
			zap.Error(err),
			zap.String("room_id", room.ID.String()),
		)
		return fmt.Errorf("update room %s screenings: %w", room.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("room %s not found", room.ID.String())
	}

	return nil
}

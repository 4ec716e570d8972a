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

type ReservationRepository interface {
	Create(ctx context.Context, reservation *entity.Reservation) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Reservation, error)
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.Reservation, error)
	FindAll(ctx context.Context) ([]*entity.Reservation, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type reservationRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewReservationRepository(db database.PgxIface, log *zap.Logger) ReservationRepository {
	return &reservationRepository{
		db:  db,
		log: log.With(zap.String("repository", "reservation")),
	}
}

func (r *reservationRepository) Create(ctx context.Context, reservation *entity.Reservation) error {
	query := `
		INSERT INTO reservations (id, code, user_id, room_id, film_id, start_time, seats, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err := r.db.Exec(ctx, query,
		reservation.ID,
		reservation.Code,
		reservation.UserID,
		reservation.RoomID,
		reservation.FilmID,
		reservation.Start,
		reservation.Seats,
		reservation.CreatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create reservation",
			zap.Error(err),
			zap.String("user_id", reservation.UserID.String()),
			zap.Int("seat_count", reservation.SeatCount()),
		)
		return fmt.Errorf("create reservation %s: %w", reservation.Code, err)
	}

	return nil
}

func (r *reservationRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Reservation, error) {
	query := `
		SELECT id, code, user_id, room_id, film_id, start_time, seats, created_at
		FROM reservations
		WHERE id = $1
	`

	var reservation entity.Reservation
	err := r.db.QueryRow(ctx, query, id).Scan(
		&reservation.ID,
		&reservation.Code,
		&reservation.UserID,
		&reservation.RoomID,
		&reservation.FilmID,
		&reservation.Start,
		&reservation.Seats,
		&reservation.CreatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find reservation by ID",
			zap.Error(err),
			zap.String("reservation_id", id.String()),
		)
		return nil, fmt.Errorf("find reservation %s: %w", id.String(), err)
	}

	return &reservation, nil
}

func (r *reservationRepository) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.Reservation, error) {
	query := `
		SELECT id, code, user_id, room_id, film_id, start_time, seats, created_at
		FROM reservations
		WHERE user_id = $1
		ORDER BY created_at DESC
	`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		r.log.Error("Failed to find reservations by user ID",
			zap.Error(err),
			zap.String("user_id", userID.String()),
		)
		return nil, fmt.Errorf("find reservations for user %s: %w", userID.String(), err)
	}
	defer rows.Close()

	return r.scanRows(rows)
}

func (r *reservationRepository) FindAll(ctx context.Context) ([]*entity.Reservation, error) {
	query := `
		SELECT id, code, user_id, room_id, film_id, start_time, seats, created_at
		FROM reservations
		ORDER BY created_at DESC
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to list reservations", zap.Error(err))
		return nil, fmt.Errorf("list reservations: %w", err)
	}
	defer rows.Close()

	return r.scanRows(rows)
}

// Delete removes the reservation record. Hard delete: cancellation
// discards the record entirely.
func (r *reservationRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM reservations WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete reservation",
			zap.Error(err),
			zap.String("reservation_id", id.String()),
		)
		return fmt.Errorf("delete reservation %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("reservation %s not found", id.String())
	}

	r.log.Info("Reservation deleted", zap.String("reservation_id", id.String()))
	return nil
}

func (r *reservationRepository) scanRows(rows pgx.Rows) ([]*entity.Reservation, error) {
	var reservations []*entity.Reservation
	for rows.Next() {
		var reservation entity.Reservation
		err := rows.Scan(
			&reservation.ID,
			&reservation.Code,
			&reservation.UserID,
			&reservation.RoomID,
			&reservation.FilmID,
			&reservation.Start,
			&reservation.Seats,
			&reservation.CreatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan reservation row", zap.Error(err))
			return nil, fmt.Errorf("scan reservation row: %w", err)
		}
		reservations = append(reservations, &reservation)
	}

	return reservations, nil
}

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

type RoomService interface {
	CreateRoom(ctx context.Context, req *request.RoomRequest) (*response.RoomResponse, error)
	GetRoom(ctx context.Context, id string) (*response.RoomResponse, error)
	GetAllRooms(ctx context.Context) ([]response.RoomResponse, error)
}

type roomService struct {
	repo *repository.Repository
	log  *zap.Logger
	now  func() time.Time
}

func NewRoomService(repo *repository.Repository, log *zap.Logger, now func() time.Time) RoomService {
	return &roomService{
		repo: repo,
		log:  log.With(zap.String("service", "room")),
		now:  now,
	}
}

func (s *roomService) CreateRoom(ctx context.Context, req *request.RoomRequest) (*response.RoomResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("CreateRoom validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	if err := entity.ValidateLayout(req.TotalRows, req.VIPRows, req.Columns); err != nil {
		return nil, err
	}

	rooms, err := s.repo.Room.FindAll(ctx)
	if err != nil {
		return nil, &StorageError{Op: "list rooms", Err: err}
	}
	for _, existing := range rooms {
		if existing.Number == req.Number {
			return nil, fmt.Errorf("room number %d already exists", req.Number)
		}
	}

	now := s.now()
	room := &entity.Room{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Number:    req.Number,
		TotalRows: req.TotalRows,
		VIPRows:   req.VIPRows,
		Columns:   req.Columns,
	}

	if err := s.repo.Room.Create(ctx, room); err != nil {
		return nil, &StorageError{Op: "create room", Err: err}
	}

	s.log.Info("Room created",
		zap.String("room_id", room.ID.String()),
		zap.Int("number", room.Number),
		zap.Int("rows", room.TotalRows),
		zap.Int("vip_rows", room.VIPRows),
		zap.Int("columns", room.Columns),
	)

	resp := response.RoomToResponse(room)
	return &resp, nil
}

func (s *roomService) GetRoom(ctx context.Context, id string) (*response.RoomResponse, error) {
	roomID, err := uuid.Parse(id)
	if err != nil {
		return nil, fmt.Errorf("invalid room ID format %s: %w", id, err)
	}

	room, err := s.repo.Room.FindByID(ctx, roomID)
	if err != nil {
		return nil, &StorageError{Op: "load room", Err: err}
	}
	if room == nil {
		return nil, fmt.Errorf("room %s: %w", id, ErrNotFound)
	}

	resp := response.RoomToResponse(room)
	return &resp, nil
}

func (s *roomService) GetAllRooms(ctx context.Context) ([]response.RoomResponse, error) {
	rooms, err := s.repo.Room.FindAll(ctx)
	if err != nil {
		return nil, &StorageError{Op: "list rooms", Err: err}
	}

	responses := make([]response.RoomResponse, len(rooms))
	for i, room := range rooms {
		responses[i] = response.RoomToResponse(room)
	}
	return responses, nil
}

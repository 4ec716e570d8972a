package usecase

import (
	"context"
	"fmt"
	"time"

	"cinema-boxoffice/internal/data/repository"
	"cinema-boxoffice/internal/dto/request"
	"cinema-boxoffice/internal/dto/response"
	"cinema-boxoffice/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type UserService interface {
	GetProfile(ctx context.Context, userID string) (*response.UserResponse, error)
	UpdateProfile(ctx context.Context, userID string, req *request.UpdateProfileRequest) (*response.UserResponse, error)
}

type userService struct {
	userRepo repository.UserRepository
	log      *zap.Logger
}

func NewUserService(userRepo repository.UserRepository, log *zap.Logger) UserService {
	return &userService{
		userRepo: userRepo,
		log:      log.With(zap.String("service", "user")),
	}
}

func (s *userService) GetProfile(ctx context.Context, userID string) (*response.UserResponse, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return nil, fmt.Errorf("invalid user ID format %s: %w", userID, err)
	}

	user, err := s.userRepo.FindByID(ctx, userUUID)
	if err != nil {
		return nil, &StorageError{Op: "load user", Err: err}
	}
	if user == nil {
		return nil, fmt.Errorf("user %s: %w", userID, ErrNotFound)
	}

	resp := response.UserToResponse(user, time.Now())
	return &resp, nil
}

func (s *userService) UpdateProfile(ctx context.Context, userID string, req *request.UpdateProfileRequest) (*response.UserResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("UpdateProfile validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return nil, fmt.Errorf("invalid user ID format %s: %w", userID, err)
	}

	user, err := s.userRepo.FindByID(ctx, userUUID)
	if err != nil {
		return nil, &StorageError{Op: "load user", Err: err}
	}
	if user == nil {
		return nil, fmt.Errorf("user %s: %w", userID, ErrNotFound)
	}

	if req.FirstName != "" {
		user.FirstName = req.FirstName
	}
	if req.LastName != "" {
		user.LastName = req.LastName
	}
	if req.BirthDate != "" {
		user.BirthDate = req.BirthDate
	}
	user.UpdatedAt = time.Now()

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, &StorageError{Op: "update user", Err: err}
	}

	s.log.Info("Profile updated", zap.String("user_id", userID))

	resp := response.UserToResponse(user, user.UpdatedAt)
	return &resp, nil
}

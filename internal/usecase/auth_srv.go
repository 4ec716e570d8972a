package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"cinema-boxoffice/internal/data/entity"
	"cinema-boxoffice/internal/data/repository"
	"cinema-boxoffice/internal/dto/request"
	"cinema-boxoffice/internal/dto/response"
	"cinema-boxoffice/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

type AuthService interface {
	Register(ctx context.Context, req *request.RegisterRequest) (*response.UserResponse, error)
	Login(ctx context.Context, req *request.LoginRequest) (*response.AuthResponse, error)
	Logout(ctx context.Context, token string) error
}

type authService struct {
	repo   *repository.Repository
	config *utils.Config
	log    *zap.Logger
	now    func() time.Time
}

func NewAuthService(repo *repository.Repository, config *utils.Config, log *zap.Logger, now func() time.Time) AuthService {
	return &authService{
		repo:   repo,
		config: config,
		log:    log.With(zap.String("service", "auth")),
		now:    now,
	}
}

func (s *authService) Register(ctx context.Context, req *request.RegisterRequest) (*response.UserResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Register validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	existing, err := s.repo.User.FindByEmail(ctx, email)
	if err != nil {
		return nil, &StorageError{Op: "check email", Err: err}
	}
	if existing != nil {
		return nil, fmt.Errorf("email %s is already registered", email)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	now := s.now()
	user := &entity.User{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Email:        email,
		PasswordHash: string(hash),
		BirthDate:    req.BirthDate,
		Role:         entity.RoleClient,
	}

	if err := s.repo.User.Create(ctx, user); err != nil {
		return nil, &StorageError{Op: "create user", Err: err}
	}

	s.log.Info("User registered",
		zap.String("user_id", user.ID.String()),
		zap.String("email", user.Email),
	)

	resp := response.UserToResponse(user, now)
	return &resp, nil
}

func (s *authService) Login(ctx context.Context, req *request.LoginRequest) (*response.AuthResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Login validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	user, err := s.repo.User.FindByEmail(ctx, email)
	if err != nil {
		return nil, &StorageError{Op: "find user", Err: err}
	}
	if user == nil {
		return nil, fmt.Errorf("invalid email or password")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		s.log.Warn("Login with wrong password", zap.String("email", email))
		return nil, fmt.Errorf("invalid email or password")
	}

	now := s.now()
	session := &entity.Session{
		BaseSimple: entity.BaseSimple{
			ID:        uuid.New(),
			CreatedAt: now,
		},
		UserID:    user.ID,
		Token:     uuid.New(),
		ExpiresAt: now.Add(time.Duration(s.config.Session.ExpiryHours) * time.Hour),
	}

	if err := s.repo.Session.Create(ctx, session); err != nil {
		return nil, &StorageError{Op: "create session", Err: err}
	}

	s.log.Info("User logged in",
		zap.String("user_id", user.ID.String()),
		zap.String("role", string(user.Role)),
	)

	return &response.AuthResponse{
		Token:     session.Token.String(),
		ExpiresAt: session.ExpiresAt,
		User:      response.UserToResponse(user, now),
	}, nil
}

func (s *authService) Logout(ctx context.Context, token string) error {
	if err := s.repo.Session.DeleteByToken(ctx, token); err != nil {
		return &StorageError{Op: "delete session", Err: err}
	}
	return nil
}

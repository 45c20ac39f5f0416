package services

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/hexadigitall/platform/internal/app/models"
	"github.com/hexadigitall/platform/internal/app/models/dto"
	"github.com/hexadigitall/platform/internal/app/repositories"
	"github.com/hexadigitall/platform/internal/pkg/auth"
	"github.com/hexadigitall/platform/internal/pkg/helpers"
)

// UserService handles admin user management
type UserService struct {
	userRepo repositories.IUserRepository
	logger   zerolog.Logger
}

// NewUserService creates a new UserService
func NewUserService(userRepo repositories.IUserRepository, logger zerolog.Logger) *UserService {
	return &UserService{userRepo: userRepo, logger: logger}
}

// CreateUser creates a new account with a freshly salted credential
func (s *UserService) CreateUser(ctx context.Context, req *dto.CreateUserRequest) (*models.User, error) {
	hash, salt, err := auth.HashPassword(req.Password, "")
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Username:     req.Username,
		Email:        req.Email,
		DisplayName:  req.DisplayName,
		Role:         models.Role(req.Role),
		Status:       models.StatusActive,
		PasswordHash: hash,
		PasswordSalt: salt,
	}

	id, err := s.userRepo.Create(ctx, user)
	if err != nil {
		return nil, err
	}
	user.ID = id

	s.logger.Info().Int64("userID", id).Str("username", user.Username).Str("role", string(user.Role)).Msg("User created")
	return user, nil
}

// GetUser retrieves a user by id
func (s *UserService) GetUser(ctx context.Context, id int64) (*models.User, error) {
	return s.userRepo.GetByID(ctx, id)
}

// ListUsers returns a page of users with pagination metadata
func (s *UserService) ListUsers(ctx context.Context, page, size int) ([]*models.User, dto.PaginationInfo, error) {
	offset, limit := helpers.CalculateOffsetLimit(page, size)

	users, err := s.userRepo.List(ctx, offset, limit)
	if err != nil {
		return nil, dto.PaginationInfo{}, err
	}

	total, err := s.userRepo.Count(ctx)
	if err != nil {
		return nil, dto.PaginationInfo{}, err
	}

	return users, helpers.NewPaginationInfo(total, page, limit), nil
}

// UpdateUser applies a partial admin update. Role, status, and credential
// changes all pass through here; nil fields stay untouched.
func (s *UserService) UpdateUser(ctx context.Context, id int64, req *dto.UpdateUserRequest) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Email != nil {
		user.Email = *req.Email
	}
	if req.DisplayName != nil {
		user.DisplayName = *req.DisplayName
	}
	if req.Role != nil {
		user.Role = models.Role(*req.Role)
	}
	if req.Status != nil {
		user.Status = models.UserStatus(*req.Status)
	}
	if req.Password != nil {
		hash, salt, err := auth.HashPassword(*req.Password, "")
		if err != nil {
			return nil, err
		}
		user.PasswordHash = hash
		user.PasswordSalt = salt
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Info().Int64("userID", id).Str("role", string(user.Role)).Str("status", string(user.Status)).Msg("User updated")
	return user, nil
}

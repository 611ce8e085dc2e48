package service

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/redis/go-redis/v9"
	"github.com/reelify/reelify-backend/internal/config"
	"github.com/reelify/reelify-backend/internal/model"
	"github.com/reelify/reelify-backend/internal/repository"
	"github.com/rs/zerolog"
)

// UserService handles account upserts and role queries.
type UserService struct {
	userRepo    *repository.UserRepository
	authService *AuthService
	rdb         *redis.Client
	log         zerolog.Logger
}

// NewUserService creates a new UserService.
func NewUserService(userRepo *repository.UserRepository, authService *AuthService, rdb *redis.Client, log zerolog.Logger) *UserService {
	return &UserService{
		userRepo:    userRepo,
		authService: authService,
		rdb:         rdb,
		log:         log.With().Str("component", "user_service").Logger(),
	}
}

// Upsert creates or refreshes a user on sign-in. A provided plaintext
// password is bcrypt-hashed before it reaches storage; an empty one
// leaves any stored hash untouched. Self-registration can only yield a
// student or instructor account; admin is granted elsewhere.
func (s *UserService) Upsert(ctx context.Context, u *model.User, password string) error {
	if password != "" {
		hash, err := s.authService.HashPassword(password)
		if err != nil {
			return err
		}
		u.PasswordHash = hash
	}
	if u.Role != model.RoleInstructor {
		u.Role = model.RoleStudent
	}
	return s.userRepo.Upsert(ctx, u)
}

// GetByEmail retrieves a user by email.
func (s *UserService) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	return s.userRepo.GetByEmail(ctx, email)
}

// HasRole reports whether the user with the given email holds role.
// An unknown email is simply not in the role.
func (s *UserService) HasRole(ctx context.Context, email string, role model.Role) (bool, error) {
	u, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return false, err
	}
	return u.Role == role, nil
}

// ListInstructors retrieves all instructors.
func (s *UserService) ListInstructors(ctx context.Context) ([]model.User, error) {
	return s.userRepo.ListByRole(ctx, model.RoleInstructor)
}

// ListPopularInstructors retrieves the top instructors by enrollments,
// served from the same short-lived Redis cache as the class listings.
func (s *UserService) ListPopularInstructors(ctx context.Context, limit int) ([]model.User, error) {
	key := config.CacheKey.PopularInstructorsKey()

	if cached, err := s.rdb.Get(ctx, key).Bytes(); err == nil {
		var instructors []model.User
		if err := json.Unmarshal(cached, &instructors); err == nil {
			return instructors, nil
		}
	} else if !errors.Is(err, redis.Nil) {
		s.log.Warn().Err(err).Msg("Popular instructors cache read failed")
	}

	instructors, err := s.userRepo.ListPopularInstructors(ctx, limit)
	if err != nil {
		return nil, err
	}

	if payload, err := json.Marshal(instructors); err == nil {
		if err := s.rdb.Set(ctx, key, payload, popularCacheTTL).Err(); err != nil {
			s.log.Warn().Err(err).Msg("Popular instructors cache write failed")
		}
	}
	return instructors, nil
}

// GrantRole promotes the user with the given email. Returns the number
// of rows affected (0 means no such user).
func (s *UserService) GrantRole(ctx context.Context, email string, role model.Role) (int64, error) {
	return s.userRepo.SetRole(ctx, email, role)
}

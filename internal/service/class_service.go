package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/reelify/reelify-backend/internal/config"
	"github.com/reelify/reelify-backend/internal/model"
	"github.com/reelify/reelify-backend/internal/repository"
	"github.com/rs/zerolog"
)

// popularCacheTTL bounds staleness of the cached popularity listings.
const popularCacheTTL = 60 * time.Second

// ClassService handles class submission, approval and the public
// browse listings.
type ClassService struct {
	classRepo *repository.ClassRepository
	rdb       *redis.Client
	log       zerolog.Logger
}

// NewClassService creates a new ClassService.
func NewClassService(classRepo *repository.ClassRepository, rdb *redis.Client, log zerolog.Logger) *ClassService {
	return &ClassService{
		classRepo: classRepo,
		rdb:       rdb,
		log:       log.With().Str("component", "class_service").Logger(),
	}
}

// GetByID retrieves a class by its ID.
func (s *ClassService) GetByID(ctx context.Context, id int64) (*model.Class, error) {
	return s.classRepo.GetByID(ctx, id)
}

// Submit stores an instructor's class submission in pending status.
// Status is forced server-side regardless of the payload.
func (s *ClassService) Submit(ctx context.Context, class *model.Class) error {
	class.Status = model.ClassStatusPending
	return s.classRepo.Create(ctx, class)
}

// ListApproved retrieves all approved classes.
func (s *ClassService) ListApproved(ctx context.Context) ([]model.Class, error) {
	return s.classRepo.ListApproved(ctx)
}

// ListByInstructor retrieves an instructor's own classes, any status.
func (s *ClassService) ListByInstructor(ctx context.Context, email string) ([]model.Class, error) {
	return s.classRepo.ListByInstructor(ctx, email)
}

// ListPopular retrieves the top approved classes by enrollment count,
// served from a short-lived Redis cache. Cache failures degrade to the
// database, never to an error.
func (s *ClassService) ListPopular(ctx context.Context, limit int) ([]model.Class, error) {
	key := config.CacheKey.PopularClassesKey()

	if cached, err := s.rdb.Get(ctx, key).Bytes(); err == nil {
		var classes []model.Class
		if err := json.Unmarshal(cached, &classes); err == nil {
			return classes, nil
		}
	} else if !errors.Is(err, redis.Nil) {
		s.log.Warn().Err(err).Msg("Popular classes cache read failed")
	}

	classes, err := s.classRepo.ListPopular(ctx, limit)
	if err != nil {
		return nil, err
	}

	if payload, err := json.Marshal(classes); err == nil {
		if err := s.rdb.Set(ctx, key, payload, popularCacheTTL).Err(); err != nil {
			s.log.Warn().Err(err).Msg("Popular classes cache write failed")
		}
	}
	return classes, nil
}

// SetStatus applies an admin approval decision and drops the
// popularity cache so the listing reflects it promptly.
func (s *ClassService) SetStatus(ctx context.Context, id int64, status model.ClassStatus) (int64, error) {
	affected, err := s.classRepo.SetStatus(ctx, id, status)
	if err != nil || affected == 0 {
		return affected, err
	}
	if err := s.rdb.Del(ctx, config.CacheKey.PopularClassesKey()).Err(); err != nil {
		s.log.Warn().Err(err).Msg("Popular classes cache invalidation failed")
	}
	return affected, nil
}

// SetFeedback stores admin feedback on a class.
func (s *ClassService) SetFeedback(ctx context.Context, id int64, feedback string) (int64, error) {
	return s.classRepo.SetFeedback(ctx, id, feedback)
}

// PrewarmPopularCache fills the popularity cache before the server
// starts accepting traffic.
func (s *ClassService) PrewarmPopularCache(ctx context.Context, limit int) error {
	_, err := s.ListPopular(ctx, limit)
	return err
}

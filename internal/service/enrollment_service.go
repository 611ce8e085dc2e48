package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/reelify/reelify-backend/internal/config"
	"github.com/reelify/reelify-backend/internal/model"
	"github.com/reelify/reelify-backend/internal/repository"
	"github.com/rs/zerolog"
)

// Checkout errors.
var (
	// ErrAlreadyProcessed means this payment reference has already
	// produced an enrollment. The replay changed nothing.
	ErrAlreadyProcessed = errors.New("payment already processed")
	// ErrSoldOut re-exports the ledger error for handler mapping.
	ErrSoldOut = repository.ErrSoldOut
)

// EnrollmentService commits the enrollment lifecycle's one real
// transaction: payment record in, enrolled seat out.
type EnrollmentService struct {
	pool           *pgxpool.Pool
	enrollmentRepo *repository.EnrollmentRepository
	selectionRepo  *repository.SelectionRepository
	classRepo      *repository.ClassRepository
	rdb            *redis.Client
	log            zerolog.Logger
}

// NewEnrollmentService creates a new EnrollmentService.
func NewEnrollmentService(
	pool *pgxpool.Pool,
	enrollmentRepo *repository.EnrollmentRepository,
	selectionRepo *repository.SelectionRepository,
	classRepo *repository.ClassRepository,
	rdb *redis.Client,
	log zerolog.Logger,
) *EnrollmentService {
	return &EnrollmentService{
		pool:           pool,
		enrollmentRepo: enrollmentRepo,
		selectionRepo:  selectionRepo,
		classRepo:      classRepo,
		rdb:            rdb,
		log:            log.With().Str("component", "enrollment_service").Logger(),
	}
}

// Checkout converts a paid selection into an enrollment. The
// enrollment insert, selection removal and seat decrement run in one
// database transaction and commit or roll back together. A replayed
// payment reference fails with
// ErrAlreadyProcessed, a full class with ErrSoldOut, a missing class
// with ErrClassNotFound; in every failure case no state changes.
func (s *EnrollmentService) Checkout(ctx context.Context, req *model.CheckoutRequest) (*model.CheckoutResult, error) {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin checkout: %w", err)
	}
	defer tx.Rollback(ctx) // No-op after commit.

	enrollment := &model.Enrollment{
		ClassID:      req.ClassID,
		StudentEmail: req.Email,
		Amount:       req.Amount,
		PaymentRef:   req.PaymentRef,
	}

	if err := s.enrollmentRepo.Insert(ctx, tx, enrollment); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			case "23505": // unique_violation on payment_ref
				return nil, ErrAlreadyProcessed
			case "23503": // foreign_key_violation on class_id
				return nil, ErrClassNotFound
			}
		}
		return nil, fmt.Errorf("insert enrollment: %w", err)
	}

	removed, err := s.selectionRepo.DeleteByClassAndStudent(ctx, tx, req.ClassID, req.Email)
	if err != nil {
		return nil, fmt.Errorf("remove selection: %w", err)
	}

	seatsLeft, err := s.classRepo.DecrementSeats(ctx, tx, req.ClassID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrClassNotFound
		}
		// ErrSoldOut passes through untouched.
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit checkout: %w", err)
	}

	s.log.Info().
		Int64("class_id", req.ClassID).
		Str("student", req.Email).
		Int("seats_left", seatsLeft).
		Msg("Enrollment committed")

	s.publishSeats(ctx, req.ClassID, seatsLeft)

	// The popularity order may have shifted; drop the cached listing.
	if err := s.rdb.Del(ctx, config.CacheKey.PopularClassesKey()).Err(); err != nil {
		s.log.Warn().Err(err).Msg("Popular classes cache invalidation failed")
	}

	return &model.CheckoutResult{
		Enrollment:       enrollment,
		SelectionRemoved: removed > 0,
		SeatsLeft:        seatsLeft,
	}, nil
}

// ListByStudent retrieves a student's enrollments, newest first.
func (s *EnrollmentService) ListByStudent(ctx context.Context, email string) ([]model.Enrollment, error) {
	return s.enrollmentRepo.ListByStudent(ctx, email)
}

// publishSeats broadcasts the new seat count for live subscribers.
// Best effort: a broken broadcast never fails a committed checkout.
func (s *EnrollmentService) publishSeats(ctx context.Context, classID int64, seatsLeft int) {
	channel := config.CacheKey.ClassSeatsChannel(classID)
	if err := s.rdb.Publish(ctx, channel, strconv.Itoa(seatsLeft)).Err(); err != nil {
		s.log.Warn().Err(err).Int64("class_id", classID).Msg("Seat broadcast failed")
	}
}

package service

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/reelify/reelify-backend/internal/model"
	"github.com/reelify/reelify-backend/internal/repository"
)

// Selection errors.
var (
	// ErrAlreadySelected means the student already has an unresolved
	// selection for this class.
	ErrAlreadySelected = errors.New("class already selected")
	// ErrClassNotFound means the referenced class does not exist.
	ErrClassNotFound = errors.New("class not found")
)

// SelectionService handles the pre-payment cart.
type SelectionService struct {
	selectionRepo *repository.SelectionRepository
}

// NewSelectionService creates a new SelectionService.
func NewSelectionService(selectionRepo *repository.SelectionRepository) *SelectionService {
	return &SelectionService{selectionRepo: selectionRepo}
}

// Select records a student's intent to take a class. A duplicate
// (class, student) pair fails with ErrAlreadySelected; a reference to
// a missing class fails with ErrClassNotFound.
func (s *SelectionService) Select(ctx context.Context, sel *model.Selection) error {
	err := s.selectionRepo.Create(ctx, sel)
	if err == nil {
		return nil
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505": // unique_violation on (class_id, student_email)
			return ErrAlreadySelected
		case "23503": // foreign_key_violation on class_id
			return ErrClassNotFound
		}
	}
	return err
}

// ListByStudent retrieves a student's selections, newest first.
func (s *SelectionService) ListByStudent(ctx context.Context, email string) ([]model.Selection, error) {
	return s.selectionRepo.ListByStudent(ctx, email)
}

// Cancel removes a selection the student owns. Returns the number of
// rows affected (0 means not found or not theirs).
func (s *SelectionService) Cancel(ctx context.Context, id int64, email string) (int64, error) {
	return s.selectionRepo.DeleteByOwner(ctx, id, email)
}

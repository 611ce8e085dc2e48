package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/reelify/reelify-backend/internal/model"
)

// SelectionRepository handles pre-payment class selections.
type SelectionRepository struct {
	pool *pgxpool.Pool
}

// NewSelectionRepository creates a new SelectionRepository.
func NewSelectionRepository(pool *pgxpool.Pool) *SelectionRepository {
	return &SelectionRepository{pool: pool}
}

// Create inserts a selection. The unique index on
// (class_id, student_email) rejects a second unresolved selection for
// the same pair; callers detect that as a 23505 unique violation.
func (r *SelectionRepository) Create(ctx context.Context, s *model.Selection) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO selections (class_id, student_email)
		 VALUES ($1, $2)
		 RETURNING id, created_at`,
		s.ClassID, s.StudentEmail,
	).Scan(&s.ID, &s.CreatedAt)
}

// ListByStudent retrieves a student's selections joined with the
// class fields the cart view needs.
func (r *SelectionRepository) ListByStudent(ctx context.Context, email string) ([]model.Selection, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT s.id, s.class_id, s.student_email, s.created_at,
		        c.name, c.image, c.price, c.seats
		 FROM selections s
		 JOIN classes c ON c.id = s.class_id
		 WHERE s.student_email = $1
		 ORDER BY s.created_at DESC`, email)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var selections []model.Selection
	for rows.Next() {
		var s model.Selection
		if err := rows.Scan(&s.ID, &s.ClassID, &s.StudentEmail, &s.CreatedAt,
			&s.ClassName, &s.ClassImage, &s.Price, &s.Seats); err != nil {
			return nil, err
		}
		selections = append(selections, s)
	}
	return selections, rows.Err()
}

// DeleteByOwner removes a selection by ID, but only if it belongs to
// the given student. Returns the number of rows affected.
func (r *SelectionRepository) DeleteByOwner(ctx context.Context, id int64, email string) (int64, error) {
	tag, err := r.pool.Exec(ctx,
		`DELETE FROM selections WHERE id = $1 AND student_email = $2`, id, email)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

// DeleteByClassAndStudent removes the selection resolved by a checkout,
// inside the checkout transaction. Zero rows is not an error: a missing
// selection is cosmetic and must not block the enrollment.
func (r *SelectionRepository) DeleteByClassAndStudent(ctx context.Context, tx pgx.Tx, classID int64, email string) (int64, error) {
	tag, err := tx.Exec(ctx,
		`DELETE FROM selections WHERE class_id = $1 AND student_email = $2`, classID, email)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

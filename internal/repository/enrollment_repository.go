package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/reelify/reelify-backend/internal/model"
)

// EnrollmentRepository handles committed enrollment records.
// Enrollments are append-only: there is no update or delete path.
type EnrollmentRepository struct {
	pool *pgxpool.Pool
}

// NewEnrollmentRepository creates a new EnrollmentRepository.
func NewEnrollmentRepository(pool *pgxpool.Pool) *EnrollmentRepository {
	return &EnrollmentRepository{pool: pool}
}

// Insert writes an enrollment inside the checkout transaction.
// The unique index on payment_ref makes a replayed payment record fail
// with a 23505 unique violation, which callers surface as a duplicate.
func (r *EnrollmentRepository) Insert(ctx context.Context, tx pgx.Tx, e *model.Enrollment) error {
	return tx.QueryRow(ctx,
		`INSERT INTO enrollments (class_id, student_email, amount, payment_ref)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, created_at`,
		e.ClassID, e.StudentEmail, e.Amount, e.PaymentRef,
	).Scan(&e.ID, &e.CreatedAt)
}

// ListByStudent retrieves a student's enrollments, newest first.
func (r *EnrollmentRepository) ListByStudent(ctx context.Context, email string) ([]model.Enrollment, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT e.id, e.class_id, c.name, c.image, e.student_email, e.amount, e.payment_ref, e.created_at
		 FROM enrollments e
		 JOIN classes c ON c.id = e.class_id
		 WHERE e.student_email = $1
		 ORDER BY e.created_at DESC`, email)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var enrollments []model.Enrollment
	for rows.Next() {
		var e model.Enrollment
		if err := rows.Scan(&e.ID, &e.ClassID, &e.ClassName, &e.ClassImage,
			&e.StudentEmail, &e.Amount, &e.PaymentRef, &e.CreatedAt); err != nil {
			return nil, err
		}
		enrollments = append(enrollments, e)
	}
	return enrollments, rows.Err()
}

package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/reelify/reelify-backend/internal/model"
)

// Capacity ledger errors.
var (
	// ErrSoldOut is returned when a guarded seat decrement finds no
	// seats left. Seats are unchanged.
	ErrSoldOut = errors.New("class is sold out")
)

const classColumns = `id, name, image, instructor_name, instructor_email,
	price, seats, enrolled, status, feedback, created_at, updated_at`

// ClassRepository handles class data access and owns the seat ledger.
type ClassRepository struct {
	pool *pgxpool.Pool
}

// NewClassRepository creates a new ClassRepository.
func NewClassRepository(pool *pgxpool.Pool) *ClassRepository {
	return &ClassRepository{pool: pool}
}

func scanClass(row pgx.Row) (*model.Class, error) {
	c := &model.Class{}
	err := row.Scan(&c.ID, &c.Name, &c.Image, &c.InstructorName, &c.InstructorEmail,
		&c.Price, &c.Seats, &c.Enrolled, &c.Status, &c.Feedback, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return c, nil
}

func collectClasses(rows pgx.Rows) ([]model.Class, error) {
	defer rows.Close()

	var classes []model.Class
	for rows.Next() {
		c, err := scanClass(rows)
		if err != nil {
			return nil, err
		}
		classes = append(classes, *c)
	}
	return classes, rows.Err()
}

// GetByID retrieves a class by its ID.
func (r *ClassRepository) GetByID(ctx context.Context, id int64) (*model.Class, error) {
	return scanClass(r.pool.QueryRow(ctx,
		`SELECT `+classColumns+` FROM classes WHERE id = $1`, id))
}

// Create inserts a new class submission.
func (r *ClassRepository) Create(ctx context.Context, c *model.Class) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO classes (name, image, instructor_name, instructor_email, price, seats, status)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING id, enrolled, feedback, created_at, updated_at`,
		c.Name, c.Image, c.InstructorName, c.InstructorEmail, c.Price, c.Seats, c.Status,
	).Scan(&c.ID, &c.Enrolled, &c.Feedback, &c.CreatedAt, &c.UpdatedAt)
}

// ListApproved retrieves all approved classes.
func (r *ClassRepository) ListApproved(ctx context.Context) ([]model.Class, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+classColumns+` FROM classes WHERE status = 'approved' ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	return collectClasses(rows)
}

// ListPopular retrieves approved classes ordered by enrollment count.
func (r *ClassRepository) ListPopular(ctx context.Context, limit int) ([]model.Class, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+classColumns+` FROM classes
		 WHERE status = 'approved' ORDER BY enrolled DESC, created_at DESC LIMIT $1`, limit)
	if err != nil {
		return nil, err
	}
	return collectClasses(rows)
}

// ListByInstructor retrieves every class submitted by an instructor,
// regardless of status.
func (r *ClassRepository) ListByInstructor(ctx context.Context, email string) ([]model.Class, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+classColumns+` FROM classes WHERE instructor_email = $1 ORDER BY created_at DESC`, email)
	if err != nil {
		return nil, err
	}
	return collectClasses(rows)
}

// SetStatus transitions a class to the given approval status.
// Returns the number of rows affected (0 means no such class).
func (r *ClassRepository) SetStatus(ctx context.Context, id int64, status model.ClassStatus) (int64, error) {
	tag, err := r.pool.Exec(ctx,
		`UPDATE classes SET status = $1, updated_at = CURRENT_TIMESTAMP WHERE id = $2`,
		status, id)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

// SetFeedback stores admin feedback on a class.
func (r *ClassRepository) SetFeedback(ctx context.Context, id int64, feedback string) (int64, error) {
	tag, err := r.pool.Exec(ctx,
		`UPDATE classes SET feedback = $1, updated_at = CURRENT_TIMESTAMP WHERE id = $2`,
		feedback, id)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

// DecrementSeats performs the single guarded seat decrement inside tx.
// It is the only write path for seats: one conditional UPDATE that
// refuses to take the count below zero, so concurrent checkouts on the
// same class serialize in the database. Returns the remaining seats,
// ErrSoldOut when no seats are left, or pgx.ErrNoRows when the class
// does not exist.
func (r *ClassRepository) DecrementSeats(ctx context.Context, tx pgx.Tx, id int64) (int, error) {
	var seatsLeft int
	err := tx.QueryRow(ctx,
		`UPDATE classes
		 SET seats = seats - 1, enrolled = enrolled + 1, updated_at = CURRENT_TIMESTAMP
		 WHERE id = $1 AND seats > 0
		 RETURNING seats`, id,
	).Scan(&seatsLeft)
	if err == nil {
		return seatsLeft, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return 0, err
	}

	// Guard didn't match: distinguish sold-out from a missing class.
	var exists bool
	if err := tx.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM classes WHERE id = $1)`, id,
	).Scan(&exists); err != nil {
		return 0, err
	}
	if exists {
		return 0, ErrSoldOut
	}
	return 0, pgx.ErrNoRows
}

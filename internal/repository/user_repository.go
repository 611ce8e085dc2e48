package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/reelify/reelify-backend/internal/model"
)

// UserRepository handles user data access.
type UserRepository struct {
	pool *pgxpool.Pool
}

// NewUserRepository creates a new UserRepository.
func NewUserRepository(pool *pgxpool.Pool) *UserRepository {
	return &UserRepository{pool: pool}
}

// Upsert inserts a user by email or refreshes their profile fields.
// Role and password are only taken from the document on first insert;
// an existing row keeps its role (role changes are admin-gated) and
// its password hash unless a new one is provided.
func (r *UserRepository) Upsert(ctx context.Context, u *model.User) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO users (name, email, photo, role, password_hash)
		 VALUES ($1, $2, $3, $4, $5)
		 ON CONFLICT (email) DO UPDATE SET
		   name = EXCLUDED.name,
		   photo = EXCLUDED.photo,
		   password_hash = COALESCE(NULLIF(EXCLUDED.password_hash, ''), users.password_hash),
		   updated_at = CURRENT_TIMESTAMP
		 RETURNING id, role, created_at, updated_at`,
		u.Name, u.Email, u.Photo, u.Role, u.PasswordHash,
	).Scan(&u.ID, &u.Role, &u.CreatedAt, &u.UpdatedAt)
}

// GetByEmail retrieves a user by email.
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	u := &model.User{}
	err := r.pool.QueryRow(ctx,
		`SELECT id, name, email, photo, role, password_hash, created_at, updated_at
		 FROM users WHERE email = $1`, email,
	).Scan(&u.ID, &u.Name, &u.Email, &u.Photo, &u.Role, &u.PasswordHash, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return u, nil
}

// ListByRole retrieves all users holding the given role.
func (r *UserRepository) ListByRole(ctx context.Context, role model.Role) ([]model.User, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, name, email, photo, role, password_hash, created_at, updated_at
		 FROM users WHERE role = $1 ORDER BY name`, role)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []model.User
	for rows.Next() {
		var u model.User
		if err := rows.Scan(&u.ID, &u.Name, &u.Email, &u.Photo, &u.Role, &u.PasswordHash, &u.CreatedAt, &u.UpdatedAt); err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

// ListPopularInstructors retrieves instructors ordered by total
// enrollments across their approved classes.
func (r *UserRepository) ListPopularInstructors(ctx context.Context, limit int) ([]model.User, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT u.id, u.name, u.email, u.photo, u.role, u.password_hash, u.created_at, u.updated_at
		 FROM users u
		 LEFT JOIN classes c ON c.instructor_email = u.email AND c.status = 'approved'
		 WHERE u.role = 'instructor'
		 GROUP BY u.id
		 ORDER BY COALESCE(SUM(c.enrolled), 0) DESC, u.name
		 LIMIT $1`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []model.User
	for rows.Next() {
		var u model.User
		if err := rows.Scan(&u.ID, &u.Name, &u.Email, &u.Photo, &u.Role, &u.PasswordHash, &u.CreatedAt, &u.UpdatedAt); err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

// SetRole grants a role to the user with the given email.
// Returns the number of rows affected (0 means no such user).
func (r *UserRepository) SetRole(ctx context.Context, email string, role model.Role) (int64, error) {
	tag, err := r.pool.Exec(ctx,
		`UPDATE users SET role = $1, updated_at = CURRENT_TIMESTAMP WHERE email = $2`,
		role, email)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

package auth

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// User is a storefront account. Accounts are optional; guests check
// out on a session cookie alone.
type User struct {
	ID        uuid.UUID
	Name      string
	Email     string
	Password  string
	Role      string
	CreatedAt time.Time
}

//go:generate mockgen -source=auth_repo.go -destination=../mock/auth/auth_repo_mock.go -package=authmock

type Repository interface {
	Create(ctx context.Context, u User) error
	GetByEmail(ctx context.Context, email string) (User, error)
	GetByID(ctx context.Context, id uuid.UUID) (User, error)
}

// ErrDuplicateEmail maps the unique constraint on users.email.
var ErrDuplicateEmail = errors.New("auth: email already registered")

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, u User) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO users (id, name, email, password, role, created_at)
		VALUES ($1, $2, $3, $4, $5, NOW())`,
		u.ID, u.Name, u.Email, u.Password, u.Role,
	)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" {
			return ErrDuplicateEmail
		}
		return err
	}
	return nil
}

func (r *repository) GetByEmail(ctx context.Context, email string) (User, error) {
	return r.scanOne(r.db.QueryRowContext(ctx, `
		SELECT id, name, email, password, role, created_at
		FROM users WHERE email = $1`,
		email,
	))
}

func (r *repository) GetByID(ctx context.Context, id uuid.UUID) (User, error) {
	return r.scanOne(r.db.QueryRowContext(ctx, `
		SELECT id, name, email, password, role, created_at
		FROM users WHERE id = $1`,
		id,
	))
}

func (r *repository) scanOne(row *sql.Row) (User, error) {
	var u User
	err := row.Scan(&u.ID, &u.Name, &u.Email, &u.Password, &u.Role, &u.CreatedAt)
	return u, err
}

package pg

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"scribepad/internal/app/repository"
)

// uniqueViolation is the PostgreSQL error code for unique constraint
// violations.
const uniqueViolation = "23505"

// UserDAO is the PostgreSQL-backed credential store.
type UserDAO struct {
	db *sql.DB
}

// NewUserDAO connects to PostgreSQL and returns a ready DAO.
func NewUserDAO(dsn string) (*UserDAO, error) {
	db, err := Open(dsn)
	if err != nil {
		return nil, err
	}
	return &UserDAO{db: db}, nil
}

// New wraps an existing connection, used by tests.
func New(db *sql.DB) *UserDAO {
	return &UserDAO{db: db}
}

func (d *UserDAO) CreateUser(ctx context.Context, username, passwordHash string) (int64, error) {
	insertSQL := `INSERT INTO users (username, password_hash) VALUES ($1, $2) RETURNING id;`

	var id int64
	err := d.db.QueryRowContext(ctx, insertSQL, username, passwordHash).Scan(&id)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return 0, repository.ErrUserAlreadyExists
		}
		return 0, fmt.Errorf("insert user: %w", err)
	}
	return id, nil
}

func (d *UserDAO) GetByUsername(ctx context.Context, username string) (*repository.User, error) {
	query := `SELECT id, username, password_hash, created_at FROM users WHERE username = $1;`
	row := d.db.QueryRowContext(ctx, query, username)

	var u repository.User
	err := row.Scan(&u.ID, &u.Username, &u.PasswordHash, &u.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repository.ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("query user: %w", err)
	}
	return &u, nil
}

func (d *UserDAO) Close() error {
	return d.db.Close()
}

package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/mattn/go-sqlite3"

	"scribepad/internal/app/repository"
)

// UserDAO is the SQLite-backed credential store.
type UserDAO struct {
	db *sql.DB
}

// NewUserDAO opens the database file and returns a ready DAO.
func NewUserDAO(dbFilePath string) (*UserDAO, error) {
	db, err := Open(dbFilePath)
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
	insertSQL := `INSERT INTO users (username, password_hash) VALUES (?, ?);`
	res, err := d.db.ExecContext(ctx, insertSQL, username, passwordHash)
	if err != nil {
		var sqliteErr sqlite3.Error
		if errors.As(err, &sqliteErr) && sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique {
			return 0, repository.ErrUserAlreadyExists
		}
		return 0, fmt.Errorf("insert user: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("read inserted id: %w", err)
	}
	return id, nil
}

func (d *UserDAO) GetByUsername(ctx context.Context, username string) (*repository.User, error) {
	query := `SELECT id, username, password_hash, created_at FROM users WHERE username = ?;`
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

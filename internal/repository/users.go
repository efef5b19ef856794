// Package repository provides persistence implementations for the user,
// language, and word stores using a PostgreSQL database.
package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/mkarpov/flashcards/internal/models"
)

// PostgresUserRepository implements user persistence against a PostgreSQL database.
type PostgresUserRepository struct {
	// DB is the database handle for executing queries and transactions.
	DB *sql.DB
}

// NewPostgresUserRepository creates a new PostgresUserRepository with the given
// database connection. db must be a valid *sql.DB connected to a PostgreSQL instance.
func NewPostgresUserRepository(db *sql.DB) *PostgresUserRepository {
	return &PostgresUserRepository{DB: db}
}

// CreateUser inserts a new user row together with the default language row
// in a single transaction. If the username is already taken, ErrDuplicate is
// returned and neither row is committed.
func (r *PostgresUserRepository) CreateUser(ctx context.Context, username, passwordHash string) error {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO users (username, password) VALUES ($1, $2)
	`, username, passwordHash)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicate
		}
		return fmt.Errorf("insert user: %w", err)
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO languages (username, code) VALUES ($1, $2)
	`, username, models.DefaultLanguageCode)
	if err != nil {
		return fmt.Errorf("insert default language: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

// FindUser returns the user with the given username, or ErrNotFound if no
// such user exists.
func (r *PostgresUserRepository) FindUser(ctx context.Context, username string) (models.User, error) {
	var user models.User
	err := r.DB.QueryRowContext(ctx, `
		SELECT username, password FROM users WHERE username = $1
	`, username).Scan(&user.Username, &user.PasswordHash)
	if errors.Is(err, sql.ErrNoRows) {
		return models.User{}, ErrNotFound
	}
	if err != nil {
		return models.User{}, fmt.Errorf("find user: %w", err)
	}
	return user, nil
}

// DeleteUser removes the user row. The schema cascades the delete to the
// user's languages, words, and translations. Returns ErrNotFound if no row
// was deleted.
func (r *PostgresUserRepository) DeleteUser(ctx context.Context, username string) error {
	res, err := r.DB.ExecContext(ctx, `
		DELETE FROM users WHERE username = $1
	`, username)
	if err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	if rows, _ := res.RowsAffected(); rows == 0 {
		return ErrNotFound
	}
	return nil
}

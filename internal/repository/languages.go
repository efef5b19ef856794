package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/mkarpov/flashcards/internal/models"
)

// PostgresLanguageRepository implements language persistence against a
// PostgreSQL database.
type PostgresLanguageRepository struct {
	// DB is the database handle for executing queries.
	DB *sql.DB
}

// NewPostgresLanguageRepository creates a new PostgresLanguageRepository
// using the provided *sql.DB.
func NewPostgresLanguageRepository(db *sql.DB) *PostgresLanguageRepository {
	return &PostgresLanguageRepository{DB: db}
}

// AddLanguage inserts a language row for the given user and returns it.
// Returns ErrDuplicate if the user already added that code.
func (r *PostgresLanguageRepository) AddLanguage(ctx context.Context, username, code string) (models.Language, error) {
	lang := models.Language{Username: username, Code: code}
	err := r.DB.QueryRowContext(ctx, `
		INSERT INTO languages (username, code) VALUES ($1, $2) RETURNING id
	`, username, code).Scan(&lang.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return models.Language{}, ErrDuplicate
		}
		return models.Language{}, fmt.Errorf("insert language: %w", err)
	}
	return lang, nil
}

// GetLanguage returns the language row for (username, code), or ErrNotFound.
func (r *PostgresLanguageRepository) GetLanguage(ctx context.Context, username, code string) (models.Language, error) {
	var lang models.Language
	err := r.DB.QueryRowContext(ctx, `
		SELECT id, username, code FROM languages WHERE username = $1 AND code = $2
	`, username, code).Scan(&lang.ID, &lang.Username, &lang.Code)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Language{}, ErrNotFound
	}
	if err != nil {
		return models.Language{}, fmt.Errorf("get language: %w", err)
	}
	return lang, nil
}

// ListLanguages returns all languages added by the given user.
func (r *PostgresLanguageRepository) ListLanguages(ctx context.Context, username string) ([]models.Language, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT id, username, code FROM languages WHERE username = $1 ORDER BY code
	`, username)
	if err != nil {
		return nil, fmt.Errorf("list languages: %w", err)
	}
	defer rows.Close()

	var langs []models.Language
	for rows.Next() {
		var lang models.Language
		if err := rows.Scan(&lang.ID, &lang.Username, &lang.Code); err != nil {
			return nil, fmt.Errorf("scan: %w", err)
		}
		langs = append(langs, lang)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}
	return langs, nil
}

// DeleteLanguage removes the language row for (username, code). The schema
// cascades the delete to the language's words. Returns ErrNotFound if no
// row was deleted.
func (r *PostgresLanguageRepository) DeleteLanguage(ctx context.Context, username, code string) error {
	res, err := r.DB.ExecContext(ctx, `
		DELETE FROM languages WHERE username = $1 AND code = $2
	`, username, code)
	if err != nil {
		return fmt.Errorf("delete language: %w", err)
	}
	if rows, _ := res.RowsAffected(); rows == 0 {
		return ErrNotFound
	}
	return nil
}

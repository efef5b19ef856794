package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/mkarpov/flashcards/internal/models"
)

// PostgresWordRepository implements word and translation persistence against
// a PostgreSQL database.
type PostgresWordRepository struct {
	// DB is the database handle for executing queries.
	DB *sql.DB
}

// NewPostgresWordRepository creates a new PostgresWordRepository using the
// provided *sql.DB.
func NewPostgresWordRepository(db *sql.DB) *PostgresWordRepository {
	return &PostgresWordRepository{DB: db}
}

// AddWord inserts a word into the given language and returns it.
// Returns ErrDuplicate if the language already contains that word.
func (r *PostgresWordRepository) AddWord(ctx context.Context, languageID int64, text, pronunciations string) (models.Word, error) {
	word := models.Word{LanguageID: languageID, Text: text, Pronunciations: pronunciations}
	err := r.DB.QueryRowContext(ctx, `
		INSERT INTO words (language_id, word, pronunciations) VALUES ($1, $2, $3) RETURNING id
	`, languageID, text, pronunciations).Scan(&word.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return models.Word{}, ErrDuplicate
		}
		return models.Word{}, fmt.Errorf("insert word: %w", err)
	}
	return word, nil
}

// GetWord returns the word with the given text in the given language, or
// ErrNotFound.
func (r *PostgresWordRepository) GetWord(ctx context.Context, languageID int64, text string) (models.Word, error) {
	var word models.Word
	err := r.DB.QueryRowContext(ctx, `
		SELECT id, language_id, word, pronunciations FROM words
		WHERE language_id = $1 AND word = $2
	`, languageID, text).Scan(&word.ID, &word.LanguageID, &word.Text, &word.Pronunciations)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Word{}, ErrNotFound
	}
	if err != nil {
		return models.Word{}, fmt.Errorf("get word: %w", err)
	}
	return word, nil
}

// ListWords returns all words recorded in the given language.
func (r *PostgresWordRepository) ListWords(ctx context.Context, languageID int64) ([]models.Word, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT id, language_id, word, pronunciations FROM words
		WHERE language_id = $1 ORDER BY word
	`, languageID)
	if err != nil {
		return nil, fmt.Errorf("list words: %w", err)
	}
	defer rows.Close()

	var words []models.Word
	for rows.Next() {
		var word models.Word
		if err := rows.Scan(&word.ID, &word.LanguageID, &word.Text, &word.Pronunciations); err != nil {
			return nil, fmt.Errorf("scan: %w", err)
		}
		words = append(words, word)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}
	return words, nil
}

// DeleteWord removes the word row. The schema cascades the delete to any
// translation pairs referencing it. Returns ErrNotFound if no row was deleted.
func (r *PostgresWordRepository) DeleteWord(ctx context.Context, id int64) error {
	res, err := r.DB.ExecContext(ctx, `
		DELETE FROM words WHERE id = $1
	`, id)
	if err != nil {
		return fmt.Errorf("delete word: %w", err)
	}
	if rows, _ := res.RowsAffected(); rows == 0 {
		return ErrNotFound
	}
	return nil
}

// LinkTranslation records that translationID translates wordID.
// Returns ErrDuplicate if the pair is already linked.
func (r *PostgresWordRepository) LinkTranslation(ctx context.Context, wordID, translationID int64) error {
	_, err := r.DB.ExecContext(ctx, `
		INSERT INTO translations (word_id, translation_id) VALUES ($1, $2)
	`, wordID, translationID)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicate
		}
		return fmt.Errorf("insert translation: %w", err)
	}
	return nil
}

// TranslationsOf returns the words recorded as translations of wordID.
func (r *PostgresWordRepository) TranslationsOf(ctx context.Context, wordID int64) ([]models.Word, error) {
	return r.queryLinked(ctx, `
		SELECT w.id, w.language_id, w.word, w.pronunciations
		FROM words w JOIN translations t ON t.translation_id = w.id
		WHERE t.word_id = $1 ORDER BY w.word
	`, wordID)
}

// TranslationFor returns the words that wordID itself translates, the
// reverse direction of TranslationsOf.
func (r *PostgresWordRepository) TranslationFor(ctx context.Context, wordID int64) ([]models.Word, error) {
	return r.queryLinked(ctx, `
		SELECT w.id, w.language_id, w.word, w.pronunciations
		FROM words w JOIN translations t ON t.word_id = w.id
		WHERE t.translation_id = $1 ORDER BY w.word
	`, wordID)
}

func (r *PostgresWordRepository) queryLinked(ctx context.Context, query string, wordID int64) ([]models.Word, error) {
	rows, err := r.DB.QueryContext(ctx, query, wordID)
	if err != nil {
		return nil, fmt.Errorf("query translations: %w", err)
	}
	defer rows.Close()

	var words []models.Word
	for rows.Next() {
		var word models.Word
		if err := rows.Scan(&word.ID, &word.LanguageID, &word.Text, &word.Pronunciations); err != nil {
			return nil, fmt.Errorf("scan: %w", err)
		}
		words = append(words, word)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}
	return words, nil
}

package db

import (
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"
)

// Uniqueness and cascade rules live in the schema so they hold no matter
// which code path touches the tables.
const schema = `
CREATE TABLE IF NOT EXISTS users (
    username TEXT PRIMARY KEY,
    password TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS languages (
    id SERIAL PRIMARY KEY,
    username TEXT NOT NULL REFERENCES users(username) ON DELETE CASCADE,
    code VARCHAR(3) NOT NULL,
    UNIQUE (username, code)
);

CREATE TABLE IF NOT EXISTS words (
    id SERIAL PRIMARY KEY,
    language_id INTEGER NOT NULL REFERENCES languages(id) ON DELETE CASCADE,
    word TEXT NOT NULL,
    pronunciations TEXT NOT NULL,
    UNIQUE (language_id, word)
);

CREATE TABLE IF NOT EXISTS translations (
    word_id INTEGER NOT NULL REFERENCES words(id) ON DELETE CASCADE,
    translation_id INTEGER NOT NULL REFERENCES words(id) ON DELETE CASCADE,
    PRIMARY KEY (word_id, translation_id)
);
`

func InitPostgres(dsn string) (*sql.DB, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("ping postgres: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		return nil, fmt.Errorf("create schema: %w", err)
	}

	return db, nil
}

package repository

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
)

func setupWordMock(t *testing.T) (*PostgresWordRepository, sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to open sqlmock database: %v", err)
	}
	repo := NewPostgresWordRepository(db)
	cleanup := func() { db.Close() }
	return repo, mock, cleanup
}

func TestAddWord_Success(t *testing.T) {
	repo, mock, cleanup := setupWordMock(t)
	defer cleanup()

	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO words (language_id, word, pronunciations) VALUES ($1, $2, $3) RETURNING id`)).
		WithArgs(int64(7), "bonjour", "bon-zhoor").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(42))

	word, err := repo.AddWord(context.Background(), 7, "bonjour", "bon-zhoor")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if word.ID != 42 || word.LanguageID != 7 || word.Text != "bonjour" {
		t.Errorf("AddWord = %+v; want {42 7 bonjour bon-zhoor}", word)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unfulfilled expectations: %v", err)
	}
}

func TestAddWord_Duplicate(t *testing.T) {
	repo, mock, cleanup := setupWordMock(t)
	defer cleanup()

	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO words (language_id, word, pronunciations) VALUES ($1, $2, $3) RETURNING id`)).
		WithArgs(int64(7), "bonjour", "bon-zhoor").
		WillReturnError(&pq.Error{Code: "23505"})

	_, err := repo.AddWord(context.Background(), 7, "bonjour", "bon-zhoor")
	if !errors.Is(err, ErrDuplicate) {
		t.Fatalf("expected ErrDuplicate, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unfulfilled expectations: %v", err)
	}
}

func TestGetWord_NotFound(t *testing.T) {
	repo, mock, cleanup := setupWordMock(t)
	defer cleanup()

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, language_id, word, pronunciations FROM words`)).
		WithArgs(int64(7), "adieu").
		WillReturnRows(sqlmock.NewRows([]string{"id", "language_id", "word", "pronunciations"}))

	_, err := repo.GetWord(context.Background(), 7, "adieu")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unfulfilled expectations: %v", err)
	}
}

func TestListWords(t *testing.T) {
	repo, mock, cleanup := setupWordMock(t)
	defer cleanup()

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, language_id, word, pronunciations FROM words`)).
		WithArgs(int64(7)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "language_id", "word", "pronunciations"}).
			AddRow(41, 7, "adieu", "a-dyuh").
			AddRow(42, 7, "bonjour", "bon-zhoor,bon-joor"))

	words, err := repo.ListWords(context.Background(), 7)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(words) != 2 {
		t.Fatalf("ListWords returned %d rows; want 2", len(words))
	}
	if words[1].Pronunciations != "bon-zhoor,bon-joor" {
		t.Errorf("words[1].Pronunciations = %q", words[1].Pronunciations)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unfulfilled expectations: %v", err)
	}
}

func TestLinkTranslation_Duplicate(t *testing.T) {
	repo, mock, cleanup := setupWordMock(t)
	defer cleanup()

	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO translations (word_id, translation_id) VALUES ($1, $2)`)).
		WithArgs(int64(42), int64(43)).
		WillReturnError(&pq.Error{Code: "23505"})

	err := repo.LinkTranslation(context.Background(), 42, 43)
	if !errors.Is(err, ErrDuplicate) {
		t.Fatalf("expected ErrDuplicate, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unfulfilled expectations: %v", err)
	}
}

func TestTranslationsOf_BothDirections(t *testing.T) {
	repo, mock, cleanup := setupWordMock(t)
	defer cleanup()

	mock.ExpectQuery(`JOIN translations t ON t\.translation_id = w\.id`).
		WithArgs(int64(42)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "language_id", "word", "pronunciations"}).
			AddRow(43, 1, "hello", "heh-loh"))
	mock.ExpectQuery(`JOIN translations t ON t\.word_id = w\.id`).
		WithArgs(int64(43)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "language_id", "word", "pronunciations"}).
			AddRow(42, 7, "bonjour", "bon-zhoor"))

	forward, err := repo.TranslationsOf(context.Background(), 42)
	if err != nil {
		t.Fatalf("TranslationsOf: %v", err)
	}
	if len(forward) != 1 || forward[0].Text != "hello" {
		t.Errorf("TranslationsOf = %+v; want one row hello", forward)
	}

	reverse, err := repo.TranslationFor(context.Background(), 43)
	if err != nil {
		t.Fatalf("TranslationFor: %v", err)
	}
	if len(reverse) != 1 || reverse[0].Text != "bonjour" {
		t.Errorf("TranslationFor = %+v; want one row bonjour", reverse)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unfulfilled expectations: %v", err)
	}
}

func TestDeleteWord_NotFound(t *testing.T) {
	repo, mock, cleanup := setupWordMock(t)
	defer cleanup()

	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM words WHERE id = $1`)).
		WithArgs(int64(99)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.DeleteWord(context.Background(), 99)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unfulfilled expectations: %v", err)
	}
}

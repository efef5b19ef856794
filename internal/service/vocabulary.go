package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/mkarpov/flashcards/internal/models"
	"github.com/mkarpov/flashcards/internal/repository"
)

// LanguageRepository defines the persistence operations needed for a user's
// languages.
type LanguageRepository interface {
	AddLanguage(ctx context.Context, username, code string) (models.Language, error)
	GetLanguage(ctx context.Context, username, code string) (models.Language, error)
	ListLanguages(ctx context.Context, username string) ([]models.Language, error)
	DeleteLanguage(ctx context.Context, username, code string) error
}

// WordRepository defines the persistence operations needed for words and
// translation links.
type WordRepository interface {
	AddWord(ctx context.Context, languageID int64, text, pronunciations string) (models.Word, error)
	GetWord(ctx context.Context, languageID int64, text string) (models.Word, error)
	ListWords(ctx context.Context, languageID int64) ([]models.Word, error)
	DeleteWord(ctx context.Context, id int64) error
	LinkTranslation(ctx context.Context, wordID, translationID int64) error
	TranslationsOf(ctx context.Context, wordID int64) ([]models.Word, error)
	TranslationFor(ctx context.Context, wordID int64) ([]models.Word, error)
}

// VocabularyService implements language and word management for a user.
// Every operation is scoped to the owning user; a word is only reachable
// through one of the user's own languages.
type VocabularyService struct {
	languages LanguageRepository
	words     WordRepository
}

// NewVocabularyService constructs a VocabularyService with the provided
// repositories.
func NewVocabularyService(languages LanguageRepository, words WordRepository) *VocabularyService {
	return &VocabularyService{languages: languages, words: words}
}

// AddLanguage attaches a language code to the user. Returns
// ErrLanguageExists if the user already added that code.
func (s *VocabularyService) AddLanguage(ctx context.Context, username, code string) (models.Language, error) {
	lang, err := s.languages.AddLanguage(ctx, username, code)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return models.Language{}, ErrLanguageExists
		}
		return models.Language{}, fmt.Errorf("add language: %w", err)
	}
	return lang, nil
}

// Language resolves one of the user's languages by code. Returns
// ErrLanguageNotFound if the user has not added it.
func (s *VocabularyService) Language(ctx context.Context, username, code string) (models.Language, error) {
	lang, err := s.languages.GetLanguage(ctx, username, code)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return models.Language{}, ErrLanguageNotFound
		}
		return models.Language{}, fmt.Errorf("get language: %w", err)
	}
	return lang, nil
}

// Languages lists all languages the user has added.
func (s *VocabularyService) Languages(ctx context.Context, username string) ([]models.Language, error) {
	langs, err := s.languages.ListLanguages(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("list languages: %w", err)
	}
	return langs, nil
}

// RemoveLanguage deletes one of the user's languages and, via cascade, its
// words. Returns ErrLanguageNotFound if the user has not added it.
func (s *VocabularyService) RemoveLanguage(ctx context.Context, username, code string) error {
	if err := s.languages.DeleteLanguage(ctx, username, code); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrLanguageNotFound
		}
		return fmt.Errorf("delete language: %w", err)
	}
	return nil
}

// AddWord records a word with its pronunciations under one of the user's
// languages. Returns ErrLanguageNotFound if the language is not the user's,
// and ErrWordExists if the language already contains the word.
func (s *VocabularyService) AddWord(ctx context.Context, username, code, text, pronunciations string) (models.Word, error) {
	lang, err := s.Language(ctx, username, code)
	if err != nil {
		return models.Word{}, err
	}

	word, err := s.words.AddWord(ctx, lang.ID, text, pronunciations)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return models.Word{}, ErrWordExists
		}
		return models.Word{}, fmt.Errorf("add word: %w", err)
	}
	return word, nil
}

// Word resolves a word by text under one of the user's languages.
func (s *VocabularyService) Word(ctx context.Context, username, code, text string) (models.Word, error) {
	lang, err := s.Language(ctx, username, code)
	if err != nil {
		return models.Word{}, err
	}

	word, err := s.words.GetWord(ctx, lang.ID, text)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return models.Word{}, ErrWordNotFound
		}
		return models.Word{}, fmt.Errorf("get word: %w", err)
	}
	return word, nil
}

// Words lists all words recorded in the given language.
func (s *VocabularyService) Words(ctx context.Context, languageID int64) ([]models.Word, error) {
	words, err := s.words.ListWords(ctx, languageID)
	if err != nil {
		return nil, fmt.Errorf("list words: %w", err)
	}
	return words, nil
}

// LinkTranslation records that translationID translates wordID. Returns
// ErrTranslationExists if the pair is already linked.
func (s *VocabularyService) LinkTranslation(ctx context.Context, wordID, translationID int64) error {
	if err := s.words.LinkTranslation(ctx, wordID, translationID); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return ErrTranslationExists
		}
		return fmt.Errorf("link translation: %w", err)
	}
	return nil
}

// TranslationsOf returns the words recorded as translations of wordID.
func (s *VocabularyService) TranslationsOf(ctx context.Context, wordID int64) ([]models.Word, error) {
	return s.words.TranslationsOf(ctx, wordID)
}

// TranslationFor returns the words that wordID itself translates.
func (s *VocabularyService) TranslationFor(ctx context.Context, wordID int64) ([]models.Word, error) {
	return s.words.TranslationFor(ctx, wordID)
}

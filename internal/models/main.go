// Package models defines the core data structures for users, languages,
// words, and translations.
package models

// DefaultLanguageCode is attached to every newly registered user as the
// language to translate into.
const DefaultLanguageCode = "eng"

// User represents an application user with credentials.
type User struct {
	// Username is the login name chosen by the user and the primary
	// identifier across the whole schema.
	Username string
	// PasswordHash is the bcrypt hash of the user's password.
	// The plaintext is never stored.
	PasswordHash string
}

// Language is a language a user is practicing, identified by a short
// code ("fr", "deu"). A user may add a given code only once.
type Language struct {
	// ID is the surrogate key of the language row.
	ID int64
	// Username identifies the owning user.
	Username string
	// Code is the short language code, at most 3 characters.
	Code string
}

// Word is a single vocabulary entry scoped to one of a user's languages.
type Word struct {
	// ID is the surrogate key of the word row.
	ID int64
	// LanguageID identifies the owning language.
	LanguageID int64
	// Text is the word itself, ideally its base form.
	Text string
	// Pronunciations holds one or more pronunciations separated by commas.
	Pronunciations string
}

// Translation links two words as plausible translations of each other.
// The pair is navigable in both directions.
type Translation struct {
	// WordID is the word being translated.
	WordID int64
	// TranslationID is a word that translates WordID.
	TranslationID int64
}

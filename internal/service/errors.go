package service

import "errors"

var (
	// ErrInvalidCredentials is returned when the username is unknown or
	// the password does not match. Callers surface the same message for
	// both cases.
	ErrInvalidCredentials = errors.New("invalid username or password")

	// ErrUsernameTaken is returned when registering with a username that
	// already exists.
	ErrUsernameTaken = errors.New("username already taken")

	// ErrLanguageExists is returned when a user adds a language code
	// they already added.
	ErrLanguageExists = errors.New("language already exists")

	// ErrLanguageNotFound is returned when a user references a language
	// they have not added.
	ErrLanguageNotFound = errors.New("language not found")

	// ErrWordExists is returned when a language already contains a word.
	ErrWordExists = errors.New("word already exists")

	// ErrWordNotFound is returned when a referenced word does not exist.
	ErrWordNotFound = errors.New("word not found")

	// ErrTranslationExists is returned when a translation pair is
	// already linked.
	ErrTranslationExists = errors.New("translation already exists")
)

package lexicon

import "errors"

var (
	// ErrEmptyLexicon is returned when a source yields no words.
	ErrEmptyLexicon = errors.New("lexicon contains no words")

	// ErrSourceNotFound is returned when the backing word list does not exist.
	ErrSourceNotFound = errors.New("lexicon source not found")

	// ErrFailedToLoad wraps any other failure to read a word list.
	ErrFailedToLoad = errors.New("failed to load lexicon")

	// ErrLoadCancelled is returned when the context ends while a word list is loading.
	ErrLoadCancelled = errors.New("lexicon loading cancelled")

	// ErrRedisNotReady is returned when no Redis connection could be established.
	ErrRedisNotReady = errors.New("redis did not become ready")

	// ErrInvalidRedisURL is returned when the Redis connection URL cannot be parsed.
	ErrInvalidRedisURL = errors.New("failed to parse redis connection URL")

	// ErrDatabaseNotReady is returned when no Postgres connection could be established.
	ErrDatabaseNotReady = errors.New("postgres did not become ready")

	// ErrInvalidDatabaseURL is returned when the Postgres connection string cannot be parsed.
	ErrInvalidDatabaseURL = errors.New("failed to parse database connection string")
)

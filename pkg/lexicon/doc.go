// Package lexicon loads and indexes word lists used to recognise plaintext.
//
// A Lexicon is an immutable set of case-folded words with constant-time
// lookups. Word lists come from a Source:
//
//   - Embedded: the built-in English corpus compiled into the binary.
//   - FileSource: a local file with one word per line.
//   - RedisSource: members of a Redis set.
//   - S3Source: a word file stored in S3 or an S3-compatible service.
//   - PostgresSource: the "word" column of a Postgres table.
//
// # Initialization
//
// Building the English lexicon is the only expensive step of the cipher
// engine. Call Init once at startup:
//
//	if err := lexicon.Init(ctx); err != nil {
//		log.Fatal(err)
//	}
//
// Forgetting to do so is harmless: English builds the lexicon on first use.
// Either way the corpus is parsed at most once per process and the result is
// shared read-only by all callers.
//
// # Error Handling
//
//   - ErrEmptyLexicon: the source produced no words.
//   - ErrSourceNotFound: the file, object or key does not exist.
//   - ErrFailedToLoad: any other read failure (wrapped with errors.Join).
//   - ErrLoadCancelled: the context ended before loading finished.
package lexicon

// Package logger builds the slog loggers used by the cipher engine, its HTTP
// API and the command line tool.
//
// New returns a *slog.Logger configured with Option functions:
//
//   - JSON (default), text, or colourised "pretty" output via tint
//   - minimum level, static attributes, custom output writer
//   - context extractors that add attributes from context.Context
//
// Each logger injects the run id stored with WithRunID, so every record
// emitted during one automatic decryption can be correlated:
//
//	log := logger.New(logger.WithEnvironment("development", "caesar"))
//	ctx := logger.WithRunID(ctx, uuid.NewString())
//	log.InfoContext(ctx, "search finished", logger.Key(7), logger.Iterations(8))
//
// Attribute helpers in attr.go keep key names consistent. Plaintext and
// ciphertext are never logged; use TextLength instead.
package logger

package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/cipherkit/pkg/config"
)

func TestParse_Defaults(t *testing.T) {
	t.Parallel()

	cfg, err := config.Parse(map[string]string{})
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.Env)
	assert.Empty(t, cfg.LogLevel)
	assert.Empty(t, cfg.LogFormat)
	assert.Equal(t, 0.5, cfg.DefaultThreshold)
	assert.Equal(t, 4, cfg.ValidatorCacheSize)
	assert.Equal(t, config.SourceEmbedded, cfg.LexiconSource)
	assert.Equal(t, "lexicon:english", cfg.Redis.Key)
	assert.Equal(t, "lexicon_words", cfg.Postgres.Table)
	assert.Equal(t, ":8080", cfg.HTTP.Addr)
	assert.Equal(t, 5*time.Second, cfg.HTTP.ShutdownTimeout)
}

func TestParse_Overrides(t *testing.T) {
	t.Parallel()

	cfg, err := config.Parse(map[string]string{
		"CAESAR_ENV":                  "production",
		"CAESAR_LOG_FORMAT":           "json",
		"CAESAR_DEFAULT_THRESHOLD":    "0.75",
		"CAESAR_VALIDATOR_CACHE_SIZE": "8",
		"CAESAR_LEXICON_SOURCE":       "s3",
		"S3_BUCKET":                   "words",
		"S3_KEY":                      "en.txt",
		"HTTP_ADDR":                   "127.0.0.1:9000",
	})
	require.NoError(t, err)

	assert.Equal(t, "production", cfg.Env)
	assert.Equal(t, 0.75, cfg.DefaultThreshold)
	assert.Equal(t, 8, cfg.ValidatorCacheSize)
	assert.Equal(t, "words", cfg.S3.Bucket)
	assert.Equal(t, "en.txt", cfg.S3.Key)
	assert.Equal(t, "127.0.0.1:9000", cfg.HTTP.Addr)
}

func TestParse_Invalid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		vars map[string]string
	}{
		{"unknown source", map[string]string{"CAESAR_LEXICON_SOURCE": "ftp"}},
		{"file without path", map[string]string{"CAESAR_LEXICON_SOURCE": "file"}},
		{"s3 without bucket", map[string]string{"CAESAR_LEXICON_SOURCE": "s3"}},
		{"postgres without url", map[string]string{"CAESAR_LEXICON_SOURCE": "postgres"}},
		{"threshold above one", map[string]string{"CAESAR_DEFAULT_THRESHOLD": "1.5"}},
		{"zero cache size", map[string]string{"CAESAR_VALIDATOR_CACHE_SIZE": "0"}},
		{"unknown log format", map[string]string{"CAESAR_LOG_FORMAT": "xml"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := config.Parse(tt.vars)
			require.ErrorIs(t, err, config.ErrInvalidConfig)
		})
	}
}

func TestParse_Malformed(t *testing.T) {
	t.Parallel()

	_, err := config.Parse(map[string]string{"CAESAR_VALIDATOR_CACHE_SIZE": "many"})
	require.ErrorIs(t, err, config.ErrParsingConfig)
}

func TestLoad_EnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.env")
	require.NoError(t, os.WriteFile(path, []byte("CAESAR_LEXICON_SOURCE=file\nCAESAR_LEXICON_PATH=/tmp/words.txt\n"), 0o600))

	// godotenv never overrides variables that are already set.
	t.Setenv("CAESAR_LEXICON_SOURCE", "")
	t.Setenv("CAESAR_LEXICON_PATH", "")
	require.NoError(t, os.Unsetenv("CAESAR_LEXICON_SOURCE"))
	require.NoError(t, os.Unsetenv("CAESAR_LEXICON_PATH"))

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, config.SourceFile, cfg.LexiconSource)
	assert.Equal(t, "/tmp/words.txt", cfg.LexiconPath)
}

func TestLoad_MissingEnvFile(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "absent.env"))
	require.ErrorIs(t, err, config.ErrLoadingEnvFile)
}

package frequency

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"gopkg.in/yaml.v3"
)

type yamlTable struct {
	Language    string             `yaml:"language"`
	Frequencies map[string]float64 `yaml:"frequencies"`
}

// LoadYAML decodes a table from r. The document has a language name and a
// frequencies mapping of single letters to values.
func LoadYAML(ctx context.Context, r io.Reader) (Table, error) {
	if err := ctx.Err(); err != nil {
		return Table{}, errors.Join(ErrParsingCancelled, err)
	}

	var doc yamlTable
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		return Table{}, errors.Join(ErrFailedToParseYAML, err)
	}

	freqs := make(map[rune]float64, len(doc.Frequencies))
	for key, f := range doc.Frequencies {
		key = strings.ToLower(strings.TrimSpace(key))
		if utf8.RuneCountInString(key) != 1 {
			return Table{}, fmt.Errorf("%w: key %q is not a single letter", ErrInvalidTable, key)
		}
		r, _ := utf8.DecodeRuneInString(key)
		if _, dup := freqs[r]; dup {
			return Table{}, fmt.Errorf("%w: letter %q listed twice", ErrInvalidTable, key)
		}
		freqs[r] = f
	}

	language := doc.Language
	if language == "" {
		language = "custom"
	}
	return New(language, freqs)
}

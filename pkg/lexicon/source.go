package lexicon

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
)

// Source produces a lexicon from some backing store.
type Source interface {
	// Name identifies the source. Sources with equal names are expected to
	// yield the same words, which lets callers cache by name.
	Name() string

	// Load reads and parses the word list.
	Load(ctx context.Context) (*Lexicon, error)
}

type embeddedSource struct{}

// Embedded returns the source for the built-in English corpus.
func Embedded() Source {
	return embeddedSource{}
}

func (embeddedSource) Name() string { return "embedded:english" }

func (embeddedSource) Load(ctx context.Context) (*Lexicon, error) {
	return English(ctx)
}

// FileSource reads a word list from a file on the local filesystem.
type FileSource struct {
	path string
}

// NewFileSource returns a source for the word file at path.
func NewFileSource(path string) *FileSource {
	return &FileSource{path: path}
}

func (s *FileSource) Name() string { return "file:" + s.path }

// Load opens and parses the file.
func (s *FileSource) Load(ctx context.Context) (*Lexicon, error) {
	f, err := os.Open(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrSourceNotFound, s.path)
		}
		return nil, errors.Join(ErrFailedToLoad, err)
	}
	defer f.Close()

	return Parse(ctx, f)
}

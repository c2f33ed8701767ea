package nb2html

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/alnah/go-nb2html/internal/notebook"
)

// ParseNotebook decodes notebook JSON. Only bytes that are not a JSON object
// are rejected; missing or malformed keys decode to empty values.
func ParseNotebook(data []byte) (*Notebook, error) {
	doc, err := notebook.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidNotebook, err)
	}
	return doc, nil
}

// LoadNotebook reads and decodes the notebook at path.
// A missing file returns ErrNotebookNotFound.
func LoadNotebook(path string) (*Notebook, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- user-provided path
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w at %s", ErrNotebookNotFound, path)
		}
		return nil, fmt.Errorf("reading notebook %s: %w", path, err)
	}
	doc, err := ParseNotebook(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return doc, nil
}

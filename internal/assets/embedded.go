package assets

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"path"
)

//go:embed styles/*.css templates/*/*.html
var embedded embed.FS

// EmbeddedLoader serves the built-in assets.
type EmbeddedLoader struct {
	fsys fs.FS
}

// NewEmbeddedLoader creates an EmbeddedLoader.
func NewEmbeddedLoader() *EmbeddedLoader {
	return &EmbeddedLoader{fsys: embedded}
}

// LoadStyle returns a built-in stylesheet.
func (e *EmbeddedLoader) LoadStyle(name string) (string, error) {
	if err := ValidateAssetName(name); err != nil {
		return "", err
	}
	b, err := fs.ReadFile(e.fsys, path.Join("styles", name+".css"))
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrStyleNotFound, name)
	}
	return string(b), nil
}

// LoadTemplateSet returns a built-in template set.
func (e *EmbeddedLoader) LoadTemplateSet(name string) (*TemplateSet, error) {
	if err := ValidateAssetName(name); err != nil {
		return nil, err
	}
	dir := path.Join("templates", name)
	return readTemplateSet(name, func(file string) ([]byte, error) {
		return fs.ReadFile(e.fsys, path.Join(dir, file))
	})
}

// Styles lists the built-in style names.
func (e *EmbeddedLoader) Styles() []string {
	matches, _ := fs.Glob(e.fsys, "styles/*.css")
	names := make([]string, 0, len(matches))
	for _, m := range matches {
		base := path.Base(m)
		names = append(names, base[:len(base)-len(".css")])
	}
	return names
}

// readTemplateSet reads every template of a set through read. A set with no
// files is not found; a set with some files is incomplete.
func readTemplateSet(name string, read func(file string) ([]byte, error)) (*TemplateSet, error) {
	files := []string{pageTemplateFile, chartTemplateFile}
	contents := make([]string, len(files))
	var missing []string
	for i, file := range files {
		b, err := read(file)
		switch {
		case errors.Is(err, fs.ErrNotExist):
			missing = append(missing, file)
		case err != nil:
			return nil, fmt.Errorf("template set %q: %s: %w", name, file, err)
		default:
			contents[i] = string(b)
		}
	}
	if len(missing) == len(files) {
		return nil, fmt.Errorf("%w: %q", ErrTemplateSetNotFound, name)
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: %q missing %s", ErrIncompleteTemplateSet, name, missing[0])
	}
	return &TemplateSet{Name: name, Page: contents[0], Chart: contents[1]}, nil
}

var _ AssetLoader = (*EmbeddedLoader)(nil)

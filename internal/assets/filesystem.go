package assets

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// FilesystemLoader loads assets from a directory on disk.
type FilesystemLoader struct {
	basePath string
}

// NewFilesystemLoader creates a FilesystemLoader rooted at basePath.
// Returns ErrInvalidBasePath unless basePath is a readable directory.
func NewFilesystemLoader(basePath string) (*FilesystemLoader, error) {
	if basePath == "" {
		return nil, fmt.Errorf("%w: empty path", ErrInvalidBasePath)
	}
	abs, err := filepath.Abs(basePath)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidBasePath, err)
	}
	if real, err := filepath.EvalSymlinks(abs); err == nil {
		abs = real
	}
	info, err := os.Stat(abs)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidBasePath, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: not a directory: %s", ErrInvalidBasePath, abs)
	}
	if _, err := os.ReadDir(abs); err != nil {
		return nil, fmt.Errorf("%w: cannot read directory: %v", ErrInvalidBasePath, err)
	}
	return &FilesystemLoader{basePath: abs}, nil
}

// LoadStyle reads {basePath}/styles/{name}.css.
func (f *FilesystemLoader) LoadStyle(name string) (string, error) {
	if err := ValidateAssetName(name); err != nil {
		return "", err
	}
	b, err := f.read(filepath.Join("styles", name+".css"))
	if os.IsNotExist(err) {
		return "", fmt.Errorf("%w: %q", ErrStyleNotFound, name)
	}
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// LoadTemplateSet reads {basePath}/templates/{name}/{page,chart}.html.
func (f *FilesystemLoader) LoadTemplateSet(name string) (*TemplateSet, error) {
	if err := ValidateAssetName(name); err != nil {
		return nil, err
	}
	dir := filepath.Join("templates", name)
	return readTemplateSet(name, func(file string) ([]byte, error) {
		return f.read(filepath.Join(dir, file))
	})
}

// read loads a file relative to basePath after checking that its resolved
// location stays inside basePath.
func (f *FilesystemLoader) read(rel string) ([]byte, error) {
	p := filepath.Join(f.basePath, rel)
	if real, err := filepath.EvalSymlinks(p); err == nil {
		p = real
	}
	if !strings.HasPrefix(p, f.basePath+string(filepath.Separator)) {
		return nil, fmt.Errorf("%w: %s", ErrPathTraversal, rel)
	}
	b, err := os.ReadFile(p) // #nosec G304 -- contained in basePath
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("%w: %v", ErrAssetRead, err)
	}
	return b, err
}

var _ AssetLoader = (*FilesystemLoader)(nil)

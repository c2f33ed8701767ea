package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alnah/go-nb2html/internal/fileutil"
)

// AppName names the per-user configuration directory.
const AppName = "go-nb2html"

// LoadConfig loads configuration from a file path or a config name.
// A value containing a path separator is a path. A name is looked up as
// <name>.yaml or <name>.yml in the working directory, then in the user
// config directory. Empty page.plotlyURL, style and markdown.engine take
// their DefaultConfig values.
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	path := nameOrPath
	if !fileutil.IsFilePath(nameOrPath) {
		var err error
		if path, err = resolveConfigPath(nameOrPath); err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(path) // #nosec G304 -- user-selected config
	if err != nil {
		if os.IsNotExist(err) {
			return nil, &NotFoundError{Searched: []string{path}}
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := &Config{}
	if err := decodeStrict(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrConfigParse, path, err)
	}
	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// resolveConfigPath searches for name in the working directory, then in
// the user config directory.
func resolveConfigPath(name string) (string, error) {
	dirs := []string{""}
	if userDir, err := os.UserConfigDir(); err == nil {
		dirs = append(dirs, filepath.Join(userDir, AppName))
	}

	var tried []string
	for _, dir := range dirs {
		for _, ext := range []string{".yaml", ".yml"} {
			p := filepath.Join(dir, name+ext)
			if fileutil.FileExists(p) {
				return p, nil
			}
			tried = append(tried, p)
		}
	}
	return "", &NotFoundError{Searched: tried}
}

// NotFoundError lists the paths searched for a config file.
// It matches ErrConfigNotFound with errors.Is.
type NotFoundError struct {
	Searched []string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%v: tried %s", ErrConfigNotFound, strings.Join(e.Searched, ", "))
}

func (e *NotFoundError) Unwrap() error {
	return ErrConfigNotFound
}

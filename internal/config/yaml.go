package config

import (
	"errors"
	"fmt"

	"github.com/goccy/go-yaml"
)

// MaxInputSize limits configuration files to 1 MiB.
var MaxInputSize = 1 << 20

// Sentinel errors for YAML decoding.
var (
	ErrEmptyInput    = errors.New("config data is empty")
	ErrInputTooLarge = errors.New("config data exceeds maximum size")
)

// decodeStrict decodes data into v and rejects keys v does not declare.
func decodeStrict(data []byte, v any) error {
	if len(data) == 0 {
		return ErrEmptyInput
	}
	if len(data) > MaxInputSize {
		return fmt.Errorf("%w: %d bytes (max %d)", ErrInputTooLarge, len(data), MaxInputSize)
	}
	return yaml.UnmarshalWithOptions(data, v, yaml.Strict())
}

// Marshal encodes cfg as YAML.
func Marshal(cfg *Config) ([]byte, error) {
	return yaml.Marshal(cfg)
}

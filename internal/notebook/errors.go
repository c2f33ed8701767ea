package notebook

import "errors"

// Sentinel errors for notebook decoding.
var (
	ErrInvalidJSON = errors.New("notebook is not valid JSON")
	ErrNotObject   = errors.New("notebook root is not an object")
)

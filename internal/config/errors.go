package config

import "errors"

// ErrInvalidConfig is returned (wrapped) when the merged configuration
// contains a value the application cannot run with.
var ErrInvalidConfig = errors.New("invalid configuration")

package config

import "errors"

// ErrInvalidConfig wraps every validation failure
var ErrInvalidConfig = errors.New("invalid config")

package errorz

import "errors"

var (
	ErrInvalidConfig = errors.New("invalid qr config")
	ErrCacheMiss     = errors.New("cache miss")
)

package redis

import (
	"errors"
	"time"
)

// DefaultConnectTimeout is the maximum time to wait for the initial connection.
const DefaultConnectTimeout = 5 * time.Second

var (
	// ErrHostRequired is returned when the host is missing from config.
	ErrHostRequired = errors.New("redis: host is required")
	// ErrInvalidPort is returned when the port is out of range.
	ErrInvalidPort = errors.New("redis: port must be between 1 and 65535")
)

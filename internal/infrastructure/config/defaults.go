package config

import "time"

const (
	DefaultPGMaxConns        = 5
	DefaultPGMinConns        = 1
	DefaultPGMaxConnIdle     = 2 * time.Minute
	DefaultConnectRetryFor   = 15 * time.Second
	DefaultReadHeaderTimeout = 5 * time.Second
)

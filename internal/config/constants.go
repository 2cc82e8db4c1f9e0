package config

import "time"

// Defaults applied when the environment leaves a setting unset
const (
	DefaultPort        = "8080"
	DefaultLogLevel    = "info"
	DefaultLogFormat   = "text"
	DefaultServiceName = "arclab"
	DefaultVersion     = "dev"
	DefaultEnvironment = "dev"
	DefaultDBName      = "arclab"

	DefaultDBMaxConns        = 20
	DefaultDBMaxConnIdleTime = 5 * time.Minute
	DefaultDBMaxConnLifetime = 30 * time.Minute

	DefaultCatalogCacheTTL = 5 * time.Minute
)

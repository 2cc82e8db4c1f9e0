package logger

import (
	"log/slog"
	"strings"
)

// Config represents logger configuration
type Config struct {
	Level       string // "debug", "info", "warn", "error"
	Format      string // "json", "text"
	ServiceName string
	Version     string
	Environment string // "dev", "test", "prod"
	AddSource   bool   // Include source file/line in logs
}

// NewConfig creates a config from explicit values (recommended)
func NewConfig(level, format, serviceName, version, environment string, addSource bool) Config {
	return Config{
		Level:       level,
		Format:      format,
		ServiceName: serviceName,
		Version:     version,
		Environment: environment,
		AddSource:   addSource,
	}
}

// ServerConfig builds the service logger config. Source locations are
// only added in development environments.
func ServerConfig(level, format, serviceName, version, environment string) Config {
	return NewConfig(level, format, serviceName, version, environment, IsDevelopment(environment))
}

// CLIConfig is text output for the operator CLI, at debug when verbose
func CLIConfig(verbose bool) Config {
	level := LogLevelInfo
	if verbose {
		level = LogLevelDebug
	}
	return Config{Level: level, Format: LogFormatText, ServiceName: CLIServiceName}
}

// IsDevelopment reports whether env names a development environment
func IsDevelopment(env string) bool {
	switch strings.ToLower(env) {
	case EnvironmentDev, EnvironmentDevelopment:
		return true
	}
	return false
}

// LogLevel converts string level to slog.Level
func (c Config) LogLevel() slog.Level {
	switch strings.ToLower(c.Level) {
	case LogLevelDebug:
		return slog.LevelDebug
	case LogLevelWarn, LogLevelWarning:
		return slog.LevelWarn
	case LogLevelError:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// IsJSON returns true if format is JSON
func (c Config) IsJSON() bool {
	return strings.ToLower(c.Format) == LogFormatJSON
}

// BaseAttributes returns the attributes every record carries. Empty
// values are left out.
func (c Config) BaseAttributes() []slog.Attr {
	attrs := make([]slog.Attr, 0, 3)
	for _, kv := range [...]struct{ key, value string }{
		{AttrKeyService, c.ServiceName},
		{AttrKeyVersion, c.Version},
		{AttrKeyEnvironment, c.Environment},
	} {
		if kv.value != "" {
			attrs = append(attrs, slog.String(kv.key, kv.value))
		}
	}
	return attrs
}

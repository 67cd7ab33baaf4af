// Package config loads detector configuration from defaults, an optional
// YAML file and DETECTOR_ environment variables, in that order of precedence.
package config

import (
	"errors"
	"fmt"
	"os"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"

	"github.com/InfraSecConsult/surveillance-detector-go/internal/logging"
)

// EnvPrefix is stripped from environment variables before mapping them to keys.
// DETECTOR_CORRELATION_INCIDENT_GAP sets correlation.incident_gap.
const EnvPrefix = "DETECTOR_"

// ConfigPathEnvVar names a config file when --config is not given
const ConfigPathEnvVar = "DETECTOR_CONFIG"

// Config is the complete detector configuration
type Config struct {
	Logging     LoggingConfig     `koanf:"logging"`
	Database    DatabaseConfig    `koanf:"database"`
	Metrics     MetricsConfig     `koanf:"metrics"`
	Engine      EngineConfig      `koanf:"engine"`
	Handlers    HandlersConfig    `koanf:"handlers"`
	Correlation CorrelationConfig `koanf:"correlation"`
}

// LoggingConfig selects log level and output format
type LoggingConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
	Caller bool   `koanf:"caller"`
}

// DatabaseConfig locates the SQLite capture store
type DatabaseConfig struct {
	Path string `koanf:"path" validate:"required"`
}

// MetricsConfig controls the prometheus endpoint. An empty address disables it.
type MetricsConfig struct {
	Addr string `koanf:"addr" validate:"omitempty,hostname_port"`
	Path string `koanf:"path"`
}

// EngineConfig tunes cross-protocol rescoring
type EngineConfig struct {
	CrossProtocolWindow time.Duration `koanf:"cross_protocol_window"`
	RecentDetections    int           `koanf:"recent_detections" validate:"gte=1"`
}

// HandlersConfig holds what the protocol handlers treat as benign
type HandlersConfig struct {
	// Allowlist holds MAC addresses, SSIDs or BLE names of known devices
	Allowlist         []string   `koanf:"allowlist"`
	SafeZones         []SafeZone `koanf:"safe_zones" validate:"dive"`
	SafeZoneTolerance float64    `koanf:"safe_zone_tolerance"`
	HistoryKeys       int        `koanf:"history_keys" validate:"gte=1"`
}

// SafeZone is a place such as home or office where stationary sightings are expected
type SafeZone struct {
	Latitude  float64 `koanf:"lat" validate:"latitude"`
	Longitude float64 `koanf:"lon" validate:"longitude"`
}

// CorrelationConfig tunes incident grouping and the aggregate assessment
type CorrelationConfig struct {
	Window            time.Duration `koanf:"window"`
	IncidentGap       time.Duration `koanf:"incident_gap"`
	LocationTolerance float64       `koanf:"location_tolerance"`
	RecentWindow      time.Duration `koanf:"recent_window"`
}

// Default returns the built-in configuration
func Default() *Config {
	return &Config{
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
		Database: DatabaseConfig{
			Path: "detector.db",
		},
		Metrics: MetricsConfig{
			Path: "/metrics",
		},
		Engine: EngineConfig{
			CrossProtocolWindow: 5 * time.Minute,
			RecentDetections:    512,
		},
		Handlers: HandlersConfig{
			SafeZoneTolerance: 0.0005,
			HistoryKeys:       1024,
		},
		Correlation: CorrelationConfig{
			Window:            30 * time.Minute,
			IncidentGap:       5 * time.Minute,
			LocationTolerance: 0.0005,
			RecentWindow:      5 * time.Minute,
		},
	}
}

// LoggingSettings converts the logging section for logging.Init
func (c *Config) LoggingSettings() logging.Config {
	return logging.Config{
		Level:  c.Logging.Level,
		Format: c.Logging.Format,
		Caller: c.Logging.Caller,
		Output: os.Stderr,
	}
}

// Load layers defaults, the YAML file at path and the environment. An empty
// path falls back to $DETECTOR_CONFIG; when that is unset too no file is read.
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(structs.Provider(Default(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	if path == "" {
		path = os.Getenv(ConfigPathEnvVar)
	}
	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", path, err)
		}
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", envTransformFunc), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return cfg, nil
}

// envTransformFunc maps DETECTOR_SECTION_SOME_KEY to section.some_key.
// DETECTOR_CONFIG names the file itself and is dropped.
func envTransformFunc(key string) string {
	if key == ConfigPathEnvVar {
		return ""
	}
	key = strings.ToLower(strings.TrimPrefix(key, EnvPrefix))
	section, rest, ok := strings.Cut(key, "_")
	if !ok || rest == "" {
		return ""
	}
	return section + "." + rest
}

// validate checks the struct tags and reports fields by their koanf key
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("koanf"), ",")
		if name == "" {
			return f.Name
		}
		return name
	})
	return v
}

// Validate checks ranges and enumerations. All problems are reported together.
func (c *Config) Validate() error {
	var errs []error

	if err := validate.Struct(c); err != nil {
		var fieldErrs validator.ValidationErrors
		if !errors.As(err, &fieldErrs) {
			return err
		}
		for _, fe := range fieldErrs {
			key := strings.TrimPrefix(fe.Namespace(), "Config.")
			errs = append(errs, fmt.Errorf("%s failed %s check (value %v)", key, fe.ActualTag(), fe.Value()))
		}
	}

	switch strings.ToLower(c.Logging.Format) {
	case "json", "console":
	default:
		errs = append(errs, fmt.Errorf("logging.format must be json or console, got %q", c.Logging.Format))
	}
	switch strings.ToLower(c.Logging.Level) {
	case "trace", "debug", "info", "warn", "warning", "error", "fatal", "disabled", "off":
	default:
		errs = append(errs, fmt.Errorf("logging.level %q is not a known level", c.Logging.Level))
	}

	if c.Metrics.Addr != "" && !strings.HasPrefix(c.Metrics.Path, "/") {
		errs = append(errs, fmt.Errorf("metrics.path must start with '/', got %q", c.Metrics.Path))
	}

	if c.Engine.CrossProtocolWindow <= 0 {
		errs = append(errs, errors.New("engine.cross_protocol_window must be positive"))
	}

	if c.Handlers.SafeZoneTolerance <= 0 || c.Handlers.SafeZoneTolerance > 1 {
		errs = append(errs, fmt.Errorf("handlers.safe_zone_tolerance must be within (0,1] degrees, got %f",
			c.Handlers.SafeZoneTolerance))
	}

	if c.Correlation.Window <= 0 {
		errs = append(errs, errors.New("correlation.window must be positive"))
	}
	if c.Correlation.IncidentGap <= 0 {
		errs = append(errs, errors.New("correlation.incident_gap must be positive"))
	}
	if c.Correlation.RecentWindow <= 0 {
		errs = append(errs, errors.New("correlation.recent_window must be positive"))
	}
	if c.Correlation.LocationTolerance < 0 || c.Correlation.LocationTolerance > 1 {
		errs = append(errs, fmt.Errorf("correlation.location_tolerance must be within [0,1] degrees, got %f",
			c.Correlation.LocationTolerance))
	}

	return errors.Join(errs...)
}

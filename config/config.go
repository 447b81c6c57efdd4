// Package config provides configuration management for the library catalog demo.
//
// Config file locations (priority order):
//  1. $CATALOG_CONFIG (must name an existing file when set)
//  2. ./catalog.yaml
//
// Without a config file the defaults from DefaultConfig are used.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/AntonStoeckl/library-catalog-go/activitylog"
	"github.com/AntonStoeckl/library-catalog-go/catalog"
)

const (
	defaultServiceName    = "library-catalog"
	defaultServiceVersion = "dev"
	defaultMetricInterval = 5 * time.Second
	defaultTraceEndpoint  = "localhost:4317"
	defaultMetricEndpoint = "localhost:4317"
	defaultLogEndpoint    = "localhost:4317"
)

var ErrInvalidConfig = errors.New("invalid config")

// Config is the root of the YAML config file.
type Config struct {
	Logging       LoggingConfig       `yaml:"logging"`
	ActivityLog   ActivityLogConfig   `yaml:"activity_log"`
	Observability ObservabilityConfig `yaml:"observability"`
	SeedBooks     []SeedBook          `yaml:"seed_books"`
}

// LoggingConfig configures the slog handler.
type LoggingConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // text, json
}

// ActivityLogConfig configures the activity log.
type ActivityLogConfig struct {
	TimestampLayout string `yaml:"timestamp_layout"`
	InitialCapacity int    `yaml:"initial_capacity"`
}

// ObservabilityConfig configures the OpenTelemetry providers.
type ObservabilityConfig struct {
	Enabled        bool          `yaml:"enabled"`
	ServiceName    string        `yaml:"service_name"`
	ServiceVersion string        `yaml:"service_version"`
	Exporter       string        `yaml:"exporter"` // stdout, otlp
	TraceEndpoint  string        `yaml:"trace_endpoint"`
	MetricEndpoint string        `yaml:"metric_endpoint"`
	LogEndpoint    string        `yaml:"log_endpoint"`
	MetricInterval time.Duration `yaml:"metric_interval"`
}

// SeedBook is a book the demo adds to the catalog at startup.
type SeedBook struct {
	ID              int    `yaml:"id"`
	Title           string `yaml:"title"`
	Author          string `yaml:"author"`
	PublicationYear int    `yaml:"publication_year"`
	ISBN            string `yaml:"isbn"`
}

// Load finds and loads the config file, or returns defaults if none is found.
// It also returns the path the config was loaded from, which is empty for the defaults.
func Load() (*Config, string, error) {
	path, err := FindConfigPath()
	if err != nil {
		return nil, "", err
	}

	if path == "" {
		return DefaultConfig(), "", nil
	}

	return LoadFromPath(path)
}

// LoadFromPath loads the config from a specific path.
func LoadFromPath(path string) (*Config, string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, path, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, path, fmt.Errorf("parse config: %w", err)
	}

	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, path, err
	}

	return &cfg, path, nil
}

// DefaultConfig returns the config used when no config file exists.
func DefaultConfig() *Config {
	cfg := &Config{
		SeedBooks: []SeedBook{
			{ID: 1, Title: "War and Peace", Author: "L.N. Tolstoy", PublicationYear: 1869, ISBN: "978-5-17-090335-2"},
			{ID: 2, Title: "Crime and Punishment", Author: "F.M. Dostoevsky", PublicationYear: 1866, ISBN: "978-5-17-090336-9"},
			{ID: 3, Title: "Anna Karenina", Author: "L.N. Tolstoy", PublicationYear: 1877, ISBN: "978-5-17-090337-6"},
		},
	}

	cfg.applyDefaults()

	return cfg
}

// applyDefaults fills in missing values with defaults.
func (c *Config) applyDefaults() {
	if c.Logging.Level == "" {
		c.Logging.Level = LevelInfo
	}
	if c.Logging.Format == "" {
		c.Logging.Format = FormatText
	}
	if c.ActivityLog.TimestampLayout == "" {
		c.ActivityLog.TimestampLayout = activitylog.DefaultTimestampLayout
	}
	if c.Observability.ServiceName == "" {
		c.Observability.ServiceName = defaultServiceName
	}
	if c.Observability.ServiceVersion == "" {
		c.Observability.ServiceVersion = defaultServiceVersion
	}
	if c.Observability.Exporter == "" {
		c.Observability.Exporter = ExporterStdout
	}
	if c.Observability.TraceEndpoint == "" {
		c.Observability.TraceEndpoint = defaultTraceEndpoint
	}
	if c.Observability.MetricEndpoint == "" {
		c.Observability.MetricEndpoint = defaultMetricEndpoint
	}
	if c.Observability.LogEndpoint == "" {
		c.Observability.LogEndpoint = defaultLogEndpoint
	}
	if c.Observability.MetricInterval <= 0 {
		c.Observability.MetricInterval = defaultMetricInterval
	}
}

// Validate reports every invalid setting at once.
func (c *Config) Validate() error {
	var errs []error

	if _, err := ParseLevel(c.Logging.Level); err != nil {
		errs = append(errs, err)
	}

	switch c.Logging.Format {
	case FormatText, FormatJSON:
	default:
		errs = append(errs, fmt.Errorf("%w: %q", ErrUnknownLogFormat, c.Logging.Format))
	}

	switch c.Observability.Exporter {
	case ExporterStdout, ExporterOTLP:
	default:
		errs = append(errs, fmt.Errorf("%w: %q", ErrUnknownExporter, c.Observability.Exporter))
	}

	if c.ActivityLog.InitialCapacity < 0 {
		errs = append(errs, fmt.Errorf("activity_log.initial_capacity must not be negative, got %d", c.ActivityLog.InitialCapacity))
	}

	if len(errs) > 0 {
		return errors.Join(append([]error{ErrInvalidConfig}, errs...)...)
	}

	return nil
}

// ActivityLogOptions translates the activity log section into activitylog options.
func (c *Config) ActivityLogOptions() []activitylog.Option {
	return []activitylog.Option{
		activitylog.WithTimestampLayout(c.ActivityLog.TimestampLayout),
		activitylog.WithInitialCapacity(c.ActivityLog.InitialCapacity),
	}
}

// Book converts the seed entry into a catalog book.
func (b SeedBook) Book() catalog.Book {
	return catalog.Book{
		ID:              b.ID,
		Title:           b.Title,
		Author:          b.Author,
		PublicationYear: b.PublicationYear,
		ISBN:            b.ISBN,
	}
}

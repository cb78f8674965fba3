package config

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
)

const (
	StorageRedis    = "redis"
	StoragePostgres = "postgres"
	StorageSQLite   = "sqlite"
	StorageMemory   = "memory"
)

var storageBackends = []string{StorageRedis, StoragePostgres, StorageSQLite, StorageMemory}

type Config struct {
	Host        string `toml:"host"`
	Port        int    `toml:"port"`
	Environment string `toml:"environment"`
	// prometheus metrics
	PrometheusMetricsHost string `toml:"prometheus_metrics_host"`
	PrometheusMetricsPort string `toml:"prometheus_metrics_port"`
	// logging
	LogLevel      string `toml:"log_level"`
	LogsPath      string `toml:"logs_path"`
	LogToStdout   bool   `toml:"log_to_stdout"`
	SentryEnabled bool   `toml:"sentry_enabled"`
	// storage
	StorageBackend  string `toml:"storage_backend"`
	RedisHost       string `toml:"redis_host"`
	RedisPort       string `toml:"redis_port"`
	RedisNamespace  string `toml:"redis_namespace"`
	PostgresHost    string `toml:"postgres_host"`
	PostgresPort    string `toml:"postgres_port"`
	PostgresDBName  string `toml:"postgres_db_name"`
	SQLitePath      string `toml:"sqlite_path"`
	ReadCacheSizeMB int    `toml:"read_cache_size_mb"` // 0 disables the cache
	// tracker
	AgendaWindowDays      int    `toml:"agenda_window_days"`
	ImportRateLimitPerMin int    `toml:"import_rate_limit_per_min"`
	TimeZone              string `toml:"time_zone"`
}

type Toml struct {
	Development *Config
	Production  *Config
}

func (t *Toml) Get(env string) (*Config, error) {
	var cfg *Config
	switch strings.ToLower(env) {
	case "dev", "development":
		cfg = t.Development
	case "prod", "production":
		cfg = t.Production
	default:
		return nil, fmt.Errorf("unknown env: %s", env)
	}
	if cfg == nil {
		return nil, fmt.Errorf("no config section for env: %s", env)
	}
	return cfg, nil
}

// Load reads the TOML file at path and returns the section for env, defaulted and validated.
func Load(env, path string) (*Config, error) {
	var t Toml
	if _, err := toml.DecodeFile(path, &t); err != nil {
		return nil, fmt.Errorf("decode config [%s]: %w", path, err)
	}
	return fromToml(&t, env)
}

// Parse is Load for an in-memory TOML document.
func Parse(env, data string) (*Config, error) {
	var t Toml
	if _, err := toml.Decode(data, &t); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	return fromToml(&t, env)
}

func fromToml(t *Toml, env string) (*Config, error) {
	cfg, err := t.Get(env)
	if err != nil {
		return nil, err
	}
	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Host == "" {
		c.Host = "localhost"
	}
	if c.Port == 0 {
		c.Port = 9000
	}
	if c.StorageBackend == "" {
		c.StorageBackend = StorageSQLite
	}
	if c.SQLitePath == "" {
		c.SQLitePath = "practicetracker.db"
	}
	if c.RedisPort == "" {
		c.RedisPort = "6379"
	}
	if c.RedisNamespace == "" {
		c.RedisNamespace = "practicetracker"
	}
	if c.PostgresPort == "" {
		c.PostgresPort = "5432"
	}
	if c.AgendaWindowDays == 0 {
		c.AgendaWindowDays = 7
	}
	if c.ImportRateLimitPerMin == 0 {
		c.ImportRateLimitPerMin = 10
	}
	if c.TimeZone == "" {
		c.TimeZone = "Local"
	}
}

func (c *Config) Validate() error {
	var errs []error
	if !slices.Contains(storageBackends, c.StorageBackend) {
		errs = append(errs, fmt.Errorf("unknown storage backend [%s], want one of %v", c.StorageBackend, storageBackends))
	}
	if c.StorageBackend == StorageRedis && c.RedisHost == "" {
		errs = append(errs, errors.New("redis_host is required for the redis backend"))
	}
	if c.StorageBackend == StoragePostgres && (c.PostgresHost == "" || c.PostgresDBName == "") {
		errs = append(errs, errors.New("postgres_host and postgres_db_name are required for the postgres backend"))
	}
	if c.AgendaWindowDays < 1 || c.AgendaWindowDays > 90 {
		errs = append(errs, fmt.Errorf("agenda_window_days must be in 1..90, got %d", c.AgendaWindowDays))
	}
	if c.ReadCacheSizeMB < 0 {
		errs = append(errs, fmt.Errorf("read_cache_size_mb must not be negative, got %d", c.ReadCacheSizeMB))
	}
	if _, err := time.LoadLocation(c.TimeZone); err != nil {
		errs = append(errs, fmt.Errorf("time_zone: %w", err))
	}
	return errors.Join(errs...)
}

// Location is the zone "today" is computed in.
func (c *Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.TimeZone)
	if err != nil {
		return time.Local
	}
	return loc
}

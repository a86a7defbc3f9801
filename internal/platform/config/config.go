package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// EnvPrefix namespaces every environment override, e.g. INSIGHTS_STORE_DRIVER.
const EnvPrefix = "INSIGHTS"

// Store backends.
const (
	StoreMemory   = "memory"
	StoreMongo    = "mongo"
	StorePostgres = "postgres"
)

// Cache backends.
const (
	CacheNone   = "none"
	CacheMemory = "memory"
	CacheRedis  = "redis"
)

// Config is the effective configuration shared by the server and the loader.
type Config struct {
	Addr           string        `mapstructure:"addr"`
	LogLevel       string        `mapstructure:"log_level"`
	LogFormat      string        `mapstructure:"log_format"`
	RequestTimeout time.Duration `mapstructure:"request_timeout"`

	Store     StoreConfig     `mapstructure:"store"`
	Mongo     MongoConfig     `mapstructure:"mongo"`
	Postgres  PostgresConfig  `mapstructure:"postgres"`
	Cache     CacheConfig     `mapstructure:"cache"`
	Redis     RedisConfig     `mapstructure:"redis"`
	RateLimit RateLimitConfig `mapstructure:"ratelimit"`
	Breaker   BreakerConfig   `mapstructure:"breaker"`
	Loader    LoaderConfig    `mapstructure:"loader"`
	S3        S3Config        `mapstructure:"s3"`
}

// StoreConfig selects the record store backend.
type StoreConfig struct {
	Driver string `mapstructure:"driver"`
}

// MongoConfig addresses the collection holding the insight documents.
type MongoConfig struct {
	URI            string        `mapstructure:"uri"`
	Database       string        `mapstructure:"database"`
	Collection     string        `mapstructure:"collection"`
	ConnectTimeout time.Duration `mapstructure:"connect_timeout"`
}

// PostgresConfig addresses the JSONB table holding the insight documents.
type PostgresConfig struct {
	DSN          string `mapstructure:"dsn"`
	Table        string `mapstructure:"table"`
	MaxOpenConns int    `mapstructure:"max_open_conns"`
}

// CacheConfig selects the optional view cache.
type CacheConfig struct {
	Driver string        `mapstructure:"driver"`
	TTL    time.Duration `mapstructure:"ttl"`
}

// RedisConfig holds Redis connection settings.
type RedisConfig struct {
	URL          string        `mapstructure:"url"`
	PoolSize     int           `mapstructure:"pool_size"`
	MinIdleConns int           `mapstructure:"min_idle_conns"`
	DialTimeout  time.Duration `mapstructure:"dial_timeout"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
}

// RateLimitConfig configures the per-client token bucket. RPS <= 0 disables it.
type RateLimitConfig struct {
	RPS   float64 `mapstructure:"rps"`
	Burst int     `mapstructure:"burst"`
}

// BreakerConfig configures the circuit breaker guarding store calls.
type BreakerConfig struct {
	Failures    uint32        `mapstructure:"failures"`
	OpenTimeout time.Duration `mapstructure:"open_timeout"`
}

// LoaderConfig names the default load source.
type LoaderConfig struct {
	Source string `mapstructure:"source"`
}

// S3Config configures the s3:// loader source.
type S3Config struct {
	Region    string `mapstructure:"region"`
	Endpoint  string `mapstructure:"endpoint"`
	PathStyle bool   `mapstructure:"path_style"`
}

// Durations are registered as strings so printed settings stay readable.
var defaults = map[string]any{
	"addr":                    ":5000",
	"log_level":               "info",
	"log_format":              "json",
	"request_timeout":         "30s",
	"store.driver":            StoreMongo,
	"mongo.uri":               "mongodb://localhost:27017",
	"mongo.database":          "insightsdb",
	"mongo.collection":        "insights",
	"mongo.connect_timeout":   "10s",
	"postgres.dsn":            "",
	"postgres.table":          "insights",
	"postgres.max_open_conns": 10,
	"cache.driver":            CacheNone,
	"cache.ttl":               "1m",
	"redis.url":               "redis://localhost:6379/0",
	"redis.pool_size":         10,
	"redis.min_idle_conns":    2,
	"redis.dial_timeout":      "5s",
	"redis.read_timeout":      "3s",
	"redis.write_timeout":     "3s",
	"ratelimit.rps":           0,
	"ratelimit.burst":         20,
	"breaker.failures":        5,
	"breaker.open_timeout":    "30s",
	"loader.source":           "jsondata.json",
	"s3.region":               "us-east-1",
	"s3.endpoint":             "",
	"s3.path_style":           false,
}

// NewViper returns a viper instance with defaults and INSIGHTS_ environment
// overrides applied. When file is non-empty it is read as YAML and must exist.
func NewViper(file string) (*viper.Viper, error) {
	v := viper.New()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if file != "" {
		v.SetConfigFile(file)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", file, err)
		}
	}
	return v, nil
}

// Load builds the effective configuration from defaults, the optional YAML
// file and the environment.
func Load(file string) (Config, error) {
	v, err := NewViper(file)
	if err != nil {
		return Config{}, err
	}
	return Decode(v)
}

// Decode unmarshals and validates the settings held by v.
func Decode(v *viper.Viper) (Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects unknown backends and incomplete backend settings.
func (c Config) Validate() error {
	switch c.Store.Driver {
	case StoreMemory:
	case StoreMongo:
		if c.Mongo.URI == "" || c.Mongo.Database == "" || c.Mongo.Collection == "" {
			return fmt.Errorf("store.driver %q requires mongo.uri, mongo.database and mongo.collection", StoreMongo)
		}
	case StorePostgres:
		if c.Postgres.DSN == "" {
			return fmt.Errorf("store.driver %q requires postgres.dsn", StorePostgres)
		}
	default:
		return fmt.Errorf("unknown store.driver %q", c.Store.Driver)
	}

	switch c.Cache.Driver {
	case CacheNone, CacheMemory:
	case CacheRedis:
		if c.Redis.URL == "" {
			return fmt.Errorf("cache.driver %q requires redis.url", CacheRedis)
		}
	default:
		return fmt.Errorf("unknown cache.driver %q", c.Cache.Driver)
	}

	switch strings.ToLower(c.LogFormat) {
	case "json", "text":
	default:
		return fmt.Errorf("unknown log_format %q", c.LogFormat)
	}
	return nil
}

package config

import (
	"errors"
	"fmt"
	"log"
	"net/url"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Server struct {
		Port         string        `mapstructure:"port"`
		ReadTimeout  time.Duration `mapstructure:"read_timeout"`
		WriteTimeout time.Duration `mapstructure:"write_timeout"`
	} `mapstructure:"server"`
	Log struct {
		Level string `mapstructure:"level"`
	} `mapstructure:"log"`
	Source struct {
		Backend     string        `mapstructure:"backend"`
		URL         string        `mapstructure:"url"`
		Timeout     time.Duration `mapstructure:"timeout"`
		FailOnError bool          `mapstructure:"fail_on_error"`
	} `mapstructure:"source"`
	Cache struct {
		Backend string        `mapstructure:"backend"`
		TTL     time.Duration `mapstructure:"ttl"`
	} `mapstructure:"cache"`
	Redis struct {
		Host     string `mapstructure:"host"`
		Port     string `mapstructure:"port"`
		Password string `mapstructure:"password"`
		DB       int    `mapstructure:"db"`
	} `mapstructure:"redis"`
	Database struct {
		Host     string `mapstructure:"host"`
		Port     string `mapstructure:"port"`
		User     string `mapstructure:"user"`
		Password string `mapstructure:"password"`
		Name     string `mapstructure:"name"`
		SSLMode  string `mapstructure:"sslmode"`
	} `mapstructure:"database"`
	Pagination struct {
		DefaultPerPage int `mapstructure:"default_per_page"`
		MaxPerPage     int `mapstructure:"max_per_page"`
	} `mapstructure:"pagination"`
}

const (
	SourceHTTP     = "http"
	SourcePostgres = "postgres"

	CacheNone   = "none"
	CacheMemory = "memory"
	CacheRedis  = "redis"
)

const DefaultSourceURL = "https://s3.amazonaws.com/roxiler.com/product_transaction.json"

var AppConfig Config

// LoadConfig loads the configuration into AppConfig and exits on failure.
func LoadConfig(path string) {
	cfg, err := Load(path)
	if err != nil {
		log.Fatalf("Error loading configuration, %s", err)
	}
	AppConfig = cfg
}

// Load reads config.yml from path (if present), a .env file next to it (if present)
// and the environment. Nested keys map to env vars with dots replaced by
// underscores, e.g. SOURCE_URL or CACHE_TTL.
func Load(path string) (Config, error) {
	_ = godotenv.Load(filepath.Join(path, ".env"))

	v := viper.New()
	setDefaults(v)

	v.AddConfigPath(path)
	v.SetConfigName("config")
	v.SetConfigType("yml")

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unable to decode into struct: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", "5000")
	v.SetDefault("server.read_timeout", 10*time.Second)
	v.SetDefault("server.write_timeout", 30*time.Second)
	v.SetDefault("log.level", "info")
	v.SetDefault("source.backend", SourceHTTP)
	v.SetDefault("source.url", DefaultSourceURL)
	v.SetDefault("source.timeout", 10*time.Second)
	v.SetDefault("source.fail_on_error", false)
	v.SetDefault("cache.backend", CacheNone)
	v.SetDefault("cache.ttl", time.Duration(0))
	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", "6379")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", "5432")
	v.SetDefault("database.user", "postgres")
	v.SetDefault("database.password", "")
	v.SetDefault("database.name", "products")
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("pagination.default_per_page", 10)
	v.SetDefault("pagination.max_per_page", 100)
}

// Validate reports every invalid setting at once.
func (c Config) Validate() error {
	var problems []string

	switch c.Source.Backend {
	case SourceHTTP:
		u, err := url.Parse(c.Source.URL)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			problems = append(problems, fmt.Sprintf("invalid source url '%s': must be an absolute http(s) url", c.Source.URL))
		}
	case SourcePostgres:
		if c.Database.Name == "" {
			problems = append(problems, "database name cannot be empty when using the postgres source")
		}
	default:
		problems = append(problems, fmt.Sprintf("invalid source backend '%s': must be one of [%s %s]", c.Source.Backend, SourceHTTP, SourcePostgres))
	}

	if c.Source.Timeout <= 0 {
		problems = append(problems, "source timeout must be positive")
	}

	switch c.Cache.Backend {
	case CacheNone, CacheMemory, CacheRedis:
	default:
		problems = append(problems, fmt.Sprintf("invalid cache backend '%s': must be one of [%s %s %s]", c.Cache.Backend, CacheNone, CacheMemory, CacheRedis))
	}
	if c.Cache.TTL < 0 {
		problems = append(problems, "cache ttl cannot be negative")
	}

	if c.Pagination.DefaultPerPage < 1 {
		problems = append(problems, "pagination default_per_page must be at least 1")
	}
	if c.Pagination.MaxPerPage < c.Pagination.DefaultPerPage {
		problems = append(problems, "pagination max_per_page must not be lower than default_per_page")
	}

	if len(problems) > 0 {
		return fmt.Errorf("invalid configuration: %s", strings.Join(problems, "; "))
	}
	return nil
}

// CacheEnabled reports whether fetch results should be cached at all.
func (c Config) CacheEnabled() bool {
	return c.Cache.Backend != CacheNone && c.Cache.TTL > 0
}

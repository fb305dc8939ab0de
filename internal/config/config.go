package config

import (
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/sirupsen/logrus"
)

const (
	DriverMySQL  = "mysql"
	DriverMemory = "memory"
)

// Config holds everything the server reads from the environment.
type Config struct {
	ServerAddress  string        `envconfig:"SERVER_ADDRESS" default:":9090"`
	ContextTimeout time.Duration `envconfig:"CONTEXT_TIMEOUT" default:"30s"`

	DBHost     string `envconfig:"DATABASE_HOST" default:"127.0.0.1"`
	DBPort     string `envconfig:"DATABASE_PORT" default:"3306"`
	DBUser     string `envconfig:"DATABASE_USER" default:"root"`
	DBPass     string `envconfig:"DATABASE_PASS"`
	DBName     string `envconfig:"DATABASE_NAME" default:"tube"`
	DBLocation string `envconfig:"DATABASE_LOC" default:"UTC"`
	DBMaxRetry int    `envconfig:"DB_MAX_RETRY" default:"10"`

	CacheHost string `envconfig:"CACHE_HOST" default:"127.0.0.1"`
	CachePort string `envconfig:"CACHE_PORT" default:"6379"`
	CachePass string `envconfig:"CACHE_PASS"`
	CacheDB   int    `envconfig:"CACHE_DB" default:"0"`

	BloomFilterSize      uint64        `envconfig:"BLOOM_FILTER_SIZE" default:"10000000"`
	BloomRefreshInterval time.Duration `envconfig:"BLOOM_REFRESH_INTERVAL" default:"1m"`

	// JWTSecret signs bearer tokens. There is no default.
	JWTSecret   string   `envconfig:"JWT_SECRET" required:"true"`
	CORSOrigins []string `envconfig:"CORS_ORIGINS"`

	// StoreDriver selects mysql or the in-process memory store.
	StoreDriver        string `envconfig:"STORE_DRIVER" default:"mysql"`
	// StoreFixtures is a JSON file loaded into the memory store at boot.
	StoreFixtures      string `envconfig:"STORE_FIXTURES"`
	EmptyGraphNotFound bool   `envconfig:"EMPTY_GRAPH_NOT_FOUND" default:"true"`

	LogLevel  string `envconfig:"LOG_LEVEL" default:"info"`
	LogFormat string `envconfig:"LOG_FORMAT" default:"text"`
}

// Load reads .env when present, then the process environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		logrus.Warnf("failed to load .env file: %v", err)
	}

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	cfg.StoreDriver = strings.ToLower(cfg.StoreDriver)
	if cfg.StoreDriver != DriverMySQL && cfg.StoreDriver != DriverMemory {
		return nil, fmt.Errorf("unknown STORE_DRIVER %q", cfg.StoreDriver)
	}
	if strings.TrimSpace(cfg.JWTSecret) == "" {
		return nil, fmt.Errorf("JWT_SECRET must not be empty")
	}
	if cfg.BloomFilterSize == 0 {
		return nil, fmt.Errorf("BLOOM_FILTER_SIZE must be positive")
	}
	return &cfg, nil
}

// DSN builds the go-sql-driver/mysql connection string.
func (c *Config) DSN() string {
	connection := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s", c.DBUser, c.DBPass, c.DBHost, c.DBPort, c.DBName)
	val := url.Values{}
	val.Add("parseTime", "1")
	val.Add("loc", c.DBLocation)
	return fmt.Sprintf("%s?%s", connection, val.Encode())
}

// MigrationDSN is DSN with multi statement support, which golang-migrate needs.
func (c *Config) MigrationDSN() string {
	return c.DSN() + "&multiStatements=true"
}

func (c *Config) CacheAddr() string {
	return c.CacheHost + ":" + c.CachePort
}

// SetupLogger applies LOG_LEVEL and LOG_FORMAT to the standard logrus logger.
func (c *Config) SetupLogger() {
	level, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		logrus.Warnf("invalid LOG_LEVEL %q, using info", c.LogLevel)
		level = logrus.InfoLevel
	}
	logrus.SetLevel(level)
	if c.LogFormat == "json" {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
}

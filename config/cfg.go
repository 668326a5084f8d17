package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/joho/godotenv"
	httpapi "github.com/mamadou288/shop-api/internal/api/http"
	"github.com/mamadou288/shop-api/internal/apisrv/admin"
	"github.com/mamadou288/shop-api/internal/auth/jwt"
	"github.com/mamadou288/shop-api/internal/cache"
	"github.com/mamadou288/shop-api/internal/store"
	"github.com/mamadou288/shop-api/internal/warmup"
	"github.com/mamadou288/shop-api/log"
	"github.com/spf13/viper"
)

// Config represents the global configuration for the service.
type Config struct {
	DB        store.Config   `mapstructure:"db"`
	Logger    log.Config     `mapstructure:"logger"`
	HTTP      httpapi.Config `mapstructure:"http"`
	Auth      jwt.Config     `mapstructure:"auth"`
	Cache     cache.Config   `mapstructure:"cache"`
	Analytics admin.Config   `mapstructure:"analytics"`
	Warmup    warmup.Config  `mapstructure:"warmup"`
}

// LoadConfig loads the configuration from a file and/or environment variables.
// Environment variables take precedence over config file values. A .env file
// in the working directory is loaded first when present.
// Nested keys use double underscore, e.g. DB__DSN for db.dsn; the flat names
// bound in bindEnvVars work too.
func LoadConfig(cfgFile string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %v", err)
	}

	v := viper.New()
	v.SetConfigType("toml")
	setDefaults(v)

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "__", "-", "__"))
	bindEnvVars(v)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
		if err := v.ReadInConfig(); err != nil {
			if !errors.Is(err, fs.ErrNotExist) {
				return nil, fmt.Errorf("failed to read config file: %v", err)
			}
		}
	} else {
		v.SetConfigName("config")
		v.AddConfigPath("./config")
		v.AddConfigPath("$HOME/config/shop-api")
		v.AddConfigPath("/etc/shop-api")
		_ = v.ReadInConfig()
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config into struct: %v", err)
	}

	if config.DB.DSN == "" && strings.EqualFold(config.DB.Driver, store.DriverMySQL) {
		config.DB.DSN = mysqlDSNFromEnv()
	}

	return &config, nil
}

// mysqlDSNFromEnv assembles a DSN from db.* (DigitalOcean) or MYSQL_* variables.
func mysqlDSNFromEnv() string {
	var host, port, user, password, database string
	if dbHost := os.Getenv("db.HOSTNAME"); dbHost != "" {
		host = dbHost
		port = os.Getenv("db.PORT")
		user = os.Getenv("db.USERNAME")
		password = os.Getenv("db.PASSWORD")
		database = os.Getenv("db.DATABASE")
	} else {
		host = os.Getenv("MYSQL_HOST")
		port = os.Getenv("MYSQL_PORT")
		user = os.Getenv("MYSQL_USER")
		password = os.Getenv("MYSQL_PASSWORD")
		database = os.Getenv("MYSQL_DATABASE")
	}

	if host == "" || user == "" || password == "" || database == "" {
		return ""
	}
	if port == "" {
		port = "3306"
	}
	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=true&loc=UTC&tls=custom",
		user, password, host, port, database)
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("db.driver", store.DriverMySQL)
	v.SetDefault("db.automigrate", false)

	v.SetDefault("logger.level", 0)

	v.SetDefault("http.port", "8081")
	v.SetDefault("http.address", "")
	v.SetDefault("http.request_timeout", "30s")
	v.SetDefault("http.rate_limit", 120)

	v.SetDefault("auth.jwt_ttl", "24h")

	v.SetDefault("cache.backend", cache.BackendBunt)
	v.SetDefault("cache.path", ":memory:")
	v.SetDefault("cache.ttl", cache.DefaultTTL.String())
	v.SetDefault("cache.key_prefix", cache.DefaultKeyPrefix)

	v.SetDefault("analytics.timezone", "UTC")
	v.SetDefault("analytics.currency", "EUR")
	v.SetDefault("analytics.language", "fr")

	v.SetDefault("warmup.enabled", false)
	v.SetDefault("warmup.worker_interval", warmup.DefaultConfig().WorkerInterval.String())
}

// bindEnvVars binds flat environment variable names to config keys.
func bindEnvVars(v *viper.Viper) {
	// DB
	v.BindEnv("db.driver", "DB_DRIVER")
	v.BindEnv("db.dsn", "DB_DSN", "MYSQL_DSN")
	v.BindEnv("db.automigrate", "DB_AUTOMIGRATE", "MYSQL_AUTOMIGRATE")
	v.BindEnv("db.max_open_connections", "DB_MAX_OPEN_CONNECTIONS")
	v.BindEnv("db.max_idle_connections", "DB_MAX_IDLE_CONNECTIONS")
	v.BindEnv("db.tls_ca_path", "DB_TLS_CA_PATH", "MYSQL_TLS_CA_PATH")

	// Logger
	v.BindEnv("logger.level", "LOG_LEVEL")
	v.BindEnv("logger.add_source", "LOG_ADD_SOURCE")

	// HTTP
	v.BindEnv("http.port", "HTTP_PORT", "PORT")
	v.BindEnv("http.address", "HTTP_ADDRESS")
	v.BindEnv("http.allowed_origins", "HTTP_ALLOWED_ORIGINS")
	v.BindEnv("http.request_timeout", "HTTP_REQUEST_TIMEOUT")
	v.BindEnv("http.rate_limit", "HTTP_RATE_LIMIT")

	// Auth
	v.BindEnv("auth.jwt_secret", "AUTH_JWT_SECRET")
	v.BindEnv("auth.jwt_ttl", "AUTH_JWT_TTL")

	// Cache
	v.BindEnv("cache.backend", "CACHE_BACKEND")
	v.BindEnv("cache.path", "CACHE_PATH")
	v.BindEnv("cache.ttl", "CACHE_TTL")
	v.BindEnv("cache.key_prefix", "CACHE_KEY_PREFIX")

	// Analytics
	v.BindEnv("analytics.timezone", "ANALYTICS_TIMEZONE")
	v.BindEnv("analytics.currency", "ANALYTICS_CURRENCY")
	v.BindEnv("analytics.language", "ANALYTICS_LANGUAGE")

	// Warm-up
	v.BindEnv("warmup.enabled", "WARMUP_ENABLED")
	v.BindEnv("warmup.worker_interval", "WARMUP_WORKER_INTERVAL")
}

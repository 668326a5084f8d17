package store

import (
	"context"
	"crypto/tls"
	"crypto/x509"
	"database/sql"
	"embed"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	"github.com/mamadou288/shop-api/internal/dependency"
	migrate "github.com/rubenv/sql-migrate"

	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"
)

const (
	DriverMySQL    = "mysql"
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// Config defines configurations to connect database
type Config struct {
	Driver             string `mapstructure:"driver"`
	DSN                string `mapstructure:"dsn"`
	Automigrate        bool   `mapstructure:"automigrate"`
	MaxOpenConnections int    `mapstructure:"max_open_connections"`
	MaxIdleConnections int    `mapstructure:"max_idle_connections"`
	TLSCAPath          string `mapstructure:"tls_ca_path"`
}

func (c Config) driver() string {
	if c.Driver == "" {
		return DriverMySQL
	}
	return strings.ToLower(c.Driver)
}

// SQLStore implements read access to the shop database.
type SQLStore struct {
	db     dependency.DB
	driver string
	close  context.CancelFunc
}

// resolveCertPath resolves @certs paths to the config/certs directory
func resolveCertPath(path string) string {
	if !strings.HasPrefix(path, "@certs/") {
		return path
	}
	configPaths := []string{
		"./config/certs",
		"config/certs",
		"$HOME/config/shop-api/certs",
		"/etc/shop-api/certs",
	}

	certFile := strings.TrimPrefix(path, "@certs/")
	for _, basePath := range configPaths {
		if strings.HasPrefix(basePath, "$") {
			basePath = os.ExpandEnv(basePath)
		}
		fullPath := filepath.Join(basePath, certFile)
		if _, err := os.Stat(fullPath); err == nil {
			return fullPath
		}
	}
	return filepath.Join("./config/certs", certFile)
}

// registerTLSConfig registers the "custom" TLS config with the MySQL driver.
// The db.CA_CERT environment variable (certificate content) wins over TLSCAPath.
func registerTLSConfig(cfg Config) error {
	var caCert []byte
	var err error

	if dbCACert := os.Getenv("db.CA_CERT"); dbCACert != "" {
		caCert = []byte(dbCACert)
		slog.Default().Info("using CA certificate from db.CA_CERT environment variable")
	} else if cfg.TLSCAPath != "" {
		certPath := resolveCertPath(cfg.TLSCAPath)
		caCert, err = os.ReadFile(certPath)
		if err != nil {
			return fmt.Errorf("failed to read CA certificate from %s: %w", certPath, err)
		}
		slog.Default().Info("using CA certificate from file", "path", certPath)
	} else {
		return nil
	}

	caCertPool := x509.NewCertPool()
	if !caCertPool.AppendCertsFromPEM(caCert) {
		return fmt.Errorf("failed to parse CA certificate")
	}

	return mysql.RegisterTLSConfig("custom", &tls.Config{
		RootCAs: caCertPool,
	})
}

// sqliteDSN turns a bare path into a modernc DSN with foreign keys and a busy timeout.
func sqliteDSN(dsn string) string {
	if strings.HasPrefix(dsn, "file:") {
		return dsn
	}
	return fmt.Sprintf("file:%s?_pragma=foreign_keys(ON)&_pragma=busy_timeout(5000)", dsn)
}

func open(cfg Config) (*sqlx.DB, error) {
	switch cfg.driver() {
	case DriverMySQL:
		if err := registerTLSConfig(cfg); err != nil {
			return nil, fmt.Errorf("failed to register TLS config: %w", err)
		}
		return sqlx.Open(DriverMySQL, cfg.DSN)
	case DriverPostgres:
		return sqlx.Open(DriverPostgres, cfg.DSN)
	case DriverSQLite:
		d, err := sqlx.Open(DriverSQLite, sqliteDSN(cfg.DSN))
		if err != nil {
			return nil, err
		}
		// single writer
		d.SetMaxOpenConns(1)
		return d, nil
	default:
		return nil, fmt.Errorf("unsupported driver %q", cfg.Driver)
	}
}

// New connects to the database, applies migrations and returns a new SQLStore object.
func New(ctx context.Context, cfg Config) (*SQLStore, error) {
	d, err := open(cfg)
	if err != nil {
		return nil, fmt.Errorf("couldn't open database : %v", err)
	}

	if cfg.MaxOpenConnections > 0 && cfg.driver() != DriverSQLite {
		d.SetMaxOpenConns(cfg.MaxOpenConnections)
	}
	if cfg.MaxIdleConnections > 0 {
		d.SetMaxIdleConns(cfg.MaxIdleConnections)
	}
	d.SetConnMaxLifetime(2 * time.Minute)
	d.SetConnMaxIdleTime(30 * time.Second)

	pingCtx, pingCancel := context.WithTimeout(ctx, 10*time.Second)
	defer pingCancel()
	if err := d.PingContext(pingCtx); err != nil {
		d.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	if cfg.Automigrate {
		slog.Default().InfoContext(ctx, "applying migrations", slog.String("driver", cfg.driver()))
		migrateCtx, migrateCancel := context.WithTimeout(ctx, 5*time.Minute)
		defer migrateCancel()
		if err := MigrateWithContext(migrateCtx, d.DB, cfg.driver()); err != nil {
			d.Close()
			return nil, fmt.Errorf("migration failed: %w", err)
		}
	}

	ctx, c := context.WithCancel(ctx)
	ss := &SQLStore{
		db:     d,
		driver: cfg.driver(),
		close:  c,
	}

	go func() {
		<-ctx.Done()
		d.Close()
	}()

	return ss, nil
}

//go:embed sql
var fs embed.FS

// migrateDialect maps a driver name to the sql-migrate dialect.
func migrateDialect(driver string) string {
	if driver == DriverSQLite {
		return "sqlite3"
	}
	return driver
}

func MigrateWithContext(ctx context.Context, db *sql.DB, driver string) error {
	m := &migrate.EmbedFileSystemMigrationSource{
		FileSystem: fs,
		Root:       "sql/" + driver,
	}

	type result struct {
		n   int
		err error
	}
	done := make(chan result, 1)
	go func() {
		n, err := migrate.Exec(db, migrateDialect(driver), m, migrate.Up)
		done <- result{n: n, err: err}
	}()

	select {
	case <-ctx.Done():
		return fmt.Errorf("migration timeout: %w", ctx.Err())
	case res := <-done:
		if res.err != nil {
			return fmt.Errorf("db migrations have failed: %w", res.err)
		}
		slog.Default().InfoContext(ctx, "applied migrations",
			slog.Int("count", res.n),
		)
		return nil
	}
}

func (ss *SQLStore) Close() {
	ss.close()
}

func (ss *SQLStore) DB() dependency.DB {
	return ss.db
}

func (ss *SQLStore) Driver() string {
	return ss.driver
}

// Ping checks database connectivity by executing a simple query
func (ss *SQLStore) Ping(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var result int
	err := ss.db.QueryRowxContext(ctx, "SELECT 1").Scan(&result)
	if err != nil {
		return fmt.Errorf("database ping failed: %w", err)
	}
	return nil
}

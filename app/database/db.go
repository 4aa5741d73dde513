// Package database opens the PostgreSQL pool and applies schema migrations.
package database

import (
	"context"
	"fmt"
	"net"
	"net/url"
	"strings"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gLogger "gorm.io/gorm/logger"

	"github.com/rubhub/catalog/internal/validator"
	"github.com/rubhub/catalog/models"

	// lib/pq registers the "postgres" database/sql driver used by the
	// migrator and the integration suites.
	_ "github.com/lib/pq"
)

type Config struct {
	Host            string        `env:"DB_HOST"`
	Port            string        `env:"DB_PORT" env-default:"5432"`
	User            string        `env:"DB_USER"`
	Password        string        `env:"DB_PASSWORD" secret:"true"`
	Database        string        `env:"DB_NAME"`
	UseSSL          bool          `env:"DB_SSL_MODE"`
	LogQuery        bool          `env:"DB_LOG_QUERY"`
	MaxOpenConns    int           `env:"DB_MAX_OPEN_CONNS" env-default:"25"`
	MaxIdleConns    int           `env:"DB_MAX_IDLE_CONNS" env-default:"10"`
	ConnMaxLifetime time.Duration `env:"DB_CONN_MAX_LIFETIME" env-default:"1h"`
	ConnectTimeout  time.Duration `env:"DB_CONNECT_TIMEOUT" env-default:"5s"`
	AutoMigrate     bool          `env:"DB_AUTO_MIGRATE" env-default:"true"`
	MigrationsPath  string        `env:"MIGRATIONS_PATH" env-default:"migrations"`
}

// Validate names every missing connection setting by its env variable.
func (c *Config) Validate() error {
	v := validator.New()
	v.Check(validator.NotBlank(c.Host), "DB_HOST", models.ErrDatabaseCredentialNotConfigured)
	v.Check(validator.NotBlank(c.User), "DB_USER", models.ErrDatabaseCredentialNotConfigured)
	v.Check(c.Password != "", "DB_PASSWORD", models.ErrDatabaseCredentialNotConfigured)
	v.Check(validator.NotBlank(c.Database), "DB_NAME", models.ErrDatabaseCredentialNotConfigured)

	if !v.Valid() {
		return fmt.Errorf("%w: missing %s", models.ErrDatabaseCredentialNotConfigured, strings.Join(v.Fields(), ", "))
	}
	return nil
}

func (c *Config) sslMode() string {
	if c.UseSSL {
		return "require"
	}
	return "disable"
}

// DSN is the keyword/value form understood by the gorm postgres driver.
func (c *Config) DSN() string {
	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
		c.Host, c.User, c.Password, c.Database, c.Port, c.sslMode())
}

// URL is the postgres:// form the migrator and lib/pq expect.
func (c *Config) URL() string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.User, c.Password),
		Host:     net.JoinHostPort(c.Host, c.Port),
		Path:     "/" + c.Database,
		RawQuery: "sslmode=" + c.sslMode(),
	}
	return u.String()
}

// GormConfig is shared by the service and the integration suites.
// TranslateError turns unique violations into gorm.ErrDuplicatedKey.
func GormConfig(logQuery bool) *gorm.Config {
	cfg := &gorm.Config{TranslateError: true}
	if !logQuery {
		cfg.Logger = gLogger.Discard
	}
	return cfg
}

// New opens the pool, sizes it from c and pings once so a bad host fails at
// startup instead of on the first request.
func New(ctx context.Context, c *Config) (*gorm.DB, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	db, err := gorm.Open(postgres.Open(c.DSN()), GormConfig(c.LogQuery))
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("database pool: %w", err)
	}
	sqlDB.SetMaxOpenConns(c.MaxOpenConns)
	sqlDB.SetMaxIdleConns(c.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(c.ConnMaxLifetime)

	if c.ConnectTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.ConnectTimeout)
		defer cancel()
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}
	return db, nil
}

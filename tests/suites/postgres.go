// Package suites holds shared testify suites for integration tests.
package suites

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/docker/go-connections/nat"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/rubhub/catalog/app/database"

	_ "github.com/lib/pq"
)

const (
	postgresImage = "postgres:17.5-alpine3.21"
	postgresPort  = "5432/tcp"
)

// PostgresContainer is a throwaway PostgreSQL server. Config points at it
// once the container is running.
type PostgresContainer struct {
	testcontainers.Container
	Config database.Config
}

// URL returns the postgres:// connection string for the container
func (pc *PostgresContainer) URL() string {
	return pc.Config.URL()
}

// StartPostgres runs a PostgreSQL container and waits until it accepts queries
func StartPostgres(ctx context.Context) (*PostgresContainer, error) {
	cfg := database.Config{
		User:     "catalog",
		Password: "catalog-test",
		Database: "catalog_test",
	}

	urlFor := func(host string, port nat.Port) string {
		c := cfg
		c.Host, c.Port = host, port.Port()
		return c.URL()
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        postgresImage,
			ExposedPorts: []string{postgresPort},
			Cmd:          []string{"postgres", "-c", "fsync=off"},
			Env: map[string]string{
				"POSTGRES_DB":       cfg.Database,
				"POSTGRES_USER":     cfg.User,
				"POSTGRES_PASSWORD": cfg.Password,
			},
			WaitingFor: wait.ForSQL(postgresPort, "postgres", urlFor).
				WithStartupTimeout(60 * time.Second).
				WithQuery("SELECT 1"),
		},
		Started: true,
	})
	if err != nil {
		return nil, fmt.Errorf("start postgres container: %w", err)
	}

	host, err := container.Host(ctx)
	if err != nil {
		return nil, fmt.Errorf("container host: %w", err)
	}
	port, err := container.MappedPort(ctx, postgresPort)
	if err != nil {
		return nil, fmt.Errorf("container port: %w", err)
	}

	cfg.Host, cfg.Port = host, port.Port()
	return &PostgresContainer{Container: container, Config: cfg}, nil
}

// RepositoryTestSuite starts one container per suite and empties every table
// before each test unless KeepData is set.
type RepositoryTestSuite struct {
	suite.Suite
	Container      *PostgresContainer
	DB             *gorm.DB
	SQLDB          *sql.DB
	AutoMigrate    bool
	MigrationsPath string
	KeepData       bool
}

func (s *RepositoryTestSuite) SetupSuite() {
	if testing.Short() {
		s.T().Skip("Skipping database integration tests in short mode")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	container, err := StartPostgres(ctx)
	s.Require().NoError(err)
	s.Container = container

	s.connect(ctx)

	if s.AutoMigrate {
		if s.MigrationsPath == "" {
			s.MigrationsPath = moduleMigrations()
		}
		s.Require().NotEmpty(s.MigrationsPath, "migrations directory not found")
		_, err := database.Migrate(s.MigrationsPath, s.Container.URL())
		s.Require().NoError(err)
	}
}

// connect opens the pool with lib/pq so driver errors reach the repository untranslated
func (s *RepositoryTestSuite) connect(ctx context.Context) {
	sqlDB, err := sql.Open("postgres", s.Container.URL())
	s.Require().NoError(err)

	sqlDB.SetMaxOpenConns(5)
	sqlDB.SetMaxIdleConns(2)
	s.Require().NoError(sqlDB.PingContext(ctx))
	s.SQLDB = sqlDB

	gormDB, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), database.GormConfig(false))
	s.Require().NoError(err)
	s.DB = gormDB
}

func (s *RepositoryTestSuite) TearDownSuite() {
	if s.SQLDB != nil {
		_ = s.SQLDB.Close()
	}
	if s.Container != nil {
		_ = s.Container.Terminate(context.Background())
	}
}

func (s *RepositoryTestSuite) BeforeTest(_, _ string) {
	if s.DB != nil && !s.KeepData {
		s.Truncate()
	}
}

// Truncate empties all application tables and restarts their id sequences
func (s *RepositoryTestSuite) Truncate() {
	var tables []string
	err := s.DB.Raw(`
		SELECT quote_ident(table_name)
		FROM information_schema.tables
		WHERE table_schema = 'public'
		AND table_type = 'BASE TABLE'
		AND table_name <> 'schema_migrations'
	`).Scan(&tables).Error
	s.Require().NoError(err)

	if len(tables) == 0 {
		return
	}
	s.Require().NoError(s.DB.Exec("TRUNCATE TABLE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE").Error)
}

// CountRecords returns the number of rows in table
func (s *RepositoryTestSuite) CountRecords(table string) int64 {
	var n int64
	s.Require().NoError(s.DB.Table(table).Count(&n).Error)
	return n
}

func (s *RepositoryTestSuite) AssertDBError(err error, args ...interface{}) {
	s.Assert().Error(err, args...)
}

func (s *RepositoryTestSuite) AssertNoDBError(err error, args ...interface{}) {
	s.Assert().NoError(err, args...)
}

// moduleMigrations walks up from the working directory to the go.mod and
// returns its migrations directory.
func moduleMigrations() string {
	dir, err := os.Getwd()
	if err != nil {
		return ""
	}
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			path := filepath.Join(dir, "migrations")
			if _, err := os.Stat(path); err == nil {
				return path
			}
			return ""
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return ""
		}
		dir = parent
	}
}

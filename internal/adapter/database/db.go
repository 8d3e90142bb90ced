package database

import (
	"database/sql"
	"fmt"
	"os"
	"time"

	"github.com/Masterminds/squirrel"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "github.com/mattn/go-sqlite3"

	"github.com/uptrace/opentelemetry-go-extra/otelsql"
	"go.opentelemetry.io/otel"

	"github.com/golang-migrate/migrate/v4"
	migratedb "github.com/golang-migrate/migrate/v4/database"
	migratepg "github.com/golang-migrate/migrate/v4/database/postgres"
	migratesqlite "github.com/golang-migrate/migrate/v4/database/sqlite3"
	_ "github.com/golang-migrate/migrate/v4/source/file"

	"github.com/rs/zerolog"
	sqldblogger "github.com/simukti/sqldb-logger"
	"github.com/simukti/sqldb-logger/logadapter/zerologadapter"
)

// DB wraps database/sql with a squirrel builder. The engine is postgres
// (via the pgx stdlib driver) when DATABASE_URL is set, sqlite otherwise;
// both use dollar placeholders so the repositories stay engine-agnostic.
type DB struct {
	*sql.DB
	QueryBuilder *squirrel.StatementBuilderType
	Driver       string
}

func NewDB() (*DB, error) {
	driver, dsn := resolveDriver()

	sqlDB, err := otelsql.Open(driver, dsn,
		otelsql.WithDBSystem(driver),
		otelsql.WithDBName("todotrack"),
		otelsql.WithTracerProvider(otel.GetTracerProvider()),
	)

	if err != nil {
		return nil, fmt.Errorf("open %s: %w", driver, err)
	}

	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(5 * time.Minute)

	if err := RunMigrations(sqlDB, driver, migrationsPath(driver)); err != nil {
		sqlDB.Close()
		return nil, err
	}

	logger := zerolog.New(os.Stdout)
	logged := sqldblogger.OpenDriver(dsn, sqlDB.Driver(), zerologadapter.New(logger))

	queryBuilder := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

	return &DB{
		DB:           logged,
		QueryBuilder: &queryBuilder,
		Driver:       driver,
	}, nil
}

func resolveDriver() (driver, dsn string) {
	if url := os.Getenv("DATABASE_URL"); url != "" {
		return "pgx", url
	}

	path := os.Getenv("DATABASE_PATH")

	if path == "" {
		path = "database.db"
	}

	return "sqlite3", path
}

func migrationsPath(driver string) string {
	if path := os.Getenv("MIGRATIONS_PATH"); path != "" {
		return path
	}

	if driver == "pgx" {
		return "db/migrations/postgres"
	}

	return "db/migrations/sqlite"
}

func RunMigrations(db *sql.DB, driver, path string) error {
	var (
		instance migratedb.Driver
		name     string
		err      error
	)

	switch driver {
	case "pgx":
		name = "postgres"
		instance, err = migratepg.WithInstance(db, &migratepg.Config{})
	default:
		name = "sqlite3"
		instance, err = migratesqlite.WithInstance(db, &migratesqlite.Config{})
	}

	if err != nil {
		return fmt.Errorf("migration driver: %w", err)
	}

	m, err := migrate.NewWithDatabaseInstance("file://"+path, name, instance)

	if err != nil {
		return fmt.Errorf("migration instance: %w", err)
	}

	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		return fmt.Errorf("run migrations: %w", err)
	}

	return nil
}

package cachestore

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"log/slog"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"vinylvault/internal/config"
)

//go:embed migrations/*.sql
var embeddedMigrations embed.FS

const postgresDBName = "vinylvault"

const MainSchema = "vinylvault"
const TestingSchema = "vinylvault_test"

func GetSchemaName(isTesting bool) string {
	if isTesting {
		return TestingSchema
	}
	return MainSchema
}

type postgresStore struct {
	db     *sqlx.DB
	schema string
}

// NewPostgresDatabase connects and makes sure the database exists.
func NewPostgresDatabase(conf config.Config) (*sqlx.DB, error) {
	connectionString := fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s sslmode=disable",
		conf.DBHost(), conf.DBUsername(), conf.DBPassword(), postgresDBName,
	)

	db, err := sqlx.Connect("postgres", connectionString)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to db: %w", err)
	}

	return db, nil
}

// NewPostgresStore runs migrations in the given schema and returns the
// store.
func NewPostgresStore(ctx context.Context, db *sqlx.DB, schema string, logger *slog.Logger) (Store, error) {
	if err := migrateSchema(ctx, db, schema, logger); err != nil {
		return nil, err
	}

	return &postgresStore{db: db, schema: schema}, nil
}

func migrateSchema(ctx context.Context, db *sqlx.DB, schema string, logger *slog.Logger) error {
	conn, err := db.Conn(ctx)
	if err != nil {
		return fmt.Errorf("migrate: failed to connect to db: %w", err)
	}
	defer conn.Close()

	_, err = conn.ExecContext(ctx, fmt.Sprintf("CREATE SCHEMA IF NOT EXISTS %s", pq.QuoteIdentifier(schema)))
	if err != nil {
		return fmt.Errorf("migrate: failed to create schema: %w", err)
	}

	_, err = conn.ExecContext(ctx, fmt.Sprintf("SET search_path TO %s", pq.QuoteIdentifier(schema)))
	if err != nil {
		return fmt.Errorf("migrate: failed to set search path: %w", err)
	}

	migrationSource, err := iofs.New(embeddedMigrations, "migrations")
	if err != nil {
		return fmt.Errorf("migrate: failed to create driver from embedded migrations: %w", err)
	}
	defer migrationSource.Close()

	dbDriver, err := postgres.WithConnection(ctx, conn, &postgres.Config{
		DatabaseName: postgresDBName,
		SchemaName:   schema,
	})
	if err != nil {
		return fmt.Errorf("migrate: failed to create postgres driver: %w", err)
	}

	migratorInstance, err := migrate.NewWithInstance("iofs", migrationSource, "postgres", dbDriver)
	if err != nil {
		return fmt.Errorf("migrate: failed to create migration instance: %w", err)
	}
	defer migratorInstance.Close()

	logger.InfoContext(ctx, "Starting migrations...")
	if err := migratorInstance.Up(); err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			logger.InfoContext(ctx, "No migrations to run.")
		} else {
			return fmt.Errorf("migrate: failed to migrate: %w", err)
		}
	}
	logger.InfoContext(ctx, "Migrations completed successfully.")

	return nil
}

func (s *postgresStore) table() string {
	return fmt.Sprintf("%s.cache_blobs", pq.QuoteIdentifier(s.schema))
}

func (s *postgresStore) Load(ctx context.Context, namespace string) ([]byte, error) {
	var data []byte
	query := fmt.Sprintf("SELECT data FROM %s WHERE namespace = $1", s.table())
	err := s.db.GetContext(ctx, &data, query, namespace)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load cache blob: %w", err)
	}
	return data, nil
}

func (s *postgresStore) Save(ctx context.Context, namespace string, data []byte) error {
	query := fmt.Sprintf(
		`INSERT INTO %s (namespace, data, updated_at) VALUES ($1, $2, now())
		ON CONFLICT (namespace) DO UPDATE SET data = EXCLUDED.data, updated_at = now()`,
		s.table(),
	)
	if _, err := s.db.ExecContext(ctx, query, namespace, data); err != nil {
		return fmt.Errorf("failed to save cache blob: %w", err)
	}
	return nil
}

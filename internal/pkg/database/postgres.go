package database

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v4/pgxpool"
	_ "github.com/jackc/pgx/v4/stdlib" // database/sql driver for sqlx
	"github.com/jmoiron/sqlx"

	"github.com/edupagos/backoffice/internal/pkg/models"
)

// PostgresClient represents a PostgreSQL database client
type PostgresClient struct {
	pool *pgxpool.Pool
}

func connString(config models.DatabaseConfig) string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		config.Username,
		config.Password,
		config.Host,
		config.Port,
		config.Database,
		config.SSLMode,
	)
}

// NewPostgresClient creates a new PostgreSQL connection pool for health
// checks and pool-level operations.
func NewPostgresClient(config models.DatabaseConfig) (*PostgresClient, error) {
	poolConfig, err := pgxpool.ParseConfig(connString(config))
	if err != nil {
		return nil, fmt.Errorf("failed to parse postgres config: %w", err)
	}

	if config.MaxConns > 0 {
		poolConfig.MaxConns = int32(config.MaxConns)
	}
	if config.IdleConns > 0 {
		poolConfig.MinConns = int32(config.IdleConns)
	}
	poolConfig.MaxConnLifetime = 1 * time.Hour
	poolConfig.HealthCheckPeriod = 1 * time.Minute

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	pool, err := pgxpool.ConnectConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to postgres: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		return nil, fmt.Errorf("failed to ping postgres: %w", err)
	}

	return &PostgresClient{pool: pool}, nil
}

// GetPool returns the underlying connection pool
func (p *PostgresClient) GetPool() *pgxpool.Pool {
	return p.pool
}

// Close closes the database connection pool
func (p *PostgresClient) Close() {
	p.pool.Close()
}

// NewSQLXConnection opens the sqlx handle the repositories run on, backed by
// the pgx stdlib driver.
func NewSQLXConnection(config models.DatabaseConfig) (*sqlx.DB, error) {
	db, err := sqlx.Connect("pgx", connString(config))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to postgres: %w", err)
	}

	if config.MaxConns > 0 {
		db.SetMaxOpenConns(config.MaxConns)
	}
	if config.IdleConns > 0 {
		db.SetMaxIdleConns(config.IdleConns)
	}
	db.SetConnMaxLifetime(1 * time.Hour)

	return db, nil
}

// Package store implements the persistence layer: connection management,
// per-entity repositories, and the SQL queries behind them.
//
// Two backends are supported through database/sql: PostgreSQL via the pgx
// stdlib driver (production) and SQLite via mattn/go-sqlite3 (the default
// development deployment). The backend is selected by the DSN scheme.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "github.com/mattn/go-sqlite3"

	"github.com/GeorgesCH/SSDTeamProject/internal/config"
	"github.com/GeorgesCH/SSDTeamProject/internal/logger"
)

// Dialect identifies the SQL backend behind a DB connection. It is consumed
// by the migration runner, which keeps separate DDL per backend.
type Dialect string

const (
	DialectPostgres Dialect = "pgx"
	DialectSQLite   Dialect = "sqlite3"
)

// DB wraps *sql.DB together with the resolved dialect and a logger.
type DB struct {
	*sql.DB
	dialect Dialect
	logger  *logger.Logger
}

// Dialect returns the SQL backend this connection talks to.
func (db *DB) Dialect() Dialect {
	return db.dialect
}

// NewConnect opens a database connection for the configured DSN and verifies
// it with a ping. A DSN starting with "postgres://" or "postgresql://"
// selects the pgx driver; any other value is treated as a SQLite file path.
func NewConnect(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	dialect := dialectForDSN(cfg.DSN)

	conn, err := sql.Open(string(dialect), cfg.DSN)
	if err != nil {
		log.Err(err).Str("func", "NewConnect").Msg("error occured during database connection")
		return nil, fmt.Errorf("error occured during database connection: %w", err)
	}

	conn.SetMaxOpenConns(10)
	conn.SetMaxIdleConns(4)

	if err := conn.PingContext(ctx); err != nil {
		log.Err(err).Str("func", "NewConnect").Msg("error connecting database (ping)")
		return nil, err
	}
	log.Info().Str("func", "NewConnect").Str("dialect", string(dialect)).Msg("connected to database successfully")

	return &DB{
		DB:      conn,
		dialect: dialect,
		logger:  log,
	}, nil
}

func dialectForDSN(dsn string) Dialect {
	if strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://") {
		return DialectPostgres
	}

	return DialectSQLite
}

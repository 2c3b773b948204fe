package migrations

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/pressly/goose/v3"

	"github.com/GeorgesCH/SSDTeamProject/internal/store"
)

//go:embed postgres/*.sql sqlite/*.sql
var embedMigrations embed.FS

// Migrate brings the schema up to date. DDL differs between the two backends
// (identity columns, timestamp defaults), so each dialect keeps its own
// migration directory.
func Migrate(db *sql.DB, dialect store.Dialect) error {
	if db == nil {
		return errors.New("migration error: db is nil")
	}

	goose.SetBaseFS(embedMigrations)

	if err := goose.SetDialect(string(dialect)); err != nil {
		return fmt.Errorf("migration error setting dialect for db: %w", err)
	}

	if err := goose.Up(db, dirForDialect(dialect)); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	return nil
}

func dirForDialect(dialect store.Dialect) string {
	if dialect == store.DialectSQLite {
		return "sqlite"
	}

	return "postgres"
}

package store

import (
	"context"
	"database/sql"

	"github.com/MKhiriev/go-identity/internal/logger"
	"github.com/MKhiriev/go-identity/migrations"
	sq "github.com/Masterminds/squirrel"
)

// Dialect names the SQL backend behind a [DB].
type Dialect string

const (
	DialectPostgres Dialect = "postgres"
	DialectSQLite   Dialect = "sqlite"
)

// DB wraps *sql.DB with the dialect-specific pieces the repository needs.
type DB struct {
	*sql.DB
	dialect Dialect
	logger  *logger.Logger
}

// Dialect returns the backend of the connection.
func (db *DB) Dialect() Dialect {
	return db.dialect
}

// Migrate applies the embedded schema migrations.
func (db *DB) Migrate(ctx context.Context) error {
	switch db.dialect {
	case DialectSQLite:
		return migrations.Migrate(ctx, db.DB, migrations.DialectSQLite)
	default:
		return migrations.Migrate(ctx, db.DB, migrations.DialectPostgres)
	}
}

// builder returns a squirrel statement builder using the placeholder
// format of the dialect.
func (db *DB) builder() sq.StatementBuilderType {
	switch db.dialect {
	case DialectSQLite:
		return sq.StatementBuilder.PlaceholderFormat(sq.Question)
	default:
		return sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
	}
}

// isUniqueViolation reports whether err is the driver's unique constraint
// violation.
func (db *DB) isUniqueViolation(err error) bool {
	switch db.dialect {
	case DialectSQLite:
		return isSQLiteUniqueViolation(err)
	default:
		return isPostgresUniqueViolation(err)
	}
}

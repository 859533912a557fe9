package store

import (
	"time"

	"github.com/MKhiriev/go-identity/models"
	sq "github.com/Masterminds/squirrel"
)

const usersTable = "users"

// userColumns is the column order every user query selects and scans.
var userColumns = []string{"id", "identifier", "password_hash", "created_at", "updated_at"}

// buildExistsQuery counts the records with the identifier.
func buildExistsQuery(b sq.StatementBuilderType, identifier string) (string, []any, error) {
	return b.Select("COUNT(*)").
		From(usersTable).
		Where(sq.Eq{"identifier": identifier}).
		ToSql()
}

func buildFindUserByIdentifierQuery(b sq.StatementBuilderType, identifier string) (string, []any, error) {
	return b.Select(userColumns...).
		From(usersTable).
		Where(sq.Eq{"identifier": identifier}).
		Limit(1).
		ToSql()
}

func buildCreateUserQuery(b sq.StatementBuilderType, user models.User) (string, []any, error) {
	return b.Insert(usersTable).
		Columns(userColumns...).
		Values(user.UserID, user.Identifier, user.PasswordHash, user.CreatedAt, user.UpdatedAt).
		ToSql()
}

// buildUpdatePasswordHashQuery returns the updated row through RETURNING,
// which both PostgreSQL and SQLite support.
func buildUpdatePasswordHashQuery(b sq.StatementBuilderType, identifier, passwordHash string, updatedAt time.Time) (string, []any, error) {
	return b.Update(usersTable).
		Set("password_hash", passwordHash).
		Set("updated_at", updatedAt).
		Where(sq.Eq{"identifier": identifier}).
		Suffix("RETURNING id, identifier, password_hash, created_at, updated_at").
		ToSql()
}

package store

import (
	"testing"
	"time"

	"github.com/MKhiriev/go-identity/models"
	sq "github.com/Masterminds/squirrel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildExistsQuery(t *testing.T) {
	tests := []struct {
		name    string
		builder sq.StatementBuilderType
		want    string
	}{
		{
			name:    "postgres",
			builder: (&DB{dialect: DialectPostgres}).builder(),
			want:    "SELECT COUNT(*) FROM users WHERE identifier = $1",
		},
		{
			name:    "sqlite",
			builder: (&DB{dialect: DialectSQLite}).builder(),
			want:    "SELECT COUNT(*) FROM users WHERE identifier = ?",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, args, err := buildExistsQuery(tt.builder, "a@b.com")
			require.NoError(t, err)
			assert.Equal(t, tt.want, query)
			assert.Equal(t, []any{"a@b.com"}, args)
		})
	}
}

func TestBuildFindUserByIdentifierQuery(t *testing.T) {
	query, args, err := buildFindUserByIdentifierQuery((&DB{dialect: DialectPostgres}).builder(), "01712345678")
	require.NoError(t, err)

	assert.Contains(t, query, "SELECT id, identifier, password_hash, created_at, updated_at FROM users")
	assert.Contains(t, query, "WHERE identifier = $1")
	assert.Contains(t, query, "LIMIT 1")
	assert.Equal(t, []any{"01712345678"}, args)
}

func TestBuildCreateUserQuery(t *testing.T) {
	now := time.Now().UTC()
	user := models.User{UserID: "id", Identifier: "a@b.com", PasswordHash: "hash", CreatedAt: now, UpdatedAt: now}

	query, args, err := buildCreateUserQuery((&DB{dialect: DialectPostgres}).builder(), user)
	require.NoError(t, err)

	assert.Contains(t, query, "INSERT INTO users")
	assert.Contains(t, query, "$5")
	assert.NotContains(t, query, "$6")
	assert.Equal(t, []any{"id", "a@b.com", "hash", now, now}, args)
}

func TestBuildUpdatePasswordHashQuery(t *testing.T) {
	now := time.Now().UTC()

	query, args, err := buildUpdatePasswordHashQuery((&DB{dialect: DialectSQLite}).builder(), "a@b.com", "hash", now)
	require.NoError(t, err)

	assert.Contains(t, query, "UPDATE users SET password_hash = ?, updated_at = ?")
	assert.Contains(t, query, "WHERE identifier = ?")
	assert.Contains(t, query, "RETURNING id, identifier, password_hash, created_at, updated_at")
	assert.Equal(t, []any{"hash", now, "a@b.com"}, args)
}

package store

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-identity/internal/config"
	"github.com/MKhiriev/go-identity/internal/crypto"
	"github.com/MKhiriev/go-identity/internal/logger"
	"github.com/MKhiriev/go-identity/internal/utils"
)

const memoryScheme = "memory://"

// Storages aggregates the stores used by the service layer.
type Storages struct {
	UserStorage UserStorage

	// db is nil for the in-memory backend.
	db *DB
}

// NewStorages opens the backend selected by the DSN scheme, applies the
// schema migrations and builds the stores on top of it.
//
// Supported schemes:
//   - postgres://, postgresql://  PostgreSQL through pgx
//   - sqlite://, file:            SQLite through go-sqlite3
//   - memory://                   process-local map, lost on exit
//
// cfg.ConnectTimeout bounds the connection check and migrations.
func NewStorages(ctx context.Context, cfg config.DB, hasher crypto.PasswordHasher, log *logger.Logger) (*Storages, error) {
	if strings.HasPrefix(cfg.DSN, memoryScheme) {
		log.Warn().Msg("using in-memory storage, data is lost on exit")
		return NewMemoryStorages(hasher, log), nil
	}

	if cfg.ConnectTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.ConnectTimeout)
		defer cancel()
	}

	var (
		db  *DB
		err error
	)
	switch {
	case strings.HasPrefix(cfg.DSN, "postgres://"), strings.HasPrefix(cfg.DSN, "postgresql://"):
		db, err = NewConnectPostgres(ctx, cfg, log)
	case strings.HasPrefix(cfg.DSN, sqliteScheme), strings.HasPrefix(cfg.DSN, "file:"):
		db, err = NewConnectSQLite(ctx, cfg, log)
	default:
		return nil, ErrUnsupportedDSN
	}
	if err != nil {
		return nil, err
	}

	if err = db.Migrate(ctx); err != nil {
		log.Err(err).Str("func", "NewStorages").Msg("error applying migrations")
		db.Close()
		return nil, fmt.Errorf("error applying migrations: %w", err)
	}

	repository := NewUserRepository(db, log)

	return &Storages{
		UserStorage: NewUserStorage(repository, hasher, utils.NewUUIDGenerator(), log),
		db:          db,
	}, nil
}

// NewMemoryStorages builds the stores on an empty in-memory repository.
func NewMemoryStorages(hasher crypto.PasswordHasher, log *logger.Logger) *Storages {
	return &Storages{
		UserStorage: NewUserStorage(NewMemoryUserRepository(log), hasher, utils.NewUUIDGenerator(), log),
	}
}

// Close releases the database connection, if any.
func (s *Storages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

package badger

import (
	"context"
	"errors"
	"fmt"
	"os"

	"pet-adoptions/internal/domain/adoptions"
	"pet-adoptions/internal/domain/pets"
	"pet-adoptions/internal/domain/users"
	"pet-adoptions/internal/platform/logger"

	"github.com/dgraph-io/badger/v4"
)

// Config del backend embebido.
type Config struct {
	// Path es ignorado si InMemory es true.
	Path       string
	InMemory   bool
	SyncWrites bool
	Logger     logger.Logger
}

// Store guarda usuarios y mascotas como documentos BSON en BadgerDB.
type Store struct {
	db *badger.DB
}

// badgerLogger adapta logger.Logger a la interfaz de logging de Badger.
type badgerLogger struct {
	log logger.Logger
}

func (l badgerLogger) Errorf(format string, args ...interface{}) {
	l.log.Error(fmt.Sprintf(format, args...), nil)
}

func (l badgerLogger) Warningf(format string, args ...interface{}) {
	l.log.Warn(fmt.Sprintf(format, args...), nil)
}

func (l badgerLogger) Infof(format string, args ...interface{}) {
	l.log.Debug(fmt.Sprintf(format, args...), nil)
}

func (l badgerLogger) Debugf(format string, args ...interface{}) {
	l.log.Debug(fmt.Sprintf(format, args...), nil)
}

func Open(cfg Config) (*Store, error) {
	if !cfg.InMemory && cfg.Path == "" {
		return nil, errors.New("badger: path is required for persistent database")
	}

	var opts badger.Options
	if cfg.InMemory {
		opts = badger.DefaultOptions("").WithInMemory(true)
	} else {
		if err := os.MkdirAll(cfg.Path, 0o750); err != nil {
			return nil, fmt.Errorf("create database directory %s: %w", cfg.Path, err)
		}
		opts = badger.DefaultOptions(cfg.Path)
	}
	opts = opts.WithSyncWrites(cfg.SyncWrites).WithNumVersionsToKeep(1)

	if cfg.Logger != nil {
		opts = opts.WithLogger(badgerLogger{log: cfg.Logger.With(map[string]any{"component": "badger"})})
	} else {
		opts = opts.WithLogger(nil)
	}

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open badger database: %w", err)
	}
	return &Store{db: db}, nil
}

func (s *Store) Users() users.Repository { return &UsersRepo{s: s} }

func (s *Store) Pets() pets.Repository { return &PetsRepo{s: s} }

func (s *Store) Transactor() adoptions.Transactor { return s }

func (s *Store) Close(ctx context.Context) error {
	return s.db.Close()
}

type txnKey struct{}

// WithinTx abre una txn de escritura; los repos la toman del contexto.
// Si otra txn modificó las mismas claves, el commit falla con badger.ErrConflict.
func (s *Store) WithinTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if _, ok := ctx.Value(txnKey{}).(*badger.Txn); ok {
		return fn(ctx)
	}
	return s.db.Update(func(txn *badger.Txn) error {
		return fn(context.WithValue(ctx, txnKey{}, txn))
	})
}

func (s *Store) update(ctx context.Context, fn func(txn *badger.Txn) error) error {
	if txn, ok := ctx.Value(txnKey{}).(*badger.Txn); ok {
		return fn(txn)
	}
	return s.db.Update(fn)
}

func (s *Store) view(ctx context.Context, fn func(txn *badger.Txn) error) error {
	if txn, ok := ctx.Value(txnKey{}).(*badger.Txn); ok {
		return fn(txn)
	}
	return s.db.View(fn)
}

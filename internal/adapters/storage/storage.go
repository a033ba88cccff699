package storage

import (
	"context"
	"fmt"

	bdg "pet-adoptions/internal/adapters/storage/badger"
	mem "pet-adoptions/internal/adapters/storage/memory"
	mdb "pet-adoptions/internal/adapters/storage/mongodb"
	pg "pet-adoptions/internal/adapters/storage/postgres"
	"pet-adoptions/internal/config"
	"pet-adoptions/internal/domain/adoptions"
	"pet-adoptions/internal/domain/pets"
	"pet-adoptions/internal/domain/users"
	"pet-adoptions/internal/platform/logger"
)

// Backend es el conjunto de repos + unidad de trabajo de un driver.
type Backend struct {
	Name  string
	Users users.Repository
	Pets  pets.Repository
	Tx    adoptions.Transactor

	closeFn func(ctx context.Context) error
}

func (b *Backend) Close(ctx context.Context) error {
	if b == nil || b.closeFn == nil {
		return nil
	}
	return b.closeFn(ctx)
}

// Memory arma el backend en memoria (dev/tests).
func Memory() *Backend {
	s := mem.NewStore()
	return &Backend{
		Name:  config.DriverMemory,
		Users: s.Users(),
		Pets:  s.Pets(),
		Tx:    s.Transactor(),
	}
}

// Open abre el backend según cfg.Driver.
func Open(ctx context.Context, cfg config.StorageConfig, log logger.Logger) (*Backend, error) {
	if log == nil {
		log = logger.Nop()
	}

	switch cfg.Driver {
	case "", config.DriverMemory:
		return Memory(), nil

	case config.DriverMongo:
		s, err := mdb.Open(ctx, mdb.Options{
			URI:          cfg.Mongo.URI,
			Database:     cfg.Mongo.Database,
			Transactions: cfg.Mongo.Transactions,
		})
		if err != nil {
			return nil, err
		}
		if !cfg.Mongo.Transactions {
			log.Warn("mongo transactions disabled; adopt/cancel writes are not atomic", nil)
		}
		return &Backend{
			Name:    config.DriverMongo,
			Users:   s.Users(),
			Pets:    s.Pets(),
			Tx:      s.Transactor(),
			closeFn: s.Close,
		}, nil

	case config.DriverPostgres:
		db, err := pg.Open(ctx, cfg.Postgres.DSN)
		if err != nil {
			return nil, fmt.Errorf("open postgres: %w", err)
		}
		if err := pg.Migrate(ctx, db); err != nil {
			_ = db.Close()
			return nil, err
		}
		return &Backend{
			Name:    config.DriverPostgres,
			Users:   pg.NewUsersRepo(db),
			Pets:    pg.NewPetsRepo(db),
			Tx:      pg.NewTransactor(db),
			closeFn: func(context.Context) error { return db.Close() },
		}, nil

	case config.DriverBadger:
		s, err := bdg.Open(bdg.Config{
			Path:       cfg.Badger.Path,
			InMemory:   cfg.Badger.InMemory,
			SyncWrites: !cfg.Badger.InMemory,
			Logger:     log,
		})
		if err != nil {
			return nil, err
		}
		return &Backend{
			Name:    config.DriverBadger,
			Users:   s.Users(),
			Pets:    s.Pets(),
			Tx:      s.Transactor(),
			closeFn: s.Close,
		}, nil

	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.Driver)
	}
}

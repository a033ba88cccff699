package mongodb

import (
	"context"
	"fmt"
	"time"

	"pet-adoptions/internal/domain/adoptions"
	"pet-adoptions/internal/domain/pets"
	"pet-adoptions/internal/domain/users"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	usersCollection = "users"
	petsCollection  = "pets"
)

// Store es el backend documental: una colección por recurso.
type Store struct {
	client       *mongo.Client
	db           *mongo.Database
	transactions bool
}

// Options configura la conexión.
// Transactions requiere replica set; en un mongod standalone dejarlo en false.
type Options struct {
	URI          string
	Database     string
	Transactions bool
}

func Open(ctx context.Context, opts Options) (*Store, error) {
	connectCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(connectCtx, options.Client().ApplyURI(opts.URI))
	if err != nil {
		return nil, fmt.Errorf("mongo connect: %w", err)
	}
	if err := client.Ping(connectCtx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("mongo ping: %w", err)
	}

	s := &Store{
		client:       client,
		db:           client.Database(opts.Database),
		transactions: opts.Transactions,
	}
	if err := s.ensureIndexes(connectCtx); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, err
	}
	return s, nil
}

func (s *Store) ensureIndexes(ctx context.Context) error {
	_, err := s.db.Collection(usersCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("create users.email index: %w", err)
	}
	_, err = s.db.Collection(petsCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "adopted", Value: 1}},
	})
	if err != nil {
		return fmt.Errorf("create pets.adopted index: %w", err)
	}
	return nil
}

func (s *Store) Users() users.Repository {
	return &UsersRepo{coll: s.db.Collection(usersCollection)}
}

func (s *Store) Pets() pets.Repository {
	return &PetsRepo{coll: s.db.Collection(petsCollection)}
}

// Transactor usa sesiones con transacción si están habilitadas.
func (s *Store) Transactor() adoptions.Transactor {
	if !s.transactions {
		return adoptions.Sequential{}
	}
	return &sessionTransactor{client: s.client}
}

func (s *Store) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}

type sessionTransactor struct {
	client *mongo.Client
}

// WithinTx corre fn una sola vez dentro de una transacción de sesión. Sin
// reintentos: un error transitorio del commit se devuelve tal cual. El
// SessionContext que recibe fn es el ctx que deben usar los repos.
func (t *sessionTransactor) WithinTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if mongo.SessionFromContext(ctx) != nil {
		return fn(ctx)
	}

	session, err := t.client.StartSession()
	if err != nil {
		return fmt.Errorf("start session: %w", err)
	}
	defer session.EndSession(ctx)

	return mongo.WithSession(ctx, session, func(sc mongo.SessionContext) error {
		if err := sc.StartTransaction(); err != nil {
			return fmt.Errorf("start transaction: %w", err)
		}
		if err := fn(sc); err != nil {
			_ = sc.AbortTransaction(context.WithoutCancel(sc))
			return err
		}
		if err := sc.CommitTransaction(sc); err != nil {
			return fmt.Errorf("commit transaction: %w", err)
		}
		return nil
	})
}

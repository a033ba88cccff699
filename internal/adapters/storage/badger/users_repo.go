package badger

import (
	"context"
	"errors"
	"strings"
	"time"

	"pet-adoptions/internal/domain/users"

	"github.com/dgraph-io/badger/v4"
	"go.mongodb.org/mongo-driver/bson"
)

// UsersRepo mantiene además un índice users_email/<email> -> id.
type UsersRepo struct {
	s *Store
}

func (r *UsersRepo) Create(ctx context.Context, u users.User) error {
	return r.s.update(ctx, func(txn *badger.Txn) error {
		return insertUser(txn, u)
	})
}

func (r *UsersRepo) CreateMany(ctx context.Context, us []users.User) error {
	return r.s.update(ctx, func(txn *badger.Txn) error {
		for _, u := range us {
			if err := insertUser(txn, u); err != nil {
				return err
			}
		}
		return nil
	})
}

func insertUser(txn *badger.Txn, u users.User) error {
	if strings.TrimSpace(u.ID) == "" {
		return errors.New("user id required")
	}
	taken, err := exists(txn, userKey(u.ID))
	if err != nil {
		return err
	}
	if taken {
		return errors.New("user already exists")
	}
	taken, err = exists(txn, emailKey(u.Email))
	if err != nil {
		return err
	}
	if taken {
		return users.ErrDuplicateEmail
	}
	if err := put(txn, userKey(u.ID), fromUser(u)); err != nil {
		return err
	}
	return txn.Set(emailKey(u.Email), []byte(u.ID))
}

func (r *UsersRepo) GetByID(ctx context.Context, id string) (users.User, error) {
	var rec userRecord
	err := r.s.view(ctx, func(txn *badger.Txn) error {
		return get(txn, userKey(id), &rec)
	})
	if err != nil {
		if errors.Is(err, badger.ErrKeyNotFound) {
			return users.User{}, users.ErrNotFound
		}
		return users.User{}, err
	}
	return rec.toDomain(), nil
}

func (r *UsersRepo) GetMany(ctx context.Context, ids []string) ([]users.User, error) {
	out := make([]users.User, 0, len(ids))
	seen := make(map[string]struct{}, len(ids))
	err := r.s.view(ctx, func(txn *badger.Txn) error {
		for _, id := range ids {
			if _, dup := seen[id]; dup {
				continue
			}
			seen[id] = struct{}{}

			var rec userRecord
			if err := get(txn, userKey(id), &rec); err != nil {
				if errors.Is(err, badger.ErrKeyNotFound) {
					continue
				}
				return err
			}
			out = append(out, rec.toDomain())
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (r *UsersRepo) List(ctx context.Context) ([]users.User, error) {
	out := make([]users.User, 0)
	err := r.s.view(ctx, func(txn *badger.Txn) error {
		return scan(txn, userPrefix, func(val []byte) error {
			var rec userRecord
			if err := bson.Unmarshal(val, &rec); err != nil {
				return err
			}
			out = append(out, rec.toDomain())
			return nil
		})
	})
	if err != nil {
		return nil, err
	}
	sortByCreated(out, func(u users.User) time.Time { return u.CreatedAt }, func(u users.User) string { return u.ID })
	return out, nil
}

// Update reemplaza el perfil conservando pets y reindexa el email si cambió.
func (r *UsersRepo) Update(ctx context.Context, u users.User) error {
	return r.s.update(ctx, func(txn *badger.Txn) error {
		var cur userRecord
		if err := get(txn, userKey(u.ID), &cur); err != nil {
			if errors.Is(err, badger.ErrKeyNotFound) {
				return users.ErrNotFound
			}
			return err
		}

		if cur.Email != u.Email {
			taken, err := exists(txn, emailKey(u.Email))
			if err != nil {
				return err
			}
			if taken {
				return users.ErrDuplicateEmail
			}
			if err := txn.Delete(emailKey(cur.Email)); err != nil {
				return err
			}
			if err := txn.Set(emailKey(u.Email), []byte(u.ID)); err != nil {
				return err
			}
		}

		next := fromUser(u)
		next.Pets = cur.Pets
		next.CreatedAt = cur.CreatedAt
		return put(txn, userKey(u.ID), next)
	})
}

func (r *UsersRepo) Delete(ctx context.Context, id string) error {
	return r.s.update(ctx, func(txn *badger.Txn) error {
		var cur userRecord
		if err := get(txn, userKey(id), &cur); err != nil {
			if errors.Is(err, badger.ErrKeyNotFound) {
				return nil
			}
			return err
		}
		if err := txn.Delete(emailKey(cur.Email)); err != nil {
			return err
		}
		return txn.Delete(userKey(id))
	})
}

func (r *UsersRepo) AddPet(ctx context.Context, userID, petID string) error {
	return r.mutatePets(ctx, userID, func(list []string) []string {
		for _, id := range list {
			if id == petID {
				return list
			}
		}
		return append(list, petID)
	})
}

func (r *UsersRepo) RemovePet(ctx context.Context, userID, petID string) error {
	return r.mutatePets(ctx, userID, func(list []string) []string {
		out := make([]string, 0, len(list))
		for _, id := range list {
			if id != petID {
				out = append(out, id)
			}
		}
		return out
	})
}

func (r *UsersRepo) mutatePets(ctx context.Context, userID string, fn func([]string) []string) error {
	return r.s.update(ctx, func(txn *badger.Txn) error {
		var cur userRecord
		if err := get(txn, userKey(userID), &cur); err != nil {
			if errors.Is(err, badger.ErrKeyNotFound) {
				return users.ErrNotFound
			}
			return err
		}
		cur.Pets = fn(cur.Pets)
		cur.UpdatedAt = time.Now().UTC()
		return put(txn, userKey(userID), cur)
	})
}

package badger

import (
	"sort"
	"time"

	"pet-adoptions/internal/domain/pets"
	"pet-adoptions/internal/domain/users"

	"github.com/dgraph-io/badger/v4"
	"go.mongodb.org/mongo-driver/bson"
)

const (
	userPrefix  = "users/"
	petPrefix   = "pets/"
	emailPrefix = "users_email/"
)

func userKey(id string) []byte     { return []byte(userPrefix + id) }
func petKey(id string) []byte      { return []byte(petPrefix + id) }
func emailKey(email string) []byte { return []byte(emailPrefix + email) }

type userRecord struct {
	ID        string    `bson:"_id"`
	FirstName string    `bson:"first_name"`
	LastName  string    `bson:"last_name"`
	Email     string    `bson:"email"`
	Password  string    `bson:"password"`
	Role      string    `bson:"role"`
	Pets      []string  `bson:"pets"`
	CreatedAt time.Time `bson:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt"`
}

type petRecord struct {
	ID        string    `bson:"_id"`
	Name      string    `bson:"name"`
	Specie    string    `bson:"specie"`
	BirthDate time.Time `bson:"birthDate"`
	Adopted   bool      `bson:"adopted"`
	Owner     *string   `bson:"owner"`
	Image     *string   `bson:"image"`
	CreatedAt time.Time `bson:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt"`
}

func fromUser(u users.User) userRecord {
	petIDs := u.Pets
	if petIDs == nil {
		petIDs = []string{}
	}
	return userRecord{
		ID:        u.ID,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Email:     u.Email,
		Password:  u.Password,
		Role:      string(u.Role),
		Pets:      petIDs,
		CreatedAt: u.CreatedAt.UTC(),
		UpdatedAt: u.UpdatedAt.UTC(),
	}
}

func (r userRecord) toDomain() users.User {
	petIDs := r.Pets
	if petIDs == nil {
		petIDs = []string{}
	}
	return users.User{
		ID:        r.ID,
		FirstName: r.FirstName,
		LastName:  r.LastName,
		Email:     r.Email,
		Password:  r.Password,
		Role:      users.Role(r.Role),
		Pets:      petIDs,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}

func fromPet(p pets.Pet) petRecord {
	return petRecord{
		ID:        p.ID,
		Name:      p.Name,
		Specie:    p.Specie,
		BirthDate: p.BirthDate.UTC(),
		Adopted:   p.Adopted,
		Owner:     p.Owner,
		Image:     p.Image,
		CreatedAt: p.CreatedAt.UTC(),
		UpdatedAt: p.UpdatedAt.UTC(),
	}
}

func (r petRecord) toDomain() pets.Pet {
	return pets.Pet{
		ID:        r.ID,
		Name:      r.Name,
		Specie:    r.Specie,
		BirthDate: r.BirthDate,
		Adopted:   r.Adopted,
		Owner:     r.Owner,
		Image:     r.Image,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}

// get decodifica la clave en out. Devuelve badger.ErrKeyNotFound si no existe.
func get(txn *badger.Txn, key []byte, out any) error {
	item, err := txn.Get(key)
	if err != nil {
		return err
	}
	return item.Value(func(val []byte) error {
		return bson.Unmarshal(val, out)
	})
}

func put(txn *badger.Txn, key []byte, v any) error {
	b, err := bson.Marshal(v)
	if err != nil {
		return err
	}
	return txn.Set(key, b)
}

func exists(txn *badger.Txn, key []byte) (bool, error) {
	_, err := txn.Get(key)
	if err == nil {
		return true, nil
	}
	if err == badger.ErrKeyNotFound {
		return false, nil
	}
	return false, err
}

// scan recorre todas las claves con prefix y llama fn con cada valor.
func scan(txn *badger.Txn, prefix string, fn func(val []byte) error) error {
	opts := badger.DefaultIteratorOptions
	opts.Prefix = []byte(prefix)
	it := txn.NewIterator(opts)
	defer it.Close()

	for it.Seek(opts.Prefix); it.ValidForPrefix(opts.Prefix); it.Next() {
		if err := it.Item().Value(fn); err != nil {
			return err
		}
	}
	return nil
}

func sortByCreated[T any](items []T, created func(T) time.Time, id func(T) string) {
	sort.Slice(items, func(i, j int) bool {
		ci, cj := created(items[i]), created(items[j])
		if ci.Equal(cj) {
			return id(items[i]) < id(items[j])
		}
		return ci.Before(cj)
	})
}

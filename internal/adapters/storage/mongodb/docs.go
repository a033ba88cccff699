package mongodb

import (
	"time"

	"pet-adoptions/internal/domain/pets"
	"pet-adoptions/internal/domain/users"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type userDoc struct {
	ID        primitive.ObjectID   `bson:"_id"`
	FirstName string               `bson:"first_name"`
	LastName  string               `bson:"last_name"`
	Email     string               `bson:"email"`
	Password  string               `bson:"password"`
	Role      string               `bson:"role"`
	Pets      []primitive.ObjectID `bson:"pets"`
	CreatedAt time.Time            `bson:"createdAt"`
	UpdatedAt time.Time            `bson:"updatedAt"`
}

type petDoc struct {
	ID        primitive.ObjectID  `bson:"_id"`
	Name      string              `bson:"name"`
	Specie    string              `bson:"specie"`
	BirthDate time.Time           `bson:"birthDate"`
	Adopted   bool                `bson:"adopted"`
	Owner     *primitive.ObjectID `bson:"owner"`
	Image     *string             `bson:"image"`
	CreatedAt time.Time           `bson:"createdAt"`
	UpdatedAt time.Time           `bson:"updatedAt"`
}

func toUserDoc(u users.User) (userDoc, error) {
	id, err := objectID(u.ID)
	if err != nil {
		return userDoc{}, err
	}
	petIDs, err := objectIDs(u.Pets)
	if err != nil {
		return userDoc{}, err
	}
	return userDoc{
		ID:        id,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Email:     u.Email,
		Password:  u.Password,
		Role:      string(u.Role),
		Pets:      petIDs,
		CreatedAt: u.CreatedAt.UTC(),
		UpdatedAt: u.UpdatedAt.UTC(),
	}, nil
}

func (d userDoc) toDomain() users.User {
	petIDs := make([]string, 0, len(d.Pets))
	for _, id := range d.Pets {
		petIDs = append(petIDs, id.Hex())
	}
	return users.User{
		ID:        d.ID.Hex(),
		FirstName: d.FirstName,
		LastName:  d.LastName,
		Email:     d.Email,
		Password:  d.Password,
		Role:      users.Role(d.Role),
		Pets:      petIDs,
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}
}

func toPetDoc(p pets.Pet) (petDoc, error) {
	id, err := objectID(p.ID)
	if err != nil {
		return petDoc{}, err
	}
	owner, err := optionalObjectID(p.Owner)
	if err != nil {
		return petDoc{}, err
	}
	return petDoc{
		ID:        id,
		Name:      p.Name,
		Specie:    p.Specie,
		BirthDate: p.BirthDate.UTC(),
		Adopted:   p.Adopted,
		Owner:     owner,
		Image:     p.Image,
		CreatedAt: p.CreatedAt.UTC(),
		UpdatedAt: p.UpdatedAt.UTC(),
	}, nil
}

func (d petDoc) toDomain() pets.Pet {
	p := pets.Pet{
		ID:        d.ID.Hex(),
		Name:      d.Name,
		Specie:    d.Specie,
		BirthDate: d.BirthDate,
		Adopted:   d.Adopted,
		Image:     d.Image,
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}
	if d.Owner != nil {
		o := d.Owner.Hex()
		p.Owner = &o
	}
	return p
}

package mongodb

import (
	"context"
	"errors"
	"time"

	"pet-adoptions/internal/domain/users"
	"pet-adoptions/internal/platform/ids"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type UsersRepo struct {
	coll *mongo.Collection
}

func (r *UsersRepo) Create(ctx context.Context, u users.User) error {
	doc, err := toUserDoc(u)
	if err != nil {
		return err
	}
	_, err = r.coll.InsertOne(ctx, doc)
	return mapUserErr(err)
}

func (r *UsersRepo) CreateMany(ctx context.Context, us []users.User) error {
	docs := make([]interface{}, 0, len(us))
	for _, u := range us {
		doc, err := toUserDoc(u)
		if err != nil {
			return err
		}
		docs = append(docs, doc)
	}
	if len(docs) == 0 {
		return nil
	}
	_, err := r.coll.InsertMany(ctx, docs)
	return mapUserErr(err)
}

func (r *UsersRepo) GetByID(ctx context.Context, id string) (users.User, error) {
	oid, ok := ids.ToObjectID(id)
	if !ok {
		return users.User{}, users.ErrNotFound
	}

	var doc userDoc
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return users.User{}, users.ErrNotFound
		}
		return users.User{}, err
	}
	return doc.toDomain(), nil
}

func (r *UsersRepo) GetMany(ctx context.Context, idList []string) ([]users.User, error) {
	oids := objectIDsLenient(idList)
	if len(oids) == 0 {
		return []users.User{}, nil
	}
	return r.find(ctx, bson.M{"_id": bson.M{"$in": oids}})
}

func (r *UsersRepo) List(ctx context.Context) ([]users.User, error) {
	return r.find(ctx, bson.M{})
}

func (r *UsersRepo) find(ctx context.Context, filter bson.M) ([]users.User, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}, {Key: "_id", Value: 1}})
	cur, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	out := make([]users.User, 0)
	for cur.Next(ctx) {
		var doc userDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, err
		}
		out = append(out, doc.toDomain())
	}
	return out, cur.Err()
}

// Update solo hace $set de los campos de perfil; pets no se toca.
func (r *UsersRepo) Update(ctx context.Context, u users.User) error {
	oid, ok := ids.ToObjectID(u.ID)
	if !ok {
		return users.ErrNotFound
	}
	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": bson.M{
		"first_name": u.FirstName,
		"last_name":  u.LastName,
		"email":      u.Email,
		"password":   u.Password,
		"role":       string(u.Role),
		"updatedAt":  u.UpdatedAt.UTC(),
	}})
	if err != nil {
		return mapUserErr(err)
	}
	if res.MatchedCount == 0 {
		return users.ErrNotFound
	}
	return nil
}

func (r *UsersRepo) Delete(ctx context.Context, id string) error {
	oid, ok := ids.ToObjectID(id)
	if !ok {
		return nil
	}
	_, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	return err
}

// AddPet usa $addToSet: agrega al final y no duplica.
func (r *UsersRepo) AddPet(ctx context.Context, userID, petID string) error {
	return r.updatePets(ctx, userID, petID, "$addToSet")
}

func (r *UsersRepo) RemovePet(ctx context.Context, userID, petID string) error {
	return r.updatePets(ctx, userID, petID, "$pull")
}

func (r *UsersRepo) updatePets(ctx context.Context, userID, petID, op string) error {
	uid, ok := ids.ToObjectID(userID)
	if !ok {
		return users.ErrNotFound
	}
	pid, err := objectID(petID)
	if err != nil {
		return err
	}
	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": uid}, bson.M{
		op:     bson.M{"pets": pid},
		"$set": bson.M{"updatedAt": time.Now().UTC()},
	})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return users.ErrNotFound
	}
	return nil
}

func mapUserErr(err error) error {
	if err != nil && mongo.IsDuplicateKeyError(err) {
		return users.ErrDuplicateEmail
	}
	return err
}

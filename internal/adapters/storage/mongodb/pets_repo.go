package mongodb

import (
	"context"
	"errors"
	"time"

	"pet-adoptions/internal/domain/pets"
	"pet-adoptions/internal/platform/ids"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type PetsRepo struct {
	coll *mongo.Collection
}

func (r *PetsRepo) Create(ctx context.Context, p pets.Pet) error {
	doc, err := toPetDoc(p)
	if err != nil {
		return err
	}
	_, err = r.coll.InsertOne(ctx, doc)
	return err
}

func (r *PetsRepo) CreateMany(ctx context.Context, ps []pets.Pet) error {
	docs := make([]interface{}, 0, len(ps))
	for _, p := range ps {
		doc, err := toPetDoc(p)
		if err != nil {
			return err
		}
		docs = append(docs, doc)
	}
	if len(docs) == 0 {
		return nil
	}
	_, err := r.coll.InsertMany(ctx, docs)
	return err
}

func (r *PetsRepo) GetByID(ctx context.Context, id string) (pets.Pet, error) {
	oid, ok := ids.ToObjectID(id)
	if !ok {
		return pets.Pet{}, pets.ErrNotFound
	}

	var doc petDoc
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return pets.Pet{}, pets.ErrNotFound
		}
		return pets.Pet{}, err
	}
	return doc.toDomain(), nil
}

func (r *PetsRepo) GetMany(ctx context.Context, idList []string) ([]pets.Pet, error) {
	oids := objectIDsLenient(idList)
	if len(oids) == 0 {
		return []pets.Pet{}, nil
	}
	return r.find(ctx, bson.M{"_id": bson.M{"$in": oids}})
}

func (r *PetsRepo) List(ctx context.Context) ([]pets.Pet, error) {
	return r.find(ctx, bson.M{})
}

func (r *PetsRepo) ListAdopted(ctx context.Context) ([]pets.Pet, error) {
	return r.find(ctx, bson.M{"adopted": true, "owner": bson.M{"$ne": nil}})
}

func (r *PetsRepo) find(ctx context.Context, filter bson.M) ([]pets.Pet, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}, {Key: "_id", Value: 1}})
	cur, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	out := make([]pets.Pet, 0)
	for cur.Next(ctx) {
		var doc petDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, err
		}
		out = append(out, doc.toDomain())
	}
	return out, cur.Err()
}

// Update hace $set solo de las claves presentes en el patch y devuelve el
// documento resultante.
func (r *PetsRepo) Update(ctx context.Context, id string, patch pets.Patch) (pets.Pet, error) {
	oid, ok := ids.ToObjectID(id)
	if !ok {
		return pets.Pet{}, pets.ErrNotFound
	}
	set, err := petPatchSet(patch)
	if err != nil {
		return pets.Pet{}, err
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var doc petDoc
	if err := r.coll.FindOneAndUpdate(ctx, bson.M{"_id": oid}, bson.M{"$set": set}, opts).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return pets.Pet{}, pets.ErrNotFound
		}
		return pets.Pet{}, err
	}
	return doc.toDomain(), nil
}

func petPatchSet(patch pets.Patch) (bson.M, error) {
	set := bson.M{}
	if patch.Name != nil {
		set["name"] = *patch.Name
	}
	if patch.Specie != nil {
		set["specie"] = *patch.Specie
	}
	if patch.BirthDate != nil {
		set["birthDate"] = patch.BirthDate.UTC()
	}
	if patch.Adopted != nil {
		set["adopted"] = *patch.Adopted
	}
	if patch.Owner.Present {
		owner, err := optionalObjectID(patch.Owner.Value)
		if err != nil {
			return nil, err
		}
		set["owner"] = owner
	}
	if patch.Image.Present {
		set["image"] = patch.Image.Value
	}
	updatedAt := patch.UpdatedAt
	if updatedAt.IsZero() {
		updatedAt = time.Now()
	}
	set["updatedAt"] = updatedAt.UTC()
	return set, nil
}

func (r *PetsRepo) Delete(ctx context.Context, id string) error {
	oid, ok := ids.ToObjectID(id)
	if !ok {
		return nil
	}
	_, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	return err
}

// SetAdoption filtra por el estado previo: adoptar exige adopted=false y
// liberar exige adopted=true.
func (r *PetsRepo) SetAdoption(ctx context.Context, petID string, owner *string) error {
	oid, ok := ids.ToObjectID(petID)
	if !ok {
		return pets.ErrNotFound
	}
	ownerOID, err := optionalObjectID(owner)
	if err != nil {
		return err
	}
	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": oid, "adopted": owner == nil}, bson.M{"$set": bson.M{
		"adopted":   owner != nil,
		"owner":     ownerOID,
		"updatedAt": time.Now().UTC(),
	}})
	if err != nil {
		return err
	}
	if res.MatchedCount > 0 {
		return nil
	}

	n, err := r.coll.CountDocuments(ctx, bson.M{"_id": oid})
	if err != nil {
		return err
	}
	if n > 0 {
		return pets.ErrAdoptionConflict
	}
	return pets.ErrNotFound
}

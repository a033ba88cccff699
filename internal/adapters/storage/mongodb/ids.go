package mongodb

import (
	"fmt"

	"pet-adoptions/internal/platform/ids"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

func objectID(s string) (primitive.ObjectID, error) {
	oid, ok := ids.ToObjectID(s)
	if !ok {
		return primitive.NilObjectID, fmt.Errorf("invalid object id %q", s)
	}
	return oid, nil
}

func optionalObjectID(s *string) (*primitive.ObjectID, error) {
	if s == nil {
		return nil, nil
	}
	oid, err := objectID(*s)
	if err != nil {
		return nil, err
	}
	return &oid, nil
}

// objectIDsLenient ignora los ids mal formados (lecturas por lote).
func objectIDsLenient(in []string) []primitive.ObjectID {
	out := make([]primitive.ObjectID, 0, len(in))
	for _, s := range in {
		if oid, ok := ids.ToObjectID(s); ok {
			out = append(out, oid)
		}
	}
	return out
}

func objectIDs(in []string) ([]primitive.ObjectID, error) {
	out := make([]primitive.ObjectID, 0, len(in))
	for _, s := range in {
		oid, err := objectID(s)
		if err != nil {
			return nil, err
		}
		out = append(out, oid)
	}
	return out, nil
}

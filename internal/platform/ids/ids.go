package ids

import (
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// New devuelve un identificador nuevo (ObjectID en hex, 24 chars).
// Todos los backends usan el mismo formato para que la validación sea uniforme.
func New() string {
	return primitive.NewObjectID().Hex()
}

// Valid indica si s es un identificador bien formado.
func Valid(s string) bool {
	return primitive.IsValidObjectID(strings.TrimSpace(s))
}

// ToObjectID convierte un id hex a ObjectID (lo usa el adapter de Mongo).
func ToObjectID(s string) (primitive.ObjectID, bool) {
	oid, err := primitive.ObjectIDFromHex(strings.TrimSpace(s))
	if err != nil {
		return primitive.NilObjectID, false
	}
	return oid, true
}

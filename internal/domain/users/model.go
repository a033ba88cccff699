package users

import "time"

// Role define el rol del usuario.
// @Enum user, admin
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// User representa un usuario que puede adoptar mascotas.
type User struct {
	ID string

	FirstName string
	LastName  string
	Email     string // único en el sistema
	Password  string // hash bcrypt; nunca se devuelve en la API
	Role      Role

	// Pets: ids de mascotas adoptadas, en orden de adopción.
	// Solo lo modifica el módulo adoptions.
	Pets []string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// PetSummary es la vista reducida de una mascota cuando se resuelve user.pets.
type PetSummary struct {
	ID        string
	Name      string
	Specie    string
	BirthDate time.Time
	Adopted   bool
	Image     *string
}

// Resolved es un usuario con sus mascotas resueltas.
type Resolved struct {
	User
	PetDetails []PetSummary
}

package users

import (
	"errors"
	"net/http"
	"time"

	"pet-adoptions/internal/platform/httpjson"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/users", func(ur chi.Router) {
		ur.Get("/", listUsersHandler(svc))
		ur.Post("/", createUserHandler(svc))
		ur.Get("/{userID}", getUserHandler(svc))
		ur.Put("/{userID}", updateUserHandler(svc))
		ur.Delete("/{userID}", deleteUserHandler(svc))
	})
}

// Response es la representación pública de un usuario (sin password).
// Pets es []string sin resolver o []PetSummaryResponse resuelto.
type Response struct {
	ID        string    `json:"id"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Email     string    `json:"email"`
	Role      Role      `json:"role"`
	Pets      any       `json:"pets"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// PetSummaryResponse es una mascota dentro de user.pets resuelto.
type PetSummaryResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Specie    string    `json:"specie"`
	BirthDate time.Time `json:"birthDate"`
	Adopted   bool      `json:"adopted"`
	Image     *string   `json:"image"`
}

func NewResponse(u User) Response {
	petIDs := u.Pets
	if petIDs == nil {
		petIDs = []string{}
	}
	return Response{
		ID:        u.ID,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Email:     u.Email,
		Role:      u.Role,
		Pets:      petIDs,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

func NewResolvedResponse(r Resolved) Response {
	out := NewResponse(r.User)
	if r.PetDetails == nil {
		return out
	}
	pets := make([]PetSummaryResponse, 0, len(r.PetDetails))
	for _, p := range r.PetDetails {
		pets = append(pets, PetSummaryResponse{
			ID:        p.ID,
			Name:      p.Name,
			Specie:    p.Specie,
			BirthDate: p.BirthDate,
			Adopted:   p.Adopted,
			Image:     p.Image,
		})
	}
	out.Pets = pets
	return out
}

// listUsersHandler godoc
// @Summary Listar usuarios
// @Description Devuelve todos los usuarios con sus mascotas resueltas.
// @Tags users
// @Produce json
// @Success 200 {object} httpjson.Envelope{payload=[]Response}
// @Failure 500 {object} httpjson.Envelope
// @Router /users [get]
func listUsersHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.List(r.Context())
		if err != nil {
			httpjson.Error(w, http.StatusInternalServerError, err.Error())
			return
		}
		resolved, err := svc.Resolve(r.Context(), items)
		if err != nil {
			httpjson.Error(w, http.StatusInternalServerError, err.Error())
			return
		}

		out := make([]Response, 0, len(resolved))
		for _, u := range resolved {
			out = append(out, NewResolvedResponse(u))
		}
		httpjson.Payload(w, http.StatusOK, out)
	}
}

// getUserHandler godoc
// @Summary Obtener usuario
// @Tags users
// @Produce json
// @Param userID path string true "ID del usuario"
// @Success 200 {object} httpjson.Envelope{payload=Response}
// @Failure 404 {object} httpjson.Envelope
// @Failure 500 {object} httpjson.Envelope
// @Router /users/{userID} [get]
func getUserHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		u, err := svc.GetByID(r.Context(), chi.URLParam(r, "userID"))
		if err != nil {
			writeError(w, err)
			return
		}
		resolved, err := svc.ResolveOne(r.Context(), u)
		if err != nil {
			httpjson.Error(w, http.StatusInternalServerError, err.Error())
			return
		}
		httpjson.Payload(w, http.StatusOK, NewResolvedResponse(resolved))
	}
}

// createUserHandler godoc
// @Summary Crear usuario
// @Description La contraseña se guarda como hash bcrypt. Errores de validación y email duplicado responden 500.
// @Tags users
// @Accept json
// @Produce json
// @Param payload body CreateInput true "Datos del usuario"
// @Success 201 {object} httpjson.Envelope{payload=Response}
// @Failure 500 {object} httpjson.Envelope
// @Router /users [post]
func createUserHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CreateInput
		if err := httpjson.Decode(r, &req); err != nil {
			httpjson.Error(w, http.StatusInternalServerError, "error creating user: invalid json")
			return
		}

		u, err := svc.Create(r.Context(), req)
		if err != nil {
			httpjson.Error(w, http.StatusInternalServerError, err.Error())
			return
		}
		httpjson.Payload(w, http.StatusCreated, NewResponse(u))
	}
}

// updateUserHandler godoc
// @Summary Actualizar usuario
// @Description Merge parcial. La lista de pets no se puede modificar por acá (solo vía adopciones).
// @Tags users
// @Accept json
// @Produce json
// @Param userID path string true "ID del usuario"
// @Param payload body UpdateInput true "Campos a modificar"
// @Success 200 {object} httpjson.Envelope{payload=Response}
// @Failure 404 {object} httpjson.Envelope
// @Failure 500 {object} httpjson.Envelope
// @Router /users/{userID} [put]
func updateUserHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req UpdateInput
		if err := httpjson.Decode(r, &req); err != nil {
			httpjson.Error(w, http.StatusInternalServerError, "error updating user: invalid json")
			return
		}

		u, err := svc.Update(r.Context(), chi.URLParam(r, "userID"), req)
		if err != nil {
			writeError(w, err)
			return
		}
		resolved, err := svc.ResolveOne(r.Context(), u)
		if err != nil {
			httpjson.Error(w, http.StatusInternalServerError, err.Error())
			return
		}
		httpjson.Payload(w, http.StatusOK, NewResolvedResponse(resolved))
	}
}

// deleteUserHandler godoc
// @Summary Borrar usuario
// @Description Idempotente: responde éxito aunque el usuario no exista.
// @Tags users
// @Produce json
// @Param userID path string true "ID del usuario"
// @Success 200 {object} httpjson.Envelope
// @Failure 500 {object} httpjson.Envelope
// @Router /users/{userID} [delete]
func deleteUserHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := svc.Delete(r.Context(), chi.URLParam(r, "userID")); err != nil {
			httpjson.Error(w, http.StatusInternalServerError, err.Error())
			return
		}
		httpjson.Message(w, http.StatusOK, "user deleted successfully", nil)
	}
}

func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrNotFound):
		httpjson.Error(w, http.StatusNotFound, "user not found")
	default:
		httpjson.Error(w, http.StatusInternalServerError, err.Error())
	}
}

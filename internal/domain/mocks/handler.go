package mocks

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"net/http"
	"time"

	"pet-adoptions/internal/domain/pets"
	"pet-adoptions/internal/domain/users"
	"pet-adoptions/internal/platform/httpjson"

	"github.com/go-chi/chi/v5"
)

const (
	DefaultMockPets    = 100
	DefaultMockUsers   = 50
	DefaultMaxGenerate = 10_000
)

// Options define cuántos registros devuelven los GET de mocks.
// MaxGenerate acota cada cantidad de POST /mocks/generateData.
type Options struct {
	Pets        int
	Users       int
	MaxGenerate int
}

func RegisterRoutes(r chi.Router, svc *Service, opts Options) {
	if opts.Pets <= 0 {
		opts.Pets = DefaultMockPets
	}
	if opts.Users <= 0 {
		opts.Users = DefaultMockUsers
	}
	if opts.MaxGenerate <= 0 {
		opts.MaxGenerate = DefaultMaxGenerate
	}

	r.Route("/mocks", func(mr chi.Router) {
		mr.Get("/mockingpets", mockPetsHandler(svc, opts.Pets))
		mr.Get("/mockingusers", mockUsersHandler(svc, opts.Users))
		mr.Post("/generateData", generateDataHandler(svc, opts.MaxGenerate))
	})
}

// PetResponse es una mascota generada que todavía no tiene id.
type PetResponse struct {
	Name      string    `json:"name"`
	Specie    string    `json:"specie"`
	BirthDate time.Time `json:"birthDate"`
	Adopted   bool      `json:"adopted"`
	Owner     *string   `json:"owner"`
	Image     *string   `json:"image"`
}

// UserResponse es un usuario generado; la contraseña no se expone.
type UserResponse struct {
	FirstName string   `json:"first_name"`
	LastName  string   `json:"last_name"`
	Email     string   `json:"email"`
	Role      string   `json:"role"`
	Pets      []string `json:"pets"`
}

// GenerateRequest es el body de POST /mocks/generateData.
type GenerateRequest struct {
	Users int `json:"users" example:"10"`
	Pets  int `json:"pets" example:"20"`
}

// GenerateResponse es el payload de POST /mocks/generateData.
type GenerateResponse struct {
	UsersCreated int              `json:"usersCreated"`
	PetsCreated  int              `json:"petsCreated"`
	Users        []users.Response `json:"users"`
	Pets         []pets.Response  `json:"pets"`
}

// mockPetsHandler godoc
// @Summary Mascotas de prueba
// @Description Genera mascotas falsas sin guardarlas.
// @Tags mocks
// @Produce json
// @Success 200 {object} httpjson.Envelope{payload=[]PetResponse}
// @Failure 500 {object} httpjson.Envelope
// @Router /mocks/mockingpets [get]
func mockPetsHandler(svc *Service, n int) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.Pets(n)
		if err != nil {
			httpjson.Error(w, http.StatusInternalServerError, err.Error())
			return
		}
		out := make([]PetResponse, 0, len(items))
		for _, p := range items {
			out = append(out, PetResponse{
				Name:      p.Name,
				Specie:    p.Specie,
				BirthDate: p.BirthDate.Time,
				Adopted:   p.Adopted,
				Owner:     p.Owner,
				Image:     p.Image,
			})
		}
		httpjson.Payload(w, http.StatusOK, out)
	}
}

// mockUsersHandler godoc
// @Summary Usuarios de prueba
// @Description Genera usuarios falsos sin guardarlos. La contraseña de todos es coder123.
// @Tags mocks
// @Produce json
// @Success 200 {object} httpjson.Envelope{payload=[]UserResponse}
// @Failure 500 {object} httpjson.Envelope
// @Router /mocks/mockingusers [get]
func mockUsersHandler(svc *Service, n int) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.Users(n)
		if err != nil {
			httpjson.Error(w, http.StatusInternalServerError, err.Error())
			return
		}
		out := make([]UserResponse, 0, len(items))
		for _, u := range items {
			out = append(out, UserResponse{
				FirstName: u.FirstName,
				LastName:  u.LastName,
				Email:     u.Email,
				Role:      string(u.Role),
				Pets:      []string{},
			})
		}
		httpjson.Payload(w, http.StatusOK, out)
	}
}

// generateDataHandler godoc
// @Summary Generar y guardar datos
// @Description Inserta usuarios y mascotas falsos. Ambos parámetros son opcionales (default 0) y tienen un máximo configurable (mocks.max_generate).
// @Tags mocks
// @Accept json
// @Produce json
// @Param payload body GenerateRequest true "Cantidades a generar"
// @Success 201 {object} httpjson.Envelope{payload=GenerateResponse}
// @Failure 400 {object} httpjson.Envelope
// @Failure 500 {object} httpjson.Envelope
// @Router /mocks/generateData [post]
func generateDataHandler(svc *Service, limit int) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var raw map[string]json.RawMessage
		if err := httpjson.Decode(r, &raw); err != nil {
			httpjson.Error(w, http.StatusBadRequest, ErrInvalidCount.Error())
			return
		}

		nUsers, err := countField(raw, "users", limit)
		if err != nil {
			httpjson.Error(w, http.StatusBadRequest, err.Error())
			return
		}
		nPets, err := countField(raw, "pets", limit)
		if err != nil {
			httpjson.Error(w, http.StatusBadRequest, err.Error())
			return
		}

		res, err := svc.Generate(r.Context(), nUsers, nPets)
		if err != nil {
			if errors.Is(err, ErrInvalidCount) {
				httpjson.Error(w, http.StatusBadRequest, err.Error())
				return
			}
			httpjson.Error(w, http.StatusInternalServerError, err.Error())
			return
		}

		out := GenerateResponse{
			UsersCreated: res.UsersCreated,
			PetsCreated:  res.PetsCreated,
			Users:        make([]users.Response, 0, len(res.Users)),
			Pets:         make([]pets.Response, 0, len(res.Pets)),
		}
		for _, u := range res.Users {
			out.Users = append(out.Users, users.NewResponse(u))
		}
		for _, p := range res.Pets {
			out.Pets = append(out.Pets, pets.NewResponse(p))
		}

		msg := fmt.Sprintf("data generated successfully: %d users and %d pets", res.UsersCreated, res.PetsCreated)
		httpjson.Message(w, http.StatusCreated, msg, out)
	}
}

// countField exige un entero JSON entre 0 y limit. Ausente cuenta como 0.
func countField(raw map[string]json.RawMessage, key string, limit int) (int, error) {
	v, ok := raw[key]
	if !ok {
		return 0, nil
	}
	if string(v) == "null" {
		return 0, ErrInvalidCount
	}
	var f float64
	if err := json.Unmarshal(v, &f); err != nil {
		return 0, ErrInvalidCount
	}
	if f < 0 || f != math.Trunc(f) || f > float64(limit) {
		return 0, ErrInvalidCount
	}
	return int(f), nil
}

package adoptions

import (
	"context"
	"errors"
	"net/http"

	"pet-adoptions/internal/domain/pets"
	"pet-adoptions/internal/domain/users"
	"pet-adoptions/internal/platform/httpjson"

	"github.com/go-chi/chi/v5"
)

// OwnerResolver resuelve pet.owner para las respuestas de listado.
// *pets.Service lo cumple.
type OwnerResolver interface {
	Resolve(ctx context.Context, items []pets.Pet) ([]pets.Resolved, error)
}

func RegisterRoutes(r chi.Router, svc *Service, owners OwnerResolver) {
	r.Route("/adoptions", func(ar chi.Router) {
		ar.Get("/", listAdoptionsHandler(svc, owners))
		ar.Get("/user/{userID}", listUserAdoptionsHandler(svc, owners))
		ar.Get("/{adoptionID}", getAdoptionHandler(svc, owners))
		ar.Post("/{userID}/{petID}", adoptHandler(svc))
		ar.Delete("/{userID}/{petID}", cancelHandler(svc))
	})
}

// CreatedResponse es el payload de POST /adoptions/{userID}/{petID}.
type CreatedResponse struct {
	Adoption pets.Response  `json:"adoption"`
	User     users.Response `json:"user"`
}

// CancelledResponse es el payload de DELETE /adoptions/{userID}/{petID}.
type CancelledResponse struct {
	Pet  pets.Response  `json:"pet"`
	User users.Response `json:"user"`
}

// listAdoptionsHandler godoc
// @Summary Listar adopciones
// @Description Mascotas con adopted=true y owner no nulo, con el dueño resuelto.
// @Tags adoptions
// @Produce json
// @Success 200 {object} httpjson.Envelope{payload=[]pets.Response}
// @Failure 500 {object} httpjson.Envelope
// @Router /adoptions [get]
func listAdoptionsHandler(svc *Service, owners OwnerResolver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.List(r.Context())
		if err != nil {
			httpjson.Error(w, http.StatusInternalServerError, err.Error())
			return
		}
		writePets(w, r, owners, items)
	}
}

// getAdoptionHandler godoc
// @Summary Obtener adopción
// @Description El id de la adopción es el id de la mascota adoptada.
// @Tags adoptions
// @Produce json
// @Param adoptionID path string true "ID de la mascota adoptada"
// @Success 200 {object} httpjson.Envelope{payload=pets.Response}
// @Failure 400 {object} httpjson.Envelope
// @Failure 404 {object} httpjson.Envelope
// @Failure 500 {object} httpjson.Envelope
// @Router /adoptions/{adoptionID} [get]
func getAdoptionHandler(svc *Service, owners OwnerResolver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, err := svc.Get(r.Context(), chi.URLParam(r, "adoptionID"))
		if err != nil {
			writeError(w, err, "invalid adoption id")
			return
		}
		resolved, err := owners.Resolve(r.Context(), []pets.Pet{p})
		if err != nil {
			httpjson.Error(w, http.StatusInternalServerError, err.Error())
			return
		}
		httpjson.Payload(w, http.StatusOK, pets.NewResolvedResponse(resolved[0]))
	}
}

// adoptHandler godoc
// @Summary Crear adopción
// @Description Marca la mascota como adoptada por el usuario y la agrega a su lista.
// @Tags adoptions
// @Produce json
// @Param userID path string true "ID del usuario"
// @Param petID path string true "ID de la mascota"
// @Success 201 {object} httpjson.Envelope{payload=CreatedResponse}
// @Failure 400 {object} httpjson.Envelope
// @Failure 404 {object} httpjson.Envelope
// @Failure 500 {object} httpjson.Envelope
// @Router /adoptions/{userID}/{petID} [post]
func adoptHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		res, err := svc.Adopt(r.Context(), chi.URLParam(r, "userID"), chi.URLParam(r, "petID"))
		if err != nil {
			writeError(w, err, "invalid user or pet id")
			return
		}
		httpjson.Message(w, http.StatusCreated, "adoption created successfully", CreatedResponse{
			Adoption: pets.NewResponse(res.Pet),
			User:     users.NewResponse(res.User),
		})
	}
}

// cancelHandler godoc
// @Summary Cancelar adopción
// @Description Solo el usuario dueño puede cancelar la adopción.
// @Tags adoptions
// @Produce json
// @Param userID path string true "ID del usuario"
// @Param petID path string true "ID de la mascota"
// @Success 200 {object} httpjson.Envelope{payload=CancelledResponse}
// @Failure 400 {object} httpjson.Envelope
// @Failure 404 {object} httpjson.Envelope
// @Failure 500 {object} httpjson.Envelope
// @Router /adoptions/{userID}/{petID} [delete]
func cancelHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		res, err := svc.Cancel(r.Context(), chi.URLParam(r, "userID"), chi.URLParam(r, "petID"))
		if err != nil {
			writeError(w, err, "invalid user or pet id")
			return
		}
		httpjson.Message(w, http.StatusOK, "adoption cancelled successfully", CancelledResponse{
			Pet:  pets.NewResponse(res.Pet),
			User: users.NewResponse(res.User),
		})
	}
}

// listUserAdoptionsHandler godoc
// @Summary Adopciones de un usuario
// @Description Resuelve user.pets en el orden guardado, solo mascotas con adopted=true.
// @Tags adoptions
// @Produce json
// @Param userID path string true "ID del usuario"
// @Success 200 {object} httpjson.Envelope{payload=[]pets.Response}
// @Failure 400 {object} httpjson.Envelope
// @Failure 404 {object} httpjson.Envelope
// @Failure 500 {object} httpjson.Envelope
// @Router /adoptions/user/{userID} [get]
func listUserAdoptionsHandler(svc *Service, owners OwnerResolver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.ListForUser(r.Context(), chi.URLParam(r, "userID"))
		if err != nil {
			writeError(w, err, "invalid user id")
			return
		}
		writePets(w, r, owners, items)
	}
}

func writePets(w http.ResponseWriter, r *http.Request, owners OwnerResolver, items []pets.Pet) {
	resolved, err := owners.Resolve(r.Context(), items)
	if err != nil {
		httpjson.Error(w, http.StatusInternalServerError, err.Error())
		return
	}
	httpjson.Payload(w, http.StatusOK, pets.NewResolvedResponses(resolved))
}

func writeError(w http.ResponseWriter, err error, invalidMsg string) {
	switch {
	case errors.Is(err, ErrInvalidID):
		httpjson.Error(w, http.StatusBadRequest, invalidMsg)
	case errors.Is(err, ErrUserNotFound):
		httpjson.Error(w, http.StatusNotFound, "user not found")
	case errors.Is(err, ErrPetNotFound):
		httpjson.Error(w, http.StatusNotFound, "pet not found")
	case errors.Is(err, ErrAdoptionNotFound):
		httpjson.Error(w, http.StatusNotFound, "adoption not found")
	case errors.Is(err, ErrAlreadyAdopted), errors.Is(err, ErrNotOwned):
		httpjson.Error(w, http.StatusBadRequest, err.Error())
	default:
		httpjson.Error(w, http.StatusInternalServerError, err.Error())
	}
}

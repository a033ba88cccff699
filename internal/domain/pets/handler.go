package pets

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"pet-adoptions/internal/platform/httpjson"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/pets", func(pr chi.Router) {
		pr.Get("/", listPetsHandler(svc))
		pr.Post("/", createPetHandler(svc))
		pr.Get("/{petID}", getPetHandler(svc))
		pr.Put("/{petID}", updatePetHandler(svc))
		pr.Delete("/{petID}", deletePetHandler(svc))
	})
}

// Response es la representación pública de una mascota.
// Owner es null, el id del dueño, o un OwnerResponse si se resolvió.
type Response struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Specie    string    `json:"specie"`
	BirthDate time.Time `json:"birthDate"`
	Adopted   bool      `json:"adopted"`
	Owner     any       `json:"owner"`
	Image     *string   `json:"image"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// OwnerResponse es el dueño resuelto dentro de una mascota.
type OwnerResponse struct {
	ID        string `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Role      string `json:"role"`
}

func NewResponse(p Pet) Response {
	var owner any
	if p.Owner != nil {
		owner = *p.Owner
	}
	return Response{
		ID:        p.ID,
		Name:      p.Name,
		Specie:    p.Specie,
		BirthDate: p.BirthDate,
		Adopted:   p.Adopted,
		Owner:     owner,
		Image:     p.Image,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}

// NewResolvedResponse usa el dueño resuelto si existe; si el usuario ya no existe
// deja el id tal cual.
func NewResolvedResponse(r Resolved) Response {
	out := NewResponse(r.Pet)
	if r.OwnerDetail != nil {
		out.Owner = OwnerResponse{
			ID:        r.OwnerDetail.ID,
			FirstName: r.OwnerDetail.FirstName,
			LastName:  r.OwnerDetail.LastName,
			Email:     r.OwnerDetail.Email,
			Role:      r.OwnerDetail.Role,
		}
	}
	return out
}

func NewResolvedResponses(items []Resolved) []Response {
	out := make([]Response, 0, len(items))
	for _, r := range items {
		out = append(out, NewResolvedResponse(r))
	}
	return out
}

// listPetsHandler godoc
// @Summary Listar mascotas
// @Description Devuelve todas las mascotas con el dueño resuelto.
// @Tags pets
// @Produce json
// @Success 200 {object} httpjson.Envelope{payload=[]Response}
// @Failure 500 {object} httpjson.Envelope
// @Router /pets [get]
func listPetsHandler(svc *Service) http.HandlerFunc {
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
		httpjson.Payload(w, http.StatusOK, NewResolvedResponses(resolved))
	}
}

// getPetHandler godoc
// @Summary Obtener mascota
// @Tags pets
// @Produce json
// @Param petID path string true "ID de la mascota"
// @Success 200 {object} httpjson.Envelope{payload=Response}
// @Failure 404 {object} httpjson.Envelope
// @Failure 500 {object} httpjson.Envelope
// @Router /pets/{petID} [get]
func getPetHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, err := svc.GetByID(r.Context(), chi.URLParam(r, "petID"))
		if err != nil {
			writeError(w, err)
			return
		}
		resolved, err := svc.ResolveOne(r.Context(), p)
		if err != nil {
			httpjson.Error(w, http.StatusInternalServerError, err.Error())
			return
		}
		httpjson.Payload(w, http.StatusOK, NewResolvedResponse(resolved))
	}
}

// createPetHandler godoc
// @Summary Crear mascota
// @Description birthDate en formato YYYY-MM-DD o RFC3339. Errores de validación responden 500.
// @Tags pets
// @Accept json
// @Produce json
// @Param payload body CreateInput true "Datos de la mascota"
// @Success 201 {object} httpjson.Envelope{payload=Response}
// @Failure 500 {object} httpjson.Envelope
// @Router /pets [post]
func createPetHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CreateInput
		if err := httpjson.Decode(r, &req); err != nil {
			httpjson.Error(w, http.StatusInternalServerError, "error creating pet: "+decodeMessage(err))
			return
		}

		p, err := svc.Create(r.Context(), req)
		if err != nil {
			httpjson.Error(w, http.StatusInternalServerError, err.Error())
			return
		}
		httpjson.Payload(w, http.StatusCreated, NewResponse(p))
	}
}

type updatePetRequest struct {
	Name      *string `json:"name"`
	Specie    *string `json:"specie"`
	BirthDate *Date   `json:"birthDate"`
	Adopted   *bool   `json:"adopted"`
}

// updatePetHandler godoc
// @Summary Actualizar mascota
// @Description Merge parcial. owner e image aceptan null para limpiarlos. Modificar adopted/owner por acá no actualiza la lista del usuario.
// @Tags pets
// @Accept json
// @Produce json
// @Param petID path string true "ID de la mascota"
// @Param payload body updatePetRequest true "Campos a modificar"
// @Success 200 {object} httpjson.Envelope{payload=Response}
// @Failure 404 {object} httpjson.Envelope
// @Failure 500 {object} httpjson.Envelope
// @Router /pets/{petID} [put]
func updatePetHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		// owner/image: null exige detectar presencia del campo, así que los
		// mismos bytes se leen a un map y al struct de campos simples.
		var body json.RawMessage
		if err := httpjson.Decode(r, &body); err != nil {
			httpjson.Error(w, http.StatusInternalServerError, "error updating pet: invalid json")
			return
		}
		if len(body) == 0 {
			body = json.RawMessage("{}")
		}

		var raw map[string]json.RawMessage
		if err := json.Unmarshal(body, &raw); err != nil {
			httpjson.Error(w, http.StatusInternalServerError, "error updating pet: invalid json")
			return
		}
		var req updatePetRequest
		if err := json.Unmarshal(body, &req); err != nil {
			httpjson.Error(w, http.StatusInternalServerError, "error updating pet: "+decodeMessage(err))
			return
		}

		owner, err := nullableField(raw, "owner")
		if err != nil {
			httpjson.Error(w, http.StatusInternalServerError, "error updating pet: owner must be a string or null")
			return
		}
		image, err := nullableField(raw, "image")
		if err != nil {
			httpjson.Error(w, http.StatusInternalServerError, "error updating pet: image must be a string or null")
			return
		}

		p, err := svc.Update(r.Context(), chi.URLParam(r, "petID"), UpdateInput{
			Name:      req.Name,
			Specie:    req.Specie,
			BirthDate: req.BirthDate,
			Adopted:   req.Adopted,
			Owner:     owner,
			Image:     image,
		})
		if err != nil {
			writeError(w, err)
			return
		}
		resolved, err := svc.ResolveOne(r.Context(), p)
		if err != nil {
			httpjson.Error(w, http.StatusInternalServerError, err.Error())
			return
		}
		httpjson.Payload(w, http.StatusOK, NewResolvedResponse(resolved))
	}
}

// deletePetHandler godoc
// @Summary Borrar mascota
// @Description Idempotente: responde éxito aunque la mascota no exista.
// @Tags pets
// @Produce json
// @Param petID path string true "ID de la mascota"
// @Success 200 {object} httpjson.Envelope
// @Failure 500 {object} httpjson.Envelope
// @Router /pets/{petID} [delete]
func deletePetHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := svc.Delete(r.Context(), chi.URLParam(r, "petID")); err != nil {
			httpjson.Error(w, http.StatusInternalServerError, err.Error())
			return
		}
		httpjson.Message(w, http.StatusOK, "pet deleted successfully", nil)
	}
}

func nullableField(raw map[string]json.RawMessage, key string) (Nullable, error) {
	v, exists := raw[key]
	if !exists {
		return Nullable{}, nil
	}
	if string(v) == "null" {
		return Nullable{Present: true}, nil
	}
	var s string
	if err := json.Unmarshal(v, &s); err != nil {
		return Nullable{}, err
	}
	return Nullable{Present: true, Value: &s}, nil
}

func decodeMessage(err error) string {
	if errors.Is(err, errInvalidDate) {
		return err.Error()
	}
	return "invalid json"
}

func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrNotFound):
		httpjson.Error(w, http.StatusNotFound, "pet not found")
	default:
		httpjson.Error(w, http.StatusInternalServerError, err.Error())
	}
}

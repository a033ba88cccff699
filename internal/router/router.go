package router

import (
	"net/http"

	_ "pet-adoptions/docs"
	"pet-adoptions/internal/adapters/storage"
	"pet-adoptions/internal/domain/adoptions"
	"pet-adoptions/internal/domain/mocks"
	"pet-adoptions/internal/domain/pets"
	"pet-adoptions/internal/domain/users"
	"pet-adoptions/internal/middleware"
	"pet-adoptions/internal/platform/httpjson"
	"pet-adoptions/internal/platform/logger"
	"pet-adoptions/internal/platform/metrics"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

type Options struct {
	// Opcional: si es nil usa el backend en memoria.
	Backend *storage.Backend

	// Opcional: si es nil no loguea.
	Logger logger.Logger

	// BasePath monta la API bajo un prefijo ("" o "/api").
	BasePath string

	Mocks    mocks.Options
	MockSeed uint64
}

func NewRouter(opts Options) http.Handler {
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}
	backend := opts.Backend
	if backend == nil {
		backend = storage.Memory()
	}

	metrics.Init()

	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.Recover(log))
	r.Use(middleware.AccessLog(log))
	r.Use(middleware.Metrics)

	// Antes de montar subrouters para que lo hereden.
	r.NotFound(endpointNotFound)
	r.MethodNotAllowed(endpointNotFound)

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Handle("/metrics", metrics.Handler())

	// Services por módulo
	usersSvc := users.NewService(backend.Users, petLookup{repo: backend.Pets})
	petsSvc := pets.NewService(backend.Pets, ownerLookup{repo: backend.Users})
	adoptionsSvc := adoptions.NewService(backend.Users, backend.Pets, backend.Tx, log.With(map[string]any{"module": "adoptions"}))
	mocksSvc := mocks.NewService(mocks.NewGenerator(opts.MockSeed), usersSvc, petsSvc)

	// docs.SwaggerInfo.BasePath es global, se fija una vez en cmd/api.
	base := opts.BasePath

	api := func(ar chi.Router) {
		ar.NotFound(endpointNotFound)
		ar.MethodNotAllowed(endpointNotFound)

		ar.Get("/", indexHandler(base))
		ar.Get("/apidocs/*", httpSwagger.Handler(httpSwagger.URL(base+"/apidocs/doc.json")))

		// Rutas por módulo
		users.RegisterRoutes(ar, usersSvc)
		pets.RegisterRoutes(ar, petsSvc)
		adoptions.RegisterRoutes(ar, adoptionsSvc, petsSvc)
		mocks.RegisterRoutes(ar, mocksSvc, opts.Mocks)
	}

	if base == "" {
		api(r)
	} else {
		r.Route(base, api)
	}

	log.Info("router ready", map[string]any{"storage": backend.Name, "base_path": base})
	return r
}

func endpointNotFound(w http.ResponseWriter, _ *http.Request) {
	httpjson.Error(w, http.StatusNotFound, "endpoint not found")
}

type indexResponse struct {
	Message   string            `json:"message"`
	Endpoints map[string]string `json:"endpoints"`
}

func indexHandler(base string) http.HandlerFunc {
	body := indexResponse{
		Message: "pet adoptions API",
		Endpoints: map[string]string{
			"users":     base + "/users",
			"pets":      base + "/pets",
			"adoptions": base + "/adoptions",
			"mocks":     base + "/mocks",
			"docs":      base + "/apidocs/index.html",
		},
	}
	return func(w http.ResponseWriter, _ *http.Request) {
		httpjson.Payload(w, http.StatusOK, body)
	}
}

package router_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"pet-adoptions/internal/router"
)

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Payload json.RawMessage `json:"payload"`
	Error   string          `json:"error"`
}

type petPayload struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Adopted bool   `json:"adopted"`
	Owner   any    `json:"owner"`
}

type userPayload struct {
	ID   string            `json:"id"`
	Pets []json.RawMessage `json:"pets"`
}

func TestHTTP_EndToEnd_AdoptAndCancel(t *testing.T) {
	ts := httptest.NewServer(router.NewRouter(router.Options{}))
	defer ts.Close()

	// 1) Alta de usuario y mascota
	userID := createUser(t, ts.URL, map[string]any{
		"first_name": "A",
		"last_name":  "B",
		"email":      "a@b.com",
		"password":   "x",
	})
	petID := createPet(t, ts.URL, map[string]any{
		"name":      "Rex",
		"specie":    "dog",
		"birthDate": "2020-01-01",
	})

	// 2) Adopción
	{
		st, body := doReq(t, ts.URL, "POST", "/adoptions/"+userID+"/"+petID, nil)
		if st != http.StatusCreated {
			t.Fatalf("expected 201 adopt, got %d body=%s", st, string(body))
		}
		env := decodeEnvelope(t, body)
		if env.Message != "adoption created successfully" {
			t.Fatalf("unexpected message %q", env.Message)
		}
		var payload struct {
			Adoption petPayload  `json:"adoption"`
			User     userPayload `json:"user"`
		}
		mustUnmarshal(t, env.Payload, &payload)
		if !payload.Adoption.Adopted || payload.Adoption.Owner != userID {
			t.Fatalf("expected pet adopted by %s, got %+v", userID, payload.Adoption)
		}
		if len(payload.User.Pets) != 1 || strings.Trim(string(payload.User.Pets[0]), `"`) != petID {
			t.Fatalf("expected user.pets=[%s], got %s", petID, string(body))
		}
	}

	// 3) Segunda adopción de la misma mascota => 400
	{
		st, body := doReq(t, ts.URL, "POST", "/adoptions/"+userID+"/"+petID, nil)
		if st != http.StatusBadRequest {
			t.Fatalf("expected 400 re-adopt, got %d body=%s", st, string(body))
		}
		if env := decodeEnvelope(t, body); env.Error != "pet already adopted" {
			t.Fatalf("unexpected error %q", env.Error)
		}
	}

	// 4) Listados de adopciones
	{
		st, body := doReq(t, ts.URL, "GET", "/adoptions", nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 list adoptions, got %d body=%s", st, string(body))
		}
		var items []petPayload
		mustUnmarshal(t, decodeEnvelope(t, body).Payload, &items)
		if len(items) != 1 || items[0].ID != petID {
			t.Fatalf("expected one adoption, got %s", string(body))
		}
		owner, ok := items[0].Owner.(map[string]any)
		if !ok || owner["id"] != userID {
			t.Fatalf("expected resolved owner, got %#v", items[0].Owner)
		}
	}
	{
		st, body := doReq(t, ts.URL, "GET", "/adoptions/user/"+userID, nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 list user adoptions, got %d body=%s", st, string(body))
		}
		var items []petPayload
		mustUnmarshal(t, decodeEnvelope(t, body).Payload, &items)
		if len(items) != 1 || items[0].ID != petID {
			t.Fatalf("expected one user adoption, got %s", string(body))
		}
	}
	{
		st, body := doReq(t, ts.URL, "GET", "/adoptions/"+petID, nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 get adoption, got %d body=%s", st, string(body))
		}
	}

	// 5) GET user resuelve pets y nunca expone password
	{
		st, body := doReq(t, ts.URL, "GET", "/users/"+userID, nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 get user, got %d body=%s", st, string(body))
		}
		if strings.Contains(string(body), "password") {
			t.Fatalf("password leaked: %s", string(body))
		}
		var u struct {
			Pets []petPayload `json:"pets"`
		}
		mustUnmarshal(t, decodeEnvelope(t, body).Payload, &u)
		if len(u.Pets) != 1 || u.Pets[0].Name != "Rex" {
			t.Fatalf("expected resolved pet, got %s", string(body))
		}
	}

	// 6) Cancelación
	{
		st, body := doReq(t, ts.URL, "DELETE", "/adoptions/"+userID+"/"+petID, nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 cancel, got %d body=%s", st, string(body))
		}
		env := decodeEnvelope(t, body)
		if env.Message != "adoption cancelled successfully" {
			t.Fatalf("unexpected message %q", env.Message)
		}
		var payload struct {
			Pet  petPayload  `json:"pet"`
			User userPayload `json:"user"`
		}
		mustUnmarshal(t, env.Payload, &payload)
		if payload.Pet.Adopted || payload.Pet.Owner != nil {
			t.Fatalf("expected pet released, got %+v", payload.Pet)
		}
		if len(payload.User.Pets) != 0 {
			t.Fatalf("expected empty user.pets, got %s", string(body))
		}
	}

	// 7) Cancelar de nuevo => 400
	{
		st, body := doReq(t, ts.URL, "DELETE", "/adoptions/"+userID+"/"+petID, nil)
		if st != http.StatusBadRequest {
			t.Fatalf("expected 400 second cancel, got %d body=%s", st, string(body))
		}
		if env := decodeEnvelope(t, body); env.Error != "this pet was not adopted by this user" {
			t.Fatalf("unexpected error %q", env.Error)
		}
	}
	{
		st, body := doReq(t, ts.URL, "GET", "/adoptions/"+petID, nil)
		if st != http.StatusNotFound {
			t.Fatalf("expected 404 after cancel, got %d body=%s", st, string(body))
		}
	}
}

func TestHTTP_Adoptions_InvalidAndMissingIDs(t *testing.T) {
	ts := httptest.NewServer(router.NewRouter(router.Options{}))
	defer ts.Close()

	userID := createUser(t, ts.URL, map[string]any{
		"first_name": "A",
		"last_name":  "B",
		"email":      "a@b.com",
		"password":   "x",
	})

	st, body := doReq(t, ts.URL, "POST", "/adoptions/not-an-id/also-bad", nil)
	if st != http.StatusBadRequest {
		t.Fatalf("expected 400 malformed ids, got %d body=%s", st, string(body))
	}

	st, body = doReq(t, ts.URL, "GET", "/adoptions/user/nope", nil)
	if st != http.StatusBadRequest {
		t.Fatalf("expected 400 malformed user id, got %d body=%s", st, string(body))
	}

	// id bien formado pero inexistente
	st, body = doReq(t, ts.URL, "POST", "/adoptions/"+userID+"/0123456789abcdef01234567", nil)
	if st != http.StatusNotFound {
		t.Fatalf("expected 404 missing pet, got %d body=%s", st, string(body))
	}
	if env := decodeEnvelope(t, body); env.Error != "pet not found" {
		t.Fatalf("unexpected error %q", env.Error)
	}
}

func TestHTTP_UpdatePet_OwnerNull(t *testing.T) {
	ts := httptest.NewServer(router.NewRouter(router.Options{}))
	defer ts.Close()

	ownerID := "0123456789abcdef01234567"
	petID := createPet(t, ts.URL, map[string]any{
		"name":      "Michi",
		"specie":    "cat",
		"birthDate": "2021-05-10",
		"owner":     ownerID,
	})

	st, body := doReq(t, ts.URL, "PUT", "/pets/"+petID, map[string]any{"owner": nil, "adopted": false})
	if st != http.StatusOK {
		t.Fatalf("expected 200 update pet, got %d body=%s", st, string(body))
	}
	var p petPayload
	mustUnmarshal(t, decodeEnvelope(t, body).Payload, &p)
	if p.Owner != nil || p.Adopted {
		t.Fatalf("expected owner cleared, got %+v", p)
	}
}

func TestHTTP_UpdatePet_PartialKeepsAdoption(t *testing.T) {
	ts := httptest.NewServer(router.NewRouter(router.Options{}))
	defer ts.Close()

	userID := createUser(t, ts.URL, map[string]any{
		"first_name": "A",
		"last_name":  "B",
		"email":      "a@b.com",
		"password":   "x",
	})
	petID := createPet(t, ts.URL, map[string]any{
		"name":      "Rex",
		"specie":    "dog",
		"birthDate": "2020-01-01",
	})
	if st, body := doReq(t, ts.URL, "POST", "/adoptions/"+userID+"/"+petID, nil); st != http.StatusCreated {
		t.Fatalf("expected 201 adopt, got %d body=%s", st, string(body))
	}

	// el body solo trae name: adopted y owner quedan como estaban
	st, body := doReq(t, ts.URL, "PUT", "/pets/"+petID, map[string]any{"name": "Max"})
	if st != http.StatusOK {
		t.Fatalf("expected 200 update pet, got %d body=%s", st, string(body))
	}
	var p petPayload
	mustUnmarshal(t, decodeEnvelope(t, body).Payload, &p)
	if p.Name != "Max" || !p.Adopted {
		t.Fatalf("expected renamed adopted pet, got %+v", p)
	}
	owner, ok := p.Owner.(map[string]any)
	if !ok || owner["id"] != userID {
		t.Fatalf("expected owner %s kept, got %#v", userID, p.Owner)
	}

	// la adopción sigue cancelable por su dueño
	if st, body := doReq(t, ts.URL, "DELETE", "/adoptions/"+userID+"/"+petID, nil); st != http.StatusOK {
		t.Fatalf("expected 200 cancel, got %d body=%s", st, string(body))
	}
}

func TestHTTP_UpdatePet_InvalidBody(t *testing.T) {
	ts := httptest.NewServer(router.NewRouter(router.Options{}))
	defer ts.Close()

	petID := createPet(t, ts.URL, map[string]any{
		"name":      "Rex",
		"specie":    "dog",
		"birthDate": "2020-01-01",
	})

	cases := []struct {
		body any
		want string
	}{
		{[]int{1, 2}, "error updating pet: invalid json"},
		{map[string]any{"adopted": "yes"}, "error updating pet: invalid json"},
		{map[string]any{"birthDate": "tomorrow"}, "error updating pet: birthDate must be YYYY-MM-DD or RFC3339"},
		{map[string]any{"owner": 5}, "error updating pet: owner must be a string or null"},
	}
	for _, tc := range cases {
		st, body := doReq(t, ts.URL, "PUT", "/pets/"+petID, tc.body)
		if st != http.StatusInternalServerError {
			t.Fatalf("expected 500 for %v, got %d body=%s", tc.body, st, string(body))
		}
		if env := decodeEnvelope(t, body); env.Error != tc.want {
			t.Fatalf("expected error %q, got %q", tc.want, env.Error)
		}
	}
}

func TestHTTP_MissingResources(t *testing.T) {
	ts := httptest.NewServer(router.NewRouter(router.Options{}))
	defer ts.Close()

	absent := "0123456789abcdef01234567"
	cases := []struct {
		method, path string
		body         any
		status       int
		want         string
	}{
		{"GET", "/users/" + absent, nil, http.StatusNotFound, "user not found"},
		{"GET", "/users/not-an-id", nil, http.StatusNotFound, "user not found"},
		{"PUT", "/users/" + absent, map[string]any{"first_name": "X"}, http.StatusNotFound, "user not found"},
		{"GET", "/pets/" + absent, nil, http.StatusNotFound, "pet not found"},
		{"GET", "/pets/not-an-id", nil, http.StatusNotFound, "pet not found"},
		{"PUT", "/pets/" + absent, map[string]any{"name": "X"}, http.StatusNotFound, "pet not found"},
	}
	for _, tc := range cases {
		st, body := doReq(t, ts.URL, tc.method, tc.path, tc.body)
		if st != tc.status {
			t.Fatalf("%s %s: expected %d, got %d body=%s", tc.method, tc.path, tc.status, st, string(body))
		}
		if env := decodeEnvelope(t, body); env.Success || env.Error != tc.want {
			t.Fatalf("%s %s: unexpected body %s", tc.method, tc.path, string(body))
		}
	}
}

func TestHTTP_DeleteIsIdempotent(t *testing.T) {
	ts := httptest.NewServer(router.NewRouter(router.Options{}))
	defer ts.Close()

	userID := createUser(t, ts.URL, map[string]any{
		"first_name": "A",
		"last_name":  "B",
		"email":      "a@b.com",
		"password":   "x",
	})
	petID := createPet(t, ts.URL, map[string]any{
		"name":      "Rex",
		"specie":    "dog",
		"birthDate": "2020-01-01",
	})

	cases := []struct {
		path, want string
	}{
		{"/users/" + userID, "user deleted successfully"},
		{"/users/" + userID, "user deleted successfully"},
		{"/users/0123456789abcdef01234567", "user deleted successfully"},
		{"/users/not-an-id", "user deleted successfully"},
		{"/pets/" + petID, "pet deleted successfully"},
		{"/pets/" + petID, "pet deleted successfully"},
		{"/pets/not-an-id", "pet deleted successfully"},
	}
	for _, tc := range cases {
		st, body := doReq(t, ts.URL, "DELETE", tc.path, nil)
		if st != http.StatusOK {
			t.Fatalf("DELETE %s: expected 200, got %d body=%s", tc.path, st, string(body))
		}
		if env := decodeEnvelope(t, body); !env.Success || env.Message != tc.want {
			t.Fatalf("DELETE %s: unexpected body %s", tc.path, string(body))
		}
	}

	if st, _ := doReq(t, ts.URL, "GET", "/users/"+userID, nil); st != http.StatusNotFound {
		t.Fatalf("expected 404 after delete, got %d", st)
	}
}

func TestHTTP_CreateUser_DuplicateEmail(t *testing.T) {
	ts := httptest.NewServer(router.NewRouter(router.Options{}))
	defer ts.Close()

	createUser(t, ts.URL, map[string]any{
		"first_name": "A",
		"last_name":  "B",
		"email":      "a@b.com",
		"password":   "x",
	})

	st, body := doReq(t, ts.URL, "POST", "/users", map[string]any{
		"first_name": "C",
		"last_name":  "D",
		"email":      "A@B.com",
		"password":   "y",
	})
	if st != http.StatusInternalServerError {
		t.Fatalf("expected 500 duplicate email, got %d body=%s", st, string(body))
	}
	if env := decodeEnvelope(t, body); !strings.Contains(env.Error, "email already registered") {
		t.Fatalf("unexpected error %q", env.Error)
	}
}

func TestHTTP_UnknownRoute(t *testing.T) {
	ts := httptest.NewServer(router.NewRouter(router.Options{}))
	defer ts.Close()

	st, body := doReq(t, ts.URL, "GET", "/nothing/here", nil)
	if st != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", st)
	}
	if env := decodeEnvelope(t, body); env.Success || env.Error != "endpoint not found" {
		t.Fatalf("unexpected body %s", string(body))
	}

	// método no registrado también responde 404
	st, _ = doReq(t, ts.URL, "PATCH", "/users", nil)
	if st != http.StatusNotFound {
		t.Fatalf("expected 404 for unknown method, got %d", st)
	}
}

func TestHTTP_BasePath(t *testing.T) {
	ts := httptest.NewServer(router.NewRouter(router.Options{BasePath: "/api"}))
	defer ts.Close()

	if st, body := doReq(t, ts.URL, "GET", "/api/users", nil); st != http.StatusOK {
		t.Fatalf("expected 200 under base path, got %d body=%s", st, string(body))
	}
	if st, _ := doReq(t, ts.URL, "GET", "/users", nil); st != http.StatusNotFound {
		t.Fatalf("expected 404 outside base path, got %d", st)
	}
	if st, body := doReq(t, ts.URL, "GET", "/api/nothing", nil); st != http.StatusNotFound || !strings.Contains(string(body), "endpoint not found") {
		t.Fatalf("expected JSON 404 inside base path, got %d body=%s", st, string(body))
	}
}

func TestHTTP_RoutersWithDifferentBasePaths(t *testing.T) {
	bases := []string{"", "/api", "/v2"}
	handlers := make([]http.Handler, len(bases))

	var wg sync.WaitGroup
	for i, b := range bases {
		wg.Add(1)
		go func(i int, b string) {
			defer wg.Done()
			handlers[i] = router.NewRouter(router.Options{BasePath: b})
		}(i, b)
	}
	wg.Wait()

	for i, b := range bases {
		ts := httptest.NewServer(handlers[i])
		st, body := doReq(t, ts.URL, "GET", b+"/", nil)
		ts.Close()
		if st != http.StatusOK || !strings.Contains(string(body), b+"/users") {
			t.Fatalf("base %q: expected index with own paths, got %d body=%s", b, st, string(body))
		}
	}
}

func TestHTTP_HealthAndMetrics(t *testing.T) {
	ts := httptest.NewServer(router.NewRouter(router.Options{}))
	defer ts.Close()

	st, body := doReq(t, ts.URL, "GET", "/health", nil)
	if st != http.StatusOK || string(body) != "ok" {
		t.Fatalf("expected 200 ok, got %d body=%s", st, string(body))
	}

	_, _ = doReq(t, ts.URL, "GET", "/pets", nil)

	st, body = doReq(t, ts.URL, "GET", "/metrics", nil)
	if st != http.StatusOK {
		t.Fatalf("expected 200 metrics, got %d", st)
	}
	if !strings.Contains(string(body), "http_requests_total") {
		t.Fatalf("expected http_requests_total in metrics output")
	}
}

func TestHTTP_Mocks(t *testing.T) {
	ts := httptest.NewServer(router.NewRouter(router.Options{MockSeed: 7}))
	defer ts.Close()

	st, body := doReq(t, ts.URL, "POST", "/mocks/generateData", map[string]any{"users": 2, "pets": 3})
	if st != http.StatusCreated {
		t.Fatalf("expected 201 generate, got %d body=%s", st, string(body))
	}

	st, body = doReq(t, ts.URL, "GET", "/pets", nil)
	if st != http.StatusOK {
		t.Fatalf("expected 200 list pets, got %d", st)
	}
	var items []petPayload
	mustUnmarshal(t, decodeEnvelope(t, body).Payload, &items)
	if len(items) != 3 {
		t.Fatalf("expected 3 pets, got %d", len(items))
	}

	st, _ = doReq(t, ts.URL, "POST", "/mocks/generateData", map[string]any{"users": -1})
	if st != http.StatusBadRequest {
		t.Fatalf("expected 400 negative count, got %d", st)
	}
}

func createUser(t *testing.T, baseURL string, payload map[string]any) string {
	t.Helper()

	st, body := doReq(t, baseURL, "POST", "/users", payload)
	if st != http.StatusCreated {
		t.Fatalf("expected 201 create user, got %d body=%s", st, string(body))
	}

	var resp struct {
		ID string `json:"id"`
	}
	mustUnmarshal(t, decodeEnvelope(t, body).Payload, &resp)
	if resp.ID == "" {
		t.Fatalf("create user: missing id body=%s", string(body))
	}
	return resp.ID
}

func createPet(t *testing.T, baseURL string, payload map[string]any) string {
	t.Helper()

	st, body := doReq(t, baseURL, "POST", "/pets", payload)
	if st != http.StatusCreated {
		t.Fatalf("expected 201 create pet, got %d body=%s", st, string(body))
	}

	var resp struct {
		ID string `json:"id"`
	}
	mustUnmarshal(t, decodeEnvelope(t, body).Payload, &resp)
	if resp.ID == "" {
		t.Fatalf("create pet: missing id body=%s", string(body))
	}
	return resp.ID
}

func decodeEnvelope(t *testing.T, body []byte) envelope {
	t.Helper()
	var env envelope
	mustUnmarshal(t, body, &env)
	return env
}

func mustUnmarshal(t *testing.T, data []byte, v any) {
	t.Helper()
	if err := json.Unmarshal(data, v); err != nil {
		t.Fatalf("json unmarshal: %v data=%s", err, string(data))
	}
}

func doReq(t *testing.T, baseURL, method, path string, body any) (int, []byte) {
	t.Helper()

	var rdr io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("json marshal: %v", err)
		}
		rdr = bytes.NewReader(b)
	}

	req, err := http.NewRequest(method, baseURL+path, rdr)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	res, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("do request: %v", err)
	}
	defer res.Body.Close()

	respBody, _ := io.ReadAll(res.Body)
	return res.StatusCode, respBody
}

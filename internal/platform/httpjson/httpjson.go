package httpjson

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
)

// maxBodyBytes limita el tamaño de los bodies JSON aceptados.
const maxBodyBytes = 1 << 20

// Envelope es el formato común de respuesta:
// {success, message?, payload?} en éxito y {success:false, error} en fallo.
type Envelope struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Payload any    `json:"payload,omitempty"`
	Error   string `json:"error,omitempty"`
}

// Antes writeJSON estaba duplicado en cada módulo; con users/pets/adoptions/mocks
// ya conviene tenerlo en un solo lugar.
func Write(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func Payload(w http.ResponseWriter, status int, payload any) {
	Write(w, status, Envelope{Success: true, Payload: payload})
}

func Message(w http.ResponseWriter, status int, msg string, payload any) {
	Write(w, status, Envelope{Success: true, Message: msg, Payload: payload})
}

func Error(w http.ResponseWriter, status int, msg string) {
	Write(w, status, Envelope{Success: false, Error: msg})
}

// Decode lee un body JSON. Un body vacío cuenta como objeto vacío.
func Decode(r *http.Request, v any) error {
	if r.Body == nil {
		return nil
	}
	dec := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes))
	if err := dec.Decode(v); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return err
	}
	return nil
}

package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
)

// Las respuestas siguen la convención JSend:
//
//	success -> {"status": "success", "data": ...}
//	fail    -> {"status": "fail", "data": {"mensaje": ...}}  (error del cliente)
//	error   -> {"status": "error", "message": ...}           (error del servidor)
type respuesta struct {
	Status  string      `json:"status"`
	Data    interface{} `json:"data,omitempty"`
	Message string      `json:"message,omitempty"`
}

// RespondJSON escribe una respuesta success con el payload dado.
func RespondJSON(w http.ResponseWriter, statusCode int, data interface{}) {
	escribir(w, statusCode, respuesta{Status: "success", Data: data})
}

// RespondFail escribe una respuesta fail con un mensaje para el cliente.
func RespondFail(w http.ResponseWriter, statusCode int, mensaje string) {
	escribir(w, statusCode, respuesta{
		Status: "fail",
		Data:   map[string]string{"mensaje": mensaje},
	})
}

// RespondBadRequest responde 400 con el mensaje dado.
func RespondBadRequest(w http.ResponseWriter, mensaje string) {
	RespondFail(w, http.StatusBadRequest, mensaje)
}

// RespondUnauthorized responde 401 con el mensaje dado.
func RespondUnauthorized(w http.ResponseWriter, mensaje string) {
	RespondFail(w, http.StatusUnauthorized, mensaje)
}

// RespondNotFound responde 404 con el mensaje dado.
func RespondNotFound(w http.ResponseWriter, mensaje string) {
	RespondFail(w, http.StatusNotFound, mensaje)
}

// RespondConflict responde 409 con el mensaje dado.
func RespondConflict(w http.ResponseWriter, mensaje string) {
	RespondFail(w, http.StatusConflict, mensaje)
}

// RespondInternalError responde 500. El detalle queda en los logs, al
// cliente solo le llega un mensaje genérico.
func RespondInternalError(w http.ResponseWriter) {
	escribir(w, http.StatusInternalServerError, respuesta{
		Status:  "error",
		Message: "error interno del servidor",
	})
}

// DecodeJSON parsea el body JSON de la request en dst.
func DecodeJSON(r *http.Request, dst interface{}) error {
	defer r.Body.Close()
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return fmt.Errorf("decodificar body JSON: %w", err)
	}
	return nil
}

// IDFromRequest extrae un path param numérico de la ruta.
func IDFromRequest(r *http.Request, nombre string) (int64, error) {
	raw := mux.Vars(r)[nombre]
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("parámetro %s inválido: %q", nombre, raw)
	}
	return id, nil
}

func escribir(w http.ResponseWriter, statusCode int, cuerpo respuesta) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(statusCode)
	// Si el encode falla ya mandamos los headers, no queda nada por hacer
	_ = json.NewEncoder(w).Encode(cuerpo)
}

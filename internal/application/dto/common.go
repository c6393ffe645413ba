package dto

import (
	"encoding/json"
	"strings"
)

// Respuesta es el sobre estándar del backend: {message, data, errors}.
// Data queda crudo para que cada cliente lo decodifique en su tipo.
type Respuesta struct {
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Errors  []string        `json:"errors"`
}

// MensajeError devuelve el mejor mensaje disponible: message, luego errors
// unidos por coma, o cadena vacía si el backend no dijo nada.
func (r *Respuesta) MensajeError() string {
	if r == nil {
		return ""
	}
	if r.Message != "" {
		return r.Message
	}
	if len(r.Errors) > 0 {
		return strings.Join(r.Errors, ", ")
	}
	return ""
}

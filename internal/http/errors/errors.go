package errors

import (
	"encoding/json"
	"net/http"
)

// WriteError escribe la respuesta JSON correspondiente al error.
// Errores que no son *AppError terminan como 500 server_error sin exponer la causa.
func WriteError(w http.ResponseWriter, err error) {
	appErr := FromError(err)

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(appErr.HTTPStatus)
	_ = json.NewEncoder(w).Encode(appErr)
}

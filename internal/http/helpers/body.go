package helpers

import (
	"fmt"
	"io"
	"mime"
	"net/http"
	"strings"
)

// MaxBodyBytes limita el body de los callbacks POST.
const MaxBodyBytes = 1 << 20

// Tipos de body que el relay sabe leer.
const (
	BodyForm = "form"
	BodyJSON = "json"
	BodyNone = ""
)

// ReadBody lee el body completo con límite de MaxBodyBytes y clasifica su Content-Type.
// Content-Types desconocidos devuelven BodyNone sin leer el body.
func ReadBody(w http.ResponseWriter, r *http.Request) (kind string, body []byte, err error) {
	kind = BodyKind(r.Header.Get("Content-Type"))
	if kind == BodyNone || r.Body == nil {
		return BodyNone, nil, nil
	}

	r.Body = http.MaxBytesReader(w, r.Body, MaxBodyBytes)
	defer r.Body.Close()

	body, err = io.ReadAll(r.Body)
	if err != nil {
		return kind, nil, fmt.Errorf("read body: %w", err)
	}
	return kind, body, nil
}

// BodyKind mapea un Content-Type a BodyForm, BodyJSON o BodyNone.
func BodyKind(contentType string) string {
	if strings.TrimSpace(contentType) == "" {
		return BodyNone
	}
	mt, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return BodyNone
	}
	switch {
	case mt == "application/x-www-form-urlencoded":
		return BodyForm
	case mt == "application/json", strings.HasSuffix(mt, "+json"):
		return BodyJSON
	default:
		return BodyNone
	}
}

package logger

import (
	"net/http"
	"strings"

	"go.uber.org/zap"
)

// Field es un alias para no obligar a importar zap en los callers.
type Field = zap.Field

// =================================================================================
// CAMPOS ESTÁNDAR - HTTP
// =================================================================================

func RequestID(v string) zap.Field { return zap.String("request_id", v) }
func Method(v string) zap.Field    { return zap.String("method", v) }
func Path(v string) zap.Field      { return zap.String("path", v) }
func Route(v string) zap.Field     { return zap.String("route", v) }
func Status(v int) zap.Field       { return zap.Int("status", v) }
func Bytes(v int) zap.Field        { return zap.Int("bytes", v) }
func ClientIP(v string) zap.Field  { return zap.String("client_ip", v) }
func UserAgent(v string) zap.Field { return zap.String("user_agent", v) }

// DurationMs crea un campo para la duración en milisegundos.
func DurationMs(v int64) zap.Field { return zap.Int64("duration_ms", v) }

// Headers loguea los headers del request, con Authorization y Cookie enmascarados.
func Headers(h http.Header) zap.Field {
	out := make(map[string]string, len(h))
	for k, vs := range h {
		v := strings.Join(vs, ", ")
		switch http.CanonicalHeaderKey(k) {
		case "Authorization", "Cookie", "Proxy-Authorization":
			v = mask(v)
		}
		out[k] = v
	}
	return zap.Any("headers", out)
}

// =================================================================================
// CAMPOS ESTÁNDAR - OAUTH CALLBACK
// =================================================================================

// RealmID es el company id de QuickBooks.
func RealmID(v string) zap.Field { return zap.String("realm_id", v) }

// Target es la URL destino (app principal) a la que se reenvía el callback.
func Target(v string) zap.Field { return zap.String("target", v) }

// OAuthError agrupa error + error_description devueltos por el proveedor.
func OAuthError(code, description string) zap.Field {
	return zap.Dict("oauth_error",
		zap.String("error", code),
		zap.String("error_description", description),
	)
}

// Redacted loguea sólo un prefijo del valor. Usar para code y state.
func Redacted(key, v string) zap.Field {
	return zap.String(key, mask(v))
}

func mask(v string) string {
	if v == "" {
		return ""
	}
	if len(v) <= 4 {
		return "****"
	}
	return v[:4] + "****"
}

// =================================================================================
// CAMPOS ESTÁNDAR - SISTEMA
// =================================================================================

func Component(v string) zap.Field { return zap.String("component", v) }
func Op(v string) zap.Field        { return zap.String("op", v) }
func Layer(v string) zap.Field     { return zap.String("layer", v) }
func Err(err error) zap.Field      { return zap.Error(err) }
func Count(v int) zap.Field        { return zap.Int("count", v) }

func Any(key string, v any) zap.Field   { return zap.Any(key, v) }
func String(key, v string) zap.Field    { return zap.String(key, v) }
func Int(key string, v int) zap.Field   { return zap.Int(key, v) }
func Bool(key string, v bool) zap.Field { return zap.Bool(key, v) }

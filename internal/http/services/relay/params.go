package relay

import (
	"net/url"
	"strings"
)

// Nombres de parámetros OAuth que QuickBooks envía al redirect_uri.
const (
	ParamCode             = "code"
	ParamState            = "state"
	ParamRealmID          = "realmId"
	ParamError            = "error"
	ParamErrorDescription = "error_description"
)

// Params es un set de parámetros de callback con orden de inserción.
// Set sobre una clave existente reemplaza el valor y conserva la posición.
// El zero value está listo para usar.
type Params struct {
	keys   []string
	values map[string]string
	// forced marca claves que se reenvían aunque su valor sea "" (arrays JSON vacíos).
	forced map[string]bool
}

// NewParams crea un set vacío.
func NewParams() *Params {
	return &Params{values: map[string]string{}}
}

// ParamsOf arma un set a partir de pares clave/valor (k1, v1, k2, v2, ...).
// Un número impar de argumentos ignora la última clave.
func ParamsOf(kv ...string) *Params {
	p := NewParams()
	for i := 0; i+1 < len(kv); i += 2 {
		p.Set(kv[i], kv[i+1])
	}
	return p
}

func (p *Params) Set(key, value string) {
	if p.values == nil {
		p.values = map[string]string{}
	}
	if _, ok := p.values[key]; !ok {
		p.keys = append(p.keys, key)
	}
	p.values[key] = value
	delete(p.forced, key)
}

// SetTruthy es Set, pero la clave se reenvía aunque el valor quede vacío.
func (p *Params) SetTruthy(key, value string) {
	p.Set(key, value)
	if p.forced == nil {
		p.forced = map[string]bool{}
	}
	p.forced[key] = true
}

// Get devuelve "" si la clave no existe.
func (p *Params) Get(key string) string {
	if p == nil {
		return ""
	}
	return p.values[key]
}

func (p *Params) Has(key string) bool {
	if p == nil {
		return false
	}
	_, ok := p.values[key]
	return ok
}

// lookup devuelve nil si la clave no existe.
func (p *Params) lookup(key string) *string {
	if !p.Has(key) {
		return nil
	}
	v := p.values[key]
	return &v
}

// Keys devuelve las claves en orden de inserción.
func (p *Params) Keys() []string {
	if p == nil {
		return nil
	}
	out := make([]string, len(p.keys))
	copy(out, p.keys)
	return out
}

func (p *Params) Len() int {
	if p == nil {
		return 0
	}
	return len(p.keys)
}

// Merge aplica other sobre p: las claves nuevas se agregan al final y,
// en colisión, gana el valor de other manteniendo la posición original.
func (p *Params) Merge(other *Params) *Params {
	for _, k := range other.Keys() {
		if other.forced[k] {
			p.SetTruthy(k, other.values[k])
		} else {
			p.Set(k, other.values[k])
		}
	}
	return p
}

// Truthy devuelve sólo las entradas con valor no vacío (o marcadas con SetTruthy), en el mismo orden.
func (p *Params) Truthy() *Params {
	out := NewParams()
	for _, k := range p.Keys() {
		if v := p.values[k]; v != "" || p.forced[k] {
			out.Set(k, v)
		}
	}
	return out
}

// Map devuelve una copia sin orden, para logs y DTOs.
func (p *Params) Map() map[string]string {
	out := make(map[string]string, p.Len())
	for _, k := range p.Keys() {
		out[k] = p.values[k]
	}
	return out
}

// Encode serializa como application/x-www-form-urlencoded respetando el orden
// (url.Values.Encode ordena alfabéticamente, por eso no lo usamos).
func (p *Params) Encode() string {
	return p.encode(url.QueryEscape)
}

// EncodeComponent codifica cada valor como encodeURIComponent: espacios como %20
// y !*'() sin escapar.
func (p *Params) EncodeComponent() string {
	return p.encode(escapeComponent)
}

func (p *Params) encode(escape func(string) string) string {
	var b strings.Builder
	for i, k := range p.Keys() {
		if i > 0 {
			b.WriteByte('&')
		}
		b.WriteString(escape(k))
		b.WriteByte('=')
		b.WriteString(escape(p.values[k]))
	}
	return b.String()
}

var componentUnescaper = strings.NewReplacer(
	"+", "%20",
	"%21", "!",
	"%27", "'",
	"%28", "(",
	"%29", ")",
	"%2A", "*",
)

func escapeComponent(s string) string {
	return componentUnescaper.Replace(url.QueryEscape(s))
}

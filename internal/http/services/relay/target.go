package relay

import (
	"fmt"
	"net/url"
)

// Target es la URL del callback de la app principal.
// Si la URL configurada ya trae query, esos parámetros se conservan y los reenviados se agregan detrás.
type Target struct {
	base  *url.URL
	query *Params
}

// NewTarget valida y parsea la URL destino.
func NewTarget(raw string) (*Target, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("relay: invalid target url: %w", err)
	}
	if !u.IsAbs() || u.Host == "" {
		return nil, fmt.Errorf("relay: target url must be absolute, got %q", raw)
	}
	q := ParseQuery(u.RawQuery)
	u.RawQuery = ""
	u.Fragment = ""
	return &Target{base: u, query: q}, nil
}

// MustTarget es NewTarget para literales conocidos; hace panic si la URL es inválida.
func MustTarget(raw string) *Target {
	t, err := NewTarget(raw)
	if err != nil {
		panic(err)
	}
	return t
}

// String devuelve la URL destino sin parámetros reenviados.
func (t *Target) String() string {
	return t.URL(nil)
}

// URL arma la URL de redirect con p agregado como query form-urlencoded.
func (t *Target) URL(p *Params) string {
	return t.build(p, (*Params).Encode)
}

// ComponentURL es como URL pero con espacios como %20, y sin descartar valores vacíos.
// Es el formato que /redirect devuelve para que el caller lo use tal cual.
func (t *Target) ComponentURL(p *Params) string {
	return t.build(p, (*Params).EncodeComponent)
}

func (t *Target) build(p *Params, encode func(*Params) string) string {
	u := *t.base
	q := NewParams().Merge(t.query)
	if p != nil {
		q.Merge(p)
	}
	u.RawQuery = encode(q)
	return u.String()
}

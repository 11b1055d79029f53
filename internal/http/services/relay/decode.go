package relay

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"net/url"
	"strconv"
	"strings"
)

// ParseQuery decodifica un query string (o un body form-urlencoded) preservando el orden.
// Claves repetidas se unen con ",". Pares sin clave se ignoran.
// Nunca falla: un escape inválido se conserva tal cual (con "+" como espacio).
func ParseQuery(raw string) *Params {
	p := NewParams()
	for raw != "" {
		var pair string
		pair, raw, _ = strings.Cut(raw, "&")
		if pair == "" {
			continue
		}
		k, v, _ := strings.Cut(pair, "=")
		key := unescape(k)
		if key == "" {
			continue
		}
		value := unescape(v)
		if p.Has(key) {
			value = p.Get(key) + "," + value
		}
		p.Set(key, value)
	}
	return p
}

func unescape(s string) string {
	if out, err := url.QueryUnescape(s); err == nil {
		return out
	}
	return strings.ReplaceAll(s, "+", " ")
}

// ParseJSON decodifica un objeto JSON plano preservando el orden de las claves.
// Los valores se convierten a string; los "falsy" (false, 0, null, "") quedan como "" y
// los arrays siempre se reenvían, aunque queden vacíos. Un body vacío es un set vacío.
func ParseJSON(body []byte) (*Params, error) {
	p := NewParams()
	if len(bytes.TrimSpace(body)) == 0 {
		return p, nil
	}

	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("relay: invalid json body: %w", err)
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return nil, errors.New("relay: json body must be an object")
	}

	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("relay: invalid json body: %w", err)
		}
		key, _ := tok.(string)

		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return nil, fmt.Errorf("relay: invalid json value for %q: %w", key, err)
		}
		value, isArray, err := stringify(raw)
		if err != nil {
			return nil, fmt.Errorf("relay: invalid json value for %q: %w", key, err)
		}
		if isArray {
			p.SetTruthy(key, value)
		} else {
			p.Set(key, value)
		}
	}

	if _, err := dec.Token(); err != nil {
		return nil, fmt.Errorf("relay: invalid json body: %w", err)
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, errors.New("relay: trailing data after json body")
	}
	return p, nil
}

// stringify convierte un valor JSON de primer nivel. Sólo acá aplica la regla falsy:
// dentro de un array cada elemento se convierte con element.
func stringify(raw json.RawMessage) (value string, isArray bool, err error) {
	var v any
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	if err := dec.Decode(&v); err != nil {
		return "", false, err
	}

	switch x := v.(type) {
	case nil:
		return "", false, nil
	case bool:
		if x {
			return "true", false, nil
		}
		return "", false, nil
	case json.Number:
		n := number(x)
		if n == "0" {
			return "", false, nil
		}
		return n, false, nil
	case []any:
		return joinArray(x), true, nil
	case map[string]any:
		return string(compact(raw)), false, nil
	default:
		return element(x), false, nil
	}
}

func joinArray(items []any) string {
	parts := make([]string, 0, len(items))
	for _, item := range items {
		parts = append(parts, element(item))
	}
	return strings.Join(parts, ",")
}

// element convierte un elemento de array: null queda vacío, el resto se conserva.
func element(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case bool:
		return strconv.FormatBool(x)
	case json.Number:
		return number(x)
	case []any:
		return joinArray(x)
	default:
		b, _ := json.Marshal(x)
		return string(b)
	}
}

// number formatea como lo hace un cliente JS: 1.0 => "1", 1e2 => "100", 1e21 => "1e+21".
func number(n json.Number) string {
	f, err := strconv.ParseFloat(n.String(), 64)
	if err != nil {
		return n.String()
	}
	if f == 0 {
		return "0"
	}
	if abs := math.Abs(f); abs >= 1e21 || abs < 1e-6 {
		s := strconv.FormatFloat(f, 'e', -1, 64)
		mant, exp, _ := strings.Cut(s, "e")
		sign, digits := exp[:1], strings.TrimLeft(exp[1:], "0")
		return mant + "e" + sign + digits
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}

func compact(raw json.RawMessage) []byte {
	var buf bytes.Buffer
	if err := json.Compact(&buf, raw); err != nil {
		return raw
	}
	return buf.Bytes()
}

// Package health contiene DTOs para el endpoint de health check.
package health

// Endpoints lista las rutas públicas del relay.
type Endpoints struct {
	Callback string `json:"callback"`
	Health   string `json:"health"`
	Redirect string `json:"redirect"`
}

// HealthResponse es el documento fijo que devuelve GET /.
type HealthResponse struct {
	Message   string    `json:"message"`
	Version   string    `json:"version"`
	Status    string    `json:"status"` // siempre "running"
	Endpoints Endpoints `json:"endpoints"`
}

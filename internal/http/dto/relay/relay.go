// Package relay contiene DTOs de los endpoints de callback.
package relay

// RedirectParameters son los parámetros crudos que /redirect devuelve junto a la URL.
// State y RealmID son nil si no vinieron en la query; "" si vinieron vacíos.
type RedirectParameters struct {
	Code    string  `json:"code"`
	State   *string `json:"state,omitempty"`
	RealmID *string `json:"realmId,omitempty"`
}

// RedirectResponse es la respuesta de GET /redirect.
type RedirectResponse struct {
	Message     string             `json:"message"`
	RedirectURL string             `json:"redirectUrl"`
	Parameters  RedirectParameters `json:"parameters"`
}

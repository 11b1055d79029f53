// Package relay contiene los controllers de los endpoints de callback OAuth.
package relay

import svc "github.com/dropDatabas3/qbrelay/internal/http/services/relay"

// Controllers agrupa los controllers del dominio relay.
type Controllers struct {
	Callback *CallbackController
}

// NewControllers crea el agregador de controllers relay.
func NewControllers(s svc.Services) *Controllers {
	return &Controllers{
		Callback: NewCallbackController(s.Relay),
	}
}

package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	ctrl "github.com/dropDatabas3/qbrelay/internal/http/controllers/relay"
	mw "github.com/dropDatabas3/qbrelay/internal/http/middlewares"
)

// CallbackRouterDeps contiene las dependencias para las rutas de callback.
type CallbackRouterDeps struct {
	Controllers *ctrl.Controllers
}

// RegisterCallbackRoutes registra las rutas que reciben el callback de QuickBooks.
//
//	GET  /callback  -> 302 a la app principal (valida error/code)
//	POST /callback  -> 302 con todos los parámetros truthy (sin validar)
//	GET  /redirect  -> JSON con la URL destino, sin redirigir
func RegisterCallbackRoutes(r chi.Router, deps CallbackRouterDeps) {
	c := deps.Controllers.Callback

	r.Method(http.MethodGet, "/callback", callbackBaseHandler(http.HandlerFunc(c.Callback)))
	r.Method(http.MethodPost, "/callback", callbackBaseHandler(http.HandlerFunc(c.Forward)))
	r.Method(http.MethodGet, "/redirect", callbackBaseHandler(http.HandlerFunc(c.Redirect)))
}

// callbackBaseHandler: las respuestas llevan el authorization code, nunca se cachean.
func callbackBaseHandler(handler http.Handler) http.Handler {
	return mw.Chain(handler,
		mw.WithNoStore(),
	)
}

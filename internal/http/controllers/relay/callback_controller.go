package relay

import (
	"errors"
	"fmt"
	"net/http"

	httperrors "github.com/dropDatabas3/qbrelay/internal/http/errors"
	"github.com/dropDatabas3/qbrelay/internal/http/helpers"
	svc "github.com/dropDatabas3/qbrelay/internal/http/services/relay"
	"github.com/dropDatabas3/qbrelay/internal/observability/logger"
)

// CallbackController maneja los callbacks OAuth que QuickBooks envía al relay.
type CallbackController struct {
	service svc.RelayService
}

// NewCallbackController crea un nuevo CallbackController.
func NewCallbackController(service svc.RelayService) *CallbackController {
	return &CallbackController{service: service}
}

// Callback maneja GET /callback
func (c *CallbackController) Callback(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.From(ctx).With(logger.Layer("controller"), logger.Op("CallbackController.Callback"))

	params := svc.ParseQuery(r.URL.RawQuery)

	log.Info("quickbooks oauth callback received",
		logger.Redacted("code", params.Get(svc.ParamCode)),
		logger.RealmID(params.Get(svc.ParamRealmID)),
	)
	log.Debug("callback request detail",
		logger.Any("query", params.Map()),
		logger.Headers(r.Header),
	)

	redirectURL, err := c.service.Callback(ctx, params)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	http.Redirect(w, r, redirectURL, http.StatusFound)
}

// Redirect maneja GET /redirect: devuelve la URL destino en JSON, no redirige.
func (c *CallbackController) Redirect(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	params := svc.ParseQuery(r.URL.RawQuery)
	logger.From(ctx).Debug("redirect requested",
		logger.Layer("controller"),
		logger.Op("CallbackController.Redirect"),
		logger.Redacted("code", params.Get(svc.ParamCode)),
		logger.RealmID(params.Get(svc.ParamRealmID)),
	)

	resp, err := c.service.Redirect(ctx, params)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	helpers.WriteJSON(w, http.StatusOK, resp)
}

// Forward maneja POST /callback: body + query, la query gana en colisión.
func (c *CallbackController) Forward(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.From(ctx).With(logger.Layer("controller"), logger.Op("CallbackController.Forward"))

	body, err := readBodyParams(w, r)
	if err != nil {
		log.Error("invalid post callback body", logger.Err(err))
		httperrors.WriteError(w, httperrors.ErrServerError.WithCause(err))
		return
	}
	query := svc.ParseQuery(r.URL.RawQuery)

	log.Info("quickbooks oauth post callback received",
		logger.Int("body_params", body.Len()),
		logger.Int("query_params", query.Len()),
	)
	log.Debug("post callback detail",
		logger.Any("body", body.Map()),
		logger.Any("query", query.Map()),
	)

	params := svc.NewParams().Merge(body).Merge(query)
	http.Redirect(w, r, c.service.Forward(ctx, params), http.StatusFound)
}

func readBodyParams(w http.ResponseWriter, r *http.Request) (*svc.Params, error) {
	kind, raw, err := helpers.ReadBody(w, r)
	if err != nil {
		return nil, err
	}
	switch kind {
	case helpers.BodyForm:
		return svc.ParseQuery(string(raw)), nil
	case helpers.BodyJSON:
		return svc.ParseJSON(raw)
	default:
		return svc.NewParams(), nil
	}
}

// writeServiceError traduce errores del service a respuestas HTTP.
func writeServiceError(w http.ResponseWriter, err error) {
	var perr *svc.ProviderError
	switch {
	case errors.As(err, &perr):
		httperrors.WriteError(w, httperrors.ProviderError(perr.Code, perr.Description))
	case errors.Is(err, svc.ErrMissingCode):
		httperrors.WriteError(w, httperrors.ErrMissingCode)
	case errors.Is(err, svc.ErrMissingParameters):
		httperrors.WriteError(w, httperrors.ErrMissingParameters)
	default:
		httperrors.WriteError(w, httperrors.ErrServerError.WithCause(fmt.Errorf("relay: %w", err)))
	}
}

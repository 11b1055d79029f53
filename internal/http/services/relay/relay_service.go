// Package relay contiene el service que reenvía callbacks OAuth de QuickBooks a la app principal.
package relay

import (
	"context"

	dto "github.com/dropDatabas3/qbrelay/internal/http/dto/relay"
	"github.com/dropDatabas3/qbrelay/internal/observability/logger"
)

// Resultados de un callback, usados como label de métricas.
const (
	OutcomeRedirected        = "redirected"
	OutcomeReported          = "reported"
	OutcomeProviderError     = "provider_error"
	OutcomeMissingCode       = "missing_code"
	OutcomeMissingParameters = "missing_parameters"
)

// Rutas lógicas para métricas.
const (
	RouteCallbackGET  = "callback_get"
	RouteCallbackPOST = "callback_post"
	RouteRedirect     = "redirect"
)

// RelayService define las operaciones del relay.
type RelayService interface {
	// Callback valida el callback GET y devuelve la URL a la que redirigir.
	Callback(ctx context.Context, p *Params) (string, error)
	// Redirect arma la URL destino sin redirigir (GET /redirect).
	Redirect(ctx context.Context, p *Params) (dto.RedirectResponse, error)
	// Forward reenvía todos los parámetros truthy (POST /callback). No valida nada.
	Forward(ctx context.Context, p *Params) string
	// Target devuelve la URL destino configurada.
	Target() string
}

// Recorder recibe el resultado de cada callback. Implementado por metrics.Metrics.
type Recorder interface {
	RecordCallback(route, outcome string)
}

type noopRecorder struct{}

func (noopRecorder) RecordCallback(string, string) {}

// Deps contiene las dependencias del relay service.
type Deps struct {
	Target   *Target
	Recorder Recorder // opcional
}

type relayService struct {
	target   *Target
	recorder Recorder
}

// NewRelayService crea el service. Target es obligatorio.
func NewRelayService(deps Deps) RelayService {
	if deps.Target == nil {
		panic("relay: target is required")
	}
	rec := deps.Recorder
	if rec == nil {
		rec = noopRecorder{}
	}
	return &relayService{target: deps.Target, recorder: rec}
}

const componentRelay = "relay"

func (s *relayService) Target() string {
	return s.target.String()
}

func (s *relayService) Callback(ctx context.Context, p *Params) (string, error) {
	log := logger.From(ctx).With(
		logger.Layer("service"),
		logger.Component(componentRelay),
		logger.Op("Callback"),
	)

	if errCode := p.Get(ParamError); errCode != "" {
		desc := p.Get(ParamErrorDescription)
		log.Error("oauth error from provider", logger.OAuthError(errCode, desc))
		s.recorder.RecordCallback(RouteCallbackGET, OutcomeProviderError)
		return "", &ProviderError{Code: errCode, Description: desc}
	}

	code := p.Get(ParamCode)
	if code == "" {
		log.Error("missing authorization code in callback")
		s.recorder.RecordCallback(RouteCallbackGET, OutcomeMissingCode)
		return "", ErrMissingCode
	}

	fwd := ParamsOf(ParamCode, code)
	if state := p.Get(ParamState); state != "" {
		fwd.Set(ParamState, state)
	}
	if realmID := p.Get(ParamRealmID); realmID != "" {
		fwd.Set(ParamRealmID, realmID)
	}
	redirectURL := s.target.URL(fwd)

	log.Info("oauth success, forwarding to main app",
		logger.Redacted("code", code),
		logger.RealmID(p.Get(ParamRealmID)),
		logger.Redacted("state", p.Get(ParamState)),
		logger.Target(s.target.String()),
	)
	log.Debug("redirect url built", logger.String("redirect_url", redirectURL))

	s.recorder.RecordCallback(RouteCallbackGET, OutcomeRedirected)
	return redirectURL, nil
}

func (s *relayService) Redirect(ctx context.Context, p *Params) (dto.RedirectResponse, error) {
	log := logger.From(ctx).With(
		logger.Layer("service"),
		logger.Component(componentRelay),
		logger.Op("Redirect"),
	)

	code := p.Get(ParamCode)
	if code == "" {
		log.Warn("redirect requested without code")
		s.recorder.RecordCallback(RouteRedirect, OutcomeMissingParameters)
		return dto.RedirectResponse{}, ErrMissingParameters
	}

	// state y realmId van siempre, vacíos si no vinieron
	fwd := ParamsOf(
		ParamCode, code,
		ParamState, p.Get(ParamState),
		ParamRealmID, p.Get(ParamRealmID),
	)

	s.recorder.RecordCallback(RouteRedirect, OutcomeReported)
	return dto.RedirectResponse{
		Message:     "Parameters ready for redirect",
		RedirectURL: s.target.ComponentURL(fwd),
		Parameters: dto.RedirectParameters{
			Code:    code,
			State:   p.lookup(ParamState),
			RealmID: p.lookup(ParamRealmID),
		},
	}, nil
}

func (s *relayService) Forward(ctx context.Context, p *Params) string {
	log := logger.From(ctx).With(
		logger.Layer("service"),
		logger.Component(componentRelay),
		logger.Op("Forward"),
	)

	fwd := p.Truthy()
	redirectURL := s.target.URL(fwd)

	log.Info("forwarding post callback",
		logger.Count(fwd.Len()),
		logger.Any("keys", fwd.Keys()),
		logger.Target(s.target.String()),
	)

	s.recorder.RecordCallback(RouteCallbackPOST, OutcomeRedirected)
	return redirectURL
}

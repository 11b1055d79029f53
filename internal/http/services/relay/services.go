package relay

// Services agrupa los services del dominio relay.
type Services struct {
	Relay RelayService
}

// NewServices crea los services del dominio.
func NewServices(d Deps) Services {
	return Services{
		Relay: NewRelayService(d),
	}
}

package relay

import (
	"errors"
	"fmt"
)

var (
	ErrMissingCode       = errors.New("relay: authorization code missing")
	ErrMissingParameters = errors.New("relay: required oauth parameters missing")
)

// ProviderError es el error que QuickBooks devuelve en el callback (?error=...&error_description=...).
type ProviderError struct {
	Code        string
	Description string
}

func (e *ProviderError) Error() string {
	if e.Description == "" {
		return fmt.Sprintf("relay: provider error %s", e.Code)
	}
	return fmt.Sprintf("relay: provider error %s: %s", e.Code, e.Description)
}

package domain

import (
	"net/http"
	"net/url"

	"github.com/google/uuid"
	validation "github.com/jellydator/validation"

	customValidation "github.com/infiniteloop/camaraclient/internal/validation"
)

// Operator request headers.
const (
	HeaderSP            = "X-SI-SP"
	HeaderOpCo          = "X-SI-OPCO"
	HeaderClass         = "X-SI-CLASS"
	HeaderCorrelationID = "X-CORRELATION-ID"
	HeaderESP           = "X-SI-ESP"
)

// Per-call input keys reported by ConfigError.
const (
	KeyServiceClass = "service_class"
	KeyScope        = "scope"
)

// GrantTypeClientCredentials is the only grant the operator endpoint accepts.
const GrantTypeClientCredentials = "client_credentials"

// NewCorrelationID returns a random (version 4) UUID in canonical 8-4-4-4-12 form.
func NewCorrelationID() string {
	return uuid.NewString()
}

// TokenRequest is one client-credentials exchange attempt.
type TokenRequest struct {
	ServiceClass  string
	Scope         string
	CorrelationID string
}

// NewTokenRequest validates the per-call inputs and assigns a fresh correlation ID.
func NewTokenRequest(serviceClass, scope string) (TokenRequest, error) {
	rules := append([]validation.Rule{validation.Required, customValidation.NotBlank}, headerRules...)
	if err := validation.Validate(serviceClass, rules...); err != nil {
		return TokenRequest{}, &ConfigError{Key: KeyServiceClass, Reason: err.Error()}
	}
	if err := validation.Validate(scope, validation.Required, customValidation.NotBlank); err != nil {
		return TokenRequest{}, &ConfigError{Key: KeyScope, Reason: err.Error()}
	}

	return TokenRequest{
		ServiceClass:  serviceClass,
		Scope:         scope,
		CorrelationID: NewCorrelationID(),
	}, nil
}

// Form returns the form-encoded body fields.
func (r TokenRequest) Form(s Settings) url.Values {
	return url.Values{
		"grant_type":    {GrantTypeClientCredentials},
		"scope":         {r.Scope},
		"client_id":     {s.ClientID},
		"client_secret": {s.ClientSecret},
	}
}

// Headers returns the request headers. The operator headers are stored
// verbatim, bypassing canonicalization, so they go out upper-cased.
func (r TokenRequest) Headers(s Settings) http.Header {
	h := http.Header{}
	h.Set("Content-Type", "application/x-www-form-urlencoded")
	h.Set("Accept", "application/json")
	h[HeaderSP] = []string{s.SPName}
	h[HeaderOpCo] = []string{s.OpCo}
	h[HeaderClass] = []string{r.ServiceClass}
	h[HeaderCorrelationID] = []string{r.CorrelationID}
	h[HeaderESP] = []string{s.ESPID}
	return h
}

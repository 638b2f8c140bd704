// Package domain defines the operator settings, request metadata and the
// error taxonomy of the client-credentials token exchange.
package domain

import (
	validation "github.com/jellydator/validation"

	customValidation "github.com/infiniteloop/camaraclient/internal/validation"
)

// Setting keys, in validation order.
const (
	KeyTokenURL     = "token_url"
	KeyServiceURL   = "service_url"
	KeyClientID     = "client_id"
	KeyClientSecret = "client_secret"
	KeySPName       = "sp_name"
	KeyESPID        = "esp_id"
	KeyOpCo         = "opco"
)

// headerRules apply to every value sent as an operator header.
var headerRules = []validation.Rule{customValidation.HeaderSafe, customValidation.NoWhitespace}

// Settings holds the operator connection settings. It is built once and
// treated as read-only afterwards.
type Settings struct {
	TokenURL     string
	ServiceURL   string
	ClientID     string
	ClientSecret string
	SPName       string
	ESPID        string
	OpCo         string
}

// Validate checks every setting in a fixed order and returns a *ConfigError
// naming the first one that is missing, blank or malformed.
func (s Settings) Validate() error {
	fields := []struct {
		key   string
		value string
		rules []validation.Rule
	}{
		{KeyTokenURL, s.TokenURL, []validation.Rule{customValidation.HTTPSURL}},
		{KeyServiceURL, s.ServiceURL, []validation.Rule{customValidation.AbsoluteURL}},
		{KeyClientID, s.ClientID, nil},
		{KeyClientSecret, s.ClientSecret, nil},
		{KeySPName, s.SPName, headerRules},
		{KeyESPID, s.ESPID, headerRules},
		{KeyOpCo, s.OpCo, headerRules},
	}

	for _, f := range fields {
		rules := append([]validation.Rule{validation.Required, customValidation.NotBlank}, f.rules...)
		if err := validation.Validate(f.value, rules...); err != nil {
			return &ConfigError{Key: f.key, Reason: err.Error()}
		}
	}

	return nil
}

// Package dto provides data transfer objects for the operator token endpoint.
package dto

import (
	validation "github.com/jellydator/validation"

	customValidation "github.com/infiniteloop/camaraclient/internal/validation"
)

// IssueTokenRequest names the operator service class and scope to request a token for.
type IssueTokenRequest struct {
	ServiceClass string `json:"service_class"`
	Scope        string `json:"scope"`
}

// Validate checks that both fields are present.
func (r *IssueTokenRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.ServiceClass,
			validation.Required,
			customValidation.NotBlank,
			customValidation.NoWhitespace,
			validation.Length(1, 255),
		),
		validation.Field(&r.Scope,
			validation.Required,
			customValidation.NotBlank,
		),
	)
}

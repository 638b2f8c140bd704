// Package dto provides data transfer objects for the crypto HTTP endpoints.
package dto

import (
	validation "github.com/jellydator/validation"

	customValidation "github.com/infiniteloop/camaraclient/internal/validation"
)

// EncryptRequest carries base64-encoded plaintext. An empty plaintext is valid.
type EncryptRequest struct {
	Plaintext string `json:"plaintext"`
}

// Validate checks that the plaintext is standard base64.
func (r *EncryptRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Plaintext, customValidation.Base64),
	)
}

// DecryptRequest carries an encrypted blob as produced by the encrypt endpoint.
type DecryptRequest struct {
	Ciphertext string `json:"ciphertext"`
}

// Validate checks that a ciphertext is present. Its content is judged by the cipher.
func (r *DecryptRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Ciphertext, validation.Required, customValidation.NotBlank),
	)
}

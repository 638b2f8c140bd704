package dto

import "encoding/base64"

// EncryptResponse contains the encrypted blob.
type EncryptResponse struct {
	Ciphertext string `json:"ciphertext"`
}

// DecryptResponse contains base64-encoded plaintext.
type DecryptResponse struct {
	Plaintext string `json:"plaintext"`
}

// MapDecryptResponse encodes plaintext for transport.
func MapDecryptResponse(plaintext []byte) DecryptResponse {
	return DecryptResponse{Plaintext: base64.StdEncoding.EncodeToString(plaintext)}
}

package domain

import (
	"github.com/infiniteloop/camaraclient/internal/errors"
)

// Cipher error definitions.
//
// Every decryption failure wraps ErrDecryptionFailed so callers that must not
// reveal why a blob was rejected can match on it alone. The specific
// sentinels stay distinguishable for callers that need them.
var (
	// ErrDecryptionFailed is the parent of every decryption failure.
	//
	// HTTP Status: 422 Unprocessable Entity
	ErrDecryptionFailed = errors.Wrap(errors.ErrInvalidInput, "decryption failed")

	// ErrInvalidBlobBase64 indicates the blob is not canonical standard base64.
	ErrInvalidBlobBase64 = errors.Wrap(ErrDecryptionFailed, "invalid encrypted blob base64")

	// ErrInvalidBlobFormat indicates the decoded blob is shorter than nonce plus tag.
	ErrInvalidBlobFormat = errors.Wrap(ErrDecryptionFailed, "invalid encrypted blob format")

	// ErrAuthenticationFailed indicates the GCM tag did not verify: wrong key,
	// tampered ciphertext or tampered tag.
	ErrAuthenticationFailed = errors.Wrap(ErrDecryptionFailed, "message authentication failed")

	// ErrEncryptionFailed indicates the cipher primitive or the random source failed.
	//
	// HTTP Status: 500 Internal Server Error
	ErrEncryptionFailed = errors.Wrap(errors.ErrInternal, "encryption failed")

	// ErrInvalidKeySize indicates a key handed to the AEAD primitive is not KeySize bytes.
	ErrInvalidKeySize = errors.Wrap(errors.ErrInvalidInput, "invalid key size")

	// ErrInvalidKeyEncoding indicates a "base64:" key value that does not decode.
	ErrInvalidKeyEncoding = errors.Wrap(errors.ErrInvalidInput, "invalid cipher key encoding")

	// ErrKeyNotConfigured indicates no cipher key was configured for the process.
	ErrKeyNotConfigured = errors.Wrap(errors.ErrInvalidInput, "cipher key not configured")
)

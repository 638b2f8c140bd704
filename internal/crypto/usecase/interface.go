// Package usecase binds the cipher box to the process key and exposes the
// encrypt/decrypt operations used by handlers and commands.
package usecase

import (
	"context"
)

// CipherUseCase protects values with the configured process key.
type CipherUseCase interface {
	// Encrypt seals plaintext and returns the base64 blob.
	Encrypt(ctx context.Context, plaintext []byte) (string, error)

	// Decrypt authenticates and opens blob. Every failure wraps
	// cryptoDomain.ErrDecryptionFailed.
	Decrypt(ctx context.Context, blob string) ([]byte, error)
}

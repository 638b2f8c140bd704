package usecase

import (
	"bytes"
	"context"
	"log/slog"

	cryptoDomain "github.com/infiniteloop/camaraclient/internal/crypto/domain"
	cryptoService "github.com/infiniteloop/camaraclient/internal/crypto/service"
)

type cipherUseCase struct {
	cipher cryptoService.Cipher
	key    []byte
	logger *slog.Logger
}

// NewCipherUseCase creates a CipherUseCase bound to key.
// The key is copied; returns ErrKeyNotConfigured when it is empty.
func NewCipherUseCase(
	cipher cryptoService.Cipher,
	key []byte,
	logger *slog.Logger,
) (CipherUseCase, error) {
	if len(key) == 0 {
		return nil, cryptoDomain.ErrKeyNotConfigured
	}

	return &cipherUseCase{
		cipher: cipher,
		key:    bytes.Clone(key),
		logger: logger,
	}, nil
}

func (c *cipherUseCase) Encrypt(ctx context.Context, plaintext []byte) (string, error) {
	blob, err := c.cipher.Encrypt(plaintext, c.key)
	if err != nil {
		c.logger.ErrorContext(ctx, "encryption failed", slog.Any("error", err))
		return "", err
	}
	return blob, nil
}

func (c *cipherUseCase) Decrypt(ctx context.Context, blob string) ([]byte, error) {
	plaintext, err := c.cipher.Decrypt(blob, c.key)
	if err != nil {
		// Never log the blob itself.
		c.logger.WarnContext(ctx, "decryption rejected",
			slog.Int("blob_length", len(blob)),
			slog.Any("error", err),
		)
		return nil, err
	}
	return plaintext, nil
}

package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	cryptoDomain "github.com/infiniteloop/camaraclient/internal/crypto/domain"
	cryptoUseCase "github.com/infiniteloop/camaraclient/internal/crypto/usecase"
)

// RunDecrypt opens a blob given as argument or on the reader and writes the
// raw plaintext. Every decryption failure is reported as ErrDecryptionFailed
// without saying why the blob was rejected.
func RunDecrypt(
	ctx context.Context,
	cipherUseCase cryptoUseCase.CipherUseCase,
	logger *slog.Logger,
	ioTuple IOTuple,
	blob string,
) error {
	data, err := readInput(blob, ioTuple.Reader)
	if err != nil {
		return err
	}

	plaintext, err := cipherUseCase.Decrypt(ctx, trimInput(data))
	if err != nil {
		if errors.Is(err, cryptoDomain.ErrDecryptionFailed) {
			logger.Debug("decryption rejected", slog.Any("error", err))
			return cryptoDomain.ErrDecryptionFailed
		}
		return fmt.Errorf("failed to decrypt: %w", err)
	}
	defer cryptoDomain.Zero(plaintext)

	_, err = ioTuple.Writer.Write(plaintext)
	return err
}

package commands

import (
	"context"
	"fmt"
	"log/slog"

	cryptoUseCase "github.com/infiniteloop/camaraclient/internal/crypto/usecase"
)

// RunEncrypt seals plaintext with the configured key and prints the blob.
// The plaintext is taken verbatim from the argument, or from the reader when
// the argument is empty.
func RunEncrypt(
	ctx context.Context,
	cipherUseCase cryptoUseCase.CipherUseCase,
	logger *slog.Logger,
	ioTuple IOTuple,
	plaintext string,
) error {
	data, err := readInput(plaintext, ioTuple.Reader)
	if err != nil {
		return err
	}

	blob, err := cipherUseCase.Encrypt(ctx, data)
	if err != nil {
		return fmt.Errorf("failed to encrypt: %w", err)
	}

	logger.Debug("value encrypted", slog.Int("plaintext_bytes", len(data)))

	_, err = fmt.Fprintln(ioTuple.Writer, blob)
	return err
}

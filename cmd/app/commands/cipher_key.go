package commands

import (
	"context"
	"crypto/rand"
	"fmt"
	"io"
	"log/slog"

	cryptoDomain "github.com/infiniteloop/camaraclient/internal/crypto/domain"
	cryptoService "github.com/infiniteloop/camaraclient/internal/crypto/service"
)

// RunCreateCipherKey generates a random 16-byte cipher key and prints the
// environment variables that configure it. Key material is zeroed after encoding.
//
// Without kmsKeyURI the key is printed as CIPHER_KEY="base64:...". With it the
// key is wrapped by the KMS keeper and printed together with CIPHER_KEY_KMS_URI.
// For local development use kmsKeyURI="base64key://<32-byte-base64-key>".
func RunCreateCipherKey(
	ctx context.Context,
	kmsService cryptoService.KMSService,
	logger *slog.Logger,
	writer io.Writer,
	kmsKeyURI string,
) error {
	key := make([]byte, cryptoDomain.KeySize)
	if _, err := rand.Read(key); err != nil {
		return fmt.Errorf("failed to generate cipher key: %w", err)
	}
	defer cryptoDomain.Zero(key)

	if kmsKeyURI == "" {
		logger.Warn("cipher key printed in plaintext, prefer --kms-key-uri outside local development")

		_, err := fmt.Fprintf(writer,
			"# Cipher Key Configuration\n# Copy this environment variable to your .env file or secrets manager\n\nCIPHER_KEY=\"%s\"\n",
			cryptoDomain.FormatKeyString(key),
		)
		return err
	}

	wrapped, err := kmsService.WrapKey(ctx, kmsKeyURI, key)
	if err != nil {
		return err
	}

	logger.Info("cipher key wrapped with kms")

	_, err = fmt.Fprintf(writer,
		"# Cipher Key Configuration (KMS Mode)\n# Copy these environment variables to your .env file or secrets manager\n\nCIPHER_KEY_KMS_URI=\"%s\"\nCIPHER_KEY=\"%s\"\n",
		kmsKeyURI,
		wrapped,
	)
	return err
}

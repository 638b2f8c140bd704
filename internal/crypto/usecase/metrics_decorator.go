package usecase

import (
	"context"
	"time"

	"github.com/infiniteloop/camaraclient/internal/metrics"
)

// cipherUseCaseWithMetrics decorates CipherUseCase with metrics instrumentation.
type cipherUseCaseWithMetrics struct {
	next    CipherUseCase
	metrics metrics.BusinessMetrics
}

// NewCipherUseCaseWithMetrics wraps a CipherUseCase with metrics recording.
func NewCipherUseCaseWithMetrics(useCase CipherUseCase, m metrics.BusinessMetrics) CipherUseCase {
	return &cipherUseCaseWithMetrics{
		next:    useCase,
		metrics: m,
	}
}

// Encrypt records metrics for encryption operations.
func (c *cipherUseCaseWithMetrics) Encrypt(ctx context.Context, plaintext []byte) (string, error) {
	start := time.Now()
	blob, err := c.next.Encrypt(ctx, plaintext)
	c.record(ctx, "encrypt", start, err)
	return blob, err
}

// Decrypt records metrics for decryption operations.
func (c *cipherUseCaseWithMetrics) Decrypt(ctx context.Context, blob string) ([]byte, error) {
	start := time.Now()
	plaintext, err := c.next.Decrypt(ctx, blob)
	c.record(ctx, "decrypt", start, err)
	return plaintext, err
}

func (c *cipherUseCaseWithMetrics) record(ctx context.Context, operation string, start time.Time, err error) {
	status := metrics.StatusFromError(err)
	c.metrics.RecordOperation(ctx, "crypto", operation, status)
	c.metrics.RecordDuration(ctx, "crypto", operation, time.Since(start), status)
}

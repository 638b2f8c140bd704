package usecase

import (
	"context"
	"time"

	"github.com/infiniteloop/camaraclient/internal/metrics"
)

// tokenUseCaseWithMetrics decorates TokenUseCase with metrics instrumentation.
type tokenUseCaseWithMetrics struct {
	next    TokenUseCase
	metrics metrics.BusinessMetrics
}

// NewTokenUseCaseWithMetrics wraps a TokenUseCase with metrics recording.
func NewTokenUseCaseWithMetrics(useCase TokenUseCase, m metrics.BusinessMetrics) TokenUseCase {
	return &tokenUseCaseWithMetrics{
		next:    useCase,
		metrics: m,
	}
}

// Issue records metrics for token issuance operations.
func (t *tokenUseCaseWithMetrics) Issue(ctx context.Context, serviceClass, scope string) (string, error) {
	start := time.Now()
	token, err := t.next.Issue(ctx, serviceClass, scope)

	status := metrics.StatusFromError(err)
	t.metrics.RecordOperation(ctx, "operator", "token_issue", status)
	t.metrics.RecordDuration(ctx, "operator", "token_issue", time.Since(start), status)

	return token, err
}

package usecase

import (
	"context"

	authService "github.com/infiniteloop/camaraclient/internal/auth/service"
)

type tokenUseCase struct {
	provider authService.TokenProvider
}

// NewTokenUseCase creates a TokenUseCase backed by provider.
func NewTokenUseCase(provider authService.TokenProvider) TokenUseCase {
	return &tokenUseCase{provider: provider}
}

func (t *tokenUseCase) Issue(ctx context.Context, serviceClass, scope string) (string, error) {
	return t.provider.Exchange(ctx, serviceClass, scope)
}

// Package usecase exposes operator token issuance to the rest of the application.
package usecase

import "context"

// TokenUseCase issues operator access tokens.
type TokenUseCase interface {
	// Issue performs one client-credentials exchange for serviceClass and scope
	// and returns the bearer token. Nothing is cached between calls.
	Issue(ctx context.Context, serviceClass, scope string) (string, error)
}

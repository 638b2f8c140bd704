// Package mocks provides mock implementations of the auth use cases for testing.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// MockTokenUseCase is a mock implementation of TokenUseCase for testing.
type MockTokenUseCase struct {
	mock.Mock
}

// Issue mocks the Issue method of TokenUseCase.
func (m *MockTokenUseCase) Issue(ctx context.Context, serviceClass, scope string) (string, error) {
	args := m.Called(ctx, serviceClass, scope)
	return args.String(0), args.Error(1)
}

// MockTokenProvider is a mock implementation of service.TokenProvider for testing.
type MockTokenProvider struct {
	mock.Mock
}

// Exchange mocks the Exchange method of TokenProvider.
func (m *MockTokenProvider) Exchange(ctx context.Context, serviceClass, scope string) (string, error) {
	args := m.Called(ctx, serviceClass, scope)
	return args.String(0), args.Error(1)
}

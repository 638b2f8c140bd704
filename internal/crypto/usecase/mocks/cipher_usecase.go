// Package mocks provides mock implementations of the crypto use cases for testing.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// MockCipherUseCase is a mock implementation of CipherUseCase for testing.
type MockCipherUseCase struct {
	mock.Mock
}

// Encrypt mocks the Encrypt method of CipherUseCase.
func (m *MockCipherUseCase) Encrypt(ctx context.Context, plaintext []byte) (string, error) {
	args := m.Called(ctx, plaintext)
	return args.String(0), args.Error(1)
}

// Decrypt mocks the Decrypt method of CipherUseCase.
func (m *MockCipherUseCase) Decrypt(ctx context.Context, blob string) ([]byte, error) {
	args := m.Called(ctx, blob)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/infiniteloop/camaraclient/internal/auth/usecase"
	usecaseMocks "github.com/infiniteloop/camaraclient/internal/auth/usecase/mocks"
	metricsMocks "github.com/infiniteloop/camaraclient/internal/metrics/mocks"
)

func TestTokenUseCaseWithMetrics(t *testing.T) {
	ctx := context.Background()

	t.Run("Issue success", func(t *testing.T) {
		mockNext := &usecaseMocks.MockTokenUseCase{}
		mockMetrics := &metricsMocks.MockBusinessMetrics{}
		uc := usecase.NewTokenUseCaseWithMetrics(mockNext, mockMetrics)

		mockNext.On("Issue", ctx, "HLR", "hlr:lookup").Return("tok-123", nil).Once()
		mockMetrics.On("RecordOperation", ctx, "operator", "token_issue", "success").Return().Once()
		mockMetrics.On("RecordDuration", ctx, "operator", "token_issue", mock.AnythingOfType("time.Duration"), "success").
			Return().
			Once()

		token, err := uc.Issue(ctx, "HLR", "hlr:lookup")
		assert.NoError(t, err)
		assert.Equal(t, "tok-123", token)
		mockNext.AssertExpectations(t)
		mockMetrics.AssertExpectations(t)
	})

	t.Run("Issue error", func(t *testing.T) {
		mockNext := &usecaseMocks.MockTokenUseCase{}
		mockMetrics := &metricsMocks.MockBusinessMetrics{}
		uc := usecase.NewTokenUseCaseWithMetrics(mockNext, mockMetrics)
		expectedErr := errors.New("exchange failed")

		mockNext.On("Issue", ctx, "HLR", "hlr:lookup").Return("", expectedErr).Once()
		mockMetrics.On("RecordOperation", ctx, "operator", "token_issue", "error").Return().Once()
		mockMetrics.On("RecordDuration", ctx, "operator", "token_issue", mock.AnythingOfType("time.Duration"), "error").
			Return().
			Once()

		token, err := uc.Issue(ctx, "HLR", "hlr:lookup")
		assert.ErrorIs(t, err, expectedErr)
		assert.Empty(t, token)
		mockNext.AssertExpectations(t)
		mockMetrics.AssertExpectations(t)
	})
}

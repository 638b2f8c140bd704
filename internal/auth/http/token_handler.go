// Package http provides the HTTP handler that issues operator access tokens.
package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/infiniteloop/camaraclient/internal/auth/http/dto"
	authUseCase "github.com/infiniteloop/camaraclient/internal/auth/usecase"
	"github.com/infiniteloop/camaraclient/internal/httputil"
	customValidation "github.com/infiniteloop/camaraclient/internal/validation"
)

// TokenHandler handles HTTP requests for operator token issuance.
type TokenHandler struct {
	tokenUseCase authUseCase.TokenUseCase
	logger       *slog.Logger
}

// NewTokenHandler creates a new token handler with required dependencies.
func NewTokenHandler(
	tokenUseCase authUseCase.TokenUseCase,
	logger *slog.Logger,
) *TokenHandler {
	return &TokenHandler{
		tokenUseCase: tokenUseCase,
		logger:       logger,
	}
}

// IssueTokenHandler exchanges the configured client credentials for a token.
// POST /v1/operator/token - Returns 200 OK with the access token.
// Any failure of the exchange itself is reported as 503 service unavailable.
func (h *TokenHandler) IssueTokenHandler(c *gin.Context) {
	var req dto.IssueTokenRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	token, err := h.tokenUseCase.Issue(c.Request.Context(), req.ServiceClass, req.Scope)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.Header("Cache-Control", "no-store")
	c.JSON(http.StatusOK, dto.MapIssueTokenResponse(token))
}

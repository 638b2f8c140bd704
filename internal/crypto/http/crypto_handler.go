// Package http provides HTTP handlers for encrypting and decrypting with the process key.
package http

import (
	"encoding/base64"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	cryptoDomain "github.com/infiniteloop/camaraclient/internal/crypto/domain"
	"github.com/infiniteloop/camaraclient/internal/crypto/http/dto"
	cryptoUseCase "github.com/infiniteloop/camaraclient/internal/crypto/usecase"
	apperrors "github.com/infiniteloop/camaraclient/internal/errors"
	"github.com/infiniteloop/camaraclient/internal/httputil"
	customValidation "github.com/infiniteloop/camaraclient/internal/validation"
)

// CryptoHandler handles HTTP requests for encryption and decryption.
type CryptoHandler struct {
	cipherUseCase cryptoUseCase.CipherUseCase
	logger        *slog.Logger
}

// NewCryptoHandler creates a new crypto handler with required dependencies.
func NewCryptoHandler(
	cipherUseCase cryptoUseCase.CipherUseCase,
	logger *slog.Logger,
) *CryptoHandler {
	return &CryptoHandler{
		cipherUseCase: cipherUseCase,
		logger:        logger,
	}
}

// EncryptHandler encrypts base64 plaintext.
// POST /v1/crypto/encrypt - Returns 200 OK with the encrypted blob.
func (h *CryptoHandler) EncryptHandler(c *gin.Context) {
	var req dto.EncryptRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	plaintext, err := base64.StdEncoding.DecodeString(req.Plaintext)
	if err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}
	defer cryptoDomain.Zero(plaintext)

	blob, err := h.cipherUseCase.Encrypt(c.Request.Context(), plaintext)
	if err != nil {
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}

	c.JSON(http.StatusOK, dto.EncryptResponse{Ciphertext: blob})
}

// DecryptHandler decrypts an encrypted blob.
// POST /v1/crypto/decrypt - Returns 200 OK with base64 plaintext.
// Every rejected blob gets the same 422 response whatever the cause.
func (h *CryptoHandler) DecryptHandler(c *gin.Context) {
	var req dto.DecryptRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.HandleBadRequestGin(c, err, h.logger)
		return
	}

	if err := req.Validate(); err != nil {
		httputil.HandleValidationErrorGin(c, customValidation.WrapValidationError(err), h.logger)
		return
	}

	plaintext, err := h.cipherUseCase.Decrypt(c.Request.Context(), req.Ciphertext)
	if err != nil {
		if apperrors.Is(err, cryptoDomain.ErrDecryptionFailed) {
			httputil.WriteErrorGin(c, http.StatusUnprocessableEntity, "invalid_input", "decryption failed")
			return
		}
		httputil.HandleErrorGin(c, err, h.logger)
		return
	}
	defer cryptoDomain.Zero(plaintext)

	c.JSON(http.StatusOK, dto.MapDecryptResponse(plaintext))
}

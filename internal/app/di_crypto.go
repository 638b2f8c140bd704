package app

import (
	"context"
	"fmt"

	cryptoDomain "github.com/infiniteloop/camaraclient/internal/crypto/domain"
	cryptoHTTP "github.com/infiniteloop/camaraclient/internal/crypto/http"
	cryptoService "github.com/infiniteloop/camaraclient/internal/crypto/service"
	cryptoUseCase "github.com/infiniteloop/camaraclient/internal/crypto/usecase"
)

// KMSService returns the KMS service used to wrap and unwrap the cipher key.
func (c *Container) KMSService() cryptoService.KMSService {
	c.kmsServiceInit.Do(func() {
		c.kmsService = cryptoService.NewKMSService()
	})
	return c.kmsService
}

// CipherKey returns the configured cipher key bytes. When CIPHER_KEY_KMS_URI is set the
// configured CIPHER_KEY is unwrapped through the KMS, otherwise it is parsed directly.
func (c *Container) CipherKey(ctx context.Context) ([]byte, error) {
	var err error
	c.cipherKeyInit.Do(func() {
		c.cipherKey, err = c.loadCipherKey(ctx)
		c.setInitError("cipherKey", err)
	})
	if err := c.initError("cipherKey", err); err != nil {
		return nil, err
	}
	return c.cipherKey, nil
}

// CipherUseCase returns the cipher use case bound to the configured key.
func (c *Container) CipherUseCase(ctx context.Context) (cryptoUseCase.CipherUseCase, error) {
	var err error
	c.cipherUseCaseInit.Do(func() {
		c.cipherUseCase, err = c.initCipherUseCase(ctx)
		c.setInitError("cipherUseCase", err)
	})
	if err := c.initError("cipherUseCase", err); err != nil {
		return nil, err
	}
	return c.cipherUseCase, nil
}

// CryptoHandler returns a new HTTP handler for the encrypt and decrypt routes.
func (c *Container) CryptoHandler(ctx context.Context) (*cryptoHTTP.CryptoHandler, error) {
	useCase, err := c.CipherUseCase(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get cipher use case for crypto handler: %w", err)
	}
	return cryptoHTTP.NewCryptoHandler(useCase, c.Logger()), nil
}

func (c *Container) loadCipherKey(ctx context.Context) ([]byte, error) {
	if c.config.CipherKeyKMSURI == "" {
		return cryptoDomain.ParseKeyString(c.config.CipherKey)
	}

	if c.config.CipherKey == "" {
		return nil, cryptoDomain.ErrKeyNotConfigured
	}

	key, err := c.KMSService().UnwrapKey(ctx, c.config.CipherKeyKMSURI, c.config.CipherKey)
	if err != nil {
		return nil, fmt.Errorf("failed to unwrap cipher key: %w", err)
	}
	if len(key) == 0 {
		return nil, cryptoDomain.ErrKeyNotConfigured
	}

	c.Logger().Info("cipher key unwrapped with kms")
	return key, nil
}

func (c *Container) initCipherUseCase(ctx context.Context) (cryptoUseCase.CipherUseCase, error) {
	key, err := c.CipherKey(ctx)
	if err != nil {
		return nil, err
	}

	useCase, err := cryptoUseCase.NewCipherUseCase(cryptoService.NewCipherBox(), key, c.Logger())
	if err != nil {
		return nil, fmt.Errorf("failed to create cipher use case: %w", err)
	}

	businessMetrics, err := c.BusinessMetrics()
	if err != nil {
		return nil, err
	}
	return cryptoUseCase.NewCipherUseCaseWithMetrics(useCase, businessMetrics), nil
}

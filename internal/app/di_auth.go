package app

import (
	"fmt"
	"net/http"

	authHTTP "github.com/infiniteloop/camaraclient/internal/auth/http"
	authService "github.com/infiniteloop/camaraclient/internal/auth/service"
	authUseCase "github.com/infiniteloop/camaraclient/internal/auth/usecase"
)

// HTTPClient returns a new outbound client for the operator token endpoint.
func (c *Container) HTTPClient() (*http.Client, error) {
	rootCAs, err := authService.LoadRootCAs(c.config.TokenCAFile)
	if err != nil {
		return nil, err
	}

	return authService.NewHTTPClient(authService.HTTPClientConfig{
		ConnectTimeout: c.config.TokenConnectTimeout,
		RequestTimeout: c.config.TokenRequestTimeout,
		RootCAs:        rootCAs,
	}), nil
}

// TokenProvider returns the token provider built from the operator settings.
// Incomplete settings surface here as a *authDomain.ConfigError.
func (c *Container) TokenProvider() (authService.TokenProvider, error) {
	var err error
	c.tokenProviderInit.Do(func() {
		c.tokenProvider, err = c.initTokenProvider()
		c.setInitError("tokenProvider", err)
	})
	if err := c.initError("tokenProvider", err); err != nil {
		return nil, err
	}
	return c.tokenProvider, nil
}

// TokenUseCase returns the token use case decorated with business metrics.
func (c *Container) TokenUseCase() (authUseCase.TokenUseCase, error) {
	var err error
	c.tokenUseCaseInit.Do(func() {
		c.tokenUseCase, err = c.initTokenUseCase()
		c.setInitError("tokenUseCase", err)
	})
	if err := c.initError("tokenUseCase", err); err != nil {
		return nil, err
	}
	return c.tokenUseCase, nil
}

// TokenHandler returns the operator token HTTP handler, or nil when
// OPERATOR_TOKEN_URL is not set.
func (c *Container) TokenHandler() (*authHTTP.TokenHandler, error) {
	if c.config.OperatorTokenURL == "" {
		return nil, nil
	}

	useCase, err := c.TokenUseCase()
	if err != nil {
		return nil, fmt.Errorf("failed to get token use case for token handler: %w", err)
	}
	return authHTTP.NewTokenHandler(useCase, c.Logger()), nil
}

func (c *Container) initTokenProvider() (authService.TokenProvider, error) {
	client, err := c.HTTPClient()
	if err != nil {
		return nil, fmt.Errorf("failed to create token http client: %w", err)
	}
	return authService.NewTokenProvider(c.config.OperatorSettings(), client, c.Logger())
}

func (c *Container) initTokenUseCase() (authUseCase.TokenUseCase, error) {
	provider, err := c.TokenProvider()
	if err != nil {
		return nil, err
	}

	businessMetrics, err := c.BusinessMetrics()
	if err != nil {
		return nil, err
	}
	return authUseCase.NewTokenUseCaseWithMetrics(authUseCase.NewTokenUseCase(provider), businessMetrics), nil
}

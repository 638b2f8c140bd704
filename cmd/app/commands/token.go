package commands

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	authDomain "github.com/infiniteloop/camaraclient/internal/auth/domain"
	authUseCase "github.com/infiniteloop/camaraclient/internal/auth/usecase"
)

// ErrServiceUnavailable is returned by RunToken when the exchange fails.
// The cause is logged, never printed.
var ErrServiceUnavailable = errors.New("service unavailable")

// RunToken performs one client-credentials exchange and prints the access token.
//
// Invalid settings or arguments are reported as they are. Any other failure
// prints "service unavailable" and returns ErrServiceUnavailable.
func RunToken(
	ctx context.Context,
	tokenUseCase authUseCase.TokenUseCase,
	logger *slog.Logger,
	writer io.Writer,
	serviceClass string,
	scope string,
	format string,
) error {
	if err := validateFormat(format); err != nil {
		return err
	}

	logger.Debug("issuing operator token",
		slog.String("service_class", serviceClass),
		slog.String("scope", scope),
	)

	token, err := tokenUseCase.Issue(ctx, serviceClass, scope)
	if err != nil {
		var configErr *authDomain.ConfigError
		if errors.As(err, &configErr) {
			return fmt.Errorf("invalid operator settings: %w", err)
		}

		// The provider has already logged the classified failure.
		logger.Debug("token exchange failed", slog.Any("error", err))
		_, _ = fmt.Fprintln(writer, ErrServiceUnavailable.Error())
		return ErrServiceUnavailable
	}

	if format == formatJSON {
		return writeJSON(writer, map[string]string{
			"access_token": token,
			"token_type":   "Bearer",
		})
	}

	_, err = fmt.Fprintln(writer, token)
	return err
}

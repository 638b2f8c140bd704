package service

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	authDomain "github.com/infiniteloop/camaraclient/internal/auth/domain"
)

const (
	// maxResponseBytes caps how much of a token response is read.
	maxResponseBytes = 1 << 20
	// maxErrorBodyBytes caps the body kept on HTTPStatusError and in logs.
	maxErrorBodyBytes = 4 << 10
)

type tokenProvider struct {
	settings authDomain.Settings
	client   *http.Client
	logger   *slog.Logger
}

// NewTokenProvider validates settings and returns a TokenProvider.
// Incomplete settings are rejected here with a *authDomain.ConfigError,
// before any exchange can be attempted.
func NewTokenProvider(
	settings authDomain.Settings,
	client *http.Client,
	logger *slog.Logger,
) (TokenProvider, error) {
	if err := settings.Validate(); err != nil {
		logger.Error("operator settings rejected", slog.Any("error", err))
		return nil, err
	}
	if client == nil {
		client = NewHTTPClient(HTTPClientConfig{})
	}

	return &tokenProvider{
		settings: settings,
		client:   client,
		logger:   logger,
	}, nil
}

// Exchange performs the client-credentials exchange. No retries, no caching:
// each call is an independent round trip with its own correlation ID.
func (p *tokenProvider) Exchange(ctx context.Context, serviceClass, scope string) (string, error) {
	req, err := authDomain.NewTokenRequest(serviceClass, scope)
	if err != nil {
		p.logger.ErrorContext(ctx, "token request rejected",
			slog.String("service_class", serviceClass),
			slog.String("scope", scope),
			slog.Any("error", err),
		)
		return "", err
	}

	logger := p.logger.With(
		slog.String("correlation_id", req.CorrelationID),
		slog.String("service_class", req.ServiceClass),
		slog.String("scope", req.Scope),
	)

	httpReq, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		p.settings.TokenURL,
		strings.NewReader(req.Form(p.settings).Encode()),
	)
	if err != nil {
		err = fmt.Errorf("%w: %w", authDomain.ErrTransport, err)
		logger.ErrorContext(ctx, "failed to build token request", slog.Any("error", err))
		return "", err
	}
	httpReq.Header = req.Headers(p.settings)

	resp, err := p.client.Do(httpReq)
	if err != nil {
		err = fmt.Errorf("%w: %w", authDomain.ErrTransport, err)
		logger.ErrorContext(ctx, "token endpoint unreachable", slog.Any("error", err))
		return "", err
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		err = fmt.Errorf("%w: reading response: %w", authDomain.ErrTransport, err)
		logger.ErrorContext(ctx, "failed to read token response",
			slog.Int("status_code", resp.StatusCode),
			slog.Any("error", err),
		)
		return "", err
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		statusErr := &authDomain.HTTPStatusError{
			StatusCode: resp.StatusCode,
			Body:       truncate(body, maxErrorBodyBytes),
		}
		logger.ErrorContext(ctx, "token endpoint returned error status",
			slog.Int("status_code", statusErr.StatusCode),
			slog.String("body", statusErr.Body),
		)
		return "", statusErr
	}

	token, err := parseAccessToken(body)
	if err != nil {
		logger.ErrorContext(ctx, "invalid token response",
			slog.Int("status_code", resp.StatusCode),
			slog.Any("error", err),
		)
		return "", err
	}

	logger.DebugContext(ctx, "token issued")
	return token, nil
}

// parseAccessToken extracts access_token from a JSON body. Any other field is ignored.
func parseAccessToken(body []byte) (string, error) {
	if !json.Valid(body) {
		return "", authDomain.ErrInvalidTokenResponse
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(body, &fields); err != nil {
		// Valid JSON that is not an object.
		return "", authDomain.ErrMissingAccessToken
	}

	raw, ok := fields["access_token"]
	if !ok {
		return "", authDomain.ErrMissingAccessToken
	}

	var token string
	if err := json.Unmarshal(raw, &token); err != nil || token == "" {
		return "", authDomain.ErrMissingAccessToken
	}
	return token, nil
}

func truncate(body []byte, limit int) string {
	if len(body) > limit {
		body = body[:limit]
	}
	return string(body)
}

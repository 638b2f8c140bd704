package app

import (
	"bytes"
	"context"
	"crypto/rand"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	authDomain "github.com/infiniteloop/camaraclient/internal/auth/domain"
	"github.com/infiniteloop/camaraclient/internal/config"
	cryptoDomain "github.com/infiniteloop/camaraclient/internal/crypto/domain"
	cryptoService "github.com/infiniteloop/camaraclient/internal/crypto/service"
	"github.com/infiniteloop/camaraclient/internal/metrics"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	m.Run()
}

func testConfig() *config.Config {
	return &config.Config{
		LogLevel:                "info",
		CipherKey:               "mykey",
		ServerHost:              "127.0.0.1",
		ServerPort:              0,
		ServerShutdownTimeout:   time.Second,
		RateLimitEnabled:        false,
		RateLimitRequestsPerSec: 10,
		RateLimitBurst:          20,
		MetricsEnabled:          false,
		MetricsNamespace:        "test_app",
		MetricsPort:             0,
		TokenConnectTimeout:     time.Second,
		TokenRequestTimeout:     time.Second,
	}
}

func operatorConfig() *config.Config {
	cfg := testConfig()
	cfg.OperatorTokenURL = "https://auth.example.com/oauth2/token"
	cfg.OperatorServiceURL = "https://api.example.com"
	cfg.OperatorClientID = "client"
	cfg.OperatorClientSecret = "secret"
	cfg.OperatorSPName = "infiniteloop"
	cfg.OperatorESPID = "esp-42"
	cfg.OperatorOpCo = "ES"
	return cfg
}

func localSecretsURI(t *testing.T) string {
	t.Helper()
	key := make([]byte, 32)
	_, err := rand.Read(key)
	require.NoError(t, err)
	return "base64key://" + base64.URLEncoding.EncodeToString(key)
}

func newTestContainer(cfg *config.Config) (*Container, *bytes.Buffer) {
	var logs bytes.Buffer
	return NewContainerWithLogOutput(cfg, &logs), &logs
}

func TestNewContainer(t *testing.T) {
	cfg := testConfig()
	container := NewContainer(cfg)

	require.NotNil(t, container)
	assert.Same(t, cfg, container.Config())
}

func TestContainer_Logger(t *testing.T) {
	tests := []struct {
		level       string
		debugLogged bool
		infoLogged  bool
	}{
		{level: "debug", debugLogged: true, infoLogged: true},
		{level: "info", debugLogged: false, infoLogged: true},
		{level: "warn", debugLogged: false, infoLogged: false},
		{level: "unknown", debugLogged: false, infoLogged: true},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			cfg := testConfig()
			cfg.LogLevel = tt.level
			container, logs := newTestContainer(cfg)

			logger := container.Logger()
			assert.Same(t, logger, container.Logger())

			logger.Debug("debug message")
			logger.Info("info message")

			assert.Equal(t, tt.debugLogged, strings.Contains(logs.String(), "debug message"))
			assert.Equal(t, tt.infoLogged, strings.Contains(logs.String(), "info message"))
		})
	}
}

func TestContainer_Logger_JSON(t *testing.T) {
	container, logs := newTestContainer(testConfig())
	container.Logger().Info("hello")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(logs.Bytes(), &entry))
	assert.Equal(t, "hello", entry["msg"])
}

func TestContainer_Metrics(t *testing.T) {
	t.Run("disabled", func(t *testing.T) {
		container, _ := newTestContainer(testConfig())

		provider, err := container.MetricsProvider()
		require.NoError(t, err)
		assert.Nil(t, provider)

		businessMetrics, err := container.BusinessMetrics()
		require.NoError(t, err)
		assert.IsType(t, &metrics.NoOpBusinessMetrics{}, businessMetrics)

		server, err := container.MetricsServer()
		require.NoError(t, err)
		assert.Nil(t, server)
	})

	t.Run("enabled", func(t *testing.T) {
		cfg := testConfig()
		cfg.MetricsEnabled = true
		container, _ := newTestContainer(cfg)
		t.Cleanup(func() { _ = container.Shutdown(context.Background()) })

		provider, err := container.MetricsProvider()
		require.NoError(t, err)
		require.NotNil(t, provider)
		assert.Equal(t, "test_app", provider.Namespace())

		again, err := container.MetricsProvider()
		require.NoError(t, err)
		assert.Same(t, provider, again)

		businessMetrics, err := container.BusinessMetrics()
		require.NoError(t, err)
		_, isNoOp := businessMetrics.(*metrics.NoOpBusinessMetrics)
		assert.False(t, isNoOp)

		server, err := container.MetricsServer()
		require.NoError(t, err)
		require.NotNil(t, server)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
		server.GetHandler().ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func TestContainer_CipherKey(t *testing.T) {
	t.Run("raw value", func(t *testing.T) {
		container, _ := newTestContainer(testConfig())

		key, err := container.CipherKey(context.Background())
		require.NoError(t, err)
		assert.Equal(t, []byte("mykey"), key)
	})

	t.Run("base64 prefixed value", func(t *testing.T) {
		cfg := testConfig()
		cfg.CipherKey = cryptoDomain.FormatKeyString([]byte("0123456789abcdef"))
		container, _ := newTestContainer(cfg)

		key, err := container.CipherKey(context.Background())
		require.NoError(t, err)
		assert.Equal(t, []byte("0123456789abcdef"), key)
	})

	t.Run("missing key", func(t *testing.T) {
		cfg := testConfig()
		cfg.CipherKey = ""
		container, _ := newTestContainer(cfg)

		_, err := container.CipherKey(context.Background())
		require.ErrorIs(t, err, cryptoDomain.ErrKeyNotConfigured)

		// The failure is remembered.
		_, err = container.CipherKey(context.Background())
		assert.ErrorIs(t, err, cryptoDomain.ErrKeyNotConfigured)
	})

	t.Run("invalid base64", func(t *testing.T) {
		cfg := testConfig()
		cfg.CipherKey = "base64:%%%"
		container, _ := newTestContainer(cfg)

		_, err := container.CipherKey(context.Background())
		assert.ErrorIs(t, err, cryptoDomain.ErrInvalidKeyEncoding)
	})

	t.Run("kms wrapped", func(t *testing.T) {
		ctx := context.Background()
		uri := localSecretsURI(t)
		wrapped, err := cryptoService.NewKMSService().WrapKey(ctx, uri, []byte("0123456789abcdef"))
		require.NoError(t, err)

		cfg := testConfig()
		cfg.CipherKey = wrapped
		cfg.CipherKeyKMSURI = uri
		container, logs := newTestContainer(cfg)

		key, err := container.CipherKey(ctx)
		require.NoError(t, err)
		assert.Equal(t, []byte("0123456789abcdef"), key)
		assert.Contains(t, logs.String(), "cipher key unwrapped with kms")
	})

	t.Run("kms uri without key", func(t *testing.T) {
		cfg := testConfig()
		cfg.CipherKey = ""
		cfg.CipherKeyKMSURI = localSecretsURI(t)
		container, _ := newTestContainer(cfg)

		_, err := container.CipherKey(context.Background())
		assert.ErrorIs(t, err, cryptoDomain.ErrKeyNotConfigured)
	})

	t.Run("kms unwrap with the wrong keeper", func(t *testing.T) {
		ctx := context.Background()
		wrapped, err := cryptoService.NewKMSService().WrapKey(ctx, localSecretsURI(t), []byte("0123456789abcdef"))
		require.NoError(t, err)

		cfg := testConfig()
		cfg.CipherKey = wrapped
		cfg.CipherKeyKMSURI = localSecretsURI(t)
		container, _ := newTestContainer(cfg)

		_, err = container.CipherKey(ctx)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to unwrap cipher key")
	})
}

func TestContainer_CipherUseCase(t *testing.T) {
	ctx := context.Background()
	container, _ := newTestContainer(testConfig())

	useCase, err := container.CipherUseCase(ctx)
	require.NoError(t, err)

	again, err := container.CipherUseCase(ctx)
	require.NoError(t, err)
	assert.Same(t, useCase, again)

	blob, err := useCase.Encrypt(ctx, []byte("hello world"))
	require.NoError(t, err)

	// Interoperable with a bare CipherBox holding the same key.
	plaintext, err := cryptoService.NewCipherBox().Decrypt(blob, []byte("mykey"))
	require.NoError(t, err)
	assert.Equal(t, []byte("hello world"), plaintext)
}

func TestContainer_TokenProvider(t *testing.T) {
	t.Run("complete settings", func(t *testing.T) {
		container, _ := newTestContainer(operatorConfig())

		provider, err := container.TokenProvider()
		require.NoError(t, err)
		assert.NotNil(t, provider)

		useCase, err := container.TokenUseCase()
		require.NoError(t, err)
		assert.NotNil(t, useCase)

		handler, err := container.TokenHandler()
		require.NoError(t, err)
		assert.NotNil(t, handler)
	})

	t.Run("incomplete settings", func(t *testing.T) {
		cfg := operatorConfig()
		cfg.OperatorESPID = ""
		container, _ := newTestContainer(cfg)

		_, err := container.TokenProvider()
		var configErr *authDomain.ConfigError
		require.ErrorAs(t, err, &configErr)
		assert.Equal(t, "esp_id", configErr.Key)

		_, err = container.TokenUseCase()
		assert.ErrorAs(t, err, &configErr)
	})

	t.Run("token endpoint not configured", func(t *testing.T) {
		container, _ := newTestContainer(testConfig())

		handler, err := container.TokenHandler()
		require.NoError(t, err)
		assert.Nil(t, handler)
	})

	t.Run("unreadable CA file", func(t *testing.T) {
		cfg := operatorConfig()
		cfg.TokenCAFile = t.TempDir() + "/missing.pem"
		container, _ := newTestContainer(cfg)

		_, err := container.HTTPClient()
		require.Error(t, err)

		_, err = container.TokenProvider()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to create token http client")
	})
}

func TestContainer_HTTPClient(t *testing.T) {
	container, _ := newTestContainer(operatorConfig())

	client, err := container.HTTPClient()
	require.NoError(t, err)
	assert.Equal(t, time.Second, client.Timeout)
}

func TestContainer_HTTPServer(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	container, _ := newTestContainer(operatorConfig())

	server, err := container.HTTPServer(ctx)
	require.NoError(t, err)

	again, err := container.HTTPServer(ctx)
	require.NoError(t, err)
	assert.Same(t, server, again)

	body := strings.NewReader(`{"plaintext":"aGVsbG8gd29ybGQ="}`)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/v1/crypto/encrypt", body)
	req.Header.Set("Content-Type", "application/json")
	server.GetHandler().ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var encrypted struct {
		Ciphertext string `json:"ciphertext"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &encrypted))
	plaintext, err := cryptoService.NewCipherBox().Decrypt(encrypted.Ciphertext, []byte("mykey"))
	require.NoError(t, err)
	assert.Equal(t, []byte("hello world"), plaintext)

	// Operator settings are complete, so the token route is mounted.
	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodPost, "/v1/operator/token", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	server.GetHandler().ServeHTTP(w, req)
	assert.NotEqual(t, http.StatusNotFound, w.Code)

	require.NoError(t, container.Shutdown(context.Background()))
}

func TestContainer_HTTPServer_MissingKey(t *testing.T) {
	cfg := testConfig()
	cfg.CipherKey = ""
	container, _ := newTestContainer(cfg)

	_, err := container.HTTPServer(context.Background())
	require.ErrorIs(t, err, cryptoDomain.ErrKeyNotConfigured)
	assert.Contains(t, err.Error(), "failed to get crypto handler for http server")
}

func TestContainer_Shutdown(t *testing.T) {
	t.Run("nothing initialized", func(t *testing.T) {
		container, _ := newTestContainer(testConfig())
		assert.NoError(t, container.Shutdown(context.Background()))
	})

	t.Run("key is cleared", func(t *testing.T) {
		container, _ := newTestContainer(testConfig())
		key, err := container.CipherKey(context.Background())
		require.NoError(t, err)

		require.NoError(t, container.Shutdown(context.Background()))
		assert.Equal(t, make([]byte, len(key)), key)
	})
}

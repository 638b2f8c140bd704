package service

import (
	"crypto/tls"
	"crypto/x509"
	"fmt"
	"net"
	"net/http"
	"os"
	"time"
)

// Default token endpoint timeouts.
const (
	DefaultConnectTimeout = 10 * time.Second
	DefaultRequestTimeout = 30 * time.Second
)

// HTTPClientConfig configures the outbound client used for token exchanges.
type HTTPClientConfig struct {
	// ConnectTimeout bounds the TCP dial and the TLS handshake.
	ConnectTimeout time.Duration
	// RequestTimeout bounds the whole exchange, body included.
	RequestTimeout time.Duration
	// RootCAs is used as given when set; LoadRootCAs builds it on top of the
	// system roots. Verification is never disabled.
	RootCAs *x509.CertPool
}

// NewHTTPClient builds a client that verifies the server certificate and
// hostname, never reuses connections and never follows redirects.
func NewHTTPClient(cfg HTTPClientConfig) *http.Client {
	connectTimeout := cfg.ConnectTimeout
	if connectTimeout <= 0 {
		connectTimeout = DefaultConnectTimeout
	}
	requestTimeout := cfg.RequestTimeout
	if requestTimeout <= 0 {
		requestTimeout = DefaultRequestTimeout
	}

	dialer := &net.Dialer{Timeout: connectTimeout}

	transport := &http.Transport{
		Proxy:               http.ProxyFromEnvironment,
		DialContext:         dialer.DialContext,
		TLSHandshakeTimeout: connectTimeout,
		TLSClientConfig: &tls.Config{
			MinVersion: tls.VersionTLS12,
			RootCAs:    cfg.RootCAs,
		},
		DisableKeepAlives:     true,
		ResponseHeaderTimeout: requestTimeout,
	}

	return &http.Client{
		Transport: transport,
		Timeout:   requestTimeout,
		// A redirected POST would resend the client secret to another host.
		CheckRedirect: func(*http.Request, []*http.Request) error {
			return http.ErrUseLastResponse
		},
	}
}

// LoadRootCAs returns the system pool extended with the PEM certificates in caFile.
// An empty caFile returns nil, meaning "system roots only".
func LoadRootCAs(caFile string) (*x509.CertPool, error) {
	if caFile == "" {
		return nil, nil
	}

	pem, err := os.ReadFile(caFile)
	if err != nil {
		return nil, fmt.Errorf("failed to read CA file: %w", err)
	}

	pool, err := x509.SystemCertPool()
	if err != nil {
		pool = x509.NewCertPool()
	}

	if ok := pool.AppendCertsFromPEM(pem); !ok {
		return nil, fmt.Errorf("no certificates found in CA file %s", caFile)
	}
	return pool, nil
}

// Package service implements the client-credentials token exchange against
// the operator identity endpoint.
package service

import (
	"context"
)

// TokenProvider obtains bearer tokens from the operator identity endpoint.
type TokenProvider interface {
	// Exchange performs one client-credentials round trip for serviceClass
	// and scope and returns the access token. Every failure is logged and
	// returned as one of the authDomain sentinels or typed errors.
	Exchange(ctx context.Context, serviceClass, scope string) (string, error)
}

// Package service provides the cryptographic primitives behind the cipher box:
// the AES-128-GCM AEAD, blob assembly and KMS unwrapping of the process key.
package service

import (
	"context"
)

// AEAD defines the interface for Authenticated Encryption with Associated Data.
type AEAD interface {
	// Encrypt encrypts plaintext with optional AAD and returns ciphertext||tag and nonce.
	Encrypt(plaintext, aad []byte) (ciphertext, nonce []byte, err error)

	// Decrypt verifies and decrypts ciphertext||tag using the provided nonce and AAD.
	Decrypt(ciphertext, nonce, aad []byte) ([]byte, error)
}

// Cipher encrypts values into the blob wire format and back.
type Cipher interface {
	// Encrypt seals plaintext under key and returns the base64 blob.
	Encrypt(plaintext, key []byte) (string, error)

	// Decrypt authenticates and opens a blob produced by Encrypt.
	Decrypt(blob string, key []byte) ([]byte, error)
}

// KMSKeeper is the subset of *secrets.Keeper used to wrap and unwrap key material.
type KMSKeeper interface {
	Encrypt(ctx context.Context, plaintext []byte) ([]byte, error)
	Decrypt(ctx context.Context, ciphertext []byte) ([]byte, error)
	Close() error
}

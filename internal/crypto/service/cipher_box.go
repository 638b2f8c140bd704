package service

import (
	"fmt"

	cryptoDomain "github.com/infiniteloop/camaraclient/internal/crypto/domain"
)

// CipherBox seals values into the blob wire format
// base64(nonce[12] || ciphertext[n] || tag[16]) using AES-128-GCM with empty AAD.
//
// Keys of any length are accepted and normalized with cryptoDomain.NormalizeKey.
// CipherBox holds no state and is safe for concurrent use.
type CipherBox struct{}

// NewCipherBox creates a new CipherBox.
func NewCipherBox() *CipherBox {
	return &CipherBox{}
}

// Encrypt seals plaintext under key.
//
// Returns cryptoDomain.ErrEncryptionFailed if the cipher cannot be built or
// the random source fails while drawing the nonce.
func (b *CipherBox) Encrypt(plaintext, key []byte) (string, error) {
	aead, release, err := newBoxCipher(key)
	if err != nil {
		return "", fmt.Errorf("%w: %v", cryptoDomain.ErrEncryptionFailed, err)
	}
	defer release()

	sealed, nonce, err := aead.Encrypt(plaintext, nil)
	if err != nil {
		return "", fmt.Errorf("%w: %v", cryptoDomain.ErrEncryptionFailed, err)
	}

	tagStart := len(sealed) - cryptoDomain.TagSize
	blob := cryptoDomain.EncryptedBlob{
		Nonce:      nonce,
		Ciphertext: sealed[:tagStart],
		Tag:        sealed[tagStart:],
	}
	return blob.String(), nil
}

// Decrypt opens a blob produced by Encrypt.
//
// Errors, all wrapping cryptoDomain.ErrDecryptionFailed:
//   - ErrInvalidBlobBase64: blob is not canonical standard base64
//   - ErrInvalidBlobFormat: decoded blob shorter than 28 bytes
//   - ErrAuthenticationFailed: tag mismatch (wrong key or tampered blob)
//
// No plaintext is returned unless the tag verified.
func (b *CipherBox) Decrypt(blob string, key []byte) ([]byte, error) {
	parsed, err := cryptoDomain.ParseEncryptedBlob(blob)
	if err != nil {
		return nil, err
	}

	aead, release, err := newBoxCipher(key)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", cryptoDomain.ErrAuthenticationFailed, err)
	}
	defer release()

	plaintext, err := aead.Decrypt(parsed.SealedCiphertext(), parsed.Nonce, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", cryptoDomain.ErrAuthenticationFailed, err)
	}
	return plaintext, nil
}

// newBoxCipher normalizes key and builds the AEAD. release zeroes the
// normalized key copy.
func newBoxCipher(key []byte) (AEAD, func(), error) {
	normalized := cryptoDomain.NormalizeKey(key)
	release := func() { cryptoDomain.Zero(normalized) }

	aead, err := NewAESGCM(normalized)
	if err != nil {
		release()
		return nil, nil, err
	}
	return aead, release, nil
}

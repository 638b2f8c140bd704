package domain

import (
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/infiniteloop/camaraclient/internal/errors"
)

// blobEncoding rejects non-canonical input such as set padding bits.
// It still skips '\r' and '\n', so ParseEncryptedBlob rejects those first.
var blobEncoding = base64.StdEncoding.Strict()

// EncryptedBlob is the decoded form of the cipher wire format:
//
//	base64( nonce[12] || ciphertext[n] || tag[16] )
type EncryptedBlob struct {
	Nonce      []byte
	Ciphertext []byte
	Tag        []byte
}

// ParseEncryptedBlob decodes and splits a blob produced by EncryptedBlob.String.
//
// Returns ErrInvalidBlobBase64 when content is not canonical standard base64
// (line breaks included) and ErrInvalidBlobFormat when the decoded bytes are shorter than MinBlobSize.
// The returned slices share one backing array.
func ParseEncryptedBlob(content string) (EncryptedBlob, error) {
	if strings.ContainsAny(content, "\r\n") {
		return EncryptedBlob{}, errors.Wrap(ErrInvalidBlobBase64, "line break in blob")
	}

	raw, err := blobEncoding.DecodeString(content)
	if err != nil {
		return EncryptedBlob{}, fmt.Errorf("%w: %v", ErrInvalidBlobBase64, err)
	}

	if len(raw) < MinBlobSize {
		return EncryptedBlob{}, errors.Wrapf(
			ErrInvalidBlobFormat,
			"got %d bytes, need at least %d",
			len(raw),
			MinBlobSize,
		)
	}

	return EncryptedBlob{
		Nonce:      raw[:NonceSize],
		Ciphertext: raw[NonceSize : len(raw)-TagSize],
		Tag:        raw[len(raw)-TagSize:],
	}, nil
}

// SealedCiphertext returns ciphertext || tag, the layout cipher.AEAD.Open expects.
func (eb EncryptedBlob) SealedCiphertext() []byte {
	sealed := make([]byte, 0, len(eb.Ciphertext)+len(eb.Tag))
	sealed = append(sealed, eb.Ciphertext...)
	return append(sealed, eb.Tag...)
}

// String encodes the blob to its wire format.
func (eb EncryptedBlob) String() string {
	raw := make([]byte, 0, len(eb.Nonce)+len(eb.Ciphertext)+len(eb.Tag))
	raw = append(raw, eb.Nonce...)
	raw = append(raw, eb.Ciphertext...)
	raw = append(raw, eb.Tag...)
	return blobEncoding.EncodeToString(raw)
}

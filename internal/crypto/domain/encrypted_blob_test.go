package domain

import (
	"bytes"
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/infiniteloop/camaraclient/internal/errors"
)

func TestParseEncryptedBlob(t *testing.T) {
	nonce := bytes.Repeat([]byte{0x01}, NonceSize)
	ciphertext := []byte("ciphertext")
	tag := bytes.Repeat([]byte{0x02}, TagSize)

	t.Run("splits nonce ciphertext and tag", func(t *testing.T) {
		raw := append(append(append([]byte{}, nonce...), ciphertext...), tag...)

		blob, err := ParseEncryptedBlob(base64.StdEncoding.EncodeToString(raw))
		require.NoError(t, err)

		assert.Equal(t, nonce, blob.Nonce)
		assert.Equal(t, ciphertext, blob.Ciphertext)
		assert.Equal(t, tag, blob.Tag)
		assert.Equal(t, append(append([]byte{}, ciphertext...), tag...), blob.SealedCiphertext())
	})

	t.Run("minimum size blob has empty ciphertext", func(t *testing.T) {
		raw := append(append([]byte{}, nonce...), tag...)

		blob, err := ParseEncryptedBlob(base64.StdEncoding.EncodeToString(raw))
		require.NoError(t, err)
		assert.Empty(t, blob.Ciphertext)
	})

	t.Run("too short", func(t *testing.T) {
		raw := make([]byte, MinBlobSize-1)

		_, err := ParseEncryptedBlob(base64.StdEncoding.EncodeToString(raw))
		assert.ErrorIs(t, err, ErrInvalidBlobFormat)
		assert.ErrorIs(t, err, ErrDecryptionFailed)
		assert.NotErrorIs(t, err, ErrInvalidBlobBase64)
		assert.Contains(t, err.Error(), "got 27 bytes, need at least 28")
	})

	t.Run("empty string", func(t *testing.T) {
		_, err := ParseEncryptedBlob("")
		assert.ErrorIs(t, err, ErrInvalidBlobFormat)
	})

	t.Run("invalid characters", func(t *testing.T) {
		_, err := ParseEncryptedBlob("not base64 at all!")
		assert.ErrorIs(t, err, ErrInvalidBlobBase64)
		assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
	})

	t.Run("url alphabet rejected", func(t *testing.T) {
		raw := bytes.Repeat([]byte{0xFB, 0xFF}, 20)

		_, err := ParseEncryptedBlob(base64.URLEncoding.EncodeToString(raw))
		assert.ErrorIs(t, err, ErrInvalidBlobBase64)
	})

	t.Run("non-canonical padding bits rejected", func(t *testing.T) {
		raw := make([]byte, MinBlobSize)
		encoded := base64.StdEncoding.EncodeToString(raw)
		// 28 bytes end in one byte + "==", so the last data character carries
		// four unused bits. "B" sets one of them.
		nonCanonical := encoded[:len(encoded)-3] + "B=="

		_, err := ParseEncryptedBlob(nonCanonical)
		assert.ErrorIs(t, err, ErrInvalidBlobBase64)
	})

	t.Run("line breaks rejected", func(t *testing.T) {
		encoded := base64.StdEncoding.EncodeToString(make([]byte, MinBlobSize))

		for name, blob := range map[string]string{
			"crlf inside": encoded[:8] + "\r\n" + encoded[8:],
			"lf inside":   encoded[:8] + "\n" + encoded[8:],
			"cr inside":   encoded[:8] + "\r" + encoded[8:],
			"trailing lf": encoded + "\n",
		} {
			_, err := ParseEncryptedBlob(blob)
			assert.ErrorIs(t, err, ErrInvalidBlobBase64, name)
			assert.ErrorIs(t, err, ErrDecryptionFailed, name)
		}

		// The same bytes without line breaks are accepted.
		_, err := ParseEncryptedBlob(encoded)
		assert.NoError(t, err)
	})

	t.Run("missing padding rejected", func(t *testing.T) {
		raw := make([]byte, MinBlobSize+1)
		encoded := base64.RawStdEncoding.EncodeToString(raw)

		_, err := ParseEncryptedBlob(encoded)
		assert.ErrorIs(t, err, ErrInvalidBlobBase64)
	})
}

func TestEncryptedBlob_String(t *testing.T) {
	blob := EncryptedBlob{
		Nonce:      bytes.Repeat([]byte{0x0A}, NonceSize),
		Ciphertext: []byte("hello"),
		Tag:        bytes.Repeat([]byte{0x0B}, TagSize),
	}

	parsed, err := ParseEncryptedBlob(blob.String())
	require.NoError(t, err)
	assert.Equal(t, blob, parsed)
}

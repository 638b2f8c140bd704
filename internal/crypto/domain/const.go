package domain

// Layout of an encrypted blob: nonce || ciphertext || tag.
//
// The sizes are fixed by the wire format shared with the other operator
// clients, so they are constants rather than configuration.
const (
	// KeySize is the AES-128 key length every caller-supplied key is normalized to.
	KeySize = 16

	// NonceSize is the GCM nonce length prepended to each blob.
	NonceSize = 12

	// TagSize is the GCM authentication tag length appended to each blob.
	TagSize = 16

	// MinBlobSize is the smallest valid decoded blob: an empty plaintext.
	MinBlobSize = NonceSize + TagSize
)

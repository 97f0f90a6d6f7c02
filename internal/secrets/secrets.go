// Package secrets seals and opens per-guild gist tokens with AES-256-GCM.
//
// The wire format is base64(iv ‖ tag ‖ ciphertext) with a 16-byte IV and a
// 16-byte auth tag. This matches the layout used by the data already at rest,
// so existing rows keep decrypting after a migration.
//
// Tokens are decrypted just-in-time per remote call and never persisted in
// plaintext anywhere (including logs; see the redacting logger middleware).
package secrets

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
)

const (
	ivLength  = 16
	tagLength = 16
)

// ErrMalformedCiphertext is returned by Open when the payload is too short
// or not valid base64.
var ErrMalformedCiphertext = errors.New("malformed ciphertext")

// Keeper seals and opens secrets with a fixed 32-byte key.
// It is safe for concurrent use.
type Keeper struct {
	aead cipher.AEAD
}

// NewKeeper constructs a Keeper from a 32-byte key.
func NewKeeper(key []byte) (*Keeper, error) {
	if len(key) != 32 {
		return nil, errors.New("secrets: key must be 32 bytes")
	}
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}
	aead, err := cipher.NewGCMWithNonceSize(block, ivLength)
	if err != nil {
		return nil, err
	}
	return &Keeper{aead: aead}, nil
}

// Seal encrypts plaintext and returns the base64-encoded payload.
func (k *Keeper) Seal(plaintext string) (string, error) {
	iv := make([]byte, ivLength)
	if _, err := rand.Read(iv); err != nil {
		return "", err
	}

	// Go appends ciphertext ‖ tag; the stored layout is iv ‖ tag ‖ ciphertext.
	sealed := k.aead.Seal(nil, iv, []byte(plaintext), nil)
	ct := sealed[:len(sealed)-tagLength]
	tag := sealed[len(sealed)-tagLength:]

	out := make([]byte, 0, ivLength+tagLength+len(ct))
	out = append(out, iv...)
	out = append(out, tag...)
	out = append(out, ct...)
	return base64.StdEncoding.EncodeToString(out), nil
}

// Open decrypts a payload produced by Seal. It returns
// ErrMalformedCiphertext for undecodable input and an authentication error
// when the payload was tampered with or sealed under a different key.
func (k *Keeper) Open(encoded string) (string, error) {
	raw, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrMalformedCiphertext, err)
	}
	if len(raw) < ivLength+tagLength {
		return "", ErrMalformedCiphertext
	}

	iv := raw[:ivLength]
	tag := raw[ivLength : ivLength+tagLength]
	ct := raw[ivLength+tagLength:]

	// Reassemble ciphertext ‖ tag for the Go AEAD API.
	sealed := make([]byte, 0, len(ct)+tagLength)
	sealed = append(sealed, ct...)
	sealed = append(sealed, tag...)

	plain, err := k.aead.Open(nil, iv, sealed, nil)
	if err != nil {
		return "", err
	}
	return string(plain), nil
}

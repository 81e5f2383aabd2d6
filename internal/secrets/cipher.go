package secrets

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"io"

	"creatorhub/internal/apperr"
)

// Cipher provides authenticated encryption for OAuth credentials at rest.
// A single process-wide key is assumed for the lifetime of stored data.
type Cipher struct {
	aead cipher.AEAD
}

// NewCipher builds an AES-256-GCM cipher from a base64-encoded 32-byte key.
func NewCipher(encodedKey string) (*Cipher, error) {
	key, err := base64.StdEncoding.DecodeString(encodedKey)
	if err != nil {
		return nil, fmt.Errorf("encryption key is not valid base64: %w", err)
	}
	if len(key) != 32 {
		return nil, fmt.Errorf("encryption key must decode to 32 bytes, got %d", len(key))
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("new cipher: %w", err)
	}
	aead, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("new gcm: %w", err)
	}
	return &Cipher{aead: aead}, nil
}

// Encrypt seals plaintext and returns a base64-encoded nonce||ciphertext
// payload suitable for storage.
func (c *Cipher) Encrypt(plaintext []byte) (string, error) {
	// AES-GCM requires a unique nonce per encryption under the same key.
	nonce := make([]byte, c.aead.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return "", fmt.Errorf("read nonce: %w", err)
	}

	ciphertext := c.aead.Seal(nonce, nonce, plaintext, nil)
	return base64.RawStdEncoding.EncodeToString(ciphertext), nil
}

// Decrypt opens a previously sealed payload. A malformed token or a failed
// authentication tag both surface as apperr.ErrInvalidCredential.
func (c *Cipher) Decrypt(token string) ([]byte, error) {
	payload, err := base64.RawStdEncoding.DecodeString(token)
	if err != nil {
		return nil, fmt.Errorf("%w: malformed token", apperr.ErrInvalidCredential)
	}

	nonceSize := c.aead.NonceSize()
	if len(payload) < nonceSize {
		return nil, fmt.Errorf("%w: token too short", apperr.ErrInvalidCredential)
	}

	nonce, ciphertext := payload[:nonceSize], payload[nonceSize:]
	plaintext, err := c.aead.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: authentication failed", apperr.ErrInvalidCredential)
	}
	// Open appends to its nil dst, so an empty plaintext comes back nil.
	if plaintext == nil {
		plaintext = []byte{}
	}
	return plaintext, nil
}

package utils

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"io"
)

// BlobCipher encrypts persisted state blobs with AES-256-GCM. The key is
// injected at construction instead of read from the environment on every
// call, so tests can run with a throwaway key.
type BlobCipher struct {
	key []byte
}

// NewBlobCipher builds a cipher from a base64-encoded 32-byte key, the same
// format produced by `openssl rand -base64 32`.
func NewBlobCipher(keyBase64 string) (*BlobCipher, error) {
	if keyBase64 == "" {
		return nil, errors.New("encryption key is empty")
	}
	keyBytes, err := base64.StdEncoding.DecodeString(keyBase64)
	if err != nil {
		return nil, errors.New("encryption key must be base64-encoded")
	}
	if len(keyBytes) != 32 {
		return nil, errors.New("encryption key must decode to exactly 32 bytes (256 bits)")
	}
	return &BlobCipher{key: keyBytes}, nil
}

// Encrypt encrypts plaintext and returns it base64-encoded. Empty input
// passes through unchanged.
func (c *BlobCipher) Encrypt(plaintext string) (string, error) {
	if plaintext == "" {
		return "", nil
	}

	block, err := aes.NewCipher(c.key)
	if err != nil {
		return "", err
	}

	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return "", err
	}

	nonce := make([]byte, gcm.NonceSize())
	if _, err = io.ReadFull(rand.Reader, nonce); err != nil {
		return "", err
	}

	ciphertext := gcm.Seal(nonce, nonce, []byte(plaintext), nil)
	return base64.StdEncoding.EncodeToString(ciphertext), nil
}

// Decrypt reverses Encrypt. Empty input passes through unchanged.
func (c *BlobCipher) Decrypt(ciphertext string) (string, error) {
	if ciphertext == "" {
		return "", nil
	}

	data, err := base64.StdEncoding.DecodeString(ciphertext)
	if err != nil {
		return "", err
	}

	block, err := aes.NewCipher(c.key)
	if err != nil {
		return "", err
	}

	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return "", err
	}

	nonceSize := gcm.NonceSize()
	if len(data) < nonceSize {
		return "", errors.New("ciphertext too short")
	}

	nonce, ciphertextBytes := data[:nonceSize], data[nonceSize:]
	plaintext, err := gcm.Open(nil, nonce, ciphertextBytes, nil)
	if err != nil {
		return "", err
	}

	return string(plaintext), nil
}

package config

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"io"
	"strings"
)

// SealedPrefix marks an environment value that holds ciphertext produced by Sealer.Seal.
const SealedPrefix = "enc:"

var (
	ErrInvalidCryptoKey = errors.New("CRYPTO_KEY must be 32 bytes")
	ErrShortCiphertext  = errors.New("ciphertext shorter than nonce")
)

// Sealer encrypts and decrypts secrets with AES-256-GCM.
type Sealer struct {
	aead cipher.AEAD
}

func NewSealer(key string) (*Sealer, error) {
	if len(key) != 32 {
		return nil, ErrInvalidCryptoKey
	}
	block, err := aes.NewCipher([]byte(key))
	if err != nil {
		return nil, err
	}
	aead, err := cipher.NewGCM(block)
	if err != nil {
		return nil, err
	}
	return &Sealer{aead: aead}, nil
}

func (s *Sealer) Encrypt(text string) (string, error) {
	nonce := make([]byte, s.aead.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return "", err
	}
	ciphertext := s.aead.Seal(nonce, nonce, []byte(text), nil)
	return base64.StdEncoding.EncodeToString(ciphertext), nil
}

func (s *Sealer) Decrypt(encoded string) (string, error) {
	ciphertext, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return "", err
	}
	nonceSize := s.aead.NonceSize()
	if len(ciphertext) < nonceSize {
		return "", ErrShortCiphertext
	}
	nonce, ciphertext := ciphertext[:nonceSize], ciphertext[nonceSize:]
	plaintext, err := s.aead.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return "", err
	}
	return string(plaintext), nil
}

// Seal returns text encrypted and tagged with SealedPrefix, ready to be stored in an env var.
func (s *Sealer) Seal(text string) (string, error) {
	enc, err := s.Encrypt(text)
	if err != nil {
		return "", err
	}
	return SealedPrefix + enc, nil
}

// Open decrypts a value carrying SealedPrefix and returns any other value unchanged.
func (s *Sealer) Open(value string) (string, error) {
	if !strings.HasPrefix(value, SealedPrefix) {
		return value, nil
	}
	return s.Decrypt(strings.TrimPrefix(value, SealedPrefix))
}

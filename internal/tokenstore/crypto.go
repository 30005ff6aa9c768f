package tokenstore

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"io"

	"github.com/pkg/errors"
	"golang.org/x/crypto/hkdf"
)

const (
	keySize   = 32
	nonceSize = 12
)

var keyInfo = []byte("espeeswap token at rest v1")

// cipherBox seals and opens tokens with AES-256-GCM. The key is derived from
// the caller-supplied secret with HKDF-SHA-256 so any secret length works.
type cipherBox struct {
	key []byte
}

func newCipherBox(secret []byte) (*cipherBox, error) {
	if len(secret) == 0 {
		return nil, errors.New("encryption secret is empty")
	}

	reader := hkdf.New(sha256.New, secret, nil, keyInfo)
	key := make([]byte, keySize)
	if _, err := io.ReadFull(reader, key); err != nil {
		return nil, errors.Wrap(err, "failed to derive token key")
	}

	return &cipherBox{key: key}, nil
}

// seal returns nonce || ciphertext || tag.
func (c *cipherBox) seal(plaintext []byte) ([]byte, error) {
	block, err := aes.NewCipher(c.key)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create cipher")
	}

	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create GCM")
	}

	nonce := make([]byte, nonceSize)
	if _, err := rand.Read(nonce); err != nil {
		return nil, errors.Wrap(err, "failed to generate nonce")
	}

	return gcm.Seal(nonce, nonce, plaintext, nil), nil
}

func (c *cipherBox) open(sealed []byte) ([]byte, error) {
	if len(sealed) < nonceSize {
		return nil, errors.New("sealed token too short")
	}

	block, err := aes.NewCipher(c.key)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create cipher")
	}

	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create GCM")
	}

	plaintext, err := gcm.Open(nil, sealed[:nonceSize], sealed[nonceSize:], nil)
	if err != nil {
		return nil, errors.New("token decryption failed")
	}

	return plaintext, nil
}

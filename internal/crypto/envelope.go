// Package crypto implements the encryption-at-rest core: per-user key
// generation and the authenticated symmetric envelope used for health
// records and private messages.
//
// Ciphertexts are Fernet tokens (version byte, timestamp, random IV,
// AES-128-CBC ciphertext, HMAC-SHA256 tag, base64url-encoded), so every
// stored value is a self-describing, integrity-protected string. A wrong key
// or a single corrupted bit yields ErrAuthFailure, never garbage plaintext;
// tag comparison inside the fernet library is constant-time.
package crypto

import (
	"fmt"

	"github.com/fernet/fernet-go"
)

// Key is a base64url-encoded 256-bit Fernet key. Exactly one key is
// generated per user at account creation and kept for the lifetime of the
// account; there is no rotation.
type Key string

// GenerateKey produces a fresh random key from the OS CSPRNG.
func GenerateKey() (Key, error) {
	k := new(fernet.Key)
	if err := k.Generate(); err != nil {
		return "", fmt.Errorf("error generating encryption key: %w", err)
	}

	return Key(k.Encode()), nil
}

// Seal encrypts plaintext under key and returns the encoded Fernet token.
func Seal(plaintext []byte, key Key) (string, error) {
	k, err := key.decode()
	if err != nil {
		return "", err
	}

	token, err := fernet.EncryptAndSign(plaintext, k)
	if err != nil {
		return "", fmt.Errorf("error sealing plaintext: %w", err)
	}

	return string(token), nil
}

// Open authenticates and decrypts a Fernet token produced by Seal.
//
// Any verification failure — wrong key, malformed token, corrupted bytes —
// is reported as ErrAuthFailure without further detail. Token age is not
// checked here: entry lifetime is a data property, not a crypto property.
func Open(token string, key Key) ([]byte, error) {
	k, err := key.decode()
	if err != nil {
		return nil, err
	}

	// Negative ttl disables the library's age check.
	plaintext := fernet.VerifyAndDecrypt([]byte(token), -1, []*fernet.Key{k})
	if plaintext == nil {
		return nil, ErrAuthFailure
	}

	return plaintext, nil
}

// decode parses the base64url key material. A key that fails to decode is a
// configuration or storage corruption problem, not an authentication
// failure, and is reported as ErrInvalidKey.
func (key Key) decode() (*fernet.Key, error) {
	k, err := fernet.DecodeKey(string(key))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidKey, err)
	}

	return k, nil
}

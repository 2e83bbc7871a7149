package crypto

import "io"

//go:generate mockgen -source=interfaces.go -destination=../mock/cipher_mock.go -package=mock

// StreamCipher is the symmetric primitive behind encrypted bundles.
//
// Scheme:
//
//	key = DeriveKey(passphrase)           (fixed salt, 32 bytes)
//	iv  = NewIV()                         (16 random bytes, stored next to the ciphertext)
//	Encrypt(dst, src, key, iv)            (AES-256-CBC, PKCS#7 padding)
//	Decrypt(dst, src, key, iv)
type StreamCipher interface {
	// DeriveKey turns a passphrase into a cipher key. The same passphrase
	// always yields the same key.
	DeriveKey(passphrase string) ([]byte, error)

	// NewIV returns a fresh random initialization vector.
	NewIV() ([]byte, error)

	// Encrypt reads plaintext from src until EOF and writes the padded
	// ciphertext to dst.
	Encrypt(dst io.Writer, src io.Reader, key, iv []byte) error

	// Decrypt reads ciphertext from src until EOF and writes plaintext to dst.
	// A wrong key is not detected here: the output is garbage, and an
	// unverifiable padding block is written as-is.
	Decrypt(dst io.Writer, src io.Reader, key, iv []byte) error
}

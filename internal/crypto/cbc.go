// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"bytes"
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"errors"
	"fmt"
	"io"

	"golang.org/x/crypto/scrypt"
)

const (
	// KeySize is the AES-256 key length.
	KeySize = 32
	// IVSize is the CBC initialization vector length.
	IVSize = aes.BlockSize

	// bundleSalt is fixed so that a passphrase alone is enough to decrypt a
	// bundle produced by any instance.
	bundleSalt = "random-salt"

	// chunkSize must stay a multiple of aes.BlockSize.
	chunkSize = 64 * 1024
)

// cbcCipher is the private implementation of [StreamCipher].
type cbcCipher struct {
	salt []byte

	// scrypt cost parameters
	n, r, p int
}

// NewStreamCipher constructs a [StreamCipher] with the scrypt parameters
// N=16384, r=8, p=1 and the fixed bundle salt.
func NewStreamCipher() StreamCipher {
	return &cbcCipher{
		salt: []byte(bundleSalt),
		n:    16384,
		r:    8,
		p:    1,
	}
}

// DeriveKey implements [StreamCipher].
func (c *cbcCipher) DeriveKey(passphrase string) ([]byte, error) {
	key, err := scrypt.Key([]byte(passphrase), c.salt, c.n, c.r, c.p, KeySize)
	if err != nil {
		return nil, fmt.Errorf("derive key: %w", err)
	}
	return key, nil
}

// NewIV implements [StreamCipher]. It reads IVSize bytes from the OS CSPRNG.
func (c *cbcCipher) NewIV() ([]byte, error) {
	iv := make([]byte, IVSize)
	if _, err := io.ReadFull(rand.Reader, iv); err != nil {
		return nil, err
	}
	return iv, nil
}

// Encrypt implements [StreamCipher]. The input is processed in chunks so
// payload size is bounded only by the writer.
func (c *cbcCipher) Encrypt(dst io.Writer, src io.Reader, key, iv []byte) error {
	block, err := newBlock(key, iv)
	if err != nil {
		return err
	}
	mode := cipher.NewCBCEncrypter(block, iv)

	buf := make([]byte, chunkSize)
	for {
		n, err := io.ReadFull(src, buf)
		switch {
		case err == nil:
			mode.CryptBlocks(buf, buf)
			if _, err := dst.Write(buf); err != nil {
				return fmt.Errorf("write ciphertext: %w", err)
			}
		case errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF):
			final := pkcs7Pad(buf[:n])
			mode.CryptBlocks(final, final)
			if _, err := dst.Write(final); err != nil {
				return fmt.Errorf("write ciphertext: %w", err)
			}
			return nil
		default:
			return fmt.Errorf("read plaintext: %w", err)
		}
	}
}

// Decrypt implements [StreamCipher]. The last block is held back until EOF
// so its padding can be stripped.
func (c *cbcCipher) Decrypt(dst io.Writer, src io.Reader, key, iv []byte) error {
	block, err := newBlock(key, iv)
	if err != nil {
		return err
	}
	mode := cipher.NewCBCDecrypter(block, iv)

	buf := make([]byte, chunkSize)
	held := make([]byte, 0, aes.BlockSize)
	for {
		n, readErr := io.ReadFull(src, buf)
		if n > 0 {
			if n%aes.BlockSize != 0 {
				return fmt.Errorf("%w: length is not a multiple of the block size", ErrCodec)
			}
			chunk := buf[:n]
			mode.CryptBlocks(chunk, chunk)

			if _, err := dst.Write(held); err != nil {
				return fmt.Errorf("write plaintext: %w", err)
			}
			if _, err := dst.Write(chunk[:n-aes.BlockSize]); err != nil {
				return fmt.Errorf("write plaintext: %w", err)
			}
			held = append(held[:0], chunk[n-aes.BlockSize:]...)
		}

		if readErr == nil {
			continue
		}
		if errors.Is(readErr, io.EOF) || errors.Is(readErr, io.ErrUnexpectedEOF) {
			break
		}
		return fmt.Errorf("read ciphertext: %w", readErr)
	}

	if len(held) == 0 {
		return fmt.Errorf("%w: empty input", ErrCodec)
	}

	if _, err := dst.Write(pkcs7Unpad(held)); err != nil {
		return fmt.Errorf("write plaintext: %w", err)
	}
	return nil
}

func newBlock(key, iv []byte) (cipher.Block, error) {
	if len(key) != KeySize || len(iv) != IVSize {
		return nil, ErrInvalidKey
	}
	return aes.NewCipher(key)
}

func pkcs7Pad(b []byte) []byte {
	pad := aes.BlockSize - len(b)%aes.BlockSize
	return append(b, bytes.Repeat([]byte{byte(pad)}, pad)...)
}

// pkcs7Unpad strips valid padding from the final block. An invalid block is
// returned unchanged.
func pkcs7Unpad(b []byte) []byte {
	pad := int(b[len(b)-1])
	if pad == 0 || pad > aes.BlockSize || pad > len(b) {
		return b
	}
	for _, v := range b[len(b)-pad:] {
		if int(v) != pad {
			return b
		}
	}
	return b[:len(b)-pad]
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"filippo.io/age"
)

// ageSealer seals records with an age scrypt recipient derived from the
// application master key.
type ageSealer struct {
	masterKey  string
	workFactor int
}

// NewAgeSealer returns a [Sealer] keyed by masterKey. workFactor is the scrypt
// log2 N used for new records; values <= 0 keep the age default.
func NewAgeSealer(masterKey string, workFactor int) (Sealer, error) {
	if masterKey == "" {
		return nil, errors.New("master key is empty")
	}
	return &ageSealer{masterKey: masterKey, workFactor: workFactor}, nil
}

func (s *ageSealer) Seal(plaintext []byte) ([]byte, error) {
	recipient, err := age.NewScryptRecipient(s.masterKey)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSealingKey, err)
	}
	if s.workFactor > 0 {
		recipient.SetWorkFactor(s.workFactor)
	}

	var out bytes.Buffer
	w, err := age.Encrypt(&out, recipient)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSealingKey, err)
	}
	if _, err = w.Write(plaintext); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSealingKey, err)
	}
	if err = w.Close(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSealingKey, err)
	}

	return out.Bytes(), nil
}

func (s *ageSealer) Open(sealed []byte) ([]byte, error) {
	identity, err := age.NewScryptIdentity(s.masterKey)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrOpeningKey, err)
	}

	r, err := age.Decrypt(bytes.NewReader(sealed), identity)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrOpeningKey, err)
	}

	plaintext, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrOpeningKey, err)
	}

	return plaintext, nil
}

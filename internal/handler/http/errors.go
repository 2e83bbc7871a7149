// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

var (
	// ErrNoFileAttached is returned when a multipart upload carries no
	// "file" part.
	ErrNoFileAttached = errors.New("no file attached")

	// ErrInvalidJSON is returned when a request body cannot be decoded.
	ErrInvalidJSON = errors.New("invalid JSON was passed")

	ErrInvalidForm = errors.New("invalid multipart form")
)

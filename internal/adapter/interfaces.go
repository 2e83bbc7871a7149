// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides clients for the two external collaborators of the
// file keeper: the content-addressed store (reached through its RPC API) and
// the remote pinning service.
//
// Both clients are built on resty. Transport failures and non-2xx answers are
// mapped onto the sentinel errors in errors.go so that callers can use
// [errors.Is] regardless of which remote produced them.
package adapter

import (
	"context"
	"io"

	"github.com/MKhiriev/go-file-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// ContentStore is the subset of the content store used by the services.
// Paths are absolute paths of the store's mutable file system ("/docs/a.txt").
type ContentStore interface {
	// MakeDir creates path and any missing parents.
	MakeDir(ctx context.Context, path string) error

	// Write stores the content of r at path.
	Write(ctx context.Context, path string, r io.Reader, opts models.WriteOptions) error

	// Stat describes path. A path may also be "/ipfs/<cid>".
	// Returns [ErrNotFound] if nothing exists there.
	Stat(ctx context.Context, path string) (models.StoreStat, error)

	// List returns the direct children of path.
	List(ctx context.Context, path string) ([]models.StoreEntry, error)

	// Copy copies from to to. from may be "/ipfs/<cid>".
	Copy(ctx context.Context, from, to string) error

	// Move renames from to to.
	Move(ctx context.Context, from, to string) error

	// Remove deletes path; recursive is required for non-empty directories.
	Remove(ctx context.Context, path string, recursive bool) error

	// ReadByCID streams the content addressed by cid. The caller closes the
	// returned reader.
	ReadByCID(ctx context.Context, cid string) (io.ReadCloser, error)

	// Probe streams at most maxBytes of the content addressed by cid. It is
	// used to find out whether the content can be retrieved at all. A
	// deadline on ctx surfaces as [ErrTimeout].
	Probe(ctx context.Context, cid string, maxBytes int64) (io.ReadCloser, error)
}

// PinningService is the remote pinning API.
type PinningService interface {
	// PinByHash asks the service to fetch and pin cid.
	PinByHash(ctx context.Context, cid string) error

	// PinByUpload uploads content under name and returns the cid the
	// service computed for it.
	PinByUpload(ctx context.Context, name string, content io.ReadSeeker) (string, error)

	// Unpin removes the pin for cid.
	Unpin(ctx context.Context, cid string) error

	// ListPins returns pin records matching filter.
	ListPins(ctx context.Context, filter models.PinListFilter) ([]models.RemotePin, error)

	// ListPinJobs returns queued pin-by-hash jobs matching filter.
	ListPinJobs(ctx context.Context, filter models.PinJobFilter) ([]models.RemotePinJob, error)
}

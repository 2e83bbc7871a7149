// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"io"

	"github.com/MKhiriev/go-file-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -exclude_interfaces=FilesServiceWrapper -package=mock

// ImportManager fetches remote content into directories of the content
// store. At most one job exists per (directory, cid) pair. Job failures are
// recorded as job state and never returned to the caller.
type ImportManager interface {
	// AddImport starts fetching cid into directory under name. An existing
	// job for the same pair is renamed and restarted.
	AddImport(ctx context.Context, cid, directory, name string)
	// CancelImport asks a running job to stop. It does not wait.
	CancelImport(ctx context.Context, cid, directory string) error
	// ListByDirectory returns the jobs of directory as listing entries.
	ListByDirectory(ctx context.Context, directory string) []models.Entry
	// CollectGarbage drops finished jobs older than the grace period.
	CollectGarbage(ctx context.Context) int
	// Wait blocks until every started run has returned.
	Wait()
}

// PinStatusService keeps a cached view of the remote pinning state.
type PinStatusService interface {
	// GetPinStatus never blocks on the network. Unknown cids report
	// [models.PinStatusUnpinned] and are refreshed in the background.
	GetPinStatus(ctx context.Context, cid string) models.PinStatus
	Pin(ctx context.Context, cid string) error
	Unpin(ctx context.Context, cid string) error
	// PinByUpload stages content locally and uploads it to the pinning
	// service.
	PinByUpload(ctx context.Context, cid string, content io.Reader) error
	// RefreshAll reloads the state of every known pin and pin job.
	RefreshAll(ctx context.Context) error
	Wait()
}

// Bundler produces and consumes encrypted bundles.
type Bundler interface {
	// Bundle encrypts the file or folder at sourcePath into a bundle written
	// at dst.
	Bundle(ctx context.Context, kind models.BundleKind, sourcePath, passphrase, dst string) error
	// Unbundle decrypts the bundle at bundlePath and places the payload in
	// dstDir. Folders come back as the decrypted zip.
	Unbundle(ctx context.Context, bundlePath, passphrase, dstDir string) (models.UnbundleResult, error)
}

// FilesService is the entry point of the HTTP layer.
type FilesService interface {
	CreateDirectory(ctx context.Context, directory string) error
	Upload(ctx context.Context, directory, name string, content io.Reader) (string, error)
	List(ctx context.Context, directory string) ([]models.Entry, error)
	Copy(ctx context.Context, from, to string) error
	Move(ctx context.Context, from, to string) error
	Remove(ctx context.Context, path string) error
	Read(ctx context.Context, cid string) (io.ReadCloser, error)

	StartImport(ctx context.Context, cid, directory, name string) error
	CancelImport(ctx context.Context, cid, directory string) error

	GetPinStatus(ctx context.Context, cid string) (models.PinStatus, error)
	Pin(ctx context.Context, cid string) error
	Unpin(ctx context.Context, cid string) error
	// PinByUpload reads cid from the content store and uploads it to the
	// pinning service.
	PinByUpload(ctx context.Context, cid string) error

	IsEncrypted(ctx context.Context, cid string) (bool, error)
	// UploadEncrypted bundles content and stores it as
	// "<name>.encrypted" in the request directory. For folders content is a
	// zip of the folder.
	UploadEncrypted(ctx context.Context, request models.BundleUploadRequest, kind models.BundleKind, content io.Reader) (string, error)
	// DownloadDecrypted fetches and decrypts the bundle stored under cid.
	// Closing the result removes every temporary file.
	DownloadDecrypted(ctx context.Context, cid, passphrase string) (*models.Download, error)
}

// FilesServiceWrapper decorates a FilesService with extra behavior.
type FilesServiceWrapper interface {
	Wrap(FilesService) FilesService
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) models.VersionResponse
}

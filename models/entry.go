// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// EntryType distinguishes files from directories in a listing.
type EntryType string

const (
	EntryTypeFile      EntryType = "file"
	EntryTypeDirectory EntryType = "directory"
)

// PinStatus is the remote pinning state of a piece of content as seen by the
// pin-state cache.
type PinStatus string

const (
	// PinStatusUnpinned is also the conservative answer for unknown content.
	PinStatusUnpinned PinStatus = "unpinned"
	// PinStatusQueued means the pinning service accepted the request but has
	// not confirmed the pin yet.
	PinStatusQueued PinStatus = "queued"
	PinStatusPinned PinStatus = "pinned"
)

// IsValid reports whether s is one of the known pin states.
func (s PinStatus) IsValid() bool {
	switch s {
	case PinStatusUnpinned, PinStatusQueued, PinStatusPinned:
		return true
	}
	return false
}

// ContentStatus describes local availability of an entry. Import jobs walk
// searching -> downloading -> available, or end in timeout / failed.
type ContentStatus string

const (
	ContentStatusSearching   ContentStatus = "searching"
	ContentStatusDownloading ContentStatus = "downloading"
	ContentStatusTimeout     ContentStatus = "timeout"
	ContentStatusFailed      ContentStatus = "failed"
	ContentStatusAvailable   ContentStatus = "available"
)

// IsTerminal reports whether no further transition will happen without a
// fresh import request.
func (s ContentStatus) IsTerminal() bool {
	return s == ContentStatusAvailable || s == ContentStatusFailed || s == ContentStatusTimeout
}

// IsActive reports whether an import is still running.
func (s ContentStatus) IsActive() bool {
	return s == ContentStatusSearching || s == ContentStatusDownloading
}

// Entry is a single row of a directory listing. It is produced by merging the
// content store listing with in-flight imports and cached pin state and is
// never persisted on its own.
type Entry struct {
	Name string    `json:"name"`
	CID  string    `json:"cid"`
	Type EntryType `json:"type"`

	// Size is the size in bytes. For imports that are still running it holds
	// the number of bytes fetched so far.
	Size int64 `json:"size"`

	StatusPin     PinStatus     `json:"status_pin"`
	StatusContent ContentStatus `json:"status_content"`

	IsEncrypted bool `json:"is_encrypted"`
}

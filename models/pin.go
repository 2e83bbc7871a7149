// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// RemotePin is a pin record reported by the external pinning service.
// UnpinnedAt is nil while the pin is active.
type RemotePin struct {
	CID        string
	PinnedAt   *time.Time
	UnpinnedAt *time.Time
}

// IsPinned applies the latest-event-wins policy: the content is pinned when no
// unpin event exists, or when the latest pin event is more recent than the
// latest unpin event.
func (p RemotePin) IsPinned() bool {
	if p.UnpinnedAt == nil {
		return p.PinnedAt != nil
	}
	if p.PinnedAt == nil {
		return false
	}
	return p.PinnedAt.After(*p.UnpinnedAt)
}

// RemotePinJob is an entry of the pinning service queue.
type RemotePinJob struct {
	CID    string
	Status string
}

// PinListFilter narrows the pin listing. An empty CID lists everything.
type PinListFilter struct {
	CID string
	// Status is passed to the service as is ("all", "pinned", "unpinned").
	Status string
	Limit  int
}

// PinJobFilter narrows the pin job listing. An empty CID lists everything.
type PinJobFilter struct {
	CID   string
	Limit int
}

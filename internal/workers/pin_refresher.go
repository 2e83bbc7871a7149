// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"errors"
	"time"

	"github.com/MKhiriev/go-file-keeper/internal/logger"
	"github.com/MKhiriev/go-file-keeper/internal/ratelimit"
	"github.com/MKhiriev/go-file-keeper/internal/service"
)

// PinRefresher reloads the whole pin-state cache on every tick, starting
// right away. A failed refresh leaves the cache as it was and is retried on
// the next tick.
type PinRefresher struct {
	pins     service.PinStatusService
	interval time.Duration
	logger   *logger.Logger
}

func NewPinRefresher(pins service.PinStatusService, interval time.Duration, logger *logger.Logger) *PinRefresher {
	return &PinRefresher{
		pins:     pins,
		interval: interval,
		logger:   logger.WithComponent("pin-refresher"),
	}
}

func (r *PinRefresher) Run(ctx context.Context) {
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		r.refresh(ctx)

		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}

func (r *PinRefresher) refresh(ctx context.Context) {
	err := r.pins.RefreshAll(ctx)
	switch {
	case err == nil, ctx.Err() != nil:
	case errors.Is(err, ratelimit.ErrRateLimited):
		r.logger.Warn().Str("func", "*PinRefresher.refresh").Msg("pin refresh rate limited, rescheduled")
	default:
		r.logger.Err(err).Str("func", "*PinRefresher.refresh").Msg("pin refresh failed")
	}
}

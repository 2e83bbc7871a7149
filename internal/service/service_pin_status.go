package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/MKhiriev/go-file-keeper/internal/adapter"
	"github.com/MKhiriev/go-file-keeper/internal/config"
	"github.com/MKhiriev/go-file-keeper/internal/logger"
	"github.com/MKhiriev/go-file-keeper/internal/metrics"
	"github.com/MKhiriev/go-file-keeper/internal/ratelimit"
	"github.com/MKhiriev/go-file-keeper/internal/utils"
	"github.com/MKhiriev/go-file-keeper/internal/workspace"
	"github.com/MKhiriev/go-file-keeper/models"
)

// pinStatusAll asks the pinning service for pinned and unpinned records.
const pinStatusAll = "all"

type pinRecord struct {
	status    models.PinStatus
	expiresAt time.Time
	// mutation counts local pin and unpin calls. Refresh results read before
	// the latest mutation are dropped.
	mutation uint64
}

// pinStatusService caches pin state per cid. Every call to the pinning
// service goes through limiter.
type pinStatusService struct {
	mu         sync.Mutex
	cache      map[string]pinRecord
	// refreshing holds the cids with a running refresh; true asks for one
	// more pass once it finishes
	refreshing map[string]bool

	// background refreshes derive from ctx
	ctx context.Context
	wg  sync.WaitGroup

	pinning    adapter.PinningService
	limiter    *ratelimit.Limiter
	workspaces *workspace.Provider
	clock      utils.Clock

	queuedTTL  time.Duration
	settledTTL time.Duration
	pageLimit  int

	logger *logger.Logger
}

func NewPinStatusService(ctx context.Context, pinning adapter.PinningService, limiter *ratelimit.Limiter, workspaces *workspace.Provider, cfg config.StructuredConfig, logger *logger.Logger) PinStatusService {
	return newPinStatusService(ctx, pinning, limiter, workspaces, cfg, utils.RealClock{}, logger)
}

func newPinStatusService(ctx context.Context, pinning adapter.PinningService, limiter *ratelimit.Limiter, workspaces *workspace.Provider, cfg config.StructuredConfig, clock utils.Clock, logger *logger.Logger) *pinStatusService {
	return &pinStatusService{
		cache:      make(map[string]pinRecord),
		refreshing: make(map[string]bool),
		ctx:        ctx,
		pinning:    pinning,
		limiter:    limiter,
		workspaces: workspaces,
		clock:      clock,
		queuedTTL:  cfg.Workers.PinQueuedTTL,
		settledTTL: cfg.Workers.PinSettledTTL,
		pageLimit:  cfg.Adapter.Pinning.PageLimit,
		logger:     logger.WithComponent("pin_status"),
	}
}

// GetPinStatus answers from the cache. A miss reports unpinned, an expired
// record reports its last known value; both schedule one refresh.
func (s *pinStatusService) GetPinStatus(ctx context.Context, cid string) models.PinStatus {
	s.mu.Lock()
	record, ok := s.cache[cid]
	s.mu.Unlock()

	switch {
	case !ok:
		metrics.RecordPinCacheLookup("miss")
		s.scheduleRefresh(ctx, cid, false)
		return models.PinStatusUnpinned
	case !s.clock.Now().Before(record.expiresAt):
		metrics.RecordPinCacheLookup("stale")
		s.scheduleRefresh(ctx, cid, false)
	default:
		metrics.RecordPinCacheLookup("hit")
	}
	return record.status
}

func (s *pinStatusService) Pin(ctx context.Context, cid string) error {
	previous, optimistic, mutation := s.markQueued(cid)

	if err := s.pinByHash(ctx, cid); err != nil {
		if optimistic {
			s.revert(cid, mutation, models.PinStatusQueued, previous)
		}
		return err
	}

	s.scheduleRefresh(ctx, cid, true)
	return nil
}

func (s *pinStatusService) Unpin(ctx context.Context, cid string) error {
	previous, known, mutation := s.markUnpinned(cid)

	err := s.limiter.Do(ctx, func(ctx context.Context) error {
		return s.pinning.Unpin(ctx, cid)
	})
	if err != nil {
		if known {
			s.revert(cid, mutation, models.PinStatusUnpinned, previous)
		}
		logger.FromContext(ctx).Err(err).Str("func", "*pinStatusService.Unpin").Str("cid", cid).Msg("unpin failed")
		return err
	}

	s.scheduleRefresh(ctx, cid, true)
	return nil
}

// PinByUpload stages content in a workspace because the upload needs a
// seekable body. When the service computes another cid for the payload the
// content is pinned by hash instead.
func (s *pinStatusService) PinByUpload(ctx context.Context, cid string, content io.Reader) (err error) {
	previous, optimistic, mutation := s.markQueued(cid)
	defer func() {
		if err != nil && optimistic {
			s.revert(cid, mutation, models.PinStatusQueued, previous)
		}
	}()

	ws, err := s.workspaces.Acquire("pin-upload")
	if err != nil {
		return err
	}
	defer ws.Close()

	staged, err := os.Create(ws.Path(cid))
	if err != nil {
		return fmt.Errorf("stage upload: %w", err)
	}
	defer staged.Close()

	if _, err = io.Copy(staged, content); err != nil {
		return fmt.Errorf("stage upload: %w", err)
	}

	var remoteCID string
	err = s.limiter.Do(ctx, func(ctx context.Context) error {
		var uploadErr error
		remoteCID, uploadErr = s.pinning.PinByUpload(ctx, cid, staged)
		return uploadErr
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*pinStatusService.PinByUpload").Str("cid", cid).Msg("pin by upload failed")
		return err
	}

	if remoteCID != cid {
		logger.FromContext(ctx).Warn().
			Str("func", "*pinStatusService.PinByUpload").
			Str("cid", cid).
			Str("remote_cid", remoteCID).
			Msg("uploaded content has a different cid, pinning by hash")
		if err = s.pinByHash(ctx, cid); err != nil {
			return err
		}
	}

	s.scheduleRefresh(ctx, cid, true)
	return nil
}

// RefreshAll loads every pin record first and every pending pin job second,
// so a cid that is both listed and queued ends up queued.
func (s *pinStatusService) RefreshAll(ctx context.Context) error {
	mutations := s.mutations()

	var pins []models.RemotePin
	err := s.limiter.Do(ctx, func(ctx context.Context) error {
		var listErr error
		pins, listErr = s.pinning.ListPins(ctx, models.PinListFilter{Status: pinStatusAll, Limit: s.pageLimit})
		return listErr
	})
	if err != nil {
		return fmt.Errorf("refresh pins: %w", err)
	}
	for cid, pin := range latestPins(pins) {
		s.setIfCurrent(cid, mutations[cid], settledStatus(pin), s.settledTTL)
	}

	var jobs []models.RemotePinJob
	err = s.limiter.Do(ctx, func(ctx context.Context) error {
		var listErr error
		jobs, listErr = s.pinning.ListPinJobs(ctx, models.PinJobFilter{Limit: s.pageLimit})
		return listErr
	})
	if err != nil {
		return fmt.Errorf("refresh pin jobs: %w", err)
	}
	for _, job := range jobs {
		s.setIfCurrent(job.CID, mutations[job.CID], models.PinStatusQueued, s.queuedTTL)
	}

	return nil
}

func (s *pinStatusService) Wait() {
	s.wg.Wait()
}

// scheduleRefresh starts a background refresh of cid unless one is already
// running. With settle set a running refresh is followed by another pass,
// so a pin or unpin is always settled by a read that started after it.
func (s *pinStatusService) scheduleRefresh(ctx context.Context, cid string, settle bool) {
	s.mu.Lock()
	if _, running := s.refreshing[cid]; running {
		if settle {
			s.refreshing[cid] = true
		}
		s.mu.Unlock()
		return
	}
	s.refreshing[cid] = false
	s.mu.Unlock()

	log := logger.FromContext(ctx)
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()

		for {
			if err := s.refresh(s.ctx, cid); err != nil {
				// the cache keeps its value, the next lookup or tick retries
				log.Warn().Err(err).Str("func", "*pinStatusService.scheduleRefresh").Str("cid", cid).Msg("pin state refresh failed")
			}

			s.mu.Lock()
			if !s.refreshing[cid] || s.ctx.Err() != nil {
				delete(s.refreshing, cid)
				s.mu.Unlock()
				return
			}
			s.refreshing[cid] = false
			s.mu.Unlock()
		}
	}()
}

func (s *pinStatusService) refresh(ctx context.Context, cid string) error {
	mutation := s.mutation(cid)

	var jobs []models.RemotePinJob
	err := s.limiter.Do(ctx, func(ctx context.Context) error {
		var listErr error
		jobs, listErr = s.pinning.ListPinJobs(ctx, models.PinJobFilter{CID: cid, Limit: s.pageLimit})
		return listErr
	})
	if err != nil {
		return err
	}
	for _, job := range jobs {
		if job.CID == cid {
			s.setIfCurrent(cid, mutation, models.PinStatusQueued, s.queuedTTL)
			return nil
		}
	}

	var pins []models.RemotePin
	err = s.limiter.Do(ctx, func(ctx context.Context) error {
		var listErr error
		pins, listErr = s.pinning.ListPins(ctx, models.PinListFilter{CID: cid, Status: pinStatusAll, Limit: s.pageLimit})
		return listErr
	})
	if err != nil {
		return err
	}

	pin, ok := latestPins(pins)[cid]
	if !ok {
		s.setIfCurrent(cid, mutation, models.PinStatusUnpinned, s.settledTTL)
		return nil
	}
	s.setIfCurrent(cid, mutation, settledStatus(pin), s.settledTTL)
	return nil
}

func (s *pinStatusService) pinByHash(ctx context.Context, cid string) error {
	err := s.limiter.Do(ctx, func(ctx context.Context) error {
		return s.pinning.PinByHash(ctx, cid)
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*pinStatusService.pinByHash").Str("cid", cid).Msg("pin by hash failed")
		if errors.Is(err, ratelimit.ErrRateLimited) {
			return err
		}
		return fmt.Errorf("pin %s: %w", cid, err)
	}
	return nil
}

// markQueued records a pin of cid and switches an unpinned (or unknown) cid
// to queued. It returns the previous status, whether the cache was changed
// and the new mutation number.
func (s *pinStatusService) markQueued(cid string) (models.PinStatus, bool, uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	record, ok := s.cache[cid]
	record.mutation++
	if ok && record.status != models.PinStatusUnpinned {
		s.cache[cid] = record
		return record.status, false, record.mutation
	}
	record.status = models.PinStatusQueued
	record.expiresAt = s.clock.Now().Add(s.queuedTTL)
	s.cache[cid] = record
	return models.PinStatusUnpinned, true, record.mutation
}

// markUnpinned records an unpin of cid and switches it to unpinned.
func (s *pinStatusService) markUnpinned(cid string) (models.PinStatus, bool, uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	record, known := s.cache[cid]
	previous := record.status
	record.mutation++
	record.status = models.PinStatusUnpinned
	record.expiresAt = s.clock.Now().Add(s.settledTTL)
	s.cache[cid] = record
	return previous, known, record.mutation
}

// revert restores previous unless cid was mutated again or already moved
// away from optimistic.
func (s *pinStatusService) revert(cid string, mutation uint64, optimistic, previous models.PinStatus) {
	s.mu.Lock()
	defer s.mu.Unlock()

	record, ok := s.cache[cid]
	if !ok || record.mutation != mutation || record.status != optimistic {
		return
	}
	record.status = previous
	s.cache[cid] = record
}

func (s *pinStatusService) mutation(cid string) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cache[cid].mutation
}

func (s *pinStatusService) mutations() map[string]uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make(map[string]uint64, len(s.cache))
	for cid, record := range s.cache {
		out[cid] = record.mutation
	}
	return out
}

// setIfCurrent stores a refresh result read while cid was at mutation.
func (s *pinStatusService) setIfCurrent(cid string, mutation uint64, status models.PinStatus, ttl time.Duration) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	record := s.cache[cid]
	if record.mutation != mutation {
		return false
	}
	record.status = status
	record.expiresAt = s.clock.Now().Add(ttl)
	s.cache[cid] = record
	return true
}

// latestPins folds the pin history of each cid into a single record holding
// its latest pin and latest unpin events.
func latestPins(pins []models.RemotePin) map[string]models.RemotePin {
	latest := make(map[string]models.RemotePin, len(pins))
	for _, pin := range pins {
		current := latest[pin.CID]
		current.CID = pin.CID
		if pin.PinnedAt != nil && (current.PinnedAt == nil || pin.PinnedAt.After(*current.PinnedAt)) {
			current.PinnedAt = pin.PinnedAt
		}
		if pin.UnpinnedAt != nil && (current.UnpinnedAt == nil || pin.UnpinnedAt.After(*current.UnpinnedAt)) {
			current.UnpinnedAt = pin.UnpinnedAt
		}
		latest[pin.CID] = current
	}
	return latest
}

func settledStatus(pin models.RemotePin) models.PinStatus {
	if pin.IsPinned() {
		return models.PinStatusPinned
	}
	return models.PinStatusUnpinned
}

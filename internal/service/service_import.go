package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/go-file-keeper/internal/adapter"
	"github.com/MKhiriev/go-file-keeper/internal/config"
	"github.com/MKhiriev/go-file-keeper/internal/logger"
	"github.com/MKhiriev/go-file-keeper/internal/metrics"
	"github.com/MKhiriev/go-file-keeper/internal/utils"
	"github.com/MKhiriev/go-file-keeper/models"
)

// probeBytes is how much of the content the search phase reads.
const probeBytes = 100

type importKey struct {
	directory string
	cid       string
}

// importJob is owned by importManager; every field is guarded by its mutex.
type importJob struct {
	key       importKey
	name      string
	status    models.ContentStatus
	size      int64
	startedAt time.Time
	cause     error

	cancel     context.CancelFunc
	generation uint64
}

type importManager struct {
	mu   sync.Mutex
	jobs map[importKey]*importJob

	// runs derive from ctx, so cancelling it aborts every import
	ctx context.Context
	wg  sync.WaitGroup

	store        adapter.ContentStore
	clock        utils.Clock
	probeTimeout time.Duration
	gracePeriod  time.Duration

	logger *logger.Logger
}

// NewImportManager returns an [ImportManager] whose runs live until ctx is
// cancelled.
func NewImportManager(ctx context.Context, store adapter.ContentStore, cfg config.Workers, logger *logger.Logger) ImportManager {
	return newImportManager(ctx, store, cfg, utils.RealClock{}, logger)
}

func newImportManager(ctx context.Context, store adapter.ContentStore, cfg config.Workers, clock utils.Clock, logger *logger.Logger) *importManager {
	return &importManager{
		jobs:         make(map[importKey]*importJob),
		ctx:          ctx,
		store:        store,
		clock:        clock,
		probeTimeout: cfg.ImportProbeTimeout,
		gracePeriod:  cfg.ImportGracePeriod,
		logger:       logger.WithComponent("import_manager"),
	}
}

func (m *importManager) AddImport(ctx context.Context, cid, directory, name string) {
	key := importKey{directory: directory, cid: cid}

	m.mu.Lock()
	job, ok := m.jobs[key]
	if !ok {
		job = &importJob{key: key}
		m.jobs[key] = job
	} else if job.cancel != nil {
		// supersede the previous run
		job.cancel()
	}

	runCtx, cancel := context.WithCancel(m.ctx)
	job.name = name
	job.status = models.ContentStatusSearching
	job.size = 0
	job.cause = nil
	job.startedAt = m.clock.Now()
	job.cancel = cancel
	job.generation++
	generation := job.generation
	tracked := len(m.jobs)
	m.mu.Unlock()

	metrics.RecordImportStarted()
	metrics.SetImportsTracked(tracked)
	logger.FromContext(ctx).Info().
		Str("func", "*importManager.AddImport").
		Str("cid", cid).
		Str("directory", directory).
		Bool("restart", ok).
		Msg("import started")

	m.wg.Add(1)
	go func() {
		defer m.wg.Done()
		defer cancel()
		m.run(runCtx, job, generation, key, name)
	}()
}

// run drives one job through searching, downloading and a terminal state.
// Writes are dropped once a newer run took over the job.
func (m *importManager) run(ctx context.Context, job *importJob, generation uint64, key importKey, name string) {
	log := m.logger.With().Str("cid", key.cid).Str("directory", key.directory).Logger()

	if err := m.probe(ctx, key.cid); err != nil {
		m.finish(job, generation, m.failureStatus(ctx, err), 0, err)
		log.Warn().Err(err).Msg("import probe failed")
		return
	}

	if !m.transition(job, generation, models.ContentStatusDownloading) {
		return
	}

	size, err := m.download(ctx, job, generation, key, name)
	if err != nil {
		m.finish(job, generation, models.ContentStatusFailed, 0, err)
		log.Err(err).Msg("import download failed")
		return
	}

	m.finish(job, generation, models.ContentStatusAvailable, size, nil)
	log.Info().Int64("size", size).Msg("import finished")
}

func (m *importManager) probe(ctx context.Context, cid string) error {
	probeCtx, cancel := context.WithTimeout(ctx, m.probeTimeout)
	defer cancel()

	rc, err := m.store.Probe(probeCtx, cid, probeBytes)
	if err != nil {
		return err
	}
	defer rc.Close()

	_, err = io.Copy(io.Discard, rc)
	return err
}

// download pulls the content through the store, reporting progress, then
// links it into the directory and returns its final size.
func (m *importManager) download(ctx context.Context, job *importJob, generation uint64, key importKey, name string) (int64, error) {
	rc, err := m.store.ReadByCID(ctx, key.cid)
	if err != nil {
		return 0, err
	}
	progress := &progressWriter{report: func(n int64) { m.setSize(job, generation, n) }}
	_, err = io.Copy(progress, rc)
	rc.Close()
	if err != nil {
		return 0, err
	}
	if err = ctx.Err(); err != nil {
		return 0, err
	}

	if err = m.store.MakeDir(ctx, key.directory); err != nil {
		return 0, err
	}
	dest := path.Join(key.directory, name)
	if err = m.store.Copy(ctx, "/ipfs/"+key.cid, dest); err != nil {
		return 0, err
	}

	stat, err := m.store.Stat(ctx, dest)
	if err != nil {
		return 0, err
	}
	return stat.Size, nil
}

// failureStatus separates a probe running out of time from every other
// failure. An abort requested by the user is a failure even if it surfaced
// as a deadline.
func (m *importManager) failureStatus(ctx context.Context, err error) models.ContentStatus {
	if ctx.Err() != nil {
		return models.ContentStatusFailed
	}
	if errors.Is(err, adapter.ErrTimeout) || errors.Is(err, context.DeadlineExceeded) {
		return models.ContentStatusTimeout
	}
	return models.ContentStatusFailed
}

func (m *importManager) transition(job *importJob, generation uint64, status models.ContentStatus) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	if job.generation != generation {
		return false
	}
	job.status = status
	return true
}

func (m *importManager) setSize(job *importJob, generation uint64, size int64) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if job.generation == generation {
		job.size = size
	}
}

func (m *importManager) finish(job *importJob, generation uint64, status models.ContentStatus, size int64, cause error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if job.generation != generation {
		return
	}
	job.status = status
	if size > 0 {
		job.size = size
	}
	switch status {
	case models.ContentStatusTimeout:
		job.cause = fmt.Errorf("%w: %w", ErrImportTimeout, cause)
	case models.ContentStatusFailed:
		if errors.Is(cause, context.Canceled) {
			cause = fmt.Errorf("%w: %w", ErrImportCancelled, cause)
		}
		job.cause = cause
	}
	metrics.RecordImportFinished(string(status))
}

func (m *importManager) CancelImport(ctx context.Context, cid, directory string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	job, ok := m.jobs[importKey{directory: directory, cid: cid}]
	if !ok {
		return ErrImportNotFound
	}
	if job.status.IsTerminal() {
		return nil
	}

	job.cancel()
	logger.FromContext(ctx).Info().
		Str("func", "*importManager.CancelImport").
		Str("cid", cid).
		Str("directory", directory).
		Msg("import cancel requested")
	return nil
}

func (m *importManager) ListByDirectory(_ context.Context, directory string) []models.Entry {
	m.mu.Lock()
	jobs := make([]importJob, 0, len(m.jobs))
	for key, job := range m.jobs {
		if key.directory == directory {
			jobs = append(jobs, *job)
		}
	}
	m.mu.Unlock()

	sort.Slice(jobs, func(i, j int) bool {
		if jobs[i].startedAt.Equal(jobs[j].startedAt) {
			return jobs[i].key.cid < jobs[j].key.cid
		}
		return jobs[i].startedAt.Before(jobs[j].startedAt)
	})

	entries := make([]models.Entry, 0, len(jobs))
	for _, job := range jobs {
		entries = append(entries, models.Entry{
			Name:          job.name,
			CID:           job.key.cid,
			Type:          models.EntryTypeFile,
			Size:          job.size,
			StatusPin:     models.PinStatusUnpinned,
			StatusContent: job.status,
			IsEncrypted:   strings.HasSuffix(job.name, models.EncryptedSuffix),
		})
	}
	return entries
}

func (m *importManager) CollectGarbage(ctx context.Context) int {
	now := m.clock.Now()

	m.mu.Lock()
	removed := 0
	for key, job := range m.jobs {
		if job.status.IsTerminal() && now.Sub(job.startedAt) > m.gracePeriod {
			delete(m.jobs, key)
			removed++
		}
	}
	tracked := len(m.jobs)
	m.mu.Unlock()

	metrics.SetImportsTracked(tracked)
	if removed > 0 {
		logger.FromContext(ctx).Debug().
			Str("func", "*importManager.CollectGarbage").
			Int("removed", removed).
			Int("tracked", tracked).
			Msg("finished imports collected")
	}
	return removed
}

func (m *importManager) Wait() {
	m.wg.Wait()
}

// progressWriter counts bytes written through it.
type progressWriter struct {
	written int64
	report  func(int64)
}

func (w *progressWriter) Write(p []byte) (int, error) {
	w.written += int64(len(p))
	w.report(w.written)
	return len(p), nil
}

package status

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Tracker holds the last run of every source in memory. When a persistence is
// configured every change is also saved; save failures are logged only.
type Tracker struct {
	mu          sync.RWMutex
	statuses    map[string]*SyncStatus
	saving      map[string]*sync.Mutex
	persistence StatusPersistence
	now         func() time.Time
}

// TrackerOption configures a Tracker
type TrackerOption func(*Tracker)

// WithPersistence saves every status change through p
func WithPersistence(p StatusPersistence) TrackerOption {
	return func(t *Tracker) {
		t.persistence = p
	}
}

// WithClock replaces time.Now
func WithClock(now func() time.Time) TrackerOption {
	return func(t *Tracker) {
		t.now = now
	}
}

// NewTracker creates an empty tracker
func NewTracker(opts ...TrackerOption) *Tracker {
	t := &Tracker{
		statuses: make(map[string]*SyncStatus),
		saving:   make(map[string]*sync.Mutex),
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Load restores the statuses saved by a previous process. A run that was in
// progress when that process stopped is reported as failed.
func (t *Tracker) Load(ctx context.Context) error {
	if t.persistence == nil {
		return nil
	}

	saved, err := t.persistence.LoadAllStatus(ctx)
	if err != nil {
		return err
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	for source, s := range saved {
		if s.Phase == SyncPhaseSyncing {
			s.Phase = SyncPhaseFailed
			s.Message = "Interrupted by restart"
		}
		t.statuses[source] = s
	}
	slog.InfoContext(ctx, "Loaded sync status", "sources", len(saved))
	return nil
}

// Start marks a new run of source as in progress and returns its id
func (t *Tracker) Start(ctx context.Context, source string) string {
	runID := uuid.NewString()
	now := t.now()

	t.update(ctx, source, func(s *SyncStatus) bool {
		s.Phase = SyncPhaseSyncing
		s.RunID = runID
		s.Message = ""
		s.LastAttempt = &now
		s.AttemptCount++
		return true
	})
	return runID
}

// Complete records the successful end of run runID. It is ignored when a newer
// run of the same source has started since.
func (t *Tracker) Complete(ctx context.Context, source, runID, message string, records map[string]int) {
	now := t.now()
	t.update(ctx, source, func(s *SyncStatus) bool {
		if s.RunID != runID {
			return false
		}
		s.Phase = SyncPhaseComplete
		s.Message = message
		s.LastSyncTime = &now
		s.AttemptCount = 0
		s.Records = records
		return true
	})
}

// Fail records the failed end of run runID, with the same rule as Complete
func (t *Tracker) Fail(ctx context.Context, source, runID, message string) {
	t.update(ctx, source, func(s *SyncStatus) bool {
		if s.RunID != runID {
			return false
		}
		s.Phase = SyncPhaseFailed
		s.Message = message
		return true
	})
}

// Get returns a copy of the status of source
func (t *Tracker) Get(source string) (SyncStatus, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	s, ok := t.statuses[source]
	if !ok {
		return SyncStatus{}, false
	}
	return s.clone(), true
}

// All returns a copy of every known status keyed by source
func (t *Tracker) All() map[string]SyncStatus {
	t.mu.RLock()
	defer t.mu.RUnlock()

	out := make(map[string]SyncStatus, len(t.statuses))
	for source, s := range t.statuses {
		out[source] = s.clone()
	}
	return out
}

// saveLock serializes update-and-save per source so saves land in update order
func (t *Tracker) saveLock(source string) *sync.Mutex {
	t.mu.Lock()
	defer t.mu.Unlock()

	l, ok := t.saving[source]
	if !ok {
		l = &sync.Mutex{}
		t.saving[source] = l
	}
	return l
}

func (t *Tracker) update(ctx context.Context, source string, fn func(*SyncStatus) bool) {
	l := t.saveLock(source)
	l.Lock()
	defer l.Unlock()

	t.mu.Lock()
	s, ok := t.statuses[source]
	if !ok {
		s = &SyncStatus{}
		t.statuses[source] = s
	}
	if !fn(s) {
		t.mu.Unlock()
		slog.DebugContext(ctx, "Ignoring status of superseded run", "source", source)
		return
	}
	snapshot := s.clone()
	t.mu.Unlock()

	if t.persistence == nil {
		return
	}
	if err := t.persistence.SaveStatus(ctx, source, &snapshot); err != nil {
		slog.WarnContext(ctx, "Failed to save sync status", "source", source, "error", err)
	}
}

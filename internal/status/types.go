package status

import "time"

// SyncPhase represents the current phase of a synchronization run
type SyncPhase string

const (
	// SyncPhaseSyncing means a run is in progress
	SyncPhaseSyncing SyncPhase = "Syncing"

	// SyncPhaseComplete means the last run completed successfully
	SyncPhaseComplete SyncPhase = "Complete"

	// SyncPhaseFailed means the last run failed
	SyncPhaseFailed SyncPhase = "Failed"
)

// SyncStatus is the state of the most recent synchronization run of one source
type SyncStatus struct {
	// Phase represents the current synchronization phase
	Phase SyncPhase `json:"phase"`

	// RunID identifies the run that last touched this status
	RunID string `json:"runId,omitempty"`

	// Message provides additional information about the sync status
	Message string `json:"message,omitempty"`

	// LastAttempt is the timestamp of the last sync attempt
	LastAttempt *time.Time `json:"lastAttempt,omitempty"`

	// AttemptCount is the number of sync attempts since last success
	AttemptCount int `json:"attemptCount"`

	// LastSyncTime is the timestamp of the last successful sync
	LastSyncTime *time.Time `json:"lastSyncTime,omitempty"`

	// Records holds the number of foreign records read per mirror table by the
	// last successful run
	Records map[string]int `json:"records,omitempty"`
}

func (s *SyncStatus) clone() SyncStatus {
	out := *s
	if s.Records != nil {
		out.Records = make(map[string]int, len(s.Records))
		for k, v := range s.Records {
			out.Records[k] = v
		}
	}
	return out
}

package reconcile

import "time"

// SyncReason explains why a track needs to be synchronized.
type SyncReason string

const (
	// ReasonNew means the track does not exist remotely.
	ReasonNew SyncReason = "new"
	// ReasonSizeMismatch means the remote size differs from the local size.
	ReasonSizeMismatch SyncReason = "size_mismatch"
	// ReasonMissing means a previous sync attempt failed and was not cleared.
	ReasonMissing SyncReason = "missing"
	// ReasonModified means the local copy is newer than the remote one beyond the tolerance.
	ReasonModified SyncReason = "modified"
)

// DefaultReasonOrder is the precedence used when several reasons apply.
var DefaultReasonOrder = []SyncReason{ReasonNew, ReasonSizeMismatch, ReasonMissing, ReasonModified}

// SyncStatus is the reconciliation state of a single local track.
type SyncStatus struct {
	// Name is the file name of the track in the local library.
	Name string `json:"name"`

	// LocalPath is the absolute or configured path of the local file.
	LocalPath string `json:"localPath"`

	// LocalSizeBytes is the size of the local file.
	LocalSizeBytes int64 `json:"localSizeBytes"`

	// LocalModifiedAt is the modification time of the local file.
	LocalModifiedAt time.Time `json:"localModifiedAt"`

	// RemoteExists indicates whether the object store holds the track.
	RemoteExists bool `json:"remoteExists"`

	// RemoteSizeBytes is set only when RemoteExists is true.
	RemoteSizeBytes *int64 `json:"remoteSizeBytes,omitempty"`

	// RemoteModifiedAt is set only when RemoteExists is true.
	RemoteModifiedAt *time.Time `json:"remoteModifiedAt,omitempty"`

	// NeedsSync is true when any staleness condition applies.
	NeedsSync bool `json:"needsSync"`

	// SyncReason is the highest-precedence condition that applies.
	SyncReason SyncReason `json:"syncReason,omitempty"`

	// LastSyncAttempt is the time of the last upload attempt, if any.
	LastSyncAttempt *time.Time `json:"lastSyncAttempt,omitempty"`

	// SyncError is the message of the last failed attempt, until cleared or resynced.
	SyncError string `json:"syncError,omitempty"`
}

// SyncResult is the outcome of one batch. Synced, Failed and Skipped are pairwise
// disjoint and together cover exactly the names considered by the call.
type SyncResult struct {
	Success     bool     `json:"success"`
	Synced      []string `json:"synced"`
	Failed      []string `json:"failed"`
	Skipped     []string `json:"skipped"`
	TotalTimeMs int64    `json:"totalTimeMs"`
	Errors      []string `json:"errors"`
}

// SyncProgress is a snapshot emitted before and after every attempt of a batch.
type SyncProgress struct {
	Total           int    `json:"total"`
	SyncedSoFar     int    `json:"syncedSoFar"`
	FailedSoFar     int    `json:"failedSoFar"`
	PendingCount    int    `json:"pendingCount"`
	CurrentName     string `json:"currentName,omitempty"`
	PercentComplete int    `json:"percentComplete"`
}

// ProgressFunc receives progress snapshots. It is invoked synchronously and must not block
// for long; calls are serialized.
type ProgressFunc func(SyncProgress)

// SyncStats aggregates a status listing.
type SyncStats struct {
	// Total is the number of local tracks.
	Total int `json:"total"`

	// Synced counts tracks that need no sync.
	Synced int `json:"synced"`

	// NeedsSync counts tracks that need a sync, failed ones included.
	NeedsSync int `json:"needsSync"`

	// Failed counts tracks with a recorded sync error.
	Failed int `json:"failed"`

	// LastSyncTimestamp is the most recent attempt across all local tracks.
	LastSyncTimestamp *time.Time `json:"lastSyncTimestamp,omitempty"`
}

// Attempt is the retry state kept for a track.
type Attempt struct {
	LastAttempt time.Time
	LastError   string
}

package reconcile

import "time"

// Config holds configuration for the sync engine.
type Config struct {
	// ToleranceMs absorbs clock and transfer skew when comparing modification times.
	ToleranceMs int `mapstructure:"tolerance_ms" default:"1000"`
	// Workers bounds concurrent uploads within a batch. 1 processes tracks sequentially.
	Workers int `mapstructure:"workers" default:"1"`
	// ReasonOrder is the precedence of sync reasons, highest first.
	ReasonOrder []string `mapstructure:"reason_order" default:"new,size_mismatch,missing,modified"`
	// StatusCacheTTLSeconds caches status listings; 0 disables the cache.
	StatusCacheTTLSeconds int `mapstructure:"status_cache_ttl_seconds" default:"0"`
	// PersistState keeps retry state in the database instead of memory.
	PersistState bool `mapstructure:"persist_state" default:"false"`
	// Schedule is a cron expression for background syncs; empty disables them.
	Schedule string `mapstructure:"schedule" default:""`
}

// Tolerance returns the freshness tolerance window.
func (c Config) Tolerance() time.Duration {
	if c.ToleranceMs < 0 {
		return 0
	}
	return time.Duration(c.ToleranceMs) * time.Millisecond
}

// Reasons returns the effective precedence. Unknown entries are ignored and reasons
// missing from the configured list keep their default relative order at the end.
func (c Config) Reasons() []SyncReason {
	known := make(map[SyncReason]bool, len(DefaultReasonOrder))
	for _, r := range DefaultReasonOrder {
		known[r] = true
	}

	order := make([]SyncReason, 0, len(DefaultReasonOrder))
	seen := make(map[SyncReason]bool, len(DefaultReasonOrder))
	for _, raw := range c.ReasonOrder {
		r := SyncReason(raw)
		if known[r] && !seen[r] {
			order = append(order, r)
			seen[r] = true
		}
	}
	for _, r := range DefaultReasonOrder {
		if !seen[r] {
			order = append(order, r)
		}
	}
	return order
}

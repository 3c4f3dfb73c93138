package config

import "time"

// RetentionConfig controls cleanup of the durable audit_events feed.
// Audit rows themselves are kept indefinitely; only the event feed ages out.
type RetentionConfig struct {
	// EventTTL is the maximum age of audit_events rows. Events exist for
	// reconnect catchup, so anything older than a realistic reconnect
	// window is dead weight.
	EventTTL time.Duration `yaml:"event_ttl"`

	// CleanupInterval is how often the retention sweep runs.
	CleanupInterval time.Duration `yaml:"cleanup_interval"`
}

// DefaultRetentionConfig returns the built-in retention defaults.
func DefaultRetentionConfig() *RetentionConfig {
	return &RetentionConfig{
		EventTTL:        24 * time.Hour,
		CleanupInterval: 1 * time.Hour,
	}
}

package prefilter

import "errors"

// ErrInvalidConfig is matched by every *ConfigError through errors.Is.
var ErrInvalidConfig = errors.New("invalid configuration")

// TrackerConfig controls when a Tracker gives up on its scanner.
//
// A scanner pays for itself only while each call skips a reasonable amount
// of haystack. The defaults follow the Rust memchr crate: after 50 skips,
// the average skip must stay at or above 8 bytes.
type TrackerConfig struct {
	// MinSkips is the number of candidates to observe before judging.
	// Default: 50
	MinSkips uint32

	// MinSkipBytes is the smallest acceptable average skip, in bytes.
	// Default: 8
	MinSkipBytes uint32
}

// DefaultTrackerConfig returns the default tracker configuration.
func DefaultTrackerConfig() TrackerConfig {
	return TrackerConfig{
		MinSkips:     50,
		MinSkipBytes: 8,
	}
}

// Validate checks that every field is within range.
//
// Valid ranges:
//   - MinSkips: 1 to 1,000,000
//   - MinSkipBytes: 0 to 65,536
func (c TrackerConfig) Validate() error {
	if c.MinSkips < 1 || c.MinSkips > 1_000_000 {
		return &ConfigError{
			Field:   "MinSkips",
			Message: "must be between 1 and 1,000,000",
		}
	}
	if c.MinSkipBytes > 65_536 {
		return &ConfigError{
			Field:   "MinSkipBytes",
			Message: "must be at most 65,536",
		}
	}
	return nil
}

// ConfigError represents an invalid configuration parameter.
type ConfigError struct {
	Field   string
	Message string
}

// Error implements the error interface.
func (e *ConfigError) Error() string {
	return "twoway: invalid config: " + e.Field + ": " + e.Message
}

// Is reports whether target is ErrInvalidConfig.
func (e *ConfigError) Is(target error) bool {
	return target == ErrInvalidConfig
}

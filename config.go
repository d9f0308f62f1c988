package twoway

import "github.com/coregx/twoway/prefilter"

// ErrInvalidConfig is matched by every *ConfigError through errors.Is.
var ErrInvalidConfig = prefilter.ErrInvalidConfig

// ConfigError represents an invalid configuration parameter.
type ConfigError = prefilter.ConfigError

// Config controls how a Searcher runs its forward searches.
//
// Example:
//
//	config := twoway.DefaultConfig()
//	config.EnablePrefilter = false // plain Two-Way, no candidate skipping
//	s, err := twoway.NewSearcherWithConfig(needle, config)
type Config struct {
	// EnablePrefilter enables the rare-byte prefilter for forward searches.
	// Reverse searches never use a prefilter.
	// Default: true
	EnablePrefilter bool

	// Tracker decides when the prefilter is retired during a search.
	// Only validated when EnablePrefilter is true.
	Tracker prefilter.TrackerConfig
}

// DefaultConfig returns a configuration with the prefilter enabled and the
// default tracker thresholds.
func DefaultConfig() Config {
	return Config{
		EnablePrefilter: true,
		Tracker:         prefilter.DefaultTrackerConfig(),
	}
}

// Validate checks if the configuration is valid.
func (c Config) Validate() error {
	if c.EnablePrefilter {
		if err := c.Tracker.Validate(); err != nil {
			return err
		}
	}
	return nil
}

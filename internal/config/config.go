// Package config defines service configuration and loading.
//
// Conventions:
// - Defaults are compiled in; file and env layering happens in Load.
// - External errors are wrapped with this package's sentinel kinds.
package config

import (
	"runtime"
)

// Store backend names accepted in Config.Store.
const (
	StoreMemory = "memory"
	StoreSQLite = "sqlite"
)

// Config contains process configuration.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// Addr configures the HTTP listen address, e.g. ":8080".
	Addr string `koanf:"addr"`

	// Store selects the persistence backend: memory or sqlite.
	Store string `koanf:"store"`

	// DBPath locates the SQLite database file when Store is sqlite.
	DBPath string `koanf:"db_path"`

	// QueueSize bounds the in-memory interaction queue.
	QueueSize int `koanf:"queue_size"`

	// WorkerCount sets the number of interaction recorder workers.
	WorkerCount int `koanf:"worker_count"`

	// MaxTopN caps the top_n query parameter on recommendations.
	MaxTopN int `koanf:"max_top_n"`

	// Signal weights for the match scorer. They must sum to 1;
	// invalid sets fall back to the defaults.
	SkillWeight      float64 `koanf:"skill_weight"`
	LocationWeight   float64 `koanf:"location_weight"`
	IndustryWeight   float64 `koanf:"industry_weight"`
	GPAWeight        float64 `koanf:"gpa_weight"`
	ExperienceWeight float64 `koanf:"experience_weight"`
}

// New returns the compiled-in defaults.
func New() *Config {
	return &Config{
		LogLevel:         "info",
		Addr:             ":8090",
		Store:            StoreMemory,
		DBPath:           "berth.db",
		QueueSize:        10_000,
		WorkerCount:      runtime.NumCPU(),
		MaxTopN:          100,
		SkillWeight:      0.40,
		LocationWeight:   0.20,
		IndustryWeight:   0.20,
		GPAWeight:        0.10,
		ExperienceWeight: 0.10,
	}
}

package main

import (
	"context"
	"flag"
	"os"
	"runtime"
	"time"

	"github.com/okian/berth/internal/seeder"
	"github.com/okian/berth/pkg/logger"
)

// Default configuration constants.
const (
	defaultStudents     = 50
	defaultInternships  = 30
	defaultInteractions = 500
	defaultTopN         = 5
	defaultWorkers      = 2 // multiplier for runtime.NumCPU()
	defaultTimeout      = 30 * time.Second
	defaultSeedTimeout  = 5 * time.Minute
)

func main() {
	var (
		baseURL      = flag.String("url", "http://localhost:8090", "Base URL of the service")
		students     = flag.Int("students", defaultStudents, "Number of random students to generate")
		internships  = flag.Int("internships", defaultInternships, "Number of random internships to generate")
		interactions = flag.Int("interactions", defaultInteractions, "Number of random interactions to submit")
		topN         = flag.Int("top", defaultTopN, "Number of recommendations to fetch per sample student")
		workers      = flag.Int("workers", runtime.NumCPU()*defaultWorkers, "Number of concurrent submission workers")
		timeout      = flag.Duration("timeout", defaultTimeout, "HTTP request timeout")
		samplesOnly  = flag.Bool("samples-only", false, "Seed only the fixed sample data")
		verbose      = flag.Bool("verbose", false, "Enable verbose logging")
	)
	flag.Parse()

	if err := logger.Init(); err != nil {
		os.Stderr.WriteString("failed to initialize logging: " + err.Error() + "\n")
		return
	}
	defer func() { _ = logger.Sync() }()

	ctx, cancel := context.WithTimeout(context.Background(), defaultSeedTimeout)
	defer cancel()

	cfg := &seeder.Config{
		BaseURL:      *baseURL,
		Students:     *students,
		Internships:  *internships,
		Interactions: *interactions,
		TopN:         *topN,
		Workers:      *workers,
		Timeout:      *timeout,
		SamplesOnly:  *samplesOnly,
		Verbose:      *verbose,
	}

	if err := seeder.Run(ctx, cfg); err != nil {
		os.Stderr.WriteString("seeding failed: " + err.Error() + "\n")
		os.Exit(1)
	}
}

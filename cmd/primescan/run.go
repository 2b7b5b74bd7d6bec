package main

import (
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"primescan/pkg/primescan"
	"primescan/pkg/primescan/checkpoint"
	"primescan/pkg/primescan/config"
)

var (
	runBudget     time.Duration
	runWorkers    int
	runParallel   bool
	runBatch      int
	runCheckpoint string
	runConfigFile string
	runRetries    int
	runMetrics    bool
	runTracing    bool
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run a time-bounded, checkpointed search",
	Long: `Searches for primes until the time budget is spent, checkpointing
after every batch. Interrupt the run with Ctrl-C and start it again
with the same checkpoint path to resume where it left off. A run that
exhausts its budget naturally clears the checkpoint.`,
	RunE: runCommand,
}

func init() {
	runCmd.Flags().DurationVar(&runBudget, "budget", 5*time.Minute, "Time budget for the run")
	runCmd.Flags().IntVar(&runWorkers, "workers", 0, "Parallel workers (0 = host parallelism)")
	runCmd.Flags().BoolVar(&runParallel, "parallel", false, "Scan batches with parallel workers")
	runCmd.Flags().IntVar(&runBatch, "batch", 0, "Batch size (0 = default)")
	runCmd.Flags().StringVar(&runCheckpoint, "checkpoint", "", "Checkpoint path (.db/.sqlite = SQLite, otherwise JSON file)")
	runCmd.Flags().StringVar(&runConfigFile, "config", "", "Config file (.yaml/.yml/.json)")
	runCmd.Flags().IntVar(&runRetries, "retries", -1, "Per-batch scan retry budget (-1 = default)")
	runCmd.Flags().BoolVar(&runMetrics, "metrics", false, "Record OpenTelemetry metrics")
	runCmd.Flags().BoolVar(&runTracing, "tracing", false, "Emit OpenTelemetry trace spans")
}

func runCommand(cmd *cobra.Command, args []string) error {
	budget := runBudget
	workers := runWorkers
	parallel := runParallel
	batch := runBatch
	ckptPath := runCheckpoint
	retries := runRetries

	if runConfigFile != "" {
		cfg, err := config.FromFile(runConfigFile)
		if err != nil {
			return err
		}
		settings := config.SettingsFrom(cfg)
		if err := settings.Validate(); err != nil {
			return err
		}
		if settings.TargetCount > 0 {
			return fmt.Errorf("run is time-bounded; use 'primescan seek' for target_count")
		}
		if settings.TimeBudget > 0 && !cmd.Flags().Changed("budget") {
			budget = settings.TimeBudget
		}
		if settings.Workers > 0 && !cmd.Flags().Changed("workers") {
			workers = settings.Workers
		}
		if settings.Parallel && !cmd.Flags().Changed("parallel") {
			parallel = true
		}
		if settings.BatchSize > 0 && !cmd.Flags().Changed("batch") {
			batch = settings.BatchSize
		}
		if settings.CheckpointPath != "" && !cmd.Flags().Changed("checkpoint") {
			ckptPath = settings.CheckpointPath
		}
		if settings.ScanRetries >= 0 && !cmd.Flags().Changed("retries") {
			retries = settings.ScanRetries
		}
	}

	opts := []primescan.Option{
		primescan.WithTimeBudget(budget),
		primescan.WithLogger(slog.Default()),
		primescan.WithProgressHandler(func(ev primescan.ProgressEvent) {
			fmt.Printf("[%6.1fs] Found %7d primes. Largest: %7d\n",
				ev.ElapsedSeconds, ev.Count, ev.LargestPrime)
		}),
	}
	if parallel || workers > 0 {
		opts = append(opts, primescan.WithScanner(primescan.ParallelScanner{Workers: workers}))
	}
	if batch > 0 {
		opts = append(opts, primescan.WithBatchSize(batch))
	}
	if retries >= 0 {
		opts = append(opts, primescan.WithScanRetries(retries))
	}
	if runMetrics {
		opts = append(opts, primescan.WithMetrics(true))
	}
	if runTracing {
		opts = append(opts, primescan.WithTracing(true))
	}

	if ckptPath != "" {
		store, err := openStore(ckptPath, parallel || workers > 0)
		if err != nil {
			return err
		}
		defer store.Close()
		opts = append(opts, primescan.WithCheckpointStore(store))
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	searcher, err := primescan.NewSearcher(opts...)
	if err != nil {
		return err
	}
	result, err := searcher.Run(ctx)
	if err != nil {
		return err
	}

	printSummary(result)
	return nil
}

// openStore picks the store backend by extension. SQLite paths get a
// run-class row so sequential and parallel runs do not clobber each
// other; JSON files rely on distinct paths instead.
func openStore(path string, parallel bool) (checkpoint.Store, error) {
	ext := strings.ToLower(path)
	if strings.HasSuffix(ext, ".db") || strings.HasSuffix(ext, ".sqlite") {
		class := checkpoint.ClassSequential
		if parallel {
			class = checkpoint.ClassParallel
		}
		return checkpoint.NewSQLiteStore(path, class)
	}
	return checkpoint.NewFileStore(path), nil
}

func printSummary(s *primescan.Summary) {
	fmt.Println()
	switch s.StopReason {
	case primescan.StopSignal:
		fmt.Println("Run interrupted; progress checkpointed.")
	case primescan.StopTime:
		fmt.Println("Time budget spent.")
	}
	fmt.Printf("Found %d primes in %.2fs (%.1f primes/s)\n",
		s.TotalCount, s.ElapsedSeconds, s.Rate())
	fmt.Printf("Largest prime: %d\n", s.LargestPrime)
	if len(s.FirstPrimes) > 0 {
		fmt.Printf("First %d: %v\n", len(s.FirstPrimes), s.FirstPrimes)
	}
	if len(s.LastPrimes) > 0 {
		fmt.Printf("Last %d:  %v\n", len(s.LastPrimes), s.LastPrimes)
	}
}

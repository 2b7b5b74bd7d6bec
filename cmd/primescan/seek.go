package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"primescan/pkg/primescan"
)

var (
	seekCount    int
	seekWorkers  int
	seekParallel bool
	seekBatch    int
)

var seekCmd = &cobra.Command{
	Use:   "seek",
	Short: "Find the first N primes",
	RunE:  seekCommand,
}

func init() {
	seekCmd.Flags().IntVarP(&seekCount, "count", "n", 10, "How many primes to find")
	seekCmd.Flags().IntVar(&seekWorkers, "workers", 0, "Parallel workers (0 = host parallelism)")
	seekCmd.Flags().BoolVar(&seekParallel, "parallel", false, "Scan batches with parallel workers")
	seekCmd.Flags().IntVar(&seekBatch, "batch", 0, "Batch size (0 = default)")
}

func seekCommand(cmd *cobra.Command, args []string) error {
	if seekCount <= 0 {
		return fmt.Errorf("count must be positive: %d", seekCount)
	}

	opts := []primescan.Option{primescan.WithTargetCount(seekCount)}
	if seekParallel || seekWorkers > 0 {
		opts = append(opts, primescan.WithScanner(primescan.ParallelScanner{Workers: seekWorkers}))
	}
	if seekBatch > 0 {
		opts = append(opts, primescan.WithBatchSize(seekBatch))
	}

	searcher, err := primescan.NewSearcher(opts...)
	if err != nil {
		return err
	}
	summary, err := searcher.Run(cmd.Context())
	if err != nil {
		return err
	}

	primes := summary.Primes
	if len(primes) > seekCount {
		primes = primes[:seekCount]
	}
	if seekCount <= 20 {
		fmt.Printf("First %d primes: %v\n", seekCount, primes)
	} else {
		fmt.Printf("First %d primes found in %.2fs\n", summary.TotalCount, summary.ElapsedSeconds)
		fmt.Printf("First 10: %v\n", summary.FirstPrimes)
		fmt.Printf("Last 10:  %v\n", summary.LastPrimes)
	}
	fmt.Printf("Largest: %d\n", summary.LargestPrime)
	return nil
}

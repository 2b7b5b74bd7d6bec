package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"primescan/pkg/primescan"
)

var uptoWorkers int

var uptoCmd = &cobra.Command{
	Use:   "upto LIMIT",
	Short: "Find all primes up to a limit",
	Args:  cobra.ExactArgs(1),
	RunE:  uptoCommand,
}

func init() {
	uptoCmd.Flags().IntVar(&uptoWorkers, "workers", 0, "Parallel workers (0 = sequential)")
}

func uptoCommand(cmd *cobra.Command, args []string) error {
	limit, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("not an integer: %q", args[0])
	}

	var scanner primescan.Scanner = primescan.SequentialScanner{}
	if uptoWorkers > 0 {
		scanner = primescan.ParallelScanner{Workers: uptoWorkers}
	}

	primes, err := primescan.FindPrimesUpTo(cmd.Context(), limit, scanner)
	if err != nil {
		return err
	}
	fmt.Printf("Primes up to %d: %v\n", limit, primes)
	fmt.Printf("Total: %d primes\n", len(primes))
	return nil
}

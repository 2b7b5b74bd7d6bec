package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"primescan/pkg/primescan"
)

var checkCmd = &cobra.Command{
	Use:   "check NUMBER",
	Short: "Check whether a single number is prime",
	Args:  cobra.ExactArgs(1),
	RunE:  checkCommand,
}

func checkCommand(cmd *cobra.Command, args []string) error {
	n, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("not an integer: %q", args[0])
	}
	if primescan.IsPrime(n) {
		fmt.Printf("%d is prime\n", n)
	} else {
		fmt.Printf("%d is not prime\n", n)
	}
	return nil
}

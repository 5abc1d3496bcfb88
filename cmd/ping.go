// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2026 Nat Green

package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
)

var pingCount int

var pingCmd = &cobra.Command{
	Use:   "ping",
	Short: "Check hub readiness with OPS1 round trips",
	Long: `Send readiness checks to the hub and report round-trip times.

Each check is one OPS1/ exchange; a hub that answers anything other than
OPOK, or does not answer within the 20 second bound, counts as a failure.

Exit codes:
  0 - All checks succeeded
  1 - One or more checks failed/timed out
  2 - Connection error`,
	RunE: runPing,
}

func init() {
	rootCmd.AddCommand(pingCmd)
	pingCmd.Flags().IntVar(&pingCount, "count", 3, "Number of readiness checks to send")
}

func runPing(cmd *cobra.Command, args []string) error {
	hub, connInfo, err := openHub()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Connection error: %v\n", err)
		os.Exit(2)
	}
	defer hub.Close()

	fmt.Printf("heatapp - Hub Readiness Check\n")
	fmt.Printf("Connection: %s\n", connInfo)
	fmt.Printf("Count: %d checks\n\n", pingCount)

	successCount := 0
	failCount := 0

	for i := 1; i <= pingCount; i++ {
		fmt.Printf("Check %d/%d: ", i, pingCount)

		startTime := time.Now()
		ready := hub.Ready()
		rtt := time.Since(startTime)

		if ready {
			fmt.Printf("READY, rtt=%v\n", rtt.Round(time.Millisecond))
			successCount++
		} else {
			fmt.Printf("NOT READY (after %v)\n", rtt.Round(time.Millisecond))
			failCount++
		}

		if i < pingCount {
			time.Sleep(100 * time.Millisecond)
		}
	}

	fmt.Printf("\n--- Readiness statistics ---\n")
	fmt.Printf("%d checks sent, %d ready, %.0f%% failure\n",
		pingCount, successCount, float64(failCount)/float64(pingCount)*100)

	if failCount > 0 {
		os.Exit(1)
	}
	return nil
}
